package omni

import (
    "sync"

    "omniinput/internal/stream"
)

// Capture はキー割り当ての編集を補助する。編集対象がある間だけ、
// 次の Press Event をその対象に割り当てて onKey に渡す。
type Capture struct {
    mu      sync.Mutex
    editing string
    next    func(target string) string
    onKey   func(target, id string)
    stop    func()
}

// NewCapture は keys を購読する。next は割り当て後の次の編集対象を返す（"" で終了）。
// next が nil なら 1 回で編集を終える。next はロックの外で呼ばれる。
func NewCapture(keys stream.Stream[string], onKey func(target, id string), next func(target string) string) *Capture {
    c := &Capture{next: next, onKey: onKey}
    c.stop = keys.Subscribe(c.handle)
    return c
}

func (c *Capture) handle(id string) {
    c.mu.Lock()
    target := c.editing
    if target == "" {
        c.mu.Unlock()
        return
    }
    c.editing = ""
    c.mu.Unlock()

    // next は Editing や Edit を呼んでよい。next の中で編集対象が決まったらそちらを優先
    if c.next != nil {
        if n := c.next(target); n != "" {
            c.mu.Lock()
            if c.editing == "" {
                c.editing = n
            }
            c.mu.Unlock()
        }
    }

    if c.onKey != nil {
        c.onKey(target, id)
    }
}

// Edit は target を編集中にする。すでに target を編集中なら編集をやめる。
func (c *Capture) Edit(target string) {
    c.mu.Lock()
    defer c.mu.Unlock()
    if c.editing == target {
        c.editing = ""
        return
    }
    c.editing = target
}

// Editing は現在の編集対象（無ければ ""）。
func (c *Capture) Editing() string {
    c.mu.Lock()
    defer c.mu.Unlock()
    return c.editing
}

// Close は購読を解除する。
func (c *Capture) Close() {
    c.mu.Lock()
    stop := c.stop
    c.stop = nil
    c.editing = ""
    c.mu.Unlock()
    if stop != nil {
        stop()
    }
}
