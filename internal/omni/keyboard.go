package omni

import "sync"

// KeyEvent はホストから届くキーの押下/解放。Code は DOM の keyCode。
type KeyEvent struct {
    Code int
    Down bool
}

// KeyboardHost はキーイベントを購読できるホスト。
type KeyboardHost interface {
    AddKeyListener(fn func(KeyEvent)) (remove func())
}

// keyboardReader は押されているキーの集合を保持する。
type keyboardReader struct {
    mu     sync.Mutex
    held   map[int]struct{}
    remove func()
}

func newKeyboardReader(host KeyboardHost) *keyboardReader {
    r := &keyboardReader{held: map[int]struct{}{}}
    r.remove = host.AddKeyListener(r.handle)
    return r
}

func (r *keyboardReader) handle(ev KeyEvent) {
    r.mu.Lock()
    defer r.mu.Unlock()
    if ev.Down {
        r.held[ev.Code] = struct{}{}
    } else {
        // keydown を見ていなくても消す
        delete(r.held, ev.Code)
    }
}

func (r *keyboardReader) collect(out Snapshot) {
    r.mu.Lock()
    defer r.mu.Unlock()
    for code := range r.held {
        out[KeyboardKey(code)] = true
    }
}

func (r *keyboardReader) close() {
    if r.remove != nil {
        r.remove()
        r.remove = nil
    }
    r.mu.Lock()
    r.held = map[int]struct{}{}
    r.mu.Unlock()
}
