//go:build sdl

// Package sdlhost は SDL2 のウィンドウとジョイスティックを入力ホストとして使う。
// キーボード入力を受けるためにウィンドウにフォーカスが必要。
package sdlhost

import (
    "context"
    "fmt"
    "log/slog"
    "sync"
    "time"

    "github.com/veandco/go-sdl2/sdl"

    "omniinput/internal/omni"
)

// PumpInterval はイベントキューを読む間隔。
const PumpInterval = 4 * time.Millisecond

// Host は omni.KeyboardHost と omni.GamepadHost を実装する。
type Host struct {
    win *sdl.Window

    mu        sync.Mutex
    listeners map[int]func(omni.KeyEvent)
    nextID    int
    joys      []*sdl.Joystick
    pads      []*omni.Gamepad
}

var (
    _ omni.KeyboardHost = (*Host)(nil)
    _ omni.GamepadHost  = (*Host)(nil)
)

func (h *Host) AddKeyListener(fn func(omni.KeyEvent)) func() {
    h.mu.Lock()
    defer h.mu.Unlock()
    id := h.nextID
    h.nextID++
    h.listeners[id] = fn
    return func() {
        h.mu.Lock()
        defer h.mu.Unlock()
        delete(h.listeners, id)
    }
}

func (h *Host) emit(ev omni.KeyEvent) {
    h.mu.Lock()
    fns := make([]func(omni.KeyEvent), 0, len(h.listeners))
    for _, fn := range h.listeners {
        fns = append(fns, fn)
    }
    h.mu.Unlock()
    for _, fn := range fns {
        fn(ev)
    }
}

// Gamepads は最後に pump した時点の状態を返す。
func (h *Host) Gamepads() []*omni.Gamepad {
    h.mu.Lock()
    defer h.mu.Unlock()
    out := make([]*omni.Gamepad, len(h.pads))
    for i, p := range h.pads {
        cp := *p
        out[i] = &cp
    }
    return out
}

func axisValue(v int16) float64 {
    if v < 0 {
        return float64(v) / 32768
    }
    return float64(v) / 32767
}

func open(title string) (*Host, error) {
    if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_JOYSTICK); err != nil {
        return nil, fmt.Errorf("sdl: %w", err)
    }
    win, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, 320, 120, sdl.WINDOW_SHOWN)
    if err != nil {
        sdl.Quit()
        return nil, fmt.Errorf("sdl: %w", err)
    }
    h := &Host{win: win, listeners: map[int]func(omni.KeyEvent){}}
    h.openJoysticks()
    return h, nil
}

// openJoysticks は接続中のジョイスティックを開き直す。スロット番号が Gamepad.Index になる。
func (h *Host) openJoysticks() {
    for _, j := range h.joys {
        j.Close()
    }
    h.joys = h.joys[:0]
    for i := 0; i < sdl.NumJoysticks(); i++ {
        joy := sdl.JoystickOpen(i)
        if joy == nil || !joy.Attached() {
            continue
        }
        slog.Info("ジョイスティック接続", "index", len(h.joys), "name", joy.Name())
        h.joys = append(h.joys, joy)
    }
    if len(h.joys) == 0 {
        slog.Debug("ジョイスティックなし")
    }
}

func (h *Host) joysticksChanged() bool {
    if sdl.NumJoysticks() != len(h.joys) {
        return true
    }
    for _, j := range h.joys {
        if !j.Attached() {
            return true
        }
    }
    return false
}

// pump はイベントを処理してゲームパッドの状態を読み直す。SDL のスレッドで呼ぶこと。
// ウィンドウが閉じられたら true。
func (h *Host) pump() (quit bool) {
    for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
        switch ev := ev.(type) {
        case *sdl.QuitEvent:
            quit = true
        case *sdl.KeyboardEvent:
            if ev.Repeat != 0 {
                continue
            }
            code, ok := DOMCode(ev.Keysym.Sym)
            if !ok {
                continue
            }
            h.emit(omni.KeyEvent{Code: code, Down: ev.Type == sdl.KEYDOWN})
        }
    }

    if h.joysticksChanged() {
        h.openJoysticks()
    }
    sdl.JoystickUpdate()
    pads := make([]*omni.Gamepad, len(h.joys))
    for i, j := range h.joys {
        p := &omni.Gamepad{Index: i, Connected: j.Attached()}
        p.Buttons = make([]omni.GamepadButton, j.NumButtons())
        for b := range p.Buttons {
            if j.Button(b) != 0 {
                p.Buttons[b].Value = 1
            }
        }
        p.Axes = make([]float64, j.NumAxes())
        for a := range p.Axes {
            p.Axes[a] = axisValue(j.Axis(a))
        }
        pads[i] = p
    }
    h.mu.Lock()
    h.pads = pads
    h.mu.Unlock()
    return quit
}

func (h *Host) destroy() {
    for _, j := range h.joys {
        j.Close()
    }
    h.joys = nil
    if h.win != nil {
        _ = h.win.Destroy()
    }
    sdl.Quit()
}

// Run は SDL をメインスレッドで動かしつつ fn を別ゴルーチンで実行する。
// main ゴルーチンから呼ぶこと。fn が戻るか、ウィンドウが閉じられるか、ctx が終わると戻る。
func Run(ctx context.Context, title string, fn func(ctx context.Context, h *Host) error) error {
    var err error
    sdl.Main(func() { err = run(ctx, title, fn) })
    return err
}

func run(ctx context.Context, title string, fn func(ctx context.Context, h *Host) error) error {
    var (
        h   *Host
        err error
    )
    sdl.Do(func() { h, err = open(title) })
    if err != nil {
        return err
    }
    defer sdl.Do(h.destroy)

    ctx, cancel := context.WithCancel(ctx)
    defer cancel()
    done := make(chan error, 1)
    go func() { done <- fn(ctx, h) }()

    t := time.NewTicker(PumpInterval)
    defer t.Stop()
    for {
        select {
        case err := <-done:
            return err
        case <-ctx.Done():
            return <-done
        case <-t.C:
            var quit bool
            sdl.Do(func() { quit = h.pump() })
            if quit {
                slog.Info("ウィンドウが閉じられました")
                cancel()
            }
        }
    }
}
