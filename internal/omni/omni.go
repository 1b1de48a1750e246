package omni

import (
    "log/slog"
    "sync"
    "time"

    "omniinput/internal/midi"
    "omniinput/internal/stream"
)

// Snapshot はある瞬間にアクティブな入力の集合。無いキーは false と同じ扱い。
type Snapshot map[string]bool

// Options は OmniInput の生成オプション。ゼロ値で使える。
type Options struct {
    // Midi は MIDI メッセージの Stream を返す。nil かエラーなら MIDI 無し。
    Midi func() (stream.Stream[midi.Message], error)

    // MidiChannels が空でなければ、そのチャネル (1-16) だけを扱う。
    MidiChannels []int

    ButtonThreshold float64
    AxisThreshold   float64

    Observer Observer
    Logger   *slog.Logger
}

// OmniInput はキーボード・ゲームパッド・MIDI をまとめて 1 つの Snapshot にする。
type OmniInput struct {
    mu       sync.Mutex
    keyboard *keyboardReader
    gamepad  *gamepadReader
    midi     *midiReader
    observe  Observer
    log      *slog.Logger
    closed   bool
}

// New は host の機能を調べて各リーダを接続する。host が何も実装していなくてもよい。
func New(host any, opts Options) *OmniInput {
    in := &OmniInput{observe: opts.Observer, log: opts.Logger}
    if in.observe == nil {
        in.observe = nopObserver{}
    }
    if in.log == nil {
        in.log = slog.Default()
    }

    if kb, ok := host.(KeyboardHost); ok {
        in.keyboard = newKeyboardReader(kb)
    } else {
        in.log.Debug("キーボード入力なし")
    }
    if gp, ok := host.(GamepadHost); ok {
        in.gamepad = newGamepadReader(gp, opts.ButtonThreshold, opts.AxisThreshold)
    } else {
        in.log.Debug("ゲームパッド入力なし")
    }
    if opts.Midi != nil {
        src, err := opts.Midi()
        if err != nil {
            in.log.Debug("MIDI入力なし", "err", err)
        } else {
            in.midi = newMidiReader(src, opts.MidiChannels, in.observe, in.log)
        }
    } else {
        in.log.Debug("MIDI入力なし")
    }
    return in
}

// Update は現在の状態を新しい Snapshot として返す。Close 後は常に空。
func (in *OmniInput) Update() Snapshot {
    start := time.Now()
    out := Snapshot{}

    in.mu.Lock()
    if in.closed {
        in.mu.Unlock()
        return out
    }
    kb, gp, md := in.keyboard, in.gamepad, in.midi
    in.mu.Unlock()

    if kb != nil {
        kb.collect(out)
    }
    if gp != nil {
        gp.collect(out)
    }
    if md != nil {
        md.collect(out)
    }
    in.observe.Updated(time.Since(start), len(out))
    return out
}

// Close はキーボードリスナと MIDI の購読を解除する。以降の Update は空の Snapshot を返す。
// 2 回目以降は何もしない。
func (in *OmniInput) Close() error {
    in.mu.Lock()
    if in.closed {
        in.mu.Unlock()
        return nil
    }
    in.closed = true
    kb, md := in.keyboard, in.midi
    in.keyboard, in.gamepad, in.midi = nil, nil, nil
    in.mu.Unlock()

    if kb != nil {
        kb.close()
    }
    if md != nil {
        md.close()
    }
    return nil
}
