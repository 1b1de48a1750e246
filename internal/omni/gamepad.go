package omni

// 既定のしきい値。ボタンはアナログ値 0.5 以上で押下、軸は ±0.9 以上で方向入力。
const (
    DefaultButtonThreshold = 0.5
    DefaultAxisThreshold   = 0.9
)

// GamepadButton はボタン 1 つの状態。Value は 0..1 のアナログ値。
type GamepadButton struct {
    Value float64
}

// Gamepad はホストが報告するゲームパッド 1 台分の状態。
type Gamepad struct {
    Index     int
    Connected bool
    Buttons   []GamepadButton
    Axes      []float64
}

// GamepadHost は現在のゲームパッド一覧を返すホスト。nil のスロットを含んでよい。
type GamepadHost interface {
    Gamepads() []*Gamepad
}

// gamepadReader は状態を持たない。毎回ホストから読み直す。
type gamepadReader struct {
    host   GamepadHost
    button float64
    axis   float64
}

func newGamepadReader(host GamepadHost, button, axis float64) *gamepadReader {
    if button <= 0 || button > 1 {
        button = DefaultButtonThreshold
    }
    if axis <= 0 || axis > 1 {
        axis = DefaultAxisThreshold
    }
    return &gamepadReader{host: host, button: button, axis: axis}
}

func (r *gamepadReader) collect(out Snapshot) {
    for _, pad := range r.host.Gamepads() {
        if pad == nil || !pad.Connected {
            continue
        }
        for j, b := range pad.Buttons {
            if b.Value >= r.button {
                out[GamepadButtonKey(pad.Index, j)] = true
            }
        }
        for j, v := range pad.Axes {
            switch {
            case v >= r.axis:
                out[GamepadAxisKey(pad.Index, j, true)] = true
            case v <= -r.axis:
                out[GamepadAxisKey(pad.Index, j, false)] = true
            }
        }
    }
}
