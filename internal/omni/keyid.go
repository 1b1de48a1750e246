package omni

import (
    "strconv"
    "strings"
)

// Kind は識別子が指す入力の種類。
type Kind int

const (
    KindUnknown Kind = iota
    KindKeyboard
    KindGamepadButton
    KindGamepadAxis
    KindMidiNote
    KindMidiPitch
    KindMidiSustain
    KindMidiMod
)

// Source は識別子の名前空間（keyboard / gamepad / midi）を返す。
func (k Kind) Source() string {
    switch k {
    case KindKeyboard:
        return "keyboard"
    case KindGamepadButton, KindGamepadAxis:
        return "gamepad"
    case KindMidiNote, KindMidiPitch, KindMidiSustain, KindMidiMod:
        return "midi"
    }
    return "unknown"
}

// Key は解析済みの識別子。
type Key struct {
    Kind Kind

    // keyboard: キーコード / gamepad: ボタン・軸番号 / midi: ノート番号
    Number int

    // gamepad のインデックス
    Pad int

    // 軸の + 方向、またはピッチベンドの上方向
    Positive bool

    // midi のみ
    Device  string
    Channel int
}

func KeyboardKey(code int) string {
    return strconv.Itoa(code)
}

func GamepadButtonKey(pad, button int) string {
    return "gamepad." + strconv.Itoa(pad) + ".button." + strconv.Itoa(button)
}

func GamepadAxisKey(pad, axis int, positive bool) string {
    dir := "negative"
    if positive {
        dir = "positive"
    }
    return "gamepad." + strconv.Itoa(pad) + ".axis." + strconv.Itoa(axis) + "." + dir
}

func midiPrefix(device string, channel uint8) string {
    return "midi." + device + "." + strconv.Itoa(int(channel)) + "."
}

// MidiNoteKey の channel は 1 始まり。
func MidiNoteKey(device string, channel, note uint8) string {
    return midiPrefix(device, channel) + "note." + strconv.Itoa(int(note))
}

func MidiPitchKey(device string, channel uint8, up bool) string {
    if up {
        return midiPrefix(device, channel) + "pitch.up"
    }
    return midiPrefix(device, channel) + "pitch.down"
}

func MidiSustainKey(device string, channel uint8) string {
    return midiPrefix(device, channel) + "sustain"
}

func MidiModKey(device string, channel uint8) string {
    return midiPrefix(device, channel) + "mod"
}

// ParseKey は識別子を分解する。形式に合わなければ ok=false。
func ParseKey(id string) (Key, bool) {
    if n, ok := atoi(id); ok {
        return Key{Kind: KindKeyboard, Number: n}, true
    }
    parts := strings.Split(id, ".")
    switch parts[0] {
    case "gamepad":
        return parseGamepad(parts)
    case "midi":
        return parseMidi(parts)
    }
    return Key{}, false
}

func parseGamepad(parts []string) (Key, bool) {
    if len(parts) < 4 {
        return Key{}, false
    }
    pad, ok1 := atoi(parts[1])
    n, ok2 := atoi(parts[3])
    if !ok1 || !ok2 {
        return Key{}, false
    }
    switch {
    case parts[2] == "button" && len(parts) == 4:
        return Key{Kind: KindGamepadButton, Pad: pad, Number: n}, true
    case parts[2] == "axis" && len(parts) == 5:
        switch parts[4] {
        case "positive":
            return Key{Kind: KindGamepadAxis, Pad: pad, Number: n, Positive: true}, true
        case "negative":
            return Key{Kind: KindGamepadAxis, Pad: pad, Number: n}, true
        }
    }
    return Key{}, false
}

func parseMidi(parts []string) (Key, bool) {
    if len(parts) < 4 || parts[1] == "" {
        return Key{}, false
    }
    ch, ok := atoi(parts[2])
    if !ok || ch < 1 || ch > 16 {
        return Key{}, false
    }
    k := Key{Device: parts[1], Channel: ch}
    switch {
    case len(parts) == 4 && parts[3] == "sustain":
        k.Kind = KindMidiSustain
    case len(parts) == 4 && parts[3] == "mod":
        k.Kind = KindMidiMod
    case len(parts) == 5 && parts[3] == "note":
        n, ok := atoi(parts[4])
        if !ok || n > 127 {
            return Key{}, false
        }
        k.Kind = KindMidiNote
        k.Number = n
    case len(parts) == 5 && parts[3] == "pitch" && (parts[4] == "up" || parts[4] == "down"):
        k.Kind = KindMidiPitch
        k.Positive = parts[4] == "up"
    default:
        return Key{}, false
    }
    return k, true
}

// atoi は符号なし 10 進数だけを受け付ける。
func atoi(s string) (int, bool) {
    if s == "" || len(s) > 9 {
        return 0, false
    }
    for i := 0; i < len(s); i++ {
        if s[i] < '0' || s[i] > '9' {
            return 0, false
        }
    }
    n, err := strconv.Atoi(s)
    return n, err == nil
}
