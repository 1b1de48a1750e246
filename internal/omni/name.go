package omni

import (
    "fmt"
    "strconv"

    "github.com/samber/lo"
)

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// NoteName はノート番号を音名にする。60 は "C4"。
func NoteName(note int) string {
    if note < 0 {
        return strconv.Itoa(note)
    }
    return fmt.Sprintf("%s%d", noteNames[note%12], note/12-1)
}

// Name は識別子を表示用の名前にする。解釈できなければ id をそのまま返す。
func Name(id string) string {
    k, ok := ParseKey(id)
    if !ok {
        return id
    }
    switch k.Kind {
    case KindKeyboard:
        if n, ok := keyNames[k.Number]; ok {
            return n
        }
        return id
    case KindGamepadButton:
        return fmt.Sprintf("Gamepad %d Button %d", k.Pad, k.Number)
    case KindGamepadAxis:
        return fmt.Sprintf("Gamepad %d Axis %d%s", k.Pad, k.Number, sign(k.Positive))
    case KindMidiNote:
        return fmt.Sprintf("MIDI ch%d %s", k.Channel, NoteName(k.Number))
    case KindMidiPitch:
        return fmt.Sprintf("MIDI ch%d Pitch%s", k.Channel, sign(k.Positive))
    case KindMidiSustain:
        return fmt.Sprintf("MIDI ch%d Sustain", k.Channel)
    case KindMidiMod:
        return fmt.Sprintf("MIDI ch%d Mod", k.Channel)
    }
    return id
}

// Names は値が識別子の map を表示名の map に変換する。
func Names[K comparable](ids map[K]string) map[K]string {
    return lo.MapValues(ids, func(id string, _ K) string { return Name(id) })
}

func sign(positive bool) string {
    if positive {
        return "+"
    }
    return "-"
}
