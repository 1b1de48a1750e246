package midi

import (
    gomidi "gitlab.com/gomidi/midi/v2"
)

// Decode は生メッセージをチャンネルボイスメッセージとして解釈する。
// 対象外（System系・未知のステータス・データ不足）は ok=false。
func Decode(m Message) (Event, bool) {
    bt := m.Data
    if len(bt) == 0 {
        return Event{}, false
    }
    // Realtime/System Common は無視
    if bt[0] >= 0xF0 || bt[0] < 0x80 {
        return Event{}, false
    }
    ev := Event{Device: m.Device, Time: m.Time}
    msg := gomidi.Message(bt)

    var ch, d1, d2 uint8
    switch bt[0] >> 4 {
    case 0x08, 0x09:
        if len(bt) < 3 {
            return Event{}, false
        }
        // NoteOn（Vel==0 は NoteOff）
        if msg.GetNoteStart(&ch, &d1, &d2) {
            ev.Type = NoteOn
        } else if msg.GetNoteEnd(&ch, &d1) {
            ev.Type = NoteOff
            d2 = bt[2] & 0x7F
        } else {
            return Event{}, false
        }
    case 0x0B:
        if len(bt) < 3 || !msg.GetControlChange(&ch, &d1, &d2) {
            return Event{}, false
        }
        ev.Type = ControlChange
    case 0x0C:
        if len(bt) < 2 || !msg.GetProgramChange(&ch, &d1) {
            return Event{}, false
        }
        ev.Type = ProgramChange
    case 0x0E:
        var rel int16
        var abs uint16
        if len(bt) < 3 || !msg.GetPitchBend(&ch, &rel, &abs) {
            return Event{}, false
        }
        ev.Type = PitchBend
        ev.Bend = rel
    default:
        // ignore other channel messages
        return Event{}, false
    }
    ev.Channel = ch + 1 // 1-16
    ev.Data1 = d1
    ev.Data2 = d2
    return ev, true
}
