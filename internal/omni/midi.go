package omni

import (
    "log/slog"
    "sync"

    "omniinput/internal/midi"
    "omniinput/internal/stream"
)

// midiReader は届いたメッセージから「今押されているもの」を覚えておく。
// MIDI はレベルではなくエッジしか送ってこないので、解除が来るまで状態を保持する。
type midiReader struct {
    mu       sync.Mutex
    active   map[string]struct{}
    channels map[uint8]struct{}
    observe  Observer
    log      *slog.Logger
    stop     func()
}

func newMidiReader(src stream.Stream[midi.Message], channels []int, o Observer, log *slog.Logger) *midiReader {
    r := &midiReader{
        active:  map[string]struct{}{},
        observe: o,
        log:     log,
    }
    for _, ch := range channels {
        if ch >= 1 && ch <= 16 {
            if r.channels == nil {
                r.channels = map[uint8]struct{}{}
            }
            r.channels[uint8(ch)] = struct{}{}
        }
    }
    r.stop = src.Subscribe(r.handle)
    return r
}

func (r *midiReader) handle(m midi.Message) {
    ev, ok := midi.Decode(m)
    if !ok {
        r.observe.MidiMessage("ignored")
        return
    }
    r.observe.MidiMessage(string(ev.Type))
    if r.channels != nil {
        if _, ok := r.channels[ev.Channel]; !ok {
            return
        }
    }
    r.log.Debug("MIDI", "device", ev.Device, "type", ev.Type, "ch", ev.Channel, "data1", ev.Data1, "data2", ev.Data2, "bend", ev.Bend)

    r.mu.Lock()
    defer r.mu.Unlock()
    switch ev.Type {
    case midi.NoteOn:
        r.set(MidiNoteKey(ev.Device, ev.Channel, ev.Data1), true)
    case midi.NoteOff:
        r.set(MidiNoteKey(ev.Device, ev.Channel, ev.Data1), false)
    case midi.PitchBend:
        // 中央をまたいだら反対側は必ず消す。ちょうど中央なら両方消す
        r.set(MidiPitchKey(ev.Device, ev.Channel, true), ev.Bend > 0)
        r.set(MidiPitchKey(ev.Device, ev.Channel, false), ev.Bend < 0)
    case midi.ControlChange:
        on := ev.Data2 >= 0x40
        switch ev.Data1 {
        case midi.CCSustain:
            r.set(MidiSustainKey(ev.Device, ev.Channel), on)
        case midi.CCModulation:
            r.set(MidiModKey(ev.Device, ev.Channel), on)
        }
    }
}

func (r *midiReader) set(id string, on bool) {
    if on {
        r.active[id] = struct{}{}
    } else {
        delete(r.active, id)
    }
}

func (r *midiReader) collect(out Snapshot) {
    r.mu.Lock()
    defer r.mu.Unlock()
    for id := range r.active {
        out[id] = true
    }
}

func (r *midiReader) close() {
    if r.stop != nil {
        r.stop()
        r.stop = nil
    }
    r.mu.Lock()
    r.active = map[string]struct{}{}
    r.mu.Unlock()
}
