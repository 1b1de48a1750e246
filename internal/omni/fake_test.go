package omni

import (
    "slices"
    "time"

    "github.com/samber/lo"

    "omniinput/internal/midi"
    "omniinput/internal/stream"
)

// fakeHost はキーボード・ゲームパッド・タイマを手で動かせるホスト。
type fakeHost struct {
    next      int
    listeners map[int]func(KeyEvent)
    intervals map[int]func()
    pads      []*Gamepad
    now       time.Time
}

func newFakeHost() *fakeHost {
    return &fakeHost{listeners: map[int]func(KeyEvent){}, intervals: map[int]func(){}, now: time.Unix(0, 0)}
}

func (h *fakeHost) AddKeyListener(fn func(KeyEvent)) func() {
    id := h.next
    h.next++
    h.listeners[id] = fn
    return func() { delete(h.listeners, id) }
}

func (h *fakeHost) Gamepads() []*Gamepad { return h.pads }

func (h *fakeHost) SetInterval(fn func(), _ time.Duration) func() {
    id := h.next
    h.next++
    h.intervals[id] = fn
    return func() { delete(h.intervals, id) }
}

func (h *fakeHost) Now() time.Time { return h.now }

// advance は時計を d 進めてから tick する。
func (h *fakeHost) advance(d time.Duration) {
    h.now = h.now.Add(d)
    h.tick()
}

func (h *fakeHost) emit(ev KeyEvent) {
    ids := lo.Keys(h.listeners)
    slices.Sort(ids)
    for _, id := range ids {
        h.listeners[id](ev)
    }
}

func (h *fakeHost) keydown(code int) { h.emit(KeyEvent{Code: code, Down: true}) }
func (h *fakeHost) keyup(code int)   { h.emit(KeyEvent{Code: code}) }

func (h *fakeHost) tick() {
    ids := lo.Keys(h.intervals)
    slices.Sort(ids)
    for _, id := range ids {
        if fn, ok := h.intervals[id]; ok {
            fn()
        }
    }
}

// fakeMidi は OmniInput に渡す MIDI バス。
type fakeMidi struct {
    bus *stream.Bus[midi.Message]
}

func newFakeMidi() *fakeMidi {
    return &fakeMidi{bus: stream.NewBus[midi.Message]()}
}

func (m *fakeMidi) source() (stream.Stream[midi.Message], error) {
    return m.bus.Stream(), nil
}

func (m *fakeMidi) send(data ...byte) {
    m.bus.Push(midi.Message{Data: data, Device: "1234"})
}

// countingObserver は Observer の呼び出し回数を数える。
type countingObserver struct {
    midi    map[string]int
    updates int
    pressed []string
}

func newCountingObserver() *countingObserver {
    return &countingObserver{midi: map[string]int{}}
}

func (o *countingObserver) MidiMessage(kind string)    { o.midi[kind]++ }
func (o *countingObserver) Updated(time.Duration, int) { o.updates++ }
func (o *countingObserver) Pressed(id string)          { o.pressed = append(o.pressed, id) }
