package omni

import (
    "errors"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "omniinput/internal/midi"
    "omniinput/internal/stream"
)

type engine struct {
    host  *fakeHost
    midi  *fakeMidi
    input *OmniInput
}

func newEngine(t *testing.T, opts Options) *engine {
    t.Helper()
    e := &engine{host: newFakeHost(), midi: newFakeMidi()}
    if opts.Midi == nil {
        opts.Midi = e.midi.source
    }
    e.input = New(e.host, opts)
    t.Cleanup(func() { _ = e.input.Close() })
    return e
}

func TestLimitedHostSupport(t *testing.T) {
    input := New(struct{}{}, Options{})
    assert.Empty(t, input.Update())
    require.NoError(t, input.Close())

    // MIDI の取得に失敗しても落ちない
    input = New(nil, Options{Midi: func() (stream.Stream[midi.Message], error) {
        return stream.Stream[midi.Message]{}, errors.New("no midi")
    }})
    assert.Empty(t, input.Update())
    require.NoError(t, input.Close())
}

func TestKeyboard(t *testing.T) {
    e := newEngine(t, Options{})

    e.host.keydown(32)
    assert.True(t, e.input.Update()["32"])
    e.host.keyup(32)
    assert.False(t, e.input.Update()["32"])
}

func TestKeyboardHeldSet(t *testing.T) {
    e := newEngine(t, Options{})

    e.host.keyup(65) // keydown を見ていない keyup
    e.host.keydown(65)
    e.host.keydown(66)
    e.host.keydown(65)
    assert.Equal(t, Snapshot{"65": true, "66": true}, e.input.Update())

    e.host.keyup(65)
    assert.Equal(t, Snapshot{"66": true}, e.input.Update())
}

func TestCloseReleasesListeners(t *testing.T) {
    e := newEngine(t, Options{})
    require.Len(t, e.host.listeners, 1)
    require.Equal(t, 1, e.midi.bus.Len())

    require.NoError(t, e.input.Close())
    require.NoError(t, e.input.Close())
    assert.Empty(t, e.host.listeners)
    assert.Equal(t, 0, e.midi.bus.Len())

    e.host.keydown(32)
    e.midi.send(0x90, 0x40, 0x7F)
    assert.Empty(t, e.input.Update())
}

func TestGamepad(t *testing.T) {
    e := newEngine(t, Options{})
    e.host.pads = []*Gamepad{
        nil,
        {
            Index:     1,
            Connected: true,
            Buttons:   []GamepadButton{{}, {Value: 0.9}},
            Axes:      []float64{0, 0.9, -0.9},
        },
    }

    data := e.input.Update()
    assert.False(t, data["gamepad.1.button.0"])
    assert.True(t, data["gamepad.1.button.1"])
    assert.False(t, data["gamepad.1.axis.0"])
    assert.False(t, data["gamepad.1.axis.0.positive"])
    assert.False(t, data["gamepad.1.axis.0.negative"])
    assert.True(t, data["gamepad.1.axis.1.positive"])
    assert.False(t, data["gamepad.1.axis.1.negative"])
    assert.True(t, data["gamepad.1.axis.2.negative"])
    assert.False(t, data["gamepad.1.axis.2.positive"])
}

func TestGamepadThresholds(t *testing.T) {
    e := newEngine(t, Options{})
    pad := &Gamepad{
        Index:     0,
        Connected: true,
        Buttons:   []GamepadButton{{Value: 0.5}, {Value: 0.49}},
        Axes:      []float64{0.89, -0.89},
    }
    e.host.pads = []*Gamepad{pad, {Index: 3, Buttons: []GamepadButton{{Value: 1}}}}

    assert.Equal(t, Snapshot{"gamepad.0.button.0": true}, e.input.Update())

    // 状態を持たないので、次の読み取りはその時点のホストの値だけで決まる
    pad.Buttons[0].Value = 0
    pad.Axes[0] = 1
    assert.Equal(t, Snapshot{"gamepad.0.axis.0.positive": true}, e.input.Update())
}

func TestGamepadCustomThresholds(t *testing.T) {
    e := newEngine(t, Options{ButtonThreshold: 0.2, AxisThreshold: 0.5})
    e.host.pads = []*Gamepad{{
        Index:     2,
        Connected: true,
        Buttons:   []GamepadButton{{Value: 0.25}},
        Axes:      []float64{-0.6},
    }}
    assert.Equal(t, Snapshot{
        "gamepad.2.button.0":        true,
        "gamepad.2.axis.0.negative": true,
    }, e.input.Update())
}

func TestMidiNotes(t *testing.T) {
    e := newEngine(t, Options{})

    // チャネルは下位ニブル + 1
    e.midi.send(0x92, 0x40, 0x7F)
    assert.True(t, e.input.Update()["midi.1234.3.note.64"], "note on")
    e.midi.send(0x82, 0x40, 0x7F)
    assert.False(t, e.input.Update()["midi.1234.3.note.64"], "note off")
    e.midi.send(0x92, 0x40, 0x7F)
    assert.True(t, e.input.Update()["midi.1234.3.note.64"], "note on")
    e.midi.send(0x92, 0x40, 0x00)
    assert.False(t, e.input.Update()["midi.1234.3.note.64"], "note off with note on")
}

func TestMidiPitchBend(t *testing.T) {
    e := newEngine(t, Options{})

    e.midi.send(0xE1, 0x7F, 0x7F)
    data := e.input.Update()
    assert.True(t, data["midi.1234.2.pitch.up"])
    assert.False(t, data["midi.1234.2.pitch.down"])

    e.midi.send(0xE1, 0x7F, 0x1F)
    data = e.input.Update()
    assert.True(t, data["midi.1234.2.pitch.down"])
    assert.False(t, data["midi.1234.2.pitch.up"])

    e.midi.send(0xE1, 0x00, 0x40)
    data = e.input.Update()
    assert.False(t, data["midi.1234.2.pitch.down"])
    assert.False(t, data["midi.1234.2.pitch.up"])
}

func TestMidiSustainAndMod(t *testing.T) {
    e := newEngine(t, Options{})

    e.midi.send(0xBC, 0x40, 0x7F)
    assert.True(t, e.input.Update()["midi.1234.13.sustain"])
    e.midi.send(0xBC, 0x01, 0x40)
    data := e.input.Update()
    assert.True(t, data["midi.1234.13.mod"])
    assert.True(t, data["midi.1234.13.sustain"], "controllers are independent")

    e.midi.send(0xBC, 0x40, 0x00)
    assert.False(t, e.input.Update()["midi.1234.13.sustain"])
    e.midi.send(0xBC, 0x01, 0x3F)
    assert.False(t, e.input.Update()["midi.1234.13.mod"])
}

func TestMidiIgnoresUnknownMessages(t *testing.T) {
    o := newCountingObserver()
    e := newEngine(t, Options{Observer: o})

    e.midi.send(0x92, 0x40, 0x7F)
    before := e.input.Update()
    e.midi.send(0xF8)
    e.midi.send()
    e.midi.send(0xA2, 0x40, 0x10)
    e.midi.send(0xB2, 0x07, 0x7F) // volume
    e.midi.send(0xC2, 0x01)
    assert.Equal(t, before, e.input.Update())
    assert.Equal(t, 3, o.midi["ignored"])
    assert.Equal(t, 1, o.midi[string(midi.ControlChange)])
    assert.Equal(t, 1, o.midi[string(midi.ProgramChange)])
}

func TestMidiChannelFilter(t *testing.T) {
    e := newEngine(t, Options{MidiChannels: []int{1, 99}})

    e.midi.send(0x90, 0x3C, 0x7F)
    e.midi.send(0x91, 0x3C, 0x7F)
    assert.Equal(t, Snapshot{"midi.1234.1.note.60": true}, e.input.Update())
}

func TestUpdateMergesAllSources(t *testing.T) {
    o := newCountingObserver()
    e := newEngine(t, Options{Observer: o})
    e.host.keydown(13)
    e.host.pads = []*Gamepad{{Index: 0, Connected: true, Buttons: []GamepadButton{{Value: 1}}}}
    e.midi.send(0x90, 0x3C, 0x7F)

    first := e.input.Update()
    assert.Equal(t, Snapshot{
        "13":                  true,
        "gamepad.0.button.0":  true,
        "midi.1234.1.note.60": true,
    }, first)

    // 返した Snapshot を書き換えても内部状態には影響しない
    first["99"] = true
    delete(first, "13")
    assert.Equal(t, Snapshot{
        "13":                  true,
        "gamepad.0.button.0":  true,
        "midi.1234.1.note.60": true,
    }, e.input.Update())
    assert.Equal(t, 2, o.updates)
}
