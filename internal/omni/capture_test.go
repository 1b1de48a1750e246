package omni

import (
    "testing"

    "github.com/stretchr/testify/assert"

    "omniinput/internal/stream"
)

func TestCaptureAssignsWhileEditing(t *testing.T) {
    bus := stream.NewBus[string]()
    order := map[string]string{"1": "2", "2": "3"}
    got := map[string]string{}
    c := NewCapture(bus.Stream(), func(target, id string) { got[target] = id }, func(target string) string {
        return order[target]
    })
    defer c.Close()

    bus.Push("32") // 編集していない
    assert.Empty(t, got)

    c.Edit("1")
    bus.Push("65")
    assert.Equal(t, "2", c.Editing())
    bus.Push("gamepad.0.button.1")
    bus.Push("midi.1.1.note.60")
    assert.Equal(t, "", c.Editing())
    bus.Push("66")

    assert.Equal(t, map[string]string{
        "1": "65",
        "2": "gamepad.0.button.1",
        "3": "midi.1.1.note.60",
    }, got)
}

func TestCaptureEditToggles(t *testing.T) {
    bus := stream.NewBus[string]()
    var got []string
    c := NewCapture(bus.Stream(), func(target, id string) { got = append(got, target+"="+id) }, nil)

    c.Edit("SC")
    c.Edit("SC")
    bus.Push("32")
    assert.Empty(t, got)

    c.Edit("SC")
    bus.Push("32")
    bus.Push("33")
    assert.Equal(t, []string{"SC=32"}, got)

    c.Close()
    assert.Equal(t, 0, bus.Len())
}

func TestCaptureNextMayUseCapture(t *testing.T) {
    bus := stream.NewBus[string]()
    var c *Capture
    var seen []string
    c = NewCapture(bus.Stream(), nil, func(target string) string {
        seen = append(seen, c.Editing())
        if target == "A" {
            return "B"
        }
        c.Edit("Z")
        return ""
    })
    defer c.Close()

    c.Edit("A")
    bus.Push("32")
    assert.Equal(t, "B", c.Editing())
    bus.Push("33")
    assert.Equal(t, "Z", c.Editing(), "an Edit made inside next wins")
    assert.Equal(t, []string{"", ""}, seen)
}
