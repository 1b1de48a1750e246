package obsws

import (
    "errors"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

type recordSetter struct {
    got []string
    err error
}

func (r *recordSetter) SetScene(s string) error {
    r.got = append(r.got, s)
    return r.err
}

func TestBridgeRateLimitsPerKey(t *testing.T) {
    to := &recordSetter{}
    b := NewBridge(to, map[string]string{"32": "Intro", "33": "Main"}, 50*time.Millisecond, nil)
    now := time.Unix(100, 0)
    b.now = func() time.Time { return now }

    scene, fired, err := b.Handle("32")
    require.NoError(t, err)
    assert.True(t, fired)
    assert.Equal(t, "Intro", scene)

    _, fired, _ = b.Handle("32")
    assert.False(t, fired, "same key inside the window")

    _, fired, _ = b.Handle("33")
    assert.True(t, fired, "other keys have their own window")

    now = now.Add(50 * time.Millisecond)
    _, fired, _ = b.Handle("32")
    assert.True(t, fired)

    _, fired, _ = b.Handle("65")
    assert.False(t, fired, "unmapped key")

    assert.Equal(t, []string{"Intro", "Main", "Intro"}, to.got)
}

func TestBridgeSetScenes(t *testing.T) {
    to := &recordSetter{err: errors.New("down")}
    m := map[string]string{"32": "Intro"}
    b := NewBridge(to, m, 0, nil)
    m["32"] = "changed outside"

    scene, fired, err := b.Handle("32")
    assert.Equal(t, "Intro", scene)
    assert.True(t, fired)
    assert.Error(t, err)

    b.SetScenes(map[string]string{"gamepad.0.button.1": "BRB"}, 0)
    _, fired, _ = b.Handle("32")
    assert.False(t, fired)
    scene, fired, _ = b.Handle("gamepad.0.button.1")
    assert.True(t, fired)
    assert.Equal(t, "BRB", scene)
}
