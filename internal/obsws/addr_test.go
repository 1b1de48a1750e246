package obsws

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestNormalizeObsAddr(t *testing.T) {
    cases := []struct{
        in  string
        out string
    }{
        {"127.0.0.1:4455", "127.0.0.1:4455"},
        {" ws://127.0.0.1:4455 ", "127.0.0.1:4455"},
        {"wss://example.com:4455", "example.com:4455"},
        {"  example.com:4455  ", "example.com:4455"},
    }
    for _, c := range cases {
        got := NormalizeObsAddr(c.in)
        if got != c.out {
            t.Fatalf("NormalizeObsAddr(%q)=%q; want %q", c.in, got, c.out)
        }
    }
}

func TestParseSceneMap(t *testing.T) {
    m, err := ParseSceneMap([]string{
        "32=Intro",
        " gamepad.0.button.1 = Main Camera ",
        "midi.1.10.note.36=BRB=2",
    })
    require.NoError(t, err)
    assert.Equal(t, map[string]string{
        "32":                 "Intro",
        "gamepad.0.button.1": "Main Camera",
        "midi.1.10.note.36":  "BRB=2",
    }, m)

    empty, err := ParseSceneMap(nil)
    require.NoError(t, err)
    assert.Empty(t, empty)

    for _, bad := range [][]string{
        {"32"},
        {"=Intro"},
        {"32= "},
        {"32=A", "32=B"},
    } {
        _, err := ParseSceneMap(bad)
        assert.Error(t, err, "%v", bad)
    }
}
