package obsws

import (
    "errors"
    "sort"
    "sync"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

type fakeClient struct {
    addr   string
    mu     *sync.Mutex
    log    *[]string
    fail   int // 残り失敗回数
    closed bool
}

func (f *fakeClient) SetScene(name string) error {
    f.mu.Lock()
    defer f.mu.Unlock()
    if f.fail > 0 {
        f.fail--
        return errors.New("broken pipe")
    }
    *f.log = append(*f.log, f.addr+":"+name)
    return nil
}

func (f *fakeClient) Close() error { f.closed = true; return nil }

type fakeDialer struct {
    mu      sync.Mutex
    dials   []string
    scenes  []string
    clients []*fakeClient
    failFor map[string]int // addr ごとの最初のクライアントの失敗回数
    refuse  map[string]bool
}

func (d *fakeDialer) dial(addr, password string) (SceneClient, error) {
    d.mu.Lock()
    defer d.mu.Unlock()
    d.dials = append(d.dials, addr+"/"+password)
    if d.refuse[addr] { return nil, errors.New("connection refused") }
    c := &fakeClient{addr: addr, mu: &d.mu, log: &d.scenes, fail: d.failFor[addr]}
    delete(d.failFor, addr)
    d.clients = append(d.clients, c)
    return c, nil
}

func (d *fakeDialer) sortedScenes() []string {
    d.mu.Lock()
    defer d.mu.Unlock()
    out := append([]string(nil), d.scenes...)
    sort.Strings(out)
    return out
}

func TestSwitcherSetsEveryConnectionAndCaches(t *testing.T) {
    d := &fakeDialer{}
    s := NewSwitcher(SwitcherOptions{Addrs: []string{"ws://a:1", "b:1", " ", "a:1"}, Password: "pw", Dial: d.dial})

    require.NoError(t, s.SetScene("Intro"))
    require.NoError(t, s.SetScene("Main"))

    assert.Equal(t, []string{"a:1:Intro", "a:1:Main", "b:1:Intro", "b:1:Main"}, d.sortedScenes())
    assert.Len(t, d.dials, 2, "clients are cached per address")

    require.NoError(t, s.Close())
    for _, c := range d.clients {
        assert.True(t, c.closed)
    }
}

func TestSwitcherReconnectsOnce(t *testing.T) {
    d := &fakeDialer{failFor: map[string]int{"a:1": 1}}
    s := NewSwitcher(SwitcherOptions{Addrs: []string{"a:1"}, Dial: d.dial})

    require.NoError(t, s.SetScene("Intro"))
    assert.Equal(t, []string{"a:1/", "a:1/"}, d.dials)
    assert.True(t, d.clients[0].closed)
    assert.Equal(t, []string{"a:1:Intro"}, d.sortedScenes())
}

func TestSwitcherErrors(t *testing.T) {
    d := &fakeDialer{refuse: map[string]bool{"b:1": true}}
    s := NewSwitcher(SwitcherOptions{Addrs: []string{"a:1", "b:1"}, Dial: d.dial})

    assert.Error(t, s.SetScene(" "))
    err := s.SetScene("Intro")
    assert.ErrorContains(t, err, "b:1")
    assert.Equal(t, []string{"a:1:Intro"}, d.sortedScenes(), "reachable connections still switch")

    empty := NewSwitcher(SwitcherOptions{Dial: d.dial})
    assert.Error(t, empty.SetScene("Intro"))
}

func TestSwitcherReconfigure(t *testing.T) {
    d := &fakeDialer{}
    s := NewSwitcher(SwitcherOptions{Addrs: []string{"a:1", "b:1"}, Password: "x", Dial: d.dial})
    require.NoError(t, s.SetScene("S"))
    require.Len(t, d.clients, 2)

    // b を外す: a のキャッシュは残る
    s.Reconfigure([]string{"a:1"}, "x")
    require.NoError(t, s.SetScene("S"))
    assert.Len(t, d.dials, 2)

    // パスワード変更: 張り直し
    s.Reconfigure([]string{"a:1"}, "y")
    require.NoError(t, s.SetScene("S"))
    assert.Equal(t, "a:1/y", d.dials[len(d.dials)-1])
    for _, c := range d.clients[:2] {
        assert.True(t, c.closed)
    }
}

func TestWithTimeout(t *testing.T) {
    // Should succeed before timeout
    err := withTimeout(func() error { return nil }, 10*time.Millisecond)
    if err != nil { t.Fatalf("unexpected error: %v", err) }

    // Should time out
    start := time.Now()
    err = withTimeout(func() error {
        time.Sleep(50 * time.Millisecond)
        return nil
    }, 10*time.Millisecond)
    if err == nil { t.Fatalf("expected timeout error") }
    if time.Since(start) > 200*time.Millisecond {
        t.Fatalf("withTimeout took too long")
    }

    // Propagate error
    want := errors.New("boom")
    if got := withTimeout(func() error { return want }, 0); !errors.Is(got, want) {
        t.Fatalf("expected error to propagate, got %v", got)
    }
}
