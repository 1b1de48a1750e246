package obsws

import (
    "errors"
    "fmt"
    "log/slog"
    "strings"
    "sync"
    "time"

    "github.com/andreykaipov/goobs"
    "github.com/andreykaipov/goobs/api/requests/scenes"
    "golang.org/x/sync/errgroup"
)

// SceneClient は 1 つの OBS 接続に対して行う操作。
type SceneClient interface {
    SetScene(name string) error
    Close() error
}

// Dialer は addr に接続する。password が空なら無認証。
type Dialer func(addr, password string) (SceneClient, error)

type goobsClient struct{ c *goobs.Client }

func (g goobsClient) SetScene(name string) error {
    _, err := g.c.Scenes.SetCurrentProgramScene((&scenes.SetCurrentProgramSceneParams{}).WithSceneName(name))
    return err
}

func (g goobsClient) Close() error { return g.c.Disconnect() }

// DialGoobs は goobs で obs-websocket に接続する。
func DialGoobs(addr, password string) (SceneClient, error) {
    var (
        c   *goobs.Client
        err error
    )
    if strings.TrimSpace(password) == "" {
        c, err = goobs.New(addr)
    } else {
        c, err = goobs.New(addr, goobs.WithPassword(password))
    }
    if err != nil { return nil, err }
    return goobsClient{c: c}, nil
}

type SwitcherOptions struct {
    Addrs    []string
    Password string        // 全接続共通
    Timeout  time.Duration // 1 リクエストあたり。0 なら無制限
    Dial     Dialer        // nil なら DialGoobs
    Logger   *slog.Logger
}

// Switcher は接続をキャッシュしつつ、全接続のプログラムシーンを切り替える。
type Switcher struct {
    mu       sync.Mutex
    addrs    []string
    password string
    timeout  time.Duration
    dial     Dialer
    clients  map[string]SceneClient
    log      *slog.Logger
}

func NewSwitcher(o SwitcherOptions) *Switcher {
    s := &Switcher{dial: o.Dial, timeout: o.Timeout, log: o.Logger, clients: map[string]SceneClient{}}
    if s.dial == nil { s.dial = DialGoobs }
    if s.log == nil { s.log = slog.Default() }
    s.Reconfigure(o.Addrs, o.Password)
    return s
}

// Reconfigure は接続先とパスワードを差し替える。
// パスワードが変わった場合と、接続先から外れたアドレスのキャッシュは切断する。
func (s *Switcher) Reconfigure(addrs []string, password string) {
    norm := make([]string, 0, len(addrs))
    keep := map[string]bool{}
    for _, a := range addrs {
        a = NormalizeObsAddr(a)
        if a == "" || keep[a] { continue }
        keep[a] = true
        norm = append(norm, a)
    }
    password = strings.TrimSpace(password)

    s.mu.Lock()
    defer s.mu.Unlock()
    for addr, c := range s.clients {
        if password != s.password || !keep[addr] {
            _ = c.Close()
            delete(s.clients, addr)
        }
    }
    s.addrs, s.password = norm, password
}

func (s *Switcher) client(addr string) (SceneClient, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    if c, ok := s.clients[addr]; ok { return c, nil }
    c, err := s.dial(addr, s.password)
    if err != nil { return nil, err }
    s.clients[addr] = c
    s.log.Info("接続完了", "addr", "ws://"+addr)
    return c, nil
}

func (s *Switcher) drop(addr string) {
    s.mu.Lock()
    defer s.mu.Unlock()
    if c, ok := s.clients[addr]; ok {
        _ = c.Close()
        delete(s.clients, addr)
    }
}

// SetScene は全接続で同時にシーンを切り替える。失敗した接続は 1 度だけ張り直す。
func (s *Switcher) SetScene(scene string) error {
    scene = strings.TrimSpace(scene)
    if scene == "" { return errors.New("シーン名が空です") }

    s.mu.Lock()
    addrs := append([]string(nil), s.addrs...)
    s.mu.Unlock()
    if len(addrs) == 0 { return errors.New("有効な接続がありません") }

    var g errgroup.Group
    for _, addr := range addrs {
        g.Go(func() error {
            if err := s.setOne(addr, scene); err != nil {
                s.log.Error("切替失敗", "addr", addr, "scene", scene, "err", err)
                return err
            }
            s.log.Debug("シーン切替完了", "addr", addr, "scene", scene)
            return nil
        })
    }
    return g.Wait()
}

func (s *Switcher) setOne(addr, scene string) error {
    cli, err := s.client(addr)
    if err != nil { return fmt.Errorf("%s 接続失敗: %w", addr, err) }
    if err = withTimeout(func() error { return cli.SetScene(scene) }, s.timeout); err == nil {
        return nil
    }
    // 切れている可能性があるので張り直して 1 度だけ再送
    s.drop(addr)
    cli, err2 := s.client(addr)
    if err2 != nil { return fmt.Errorf("%s 再接続失敗: %w", addr, err2) }
    if err3 := withTimeout(func() error { return cli.SetScene(scene) }, s.timeout); err3 != nil {
        return fmt.Errorf("%s 切替失敗: %w", addr, err3)
    }
    return nil
}

// Close はキャッシュしている接続をすべて切断する。
func (s *Switcher) Close() error {
    s.mu.Lock()
    defer s.mu.Unlock()
    var errs []error
    for addr, c := range s.clients {
        if err := c.Close(); err != nil { errs = append(errs, fmt.Errorf("%s: %w", addr, err)) }
        delete(s.clients, addr)
    }
    return errors.Join(errs...)
}

// goobs のリクエストにタイムアウトが無いので goroutine でラップ
func withTimeout(fn func() error, d time.Duration) error {
    if d <= 0 {
        return fn()
    }
    ch := make(chan error, 1)
    go func() { ch <- fn() }()
    select {
    case err := <-ch:
        return err
    case <-time.After(d):
        return fmt.Errorf("timeout after %s", d)
    }
}
