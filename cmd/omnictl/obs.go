package main

import (
    "context"
    "errors"
    "flag"
    "fmt"
    "log/slog"
    "os"
    "os/signal"
    "syscall"
    "time"

    "golang.org/x/sync/errgroup"

    "omniinput/internal/config"
    "omniinput/internal/metrics"
    "omniinput/internal/obsws"
    "omniinput/internal/omni"
)

func runObs(args []string) error {
    fs := flag.NewFlagSet("obs", flag.ExitOnError)
    cf := addCommonFlags(fs)
    of := &obsFlags{
        addrs:     fs.String("addrs", "", "OBS WebSocket のアドレスをカンマ区切り（host:port）。未指定なら設定ファイルの有効な接続"),
        password:  fs.String("password", "", "OBS WebSocket のパスワード（共通）"),
        timeout:   fs.Duration("timeout", 5*time.Second, "OBS リクエストのタイムアウト"),
        ratelimit: fs.Duration("ratelimit", 50*time.Millisecond, "同じキーで切り替える最短間隔"),
    }
    fs.Var(&of.maps, "map", "識別子→シーンの対応（複数可）。例: 32=Intro, gamepad.0.button.0=Main")
    metricsAddr := fs.String("metrics", "", "Prometheus のメトリクスを公開するアドレス（例: :9102）")
    fs.Usage = obsUsage
    _ = fs.Parse(args)

    log := initLogger(*cf.debug)
    c, path, err := cf.load(fs)
    if err != nil { return err }
    of.apply(fs, c)

    scenes, err := obsws.ParseSceneMap(c.OBS.Scenes)
    if err != nil { return err }
    if len(scenes) == 0 {
        log.Warn("識別子→シーンの対応がありません。-map \"32=Scene\" のように指定してください。")
    }
    targets := c.OBS.EnabledAddrs()
    if len(targets) == 0 {
        return errors.New("有効な接続先がありません。-addrs を確認してください。")
    }

    sw := obsws.NewSwitcher(obsws.SwitcherOptions{
        Addrs:    targets,
        Password: c.OBS.CommonPassword,
        Timeout:  config.DurationOr(c.OBS.Timeout, 5*time.Second),
        Logger:   log,
    })
    defer sw.Close()
    bridge := obsws.NewBridge(sw, scenes, config.DurationOr(c.OBS.RateLimit, 50*time.Millisecond), log)

    ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
    defer stop()

    return withHost(ctx, func(ctx context.Context, host any) error {
        g, ctx := errgroup.WithContext(ctx)

        var obs omni.Observer
        if *metricsAddr != "" {
            rec := metrics.New()
            obs = rec
            g.Go(func() error { return serveMetrics(ctx, *metricsAddr, rec.Handler()) })
        }

        e := openEngine(ctx, host, c, obs, log)
        defer e.Close()

        // OBS の応答待ちでポーリングを止めない
        unsub := e.keys.Subscribe(func(id string) {
            go func() {
                if _, _, err := bridge.Handle(id); err != nil {
                    log.Error("シーン切替失敗", "id", id, "err", err)
                }
            }()
        })
        defer unsub()

        if path != "" {
            g.Go(func() error {
                return config.Watch(ctx, path, func(nc *config.Config) {
                    of.apply(fs, nc)
                    reloadObs(nc, bridge, sw, log)
                })
            })
        }
        g.Go(func() error {
            <-ctx.Done()
            return nil
        })
        return g.Wait()
    })
}

// obsFlags は OBS 関連のフラグ。
type obsFlags struct {
    addrs     *string
    password  *string
    timeout   *time.Duration
    ratelimit *time.Duration
    maps      multiFlag
}

// apply は明示指定されたフラグで c を上書きする。-map は設定の scenes に追加する。
func (of *obsFlags) apply(fs *flag.FlagSet, c *config.Config) {
    fs.Visit(func(f *flag.Flag) {
        switch f.Name {
        case "addrs":
            c.OBS.Connections = nil
            for i, a := range splitList(*of.addrs) {
                c.OBS.Connections = append(c.OBS.Connections, config.Connection{Name: fmt.Sprintf("cli-%d", i), Addr: a, Enabled: true})
            }
        case "password":
            c.OBS.CommonPassword = *of.password
        case "timeout":
            c.OBS.Timeout = of.timeout.String()
        case "ratelimit":
            c.OBS.RateLimit = of.ratelimit.String()
        }
    })
    c.OBS.Scenes = append(c.OBS.Scenes, of.maps...)
}

func reloadObs(nc *config.Config, bridge *obsws.Bridge, sw *obsws.Switcher, log *slog.Logger) {
    scenes, err := obsws.ParseSceneMap(nc.OBS.Scenes)
    if err != nil {
        log.Warn("scenes の再読み込みに失敗", "err", err)
        return
    }
    bridge.SetScenes(scenes, config.DurationOr(nc.OBS.RateLimit, 50*time.Millisecond))
    sw.Reconfigure(nc.OBS.EnabledAddrs(), nc.OBS.CommonPassword)
    log.Info("シーン割り当てを更新", "entries", len(scenes))
}

func obsUsage() {
    fmt.Fprintln(os.Stderr, "Usage: omnictl obs [options]")
    fmt.Fprintln(os.Stderr, "\n説明: 入力の押下に応じて、全ての OBS のプログラムシーンを切り替えます。")
    fmt.Fprintln(os.Stderr, "      設定ファイルの変更（obs.scenes / obs.connections）は自動で反映されます。")
    fmt.Fprintln(os.Stderr, "\n主なオプション:")
    fmt.Fprintln(os.Stderr, "  -addrs      OBS のアドレスをカンマ区切り (host:port)")
    fmt.Fprintln(os.Stderr, "  -password   パスワード（全接続共通）")
    fmt.Fprintln(os.Stderr, "  -map        識別子=シーン名（複数可）。識別子は 'omnictl watch' で確認できます")
    fmt.Fprintln(os.Stderr, "  -ratelimit  同じキーでの切替の最短間隔 (例: 50ms)")
    fmt.Fprintln(os.Stderr, "  -timeout    OBS リクエストのタイムアウト (例: 5s)")
    fmt.Fprintln(os.Stderr, "  -metrics    Prometheus の公開アドレス (例: :9102)")
    fmt.Fprintln(os.Stderr, "  その他の入力関連オプションは 'omnictl help watch' を参照")
}
