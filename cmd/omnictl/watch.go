package main

import (
    "context"
    "flag"
    "fmt"
    "os"
    "os/signal"
    "syscall"

    "golang.org/x/sync/errgroup"

    "omniinput/internal/metrics"
    "omniinput/internal/omni"
)

func runWatch(args []string) error {
    fs := flag.NewFlagSet("watch", flag.ExitOnError)
    cf := addCommonFlags(fs)
    metricsAddr := fs.String("metrics", "", "Prometheus のメトリクスを公開するアドレス（例: :9102）")
    capture := fs.String("capture", "", "割り当てる対象をカンマ区切り。押したキーを順に割り当てて 識別子=対象 の形で出力")
    fs.Usage = watchUsage
    _ = fs.Parse(args)

    log := initLogger(*cf.debug)
    c, _, err := cf.load(fs)
    if err != nil { return err }
    log.Debug("設定", "poll", c.Poll, "gamepad", c.Gamepad, "midi", c.MIDI)

    ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
    defer stop()

    return withHost(ctx, func(ctx context.Context, host any) error {
        ctx, cancel := context.WithCancel(ctx)
        defer cancel()
        g, ctx := errgroup.WithContext(ctx)

        var obs omni.Observer
        if *metricsAddr != "" {
            rec := metrics.New()
            obs = rec
            g.Go(func() error { return serveMetrics(ctx, *metricsAddr, rec.Handler()) })
        }

        e := openEngine(ctx, host, c, obs, log)
        defer e.Close()

        if targets := splitList(*capture); len(targets) > 0 {
            next := nextTarget(targets)
            cp := omni.NewCapture(e.keys, func(target, id string) {
                fmt.Printf("%s=%s\t# %s\n", id, target, omni.Name(id))
                if n := next(target); n != "" {
                    prompt(n)
                } else {
                    cancel()
                }
            }, next)
            defer cp.Close()
            cp.Edit(targets[0])
            prompt(targets[0])
        } else {
            unsub := e.keys.Subscribe(func(id string) {
                fmt.Printf("%s\t%s\n", id, omni.Name(id))
            })
            defer unsub()
        }

        g.Go(func() error {
            <-ctx.Done()
            return nil
        })
        return g.Wait()
    })
}

// nextTarget は targets の中で cur の次の対象を返す。最後なら ""。
func nextTarget(targets []string) func(cur string) string {
    return func(cur string) string {
        for i, t := range targets {
            if t == cur && i+1 < len(targets) {
                return targets[i+1]
            }
        }
        return ""
    }
}

func prompt(target string) {
    fmt.Fprintf(os.Stderr, "割り当て: %s のキーを押してください\n", target)
}

func watchUsage() {
    fmt.Fprintln(os.Stderr, "Usage: omnictl watch [options]")
    fmt.Fprintln(os.Stderr, "\n説明: 新しく押された入力を 1 行ずつ「識別子<TAB>表示名」で出力します。")
    fmt.Fprintln(os.Stderr, "\n主なオプション:")
    fmt.Fprintln(os.Stderr, "  -config            設定ファイル（.json / .yaml）")
    fmt.Fprintln(os.Stderr, "  -interval          ポーリング間隔 (例: 16ms)")
    fmt.Fprintln(os.Stderr, "  -debounce          同時押しをまとめる時間 (0 で無効)")
    fmt.Fprintln(os.Stderr, "  -midi              MIDI 入力を有効化")
    fmt.Fprintln(os.Stderr, "  -midi-device       MIDI 入力デバイス名（指定すると -midi も有効）")
    fmt.Fprintln(os.Stderr, "  -channel           MIDI チャネル (1-16、カンマ区切り)")
    fmt.Fprintln(os.Stderr, "  -button-threshold  ボタン押下のしきい値 (既定 0.5)")
    fmt.Fprintln(os.Stderr, "  -axis-threshold    軸入力のしきい値 (既定 0.9)")
    fmt.Fprintln(os.Stderr, "  -capture           割り当て対象をカンマ区切り (例: Intro,Main)")
    fmt.Fprintln(os.Stderr, "  -metrics           Prometheus の公開アドレス (例: :9102)")
    fmt.Fprintln(os.Stderr, "  -debug             デバッグログを有効化")
}
