package main

import (
    "context"
    "errors"
    "log/slog"
    "net/http"
    "time"

    "omniinput/internal/config"
    "omniinput/internal/midi"
    "omniinput/internal/omni"
    "omniinput/internal/stream"
)

// engine は OmniInput と、その上の Press Event の Stream。
type engine struct {
    in     *omni.OmniInput
    keys   stream.Stream[string]
    midiIn midi.Input
}

func omniOptions(c *config.Config, obs omni.Observer, log *slog.Logger) omni.Options {
    return omni.Options{
        MidiChannels:    config.ParseChannels(c.MIDI.Channel),
        ButtonThreshold: c.Gamepad.ButtonThreshold,
        AxisThreshold:   c.Gamepad.AxisThreshold,
        Observer:        obs,
        Logger:          log,
    }
}

func pollOptions(c *config.Config, obs omni.Observer) []omni.PollOption {
    return []omni.PollOption{
        omni.WithInterval(config.DurationOr(c.Poll.Interval, omni.DefaultPollInterval)),
        omni.WithDebounce(config.DurationOr(c.Poll.Debounce, omni.DefaultDebounce)),
        omni.WithObserver(obs),
    }
}

// openEngine は host と設定からエンジンを組み立てる。obs は nil でよい。
func openEngine(ctx context.Context, host any, c *config.Config, obs omni.Observer, log *slog.Logger) *engine {
    e := &engine{}
    opts := omniOptions(c, obs, log)
    if c.MIDI.Enabled {
        opts.Midi = func() (stream.Stream[midi.Message], error) {
            in, s, err := midi.Open(ctx, c.MIDI.Device)
            if err != nil {
                log.Warn("MIDI 入力のオープンに失敗", "device", c.MIDI.Device, "err", err)
                return s, err
            }
            e.midiIn = in
            log.Info("MIDI 受信開始", "device", c.MIDI.Device)
            return s, nil
        }
    }
    e.in = omni.New(host, opts)
    e.keys = omni.Keys(e.in, omni.SystemClock{}, pollOptions(c, obs)...)
    return e
}

func (e *engine) Close() error {
    err := e.in.Close()
    if e.midiIn != nil {
        err = errors.Join(err, e.midiIn.Close())
    }
    return err
}

func serveMetrics(ctx context.Context, addr string, h http.Handler) error {
    mux := http.NewServeMux()
    mux.Handle("/metrics", h)
    srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
    go func() {
        <-ctx.Done()
        sctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
        defer cancel()
        _ = srv.Shutdown(sctx)
    }()
    slog.Info("メトリクス公開", "addr", addr)
    if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
        return err
    }
    return nil
}
