package omni

import (
    "time"

    "omniinput/internal/stream"
)

const (
    DefaultPollInterval = 16 * time.Millisecond
    // 一部のゲームパッドは 1 回の操作で複数ボタンを同時に立てるので、その分をまとめる
    DefaultDebounce = 16 * time.Millisecond
)

type pollConfig struct {
    interval time.Duration
    debounce time.Duration
    observe  Observer
}

// PollOption は Keys の挙動を変える。
type PollOption func(*pollConfig)

// WithInterval はポーリング間隔を指定する。
func WithInterval(d time.Duration) PollOption {
    return func(c *pollConfig) {
        if d > 0 {
            c.interval = d
        }
    }
}

// WithDebounce はバーストの先頭だけを通すデバウンスを有効にする。0 で無効。
func WithDebounce(d time.Duration) PollOption {
    return func(c *pollConfig) { c.debounce = d }
}

// WithObserver は Press Event を o にも知らせる。
func WithObserver(o Observer) PollOption {
    return func(c *pollConfig) {
        if o != nil {
            c.observe = o
        }
    }
}

// Snapshots は clock の間隔ごとに in.Update の結果を流す。
// タイマは Subscribe で張られ、解除で外れる。
func Snapshots(in *OmniInput, clock Clock, interval time.Duration) stream.Stream[Snapshot] {
    if interval <= 0 {
        interval = DefaultPollInterval
    }
    return stream.New(func(sink stream.Sink[Snapshot]) func() {
        return clock.SetInterval(func() { sink(in.Update()) }, interval)
    })
}

// Keys は新たに押されたキーの識別子を流す Stream を返す。
func Keys(in *OmniInput, clock Clock, opts ...PollOption) stream.Stream[string] {
    c := pollConfig{interval: DefaultPollInterval, observe: nopObserver{}}
    for _, o := range opts {
        o(&c)
    }
    keys := KeyForUpdate(Snapshots(in, clock, c.interval))
    keys = stream.DebounceImmediateAt(keys, c.debounce, nowFunc(clock))
    return stream.Map(keys, func(id string) string {
        c.observe.Pressed(id)
        return id
    })
}
