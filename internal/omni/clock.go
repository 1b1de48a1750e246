package omni

import (
    "sync"
    "time"
)

// Clock は一定間隔で fn を呼ぶタイマ源。clear を呼ぶと以降 fn は呼ばれない。
type Clock interface {
    SetInterval(fn func(), d time.Duration) (clear func())
}

// nowFunc は clock が Now を持っていればそれを、無ければ time.Now を返す。
// デバウンスの窓はこの時刻で測る。
func nowFunc(clock Clock) func() time.Time {
    if c, ok := clock.(interface{ Now() time.Time }); ok {
        return c.Now
    }
    return time.Now
}

// SystemClock は time.Ticker による Clock。fn は専用ゴルーチンから呼ばれる。
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

func (SystemClock) SetInterval(fn func(), d time.Duration) func() {
    t := time.NewTicker(d)
    done := make(chan struct{})
    go func() {
        defer t.Stop()
        for {
            select {
            case <-done:
                return
            case <-t.C:
                // Stop と同時に届いた tick は捨てる
                select {
                case <-done:
                    return
                default:
                }
                fn()
            }
        }
    }()
    var once sync.Once
    return func() { once.Do(func() { close(done) }) }
}
