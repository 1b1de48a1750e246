package stream

import (
    "context"
    "slices"
    "sync"
    "time"

    "github.com/samber/lo"
    "golang.org/x/time/rate"
)

// Bus は Push された値を現在の購読者全員に同期的に配る。
type Bus[T any] struct {
    mu   sync.Mutex
    next int
    subs map[int]Sink[T]
}

// NewBus は空の Bus を作る。
func NewBus[T any]() *Bus[T] {
    return &Bus[T]{subs: map[int]Sink[T]{}}
}

// Push は v を購読順に配る。購読者がいなければ捨てる。
func (b *Bus[T]) Push(v T) {
    b.mu.Lock()
    ids := lo.Keys(b.subs)
    sinks := make([]Sink[T], 0, len(ids))
    // 購読順を保つ
    slices.Sort(ids)
    for _, id := range ids {
        sinks = append(sinks, b.subs[id])
    }
    b.mu.Unlock()

    for _, s := range sinks {
        s(v)
    }
}

// Len は現在の購読者数。
func (b *Bus[T]) Len() int {
    b.mu.Lock()
    defer b.mu.Unlock()
    return len(b.subs)
}

// Stream は Bus を購読する Stream を返す。
func (b *Bus[T]) Stream() Stream[T] {
    return New(func(sink Sink[T]) func() {
        b.mu.Lock()
        id := b.next
        b.next++
        b.subs[id] = sink
        b.mu.Unlock()
        return func() {
            b.mu.Lock()
            delete(b.subs, id)
            b.mu.Unlock()
        }
    })
}

// DebounceImmediate はバーストの先頭だけを通す。直前に通した値から d 未満の値は捨てる。
// d <= 0 なら s をそのまま返す。
func DebounceImmediate[T any](s Stream[T], d time.Duration) Stream[T] {
    return DebounceImmediateAt(s, d, time.Now)
}

// DebounceImmediateAt は時刻を now から読む DebounceImmediate。
func DebounceImmediateAt[T any](s Stream[T], d time.Duration, now func() time.Time) Stream[T] {
    if d <= 0 {
        return s
    }
    return New(func(sink Sink[T]) func() {
        // バースト 1 のトークンバケツ: 通すたびに空になり d で 1 つ戻る
        gate := rate.NewLimiter(rate.Every(d), 1)
        return s.Subscribe(func(v T) {
            if gate.AllowN(now(), 1) {
                sink(v)
            }
        })
    })
}

// FromChan はチャネルを Stream にする。購読ごとにゴルーチンを 1 つ起こし、
// ctx の終了・チャネルのクローズ・購読解除のいずれかで止まる。
// 同じチャネルを複数購読すると値は購読者間で分配される点に注意。
func FromChan[T any](ctx context.Context, ch <-chan T) Stream[T] {
    return New(func(sink Sink[T]) func() {
        done := make(chan struct{})
        go func() {
            for {
                select {
                case <-ctx.Done():
                    return
                case <-done:
                    return
                case v, ok := <-ch:
                    if !ok {
                        return
                    }
                    sink(v)
                }
            }
        }()
        var once sync.Once
        return func() { once.Do(func() { close(done) }) }
    })
}
