// Package stream は購読解除できる遅延シーケンスの最小実装です。
//
// Stream は Subscribe されるまで何もしません。Subscribe が返す関数を呼ぶと
// 以降に始まる配信はそのサブスクライバに届きません。
package stream

import (
    "sync"
    "sync/atomic"
)

// Sink は値の受け取り側。
type Sink[T any] func(T)

// Stream は Subscribe で起動する値の列。
type Stream[T any] struct {
    subscribe func(Sink[T]) func()
}

// New は subscribe 関数から Stream を作る。subscribe は解除関数を返すこと。
func New[T any](subscribe func(Sink[T]) func()) Stream[T] {
    return Stream[T]{subscribe: subscribe}
}

// Never は何も流さない Stream。
func Never[T any]() Stream[T] {
    return New(func(Sink[T]) func() { return func() {} })
}

// Subscribe は fn を登録し、解除関数を返す。解除は冪等。
// 解除が戻った後に始まる配信は fn に届かない。別ゴルーチンで既に始まっている
// 配信は 1 回だけ届き得る（fn の中から解除できるよう配信中はロックしない）。
func (s Stream[T]) Subscribe(fn Sink[T]) (unsubscribe func()) {
    if s.subscribe == nil || fn == nil {
        return func() {}
    }
    var closed atomic.Bool
    guarded := func(v T) {
        if closed.Load() {
            return
        }
        fn(v)
    }
    stop := s.subscribe(guarded)
    var once sync.Once
    return func() {
        once.Do(func() {
            closed.Store(true)
            if stop != nil {
                stop()
            }
        })
    }
}

// Map は各値に f を適用する。
func Map[T, U any](s Stream[T], f func(T) U) Stream[U] {
    return New(func(sink Sink[U]) func() {
        return s.Subscribe(func(v T) { sink(f(v)) })
    })
}

// Filter は keep が true の値だけを通す。
func Filter[T any](s Stream[T], keep func(T) bool) Stream[T] {
    return New(func(sink Sink[T]) func() {
        return s.Subscribe(func(v T) {
            if keep(v) {
                sink(v)
            }
        })
    })
}

// Expand は 1 つの値を 0 個以上の値に展開し、順番どおりに流す。
// f はサブスクリプションごとに newF から作られるので、状態を持ってよい。
func Expand[T, U any](s Stream[T], newF func() func(T) []U) Stream[U] {
    return New(func(sink Sink[U]) func() {
        f := newF()
        return s.Subscribe(func(v T) {
            for _, u := range f(v) {
                sink(u)
            }
        })
    })
}
