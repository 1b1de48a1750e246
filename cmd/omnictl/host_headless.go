//go:build !sdl

package main

import (
    "context"
    "log/slog"
)

// withHost はホスト無し（MIDI のみ）で fn を実行する。
func withHost(ctx context.Context, fn func(ctx context.Context, host any) error) error {
    slog.Info("キーボード/ゲームパッドはビルドタグ 'sdl' が必要です。MIDI のみで動作します。")
    return fn(ctx, nil)
}
