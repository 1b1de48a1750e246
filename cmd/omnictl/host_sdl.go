//go:build sdl

package main

import (
    "context"

    "omniinput/internal/host/sdlhost"
)

// withHost は SDL のウィンドウをホストにして fn を実行する。main ゴルーチンから呼ぶこと。
func withHost(ctx context.Context, fn func(ctx context.Context, host any) error) error {
    return sdlhost.Run(ctx, "omnictl", func(ctx context.Context, h *sdlhost.Host) error {
        return fn(ctx, h)
    })
}
