package midi

import (
    "context"

    "omniinput/internal/stream"
)

// Open は device を開いて Stream として返す。device が空なら全入力を開く。
// Stream の配信は ctx が終わるまでドライバ側のゴルーチンから行われる。
func Open(ctx context.Context, device string) (Input, stream.Stream[Message], error) {
    var (
        in  Input
        ch  <-chan Message
        err error
    )
    if device == "" {
        in, ch, err = OpenAll()
    } else {
        in, ch, err = OpenInput(device)
    }
    if err != nil {
        return nil, stream.Never[Message](), err
    }
    return in, stream.FromChan(ctx, ch), nil
}
