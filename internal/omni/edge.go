package omni

import (
    "slices"
    "strings"

    "github.com/samber/lo"

    "omniinput/internal/stream"
)

// Diff は prev で非アクティブ、cur でアクティブになったキーを CompareKeys 順で返す。
func Diff(prev, cur Snapshot) []string {
    pressed := lo.Filter(lo.Keys(cur), func(id string, _ int) bool {
        return cur[id] && !prev[id]
    })
    slices.SortFunc(pressed, CompareKeys)
    return pressed
}

// CompareKeys は 10 進数だけの識別子（キーボード）を数値順で先に並べ、
// それ以外はバイト列順で比べる。
func CompareKeys(a, b string) int {
    na, okA := atoi(a)
    nb, okB := atoi(b)
    switch {
    case okA && okB:
        return na - nb
    case okA:
        return -1
    case okB:
        return 1
    }
    return strings.Compare(a, b)
}

// EdgeDetector は連続する Snapshot から押下の瞬間を取り出す。
type EdgeDetector struct {
    prev Snapshot
}

// Next は cur を受け取って新たに押されたキーを返し、cur を次の比較対象にする。
// cur に無いキーは離されたとみなす（マージはしない）。
func (d *EdgeDetector) Next(cur Snapshot) []string {
    pressed := Diff(d.prev, cur)
    // 呼び出し側が cur を書き換えても壊れないように有効なキーだけ写す
    d.prev = lo.PickBy(cur, func(_ string, on bool) bool { return on })
    return pressed
}

// KeyForUpdate は Snapshot の Stream を Press Event の Stream に変える。
// 購読ごとに検出器を持つ。
func KeyForUpdate(snapshots stream.Stream[Snapshot]) stream.Stream[string] {
    return stream.Expand(snapshots, func() func(Snapshot) []string {
        d := &EdgeDetector{}
        return d.Next
    })
}
