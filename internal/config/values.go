package config

import (
    "fmt"
    "strings"
    "time"

    "github.com/samber/lo"
)

// DurationOr は s を time.Duration として読む。読めなければ d。
// "0" は 0 を返す（デバウンス無効の指定に使う）。
func DurationOr(s string, d time.Duration) time.Duration {
    if v, err := time.ParseDuration(strings.TrimSpace(s)); err == nil && v >= 0 { return v }
    return d
}

// ParseChannels は "1,2" 形式を 1-16 のチャネル配列にする。範囲外・重複は捨てる。
func ParseChannels(s string) []int {
    if strings.TrimSpace(s) == "" { return nil }
    var out []int
    for _, p := range strings.Split(s, ",") {
        p = strings.TrimSpace(p)
        if p == "" { continue }
        var v int
        _, err := fmt.Sscanf(p, "%d", &v)
        if err == nil && v >= 1 && v <= 16 { out = append(out, v) }
    }
    return lo.Uniq(out)
}

// EnabledAddrs は有効な接続のアドレス一覧。
func (c OBSConfig) EnabledAddrs() []string {
    return lo.FilterMap(c.Connections, func(x Connection, _ int) (string, bool) {
        return strings.TrimSpace(x.Addr), x.Enabled && strings.TrimSpace(x.Addr) != ""
    })
}
