package obsws

import (
    "fmt"
    "strings"
)

// NormalizeObsAddr は goobs.New に渡すために、ユーザーが ws:// や wss:// を付けてしまった場合に除去します。
func NormalizeObsAddr(a string) string {
    a = strings.TrimSpace(a)
    for _, p := range []string{"ws://", "wss://"} {
        if strings.HasPrefix(a, p) {
            return strings.TrimPrefix(a, p)
        }
    }
    return a
}

// ParseSceneMap は "識別子=Scene Name" の配列を読む。
// 識別子側は前後の空白を落とし、シーン名は中の空白をそのまま残す。
func ParseSceneMap(entries []string) (map[string]string, error) {
    out := make(map[string]string, len(entries))
    for i, e := range entries {
        id, scene, ok := strings.Cut(e, "=")
        id, scene = strings.TrimSpace(id), strings.TrimSpace(scene)
        if !ok || id == "" || scene == "" {
            return nil, fmt.Errorf("scenes[%d] の形式が不正です（識別子=シーン名）: %q", i, e)
        }
        if prev, dup := out[id]; dup {
            return nil, fmt.Errorf("scenes[%d]: %s は既に %q に割り当て済みです", i, id, prev)
        }
        out[id] = scene
    }
    return out, nil
}
