package obsws

import (
    "log/slog"
    "maps"
    "sync"
    "time"
)

// SceneSetter は Bridge の送り先。通常は *Switcher。
type SceneSetter interface {
    SetScene(scene string) error
}

// Bridge は Key Identifier の押下をシーン切替に変換する。
// 同じ識別子の連打は rateLimit の間隔で間引く。
type Bridge struct {
    mu        sync.Mutex
    to        SceneSetter
    scenes    map[string]string
    rateLimit time.Duration
    lastAt    map[string]time.Time
    now       func() time.Time
    log       *slog.Logger
}

func NewBridge(to SceneSetter, scenes map[string]string, rateLimit time.Duration, log *slog.Logger) *Bridge {
    if log == nil { log = slog.Default() }
    return &Bridge{
        to:        to,
        scenes:    maps.Clone(scenes),
        rateLimit: rateLimit,
        lastAt:    map[string]time.Time{},
        now:       time.Now,
        log:       log,
    }
}

// SetScenes は割り当てを差し替える（設定の再読み込み用）。
func (b *Bridge) SetScenes(scenes map[string]string, rateLimit time.Duration) {
    b.mu.Lock()
    defer b.mu.Unlock()
    b.scenes = maps.Clone(scenes)
    b.rateLimit = rateLimit
}

// Handle は id に割り当てたシーンへ切り替える。
// 割り当てが無いか間引かれた場合は fired=false で何もしない。
func (b *Bridge) Handle(id string) (scene string, fired bool, err error) {
    b.mu.Lock()
    scene, ok := b.scenes[id]
    if !ok {
        b.mu.Unlock()
        return "", false, nil
    }
    now := b.now()
    if last, seen := b.lastAt[id]; seen && now.Sub(last) < b.rateLimit {
        b.mu.Unlock()
        b.log.Debug("レート制限で無視", "id", id, "scene", scene)
        return scene, false, nil
    }
    b.lastAt[id] = now
    b.mu.Unlock()

    if err := b.to.SetScene(scene); err != nil {
        return scene, true, err
    }
    b.log.Info("シーン切替", "id", id, "scene", scene)
    return scene, true, nil
}
