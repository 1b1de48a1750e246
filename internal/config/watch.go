package config

import (
    "context"
    "fmt"
    "log/slog"
    "path/filepath"
    "time"

    "github.com/bep/debounce"
    "github.com/fsnotify/fsnotify"
)

// reloadDelay はエディタ保存時の連続イベントをまとめる待ち時間。
const reloadDelay = 200 * time.Millisecond

// Watch は p の変更を監視し、読み直した設定を fn に渡す。ctx が終わるまで戻らない。
// 読み込みに失敗した変更はログだけ出して無視する。
func Watch(ctx context.Context, p string, fn func(*Config)) error {
    w, err := fsnotify.NewWatcher()
    if err != nil { return fmt.Errorf("fsnotify: %w", err) }
    defer w.Close()

    // rename で置き換えるエディタがあるのでディレクトリごと見る
    abs, err := filepath.Abs(p)
    if err != nil { return err }
    if err := w.Add(filepath.Dir(abs)); err != nil {
        return fmt.Errorf("監視の開始に失敗: %w", err)
    }

    reload := debounce.New(reloadDelay)
    for {
        select {
        case <-ctx.Done():
            return nil
        case ev, ok := <-w.Events:
            if !ok { return nil }
            if filepath.Clean(ev.Name) != abs { continue }
            if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) { continue }
            reload(func() {
                c, err := Load(abs)
                if err != nil {
                    slog.Warn("設定の再読み込みに失敗", "path", abs, "err", err)
                    return
                }
                slog.Info("設定を再読み込みしました", "path", abs)
                fn(c)
            })
        case err, ok := <-w.Errors:
            if !ok { return nil }
            slog.Warn("設定の監視エラー", "err", err)
        }
    }
}
