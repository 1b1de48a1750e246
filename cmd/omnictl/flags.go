package main

import (
    "errors"
    "flag"
    "fmt"
    "os"
    "strings"
    "time"

    "omniinput/internal/config"
)

// commonFlags は watch と obs で共通のフラグ。指定されたものだけ設定ファイルより優先する。
type commonFlags struct {
    config     *string
    debug      *bool
    interval   *time.Duration
    debounce   *time.Duration
    midi       *bool
    midiDevice *string
    channel    *string
    button     *float64
    axis       *float64
}

func addCommonFlags(fs *flag.FlagSet) *commonFlags {
    return &commonFlags{
        config:     fs.String("config", "", "設定ファイル（.json / .yaml）。未指定なら既定の場所"),
        debug:      fs.Bool("debug", false, "デバッグログを有効化"),
        interval:   fs.Duration("interval", 16*time.Millisecond, "ポーリング間隔"),
        debounce:   fs.Duration("debounce", 16*time.Millisecond, "同時押しをまとめる時間（0 で無効）"),
        midi:       fs.Bool("midi", false, "MIDI 入力を有効化"),
        midiDevice: fs.String("midi-device", "", "MIDI 入力デバイス名（空なら全入力）"),
        channel:    fs.String("channel", "", "受け付ける MIDI チャネル (1-16、カンマ区切り。未指定は全て)"),
        button:     fs.Float64("button-threshold", 0.5, "ゲームパッドのボタンを押下とみなす値"),
        axis:       fs.Float64("axis-threshold", 0.9, "ゲームパッドの軸を方向入力とみなす値"),
    }
}

// load は設定を読み込み、明示されたフラグで上書きする。
// 設定ファイルが無いときは既定値を使い、監視用のパスは空で返す。
func (cf *commonFlags) load(fs *flag.FlagSet) (*config.Config, string, error) {
    path := strings.TrimSpace(*cf.config)
    c, err := config.Load(path)
    switch {
    case errors.Is(err, os.ErrNotExist):
        if path != "" {
            return nil, "", fmt.Errorf("設定ファイルがありません: %s", path)
        }
        c, path = config.Default(), ""
    case err != nil:
        return nil, "", err
    case path == "":
        path, _ = config.DefaultPath()
    }
    cf.apply(fs, c)
    return c, path, nil
}

// apply は明示指定されたフラグだけを c に反映する。
func (cf *commonFlags) apply(fs *flag.FlagSet, c *config.Config) {
    fs.Visit(func(f *flag.Flag) {
        switch f.Name {
        case "interval":
            c.Poll.Interval = cf.interval.String()
        case "debounce":
            c.Poll.Debounce = cf.debounce.String()
        case "midi":
            c.MIDI.Enabled = *cf.midi
        case "midi-device":
            c.MIDI.Device = *cf.midiDevice
            c.MIDI.Enabled = true
        case "channel":
            c.MIDI.Channel = *cf.channel
        case "button-threshold":
            c.Gamepad.ButtonThreshold = *cf.button
        case "axis-threshold":
            c.Gamepad.AxisThreshold = *cf.axis
        }
    })
}

// multiFlag は同名フラグの複数指定を受け取るためのヘルパ。
type multiFlag []string
func (m *multiFlag) String() string { return strings.Join(*m, ",") }
func (m *multiFlag) Set(s string) error { *m = append(*m, s); return nil }

func splitList(s string) []string {
    var out []string
    for _, p := range strings.Split(s, ",") {
        if p = strings.TrimSpace(p); p != "" {
            out = append(out, p)
        }
    }
    return out
}
