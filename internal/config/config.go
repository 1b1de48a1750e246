package config

import (
    "encoding/json"
    "errors"
    "fmt"
    "os"
    "path/filepath"
    "strings"

    "gopkg.in/yaml.v3"
)

// Config は omnictl の永続設定です。
// キー割り当て（ゲーム側のバインド）はここでは扱いません。
type Config struct {
    // ポーリング
    Poll PollConfig `json:"poll" yaml:"poll"`
    // ゲームパッドのしきい値
    Gamepad GamepadConfig `json:"gamepad" yaml:"gamepad"`
    // MIDI 設定
    MIDI MidiConfig `json:"midi" yaml:"midi"`
    // OBS 連携
    OBS OBSConfig `json:"obs" yaml:"obs"`
}

type PollConfig struct {
    Interval string `json:"interval" yaml:"interval"` // 例: "16ms"
    Debounce string `json:"debounce" yaml:"debounce"` // 例: "16ms"（"0" で無効）
}

type GamepadConfig struct {
    ButtonThreshold float64 `json:"button_threshold" yaml:"button_threshold"`
    AxisThreshold   float64 `json:"axis_threshold" yaml:"axis_threshold"`
}

// MidiConfig は MIDI 入力の設定。Device が空なら全入力を開く。
type MidiConfig struct {
    Enabled bool   `json:"enabled" yaml:"enabled"`
    Device  string `json:"device" yaml:"device"`
    Channel string `json:"channel" yaml:"channel"` // 例: "1,2"（空=全）
}

type Connection struct {
    Name    string `json:"name" yaml:"name"`
    Addr    string `json:"addr" yaml:"addr"` // host:port （ws:// 不要）
    Enabled bool   `json:"enabled" yaml:"enabled"`
}

// OBSConfig の scenes は "識別子=Scene Name" 形式の文字列配列。
type OBSConfig struct {
    Connections    []Connection `json:"connections" yaml:"connections"`
    CommonPassword string       `json:"common_password" yaml:"common_password"`
    RateLimit      string       `json:"rate_limit" yaml:"rate_limit"` // 例: "50ms"
    Timeout        string       `json:"timeout" yaml:"timeout"`       // 例: "5s"
    Scenes         []string     `json:"scenes" yaml:"scenes"`
}

func Default() *Config {
    return &Config{
        Poll:    PollConfig{Interval: "16ms", Debounce: "16ms"},
        Gamepad: GamepadConfig{ButtonThreshold: 0.5, AxisThreshold: 0.9},
        MIDI:    MidiConfig{Enabled: false, Device: "", Channel: ""},
        OBS: OBSConfig{
            Connections:    []Connection{},
            CommonPassword: "",
            RateLimit:      "50ms",
            Timeout:        "5s",
            Scenes:         []string{},
        },
    }
}

// DefaultPath は保存先パス（OS毎の規定の設定ディレクトリ配下）。
func DefaultPath() (string, error) {
    dir, err := os.UserConfigDir()
    if err != nil { return "", err }
    d := filepath.Join(dir, "omnictl")
    if err := os.MkdirAll(d, 0o755); err != nil { return "", err }
    return filepath.Join(d, "config.json"), nil
}

func isYAML(p string) bool {
    switch strings.ToLower(filepath.Ext(p)) {
    case ".yaml", ".yml":
        return true
    }
    return false
}

// Load は設定を読み込みます。無い場合は (nil, os.ErrNotExist) を返します。
// 書かれていない項目は Default の値になります。
func Load(p string) (*Config, error) {
    if p == "" {
        var err error
        if p, err = DefaultPath(); err != nil { return nil, err }
    }
    bt, err := os.ReadFile(p)
    if err != nil {
        if errors.Is(err, os.ErrNotExist) { return nil, os.ErrNotExist }
        return nil, err
    }
    c := Default()
    if isYAML(p) {
        err = yaml.Unmarshal(bt, c)
    } else {
        err = json.Unmarshal(bt, c)
    }
    if err != nil { return nil, fmt.Errorf("%s の解析に失敗: %w", filepath.Base(p), err) }
    return c, nil
}

// Save は設定を保存します。
func Save(p string, c *Config) error {
    if c == nil { return errors.New("nil config") }
    if p == "" {
        var err error
        if p, err = DefaultPath(); err != nil { return err }
    }
    var (
        bt  []byte
        err error
    )
    if isYAML(p) {
        bt, err = yaml.Marshal(c)
    } else {
        bt, err = json.MarshalIndent(c, "", "  ")
    }
    if err != nil { return err }
    return os.WriteFile(p, bt, 0o600)
}
