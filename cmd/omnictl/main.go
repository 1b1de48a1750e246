package main

import (
    "fmt"
    "log/slog"
    "os"
)

// これらは ldflags で上書き可能:
// go build -ldflags "-X main.version=1.2.3 -X main.commit=abcd123 -X main.date=2025-08-12T01:23:45Z"
var (
    version = "dev"
    commit  = "none"
    date    = "unknown"
)

func main() {
    if len(os.Args) < 2 {
        usage()
        os.Exit(2)
    }

    var err error
    switch os.Args[1] {
    case "watch":
        err = runWatch(os.Args[2:])
    case "obs":
        err = runObs(os.Args[2:])
    case "name":
        err = runName(os.Args[2:])
    case "midi":
        err = runMidi(os.Args[2:])
    case "version", "-v", "--version":
        printVersion()
    case "help", "-h", "--help":
        if len(os.Args) > 2 {
            switch os.Args[2] {
            case "watch":
                watchUsage()
            case "obs":
                obsUsage()
            case "midi":
                midiUsage()
            default:
                usage()
            }
        } else {
            usage()
        }
    default:
        fmt.Fprintf(os.Stderr, "不明なサブコマンド: %s\n", os.Args[1])
        usage()
        os.Exit(2)
    }
    if err != nil {
        slog.Error(err.Error())
        os.Exit(1)
    }
}

func initLogger(debug bool) *slog.Logger {
    level := slog.LevelInfo
    if debug {
        level = slog.LevelDebug
    }
    h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
        Level:     level,
        AddSource: debug,
    })
    l := slog.New(h)
    slog.SetDefault(l)
    return l
}

func usage() {
    fmt.Println("omnictl - キーボード/ゲームパッド/MIDI をまとめて読む入力エンジンのCLI")
    fmt.Println("")
    fmt.Println("使用方法:")
    fmt.Println("  omnictl <command> [options]")
    fmt.Println("")
    fmt.Println("コマンド:")
    fmt.Println("  watch     押されたキーの識別子と表示名を出力（-capture で割り当て補助）")
    fmt.Println("  obs       キー押下で OBS のシーンを切り替え")
    fmt.Println("  name      識別子の表示名を出力")
    fmt.Println("  midi      MIDI 入力デバイスの一覧（ls-devices）")
    fmt.Println("  version   バージョン情報を表示")
    fmt.Println("")
    fmt.Println("例:")
    fmt.Println("  omnictl watch -midi -channel 1,10")
    fmt.Println("  omnictl watch -capture Intro,Main,BRB")
    fmt.Println("  omnictl obs -addrs 127.0.0.1:4455 -password ****** -map 32=Intro -map gamepad.0.button.0=Main")
    fmt.Println("  omnictl name 32 gamepad.0.axis.1.negative midi.1.10.note.36")
    fmt.Println("")
    fmt.Println("注: キーボード/ゲームパッドはビルドタグ 'sdl'、MIDI は 'midi_native' が必要です。")
}

func printVersion() {
    fmt.Printf("omnictl %s (commit %s, built %s)\n", version, commit, date)
}
