package main

import (
    "errors"
    "fmt"
    "os"

    "omniinput/internal/midi"
)

func runMidi(args []string) error {
    if len(args) == 0 || (args[0] != "ls-devices" && args[0] != "list" && args[0] != "devices") {
        midiUsage()
        return errors.New("サブコマンドを指定してください")
    }
    names, err := midi.ListInputs()
    if err != nil {
        return fmt.Errorf("MIDI デバイス一覧の取得に失敗: %w（ネイティブMIDI機能はビルドタグ 'midi_native' が必要です）", err)
    }
    if len(names) == 0 {
        fmt.Println("(入力デバイスなし)")
        return nil
    }
    for _, n := range names {
        fmt.Println(n)
    }
    return nil
}

func midiUsage() {
    fmt.Fprintln(os.Stderr, "Usage: omnictl midi ls-devices")
    fmt.Fprintln(os.Stderr, "\n説明: 利用可能な MIDI 入力デバイス一覧を「番号: 名前」で表示します。")
    fmt.Fprintln(os.Stderr, "      番号は識別子 midi.<番号>.<チャネル>... の <番号> に対応します。")
    fmt.Fprintln(os.Stderr, "\n注: ネイティブMIDI入力はビルドタグ 'midi_native' が必要です。")
}
