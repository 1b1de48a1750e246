//go:build midi_native

package midi

import (
    "errors"
    "fmt"
    "strconv"
    "strings"
    "sync"
    "time"

    "gitlab.com/gomidi/midi"
    "gitlab.com/gomidi/rtmididrv"
)

// inputWrap は rtmididrv のポート/ドライバをまとめて Close する薄いラッパです。
type inputWrap struct {
    drv  *rtmididrv.Driver
    ins  []midi.In
    out  chan Message
    once sync.Once
}

// OpenInput は指定名の入力ポートを開き、生メッセージをチャネルで返す。
// 優先: 完全一致 → 部分一致。合致しない場合はエラー。
func OpenInput(deviceName string) (Input, <-chan Message, error) {
    drv, err := rtmididrv.New()
    if err != nil {
        return nil, nil, fmt.Errorf("rtmididrv.New: %w", err)
    }
    ins, err := drv.Ins()
    if err != nil {
        _ = drv.Close()
        return nil, nil, fmt.Errorf("MIDI入力列挙に失敗: %w", err)
    }
    var in midi.In
    for _, p := range ins {
        if p.String() == deviceName {
            in = p
            break
        }
    }
    if in == nil {
        for _, p := range ins {
            if strings.Contains(p.String(), deviceName) {
                in = p
                break
            }
        }
    }
    if in == nil {
        _ = drv.Close()
        return nil, nil, fmt.Errorf("MIDI入力デバイスが見つかりません: %s", deviceName)
    }
    return listen(drv, []midi.In{in})
}

// OpenAll は全ての入力ポートを開き、1 本のチャネルにまとめる。
func OpenAll() (Input, <-chan Message, error) {
    drv, err := rtmididrv.New()
    if err != nil {
        return nil, nil, fmt.Errorf("rtmididrv.New: %w", err)
    }
    ins, err := drv.Ins()
    if err != nil {
        _ = drv.Close()
        return nil, nil, fmt.Errorf("MIDI入力列挙に失敗: %w", err)
    }
    if len(ins) == 0 {
        _ = drv.Close()
        return nil, nil, errors.New("MIDI入力デバイスがありません")
    }
    return listen(drv, ins)
}

func listen(drv *rtmididrv.Driver, ins []midi.In) (Input, <-chan Message, error) {
    w := &inputWrap{drv: drv, out: make(chan Message, 128)}
    for _, in := range ins {
        if err := in.Open(); err != nil {
            _ = w.Close()
            return nil, nil, fmt.Errorf("入力オープン失敗: %w", err)
        }
        w.ins = append(w.ins, in)

        // デバイスIDはポート番号（識別子に "." を含めないため）
        id := strconv.Itoa(in.Number())
        if err := in.SetListener(func(bt []byte, _ int64) {
            if len(bt) == 0 {
                return
            }
            // コールバック後にバッファが再利用されるのでコピーする
            data := make([]byte, len(bt))
            copy(data, bt)
            select {
            case w.out <- Message{Data: data, Device: id, Time: time.Now()}:
            default:
            }
        }); err != nil {
            _ = w.Close()
            return nil, nil, fmt.Errorf("リスナ設定失敗: %w", err)
        }
    }
    return w, w.out, nil
}

func (w *inputWrap) Close() error {
    var err error
    w.once.Do(func() {
        // best-effort 停止
        for _, in := range w.ins {
            _ = in.StopListening()
            _ = in.Close()
        }
        err = w.drv.Close()
    })
    return err
}

// ListInputs は利用可能な入力デバイスの名称一覧を返す。
func ListInputs() ([]string, error) {
    drv, err := rtmididrv.New()
    if err != nil {
        return nil, err
    }
    defer drv.Close()
    ins, err := drv.Ins()
    if err != nil {
        return nil, err
    }
    names := make([]string, 0, len(ins))
    for _, i := range ins {
        names = append(names, fmt.Sprintf("%d: %s", i.Number(), i.String()))
    }
    return names, nil
}
