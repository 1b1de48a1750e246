package midi

import (
    "errors"
    "time"
)

// Type は MIDI イベント種別。
type Type string

const (
    NoteOn        Type = "note_on"
    NoteOff       Type = "note_off"
    ControlChange Type = "control_change"
    ProgramChange Type = "program_change"
    PitchBend     Type = "pitch_bend"
)

// よく使う CC 番号
const (
    CCModulation uint8 = 1
    CCSustain    uint8 = 64
)

// Message はデバイスから届いた生のメッセージ。Device は入力ポートの識別子。
type Message struct {
    Data   []byte
    Device string
    Time   time.Time
}

// Event は正規化されたMIDIイベント。
type Event struct {
    Type    Type
    Device  string
    Channel uint8 // 1-16
    Data1   uint8 // Note番号 / CC番号 / Program番号
    Data2   uint8 // Velocity / CC値（ProgramChange, PitchBendでは未使用）
    Bend    int16 // PitchBend の中央(8192)からの相対値
    Time    time.Time
}

// Input はオープン済みのMIDI入力デバイスを表す。
type Input interface {
    Close() error
}

// ErrNoNativeDriver はネイティブドライバ無しでビルドされたときに返る。
var ErrNoNativeDriver = errors.New("native MIDI driver is not included in this build (build with -tags midi_native)")
