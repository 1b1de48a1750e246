//go:build !midi_native

package midi

// OpenInput は指定デバイスを開き、メッセージのチャネルを返す。
// デフォルトビルド（midi_nativeタグなし）では未対応。
func OpenInput(deviceName string) (Input, <-chan Message, error) {
    return nil, nil, ErrNoNativeDriver
}

// OpenAll は全入力デバイスを開く。デフォルトビルドでは未対応。
func OpenAll() (Input, <-chan Message, error) {
    return nil, nil, ErrNoNativeDriver
}

// ListInputs は利用可能なMIDI入力デバイス名を返す。
// デフォルトビルド（midi_nativeタグなし）では未対応。
func ListInputs() ([]string, error) {
    return nil, ErrNoNativeDriver
}
