package omni

import "time"

// Observer はエンジンの動きを外部（メトリクス等）へ知らせるフック。
type Observer interface {
    // MidiMessage はデコードしたメッセージ種別（対象外なら "ignored"）ごとに呼ばれる。
    MidiMessage(kind string)
    // Updated は Update 1 回ごとに所要時間とアクティブなキー数を伝える。
    Updated(d time.Duration, active int)
    // Pressed は Press Event ごとに呼ばれる。
    Pressed(id string)
}

type nopObserver struct{}

func (nopObserver) MidiMessage(string)         {}
func (nopObserver) Updated(time.Duration, int) {}
func (nopObserver) Pressed(string)             {}
