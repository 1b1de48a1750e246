// Package omni はキーボード・ゲームパッド・MIDI の入力を 1 つの名前空間に揃える。
//
// OmniInput.Update は「今アクティブな入力」を Snapshot として返す。
// Keys はそれを一定間隔でポーリングし、新たに押されたキーの識別子を流す。
// Name は識別子を表示用の名前にする。
//
// 識別子の形式:
//
//    32                               キーボード (DOM keyCode)
//    gamepad.1.button.3               ゲームパッドのボタン
//    gamepad.1.axis.0.positive        軸の + / - 方向
//    midi.<device>.<ch>.note.60       ノート (ch は 1-16)
//    midi.<device>.<ch>.pitch.up      ピッチベンド上 / 下
//    midi.<device>.<ch>.sustain       CC64
//    midi.<device>.<ch>.mod           CC1
package omni
