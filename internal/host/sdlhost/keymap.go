//go:build sdl

package sdlhost

import "github.com/veandco/go-sdl2/sdl"

// domCodes は SDL のキーコードをブラウザの keyCode に寄せる表。
// 文字と数字とファンクションキーは keyCode に並びのまま写す。
var domCodes = map[sdl.Keycode]int{
    sdl.K_BACKSPACE: 8,
    sdl.K_TAB:       9,
    sdl.K_RETURN:    13,
    sdl.K_KP_ENTER:  13,
    sdl.K_LSHIFT:    16,
    sdl.K_RSHIFT:    16,
    sdl.K_LCTRL:     17,
    sdl.K_RCTRL:     17,
    sdl.K_LALT:      18,
    sdl.K_RALT:      18,
    sdl.K_PAUSE:     19,
    sdl.K_CAPSLOCK:  20,
    sdl.K_ESCAPE:    27,
    sdl.K_SPACE:     32,
    sdl.K_PAGEUP:    33,
    sdl.K_PAGEDOWN:  34,
    sdl.K_END:       35,
    sdl.K_HOME:      36,
    sdl.K_LEFT:      37,
    sdl.K_UP:        38,
    sdl.K_RIGHT:     39,
    sdl.K_DOWN:      40,
    sdl.K_INSERT:    45,
    sdl.K_DELETE:    46,

    sdl.K_KP_0: 96,
    sdl.K_KP_1: 97,
    sdl.K_KP_2: 98,
    sdl.K_KP_3: 99,
    sdl.K_KP_4: 100,
    sdl.K_KP_5: 101,
    sdl.K_KP_6: 102,
    sdl.K_KP_7: 103,
    sdl.K_KP_8: 104,
    sdl.K_KP_9: 105,

    sdl.K_KP_MULTIPLY: 106,
    sdl.K_KP_PLUS:     107,
    sdl.K_KP_MINUS:    109,
    sdl.K_KP_PERIOD:   110,
    sdl.K_KP_DIVIDE:   111,

    sdl.K_SEMICOLON:    186,
    sdl.K_EQUALS:       187,
    sdl.K_COMMA:        188,
    sdl.K_MINUS:        189,
    sdl.K_PERIOD:       190,
    sdl.K_SLASH:        191,
    sdl.K_BACKQUOTE:    192,
    sdl.K_LEFTBRACKET:  219,
    sdl.K_BACKSLASH:    220,
    sdl.K_RIGHTBRACKET: 221,
    sdl.K_QUOTE:        222,
}

// DOMCode は sym に対応する keyCode を返す。対応が無ければ false。
func DOMCode(sym sdl.Keycode) (int, bool) {
    switch {
    case sym >= sdl.K_a && sym <= sdl.K_z:
        return int(sym-sdl.K_a) + 65, true
    case sym >= sdl.K_0 && sym <= sdl.K_9:
        return int(sym-sdl.K_0) + 48, true
    case sym >= sdl.K_F1 && sym <= sdl.K_F12:
        return int(sym-sdl.K_F1) + 112, true
    }
    c, ok := domCodes[sym]
    return c, ok
}
