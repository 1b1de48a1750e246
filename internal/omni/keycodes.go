package omni

import "strconv"

// keyNames は DOM keyCode から表示名への表。英数字は init で埋める。
var keyNames = map[int]string{
    8:   "Backspace",
    9:   "Tab",
    12:  "Clear",
    13:  "Enter",
    16:  "Shift",
    17:  "Ctrl",
    18:  "Alt",
    19:  "Pause",
    20:  "Caps Lock",
    27:  "Esc",
    32:  "Space",
    33:  "Page Up",
    34:  "Page Down",
    35:  "End",
    36:  "Home",
    37:  "Left",
    38:  "Up",
    39:  "Right",
    40:  "Down",
    44:  "Print Screen",
    45:  "Insert",
    46:  "Delete",
    91:  "Left Meta",
    92:  "Right Meta",
    93:  "Menu",
    106: "Numpad *",
    107: "Numpad +",
    108: "Numpad Enter",
    109: "Numpad -",
    110: "Numpad .",
    111: "Numpad /",
    144: "Num Lock",
    145: "Scroll Lock",
    186: ";",
    187: "=",
    188: ",",
    189: "-",
    190: ".",
    191: "/",
    192: "`",
    219: "[",
    220: "\\",
    221: "]",
    222: "'",
}

func init() {
    for c := '0'; c <= '9'; c++ {
        keyNames[int(c)] = string(c)
    }
    for c := 'A'; c <= 'Z'; c++ {
        keyNames[int(c)] = string(c)
    }
    for i := 0; i <= 9; i++ {
        keyNames[96+i] = "Numpad " + strconv.Itoa(i)
    }
    for i := 1; i <= 12; i++ {
        keyNames[111+i] = "F" + strconv.Itoa(i)
    }
}
