package main

import (
    "errors"
    "fmt"

    "omniinput/internal/omni"
)

func runName(args []string) error {
    if len(args) == 0 {
        return errors.New("識別子を指定してください。例: omnictl name 32 gamepad.0.button.1")
    }
    for _, id := range args {
        fmt.Printf("%s\t%s\n", id, omni.Name(id))
    }
    return nil
}
