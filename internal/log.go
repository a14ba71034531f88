package internal

import (
	"fmt"

	"github.com/mitchellh/colorstring"
)

// NO_COLOR is a global variable that is used to determine whether or not to enable color output.
var NO_COLOR bool = false

// ANSI codes for the console templates.
const (
	RED    = "\033[31m"
	GREEN  = "\033[32m"
	YELLOW = "\033[33m"
	PURPLE = "\033[35m"
	CYAN   = "\033[36m"
	RESET  = "\033[0m"
)

// Log prints the given message to the stdout in the given color, unless
// NO_COLOR is set.
func Log(color string, message string) {
	if NO_COLOR {
		fmt.Println(message)
	} else {
		colorstring.Println(fmt.Sprintf("[%v]%v", color, message))
	}
}
