package internal

import "github.com/google/shlex"

// ParseNames splits a command line argument into brand color names, with
// shell-style quoting so multi-word names like 'Forest Green' survive.
func ParseNames(arg string) ([]string, error) {
	return shlex.Split(arg)
}
