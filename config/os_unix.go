//go:build !windows

package config

import (
	"os"

	"golang.org/x/term"
)

const (
	forbiddenNameRunes = string(os.PathSeparator) + string(os.PathListSeparator)
	// leading dots would produce hidden files
	trimNameDots = true
)

func colorCapable(stream *os.File) bool {
	return term.IsTerminal(int(stream.Fd()))
}
