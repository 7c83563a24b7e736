package config

import (
	"os"
	"strings"
)

const badFileName = "_bad_file_name_"

// CleanFileName drops characters file system would not accept in a single
// path segment.
func CleanFileName(in string) string {
	out := strings.Map(func(sym rune) rune {
		if strings.ContainsRune(forbiddenNameRunes, sym) {
			return -1
		}
		return sym
	}, in)
	if trimNameDots {
		out = strings.TrimLeft(out, ".")
	}
	if len(out) == 0 {
		return badFileName
	}
	return out
}

// EnableColorOutput reports if log lines written to stream could be
// colorized. NO_COLOR environment variable turns colors off.
func EnableColorOutput(stream *os.File) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return colorCapable(stream)
}
