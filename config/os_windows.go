//go:build windows

package config

import (
	"os"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
	"golang.org/x/term"
)

const (
	forbiddenNameRunes = "\x00<>\":/\\|?*" + string(os.PathListSeparator)
	trimNameDots       = false
)

const enableVirtualTerminalProcessing uint32 = 0x4

// VT100 sequences are understood by console starting with Windows 10.
func vtConsoleAvailable() bool {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, `SOFTWARE\Microsoft\Windows NT\CurrentVersion`, registry.QUERY_VALUE)
	if err != nil {
		return false
	}
	defer k.Close()

	major, _, err := k.GetIntegerValue("CurrentMajorVersionNumber")
	return err == nil && major >= 10
}

// colorCapable switches console attached to stream into VT processing mode.
func colorCapable(stream *os.File) bool {
	if !vtConsoleAvailable() || !term.IsTerminal(int(stream.Fd())) {
		return false
	}
	h := windows.Handle(stream.Fd())

	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return false
	}
	return windows.SetConsoleMode(h, mode|enableVirtualTerminalProcessing) == nil
}
