//go:build windows
// +build windows

package output

import (
	"os"
	"syscall"
	"unsafe"
)

const enableVirtualTerminalProcessing = 0x0004

var (
	kernel32           = syscall.NewLazyDLL("kernel32.dll")
	procGetConsoleMode = kernel32.NewProc("GetConsoleMode")
	procSetConsoleMode = kernel32.NewProc("SetConsoleMode")
)

// enableANSI switches on virtual terminal processing for the console the
// given file is attached to, so the report's ANSI escape sequences render
// on Windows 10+ consoles.
func enableANSI(f *os.File) bool {
	handle := f.Fd()

	var mode uint32
	ret, _, _ := procGetConsoleMode.Call(handle, uintptr(unsafe.Pointer(&mode)))
	if ret == 0 {
		return false
	}

	mode |= enableVirtualTerminalProcessing
	ret, _, _ = procSetConsoleMode.Call(handle, uintptr(mode))
	return ret != 0
}
