//go:build windows

package service

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procGetConsoleProcessList = kernel32.NewProc("GetConsoleProcessList")
	procGetConsoleWindow      = kernel32.NewProc("GetConsoleWindow")
	procAttachConsole         = kernel32.NewProc("AttachConsole")
	procAllocConsole          = kernel32.NewProc("AllocConsole")
	procSetConsoleTitleW      = kernel32.NewProc("SetConsoleTitleW")
)

// ATTACH_PARENT_PROCESS
const attachParentProcess = ^uint32(0)

// winConsole asks kernel32 about the console of the current process.
type winConsole struct{}

// NewConsoleState returns the ConsoleState of the current platform.
func NewConsoleState() ConsoleState { return winConsole{} }

// IsBare reports true when this process is the only one attached to its
// console, i.e. the console was spawned for it and not inherited from cmd.exe.
// Any failure counts as not bare.
func (winConsole) IsBare() bool {
	n, err := consoleProcessCount()
	return err == nil && n == 1
}

// consoleProcessCount returns the number of processes attached to the
// current console. The call reports the total even when the one-slot
// buffer is too small to hold every pid.
func consoleProcessCount() (uint32, error) {
	var pids [1]uint32

	n, err := call(procGetConsoleProcessList, uintptr(unsafe.Pointer(&pids[0])), uintptr(len(pids)))
	if err != nil {
		return 0, err
	}

	return uint32(n), nil
}

// call invokes a kernel32 function whose zero return means failure.
// A proc missing from this Windows version is an error, not a panic.
func call(proc *windows.LazyProc, args ...uintptr) (uintptr, error) {
	if err := proc.Find(); err != nil {
		return 0, err
	}

	r1, _, lastErr := proc.Call(args...)
	if r1 != 0 {
		return r1, nil
	}

	// lastErr is ERROR_SUCCESS (non-nil) when the call set no error
	if lastErr != nil && lastErr != windows.ERROR_SUCCESS {
		return 0, fmt.Errorf("%s: %w", proc.Name, lastErr)
	}

	return 0, fmt.Errorf("%s failed", proc.Name)
}

// EnsureInteractiveConsoleAttached gives an Explorer-started process a
// console: the parent's if there is one, a new one otherwise. Stdio is then
// rebound to it. Processes that already have a console or a character
// device on stdout/stderr are left alone.
func EnsureInteractiveConsoleAttached() {
	if hwnd, _ := call(procGetConsoleWindow); hwnd != 0 {
		return
	}

	if stdHandleIsChar(windows.STD_OUTPUT_HANDLE) || stdHandleIsChar(windows.STD_ERROR_HANDLE) {
		return
	}

	if _, err := call(procAttachConsole, uintptr(attachParentProcess)); err != nil {
		if _, err := call(procAllocConsole); err != nil {
			return
		}
	}

	if f, err := os.OpenFile("CONOUT$", os.O_RDWR, 0); err == nil {
		os.Stdout, os.Stderr = f, f
	}

	if f, err := os.OpenFile("CONIN$", os.O_RDWR, 0); err == nil {
		os.Stdin = f
	}
}

// IsLegacyConHost reports a console stdout without virtual terminal
// processing, where ANSI sequences would be printed literally.
func IsLegacyConHost() bool {
	h, ok := stdHandle(windows.STD_OUTPUT_HANDLE)
	if !ok || !isCharDevice(h) {
		return false
	}

	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return false
	}

	return mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING == 0
}

// setConsoleTitleWin sets the console title via SetConsoleTitleW.
func setConsoleTitleWin(title string) error {
	p, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return err
	}

	_, err = call(procSetConsoleTitleW, uintptr(unsafe.Pointer(p)))
	return err
}

func stdHandle(which uint32) (windows.Handle, bool) {
	h, err := windows.GetStdHandle(which)
	return h, err == nil && h != 0 && h != windows.InvalidHandle
}

func isCharDevice(h windows.Handle) bool {
	ft, err := windows.GetFileType(h)
	return err == nil && ft == windows.FILE_TYPE_CHAR
}

func stdHandleIsChar(which uint32) bool {
	h, ok := stdHandle(which)
	return ok && isCharDevice(h)
}
