//go:build !windows

package service

// noConsole is the ConsoleState of platforms without console ownership.
type noConsole struct{}

// IsBare is always false on non-Windows.
func (noConsole) IsBare() bool { return false }

// NewConsoleState returns the ConsoleState of the current platform.
func NewConsoleState() ConsoleState { return noConsole{} }

// EnsureInteractiveConsoleAttached is a no-op on non-Windows platforms.
func EnsureInteractiveConsoleAttached() {}

// IsLegacyConHost is always false on non-Windows.
func IsLegacyConHost() bool {
	return false
}

// setConsoleTitleWin is a Windows-only primitive; keep stub to satisfy calls.
func setConsoleTitleWin(_ string) error {
	return nil
}
