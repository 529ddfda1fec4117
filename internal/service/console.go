package service

// ConsoleState reports facts about the console the process runs in.
type ConsoleState interface {
	// IsBare reports whether the console was created for this process alone
	// (e.g. Explorer double-click) rather than inherited from a shell.
	IsBare() bool
}

// IsBareConsole reports whether the current process owns a bare console.
// Always false outside Windows.
func IsBareConsole() bool {
	return NewConsoleState().IsBare()
}
