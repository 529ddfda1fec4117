package service

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Exiter terminates the process, pausing first when a failing process would
// otherwise close its own console window before the user can read it.
type Exiter struct {
	Console   ConsoleState
	In        io.Reader
	Out       io.Writer
	Terminate func(code int)
}

// NewExiter returns an Exiter bound to the real console, stdio and os.Exit.
func NewExiter() *Exiter {
	return &Exiter{
		Console:   NewConsoleState(),
		In:        os.Stdin,
		Out:       os.Stdout,
		Terminate: os.Exit,
	}
}

// ExitGracefully is a drop-in replacement for os.Exit that waits for Enter
// on a bare console when code is nonzero.
func ExitGracefully(code int) {
	NewExiter().Exit(code)
}

// Exit waits for Enter if code is nonzero and the console is bare, then
// terminates with code.
func (e *Exiter) Exit(code int) {
	if code != 0 && e.Console != nil && e.Console.IsBare() {
		e.pause()
	}

	e.Terminate(code)
}

func (e *Exiter) pause() {
	_, _ = fmt.Fprintln(e.Out)
	_, _ = fmt.Fprintln(e.Out, "Press [Enter] to close this window.")

	// any outcome, including EOF, ends the pause
	_, _ = bufio.NewReader(e.In).ReadString('\n')
}
