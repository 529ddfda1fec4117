// Package service provides console helpers: bare console detection,
// graceful process exit, terminal title and colour support.
package service

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// colorTerms are TERM substrings of colour-capable terminals.
var colorTerms = []string{"xterm", "screen", "vt100", "color"}

// SetTerminalTitle sets terminal title across platforms.
// Legacy Windows conhost gets the WinAPI title, anything else an OSC escape
// when stdout is a TTY.
func SetTerminalTitle(title string) {
	if IsLegacyConHost() {
		_ = setConsoleTitleWin(title) //nolint:errcheck // best-effort on legacy conhost
		return
	}

	// Avoid polluting redirected output
	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Printf("\033]0;%s\a", title)
	}
}

// CanUseANSIColors decides whether ANSI colors should be enabled for f.
func CanUseANSIColors(f *os.File) bool {
	return colorDecision(os.Getenv, IsLegacyConHost(), term.IsTerminal(int(f.Fd())))
}

// colorDecision applies, in order: FORCE_COLOR=true enables; legacy conhost
// disables; NO_COLOR (https://no-color.org/) disables; non-TTY disables;
// COLORTERM enables; TERM=dumb disables; a known colour TERM enables.
func colorDecision(getenv func(string) string, legacy, tty bool) bool {
	switch {
	case getenv("FORCE_COLOR") == "true":
		return true
	case legacy, getenv("NO_COLOR") != "", !tty:
		return false
	case getenv("COLORTERM") != "":
		return true
	}

	termEnv := strings.ToLower(getenv("TERM"))
	if termEnv == "dumb" {
		return false
	}

	for _, s := range colorTerms {
		if strings.Contains(termEnv, s) {
			return true
		}
	}

	return false
}
