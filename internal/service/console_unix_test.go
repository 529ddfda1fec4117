//go:build !windows

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleNeverBareOffWindows(t *testing.T) {
	assert.False(t, NewConsoleState().IsBare())
	assert.False(t, IsBareConsole())
	assert.False(t, IsLegacyConHost())
}

func TestExitGracefullyUsesPlatformConsole(t *testing.T) {
	e := NewExiter()
	assert.IsType(t, noConsole{}, e.Console)
}
