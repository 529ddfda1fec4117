// Package main is the overviewer-util entrypoint.
package main

import (
	"fmt"
	"os"

	"github.com/woozymasta/overviewer-util/internal/entrypoint"
	"github.com/woozymasta/overviewer-util/internal/service"
	"github.com/woozymasta/overviewer-util/internal/vars"
)

func main() {
	// Double-click (Explorer) / no args -> ensure console
	if len(os.Args) == 1 {
		service.EnsureInteractiveConsoleAttached()
	}

	baked := vars.Baked()
	service.SetTerminalTitle(fmt.Sprintf("%s %s [%s]", baked.Name, baked.CommitShort, baked.Version))

	// failures keep a freshly spawned console open until Enter
	service.ExitGracefully(entrypoint.Execute(os.Args[1:], os.Stdout))
}
