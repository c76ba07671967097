package main

import (
	"runtime"

	"github.com/bnema/gtkbridge/internal/cli/cmd"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	// GTK must stay on the thread that initialised it; scenarios run on this goroutine.
	runtime.LockOSThread()

	cmd.SetBuildInfo(cmd.BuildInfo{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})
	cmd.Execute()
}
