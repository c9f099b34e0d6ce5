// Package version reports which ctxmerge build is running. The values show up
// in `ctxmerge version` and as the appVersion field on every log entry.
package version

import (
	"fmt"
	"runtime"
)

// Release builds stamp these with the linker, e.g.
//
//	go build -ldflags "-X ctxmerge/pkg/version.Version=$(git describe --tags) -X ctxmerge/pkg/version.Commit=$(git rev-parse --short HEAD)"
//
// A plain `go build` leaves the placeholders below.
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

// AppName is reported in log fields and version output.
const AppName = "ctxmerge"

// Info is a snapshot of the build stamp plus the runtime it is running on.
type Info struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string // runtime.Version()
	Platform  string // GOOS/GOARCH
}

// Get collects the build stamp and runtime details.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String renders the one-line form printed by `ctxmerge version`.
func (i Info) String() string {
	return fmt.Sprintf(
		"%s version %s (commit: %s) built at %s with %s on %s",
		AppName,
		i.Version,
		i.GitCommit,
		i.BuildTime,
		i.GoVersion,
		i.Platform,
	)
}
