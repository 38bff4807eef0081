package namecase

import (
	"fmt"
	"runtime"
	"strings"
)

// Release builds override these with
// -ldflags "-X github.com/erraggy/namecase.version=1.2.0 -X ...commit=... -X ...buildTime=...".
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Version returns the release version without a "v" prefix, or "dev".
func Version() string {
	return strings.TrimPrefix(version, "v")
}

// Commit returns the git commit the binary was built from, or "unknown".
func Commit() string { return commit }

// BuildTime returns the RFC3339 build timestamp, or "unknown".
func BuildTime() string { return buildTime }

// GoVersion returns the Go runtime version.
func GoVersion() string { return runtime.Version() }

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildTime string
	GoVersion string
}

// Info collects the build details of the running binary.
func Info() BuildInfo {
	return BuildInfo{
		Version:   Version(),
		Commit:    Commit(),
		BuildTime: BuildTime(),
		GoVersion: GoVersion(),
	}
}

// String renders the details as printed by "namecase version". Development
// builds show "dev" rather than a "v"-prefixed release.
func (b BuildInfo) String() string {
	release := "dev"
	if b.Version != "dev" {
		release = "v" + b.Version
	}
	return fmt.Sprintf("namecase %s\n  commit:  %s\n  built:   %s\n  go:      %s",
		release, b.Commit, b.BuildTime, b.GoVersion)
}
