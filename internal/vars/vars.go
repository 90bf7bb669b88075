// Package vars holds build information set at link time.
package vars

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set with -ldflags "-X github.com/woozymasta/wang-tool/internal/vars.Version=..."
var (
	Version   = "dev"     // release version
	Commit    = "unknown" // git commit
	BuildTime = "unknown" // build timestamp, RFC 3339
	URL       = "https://github.com/woozymasta/wang-tool"
)

// Info is the build information of the running binary.
type Info struct {
	Version   string
	Commit    string
	BuildTime string
	GoVersion string
	Platform  string
}

// Get returns the build information. Link time values win; a dev build
// falls back to the module version and vcs revision recorded by the toolchain.
func Get() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "unknown" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.BuildTime == "unknown" {
				info.BuildTime = s.Value
			}
		}
	}

	return info
}

// Print writes the build information to stdout.
func Print() {
	info := Get()
	fmt.Printf("version:    %s\n", info.Version)
	fmt.Printf("commit:     %s\n", info.Commit)
	fmt.Printf("build time: %s\n", info.BuildTime)
	fmt.Printf("go:         %s %s\n", info.GoVersion, info.Platform)
	fmt.Printf("url:        %s\n", URL)
}
