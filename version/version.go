// Package version reports build information for the optref binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

var (
	// Version is the application version, set via ldflags.
	Version string
	// BuildDate is when the binary was built, set via ldflags.
	BuildDate string

	// Revision is the git commit revision.
	Revision = revision(debug.ReadBuildInfo)
	// GoVersion is the Go version used to build.
	GoVersion = runtime.Version()
	// GoOS is the operating system target.
	GoOS = runtime.GOOS
	// GoArch is the architecture target.
	GoArch = runtime.GOARCH
)

// String returns a one-line build summary, e.g.
// "v1.2.0 (rev abc123, built 2026-01-02, go1.25.0 linux/amd64)".
func String() string {
	return format(Version, Revision, BuildDate, GoVersion, GoOS+"/"+GoArch)
}

func format(ver, rev, date, goVersion, platform string) string {
	if ver == "" {
		ver = "devel"
	}

	details := []string{"rev " + rev}
	if date != "" {
		details = append(details, "built "+date)
	}

	details = append(details, goVersion+" "+platform)

	return fmt.Sprintf("%s (%s)", ver, strings.Join(details, ", "))
}

func revision(readBuildInfo func() (*debug.BuildInfo, bool)) string {
	rev := "unknown"

	buildInfo, ok := readBuildInfo()
	if !ok {
		return rev
	}

	modified := false

	for _, v := range buildInfo.Settings {
		switch v.Key {
		case "vcs.revision":
			rev = v.Value
		case "vcs.modified":
			if v.Value == "true" {
				modified = true
			}
		}
	}

	if modified {
		return rev + "-dirty"
	}

	return rev
}
