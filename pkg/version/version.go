// Package version reports the build identity used in startup logs.
package version

import (
	"runtime/debug"
	"sync"
)

// AppName identifies the service in logs and version strings.
const AppName = "scenecraft"

// commit can be injected with
// -ldflags "-X github.com/scenecraft/scenecraft/pkg/version.commit=<sha>"
// for builds where VCS metadata is unavailable (e.g. container builds
// from a source tarball).
var commit string

var resolveCommit = sync.OnceValue(func() string {
	if commit != "" {
		return shortRev(commit)
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return shortRev(s.Value)
			}
		}
	}
	return "dev"
})

// Commit returns the short revision hash, or "dev" when no VCS metadata
// was stamped into the binary (go test, non-git builds).
func Commit() string { return resolveCommit() }

// Full returns "scenecraft/<commit>".
func Full() string { return AppName + "/" + Commit() }

func shortRev(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}
