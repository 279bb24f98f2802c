package app

import "fmt"

// Version, Commit and BuildTime are set via ldflags, e.g.
// go build -ldflags "-X github.com/heartmarshall/cardbox/internal/app.Version=1.0.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns the version string printed by the command-line tools.
func BuildVersion() string {
	return fmt.Sprintf("cardbox %s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
