package version

import "fmt"

const (
	major uint32 = 1
	minor uint32 = 0
	patch uint32 = 0
)

// gitCommit is set at build time via -ldflags.
var gitCommit string

// GetVersion formats the version to
// "<major>.<minor>.<patch>[+<gitCommit>]", like "1.0.0" or
// "1.0.0+1a2b3c4d".
func GetVersion() string {
	s := fmt.Sprintf("%d.%d.%d", major, minor, patch)
	if len(gitCommit) >= 8 {
		s += "+" + gitCommit[:8]
	}
	return s
}
