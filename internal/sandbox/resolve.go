package sandbox

import (
	"fmt"
	"os"
	"strings"
)

// ResolveExecutable picks the first candidate install path that exists and
// is a regular file. The policy engine declares candidates without touching
// the filesystem; this is where the filesystem finally gets consulted,
// immediately before spawn.
func ResolveExecutable(candidates []string) (string, error) {
	if len(candidates) == 0 {
		return "", fmt.Errorf("no candidate executable paths")
	}
	for _, path := range candidates {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.Mode().IsRegular() {
			return path, nil
		}
	}
	return "", fmt.Errorf("no executable found at any of: %s", strings.Join(candidates, ", "))
}
