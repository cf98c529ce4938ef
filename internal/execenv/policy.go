// Package execenv derives the environment passed to spawned commands.
package execenv

import (
	"os"
	"sort"
	"strings"
)

// Inherit selects the starting variable set for a derived environment.
type Inherit string

const (
	// InheritAll starts from the full parent environment (default).
	InheritAll Inherit = "all"
	// InheritNone starts from an empty environment.
	InheritNone Inherit = "none"
	// InheritCore keeps only platform essentials (HOME, PATH, SHELL, ...).
	InheritCore Inherit = "core"
)

var coreVars = map[string]bool{
	"HOME":     true,
	"LOGNAME":  true,
	"PATH":     true,
	"SHELL":    true,
	"USER":     true,
	"USERNAME": true,
	"TMPDIR":   true,
	"TEMP":     true,
	"TMP":      true,
}

// defaultExcludes are filtered out unless IgnoreDefaultExcludes is set:
// anything that looks like a credential.
var defaultExcludes = []string{"*KEY*", "*SECRET*", "*TOKEN*"}

// Policy configures how the parent environment is filtered before a command
// is spawned. Derivation runs five steps in order: inherit, default
// excludes, custom excludes, explicit Set overrides, IncludeOnly.
type Policy struct {
	Inherit               Inherit           `json:"inherit,omitempty"`
	IgnoreDefaultExcludes bool              `json:"ignore_default_excludes"`
	Exclude               []string          `json:"exclude,omitempty"`
	Set                   map[string]string `json:"set,omitempty"`
	IncludeOnly           []string          `json:"include_only,omitempty"`
}

// DefaultPolicy inherits everything and keeps credential-shaped variables;
// callers that want filtering opt in explicitly.
func DefaultPolicy() Policy {
	return Policy{Inherit: InheritAll, IgnoreDefaultExcludes: true}
}

// Derive builds the filtered environment from the current process
// environment.
func Derive(policy *Policy) map[string]string {
	env := make(map[string]string)
	for _, entry := range os.Environ() {
		if k, v, ok := strings.Cut(entry, "="); ok {
			env[k] = v
		}
	}
	return DeriveFrom(env, policy)
}

// DeriveFrom builds the filtered environment from the given variables.
func DeriveFrom(vars map[string]string, policy *Policy) map[string]string {
	if policy == nil {
		p := DefaultPolicy()
		policy = &p
	}

	env := make(map[string]string)
	inherit := policy.Inherit
	if inherit == "" {
		inherit = InheritAll
	}
	switch inherit {
	case InheritAll:
		for k, v := range vars {
			env[k] = v
		}
	case InheritCore:
		for k, v := range vars {
			if coreVars[k] {
				env[k] = v
			}
		}
	case InheritNone:
	}

	if !policy.IgnoreDefaultExcludes {
		deleteMatching(env, defaultExcludes)
	}
	deleteMatching(env, policy.Exclude)

	for k, v := range policy.Set {
		env[k] = v
	}

	if len(policy.IncludeOnly) > 0 {
		for k := range env {
			if !matchesAny(k, policy.IncludeOnly) {
				delete(env, k)
			}
		}
	}

	return env
}

// ToSlice converts an environment map into sorted "KEY=VALUE" entries
// suitable for exec.Cmd.Env.
func ToSlice(env map[string]string) []string {
	result := make([]string, 0, len(env))
	for k, v := range env {
		result = append(result, k+"="+v)
	}
	sort.Strings(result)
	return result
}

func deleteMatching(env map[string]string, patterns []string) {
	if len(patterns) == 0 {
		return
	}
	for k := range env {
		if matchesAny(k, patterns) {
			delete(env, k)
		}
	}
}

// matchesAny reports whether name matches any wildcard pattern,
// case-insensitively. Patterns support * (any run) and ? (single char).
func matchesAny(name string, patterns []string) bool {
	lower := strings.ToLower(name)
	for _, pattern := range patterns {
		if wildcardMatch(lower, strings.ToLower(pattern)) {
			return true
		}
	}
	return false
}

func wildcardMatch(s, pattern string) bool {
	// Iterative two-pointer match with backtracking to the last '*'.
	si, pi := 0, 0
	star, mark := -1, 0
	for si < len(s) {
		switch {
		case pi < len(pattern) && (pattern[pi] == '?' || pattern[pi] == s[si]):
			si++
			pi++
		case pi < len(pattern) && pattern[pi] == '*':
			star = pi
			mark = si
			pi++
		case star >= 0:
			pi = star + 1
			mark++
			si = mark
		default:
			return false
		}
	}
	for pi < len(pattern) && pattern[pi] == '*' {
		pi++
	}
	return pi == len(pattern)
}
