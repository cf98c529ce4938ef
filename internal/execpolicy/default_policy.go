package execpolicy

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed default.policy
var defaultPolicySource string

// DefaultPolicy builds the policy table from the bundled program
// definitions. Build it once during initialization and share the result;
// it is read-only from then on.
func DefaultPolicy() (*Policy, error) {
	return ParsePolicy("default.policy", defaultPolicySource)
}

// LoadPolicyDir builds the default policy and merges every *.policy file in
// dir over it, in lexical order. A missing directory yields the default
// policy unchanged.
func LoadPolicyDir(dir string) (*Policy, error) {
	policy, err := DefaultPolicy()
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return policy, nil
		}
		return nil, err
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".policy") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		p, err := ParsePolicy(path, string(data))
		if err != nil {
			return nil, err
		}
		policy.Merge(p)
	}

	return policy, nil
}
