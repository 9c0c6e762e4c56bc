package priority

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed policy.yaml
var defaultPolicy []byte

// Policy holds the keyword lists feeding the rule table.
type Policy struct {
	CriticalKeywords []string `yaml:"critical_keywords"`
	HighKeywords     []string `yaml:"high_keywords"`
}

func DefaultPolicy() (Policy, error) {
	return parsePolicy(defaultPolicy)
}

// LoadPolicy reads a YAML policy file; an empty path gives the default one.
func LoadPolicy(path string) (Policy, error) {
	if path == "" {
		return DefaultPolicy()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, fmt.Errorf("read priority policy: %w", err)
	}
	return parsePolicy(data)
}

func parsePolicy(data []byte) (Policy, error) {
	var p Policy
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Policy{}, fmt.Errorf("parse priority policy yaml: %w", err)
	}
	if len(p.CriticalKeywords) == 0 && len(p.HighKeywords) == 0 {
		return Policy{}, fmt.Errorf("priority policy declares no keyword")
	}
	return p, nil
}
