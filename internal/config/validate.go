package config

import (
	"fmt"
	"strings"
)

// Validate checks the filled-in config for values no command can work with.
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.Drift.Extension, ".") {
		return fmt.Errorf("[drift].extension must start with '.', got %q", c.Drift.Extension)
	}
	if err := validateSnippets("required", c.Contract.Required); err != nil {
		return err
	}
	return validateSnippets("forbidden", c.Contract.Forbidden)
}

func validateSnippets(key string, snippets []Snippet) error {
	seen := make(map[string]bool, len(snippets))
	for i, s := range snippets {
		if strings.TrimSpace(s.Name) == "" {
			return fmt.Errorf("[contract].%s[%d]: missing name", key, i)
		}
		if s.Snippet == "" {
			return fmt.Errorf("[contract].%s[%d] (%s): missing snippet", key, i, s.Name)
		}
		if seen[s.Name] {
			return fmt.Errorf("[contract].%s: duplicate name %q", key, s.Name)
		}
		seen[s.Name] = true
	}
	return nil
}
