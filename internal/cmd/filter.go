package cmd

import (
	"fmt"

	"github.com/gobwas/glob"
)

type filterFunc func(lang string) bool

func filter(pattern string) (filterFunc, error) {
	if len(pattern) == 0 || pattern == "*" {
		return func(string) bool { return true }, nil
	}

	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid filter %q: %w", pattern, err)
	}

	return g.Match, nil
}
