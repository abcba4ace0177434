package model

import (
	"fmt"
	"strings"
)

// SortKey selects how report groups are ordered.
type SortKey string

const (
	// SortByTotal orders groups by occurrence count, highest first.
	SortByTotal SortKey = "total"
	// SortByZIndex orders groups by value, highest first.
	SortByZIndex SortKey = "zIndex"
)

// SortKeys lists the accepted sort keys.
var SortKeys = []SortKey{SortByTotal, SortByZIndex}

// ParseSortKey validates a user supplied sort key.
func ParseSortKey(s string) (SortKey, error) {
	for _, key := range SortKeys {
		if string(key) == s {
			return key, nil
		}
	}

	choices := make([]string, 0, len(SortKeys))
	for _, key := range SortKeys {
		choices = append(choices, string(key))
	}

	return "", fmt.Errorf("invalid sort %q: allowed choices are %s", s, strings.Join(choices, ", "))
}

// ZIndexGroup aggregates matches sharing the same numeric value.
type ZIndexGroup struct {
	Value int
	Total int
	Files []string
}

// SassVariableGroup aggregates matches referencing the same Sass variable.
type SassVariableGroup struct {
	Name  string
	Value *int
	Total int
	Files []string
}

// Summary backs the totals view.
type Summary struct {
	ZIndexCount       int
	UniqueCount       int
	SassVariableCount int
	Values            []int
	UniqueValues      []int
	SassVariables     []SassVariableMatch
}

// ListReport backs the grouped list view.
type ListReport struct {
	ZIndexes      []ZIndexGroup
	SassVariables []SassVariableGroup
}
