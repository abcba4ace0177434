package domain

import (
	"sort"

	m "zdex.dev/pkg/zdex/internal/model"
)

// GroupZIndexes groups matches by value. Groups appear in first-seen order
// and each keeps its files in first-seen order.
func GroupZIndexes(matches []m.ZIndexMatch) []m.ZIndexGroup {
	index := make(map[int]int)
	groups := make([]m.ZIndexGroup, 0)

	for _, match := range matches {
		i, ok := index[match.Value]
		if !ok {
			i = len(groups)
			index[match.Value] = i
			groups = append(groups, m.ZIndexGroup{Value: match.Value})
		}

		groups[i].Total++
		groups[i].Files = append(groups[i].Files, match.Location.String())
	}

	return groups
}

// GroupSassVariables groups matches by variable name.
func GroupSassVariables(matches []m.SassVariableMatch) []m.SassVariableGroup {
	index := make(map[string]int)
	groups := make([]m.SassVariableGroup, 0)

	for _, match := range matches {
		i, ok := index[match.Name]
		if !ok {
			i = len(groups)
			index[match.Name] = i
			groups = append(groups, m.SassVariableGroup{Name: match.Name, Value: match.Value})
		}

		groups[i].Total++
		groups[i].Files = append(groups[i].Files, match.Location.String())
	}

	return groups
}

// SortZIndexGroups orders groups in place, highest total or highest value
// first. Ties keep their existing order.
func SortZIndexGroups(groups []m.ZIndexGroup, key m.SortKey) {
	sort.SliceStable(groups, func(i, j int) bool {
		if key == m.SortByZIndex {
			return groups[i].Value > groups[j].Value
		}

		return groups[i].Total > groups[j].Total
	})
}

// SortSassVariableGroups orders groups in place. Sorting by value only
// applies between two resolved variables; otherwise totals decide.
func SortSassVariableGroups(groups []m.SassVariableGroup, key m.SortKey) {
	sort.SliceStable(groups, func(i, j int) bool {
		a, b := groups[i], groups[j]
		if key == m.SortByZIndex && a.Value != nil && b.Value != nil {
			return *a.Value > *b.Value
		}

		return a.Total > b.Total
	})
}

// Summarize builds the totals view. result.ZIndexes is expected to be sorted.
func Summarize(result m.ScanResult) m.Summary {
	values := make([]int, 0, len(result.ZIndexes))
	unique := make([]int, 0)
	seen := make(map[int]bool)

	for _, match := range result.ZIndexes {
		values = append(values, match.Value)

		if !seen[match.Value] {
			seen[match.Value] = true
			unique = append(unique, match.Value)
		}
	}

	return m.Summary{
		ZIndexCount:       len(values),
		UniqueCount:       len(unique),
		SassVariableCount: len(result.SassVariables),
		Values:            values,
		UniqueValues:      unique,
		SassVariables:     result.SassVariables,
	}
}

// ApplyResolvedValues returns a copy of matches with their values filled in
// from resolved.
func ApplyResolvedValues(matches []m.SassVariableMatch, resolved map[string]*int) []m.SassVariableMatch {
	out := make([]m.SassVariableMatch, len(matches))
	for i, match := range matches {
		match.Value = resolved[match.Name]
		out[i] = match
	}

	return out
}
