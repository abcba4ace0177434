package model

// ZIndexMatch is a numeric z-index declaration found by the scanner.
type ZIndexMatch struct {
	Value    int
	Location Location
}

// SassVariableMatch is a z-index declaration whose value is a Sass variable.
// Value is nil when no definition of the variable could be found.
type SassVariableMatch struct {
	Name     string
	Value    *int
	Location Location
}

// ScanResult holds everything a single scan produced.
// ZIndexes is sorted ascending by value.
type ScanResult struct {
	ZIndexes      []ZIndexMatch
	SassVariables []SassVariableMatch
}

// VariableNames returns the distinct Sass variable names in first-seen order.
func (r ScanResult) VariableNames() []string {
	seen := make(map[string]bool, len(r.SassVariables))
	names := make([]string, 0, len(r.SassVariables))

	for _, v := range r.SassVariables {
		if seen[v.Name] {
			continue
		}

		seen[v.Name] = true
		names = append(names, v.Name)
	}

	return names
}

// Warning describes a captured value that could not be parsed as an integer.
type Warning struct {
	Value    string // cleaned capture, e.g. "banana"
	Match    string // full regexp match text
	Location Location
}
