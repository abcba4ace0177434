package domain

import (
	"context"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"zdex.dev/pkg/zdex/internal/adapter"
	m "zdex.dev/pkg/zdex/internal/model"
)

// zIndexPattern matches z-index, z_index and zIndex assignments. The first
// alternative captures a plain integer, the second anything up to (but not
// including) a trailing statement terminator.
var zIndexPattern = regexp.MustCompile(`(?i)z[-_]?index\s*[:=]\s*((-?\d+)|(.*[^;]))`)

// sassVariablePattern extracts the variable identifier from a captured value.
var sassVariablePattern = regexp.MustCompile(`^\$[\w-]+`)

// reservedValues are CSS keywords that are valid z-index values but carry no
// number.
var reservedValues = []string{"auto", "inherit", "initial", "revert", "unset"}

// WarningHandler receives unparsable values as they are discovered.
type WarningHandler func(m.Warning)

// ScanArgs configures a single scan.
type ScanArgs struct {
	Root       m.Path
	Ignored    []m.Path
	Extensions []string
	OnWarning  WarningHandler
}

// Scanner extracts z-index declarations from a source tree.
type Scanner interface {
	Scan(ctx context.Context, args ScanArgs) (m.ScanResult, error)
}

type scanner struct {
	fs adapter.SourceFSAdapter
}

// NewScanner creates a Scanner reading files through fsAdapter.
func NewScanner(fsAdapter adapter.SourceFSAdapter) Scanner {
	return &scanner{fs: fsAdapter}
}

// Scan walks args.Root and returns every numeric z-index and every Sass
// variable reference found. Variable values are left unresolved.
func (s *scanner) Scan(ctx context.Context, args ScanArgs) (m.ScanResult, error) {
	extensions := args.Extensions
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}

	var result m.ScanResult

	walker := newSourceWalker(s.fs, extensions, args.Ignored)
	err := walker.walk(ctx, args.Root, func(path m.Path, number int, line string) {
		loc := m.Location{Path: path, Line: number}

		for _, match := range zIndexPattern.FindAllStringSubmatch(line, -1) {
			value := cleanValue(match[1])

			if isReservedValue(value) {
				continue
			}

			if strings.HasPrefix(value, "$") {
				result.SassVariables = append(result.SassVariables, m.SassVariableMatch{
					Name:     sassVariableName(value),
					Location: loc,
				})

				continue
			}

			zIndex, ok := parseLeadingInt(value)
			if !ok {
				emitWarning(args.OnWarning, m.Warning{Value: value, Match: match[0], Location: loc})
				continue
			}

			result.ZIndexes = append(result.ZIndexes, m.ZIndexMatch{Value: zIndex, Location: loc})
		}
	})
	if err != nil {
		return m.ScanResult{}, err
	}

	sort.SliceStable(result.ZIndexes, func(i, j int) bool {
		return result.ZIndexes[i].Value < result.ZIndexes[j].Value
	})

	slog.Debug("Scan finished", "root", args.Root, "zIndexes", len(result.ZIndexes), "sassVariables", len(result.SassVariables))

	return result, nil
}

// cleanValue strips quote characters and surrounding whitespace.
func cleanValue(raw string) string {
	value := strings.NewReplacer("'", "", `"`, "").Replace(raw)
	return strings.TrimSpace(value)
}

func isReservedValue(value string) bool {
	for _, reserved := range reservedValues {
		if strings.EqualFold(value, reserved) {
			return true
		}
	}

	return false
}

// sassVariableName returns the $identifier at the start of value, or value
// itself when it does not start with a well-formed identifier.
func sassVariableName(value string) string {
	if name := sassVariablePattern.FindString(value); name != "" {
		return name
	}

	return value
}

// parseLeadingInt reads an optionally signed base-10 integer at the start of
// value and ignores whatever follows it, so "10 !important" yields 10.
func parseLeadingInt(value string) (int, bool) {
	end := 0
	if end < len(value) && (value[end] == '-' || value[end] == '+') {
		end++
	}

	digits := end
	for end < len(value) && value[end] >= '0' && value[end] <= '9' {
		end++
	}

	if end == digits {
		return 0, false
	}

	n, err := strconv.Atoi(value[:end])
	if err != nil {
		return 0, false
	}

	return n, true
}

func emitWarning(handler WarningHandler, warning m.Warning) {
	slog.Debug("Invalid z-index", "value", warning.Value, "location", warning.Location.String())

	if handler != nil {
		handler(warning)
	}
}
