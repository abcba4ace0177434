package domain

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"zdex.dev/pkg/zdex/internal/adapter"
	m "zdex.dev/pkg/zdex/internal/model"
)

// ResolveArgs configures a variable resolution pass.
//
// Ignored is only honored when HonorIgnored is set; by default the
// definitions are searched across the whole tree.
type ResolveArgs struct {
	Root         m.Path
	Names        []string
	Ignored      []m.Path
	HonorIgnored bool
	Extensions   []string
	OnWarning    WarningHandler
}

// VariableResolver finds the numeric value assigned to Sass variables.
type VariableResolver interface {
	Resolve(ctx context.Context, args ResolveArgs) (map[string]*int, error)
}

type variableResolver struct {
	fs adapter.SourceFSAdapter
}

// NewVariableResolver creates a VariableResolver reading files through fsAdapter.
func NewVariableResolver(fsAdapter adapter.SourceFSAdapter) VariableResolver {
	return &variableResolver{fs: fsAdapter}
}

type definitionPattern struct {
	name   string
	prefix string
	re     *regexp.Regexp
}

// Resolve returns a value for every requested name. A nil value means no
// parsable definition was found. When a variable is defined more than once,
// the last parsable definition in traversal order wins.
func (r *variableResolver) Resolve(ctx context.Context, args ResolveArgs) (map[string]*int, error) {
	values := make(map[string]*int, len(args.Names))
	if len(args.Names) == 0 {
		return values, nil
	}

	patterns := make([]definitionPattern, 0, len(args.Names))
	for _, name := range args.Names {
		if _, ok := values[name]; ok {
			continue
		}

		values[name] = nil
		patterns = append(patterns, definitionPattern{
			name:   name,
			prefix: name + ":",
			re:     regexp.MustCompile(regexp.QuoteMeta(name) + `:\s*((-?\d+)|(.*[^;]))`),
		})
	}

	extensions := args.Extensions
	if len(extensions) == 0 {
		extensions = DefaultVariableExtensions
	}

	var ignored []m.Path
	if args.HonorIgnored {
		ignored = args.Ignored
	}

	walker := newSourceWalker(r.fs, extensions, ignored)
	err := walker.walk(ctx, args.Root, func(path m.Path, number int, line string) {
		for _, p := range patterns {
			if !strings.Contains(line, p.prefix) {
				continue
			}

			for _, match := range p.re.FindAllStringSubmatch(line, -1) {
				value := cleanValue(match[1])

				n, ok := parseLeadingInt(value)
				if !ok {
					emitWarning(args.OnWarning, m.Warning{
						Value:    value,
						Match:    match[0],
						Location: m.Location{Path: path, Line: number},
					})

					continue
				}

				values[p.name] = &n
			}
		}
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("Resolved sass variables", "root", args.Root, "names", len(patterns))

	return values, nil
}
