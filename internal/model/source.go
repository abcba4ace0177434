// Package model defines the data structures shared by the scanner, the
// aggregator and the reporting layer.
package model

import "fmt"

// Path represents a file system path.
type Path string

// Location points at a single line of a scanned file.
type Location struct {
	Path Path
	Line int
}

// String renders the location as "path:line".
func (l Location) String() string {
	return fmt.Sprintf("%s:%d", l.Path, l.Line)
}
