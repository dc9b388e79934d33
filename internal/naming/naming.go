// Package naming computes the hierarchical component names that make module
// instances and their internal objects globally unique across a pipeline.
//
// A component prefix is a path of validated name segments joined by the
// Separator. A root module's prefix is its own name; a child module's prefix
// is its parent's prefix followed by the separator and its own name.
// Sibling-name uniqueness at each nesting level is a precondition upheld by
// whichever component creates children; it is not re-validated here.
package naming

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Separator joins the segments of a component prefix.
const Separator = "/"

// ErrInvalidName is returned for empty, separator-containing, or otherwise
// malformed name segments.
var ErrInvalidName = errors.New("invalid component name")

// segmentRegex matches a single valid name segment.
var segmentRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// isValidSegmentName filters out undesirable but technically matching names.
func isValidSegmentName(name string) bool {
	if name == "." || name == ".." || name == "-" {
		return false
	}
	return true
}

// Validate checks that name is usable as a single path segment.
func Validate(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidName)
	}
	if strings.Contains(name, Separator) {
		return fmt.Errorf("%w: name %q contains separator %q", ErrInvalidName, name, Separator)
	}
	if !segmentRegex.MatchString(name) || !isValidSegmentName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// Path is the structured representation of a component prefix, broken into
// validated segments.
type Path struct {
	segments []string
}

// Root creates a single-segment path for a module with no parent scope.
func Root(name string) (Path, error) {
	if err := Validate(name); err != nil {
		return Path{}, err
	}
	return Path{segments: []string{name}}, nil
}

// Parse creates a Path from its canonical string representation.
func Parse(prefix string) (Path, error) {
	if prefix == "" {
		return Path{}, fmt.Errorf("%w: prefix is empty", ErrInvalidName)
	}
	parts := strings.Split(prefix, Separator)
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if err := Validate(part); err != nil {
			return Path{}, err
		}
		segments = append(segments, part)
	}
	return Path{segments: segments}, nil
}

// Child derives the path for a child scope named name under p.
func (p Path) Child(name string) (Path, error) {
	if err := Validate(name); err != nil {
		return Path{}, err
	}
	segments := make([]string, 0, len(p.segments)+1)
	segments = append(segments, p.segments...)
	segments = append(segments, name)
	return Path{segments: segments}, nil
}

// String serializes the path into its canonical prefix representation.
func (p Path) String() string {
	return strings.Join(p.segments, Separator)
}

// Name returns the final segment of the path, i.e. the instance's own name.
// Empty for the zero Path.
func (p Path) Name() string {
	if len(p.segments) == 0 {
		return ""
	}
	return p.segments[len(p.segments)-1]
}

// Depth returns the number of segments in the path.
func (p Path) Depth() int {
	return len(p.segments)
}

// Equal checks for deep equality between two paths.
func (p Path) Equal(other Path) bool {
	if len(p.segments) != len(other.segments) {
		return false
	}
	for i := range p.segments {
		if p.segments[i] != other.segments[i] {
			return false
		}
	}
	return true
}

// ComponentName derives a globally-unique identifier for an internal object
// named component under the scope p describes. The component name itself must
// be a valid segment.
func (p Path) ComponentName(component string) (string, error) {
	if err := Validate(component); err != nil {
		return "", err
	}
	return p.String() + Separator + component, nil
}
