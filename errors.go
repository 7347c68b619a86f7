package svgicon

import (
	"errors"
	"fmt"
)

// ErrNoStyleSheet is returned if Transform is called without a stylesheet.
var ErrNoStyleSheet = errors.New("no stylesheet to transform")

// FileAccessError is returned if an icon file cannot be read.
type FileAccessError struct {
	Path string // resolved path of the icon file
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("cannot read icon file %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// MarkupParseError is returned if an icon file does not contain valid markup.
type MarkupParseError struct {
	Path string // resolved path of the icon file
	Err  error
}

func (e *MarkupParseError) Error() string {
	return fmt.Sprintf("cannot parse icon file %s: %v", e.Path, e.Err)
}

func (e *MarkupParseError) Unwrap() error { return e.Err }

// MalformedMarkerError is returned for a declaration which contains the
// marker function, but from which no icon request can be extracted.
type MalformedMarkerError struct {
	Selector string // selector of the enclosing rule, if any
	Property string
	Value    string
	Reason   string
}

func (e *MalformedMarkerError) Error() string {
	if e.Selector == "" {
		return fmt.Sprintf("malformed icon declaration '%s: %s': %s", e.Property, e.Value, e.Reason)
	}
	return fmt.Sprintf("malformed icon declaration '%s: %s' in rule %q: %s",
		e.Property, e.Value, e.Selector, e.Reason)
}
