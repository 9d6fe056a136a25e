package ini

import (
	"errors"
	"fmt"
)

// ErrKeyNotFound is the cause recorded in an AccessError when the
// referenced key does not exist in the section.
var ErrKeyNotFound = errors.New("key not found")

// ErrSectionNotFound is the cause recorded in an AccessError when the
// referenced section does not exist in the document.
var ErrSectionNotFound = errors.New("section not found")

// ErrKeyExists is the cause recorded in an AccessError when a rename
// target is already bound in the section.
var ErrKeyExists = errors.New("key already exists")

// An AccessError reports a failed key, comment or typed-value access:
// the referenced section or key does not exist, or a typed getter could
// not parse the stored string. It is always recoverable.
type AccessError struct {
	Section string // section name; empty for the untitled section
	Key     string // key name; empty when the section itself was missing
	Err     error
}

func (e *AccessError) Error() string {
	section := e.Section
	if section == "" {
		section = "(untitled)"
	}
	if e.Key == "" {
		return fmt.Sprintf("ini: section %q: %v", section, e.Err)
	}
	return fmt.Sprintf("ini: section %q, key %q: %v", section, e.Key, e.Err)
}

func (e *AccessError) Unwrap() error { return e.Err }

// An IOError reports a failure at the file/stream boundary. The engine
// itself never produces one; only the Load/Save adapter does.
type IOError struct {
	Op   string // "open", "read", "write"
	Path string // file path; empty for plain streams
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("ini: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("ini: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
