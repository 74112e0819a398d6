package filetree

import (
	"errors"
	"fmt"
)

// Sentinel errors matched with errors.Is against *Error values.
var (
	ErrNameCollision = errors.New("name collision")
	ErrMissingTarget = errors.New("missing target")
	ErrInvalidName   = errors.New("invalid name")
)

// Error describes a rejected tree operation. Path is the location the
// operation addressed and Name the segment that caused the rejection.
type Error struct {
	Op   string
	Path string
	Name string
	// Existing is the kind of node already bound to Name for collisions.
	Existing Kind
	err      error
}

func (e *Error) Error() string {
	switch {
	case errors.Is(e.err, ErrNameCollision):
		return fmt.Sprintf("%s %q: %s already named %q", e.Op, e.Path, e.Existing, e.Name)
	case e.Path != "":
		return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.err)
	default:
		return fmt.Sprintf("%s: %v", e.Op, e.err)
	}
}

// Unwrap returns the sentinel for the error kind.
func (e *Error) Unwrap() error { return e.err }

func collision(op, path, name string, existing Kind) *Error {
	return &Error{Op: op, Path: path, Name: name, Existing: existing, err: ErrNameCollision}
}

func missing(op, path string) *Error {
	return &Error{Op: op, Path: path, Name: Base(path), err: ErrMissingTarget}
}

func invalid(op, path, name string) *Error {
	return &Error{Op: op, Path: path, Name: name, err: ErrInvalidName}
}
