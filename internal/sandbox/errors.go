package sandbox

import (
	"errors"
	"fmt"
)

// Path validation and entry errors.
var (
	ErrInvalidPath   = errors.New("invalid path")
	ErrPathTraversal = errors.New("path traversal detected")
	ErrNotFound      = errors.New("entry not found")
	ErrWrongType     = errors.New("wrong entry type")
	ErrAlreadyExists = errors.New("entry already exists")
)

// PathError wraps a sandbox error with the operation and path it occurred on.
type PathError struct {
	Op   string
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// IsTraversal reports whether err is a path traversal rejection.
func IsTraversal(err error) bool {
	return errors.Is(err, ErrPathTraversal)
}

// IsInvalid reports whether err is an invalid path rejection.
func IsInvalid(err error) bool {
	return errors.Is(err, ErrInvalidPath)
}
