package volstat

import (
	"errors"
	"io/fs"
	"syscall"
)

// ErrorKind classifies a failed query.
type ErrorKind int

const (
	SystemCallFailure ErrorKind = iota
	PathNotFound
	PermissionDenied
	UnsupportedPlatform
)

func (k ErrorKind) String() string {
	switch k {
	case PathNotFound:
		return "path not found"
	case PermissionDenied:
		return "permission denied"
	case UnsupportedPlatform:
		return "unsupported platform"
	default:
		return "system call failure"
	}
}

// Sentinels matched by QueryError.Is.
var (
	ErrPathNotFound        = errors.New("volstat: path not found")
	ErrPermissionDenied    = errors.New("volstat: permission denied")
	ErrUnsupportedPlatform = errors.New("volstat: unsupported platform")
	ErrSystemCallFailure   = errors.New("volstat: system call failure")

	errNoBackend = errors.New("no volume statistics call on this platform")
)

// QueryError records a failed statvfs query and the operating system error
// that caused it.
type QueryError struct {
	Op   string
	Path string
	Kind ErrorKind
	Err  error
}

func (e *QueryError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *QueryError) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for e's kind.
func (e *QueryError) Is(target error) bool {
	switch target {
	case ErrPathNotFound:
		return e.Kind == PathNotFound
	case ErrPermissionDenied:
		return e.Kind == PermissionDenied
	case ErrUnsupportedPlatform:
		return e.Kind == UnsupportedPlatform
	case ErrSystemCallFailure:
		return e.Kind == SystemCallFailure
	}
	return false
}

func newQueryError(path string, err error) *QueryError {
	return &QueryError{Op: "statvfs", Path: path, Kind: classify(err), Err: err}
}

func classify(err error) ErrorKind {
	switch {
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, syscall.ENOTDIR):
		return PathNotFound
	case errors.Is(err, fs.ErrPermission):
		return PermissionDenied
	case errors.Is(err, errors.ErrUnsupported), errors.Is(err, errNoBackend):
		return UnsupportedPlatform
	}
	return SystemCallFailure
}
