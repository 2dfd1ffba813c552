//go:build linux || darwin || freebsd

package volstat

import (
	"errors"
	"syscall"
	"testing"
)

func TestClassify(t *testing.T) {
	for _, tc := range []struct {
		err  error
		want ErrorKind
	}{
		{syscall.ENOENT, PathNotFound},
		{syscall.ENOTDIR, PathNotFound},
		{syscall.EACCES, PermissionDenied},
		{syscall.EPERM, PermissionDenied},
		{syscall.ENOSYS, UnsupportedPlatform},
		{errNoBackend, UnsupportedPlatform},
		{syscall.EIO, SystemCallFailure},
		{syscall.ELOOP, SystemCallFailure},
		{syscall.EINVAL, SystemCallFailure},
	} {
		if got := classify(tc.err); got != tc.want {
			t.Errorf("classify(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}

func TestQueryError(t *testing.T) {
	err := error(newQueryError("/mnt/data", syscall.EACCES))
	if got, want := err.Error(), "statvfs /mnt/data: permission denied"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("errors.Is(err, ErrPermissionDenied) = false")
	}
	for _, other := range []error{ErrPathNotFound, ErrUnsupportedPlatform, ErrSystemCallFailure} {
		if errors.Is(err, other) {
			t.Errorf("errors.Is(err, %v) = true", other)
		}
	}
	if !errors.Is(err, syscall.EACCES) {
		t.Errorf("errors.Is(err, EACCES) = false")
	}

	unsupported := newQueryError("/", errNoBackend)
	if !errors.Is(unsupported, ErrUnsupportedPlatform) {
		t.Errorf("errors.Is(%v, ErrUnsupportedPlatform) = false", unsupported)
	}
	if unsupported.Kind.String() != "unsupported platform" {
		t.Errorf("Kind.String() = %q", unsupported.Kind.String())
	}
}
