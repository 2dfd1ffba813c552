//go:build linux

package volstat

import (
	"golang.org/x/sys/unix"
)

// The kernel sets ST_VALID in f_flags to tell callers the field is filled
// in. It is not a mount flag and statvfs(3) strips it.
const stValid = 0x20

// statvfs returns the volume statistics for path on Linux.
// It uses the `statfs` system call and derives the statvfs fields the same
// way the C library does.
//
// Parameters:
// - path: The path whose backing volume is queried.
//
// Returns:
// - *VolumeStats: The statistics of the volume.
// - error: The raw system call error if the query failed.
func statvfs(path string) (*VolumeStats, error) {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return nil, err
	}

	frsize := uint64(stat.Frsize)
	if frsize == 0 {
		frsize = uint64(stat.Bsize)
	}
	flag := uint64(stat.Flags) &^ stValid

	return &VolumeStats{
		Bsize:   uint64(stat.Bsize),
		Frsize:  frsize,
		Blocks:  uint64(stat.Blocks),
		Bfree:   uint64(stat.Bfree),
		Bavail:  uint64(stat.Bavail),
		Files:   uint64(stat.Files),
		Ffree:   uint64(stat.Ffree),
		Favail:  uint64(stat.Ffree),
		Fsid:    fsid(stat.Fsid.Val),
		Flag:    flag,
		Namemax: uint64(stat.Namelen),
	}, nil
}
