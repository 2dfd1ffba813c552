//go:build darwin

package volstat

import (
	"golang.org/x/sys/unix"
)

// NAME_MAX on every filesystem macOS ships; statfs does not report it.
const darwinNameMax = 255

func statvfs(path string) (*VolumeStats, error) {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return nil, err
	}

	var flag uint64
	if stat.Flags&unix.MNT_RDONLY != 0 {
		flag |= FlagReadOnly
	}
	if stat.Flags&unix.MNT_NOSUID != 0 {
		flag |= FlagNoSUID
	}

	return &VolumeStats{
		Bsize:   uint64(stat.Bsize),
		Frsize:  uint64(stat.Bsize),
		Blocks:  uint64(stat.Blocks),
		Bfree:   uint64(stat.Bfree),
		Bavail:  uint64(stat.Bavail),
		Files:   uint64(stat.Files),
		Ffree:   uint64(stat.Ffree),
		Favail:  uint64(stat.Ffree),
		Fsid:    fsid(stat.Fsid.Val),
		Flag:    flag,
		Namemax: darwinNameMax,
	}, nil
}
