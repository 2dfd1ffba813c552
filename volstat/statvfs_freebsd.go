//go:build freebsd

package volstat

import (
	"golang.org/x/sys/unix"
)

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
		Bavail:  clamp(int64(stat.Bavail)),
		Files:   uint64(stat.Files),
		Ffree:   clamp(int64(stat.Ffree)),
		Favail:  clamp(int64(stat.Ffree)),
		Fsid:    fsid(stat.Fsid.Val),
		Flag:    flag,
		Namemax: uint64(stat.Namemax),
	}, nil
}

// clamp converts a signed counter to unsigned, treating negative values
// (FreeBSD reports overcommitted reserves that way) as zero.
func clamp(v int64) uint64 {
	if v < 0 {
		return 0
	}
	return uint64(v)
}
