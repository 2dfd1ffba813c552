//go:build windows

package volstat

import (
	"golang.org/x/sys/windows"
)

// statvfs returns the volume statistics for path on Windows systems.
// Windows has no statvfs; the figures come from GetDiskFreeSpaceEx and
// GetVolumeInformation and are reported at byte granularity. Both calls are
// made on the volume root, so file paths work as well as directories. Inode counts
// do not exist on Windows volumes and are reported as zero.
//
// Parameters:
// - path: The path whose backing volume is queried.
//
// Returns:
// - *VolumeStats: The statistics of the volume.
// - error: The raw Windows error if the query failed.
func statvfs(path string) (*VolumeStats, error) {
	pathPtr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return nil, err
	}

	// GetVolumePathName resolves paths that do not exist, so check first.
	if _, err := windows.GetFileAttributes(pathPtr); err != nil {
		return nil, err
	}

	root := make([]uint16, windows.MAX_PATH+1)
	if err := windows.GetVolumePathName(pathPtr, &root[0], uint32(len(root))); err != nil {
		return nil, err
	}

	var freeBytesAvailable, totalNumberOfBytes, totalNumberOfFreeBytes uint64
	if err := windows.GetDiskFreeSpaceEx(&root[0], &freeBytesAvailable, &totalNumberOfBytes, &totalNumberOfFreeBytes); err != nil {
		return nil, err
	}

	var serial, maxComponentLength, fsFlags uint32
	if err := windows.GetVolumeInformation(&root[0], nil, 0, &serial, &maxComponentLength, &fsFlags, nil, 0); err != nil {
		return nil, err
	}

	var flag uint64
	if fsFlags&windows.FILE_READ_ONLY_VOLUME != 0 {
		flag |= FlagReadOnly
	}

	return &VolumeStats{
		Bsize:   1,
		Frsize:  1,
		Blocks:  totalNumberOfBytes,
		Bfree:   totalNumberOfFreeBytes,
		Bavail:  freeBytesAvailable,
		Fsid:    uint64(serial),
		Flag:    flag,
		Namemax: uint64(maxComponentLength),
	}, nil
}
