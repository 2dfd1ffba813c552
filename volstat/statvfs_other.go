//go:build !linux && !darwin && !freebsd && !windows

package volstat

func statvfs(path string) (*VolumeStats, error) {
	return nil, errNoBackend
}
