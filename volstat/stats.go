package volstat

// POSIX statvfs f_flag bits. Backends translate platform mount flags into
// these so that Flag has the same meaning everywhere.
const (
	FlagReadOnly = 0x1 // ST_RDONLY
	FlagNoSUID   = 0x2 // ST_NOSUID
)

// VolumeStats holds the statistics of the volume backing a path, as reported
// by statvfs(3). Block counts are in units of Frsize. A VolumeStats is built
// fresh for every query and is never modified afterwards.
type VolumeStats struct {
	Bsize   uint64 `json:"bsize"`
	Frsize  uint64 `json:"frsize"`
	Blocks  uint64 `json:"blocks"`
	Bfree   uint64 `json:"bfree"`
	Bavail  uint64 `json:"bavail"`
	Files   uint64 `json:"files"`
	Ffree   uint64 `json:"ffree"`
	Favail  uint64 `json:"favail"`
	Fsid    uint64 `json:"fsid"`
	Flag    uint64 `json:"flag"`
	Namemax uint64 `json:"namemax"`
}

// TotalBytes returns the size of the volume in bytes.
func (s VolumeStats) TotalBytes() uint64 {
	return s.Blocks * s.Frsize
}

// FreeBytes returns the free space in bytes, including space reserved for
// privileged users.
func (s VolumeStats) FreeBytes() uint64 {
	return s.Bfree * s.Frsize
}

// AvailableBytes returns the free space in bytes available to unprivileged
// callers.
func (s VolumeStats) AvailableBytes() uint64 {
	return s.Bavail * s.Frsize
}

// UsedBytes returns the space in use in bytes.
func (s VolumeStats) UsedBytes() uint64 {
	if s.Bfree > s.Blocks {
		return 0
	}
	return (s.Blocks - s.Bfree) * s.Frsize
}

// UsedPercent returns used space as a percentage of the space usable by
// unprivileged callers, the same figure df(1) prints.
func (s VolumeStats) UsedPercent() float64 {
	used := s.UsedBytes()
	denom := used + s.AvailableBytes()
	if denom == 0 {
		return 0
	}
	return float64(used) / float64(denom) * 100
}

// ReadOnly reports whether the volume is mounted read-only.
func (s VolumeStats) ReadOnly() bool {
	return s.Flag&FlagReadOnly != 0
}

// NoSUID reports whether set-user-ID bits are ignored on the volume.
func (s VolumeStats) NoSUID() bool {
	return s.Flag&FlagNoSUID != 0
}
