//go:build linux || darwin || freebsd

package volstat

// fsid packs the two 32-bit halves of a kernel fsid_t into one value, low
// word first.
func fsid(val [2]int32) uint64 {
	return uint64(uint32(val[0])) | uint64(uint32(val[1]))<<32
}
