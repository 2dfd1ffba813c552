package volstat

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestVolumeStatsBytes(t *testing.T) {
	s := VolumeStats{Bsize: 4096, Frsize: 1024, Blocks: 1000, Bfree: 300, Bavail: 200}
	if got := s.TotalBytes(); got != 1024000 {
		t.Errorf("TotalBytes() = %d, want 1024000", got)
	}
	if got := s.FreeBytes(); got != 307200 {
		t.Errorf("FreeBytes() = %d, want 307200", got)
	}
	if got := s.AvailableBytes(); got != 204800 {
		t.Errorf("AvailableBytes() = %d, want 204800", got)
	}
	if got := s.UsedBytes(); got != 716800 {
		t.Errorf("UsedBytes() = %d, want 716800", got)
	}
	// 700 used of 700+200 usable blocks
	if got := s.UsedPercent(); got < 77.7 || got > 77.8 {
		t.Errorf("UsedPercent() = %v, want ~77.78", got)
	}
}

func TestVolumeStatsEmpty(t *testing.T) {
	var s VolumeStats
	if s.UsedPercent() != 0 || s.UsedBytes() != 0 || s.TotalBytes() != 0 {
		t.Errorf("empty stats = %v%% %d %d", s.UsedPercent(), s.UsedBytes(), s.TotalBytes())
	}
}

func TestVolumeStatsFlags(t *testing.T) {
	s := VolumeStats{Flag: FlagReadOnly | FlagNoSUID}
	if !s.ReadOnly() || !s.NoSUID() {
		t.Errorf("ReadOnly()=%v NoSUID()=%v, want both true", s.ReadOnly(), s.NoSUID())
	}
	s.Flag = 0
	if s.ReadOnly() || s.NoSUID() {
		t.Errorf("flags reported for Flag=0")
	}
}

func TestVolumeStatsJSONKeepsZeroFlag(t *testing.T) {
	data, err := json.Marshal(VolumeStats{Bsize: 4096})
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}
	for _, key := range []string{"bsize", "frsize", "blocks", "bfree", "bavail", "files", "ffree", "favail", "fsid", "flag", "namemax"} {
		if !strings.Contains(string(data), `"`+key+`":`) {
			t.Errorf("JSON %s is missing %q", data, key)
		}
	}
}
