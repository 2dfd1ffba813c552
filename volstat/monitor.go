package volstat

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// Check is the outcome of querying one configured path against the
// configured limits.
type Check struct {
	Path      string
	Stats     *VolumeStats
	Err       error
	LowSpace  bool
	LowInodes bool
}

// Low reports whether either limit was breached.
func (c Check) Low() bool {
	return c.LowSpace || c.LowInodes
}

// CheckVolumes queries every configured path concurrently and compares the
// results with the configured minimums. Inode limits are skipped for volumes
// that report no inodes.
func CheckVolumes(config Configuration) []Check {
	results := QueryAll(config.Paths)
	checks := make([]Check, len(results))
	for i, r := range results {
		c := Check{Path: r.Path, Stats: r.Stats, Err: r.Err}
		if r.Err == nil {
			if config.MinFreeSpace > 0 && r.Stats.AvailableBytes() <= uint64(config.MinFreeSpace) {
				c.LowSpace = true
			}
			if config.MinFreeInodes > 0 && r.Stats.Files > 0 && r.Stats.Favail <= uint64(config.MinFreeInodes) {
				c.LowInodes = true
			}
		}
		checks[i] = c
	}
	return checks
}

type volumeState int

const (
	stateOK volumeState = iota
	stateLow
	stateFailing
)

// Monitor periodically checks the configured volumes, records every
// successful query in the sample store and notifies when a volume changes
// state. Repeated checks in the same state do not notify again.
type Monitor struct {
	DB       *sql.DB
	Config   Configuration
	Notifier Notifier
	RunID    string

	state map[string]volumeState
}

// NewMonitor returns a Monitor with a fresh run identifier. db and notifier
// may be nil to disable sample storage and notifications.
func NewMonitor(db *sql.DB, config Configuration, notifier Notifier) *Monitor {
	return &Monitor{
		DB:       db,
		Config:   config,
		Notifier: notifier,
		RunID:    uuid.NewString(),
		state:    make(map[string]volumeState),
	}
}

// Tick performs one pass over the configured volumes.
func (m *Monitor) Tick(now time.Time) []Check {
	if m.state == nil {
		m.state = make(map[string]volumeState)
	}
	checks := CheckVolumes(m.Config)
	for _, c := range checks {
		if c.Err != nil {
			LogWithDatetime("Error querying volume:", c.Err)
			m.transition(c.Path, stateFailing, fmt.Sprintf("Cannot query volume for %s: %v", c.Path, c.Err))
			continue
		}

		if m.DB != nil {
			sample := Sample{RunID: m.RunID, Path: c.Path, TakenAt: now, Stats: *c.Stats}
			if err := SaveSample(m.DB, sample); err != nil {
				LogWithDatetime("Error saving sample:", err)
			}
		}

		if c.Low() {
			m.transition(c.Path, stateLow, lowMessage(c))
		} else {
			m.transition(c.Path, stateOK, fmt.Sprintf("Volume for %s is back above limits: %s available",
				c.Path, humanize.IBytes(c.Stats.AvailableBytes())))
		}
	}
	return checks
}

func (m *Monitor) transition(path string, next volumeState, message string) {
	prev := m.state[path]
	m.state[path] = next
	if prev == next {
		return
	}
	LogWithDatetime(message)
	if m.Notifier == nil {
		return
	}
	if err := m.Notifier.Notify(message); err != nil {
		LogWithDatetime(err)
	}
}

func lowMessage(c Check) string {
	s := c.Stats
	switch {
	case c.LowSpace && c.LowInodes:
		return fmt.Sprintf("Volume for %s is low on space and inodes: %s and %s inodes available",
			c.Path, humanize.IBytes(s.AvailableBytes()), humanize.Comma(int64(s.Favail)))
	case c.LowSpace:
		return fmt.Sprintf("Volume for %s is low on space: %s of %s available",
			c.Path, humanize.IBytes(s.AvailableBytes()), humanize.IBytes(s.TotalBytes()))
	default:
		return fmt.Sprintf("Volume for %s is low on inodes: %s of %s available",
			c.Path, humanize.Comma(int64(s.Favail)), humanize.Comma(int64(s.Files)))
	}
}

// Run checks the volumes every check interval until ctx is cancelled. The
// first check happens immediately.
func (m *Monitor) Run(ctx context.Context) error {
	duration, err := m.Config.Interval()
	if err != nil {
		return err
	}
	ticker := time.NewTicker(duration)
	defer ticker.Stop()

	LogWithDatetime(fmt.Sprintf("Monitoring %d volume(s) every %s, run %s", len(m.Config.Paths), duration, m.RunID))
	m.Tick(time.Now())
	for {
		select {
		case <-ctx.Done():
			LogWithDatetime("Shutting down monitoring")
			return nil
		case t := <-ticker.C:
			m.Tick(t)
		}
	}
}
