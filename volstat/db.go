package volstat

import (
	"database/sql"
	"time"

	_ "modernc.org/sqlite"
)

const createTableSQL = `CREATE TABLE IF NOT EXISTS volume_samples (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id TEXT NOT NULL,
	path TEXT NOT NULL,
	taken_at INTEGER NOT NULL,
	bsize INTEGER, frsize INTEGER,
	blocks INTEGER, bfree INTEGER, bavail INTEGER,
	files INTEGER, ffree INTEGER, favail INTEGER,
	fsid INTEGER, flag INTEGER, namemax INTEGER
);`

const createIndexSQL = `CREATE INDEX IF NOT EXISTS volume_samples_path ON volume_samples (path, taken_at);`

// Sample is a VolumeStats recorded by the monitor.
type Sample struct {
	RunID   string
	Path    string
	TakenAt time.Time
	Stats   VolumeStats
}

// InitDB opens the SQLite database at dbPath and creates the sample table
// if it does not exist.
//
// Parameters:
// - dbPath: The file path for the SQLite database.
//
// Returns:
// - *sql.DB: The initialized SQLite database.
// - error: An error object if there was an issue initializing the database.
func InitDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	// A single connection keeps ":memory:" databases shared and serializes writers.
	db.SetMaxOpenConns(1)

	for _, stmt := range []string{createTableSQL, createIndexSQL} {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, err
		}
	}
	return db, nil
}

// SaveSample stores a sample.
//
// SQLite integers are signed 64-bit; counters are stored bit for bit and
// restored by the reads below.
func SaveSample(db *sql.DB, s Sample) error {
	insertSQL := `INSERT INTO volume_samples
		(run_id, path, taken_at, bsize, frsize, blocks, bfree, bavail, files, ffree, favail, fsid, flag, namemax)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`
	st := s.Stats
	_, err := db.Exec(insertSQL, s.RunID, s.Path, s.TakenAt.UnixNano(),
		int64(st.Bsize), int64(st.Frsize), int64(st.Blocks), int64(st.Bfree), int64(st.Bavail),
		int64(st.Files), int64(st.Ffree), int64(st.Favail), int64(st.Fsid), int64(st.Flag), int64(st.Namemax))
	return err
}

const selectSampleSQL = `SELECT run_id, path, taken_at, bsize, frsize, blocks, bfree, bavail,
	files, ffree, favail, fsid, flag, namemax FROM volume_samples WHERE path = ?
	ORDER BY taken_at DESC, id DESC`

type scanner interface {
	Scan(dest ...any) error
}

func scanSample(row scanner) (Sample, error) {
	var s Sample
	var takenAt int64
	var v [11]int64
	err := row.Scan(&s.RunID, &s.Path, &takenAt,
		&v[0], &v[1], &v[2], &v[3], &v[4], &v[5], &v[6], &v[7], &v[8], &v[9], &v[10])
	if err != nil {
		return s, err
	}
	s.TakenAt = time.Unix(0, takenAt)
	s.Stats = VolumeStats{
		Bsize:   uint64(v[0]),
		Frsize:  uint64(v[1]),
		Blocks:  uint64(v[2]),
		Bfree:   uint64(v[3]),
		Bavail:  uint64(v[4]),
		Files:   uint64(v[5]),
		Ffree:   uint64(v[6]),
		Favail:  uint64(v[7]),
		Fsid:    uint64(v[8]),
		Flag:    uint64(v[9]),
		Namemax: uint64(v[10]),
	}
	return s, nil
}

// LatestSample returns the most recent sample for path, or nil if none has
// been recorded.
func LatestSample(db *sql.DB, path string) (*Sample, error) {
	s, err := scanSample(db.QueryRow(selectSampleSQL+" LIMIT 1;", path))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListSamples returns up to limit samples for path, newest first. A limit
// of zero or less returns every sample.
func ListSamples(db *sql.DB, path string, limit int) ([]Sample, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := db.Query(selectSampleSQL+" LIMIT ?;", path, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var samples []Sample
	for rows.Next() {
		s, err := scanSample(rows)
		if err != nil {
			return nil, err
		}
		samples = append(samples, s)
	}
	return samples, rows.Err()
}
