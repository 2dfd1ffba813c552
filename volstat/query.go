// Package volstat reports filesystem volume statistics, the data returned by
// the POSIX statvfs(3) call, for a path.
//
// Queries are independent and may be issued concurrently. Each one performs
// a single read-only system call on its own goroutine and delivers exactly
// one outcome: a fully populated VolumeStats or a *QueryError.
package volstat

// Result is the outcome of an asynchronous query. Exactly one of Stats and
// Err is non-nil.
type Result struct {
	Path  string
	Stats *VolumeStats
	Err   error
}

// Stat queries the volume backing path and blocks until the system call
// returns. The path is passed to the operating system unvalidated.
//
// Parameters:
// - path: The path whose volume is queried.
//
// Returns:
// - *VolumeStats: The volume statistics, or nil on failure.
// - error: A *QueryError describing the operating system failure.
func Stat(path string) (*VolumeStats, error) {
	stats, err := statvfs(path)
	if err != nil {
		return nil, newQueryError(path, err)
	}
	return stats, nil
}

// Query starts an asynchronous query of the volume backing path. The
// returned channel receives exactly one Result and is then closed. The
// caller is never blocked by the system call.
func Query(path string) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		stats, err := Stat(path)
		ch <- Result{Path: path, Stats: stats, Err: err}
	}()
	return ch
}

// Statvfs queries the volume backing path and invokes callback with the
// outcome once the system call completes. The callback runs on its own
// goroutine and is invoked exactly once: with a nil error and the stats on
// success, or with the error and nil stats on failure.
func Statvfs(path string, callback func(err error, stats *VolumeStats)) {
	go func() {
		stats, err := Stat(path)
		callback(err, stats)
	}()
}

// QueryAll queries every path concurrently and returns the results in the
// order of paths.
func QueryAll(paths []string) []Result {
	pending := make([]<-chan Result, len(paths))
	for i, p := range paths {
		pending[i] = Query(p)
	}
	results := make([]Result, len(paths))
	for i, ch := range pending {
		results[i] = <-ch
	}
	return results
}
