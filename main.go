package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/noatgnu/volstat/volstat"
)

const usage = `Usage:
  volstat [-json] PATH...
  volstat -watch -config=<config_file> [-db=<db_file>] [-log=<log_file>]
  volstat -history=PATH [-db=<db_file>] [-limit=N]
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet("volstat", flag.ContinueOnError)
	jsonOut := fs.Bool("json", false, "Print statistics as JSON")
	watch := fs.Bool("watch", false, "Monitor the volumes listed in the configuration file")
	configFile := fs.String("config", "", "Path to the JSON configuration file")
	dbPath := fs.String("db", "volstat.db", "Path to the SQLite database file")
	logPath := fs.String("log", "", "Append log output to this file")
	history := fs.String("history", "", "Print recorded samples for this path")
	limit := fs.Int("limit", 20, "Maximum number of samples printed by -history")
	checkSlack := fs.Bool("check-slack", false, "Verify the Slack token from the configuration and exit")
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			volstat.LogWithDatetime("Error opening log file:", err)
			return 1
		}
		defer f.Close()
		volstat.LogFile = f
		defer func() { volstat.LogFile = nil }()
	}

	switch {
	case *watch || *checkSlack:
		return runWatch(*configFile, *dbPath, *checkSlack)
	case *history != "":
		return runHistory(stdout, *dbPath, *history, *limit)
	case fs.NArg() > 0:
		return runQuery(stdout, fs.Args(), *jsonOut)
	}
	fs.Usage()
	return 2
}

// queryOutput is one element of the -json output, which lists results in
// argument order.
type queryOutput struct {
	Path  string               `json:"path"`
	Stats *volstat.VolumeStats `json:"stats,omitempty"`
	Error string               `json:"error,omitempty"`
}

func runQuery(w io.Writer, paths []string, jsonOut bool) int {
	status := 0
	results := volstat.QueryAll(paths)

	if jsonOut {
		out := make([]queryOutput, len(results))
		for i, r := range results {
			out[i] = queryOutput{Path: r.Path, Stats: r.Stats}
			if r.Err != nil {
				out[i].Error = r.Err.Error()
				status = 1
			}
		}
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(out); err != nil {
			volstat.LogWithDatetime("Error encoding output:", err)
			return 1
		}
		return status
	}

	for _, r := range results {
		if r.Err != nil {
			volstat.LogWithDatetime(r.Err)
			status = 1
			continue
		}
		if err := volstat.RenderUsage(w, r.Path, r.Stats); err != nil {
			volstat.LogWithDatetime("Error writing output:", err)
			return 1
		}
	}
	return status
}

func runWatch(configFile, dbPath string, checkSlack bool) int {
	if configFile == "" {
		volstat.LogWithDatetime("Usage: volstat -watch -config=<config_file> -db=<db_file>")
		return 2
	}

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		err := volstat.CreateTemplateConfig(configFile)
		if err != nil {
			volstat.LogWithDatetime("Error creating template configuration file:", err)
			return 1
		}
		volstat.LogWithDatetime(fmt.Sprintf("Template configuration file created at %s. Please fill in the file and start again.", configFile))
		return 0
	}

	config, err := volstat.ReadConfigFromFile(configFile)
	if err != nil {
		volstat.LogWithDatetime("Error reading configuration file:", err)
		return 1
	}

	if checkSlack {
		if config.SlackToken == "" || !volstat.TestSlackCredentials(config.SlackToken) {
			return 1
		}
		return 0
	}

	db, err := volstat.InitDB(dbPath)
	if err != nil {
		volstat.LogWithDatetime("Error initializing database:", err)
		return 1
	}
	defer db.Close()

	var notifier volstat.Notifier
	if n := volstat.NewSlackNotifier(config); n != nil {
		notifier = n
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := volstat.NewMonitor(db, config, notifier).Run(ctx); err != nil {
		volstat.LogWithDatetime("Error running monitor:", err)
		return 1
	}
	volstat.LogWithDatetime("Shutting down gracefully")
	return 0
}

func runHistory(w io.Writer, dbPath, path string, limit int) int {
	db, err := volstat.InitDB(dbPath)
	if err != nil {
		volstat.LogWithDatetime("Error initializing database:", err)
		return 1
	}
	defer db.Close()

	samples, err := volstat.ListSamples(db, path, limit)
	if err != nil {
		volstat.LogWithDatetime("Error reading samples:", err)
		return 1
	}
	for _, s := range samples {
		fmt.Fprintf(w, "%s  %-10s  %6.1f%% used  %10s avail  %12s inodes free\n",
			s.TakenAt.Format(time.DateTime),
			shortID(s.RunID),
			s.Stats.UsedPercent(),
			humanize.IBytes(s.Stats.AvailableBytes()),
			humanize.Comma(int64(s.Stats.Favail)),
		)
	}
	return 0
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
