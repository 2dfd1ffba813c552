//go:build linux || darwin || freebsd

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/noatgnu/volstat/volstat"
)

func TestRunQueryJSON(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	if code := run([]string{"-json", dir}, &out); code != 0 {
		t.Fatalf("run() = %d, want 0", code)
	}

	var got []queryOutput
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("json.Unmarshal() error: %v\n%s", err, out.String())
	}
	if len(got) != 1 || got[0].Path != dir || got[0].Stats == nil {
		t.Fatalf("output = %s, want one entry with stats for %s", out.String(), dir)
	}
	stats := got[0].Stats
	if stats.Bsize == 0 || stats.Blocks == 0 || stats.Namemax == 0 {
		t.Errorf("stats = %+v, want populated fields", stats)
	}
	if !strings.Contains(out.String(), `"flag":`) {
		t.Errorf("output omits flag: %s", out.String())
	}
}

func TestRunQueryFailure(t *testing.T) {
	var out bytes.Buffer
	if code := run([]string{"-json", "/nonexistent"}, &out); code != 1 {
		t.Fatalf("run() = %d, want 1", code)
	}
	if !strings.Contains(out.String(), "no such file or directory") {
		t.Errorf("output %q does not report the error", out.String())
	}
}

func TestRunQueryJSONKeepsArgumentOrder(t *testing.T) {
	dir := t.TempDir()
	args := []string{dir, dir, "/nonexistent", "/nonexistent"}
	var out bytes.Buffer
	if code := run(append([]string{"-json"}, args...), &out); code != 1 {
		t.Fatalf("run() = %d, want 1", code)
	}

	var got []queryOutput
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("json.Unmarshal() error: %v\n%s", err, out.String())
	}
	if len(got) != len(args) {
		t.Fatalf("len(output) = %d, want %d: %s", len(got), len(args), out.String())
	}
	for i, entry := range got {
		if entry.Path != args[i] {
			t.Errorf("output[%d].Path = %q, want %q", i, entry.Path, args[i])
		}
		failed := args[i] == "/nonexistent"
		if failed && (entry.Error == "" || entry.Stats != nil) {
			t.Errorf("output[%d] = %+v, want error only", i, entry)
		}
		if !failed && (entry.Error != "" || entry.Stats == nil) {
			t.Errorf("output[%d] = %+v, want stats only", i, entry)
		}
	}
}

func TestRunResetsLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "volstat.log")
	if code := run([]string{"-log", logPath, "/nonexistent"}, &bytes.Buffer{}); code != 1 {
		t.Fatalf("run() = %d, want 1", code)
	}
	if volstat.LogFile != nil {
		t.Fatalf("LogFile still set after run() returned")
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "/nonexistent") {
		t.Errorf("log file %q does not record the failed query", data)
	}
}

func TestRunQueryText(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	if code := run([]string{dir}, &out); code != 0 {
		t.Fatalf("run() = %d, want 0", code)
	}
	if !strings.Contains(out.String(), "used") {
		t.Errorf("output %q has no usage line", out.String())
	}
}

func TestRunWatchCreatesTemplate(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.json")
	if code := run([]string{"-watch", "-config", configFile}, &bytes.Buffer{}); code != 0 {
		t.Fatalf("run() = %d, want 0", code)
	}
	if _, err := os.Stat(configFile); err != nil {
		t.Fatalf("template config not created: %v", err)
	}
}

func TestRunHistory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "volstat.db")
	db, err := volstat.InitDB(dbPath)
	if err != nil {
		t.Fatalf("InitDB() error: %v", err)
	}
	sample := volstat.Sample{RunID: "0123456789abcdef", Path: "/data", TakenAt: time.Now(),
		Stats: volstat.VolumeStats{Frsize: 1024, Blocks: 100, Bfree: 50, Bavail: 50, Favail: 7}}
	if err := volstat.SaveSample(db, sample); err != nil {
		t.Fatalf("SaveSample() error: %v", err)
	}
	db.Close()

	var out bytes.Buffer
	if code := run([]string{"-history", "/data", "-db", dbPath}, &out); code != 0 {
		t.Fatalf("run() = %d, want 0", code)
	}
	if !strings.Contains(out.String(), "01234567 ") || !strings.Contains(out.String(), "50.0% used") {
		t.Errorf("history output = %q", out.String())
	}
}

func TestRunUsage(t *testing.T) {
	if code := run(nil, &bytes.Buffer{}); code != 2 {
		t.Fatalf("run() = %d, want 2", code)
	}
}
