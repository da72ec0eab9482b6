package logger

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func initFile(t *testing.T, cfg Config) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "logs", "register.log")
	cfg.OutputPaths = append(cfg.OutputPaths, path)
	if err := Init(cfg); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(func() { _ = Init(Config{}) })
	return path
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	if err := Sync(); err != nil {
		t.Fatalf("sync: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	return string(data)
}

func TestInitJSONFile(t *testing.T) {
	path := initFile(t, Config{Level: "debug", Format: "json"})

	l, id := WithRunID(Named("card"))
	l.Debug("card loaded", "path", "/tmp/card.json")

	var entry map[string]any
	if err := json.Unmarshal([]byte(readLog(t, path)), &entry); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if entry["component"] != "card" {
		t.Fatalf("missing component: %v", entry)
	}
	if entry["run_id"] != id {
		t.Fatalf("run id mismatch: %v vs %s", entry["run_id"], id)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("run id is not a uuid: %v", err)
	}
}

func TestLevelFiltering(t *testing.T) {
	path := initFile(t, Config{Level: "warn", Format: "text"})

	L().Info("hidden")
	L().Warn("shown")

	out := readLog(t, path)
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered: %q", out)
	}
	if !strings.Contains(out, "level=WARN msg=shown") {
		t.Fatalf("warn line missing: %q", out)
	}
}

func TestMultipleOutputs(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.log")
	second := filepath.Join(dir, "nested", "b.log")
	if err := Init(Config{OutputPaths: []string{first, second}}); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(func() { _ = Init(Config{}) })

	L().Info("template written")
	if err := Sync(); err != nil {
		t.Fatalf("sync: %v", err)
	}

	for _, path := range []string{first, second} {
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read %s: %v", path, err)
		}
		if !strings.Contains(string(data), "template written") {
			t.Fatalf("unexpected log content in %s: %q", path, data)
		}
	}
}

func TestWithRunIDDistinct(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	a, idA := WithRunID(base)
	b, idB := WithRunID(base)
	if idA == idB {
		t.Fatal("run ids should differ between runs")
	}
	a.Info("first")
	b.Info("second")

	scanner := bufio.NewScanner(&buf)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if len(lines) != 2 || !strings.Contains(lines[0], "run_id="+idA) || !strings.Contains(lines[1], "run_id="+idB) {
		t.Fatalf("unexpected lines %q", lines)
	}
}

func TestInitRejectsUnwritablePath(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := Init(Config{OutputPaths: []string{filepath.Join(blocker, "sub", "x.log")}}); err == nil {
		t.Fatal("expected error for a path below a regular file")
	}
	t.Cleanup(func() { _ = Init(Config{}) })
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARNING": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
