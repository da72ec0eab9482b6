package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolve(t *testing.T) {
	layout := Resolve("/opt/fiber")
	if layout.CardPath != filepath.Join("/opt/fiber", "FiberAgent-card.json") {
		t.Fatalf("unexpected card path %s", layout.CardPath)
	}
	if layout.EnvPath != filepath.Join("/opt/fiber", ".env.erc8004") {
		t.Fatalf("unexpected env path %s", layout.EnvPath)
	}

	if got := Resolve("").BaseDir; got != "." {
		t.Fatalf("expected current directory fallback, got %s", got)
	}
}

func TestProgramDir(t *testing.T) {
	dir, err := ProgramDir()
	if err != nil {
		t.Fatalf("program dir: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("stat %s: %v", dir, err)
	}
	if !info.IsDir() {
		t.Fatalf("%s is not a directory", dir)
	}
}

func TestDefaultLoggingKeepsStdoutClean(t *testing.T) {
	logging := DefaultLogging()
	if logging.Level != "info" || logging.Format != "text" {
		t.Fatalf("unexpected logging defaults %+v", logging)
	}
	for _, out := range logging.OutputPaths {
		if out == "stdout" {
			t.Fatalf("diagnostics must not share stdout with the transcript: %+v", logging)
		}
	}

	logging.OutputPaths[0] = "stdout"
	if DefaultLogging().OutputPaths[0] != "stderr" {
		t.Fatal("defaults must not be shared between callers")
	}
}
