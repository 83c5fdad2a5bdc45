package logging

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitWritesToFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(prev)
		log.SetOutput(os.Stderr)
	})

	dir := filepath.Join(t.TempDir(), "logs")
	file, err := Init(dir)
	if err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	defer file.Close()

	slog.Info("collection updated", "id", "k1")

	data, err := os.ReadFile(filepath.Join(dir, "tasknest.log"))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "collection updated") || !strings.Contains(string(data), "id=k1") {
		t.Errorf("log file missing entry: %q", data)
	}
}
