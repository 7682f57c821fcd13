package cache

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestSetLogger_NilRestoresSilentDefault(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	SetLogger(nil)

	logger().Info("should not appear")
	if buf.Len() != 0 {
		t.Errorf("nil logger should be silent, got %q", buf.String())
	}
}

func TestSweeper_LogsLifecycle(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
	defer SetLogger(nil)

	c := NewSynced(
		WithAbsoluteExpiry[string, int](1*time.Millisecond),
		WithSweepInterval[string, int](5*time.Millisecond),
	)
	if _, err := c.GetOrAdd("a", constant[string](1)); err != nil {
		t.Fatalf("GetOrAdd failed: %v", err)
	}

	s := NewSweeper(c)
	time.Sleep(50 * time.Millisecond)
	s.Close()

	out := buf.String()
	if !strings.Contains(out, "sweeper started") {
		t.Errorf("log output missing start entry:\n%s", out)
	}
	if !strings.Contains(out, "sweeper stopped") {
		t.Errorf("log output missing stop entry:\n%s", out)
	}
	if !strings.Contains(out, "sweep evicted expired entries") {
		t.Errorf("log output missing eviction entry:\n%s", out)
	}
}
