package store

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"lyrictranslator/pkg/logger"
)

type countingEngine struct {
	calls int
}

func (c *countingEngine) Name() string { return "counting" }

func (c *countingEngine) Translate(_ context.Context, text, _ string) (string, error) {
	c.calls++
	return "out: " + text, nil
}

func TestCachingEngineSkipsRepeatCalls(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "memory.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer s.Close()

	inner := &countingEngine{}
	eng := WithMemory(inner, s, logger.NewWithWriter(io.Discard, 10))
	ctx := context.Background()

	first, err := eng.Translate(ctx, "hello", "Chinese")
	if err != nil {
		t.Fatalf("first translate: %v", err)
	}
	second, err := eng.Translate(ctx, "hello", "Chinese")
	if err != nil {
		t.Fatalf("second translate: %v", err)
	}

	if first != second {
		t.Errorf("results differ: %q vs %q", first, second)
	}
	if inner.calls != 1 {
		t.Errorf("inner calls = %d, want 1", inner.calls)
	}

	// A different target language misses and calls through.
	if _, err := eng.Translate(ctx, "hello", "French"); err != nil {
		t.Fatalf("french translate: %v", err)
	}
	if inner.calls != 2 {
		t.Errorf("inner calls = %d, want 2", inner.calls)
	}
}

func TestCachingEngineKeepsName(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "memory.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer s.Close()

	eng := WithMemory(&countingEngine{}, s, logger.NewWithWriter(io.Discard, 10))
	if eng.Name() != "counting" {
		t.Errorf("name = %q, want counting", eng.Name())
	}
}
