package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "memory.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreMiss(t *testing.T) {
	s := openTestStore(t)

	_, found, err := s.Get(context.Background(), "hello", "stub", "Chinese")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if found {
		t.Error("expected miss on empty store")
	}
}

func TestStorePutGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Put(ctx, "hello", "stub", "Chinese", "nihao"); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, found, err := s.Get(ctx, "hello", "stub", "Chinese")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !found || got != "nihao" {
		t.Errorf("get = %q, %t, want nihao, true", got, found)
	}

	// Same text under a different engine or language is a separate entry.
	if _, found, _ := s.Get(ctx, "hello", "other", "Chinese"); found {
		t.Error("engine should be part of the key")
	}
	if _, found, _ := s.Get(ctx, "hello", "stub", "French"); found {
		t.Error("language should be part of the key")
	}
}

func TestStorePutReplaces(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Put(ctx, "hello", "stub", "Chinese", "first"); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := s.Put(ctx, "hello", "stub", "Chinese", "second"); err != nil {
		t.Fatalf("second put: %v", err)
	}

	got, found, err := s.Get(ctx, "hello", "stub", "Chinese")
	if err != nil || !found {
		t.Fatalf("get = %t, %v", found, err)
	}
	if got != "second" {
		t.Errorf("get = %q, want second", got)
	}
}
