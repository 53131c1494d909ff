package runner

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lyrictranslator/pkg/engine"
	"lyrictranslator/pkg/logger"
)

func writeLyric(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func localOptions() Options {
	return Options{
		Engine:   engine.NewLocal(),
		Language: "French",
		Logger:   logger.NewWithWriter(io.Discard, 10),
	}
}

func TestRunNoInput(t *testing.T) {
	_, err := Run(context.Background(), localOptions(), nil)
	if !errors.Is(err, ErrNoInput) {
		t.Fatalf("error = %v, want ErrNoInput", err)
	}
}

func TestRunSingleFileDoesNotPersist(t *testing.T) {
	dir := t.TempDir()
	path := writeLyric(t, dir, "song.txt", "hello\nworld")

	outcome, err := Run(context.Background(), localOptions(), []string{path})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if outcome.Single == nil {
		t.Fatal("expected single-file outcome")
	}
	if outcome.Batch != nil {
		t.Fatal("single file must not start a batch")
	}
	want := "[FRENCH 1] hello\n[FRENCH 2] world"
	if outcome.Single.Text != want {
		t.Errorf("text = %q, want %q", outcome.Single.Text, want)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want only the source file", len(entries))
	}
}

func TestRunSingleEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := writeLyric(t, dir, "blank.txt", "   \n\t\n")

	_, err := Run(context.Background(), localOptions(), []string{path})
	if err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestRunBatchSavesBesideSources(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeLyric(t, dir, "one.txt", "first"),
		writeLyric(t, dir, "two.txt", "second"),
	}

	outcome, err := Run(context.Background(), localOptions(), paths)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if outcome.Batch == nil {
		t.Fatal("expected batch outcome")
	}
	if outcome.Single != nil {
		t.Fatal("batch run must not produce a single result")
	}
	if !outcome.Batch.Done() {
		t.Fatalf("cursor = %d, want %d", outcome.Batch.Cursor, len(paths))
	}

	for i, item := range outcome.Batch.Items {
		if item.SavedPath == "" {
			t.Fatalf("item %d not saved", i)
		}
		if filepath.Dir(item.SavedPath) != dir {
			t.Errorf("item %d saved to %s, want beside source", i, item.SavedPath)
		}
		if !strings.Contains(filepath.Base(item.SavedPath), "_French_") {
			t.Errorf("saved name = %q, want language in name", filepath.Base(item.SavedPath))
		}
	}
}

func TestTranslateText(t *testing.T) {
	result, err := TranslateText(context.Background(), localOptions(), "la la")
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if result.Text != "[FRENCH 1] la la" {
		t.Errorf("text = %q", result.Text)
	}
}
