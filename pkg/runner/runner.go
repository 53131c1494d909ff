package runner

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"lyrictranslator/pkg/batch"
	"lyrictranslator/pkg/config"
	"lyrictranslator/pkg/engine"
	"lyrictranslator/pkg/logger"
	"lyrictranslator/pkg/lyrics"
	"lyrictranslator/pkg/store"
)

// Options assembles a translation run.
type Options struct {
	Engine    engine.Engine
	Language  string // canonical display name, e.g. "Chinese"
	Callbacks batch.Callbacks
	Bus       *batch.Bus
	Logger    *logger.Logger
}

// Result of a single-text translation.
type Result struct {
	Text    string
	Warning string
}

// Outcome of a run: exactly one of Single and Batch is set, depending on
// how many files were given.
type Outcome struct {
	Single *Result
	Batch  *batch.Batch
}

// ErrNoInput is returned when a run is started without any file.
var ErrNoInput = errors.New("no input files")

// Run translates the given files. A single path never becomes a batch; it
// is redirected to single-file mode, where nothing is persisted. Two or
// more paths run through the sequencer, which saves each result beside its
// source file.
func Run(ctx context.Context, opts Options, paths []string) (*Outcome, error) {
	log := opts.Logger
	if log == nil {
		log = logger.New(100)
	}

	switch len(paths) {
	case 0:
		return nil, ErrNoInput
	case 1:
		text, err := lyrics.ReadFile(paths[0])
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(text) == "" {
			return nil, fmt.Errorf("%s is empty, nothing to translate", filepath.Base(paths[0]))
		}
		result, err := TranslateText(ctx, opts, text)
		if err != nil {
			return nil, err
		}
		return &Outcome{Single: &result}, nil
	default:
		b := batch.NewBatch(paths)
		log.Infof("starting batch translation: %d files into %s", len(b.Items), opts.Language)
		seq := batch.NewSequencer(batch.Config{
			Engine:    opts.Engine,
			Language:  opts.Language,
			Callbacks: opts.Callbacks,
			Bus:       opts.Bus,
			Logger:    log,
		})
		seq.Run(ctx, b)
		return &Outcome{Batch: b}, nil
	}
}

// TranslateText runs single-file mode: one request, one result, no disk
// writes. Saving is the caller's explicit decision.
func TranslateText(ctx context.Context, opts Options, text string) (Result, error) {
	translated, err := opts.Engine.Translate(ctx, text, opts.Language)
	if err != nil {
		return Result{}, err
	}
	return Result{Text: translated}, nil
}

// BuildEngine constructs the engine selected by id using the stored
// configuration, wrapping it with the translation memory when that is
// enabled. The returned closer releases the memory store and is safe to
// call always.
func BuildEngine(cfg *config.AppConfig, id string, log *logger.Logger) (engine.Engine, func() error, error) {
	noop := func() error { return nil }

	eng, err := engine.New(id, engine.Options{
		BaseURL: cfg.LLM.BaseURL,
		APIKey:  cfg.LLM.APIKey,
		Model:   cfg.LLM.Model,
	}, log)
	if err != nil {
		return nil, noop, err
	}

	if !cfg.Memory.Enabled {
		return eng, noop, nil
	}

	dbPath := cfg.Memory.Path
	if dbPath == "" {
		configPath, err := config.Path()
		if err != nil {
			return nil, noop, err
		}
		dbPath = filepath.Join(filepath.Dir(configPath), "memory.db")
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, noop, err
	}
	log.Debugf("translation memory enabled at %s", dbPath)
	return store.WithMemory(eng, st, log), st.Close, nil
}
