package batch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"golang.org/x/sync/semaphore"

	"lyrictranslator/pkg/engine"
	"lyrictranslator/pkg/logger"
	"lyrictranslator/pkg/lyrics"
)

// Status is the per-file translation state.
type Status string

const (
	StatusPending     Status = "Pending"
	StatusTranslating Status = "Translating"
	StatusTranslated  Status = "Translated"
	StatusError       Status = "Error"
)

// Item tracks one file of a batch. Status moves to Translating once and then
// to exactly one terminal value.
type Item struct {
	Path        string
	DisplayName string
	Status      Status
	Err         string
	SavedPath   string
}

// Batch is the explicit run state: the ordered items and the cursor.
// 0 <= Cursor <= len(Items); the cursor only increases and the batch is
// complete when they are equal. Only the sequencer's step mutates it.
type Batch struct {
	Items  []Item
	Cursor int
}

// NewBatch builds pending items for an ordered list of file paths.
func NewBatch(paths []string) *Batch {
	items := make([]Item, len(paths))
	for i, path := range paths {
		items[i] = Item{
			Path:        path,
			DisplayName: filepath.Base(path),
			Status:      StatusPending,
		}
	}
	return &Batch{Items: items}
}

// Done reports whether every item has been processed.
func (b *Batch) Done() bool {
	return b.Cursor == len(b.Items)
}

// Callbacks notify the presentation shell of per-item outcomes. Any field
// may be nil.
type Callbacks struct {
	// OnStatus fires on every item status change.
	OnStatus func(index int, item Item)
	// OnTranslated fires after an item reached Translated and its derived
	// save completed (or was reported failed via OnSaveError).
	OnTranslated func(index int, item Item, text string)
	// OnError fires when an item ends in Error (read or engine failure).
	OnError func(index int, item Item, err error)
	// OnSaveError fires when writing the derived output file fails. The
	// item keeps its Translated status.
	OnSaveError func(index int, item Item, err error)
	// OnFinished fires once, when the cursor reaches the end.
	OnFinished func(b *Batch)
}

// Config assembles a Sequencer.
type Config struct {
	Engine    engine.Engine
	Language  string
	Callbacks Callbacks
	Bus       *Bus
	Logger    *logger.Logger
	// Now supplies timestamps for derived save names. Defaults to time.Now.
	Now func() time.Time
}

// Sequencer processes a batch one file at a time: read, translate, save,
// advance. A failed item is recorded and the run continues with the next
// one; nothing aborts the batch.
type Sequencer struct {
	engine engine.Engine
	lang   string
	cb     Callbacks
	bus    *Bus
	log    *logger.Logger
	now    func() time.Time
	// inFlight bounds concurrent engine calls to one; the next call is
	// never issued before the previous one resolved.
	inFlight *semaphore.Weighted
}

// NewSequencer creates a sequencer for the given engine and target language.
func NewSequencer(cfg Config) *Sequencer {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	log := cfg.Logger
	if log == nil {
		log = logger.New(100)
	}
	return &Sequencer{
		engine:   cfg.Engine,
		lang:     cfg.Language,
		cb:       cfg.Callbacks,
		bus:      cfg.Bus,
		log:      log,
		now:      now,
		inFlight: semaphore.NewWeighted(1),
	}
}

// Run processes the batch to completion. Items are handled strictly in
// input order; item i is fully resolved, including its derived save, before
// item i+1 starts. An empty batch finishes immediately without emitting any
// status transition.
func (s *Sequencer) Run(ctx context.Context, b *Batch) {
	for !b.Done() {
		s.step(ctx, b)
	}

	s.log.Infof("batch finished: %d files", len(b.Items))
	if s.bus != nil {
		s.bus.Publish(Event{Final: true, Message: "batch translation completed"})
	}
	if s.cb.OnFinished != nil {
		s.cb.OnFinished(b)
	}
}

// step resolves the item under the cursor and advances it.
func (s *Sequencer) step(ctx context.Context, b *Batch) {
	i := b.Cursor
	item := &b.Items[i]

	text, err := lyrics.ReadFile(item.Path)
	if err != nil {
		s.fail(b, i, fmt.Errorf("failed to open %s: %w", item.DisplayName, err))
		return
	}

	s.transition(i, item, StatusTranslating)

	out := s.translate(ctx, text)
	if out.err != nil {
		s.fail(b, i, fmt.Errorf("%s: %w", item.DisplayName, out.err))
		return
	}

	s.transition(i, item, StatusTranslated)

	savePath := lyrics.OutputPath(item.Path, s.lang, s.now())
	if werr := lyrics.WriteFile(savePath, out.text); werr != nil {
		// The item stays Translated even though the save failed; the
		// failure is only reported, and SavedPath stays empty.
		s.log.Errorf("save failed for %s: %v", item.DisplayName, werr)
		if s.cb.OnSaveError != nil {
			s.cb.OnSaveError(i, *item, werr)
		}
	} else {
		item.SavedPath = savePath
	}

	if s.cb.OnTranslated != nil {
		s.cb.OnTranslated(i, *item, out.text)
	}
	b.Cursor++
}

// outcome carries the result of one engine call back to the step loop.
type outcome struct {
	text string
	err  error
}

// translate issues the single in-flight engine call and waits for it.
func (s *Sequencer) translate(ctx context.Context, text string) outcome {
	if err := s.inFlight.Acquire(ctx, 1); err != nil {
		return outcome{err: err}
	}

	resultCh := make(chan outcome, 1)
	go func() {
		defer s.inFlight.Release(1)
		translated, err := s.engine.Translate(ctx, text, s.lang)
		resultCh <- outcome{text: translated, err: err}
	}()
	return <-resultCh
}

// fail records a terminal Error for the item and advances the cursor.
func (s *Sequencer) fail(b *Batch, i int, err error) {
	item := &b.Items[i]
	item.Status = StatusError
	item.Err = err.Error()

	s.log.Errorf("item %d failed: %v", i, err)
	s.transition(i, item, StatusError)
	if s.cb.OnError != nil {
		s.cb.OnError(i, *item, err)
	}
	b.Cursor++
}

func (s *Sequencer) transition(i int, item *Item, status Status) {
	item.Status = status
	if s.bus != nil {
		s.bus.Publish(Event{
			Index:   i,
			File:    item.DisplayName,
			Status:  status,
			Message: item.Err,
		})
	}
	if s.cb.OnStatus != nil {
		s.cb.OnStatus(i, *item)
	}
}
