package store

import (
	"context"

	"lyrictranslator/pkg/engine"
	"lyrictranslator/pkg/logger"
)

// CachingEngine wraps an engine with the translation memory. A hit skips
// the engine call entirely; a miss goes through and is stored best-effort.
type CachingEngine struct {
	inner engine.Engine
	store *Store
	log   *logger.Logger
}

// WithMemory wraps inner with the translation memory in st.
func WithMemory(inner engine.Engine, st *Store, log *logger.Logger) *CachingEngine {
	return &CachingEngine{inner: inner, store: st, log: log}
}

func (c *CachingEngine) Name() string {
	return c.inner.Name()
}

func (c *CachingEngine) Translate(ctx context.Context, text, targetLang string) (string, error) {
	if cached, found, err := c.store.Get(ctx, text, c.inner.Name(), targetLang); err == nil && found {
		c.log.Debugf("translation memory hit (%s, %d chars)", targetLang, len(text))
		return cached, nil
	}

	translated, err := c.inner.Translate(ctx, text, targetLang)
	if err != nil {
		return "", err
	}

	if err := c.store.Put(ctx, text, c.inner.Name(), targetLang, translated); err != nil {
		c.log.Warnf("failed to remember translation: %v", err)
	}
	return translated, nil
}
