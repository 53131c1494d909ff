package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lyrictranslator/pkg/logger"
)

// Engine identifiers as shown to the user.
const (
	GLMEngineID   = "GLM-4-Flash"
	LocalEngineID = "Local Engine"
)

// Engine translates text into a target language.
type Engine interface {
	// Name returns the engine identifier.
	Name() string
	// Translate translates text into the target language given by its
	// display name (e.g. "Chinese").
	Translate(ctx context.Context, text, targetLang string) (string, error)
}

var (
	// ErrInvalidAPIKey indicates the remote endpoint rejected the credential.
	ErrInvalidAPIKey = errors.New("invalid API key, check the api_key setting")
	// ErrRateLimited indicates the remote endpoint throttled the request.
	ErrRateLimited = errors.New("API rate limit exceeded, wait and try again later")
	// ErrMissingAPIKey indicates the remote engine was selected without a credential.
	ErrMissingAPIKey = errors.New("an API key is required for GLM-4-Flash")
)

// Options carries credentials and endpoint settings for remote engines.
type Options struct {
	BaseURL string
	APIKey  string
	Model   string
}

// New maps an engine identifier to a concrete engine.
func New(id string, opts Options, log *logger.Logger) (Engine, error) {
	switch id {
	case LocalEngineID:
		return NewLocal(), nil
	case GLMEngineID:
		if opts.APIKey == "" {
			return nil, ErrMissingAPIKey
		}
		return NewGLM(opts, log), nil
	default:
		return nil, fmt.Errorf("unknown engine %q", id)
	}
}

// IDs returns the selectable engine identifiers.
func IDs() []string {
	return []string{GLMEngineID, LocalEngineID}
}

// Languages returns the supported target language display names.
func Languages() []string {
	return []string{
		"English", "Chinese", "Japanese",
		"Korean", "Spanish", "French",
		"German", "Italian", "Russian",
	}
}

// CanonicalLanguage resolves a case-insensitive language name to its
// display form. The second return value reports whether the name is
// supported.
func CanonicalLanguage(name string) (string, bool) {
	for _, lang := range Languages() {
		if strings.EqualFold(lang, name) {
			return lang, true
		}
	}
	return "", false
}
