package engine

import (
	"context"
	"fmt"
	"strings"
)

// Local is a deterministic offline engine. It does not translate; it tags
// every line with the target language and a 1-based line number, preserving
// line structure. Useful for exercising the pipeline without a credential.
type Local struct{}

// NewLocal creates the local stub engine.
func NewLocal() Local {
	return Local{}
}

func (Local) Name() string {
	return LocalEngineID
}

// Translate prefixes line i with "[<LANG_UPPER> <i+1>] ". Running the output
// through again stacks a second prefix; the transformation is not idempotent.
func (Local) Translate(_ context.Context, text, targetLang string) (string, error) {
	tag := strings.ToUpper(targetLang)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = fmt.Sprintf("[%s %d] %s", tag, i+1, line)
	}
	return strings.Join(lines, "\n"), nil
}
