package engine

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"lyrictranslator/pkg/logger"
)

// DefaultGLMBaseURL is the OpenAI-compatible endpoint of the GLM API.
const DefaultGLMBaseURL = "https://open.bigmodel.cn/api/paas/v4"

// DefaultGLMModel is the chat model used when none is configured.
const DefaultGLMModel = "glm-4-flash"

// GLM translates lyrics through the GLM chat-completion API.
type GLM struct {
	model  string
	client *openai.Client
	log    *logger.Logger
}

// NewGLM creates a GLM engine. Empty BaseURL and Model fall back to the
// defaults; APIKey is passed through to the transport as-is.
func NewGLM(opts Options, log *logger.Logger) *GLM {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultGLMBaseURL
	}
	model := opts.Model
	if model == "" {
		model = DefaultGLMModel
	}

	// No automatic retry anywhere in the pipeline; a failed call surfaces
	// to the caller immediately.
	client := openai.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(opts.APIKey),
		option.WithRequestTimeout(60*time.Second),
		option.WithMaxRetries(0),
	)

	return &GLM{
		model:  model,
		client: &client,
		log:    log,
	}
}

func (g *GLM) Name() string {
	return GLMEngineID
}

// Translate sends the full text embedded in the translation prompt and
// returns the first choice's content verbatim. The output is not validated
// to actually be in the target language.
func (g *GLM) Translate(ctx context.Context, text, targetLang string) (string, error) {
	g.log.Tracef("sending %d chars to %s for %s", len(text), g.model, targetLang)

	chatCompletion, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(buildPrompt(text, targetLang)),
		},
		Model: g.model,
	})
	if err != nil {
		g.log.Errorf("chat completion failed: %v", err)
		return "", classify(err)
	}

	if len(chatCompletion.Choices) == 0 {
		return "", fmt.Errorf("API Error: no choices in response")
	}

	result := chatCompletion.Choices[0].Message.Content
	g.log.Tracef("received %d chars", len(result))
	return result, nil
}

// buildPrompt embeds the lyrics in the fixed translation instruction. The
// wording insists on a single-language result and preserved line structure.
func buildPrompt(text, targetLang string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**Translate the following lyrics EXCLUSIVELY into %s.**  ", targetLang)
	fmt.Fprintf(&sb, "It is crucial that the translated lyrics are **entirely in %s**, with **no mixing of languages.** ", targetLang)
	fmt.Fprintf(&sb, "Maintain the original poetic and emotional tone, ensuring grammatical correctness and natural flow, **all within the %s language only.** ", targetLang)
	sb.WriteString("Preserve the original formatting, including line breaks and any verse/chorus structure.\n\n")
	fmt.Fprintf(&sb, "**Do NOT include any words, phrases, or sentences from the original language or any other language besides %s in the translation.**\n\n", targetLang)
	fmt.Fprintf(&sb, "Lyrics to translate:\n%s", text)
	return sb.String()
}

// classify maps transport failures onto the user-facing error categories.
// Status codes are checked first; the substring matches keep working for
// error shapes that never reach an HTTP response.
func classify(err error) error {
	var apierr *openai.Error
	if errors.As(err, &apierr) {
		switch apierr.StatusCode {
		case http.StatusUnauthorized:
			return ErrInvalidAPIKey
		case http.StatusTooManyRequests:
			return ErrRateLimited
		}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "invalid authentication credentials"):
		return ErrInvalidAPIKey
	case strings.Contains(msg, "rate limit exceeded"):
		return ErrRateLimited
	}

	return fmt.Errorf("API Error: %v", err)
}
