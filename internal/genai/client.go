// Package genai wraps the text-generation provider behind a small Generator
// interface. It knows nothing about content requests or clients; callers hand
// it a Spec and receive generated text or an error.
//
// Failure policy is decided by the caller: the creation path treats any error
// as "skip generation", while the standalone preview path surfaces it.
package genai

import (
	"context"
	"errors"
	"fmt"
	"time"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// ErrUnavailable wraps any transport, provider, or quota failure from the
// generation backend. Callers match it with errors.Is.
var ErrUnavailable = errors.New("content generation unavailable")

// Generator produces draft text for a content specification.
//
// Implementations must be safe for concurrent use and honor the provided
// context for cancellation and timeouts.
type Generator interface {
	Generate(ctx context.Context, spec Spec) (string, error)
}

// Spec carries the content parameters used to build the provider instruction.
// Zero-valued fields are omitted from the instruction, not defaulted silently.
type Spec struct {
	ContentType    string
	Title          string
	Description    string
	Message        string
	Keywords       string
	Tone           string
	TargetAudience string
	WordCount      int
}

// Config holds provider settings injected at construction time. The API key
// is an explicit value here, never read from the environment at call time; an
// empty key makes Generate fail (or fall back), not the process start.
type Config struct {
	APIKey      string
	Model       string        // e.g. "gpt-4"
	BaseURL     string        // optional override for self-hosted gateways
	Temperature float64       // sampling temperature, 0.7 recommended
	Timeout     time.Duration // hard ceiling on the provider call
	Fallback    bool          // degrade to placeholder text instead of erroring
}

// Client implements Generator using the official openai-go SDK
// (chat completions).
type Client struct {
	cfg  Config
	opts []option.RequestOption
}

// NewClient constructs a Client from cfg, applying a default model,
// temperature, and timeout where unset.
func NewClient(cfg Config) *Client {
	if cfg.Model == "" {
		cfg.Model = "gpt-4"
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = 0.7
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &Client{cfg: cfg, opts: opts}
}

// Generate builds the instruction from spec and calls the provider. On any
// failure it returns ErrUnavailable (wrapped), or a placeholder draft
// embedding the raw requirements when the degraded fallback is enabled.
func (c *Client) Generate(ctx context.Context, spec Spec) (string, error) {
	text, err := c.complete(ctx, spec)
	if err == nil {
		return text, nil
	}
	if c.cfg.Fallback {
		return FallbackText(spec), nil
	}
	return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
}

func (c *Client) complete(ctx context.Context, spec Spec) (string, error) {
	if c.cfg.APIKey == "" {
		return "", errors.New("api key not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	client := openai.NewClient(c.opts...)
	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.cfg.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(BuildPrompt(spec)),
		},
		MaxTokens:   openai.Int(int64(MaxOutputTokens(spec.WordCount))),
		Temperature: openai.Float(c.cfg.Temperature),
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}
