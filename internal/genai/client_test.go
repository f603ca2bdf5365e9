package genai

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient(Config{})
	if c.cfg.Model != "gpt-4" {
		t.Fatalf("default model = %q", c.cfg.Model)
	}
	if c.cfg.Temperature != 0.7 {
		t.Fatalf("default temperature = %v", c.cfg.Temperature)
	}
	if c.cfg.Timeout != 45*time.Second {
		t.Fatalf("default timeout = %v", c.cfg.Timeout)
	}
}

func TestGenerate_NoKeyReturnsUnavailable(t *testing.T) {
	c := NewClient(Config{})
	_, err := c.Generate(context.Background(), Spec{ContentType: "blog_post", Title: "x"})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestGenerate_NoKeyWithFallbackReturnsPlaceholder(t *testing.T) {
	c := NewClient(Config{Fallback: true})
	text, err := c.Generate(context.Background(), Spec{ContentType: "blog_post", Message: "brief"})
	if err != nil {
		t.Fatalf("fallback path must not error: %v", err)
	}
	if !strings.Contains(text, "AI content generation temporarily unavailable") {
		t.Fatalf("expected placeholder draft, got %q", text)
	}
}
