package genai

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const systemPrompt = "You are a professional content writer specializing in " +
	"creating high-quality, engaging content for businesses. Always provide " +
	"well-structured, original content that meets the specified requirements."

// Output length bounds, in tokens. When a word count is given the cap scales
// with it (roughly two tokens per word) up to the hard ceiling.
const (
	defaultMaxTokens = 2000
	hardMaxTokens    = 4000
)

// MaxOutputTokens returns the token cap for a requested word count.
func MaxOutputTokens(wordCount int) int {
	if wordCount <= 0 {
		return defaultMaxTokens
	}
	if t := wordCount * 2; t < hardMaxTokens {
		return t
	}
	return hardMaxTokens
}

var typeCaser = cases.Title(language.English)

// HumanContentType renders a machine content type ("blog_post") as prose
// ("Blog Post") for placeholder drafts and instruction text.
func HumanContentType(ct string) string {
	return typeCaser.String(strings.ReplaceAll(strings.TrimSpace(ct), "_", " "))
}

// BuildPrompt assembles the user instruction from the supplied spec fields.
// A free-text message takes the brief's place when present; discrete
// attributes are listed line by line, and absent ones are left out entirely.
func BuildPrompt(spec Spec) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a %s with the following specifications:\n\n", strings.TrimSpace(spec.ContentType))

	if spec.Message != "" {
		b.WriteString(spec.Message)
		b.WriteString("\n")
	} else {
		writeField(&b, "Title", spec.Title)
		writeField(&b, "Description", spec.Description)
		writeField(&b, "Keywords to include", spec.Keywords)
		writeField(&b, "Tone", spec.Tone)
		writeField(&b, "Target Audience", spec.TargetAudience)
		if spec.WordCount > 0 {
			fmt.Fprintf(&b, "Approximate word count: %d\n", spec.WordCount)
		}
	}

	b.WriteString("\nPlease create high-quality, engaging content that meets these requirements.")
	return b.String()
}

// FallbackText is the degraded draft returned when the provider is
// unreachable and fallback mode is enabled: it embeds the content type and
// the raw requirements so a human writer can pick the request up unchanged.
func FallbackText(spec Spec) string {
	req := spec.Message
	if req == "" {
		parts := make([]string, 0, 2)
		if spec.Title != "" {
			parts = append(parts, spec.Title)
		}
		if spec.Description != "" {
			parts = append(parts, spec.Description)
		}
		req = strings.Join(parts, " - ")
	}
	return fmt.Sprintf("AI content generation temporarily unavailable. Content type: %s. Requirements: %s",
		HumanContentType(spec.ContentType), req)
}

func writeField(b *strings.Builder, label, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	fmt.Fprintf(b, "%s: %s\n", label, value)
}
