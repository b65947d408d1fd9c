package services

import (
	"context"
	"testing"
)

func TestParseTranslation_JSON(t *testing.T) {
	raw := `{"translation":"ありがとう","pronunciation":"arigatou","cultural_note":"casual thanks","formality":"casual"}`
	got := parseTranslation(raw)
	if got.Translation != "ありがとう" || got.Formality != "casual" {
		t.Fatalf("unexpected translation: %+v", got)
	}
}

func TestParseTranslation_FallbackToRawText(t *testing.T) {
	raw := "The translation is simply: merci"
	got := parseTranslation(raw)
	if got.Translation != raw {
		t.Fatalf("expected raw text fallback, got %+v", got)
	}
	if got.Formality != "neutral" {
		t.Fatalf("expected neutral formality, got %q", got.Formality)
	}
}

func TestTranslateText_NotConfigured(t *testing.T) {
	withGenerator(t, nil)

	got, err := TranslateText(context.Background(), "hello", "French", "")
	if err != nil {
		t.Fatal(err)
	}
	if got.Translation != "Gemini API not configured" {
		t.Fatalf("unexpected degraded response: %+v", got)
	}
}

func TestTranslateText_UsesPrompt(t *testing.T) {
	gen := &fakeGenerator{reply: `{"translation":"bonjour","formality":"casual"}`}
	withGenerator(t, gen)

	got, err := TranslateText(context.Background(), "hello", "French", "greeting a friend")
	if err != nil {
		t.Fatal(err)
	}
	if got.Translation != "bonjour" {
		t.Fatalf("unexpected translation: %+v", got)
	}
	if gen.lastPrompt == "" {
		t.Fatal("expected generator to receive a prompt")
	}
}
