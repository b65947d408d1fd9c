package services

import (
	"strings"
	"testing"
)

func TestParseJSONArray(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"clean array", `[{"a":1},{"b":2}]`, 2},
		{"markdown wrapped", "```json\n[{\"country\":\"Japan\"}]\n```", 1},
		{"prose around", "Here you go: [{\"x\":true}] hope it helps!", 1},
		{"no array", "sorry, I cannot answer that", 0},
		{"broken json", "[{oops]", 0},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseJSONArray(tt.text)
			if len(got) != tt.want {
				t.Fatalf("got %d items, want %d", len(got), tt.want)
			}
		})
	}
}

func TestParseJSONObject(t *testing.T) {
	got := ParseJSONObject("noise {\"translation\":\"hola\",\"formality\":\"casual\"} trailing")
	if got["translation"] != "hola" {
		t.Fatalf("unexpected object: %v", got)
	}

	if got := ParseJSONObject("no braces here"); len(got) != 0 {
		t.Fatalf("expected empty object, got %v", got)
	}
}

func TestBuildChatPrompt(t *testing.T) {
	prompt := BuildChatPrompt("Where should I go next?", []string{"Japan", "Italy"}, `{"season":"summer"}`, []string{"Kyoto is lovely in autumn."})

	for _, want := range []string{"Japan, Italy", "Where should I go next?", "Kyoto is lovely", `{"season":"summer"}`} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildChatPrompt_Defaults(t *testing.T) {
	prompt := BuildChatPrompt("hi", nil, "", nil)
	if !strings.Contains(prompt, "None yet") {
		t.Fatal("expected 'None yet' for empty visited list")
	}
	if !strings.Contains(prompt, "Context: None") {
		t.Fatal("expected 'Context: None' when no context given")
	}
	if strings.Contains(prompt, "excerpts") {
		t.Fatal("snippet section should be absent without snippets")
	}
}

func TestBuildCountryRecommendationPrompt(t *testing.T) {
	withHistory := BuildCountryRecommendationPrompt([]string{"Japan"}, "moderate", "")
	if !strings.Contains(withHistory, "previously visited: Japan") {
		t.Fatal("expected visited countries in prompt")
	}
	if !strings.Contains(withHistory, "diverse experiences") {
		t.Fatal("expected default travel style")
	}

	firstTrip := BuildCountryRecommendationPrompt(nil, "budget", "adventure")
	if !strings.Contains(firstTrip, "first major trip") {
		t.Fatal("expected first-trip guidance for empty history")
	}
}

func TestBuildTranslationPrompt(t *testing.T) {
	p := BuildTranslationPrompt("thank you", "Japanese", "at a restaurant")
	for _, want := range []string{"Translate to Japanese", `"thank you"`, "Context: at a restaurant"} {
		if !strings.Contains(p, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}

	noCtx := BuildTranslationPrompt("hi", "French", "")
	if strings.Contains(noCtx, "Context:") {
		t.Fatal("context line should be omitted when empty")
	}
}
