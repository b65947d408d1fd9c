package services

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestAnswerChat_NotConfigured(t *testing.T) {
	resetMemProfiles(t)
	withStore(t)
	withGenerator(t, nil)

	answer, sources, err := AnswerChat(context.Background(), "u1", "hello", nil, 3)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(answer, "not configured") {
		t.Fatalf("expected degraded-mode message, got %q", answer)
	}
	if sources != nil {
		t.Fatal("expected no sources in degraded mode")
	}
}

func TestAnswerChat_IncludesProfileAndSnippets(t *testing.T) {
	resetMemProfiles(t)
	store := withStore(t)
	gen := &fakeGenerator{reply: "Go to Kyoto!"}
	withGenerator(t, gen)

	AddVisitedCountry("u2", "Italy", "")

	// 本地兜底向量（embedder 为 nil），入一条可检索的内容
	vec, err := ActiveEmbedder().EmbedText(context.Background(), "Kyoto temples are stunning in autumn.")
	if err != nil {
		t.Fatal(err)
	}
	store.Add(Chunk{ID: "c1", Source: "japan.txt", DocType: "guide", Content: "Kyoto temples are stunning in autumn.", Embedding: vec})

	answer, sources, err := AnswerChat(context.Background(), "u2", "Tell me about Kyoto temples in autumn.", map[string]interface{}{"season": "fall"}, 3)
	if err != nil {
		t.Fatal(err)
	}
	if answer != "Go to Kyoto!" {
		t.Fatalf("unexpected answer %q", answer)
	}
	if len(sources) != 1 || sources[0].Source != "japan.txt" {
		t.Fatalf("unexpected sources: %+v", sources)
	}

	for _, want := range []string{"Italy", "Kyoto temples are stunning", `"season":"fall"`} {
		if !strings.Contains(gen.lastPrompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, gen.lastPrompt)
		}
	}
}

func TestAnswerChat_EmbedFailureSkipsRetrieval(t *testing.T) {
	resetMemProfiles(t)
	store := withStore(t)
	withGenerator(t, &fakeGenerator{reply: "ok"})
	withEmbedder(t, failingEmbedder{})

	store.Add(Chunk{ID: "c1", Source: "x.txt", Content: "anything", Embedding: []float32{1}})

	answer, sources, err := AnswerChat(context.Background(), "u3", "hi", nil, 3)
	if err != nil {
		t.Fatal(err)
	}
	if answer != "ok" {
		t.Fatalf("unexpected answer %q", answer)
	}
	if sources != nil {
		t.Fatal("embed failure should skip retrieval, not fail the chat")
	}
}

func TestPreview(t *testing.T) {
	if got := preview("short", 10); got != "short" {
		t.Fatalf("unexpected preview %q", got)
	}
	if got := preview("0123456789abc", 10); got != "0123456789..." {
		t.Fatalf("unexpected truncated preview %q", got)
	}

	// 截断点落在多字节字符上也不能产生非法 UTF-8
	got := preview(strings.Repeat("京", 10), 4)
	if got != "京京京京..." {
		t.Fatalf("unexpected multibyte preview %q", got)
	}
	if !utf8.ValidString(got) {
		t.Fatalf("preview produced invalid UTF-8: %q", got)
	}
}
