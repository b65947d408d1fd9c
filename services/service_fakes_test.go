package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

type fakeGenerator struct {
	reply string
	err   error
	// 记录最后一次收到的提示词，便于断言
	lastPrompt string
}

func (f *fakeGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

var errFakeEmbed = errors.New("fake embed failure")

type failingEmbedder struct{}

func (failingEmbedder) EmbedText(context.Context, string) ([]float32, error) {
	return nil, errFakeEmbed
}

// withGenerator swaps the package generator for one test.
func withGenerator(t *testing.T, g TextGenerator) {
	t.Helper()
	old := generator
	generator = g
	t.Cleanup(func() { generator = old })
}

func withEmbedder(t *testing.T, e Embedder) {
	t.Helper()
	old := embedder
	embedder = e
	t.Cleanup(func() { embedder = old })
}

// withStore points the package store at a fresh temp-backed index.
func withStore(t *testing.T) *VectorStore {
	t.Helper()
	old := Store
	Store = NewVectorStore(filepath.Join(t.TempDir(), "index.json"))
	t.Cleanup(func() { Store = old })
	return Store
}

func resetMemProfiles(t *testing.T) {
	t.Helper()
	memProfilesMu.Lock()
	memProfiles = make(map[string]*Profile)
	memProfilesMu.Unlock()
	t.Cleanup(func() {
		memProfilesMu.Lock()
		memProfiles = make(map[string]*Profile)
		memProfilesMu.Unlock()
	})
}
