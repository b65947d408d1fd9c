package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
)

func TestIngestDocument_ChunksAndIndexes(t *testing.T) {
	store := withStore(t)

	content := "Tokyo is huge. Kyoto is calm. Osaka loves food. Nara has deer. Hakone has onsen. Sapporo has snow."
	n, err := IngestDocument(context.Background(), IngestJob{Source: "japan.txt", Content: content})
	if err != nil {
		t.Fatal(err)
	}
	if n == 0 {
		t.Fatal("expected chunks to be added")
	}
	if store.Count() != n {
		t.Fatalf("store count %d != reported %d", store.Count(), n)
	}
	if !store.HasSource("japan.txt") {
		t.Fatal("source missing from store")
	}
}

func TestIngestDocument_EmptyContent(t *testing.T) {
	withStore(t)

	n, err := IngestDocument(context.Background(), IngestJob{Source: "empty.txt", Content: "   "})
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("expected 0 chunks for empty content, got %d", n)
	}
}

func TestIngestDocument_ReingestReplacesSource(t *testing.T) {
	store := withStore(t)

	first, err := IngestDocument(context.Background(), IngestJob{Source: "guide.txt", Content: "Old version. Single sentence."})
	if err != nil {
		t.Fatal(err)
	}

	second, err := IngestDocument(context.Background(), IngestJob{Source: "guide.txt", Content: "New version. Also short."})
	if err != nil {
		t.Fatal(err)
	}

	if store.Count() != second {
		t.Fatalf("re-ingest must replace, store has %d chunks (first=%d second=%d)", store.Count(), first, second)
	}
}

func TestIngestDocument_DefaultDocType(t *testing.T) {
	store := withStore(t)

	if _, err := IngestDocument(context.Background(), IngestJob{Source: "misc.txt", Content: "One sentence."}); err != nil {
		t.Fatal(err)
	}
	res := store.Search([]float32{1, 1, 1, 1, 1}, 1, "general")
	if len(res) != 1 {
		t.Fatal("expected chunk tagged with default doc type 'general'")
	}
}

func TestIngestDocument_EmbedFailure(t *testing.T) {
	withStore(t)
	withEmbedder(t, failingEmbedder{})

	if _, err := IngestDocument(context.Background(), IngestJob{Source: "x.txt", Content: "Some text."}); err == nil {
		t.Fatal("expected embedding error to surface")
	}
}

func TestDocTypeFromName(t *testing.T) {
	tests := []struct{ name, want string }{
		{"japan-activities.txt", "activities"},
		{"europe-destinations.txt", "guide"},
		{"southeast-asia-guide.pdf", "guide"},
		{"common-phrases.md", "language"},
		{"notes.txt", "general"},
	}
	for _, tt := range tests {
		if got := docTypeFromName(tt.name); got != tt.want {
			t.Errorf("docTypeFromName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestLoadDataDir(t *testing.T) {
	store := withStore(t)

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "guide.txt"), []byte("Rome is ancient. Paris is romantic."), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "skip.json"), []byte(`{"not":"ingestable"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	LoadDataDir(context.Background(), dir)

	if !store.HasSource("guide.txt") {
		t.Fatal("guide.txt should be ingested")
	}
	if store.HasSource("skip.json") {
		t.Fatal("json files must be skipped")
	}

	// 再扫一遍不应重复入库
	before := store.Count()
	LoadDataDir(context.Background(), dir)
	if store.Count() != before {
		t.Fatal("second scan must not duplicate chunks")
	}
}

func TestIngestAttempt(t *testing.T) {
	tests := []struct {
		headers amqp.Table
		want    int64
	}{
		{nil, 1},
		{amqp.Table{}, 1},
		{amqp.Table{"x-attempt": int64(2)}, 2},
		{amqp.Table{"x-attempt": int32(3)}, 3},
		{amqp.Table{"x-attempt": "junk"}, 1},
	}
	for _, tt := range tests {
		if got := ingestAttempt(tt.headers); got != tt.want {
			t.Errorf("ingestAttempt(%v) = %d, want %d", tt.headers, got, tt.want)
		}
	}
	// 第 maxIngestAttempts 次失败后必须停手
	if int64(maxIngestAttempts) < 2 {
		t.Fatal("retry cap must allow at least one retry")
	}
}

func TestEnqueueIngest_NoBroker(t *testing.T) {
	queued, err := EnqueueIngest(IngestJob{Source: "a.txt", Content: "x"})
	if err != nil {
		t.Fatal(err)
	}
	if queued {
		t.Fatal("without a broker nothing should be queued")
	}
}
