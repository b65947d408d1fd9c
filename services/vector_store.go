package services

import (
	"encoding/json"
	"log"
	"math"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// Chunk 文档切片及其向量
type Chunk struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	DocType   string    `json:"doc_type"`
	Content   string    `json:"content"`
	Embedding []float32 `json:"embedding"`
}

// SearchResult is a chunk with its similarity score.
type SearchResult struct {
	Chunk Chunk   `json:"chunk"`
	Score float32 `json:"score"`
}

// VectorStore 暴力线性扫描的内存向量索引，整体 JSON 落盘
type VectorStore struct {
	mu     sync.RWMutex
	path   string
	chunks []Chunk
}

var Store *VectorStore

// InitVectorStore 加载磁盘索引，文件缺失或损坏时从空索引开始
func InitVectorStore(path string) {
	Store = NewVectorStore(path)
	if err := Store.Load(); err != nil {
		log.Printf("vector index not loaded (%v), starting empty", err)
	}
}

func NewVectorStore(path string) *VectorStore {
	return &VectorStore{path: path}
}

func (s *VectorStore) Add(chunks ...Chunk) error {
	s.mu.Lock()
	s.chunks = append(s.chunks, chunks...)
	s.mu.Unlock()
	return s.Save()
}

func cosine(a, b []float32) float32 {
	if len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(na) * math.Sqrt(nb)))
}

// Search 线性扫描余弦相似度，docType 非空时按类型过滤
func (s *VectorStore) Search(queryEmbedding []float32, topK int, docType string) []SearchResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if topK <= 0 {
		topK = 3
	}

	results := make([]SearchResult, 0, len(s.chunks))
	for _, ch := range s.chunks {
		if docType != "" && ch.DocType != docType {
			continue
		}
		results = append(results, SearchResult{
			Chunk: ch,
			Score: cosine(queryEmbedding, ch.Embedding),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if topK > len(results) {
		topK = len(results)
	}
	return results[:topK]
}

func (s *VectorStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.chunks)
}

// CountBySource 按来源统计切片数
func (s *VectorStore) CountBySource() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[string]int)
	for _, ch := range s.chunks {
		counts[ch.Source]++
	}
	return counts
}

// HasSource reports whether any chunk came from the given source.
func (s *VectorStore) HasSource(source string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ch := range s.chunks {
		if ch.Source == source {
			return true
		}
	}
	return false
}

// RemoveSource drops all chunks of one source, e.g. before re-ingesting a
// modified file.
func (s *VectorStore) RemoveSource(source string) error {
	s.mu.Lock()
	kept := s.chunks[:0]
	for _, ch := range s.chunks {
		if ch.Source != source {
			kept = append(kept, ch)
		}
	}
	s.chunks = kept
	s.mu.Unlock()
	return s.Save()
}

func (s *VectorStore) Clear() error {
	s.mu.Lock()
	s.chunks = nil
	s.mu.Unlock()
	return s.Save()
}

// Save 整体序列化写盘
func (s *VectorStore) Save() error {
	s.mu.RLock()
	data, err := json.Marshal(s.chunks)
	s.mu.RUnlock()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// Load 整体读入，替换现有内容
func (s *VectorStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}
	var chunks []Chunk
	if err := json.Unmarshal(data, &chunks); err != nil {
		return err
	}
	s.mu.Lock()
	s.chunks = chunks
	s.mu.Unlock()
	return nil
}
