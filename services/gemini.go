package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"travelbuddy/config"

	"google.golang.org/genai"
)

// TextGenerator 文本生成接口，便于测试替换
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Embedder 文本向量化接口
type Embedder interface {
	EmbedText(ctx context.Context, text string) ([]float32, error)
}

var (
	generator TextGenerator
	embedder  Embedder
)

// GeminiClient wraps the google genai SDK with model fallback.
type GeminiClient struct {
	client         *genai.Client
	chatModel      string
	fallbackModels []string
	embeddingModel string
}

// InitGemini 初始化 Gemini 客户端。没有 API key 时服务降级运行
func InitGemini() error {
	key := config.AppConfig.Gemini.APIKey
	if key == "" {
		log.Println("GEMINI_API_KEY not set, running in degraded mode")
		return nil
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return fmt.Errorf("failed to create gemini client: %w", err)
	}

	gc := &GeminiClient{
		client:         client,
		chatModel:      config.AppConfig.Gemini.ChatModel,
		fallbackModels: config.AppConfig.Gemini.FallbackModels,
		embeddingModel: config.AppConfig.Gemini.EmbeddingModel,
	}
	generator = gc
	embedder = gc
	log.Println("Gemini configured with model:", gc.chatModel)
	return nil
}

// GeminiReady reports whether a generator is available.
func GeminiReady() bool {
	return generator != nil
}

// GenerateText tries the configured chat model first, then the fallbacks.
func (g *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	models := append([]string{g.chatModel}, g.fallbackModels...)

	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.2),
	}

	var lastErr error
	for _, model := range models {
		resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), cfg)
		if err != nil {
			lastErr = err
			continue
		}
		text := extractText(resp)
		if text == "" {
			lastErr = errors.New("empty response from model " + model)
			continue
		}
		return text, nil
	}
	return "", fmt.Errorf("gemini api error: %w", lastErr)
}

func (g *GeminiClient) EmbedText(ctx context.Context, text string) ([]float32, error) {
	resp, err := g.client.Models.EmbedContent(ctx, g.embeddingModel, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("embed content: %w", err)
	}
	if len(resp.Embeddings) == 0 || len(resp.Embeddings[0].Values) == 0 {
		return nil, errors.New("empty embedding response")
	}
	return resp.Embeddings[0].Values, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	for _, candidate := range resp.Candidates {
		if candidate.Content != nil && len(candidate.Content.Parts) > 0 {
			return candidate.Content.Parts[0].Text
		}
	}
	return ""
}

// localEmbedder 无 API key 时的兜底向量（字符统计），保证检索链路可用
type localEmbedder struct{}

func (localEmbedder) EmbedText(_ context.Context, text string) ([]float32, error) {
	var length, vowels, consonants, spaces, digits float32
	for _, r := range text {
		length++
		switch {
		case r == 'a' || r == 'e' || r == 'i' || r == 'o' || r == 'u' ||
			r == 'A' || r == 'E' || r == 'I' || r == 'O' || r == 'U':
			vowels++
		case r == ' ' || r == '\n' || r == '\t':
			spaces++
		case r >= '0' && r <= '9':
			digits++
		default:
			consonants++
		}
	}
	return []float32{length, vowels, consonants, spaces, digits}, nil
}

// ActiveEmbedder returns the Gemini embedder when configured, a local
// deterministic one otherwise.
func ActiveEmbedder() Embedder {
	if embedder != nil {
		return embedder
	}
	return localEmbedder{}
}
