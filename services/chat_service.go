package services

import (
	"context"
	"encoding/json"
)

const notConfiguredMsg = "Gemini API is not configured. Please set GEMINI_API_KEY environment variable."

// ChatSource 返回给前端的引用片段
type ChatSource struct {
	Source  string  `json:"source"`
	DocType string  `json:"doc_type"`
	Preview string  `json:"preview"`
	Score   float32 `json:"score"`
}

// preview 按 rune 截断，不会把多字节字符切成半个
func preview(text string, max int) string {
	r := []rune(text)
	if len(r) <= max {
		return text
	}
	return string(r[:max]) + "..."
}

// retrieveSnippets 向量检索 topK 个相关片段，索引为空时返回 nil
func retrieveSnippets(ctx context.Context, query string, topK int, docType string) ([]string, []ChatSource) {
	if Store == nil || Store.Count() == 0 {
		return nil, nil
	}

	vec, err := ActiveEmbedder().EmbedText(ctx, query)
	if err != nil {
		return nil, nil
	}

	results := Store.Search(vec, topK, docType)
	var snippets []string
	var sources []ChatSource
	for _, r := range results {
		snippets = append(snippets, r.Chunk.Content)
		sources = append(sources, ChatSource{
			Source:  r.Chunk.Source,
			DocType: r.Chunk.DocType,
			Preview: preview(r.Chunk.Content, 200),
			Score:   r.Score,
		})
	}
	return snippets, sources
}

// AnswerChat 通用聊天：档案 + 检索片段拼进提示词后调用 Gemini
func AnswerChat(ctx context.Context, userID, message string, extra map[string]interface{}, topK int) (string, []ChatSource, error) {
	if !GeminiReady() {
		return notConfiguredMsg, nil, nil
	}

	profile, err := GetOrCreateProfile(userID)
	if err != nil {
		return "", nil, err
	}

	contextJSON := ""
	if len(extra) > 0 {
		if data, err := json.Marshal(extra); err == nil {
			contextJSON = string(data)
		}
	}

	snippets, sources := retrieveSnippets(ctx, message, topK, "")

	prompt := BuildChatPrompt(message, profile.VisitedCountries, contextJSON, snippets)
	answer, err := generator.GenerateText(ctx, prompt)
	if err != nil {
		return "", nil, err
	}
	return answer, sources, nil
}
