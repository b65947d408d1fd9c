package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"travelbuddy/global"
)

// Translation 翻译结果
type Translation struct {
	Translation   string `json:"translation"`
	Pronunciation string `json:"pronunciation"`
	CulturalNote  string `json:"cultural_note"`
	Formality     string `json:"formality"`
}

const translationCacheTTL = 24 * time.Hour

func translationCacheKey(text, targetLanguage string) string {
	sum := sha256.Sum256([]byte(targetLanguage + "\x00" + text))
	return "cache:translate:" + hex.EncodeToString(sum[:16])
}

// TranslateText 调用 Gemini 翻译；Redis 可用时同一请求 24h 内直接命中缓存
func TranslateText(ctx context.Context, text, targetLanguage, contextNote string) (*Translation, error) {
	if !GeminiReady() {
		return &Translation{
			Translation:  "Gemini API not configured",
			CulturalNote: "Please check GEMINI_API_KEY",
			Formality:    "neutral",
		}, nil
	}

	cacheKey := translationCacheKey(text, targetLanguage)
	if global.RedisDB != nil && contextNote == "" {
		if cached, err := global.RedisDB.Get(cacheKey).Result(); err == nil {
			var t Translation
			if json.Unmarshal([]byte(cached), &t) == nil {
				return &t, nil
			}
		}
	}

	prompt := BuildTranslationPrompt(text, targetLanguage, contextNote)
	raw, err := generator.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	t := parseTranslation(raw)

	if global.RedisDB != nil && contextNote == "" {
		if data, err := json.Marshal(t); err == nil {
			global.RedisDB.Set(cacheKey, string(data), translationCacheTTL)
		}
	}
	return t, nil
}

// parseTranslation 模型没按 JSON 返回时，整段文本当译文用
func parseTranslation(raw string) *Translation {
	obj := ParseJSONObject(raw)
	if len(obj) == 0 {
		return &Translation{Translation: raw, Formality: "neutral"}
	}
	t := &Translation{}
	if v, ok := obj["translation"].(string); ok {
		t.Translation = v
	}
	if v, ok := obj["pronunciation"].(string); ok {
		t.Pronunciation = v
	}
	if v, ok := obj["cultural_note"].(string); ok {
		t.CulturalNote = v
	}
	if v, ok := obj["formality"].(string); ok {
		t.Formality = v
	}
	if t.Translation == "" {
		t.Translation = raw
		t.Formality = "neutral"
	}
	return t
}
