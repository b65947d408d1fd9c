package services

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseJSONArray 从模型输出里截取第一个 [ 到最后一个 ] 之间的 JSON，失败返回空
func ParseJSONArray(text string) []map[string]interface{} {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end <= start {
		return []map[string]interface{}{}
	}
	var out []map[string]interface{}
	if err := json.Unmarshal([]byte(text[start:end+1]), &out); err != nil {
		return []map[string]interface{}{}
	}
	return out
}

// ParseJSONObject same as ParseJSONArray but for a single object.
func ParseJSONObject(text string) map[string]interface{} {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return map[string]interface{}{}
	}
	var out map[string]interface{}
	if err := json.Unmarshal([]byte(text[start:end+1]), &out); err != nil {
		return map[string]interface{}{}
	}
	return out
}

func joinOr(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}

// BuildChatPrompt 聊天提示词：用户档案 + 检索片段 + 原始问题
func BuildChatPrompt(message string, visited []string, contextJSON string, snippets []string) string {
	var b strings.Builder
	b.WriteString("You are a helpful travel advisor chatbot. Answer the user's travel question naturally and helpfully.\n\n")
	b.WriteString("User Profile:\n")
	fmt.Fprintf(&b, "- Visited countries: %s\n\n", joinOr(visited, "None yet"))

	if len(snippets) > 0 {
		b.WriteString("Relevant travel guide excerpts:\n")
		for _, s := range snippets {
			b.WriteString(s)
			b.WriteString("\n---\n")
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "User Question: %s\n\n", message)
	if contextJSON == "" {
		contextJSON = "None"
	}
	fmt.Fprintf(&b, "Context: %s\n\n", contextJSON)
	b.WriteString("Provide a friendly, informative response. If giving recommendations, format them clearly with bullet points.")
	return b.String()
}

func BuildActivitiesPrompt(country string, interests []string, durationDays int, visited []string) string {
	interestsStr := joinOr(interests, "general sightseeing")
	durationStr := ""
	if durationDays > 0 {
		durationStr = fmt.Sprintf(" for %d days", durationDays)
	}

	return fmt.Sprintf(`You are a travel advisor. Provide 5-7 activity recommendations for %s.

User interests: %s
Duration: %s
Previously visited: %s

Return ONLY a JSON array (no markdown, no extra text):
[
  {
    "name": "Activity name",
    "description": "Brief description (2-3 sentences)",
    "category": "adventure/cultural/food/nature/etc",
    "location": "specific location",
    "estimated_cost": "$/$$/$$$",
    "best_time": "best time to do this",
    "tips": "insider tip"
  }
]`, country, interestsStr, durationStr, joinOr(visited, "First trip"))
}

func BuildCountryRecommendationPrompt(visited []string, budget, travelStyle string) string {
	visitedStr := joinOr(visited, "None - this is their first trip")
	if travelStyle == "" {
		travelStyle = "diverse experiences"
	}

	var context string
	if len(visited) > 0 {
		context = fmt.Sprintf(`The user has previously visited: %s

Based on their travel history, recommend countries that:
1. Offer similar experiences but in new regions
2. Are a natural progression in travel difficulty/adventure
3. Complement their existing travel experiences
4. Avoid repeating the same country or very similar destinations`, visitedStr)
	} else {
		context = `This is the user's first major trip! Recommend:
1. Countries that are beginner-friendly for international travel
2. Destinations with good infrastructure and English speakers
3. Safe and welcoming places for first-time travelers
4. Diverse experiences to help them discover their travel style`
	}

	return fmt.Sprintf(`You are an expert travel advisor with deep knowledge of world destinations.

User's Travel Profile:
- Previously visited countries: %s
- Budget preference: %s
- Travel style: %s

%s

Task: Recommend 5 countries for their NEXT trip. Make sure these are countries they HAVEN'T visited yet.

For each recommendation:
- Explain WHY it's a good fit based on their previous travels
- If they have travel history, mention similarities to places they've enjoyed
- Highlight what makes it different from places they've been
- Consider their budget and travel style

Return ONLY a JSON array (no markdown, no code blocks):
[
  {
    "country": "Country name",
    "reason": "Detailed reason why this matches their profile, referencing their previous travels if applicable (3-4 sentences)",
    "highlights": ["specific highlight 1", "specific highlight 2", "specific highlight 3"],
    "best_for": "what type of experiences they'll find here",
    "estimated_budget": "$50-80/day" or similar realistic range,
    "best_season": "specific months, e.g., April-October",
    "similar_to": "which of their visited countries it resembles, if applicable - OTHERWISE leave empty string"
  }
]

Important:
- Do NOT recommend countries they've already visited
- Make recommendations diverse and interesting
- Be specific with details, not generic`, visitedStr, budget, travelStyle, context)
}

func BuildTranslationPrompt(text, targetLanguage, context string) string {
	contextNote := ""
	if context != "" {
		contextNote = "\nContext: " + context
	}

	return fmt.Sprintf(`Translate to %s.%s

Text: "%s"

Return ONLY a JSON object (no markdown):
{
  "translation": "translated text",
  "pronunciation": "phonetic guide",
  "cultural_note": "usage tip",
  "formality": "formal/casual"
}`, targetLanguage, contextNote, text)
}
