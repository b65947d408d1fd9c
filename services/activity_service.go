package services

import "context"

// ActivityResult 活动推荐结果，Recommendations 为宽松解析出的 JSON
type ActivityResult struct {
	Response        string                   `json:"response"`
	Recommendations []map[string]interface{} `json:"recommendations"`
	Sources         []ChatSource             `json:"sources"`
}

// RecommendActivities 指定国家的活动推荐
func RecommendActivities(ctx context.Context, userID, country string, interests []string, durationDays, topK int) (*ActivityResult, error) {
	if !GeminiReady() {
		return &ActivityResult{
			Response:        notConfiguredMsg,
			Recommendations: []map[string]interface{}{},
			Sources:         []ChatSource{},
		}, nil
	}

	profile, err := GetOrCreateProfile(userID)
	if err != nil {
		return nil, err
	}

	snippets, sources := retrieveSnippets(ctx, country+" activities attractions", topK, "")

	prompt := BuildActivitiesPrompt(country, interests, durationDays, profile.VisitedCountries)
	if len(snippets) > 0 {
		prompt = "Reference material from travel guides:\n" + joinSnippets(snippets) + "\n\n" + prompt
	}

	text, err := generator.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	if sources == nil {
		sources = []ChatSource{}
	}
	return &ActivityResult{
		Response:        text,
		Recommendations: ParseJSONArray(text),
		Sources:         sources,
	}, nil
}

func joinSnippets(snippets []string) string {
	out := ""
	for _, s := range snippets {
		out += s + "\n---\n"
	}
	return out
}
