package services

import (
	"context"
	"strings"
)

// CountryResult 下一站国家推荐
type CountryResult struct {
	Response        string                   `json:"response"`
	Recommendations []map[string]interface{} `json:"recommendations"`
	Sources         []ChatSource             `json:"sources"`
}

// RecommendCountries 根据旅行历史推荐下一站，并兜底过滤已去过的国家
func RecommendCountries(ctx context.Context, userID, budget, travelStyle string) (*CountryResult, error) {
	if !GeminiReady() {
		return &CountryResult{
			Response:        notConfiguredMsg,
			Recommendations: []map[string]interface{}{},
			Sources:         []ChatSource{},
		}, nil
	}

	profile, err := GetOrCreateProfile(userID)
	if err != nil {
		return nil, err
	}

	if budget == "" {
		budget = "moderate"
	}

	prompt := BuildCountryRecommendationPrompt(profile.VisitedCountries, budget, travelStyle)
	text, err := generator.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	recs := FilterVisited(ParseJSONArray(text), profile.VisitedCountries)

	return &CountryResult{
		Response:        text,
		Recommendations: recs,
		Sources:         []ChatSource{},
	}, nil
}

// FilterVisited 模型偶尔会无视指令推荐去过的国家，这里再过滤一遍
func FilterVisited(recs []map[string]interface{}, visited []string) []map[string]interface{} {
	if len(visited) == 0 {
		return recs
	}
	visitedLower := make(map[string]bool, len(visited))
	for _, c := range visited {
		visitedLower[strings.ToLower(c)] = true
	}

	out := recs[:0]
	for _, rec := range recs {
		country, _ := rec["country"].(string)
		if visitedLower[strings.ToLower(country)] {
			continue
		}
		out = append(out, rec)
	}
	return out
}
