package services

import (
	"context"
	"testing"
)

func TestFilterVisited(t *testing.T) {
	recs := []map[string]interface{}{
		{"country": "Japan"},
		{"country": "Peru"},
		{"country": "italy"},
	}

	got := FilterVisited(recs, []string{"Japan", "Italy"})
	if len(got) != 1 {
		t.Fatalf("expected 1 recommendation left, got %d", len(got))
	}
	if got[0]["country"] != "Peru" {
		t.Fatalf("unexpected survivor: %v", got[0])
	}
}

func TestFilterVisited_NoHistory(t *testing.T) {
	recs := []map[string]interface{}{{"country": "Japan"}}
	if got := FilterVisited(recs, nil); len(got) != 1 {
		t.Fatal("empty history must not filter anything")
	}
}

func TestRecommendCountries_FiltersModelOutput(t *testing.T) {
	resetMemProfiles(t)
	withStore(t)

	// 模型无视指令把去过的国家也推了回来
	reply := `[{"country":"Japan","reason":"been there"},{"country":"Portugal","reason":"new"}]`
	withGenerator(t, &fakeGenerator{reply: reply})

	AddVisitedCountry("u1", "Japan", "")

	result, err := RecommendCountries(context.Background(), "u1", "", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Recommendations) != 1 {
		t.Fatalf("expected visited country filtered, got %v", result.Recommendations)
	}
	if result.Recommendations[0]["country"] != "Portugal" {
		t.Fatalf("unexpected recommendation: %v", result.Recommendations[0])
	}
	if result.Response != reply {
		t.Fatal("raw model response should be passed through")
	}
}

func TestRecommendCountries_NotConfigured(t *testing.T) {
	resetMemProfiles(t)
	withGenerator(t, nil)

	result, err := RecommendCountries(context.Background(), "u1", "budget", "adventure")
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Recommendations) != 0 {
		t.Fatal("degraded mode returns no recommendations")
	}
}

func TestRecommendActivities_ParsesArray(t *testing.T) {
	resetMemProfiles(t)
	withStore(t)

	reply := "Here are some ideas:\n[{\"name\":\"Temple walk\",\"category\":\"cultural\"}]"
	gen := &fakeGenerator{reply: reply}
	withGenerator(t, gen)

	result, err := RecommendActivities(context.Background(), "u1", "Japan", []string{"food"}, 5, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Recommendations) != 1 || result.Recommendations[0]["name"] != "Temple walk" {
		t.Fatalf("unexpected recommendations: %v", result.Recommendations)
	}
}
