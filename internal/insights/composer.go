package insights

import (
	"fmt"
	"math"
	"strings"
	"time"

	"memorycompanion/internal/model"
)

const (
	emptySummary    = "Start reflecting to discover your personal insights."
	fallbackSummary = "Your reflections reveal a thoughtful, evolving perspective."
)

var growthJourney = model.GrowthJourney{
	ReflectionDepthChange: "Your reflections are deepening as you keep showing up for yourself.",
	FocusEvolution:        "Your attention moves between the areas of life that matter most to you.",
	EmotionalGrowth:       "You are building a richer vocabulary for what you feel.",
}

var emptyGrowthJourney = model.GrowthJourney{
	ReflectionDepthChange: "Your journey begins with your first reflection.",
	FocusEvolution:        "Answer a few prompts to see where your focus lives.",
	EmotionalGrowth:       "Emotional patterns appear as you reflect over time.",
}

// Analyze runs the full insights pipeline over a user's reflections. today is
// captured once by the caller and drives the streak and calendar windows.
func Analyze(reflections []model.Reflection, today time.Time) *model.InsightsResponse {
	eligible := Eligible(reflections)
	if len(eligible) == 0 {
		return Empty(today)
	}

	total := len(eligible)
	corpus := Corpus(eligible)
	stats := groupCategories(eligible)

	values := ScoreValues(corpus)
	streaks := Streaks(DailyActivity(eligible), today)

	depths := make([]CategoryDepth, 0, len(stats))
	for _, s := range stats {
		depths = append(depths, CategoryDepth{Category: s.name, AvgDepth: s.avgDepth()})
	}
	dna := ReflectionDNA(Signals{Corpus: corpus, Reflections: total, Categories: depths})

	totalWords := 0
	for i := range eligible {
		totalWords += eligible[i].Words()
	}
	avgWords := float64(totalWords) / float64(total)

	return &model.InsightsResponse{
		TotalReflections: total,
		Insights: model.Insights{
			PersonalSummary:  personalSummary(values, topInvestment(stats)),
			CoreValues:       values,
			ReflectionDNA:    dna,
			StreakCalendar:   streaks,
			GrowthJourney:    growthJourney,
			CategoryInsights: buildCategoryInsights(stats, total),
			ReflectionStyle: model.ReflectionStyle{
				DepthLevel:            depthLevel(avgWords),
				Consistency:           consistency(total),
				TotalWords:            totalWords,
				AvgWordsPerReflection: int(math.Round(avgWords)),
			},
		},
	}
}

// Empty is the payload for a user with no eligible reflections.
func Empty(today time.Time) *model.InsightsResponse {
	return &model.InsightsResponse{
		TotalReflections: 0,
		Insights: model.Insights{
			PersonalSummary:  emptySummary,
			CoreValues:       []model.ValueScore{},
			ReflectionDNA:    []string{},
			StreakCalendar:   Streaks(map[string]int{}, today),
			GrowthJourney:    emptyGrowthJourney,
			CategoryInsights: map[string]model.CategoryInsight{},
			ReflectionStyle: model.ReflectionStyle{
				DepthLevel:  "Just getting started",
				Consistency: "Just getting started",
			},
		},
	}
}

// Eligible drops drafts and empty responses.
func Eligible(reflections []model.Reflection) []model.Reflection {
	out := make([]model.Reflection, 0, len(reflections))
	for _, r := range reflections {
		if r.Eligible() {
			out = append(out, r)
		}
	}
	return out
}

// Corpus joins every reflection text into one lower-cased string.
func Corpus(reflections []model.Reflection) string {
	texts := make([]string, len(reflections))
	for i, r := range reflections {
		texts[i] = r.ResponseText
	}
	return strings.ToLower(strings.Join(texts, " "))
}

// topInvestment returns the category with the highest total word count.
func topInvestment(stats []*categoryStats) string {
	var top *categoryStats
	for _, s := range stats {
		if top == nil || s.totalWords > top.totalWords {
			top = s
		}
	}
	if top == nil {
		return ""
	}
	return top.name
}

func personalSummary(values []model.ValueScore, category string) string {
	if len(values) == 0 {
		return fallbackSummary
	}
	summary := fmt.Sprintf("Your reflections reveal someone who deeply values %s.", strings.ToLower(values[0].Value))
	if category != "" {
		summary += fmt.Sprintf(" You invest the most thought in %s.", category)
	}
	return summary
}

func depthLevel(avgWords float64) string {
	switch {
	case avgWords > 150:
		return "Deeply reflective"
	case avgWords > 100:
		return "Moderately reflective"
	default:
		return "Concise and focused"
	}
}

func consistency(total int) string {
	switch {
	case total > 100:
		return "Highly consistent"
	case total > 50:
		return "Moderately consistent"
	default:
		return "Developing consistency"
	}
}
