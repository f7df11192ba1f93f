package insights

import (
	"math"

	"memorycompanion/internal/model"
)

const (
	positiveToneThreshold    = 0.6
	challengingToneThreshold = 0.4
)

// categoryStats accumulates one category's raw counts before rounding.
type categoryStats struct {
	name          string
	count         int
	totalWords    int
	positiveHits  int
	challengeHits int
	reflectiveHit int
}

func (s *categoryStats) avgDepth() float64 {
	if s.count == 0 {
		return 0
	}
	return float64(s.totalWords) / float64(s.count)
}

// groupCategories returns per-category stats in first-appearance order.
// Reflections without a category are skipped.
func groupCategories(reflections []model.Reflection) []*categoryStats {
	var ordered []*categoryStats
	index := make(map[string]*categoryStats)

	for i := range reflections {
		r := &reflections[i]
		if r.Category == "" {
			continue
		}
		s, ok := index[r.Category]
		if !ok {
			s = &categoryStats{name: r.Category}
			index[r.Category] = s
			ordered = append(ordered, s)
		}
		s.count++
		s.totalWords += r.Words()
		s.positiveHits += CountWords(r.ResponseText, positiveWords)
		s.challengeHits += CountWords(r.ResponseText, challengingWords)
		s.reflectiveHit += CountWords(r.ResponseText, reflectiveWords)
	}
	return ordered
}

// Tone classifies a category from its positive and challenging hit counts.
func Tone(positive, challenging int) model.EmotionalTone {
	ratio := 0.5
	if positive+challenging > 0 {
		ratio = float64(positive) / float64(positive+challenging)
	}
	switch {
	case ratio > positiveToneThreshold:
		return model.TonePositive
	case ratio < challengingToneThreshold:
		return model.ToneChallenging
	default:
		return model.ToneBalanced
	}
}

// CategoryInsights builds the per-category mapping. total is the number of
// eligible reflections, including uncategorized ones.
func CategoryInsights(reflections []model.Reflection, total int) map[string]model.CategoryInsight {
	return buildCategoryInsights(groupCategories(reflections), total)
}

func buildCategoryInsights(stats []*categoryStats, total int) map[string]model.CategoryInsight {
	out := make(map[string]model.CategoryInsight, len(stats))
	for _, s := range stats {
		pct := 0.0
		if total > 0 {
			pct = math.Round(float64(s.count)/float64(total)*1000) / 10
		}
		out[s.name] = model.CategoryInsight{
			Count:           s.count,
			AvgDepth:        round1(s.avgDepth()),
			TotalInvestment: s.totalWords,
			EmotionalTone:   Tone(s.positiveHits, s.challengeHits),
			ReflectionLevel: s.reflectiveHit,
			Percentage:      pct,
		}
	}
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
