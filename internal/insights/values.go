package insights

import (
	"sort"
	"strings"

	"memorycompanion/internal/model"
)

const maxCoreValues = 5

// ScoreValues ranks the value taxonomy against the corpus text and keeps the
// top five with a positive score.
func ScoreValues(corpus string) []model.ValueScore {
	scores := make([]model.ValueScore, 0, len(valueTaxonomy))
	for _, v := range valueTaxonomy {
		strength := CountWords(corpus, v.Indicators)
		if strength == 0 {
			continue
		}
		scores = append(scores, model.ValueScore{
			Value:       FormatLabel(v.Key),
			Strength:    strength,
			Description: v.Description,
		})
	}

	sort.SliceStable(scores, func(i, j int) bool { return scores[i].Strength > scores[j].Strength })
	if len(scores) > maxCoreValues {
		scores = scores[:maxCoreValues]
	}
	return scores
}

// FormatLabel turns "inner_peace" into "Inner Peace".
func FormatLabel(key string) string {
	words := strings.Split(strings.ReplaceAll(key, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
