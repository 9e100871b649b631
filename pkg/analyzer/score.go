package analyzer

import (
	"strings"

	"menu-ai-be/pkg/lexicon"
)

// ScoreIntents scores a raw message against the intent keyword tables.
// Each category scores matched/total over its keyword set; categories with
// no match are left out of the map entirely, so every value present is > 0.
func ScoreIntents(message string) map[string]float64 {
	return scoreTable(message, lexicon.IntentOrder, lexicon.IntentKeywords)
}

// ScoreEmotions scores a raw message against the emotion keyword tables.
func ScoreEmotions(message string) map[string]float64 {
	return scoreTable(message, lexicon.EmotionOrder, lexicon.EmotionKeywords)
}

// Primary picks the highest-scoring category from a score map. Ties resolve
// to whichever category comes first in the declared order, so repeated calls
// on the same input always agree. Returns "" for an empty map.
func Primary(scores map[string]float64, order []string) string {
	best := ""
	bestScore := 0.0
	for _, category := range order {
		score, ok := scores[category]
		if !ok {
			continue
		}
		if score > bestScore {
			best = category
			bestScore = score
		}
	}
	return best
}

func scoreTable(message string, order []string, table map[string][]string) map[string]float64 {
	lowered := strings.ToLower(message)
	scores := make(map[string]float64)
	for _, category := range order {
		keywords := table[category]
		matched := 0
		for _, kw := range keywords {
			if strings.Contains(lowered, strings.ToLower(kw)) {
				matched++
			}
		}
		if matched > 0 {
			scores[category] = float64(matched) / float64(len(keywords))
		}
	}
	return scores
}
