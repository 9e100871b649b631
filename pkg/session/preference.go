package session

import (
	"regexp"
	"strconv"
	"strings"

	"menu-ai-be/pkg/analyzer"
	"menu-ai-be/pkg/lexicon"
)

// groupSizePattern captures the first integer immediately followed by a
// person-count marker ("3个人", "5位"). Spelled-out numerals are not
// recognized.
var groupSizePattern = regexp.MustCompile(`(\d+)\s*(个人|人|位)`)

// ApplyPreferences merges one message's extraction into the session's sticky
// preference record. Merge rules per field:
//
//	cuisine:  most recent non-empty extraction replaces the prior list
//	taste:    set union, deduplicated, never removed once established
//	dietary:  most recent non-empty extraction replaces the prior list
//	budget:   last matched category wins
//	meal time, group size, occasion: last match wins, scanned from the raw
//	message rather than the entity record
//
// A field with no signal in the current message is left untouched.
func (s *Session) ApplyPreferences(message string, ents analyzer.Entities) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(ents.CuisineTypes) > 0 {
		s.preferences.CuisinePreference = append([]string(nil), ents.CuisineTypes...)
	}
	if len(ents.TastePreferences) > 0 {
		s.preferences.TastePreferences = unionTastes(s.preferences.TastePreferences, ents.TastePreferences)
	}
	if len(ents.DietaryRestrictions) > 0 {
		s.preferences.DietaryRestrictions = append([]string(nil), ents.DietaryRestrictions...)
	}
	if ents.BudgetRange != "" {
		s.preferences.BudgetPreference = ents.BudgetRange
	}

	lowered := strings.ToLower(message)

	if meal := firstKeywordMatch(lowered, lexicon.MealOrder, lexicon.MealKeywords); meal != "" {
		s.preferences.MealTime = meal
	}
	if m := groupSizePattern.FindStringSubmatch(message); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			s.preferences.GroupSize = n
		}
	}
	if occ := firstKeywordMatch(lowered, lexicon.OccasionOrder, lexicon.OccasionKeywords); occ != "" {
		s.preferences.Occasion = occ
	}
}

// CurrentPreferences returns a copy of the preference record.
func (s *Session) CurrentPreferences() Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	prefs := s.preferences
	prefs.CuisinePreference = append([]string(nil), s.preferences.CuisinePreference...)
	prefs.TastePreferences = append([]string(nil), s.preferences.TastePreferences...)
	prefs.DietaryRestrictions = append([]string(nil), s.preferences.DietaryRestrictions...)
	return prefs
}

func unionTastes(existing, incoming []string) []string {
	seen := make(map[string]bool, len(existing))
	out := append([]string(nil), existing...)
	for _, t := range existing {
		seen[t] = true
	}
	for _, t := range incoming {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}

func firstKeywordMatch(lowered string, order []string, table map[string][]string) string {
	for _, category := range order {
		for _, kw := range table[category] {
			if strings.Contains(lowered, strings.ToLower(kw)) {
				return category
			}
		}
	}
	return ""
}
