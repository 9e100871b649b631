package analyzer

import (
	"strings"

	"menu-ai-be/pkg/lexicon"
)

// Entities is the structured extraction for a single message. List attributes
// collect every matching category; scalar attributes keep the first match in
// their declared probe order and stay empty when nothing matches.
type Entities struct {
	CuisineTypes        []string `json:"cuisine_types"`
	TastePreferences    []string `json:"taste_preferences"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
	BudgetRange         string   `json:"budget_range,omitempty"`
	MealType            string   `json:"meal_type,omitempty"`
	CookingMethod       string   `json:"cooking_method,omitempty"`
}

// IsEmpty reports whether the extraction carries no signal at all.
func (e Entities) IsEmpty() bool {
	return len(e.CuisineTypes) == 0 &&
		len(e.TastePreferences) == 0 &&
		len(e.DietaryRestrictions) == 0 &&
		e.BudgetRange == "" &&
		e.MealType == "" &&
		e.CookingMethod == ""
}

// ExtractEntities runs every attribute table independently against the raw
// message. It runs on every inbound message, including ones that score zero
// on all intent and emotion categories.
func ExtractEntities(message string) Entities {
	lowered := strings.ToLower(message)
	return Entities{
		CuisineTypes:        matchList(lowered, lexicon.CuisineOrder, lexicon.CuisineKeywords),
		TastePreferences:    matchList(lowered, lexicon.TasteOrder, lexicon.TasteKeywords),
		DietaryRestrictions: matchList(lowered, lexicon.DietaryOrder, lexicon.DietaryKeywords),
		BudgetRange:         matchFirst(lowered, lexicon.BudgetOrder, lexicon.BudgetKeywords),
		MealType:            matchFirst(lowered, lexicon.MealOrder, lexicon.MealKeywords),
		CookingMethod:       matchFirst(lowered, lexicon.CookingOrder, lexicon.CookingKeywords),
	}
}

// matchList includes every category with at least one matching pattern.
// Categories are not mutually exclusive.
func matchList(lowered string, order []string, table map[string][]string) []string {
	var matches []string
	for _, category := range order {
		for _, kw := range table[category] {
			if strings.Contains(lowered, strings.ToLower(kw)) {
				matches = append(matches, category)
				break
			}
		}
	}
	return matches
}

// matchFirst probes categories in order and short-circuits on the first hit.
func matchFirst(lowered string, order []string, table map[string][]string) string {
	for _, category := range order {
		for _, kw := range table[category] {
			if strings.Contains(lowered, strings.ToLower(kw)) {
				return category
			}
		}
	}
	return ""
}
