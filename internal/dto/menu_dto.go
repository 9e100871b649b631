package dto

import "menu-ai-be/pkg/menu"

type SearchRequest struct {
	Query   string         `json:"query" validate:"required"`
	Filters *SearchFilters `json:"filters,omitempty"`
	Limit   int            `json:"limit,omitempty"`
}

type SearchFilters struct {
	MinPrice         *float64 `json:"min_price,omitempty"`
	MaxPrice         *float64 `json:"max_price,omitempty"`
	Category         string   `json:"category,omitempty"`
	ExcludeAllergens []string `json:"exclude_allergens,omitempty"`
	SeasonalOnly     bool     `json:"seasonal_only,omitempty"`
	MinRating        *float64 `json:"min_rating,omitempty"`
}

type SearchResponse struct {
	Results    []menu.Item `json:"results"`
	TotalCount int         `json:"total_count"`
	Query      string      `json:"query"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

type MenuItemsResponse struct {
	Items []menu.Item `json:"items"`
}

type RecommendationRequest struct {
	UserPreferences     map[string]interface{} `json:"user_preferences" validate:"required"`
	DietaryRestrictions []string               `json:"dietary_restrictions,omitempty"`
	BudgetRange         string                 `json:"budget_range,omitempty"`
	CuisinePreferences  []string               `json:"cuisine_preferences,omitempty"`
}

type RecommendationResponse struct {
	Recommendations []menu.Item `json:"recommendations"`
	Reasoning       string      `json:"reasoning"`
	ConfidenceScore float64     `json:"confidence_score"`
}
