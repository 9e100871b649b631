package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"menu-ai-be/internal/dto"
	"menu-ai-be/internal/pkg/logger"
	"menu-ai-be/pkg/llm"
	"menu-ai-be/pkg/menu"
)

// IMenuService defines the menu catalog interface
type IMenuService interface {
	GetAllItems() []menu.Item
	GetItemById(id string) (menu.Item, bool)
	Search(request *dto.SearchRequest) *dto.SearchResponse
	Categories() []string
	SeasonalItems() []menu.Item
	PopularItems(limit int) []menu.Item
	Recommend(ctx context.Context, request *dto.RecommendationRequest) *dto.RecommendationResponse
}

type menuService struct {
	catalog     *menu.Catalog
	llmProvider llm.LLMProvider // nil means degraded recommendations
	llmTimeout  time.Duration
	sysLogger   logger.ILogger
}

func NewMenuService(catalog *menu.Catalog, llmProvider llm.LLMProvider, llmTimeout time.Duration, sysLogger logger.ILogger) IMenuService {
	return &menuService{
		catalog:     catalog,
		llmProvider: llmProvider,
		llmTimeout:  llmTimeout,
		sysLogger:   sysLogger,
	}
}

func (ms *menuService) GetAllItems() []menu.Item {
	return ms.catalog.All()
}

func (ms *menuService) GetItemById(id string) (menu.Item, bool) {
	return ms.catalog.ByID(id)
}

func (ms *menuService) Search(request *dto.SearchRequest) *dto.SearchResponse {
	limit := request.Limit
	if limit <= 0 {
		limit = 10
	}

	var filters *menu.Filters
	if request.Filters != nil {
		filters = &menu.Filters{
			MinPrice:         request.Filters.MinPrice,
			MaxPrice:         request.Filters.MaxPrice,
			Category:         request.Filters.Category,
			ExcludeAllergens: request.Filters.ExcludeAllergens,
			SeasonalOnly:     request.Filters.SeasonalOnly,
			MinRating:        request.Filters.MinRating,
		}
	}

	results := ms.catalog.Search(request.Query, filters, limit)
	if results == nil {
		results = []menu.Item{}
	}
	return &dto.SearchResponse{
		Results:    results,
		TotalCount: len(results),
		Query:      request.Query,
	}
}

func (ms *menuService) Categories() []string {
	return ms.catalog.Categories()
}

func (ms *menuService) SeasonalItems() []menu.Item {
	return ms.catalog.Seasonal()
}

func (ms *menuService) PopularItems(limit int) []menu.Item {
	if limit <= 0 {
		limit = 5
	}
	return ms.catalog.Popular(limit)
}

// Recommend picks the top-rated catalog dishes that fit the stated
// constraints and, when a model is configured, asks it for reasoning text.
// A missing or failing model degrades to picks without reasoning rather
// than an error.
func (ms *menuService) Recommend(ctx context.Context, request *dto.RecommendationRequest) *dto.RecommendationResponse {
	picks := ms.pickCandidates(request)

	if ms.llmProvider == nil {
		return &dto.RecommendationResponse{
			Recommendations: picks,
			Reasoning:       "根据您的偏好，为您挑选了评分最高的菜品。",
			ConfidenceScore: 0.5,
		}
	}

	prefsJSON, _ := json.Marshal(request.UserPreferences)
	promptText := fmt.Sprintf(`基于以下用户偏好，推荐3-5道最适合的菜品：

用户偏好：%s

请提供：
1. 推荐的菜品名称
2. 推荐理由
3. 预期满意度评分（1-10）`, string(prefsJSON))

	callCtx, cancel := context.WithTimeout(ctx, ms.llmTimeout)
	defer cancel()

	reasoning, err := ms.llmProvider.Generate(callCtx, promptText)
	if err != nil {
		ms.sysLogger.Error("menu", "recommendation generation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return &dto.RecommendationResponse{
			Recommendations: picks,
			Reasoning:       fmt.Sprintf("推荐生成失败: %s", err.Error()),
			ConfidenceScore: 0.0,
		}
	}

	return &dto.RecommendationResponse{
		Recommendations: picks,
		Reasoning:       reasoning,
		ConfidenceScore: 0.8,
	}
}

// pickCandidates filters the catalog by the request constraints and keeps
// the highest rated dishes. Cuisine preferences are a soft constraint:
// matching dishes sort first, but the list is never emptied by them.
func (ms *menuService) pickCandidates(request *dto.RecommendationRequest) []menu.Item {
	filters := &menu.Filters{
		ExcludeAllergens: allergensFor(request.DietaryRestrictions),
		MaxPrice:         budgetCeiling(request.BudgetRange),
	}

	eligible := make(map[string]bool)
	for _, item := range ms.catalog.Search("", filters, 0) {
		eligible[item.ID] = true
	}

	var preferred, rest []menu.Item
	for _, item := range ms.catalog.Popular(0) {
		if !eligible[item.ID] {
			continue
		}
		if matchesCuisine(item, request.CuisinePreferences) {
			preferred = append(preferred, item)
		} else {
			rest = append(rest, item)
		}
	}

	picks := append(preferred, rest...)
	if len(picks) > 5 {
		picks = picks[:5]
	}
	if picks == nil {
		picks = []menu.Item{}
	}
	return picks
}

// budgetCeiling translates a budget band into a per-dish price cap.
func budgetCeiling(budget string) *float64 {
	var ceiling float64
	switch budget {
	case "low":
		ceiling = 30
	case "medium":
		ceiling = 60
	default:
		return nil
	}
	return &ceiling
}

func matchesCuisine(item menu.Item, cuisines []string) bool {
	if len(cuisines) == 0 {
		return false
	}
	for _, c := range cuisines {
		for _, label := range cuisineCategories(c) {
			if item.Category == label {
				return true
			}
		}
	}
	return false
}

// cuisineCategories maps an extracted cuisine tag to catalog categories.
// Tags without catalog coverage map to nothing and fall through to the
// rating order.
func cuisineCategories(cuisine string) []string {
	switch cuisine {
	case "sichuan":
		return []string{"川菜", "湘菜"}
	case "cantonese":
		return []string{"粤菜", "点心"}
	case "chinese":
		return []string{"川菜", "粤菜", "鲁菜", "本帮菜", "京菜", "湘菜", "苏菜"}
	default:
		return nil
	}
}

// allergensFor maps dietary restriction tags to catalog allergen labels.
func allergensFor(restrictions []string) []string {
	var allergens []string
	for _, r := range restrictions {
		switch r {
		case "seafood_allergy":
			allergens = append(allergens, "鱼类", "虾类")
		case "peanut_allergy":
			allergens = append(allergens, "花生")
		}
	}
	return allergens
}
