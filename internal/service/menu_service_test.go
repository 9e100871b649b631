package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"menu-ai-be/internal/dto"
	"menu-ai-be/pkg/llm"
	"menu-ai-be/pkg/menu"

	"github.com/stretchr/testify/assert"
)

func newTestMenuService(provider llm.LLMProvider) IMenuService {
	return NewMenuService(menu.NewCatalog(), provider, 5*time.Second, noopLogger{})
}

func TestMenuSearchDefaults(t *testing.T) {
	svc := newTestMenuService(nil)

	res := svc.Search(&dto.SearchRequest{Query: "鱼"})
	assert.Equal(t, "鱼", res.Query)
	assert.Equal(t, len(res.Results), res.TotalCount)
	assert.NotEmpty(t, res.Results)
	assert.LessOrEqual(t, len(res.Results), 10)
}

func TestMenuSearchNoMatchIsEmptyList(t *testing.T) {
	svc := newTestMenuService(nil)

	res := svc.Search(&dto.SearchRequest{Query: "不存在的菜"})
	assert.NotNil(t, res.Results)
	assert.Empty(t, res.Results)
	assert.Zero(t, res.TotalCount)
}

func TestMenuSearchWithFilters(t *testing.T) {
	svc := newTestMenuService(nil)

	maxPrice := 40.0
	res := svc.Search(&dto.SearchRequest{
		Query: "",
		Filters: &dto.SearchFilters{
			Category: "川菜",
			MaxPrice: &maxPrice,
		},
		Limit: 50,
	})
	assert.NotEmpty(t, res.Results)
	for _, item := range res.Results {
		assert.Equal(t, "川菜", item.Category)
		assert.LessOrEqual(t, item.Price, maxPrice)
	}
}

func TestMenuRecommendDegradedWithoutProvider(t *testing.T) {
	svc := newTestMenuService(nil)

	res := svc.Recommend(context.Background(), &dto.RecommendationRequest{
		UserPreferences: map[string]interface{}{"taste": "spicy"},
	})
	assert.NotEmpty(t, res.Recommendations)
	assert.LessOrEqual(t, len(res.Recommendations), 5)
	assert.Equal(t, 0.5, res.ConfidenceScore)
}

func TestMenuRecommendWithProvider(t *testing.T) {
	provider := &stubProvider{reply: "推荐宫保鸡丁，评分9"}
	svc := newTestMenuService(provider)

	res := svc.Recommend(context.Background(), &dto.RecommendationRequest{
		UserPreferences: map[string]interface{}{"taste": "spicy"},
	})
	assert.Equal(t, "推荐宫保鸡丁，评分9", res.Reasoning)
	assert.Equal(t, 0.8, res.ConfidenceScore)
	assert.NotEmpty(t, res.Recommendations)
}

func TestMenuRecommendProviderFailure(t *testing.T) {
	provider := &stubProvider{err: errors.New("model offline")}
	svc := newTestMenuService(provider)

	res := svc.Recommend(context.Background(), &dto.RecommendationRequest{
		UserPreferences: map[string]interface{}{},
	})
	assert.Equal(t, 0.0, res.ConfidenceScore)
	assert.Contains(t, res.Reasoning, "model offline")
	assert.NotEmpty(t, res.Recommendations, "picks survive a failed reasoning call")
}

func TestMenuRecommendHonorsRestrictions(t *testing.T) {
	svc := newTestMenuService(nil)

	res := svc.Recommend(context.Background(), &dto.RecommendationRequest{
		UserPreferences:     map[string]interface{}{},
		DietaryRestrictions: []string{"seafood_allergy", "peanut_allergy"},
	})
	for _, item := range res.Recommendations {
		for _, a := range item.Allergens {
			assert.NotContains(t, []string{"鱼类", "虾类", "花生"}, a, item.Name)
		}
	}
}

func TestMenuRecommendPrefersCuisine(t *testing.T) {
	svc := newTestMenuService(nil)

	res := svc.Recommend(context.Background(), &dto.RecommendationRequest{
		UserPreferences:    map[string]interface{}{},
		CuisinePreferences: []string{"sichuan"},
	})
	assert.NotEmpty(t, res.Recommendations)
	assert.Contains(t, []string{"川菜", "湘菜"}, res.Recommendations[0].Category)
}

func TestMenuRecommendBudgetCap(t *testing.T) {
	svc := newTestMenuService(nil)

	res := svc.Recommend(context.Background(), &dto.RecommendationRequest{
		UserPreferences: map[string]interface{}{},
		BudgetRange:     "low",
	})
	for _, item := range res.Recommendations {
		assert.LessOrEqual(t, item.Price, 30.0, item.Name)
	}
}

func TestMenuPopularAndSeasonal(t *testing.T) {
	svc := newTestMenuService(nil)

	popular := svc.PopularItems(3)
	assert.Len(t, popular, 3)

	for _, item := range svc.SeasonalItems() {
		assert.True(t, item.IsSeasonal, item.Name)
	}
}
