package analyzer

import (
	"reflect"
	"testing"
)

func TestExtractEntities(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    Entities
	}{
		{
			name:    "cuisine and taste",
			message: "我想吃麻辣的川菜",
			want: Entities{
				CuisineTypes:     []string{"sichuan"},
				TastePreferences: []string{"spicy"},
			},
		},
		{
			name:    "multiple cuisines",
			message: "中餐和日料都可以",
			want: Entities{
				CuisineTypes: []string{"chinese", "japanese"},
			},
		},
		{
			name:    "dietary restriction",
			message: "我海鲜过敏，平时吃素",
			want: Entities{
				DietaryRestrictions: []string{"vegetarian", "seafood_allergy"},
			},
		},
		{
			name:    "scalar attributes",
			message: "晚餐想要清蒸的，要实惠一点",
			want: Entities{
				BudgetRange:   "low",
				MealType:      "dinner",
				CookingMethod: "steamed",
			},
		},
		{
			name:    "no signal",
			message: "你好",
			want:    Entities{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractEntities(tt.message)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractEntities(%q) = %+v, want %+v", tt.message, got, tt.want)
			}
		})
	}
}

// Scalar attributes resolve to the first matching category in declared
// order, even when a later category also matches.
func TestExtractEntitiesBudgetFirstMatchWins(t *testing.T) {
	got := ExtractEntities("便宜的还是高档的都行")
	if got.BudgetRange != "low" {
		t.Errorf("BudgetRange = %q, want %q", got.BudgetRange, "low")
	}
}

func TestEntitiesIsEmpty(t *testing.T) {
	if !(Entities{}).IsEmpty() {
		t.Error("zero Entities should be empty")
	}
	if (Entities{BudgetRange: "low"}).IsEmpty() {
		t.Error("Entities with budget should not be empty")
	}
	if (Entities{TastePreferences: []string{"spicy"}}).IsEmpty() {
		t.Error("Entities with taste should not be empty")
	}
}
