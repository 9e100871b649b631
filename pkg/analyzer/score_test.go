package analyzer

import (
	"math"
	"testing"

	"menu-ai-be/pkg/lexicon"
)

func TestScoreIntents(t *testing.T) {
	tests := []struct {
		name        string
		message     string
		wantScores  map[string]float64
		wantPrimary string
	}{
		{
			name:        "recommendation request",
			message:     "我想吃辣的菜",
			wantScores:  map[string]float64{"recommendation": 1.0 / 6.0},
			wantPrimary: "recommendation",
		},
		{
			name:    "two recommendation keywords",
			message: "推荐一下，我想吃川菜",
			wantScores: map[string]float64{
				"recommendation": 2.0 / 6.0,
			},
			wantPrimary: "recommendation",
		},
		{
			name:        "information request",
			message:     "这道菜多少钱？介绍一下",
			wantScores:  map[string]float64{"information": 2.0 / 6.0},
			wantPrimary: "information",
		},
		{
			name:        "comparison request",
			message:     "川菜和湘菜有什么区别",
			wantScores:  map[string]float64{"recommendation": 1.0 / 6.0, "comparison": 1.0 / 5.0},
			wantPrimary: "comparison",
		},
		{
			name:        "allergy statement",
			message:     "我对花生过敏，不能吃花生",
			wantScores:  map[string]float64{"allergy": 2.0 / 3.0},
			wantPrimary: "allergy",
		},
		{
			name:        "no signal",
			message:     "今天天气真好",
			wantScores:  map[string]float64{},
			wantPrimary: "",
		},
		{
			name:        "empty message",
			message:     "",
			wantScores:  map[string]float64{},
			wantPrimary: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreIntents(tt.message)
			assertScores(t, got, tt.wantScores)

			if primary := Primary(got, lexicon.IntentOrder); primary != tt.wantPrimary {
				t.Errorf("Primary = %q, want %q", primary, tt.wantPrimary)
			}
		})
	}
}

func TestScoreEmotions(t *testing.T) {
	tests := []struct {
		name       string
		message    string
		wantScores map[string]float64
	}{
		{
			name:       "positive",
			message:    "太棒了，很好吃，我很满意",
			wantScores: map[string]float64{"positive": 3.0 / 6.0},
		},
		{
			name:       "negative",
			message:    "太难吃了，很失望",
			wantScores: map[string]float64{"negative": 2.0 / 5.0},
		},
		{
			name:       "worried",
			message:    "我有点担心会太辣",
			wantScores: map[string]float64{"worried": 1.0 / 4.0},
		},
		{
			name:       "no signal",
			message:    "随便",
			wantScores: map[string]float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertScores(t, ScoreEmotions(tt.message), tt.wantScores)
		})
	}
}

func TestPrimaryTieBreak(t *testing.T) {
	// Equal scores resolve to whichever category is declared first.
	scores := map[string]float64{
		"comparison":     0.5,
		"recommendation": 0.5,
		"health":         0.5,
	}
	if got := Primary(scores, lexicon.IntentOrder); got != "recommendation" {
		t.Errorf("Primary = %q, want %q", got, "recommendation")
	}
}

func TestPrimaryEmptyMap(t *testing.T) {
	if got := Primary(map[string]float64{}, lexicon.IntentOrder); got != "" {
		t.Errorf("Primary = %q, want empty", got)
	}
	if got := Primary(nil, lexicon.IntentOrder); got != "" {
		t.Errorf("Primary(nil) = %q, want empty", got)
	}
}

func TestScoresOmitZeroCategories(t *testing.T) {
	got := ScoreIntents("推荐一个菜")
	for category, score := range got {
		if score <= 0 {
			t.Errorf("category %q present with non-positive score %v", category, score)
		}
	}
}

func assertScores(t *testing.T, got, want map[string]float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("scores = %v, want %v", got, want)
	}
	for category, wantScore := range want {
		gotScore, ok := got[category]
		if !ok {
			t.Fatalf("missing category %q in %v", category, got)
		}
		if math.Abs(gotScore-wantScore) > 1e-9 {
			t.Errorf("score[%q] = %v, want %v", category, gotScore, wantScore)
		}
	}
}
