package fallback

import (
	"strings"
	"testing"

	"menu-ai-be/pkg/analyzer"
	"menu-ai-be/pkg/session"
)

func respondTo(message string) string {
	return Respond(Input{
		Message:       message,
		IntentScores:  analyzer.ScoreIntents(message),
		EmotionScores: analyzer.ScoreEmotions(message),
		Entities:      analyzer.ExtractEntities(message),
	})
}

func TestRespondIntentBranches(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		contains string
	}{
		{
			name:     "recommendation with spicy entity",
			message:  "推荐一下，我想吃辣的",
			contains: "辣味",
		},
		{
			name:     "information",
			message:  "介绍一下这道菜的价格，多少钱",
			contains: "具体信息",
		},
		{
			name:     "comparison",
			message:  "川菜还是粤菜，帮我对比一下区别",
			contains: "各有特色",
		},
		{
			name:     "health",
			message:  "我在减肥，要健康低脂的",
			contains: "清蒸",
		},
		{
			name:     "allergy",
			message:  "我过敏体质，有些东西不能吃",
			contains: "过敏原",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := respondTo(tt.message)
			if !strings.Contains(got, tt.contains) {
				t.Errorf("Respond(%q) = %q, want it to contain %q", tt.message, got, tt.contains)
			}
		})
	}
}

func TestRespondEmotionBranches(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		contains string
	}{
		{
			name:     "positive",
			message:  "太棒了，好吃，很满意",
			contains: "很高兴您喜欢",
		},
		{
			name:     "negative",
			message:  "难吃，太差了",
			contains: "抱歉没能让您满意",
		},
		{
			name:     "worried",
			message:  "我很担心，有点害怕踩雷",
			contains: "别担心",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := respondTo(tt.message)
			if !strings.Contains(got, tt.contains) {
				t.Errorf("Respond(%q) = %q, want it to contain %q", tt.message, got, tt.contains)
			}
		})
	}
}

// Intent branches outrank emotion branches when both clear the threshold.
func TestRespondIntentBeforeEmotion(t *testing.T) {
	msg := "太差了，难吃，我过敏不能吃这个，帮我忌口"
	got := respondTo(msg)
	if !strings.Contains(got, "过敏原") {
		t.Errorf("Respond(%q) = %q, want the allergy branch", msg, got)
	}
}

func TestRespondPhraseTable(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		contains string
	}{
		{name: "greeting", message: "你好", contains: "很高兴为您服务"},
		{name: "spicy keyword below threshold", message: "我想吃辣的菜", contains: "剁椒鱼头"},
		{name: "light keyword", message: "来份清淡的吧", contains: "清蒸鲈鱼"},
		{name: "japanese keyword", message: "日料怎么选", contains: "天妇罗"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := respondTo(tt.message)
			if !strings.Contains(got, tt.contains) {
				t.Errorf("Respond(%q) = %q, want it to contain %q", tt.message, got, tt.contains)
			}
		})
	}
}

func TestRespondCatchAll(t *testing.T) {
	got := respondTo("今天天气真好")
	if got != CatchAllReply {
		t.Errorf("Respond = %q, want the catch-all reply", got)
	}
}

// When the message itself carries no entities, the recommendation branch
// falls back to the session's accumulated preferences.
func TestRecommendationUsesStoredPreferences(t *testing.T) {
	in := Input{
		Message:      "给我推荐一个，吃什么好呢",
		IntentScores: analyzer.ScoreIntents("给我推荐一个，吃什么好呢"),
		Preferences: session.Preferences{
			CuisinePreference: []string{"cantonese"},
			TastePreferences:  []string{"light"},
			BudgetPreference:  "medium",
		},
	}
	got := Respond(in)
	for _, want := range []string{"粤菜", "清淡", "中等价位"} {
		if !strings.Contains(got, want) {
			t.Errorf("Respond = %q, want it to contain %q", got, want)
		}
	}
}
