package prompt

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"menu-ai-be/pkg/llm"
	"menu-ai-be/pkg/session"
)

const (
	// Bounded windows keep the model-facing context roughly constant no
	// matter how long a session grows.
	historyWindow   = 5 // last N intent/emotion score maps
	transcriptPairs = 3 // last N user/assistant pairs in the summary

	// ReplayTurnLimit caps the raw turns replayed as separate role messages.
	// Independent of the transcript summary above: the summary is narrative
	// inside the system message, the replay preserves verbatim fidelity.
	ReplayTurnLimit = 20
)

const systemInstructions = `你是一个专业的菜品推荐助手。你的任务是：

1. 理解用户的需求和偏好
2. 根据用户的喜好推荐合适的菜品
3. 考虑季节性因素
4. 提供个性化的建议
5. 回答用户关于菜品的问题

请用中文回复，保持友好和专业的语气。`

// ContextualBuilder assembles the system-message context for one session.
type ContextualBuilder struct {
	snap session.Snapshot
	now  time.Time
}

func NewContextualBuilder(snap session.Snapshot) *ContextualBuilder {
	return &ContextualBuilder{snap: snap, now: time.Now()}
}

// Build concatenates, in order: system instructions, the accumulated
// preference record, the recent intent and emotion history, and a short
// transcript of the latest turns. Empty sections are omitted entirely.
func (b *ContextualBuilder) Build() string {
	var prompt strings.Builder

	b.writeSystemInstructions(&prompt)
	b.writePreferences(&prompt)
	b.writeScoreHistory(&prompt, "最近的用户意图", b.snap.IntentHistory)
	b.writeScoreHistory(&prompt, "最近的用户情绪", b.snap.EmotionHistory)
	b.writeTranscript(&prompt)

	return prompt.String()
}

func (b *ContextualBuilder) writeSystemInstructions(prompt *strings.Builder) {
	prompt.WriteString(systemInstructions)
	prompt.WriteString("\n\n当前可用的菜品类别包括：中餐、西餐、日料、韩料、泰餐、意餐等。")
	prompt.WriteString("\n当前季节推荐：")
	prompt.WriteString(seasonalFoods(b.now.Month()))
	prompt.WriteString("\n")
}

func (b *ContextualBuilder) writePreferences(prompt *strings.Builder) {
	prefs := b.snap.Preferences
	if prefs.IsEmpty() {
		return
	}

	prompt.WriteString("\n用户偏好:\n")
	if len(prefs.CuisinePreference) > 0 {
		fmt.Fprintf(prompt, "- 菜系: %s\n", strings.Join(prefs.CuisinePreference, ", "))
	}
	if len(prefs.TastePreferences) > 0 {
		fmt.Fprintf(prompt, "- 口味: %s\n", strings.Join(prefs.TastePreferences, ", "))
	}
	if len(prefs.DietaryRestrictions) > 0 {
		fmt.Fprintf(prompt, "- 饮食限制: %s\n", strings.Join(prefs.DietaryRestrictions, ", "))
	}
	if prefs.BudgetPreference != "" {
		fmt.Fprintf(prompt, "- 预算: %s\n", prefs.BudgetPreference)
	}
	if prefs.MealTime != "" {
		fmt.Fprintf(prompt, "- 用餐时段: %s\n", prefs.MealTime)
	}
	if prefs.GroupSize > 0 {
		fmt.Fprintf(prompt, "- 用餐人数: %d\n", prefs.GroupSize)
	}
	if prefs.Occasion != "" {
		fmt.Fprintf(prompt, "- 用餐场合: %s\n", prefs.Occasion)
	}
}

func (b *ContextualBuilder) writeScoreHistory(prompt *strings.Builder, label string, history []map[string]float64) {
	if len(history) == 0 {
		return
	}
	start := len(history) - historyWindow
	if start < 0 {
		start = 0
	}

	fmt.Fprintf(prompt, "\n%s:\n", label)
	for _, scores := range history[start:] {
		prompt.WriteString("- ")
		prompt.WriteString(renderScores(scores))
		prompt.WriteString("\n")
	}
}

func (b *ContextualBuilder) writeTranscript(prompt *strings.Builder) {
	turns := b.snap.Turns
	if len(turns) == 0 {
		return
	}
	start := len(turns) - transcriptPairs*2
	if start < 0 {
		start = 0
	}

	prompt.WriteString("\n最近的对话:\n")
	for _, turn := range turns[start:] {
		role := "用户"
		if turn.Role == session.RoleAssistant {
			role = "助手"
		}
		fmt.Fprintf(prompt, "%s: %s\n", role, turn.Content)
	}
}

// renderScores formats a score map with a stable key order.
func renderScores(scores map[string]float64) string {
	if len(scores) == 0 {
		return "(无)"
	}
	keys := make([]string, 0, len(scores))
	for k := range scores {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s(%.2f)", k, scores[k]))
	}
	return strings.Join(parts, ", ")
}

// ReplayMessages converts the most recent turns into role-tagged model
// messages, oldest first, capped at ReplayTurnLimit.
func ReplayMessages(turns []session.Turn) []llm.Message {
	start := len(turns) - ReplayTurnLimit
	if start < 0 {
		start = 0
	}
	messages := make([]llm.Message, 0, len(turns)-start)
	for _, turn := range turns[start:] {
		messages = append(messages, llm.Message{
			Role:    turn.Role,
			Content: turn.Content,
		})
	}
	return messages
}

// seasonalFoods mirrors the month-keyed suggestion table used by the menu
// side for seasonal picks.
func seasonalFoods(month time.Month) string {
	switch month {
	case time.December, time.January, time.February:
		return "冬季：火锅、炖菜、热汤"
	case time.March, time.April, time.May:
		return "春季：春笋、野菜、清淡菜品"
	case time.June, time.July, time.August:
		return "夏季：凉菜、冷面、清爽菜品"
	default:
		return "秋季：秋蟹、栗子、温补菜品"
	}
}
