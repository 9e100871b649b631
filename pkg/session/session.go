package session

import (
	"sync"
	"time"

	"menu-ai-be/pkg/analyzer"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one message in a conversation. User turns carry the analysis
// computed for them; assistant turns carry only text.
type Turn struct {
	Role          string             `json:"role"`
	Content       string             `json:"content"`
	Timestamp     time.Time          `json:"timestamp"`
	IntentScores  map[string]float64 `json:"intent_scores,omitempty"`
	EmotionScores map[string]float64 `json:"emotion_scores,omitempty"`
	Entities      *analyzer.Entities `json:"entities,omitempty"`
}

// Preferences is the sticky, accumulated preference state of one session.
// Fields only ever change when a message carries a non-empty signal for them.
type Preferences struct {
	CuisinePreference   []string `json:"cuisine_preference,omitempty"`
	TastePreferences    []string `json:"taste_preferences,omitempty"`
	DietaryRestrictions []string `json:"dietary_restrictions,omitempty"`
	BudgetPreference    string   `json:"budget_preference,omitempty"`
	MealTime            string   `json:"meal_time,omitempty"`
	GroupSize           int      `json:"group_size,omitempty"`
	Occasion            string   `json:"occasion,omitempty"`
}

// IsEmpty reports whether no preference has been accumulated yet.
func (p Preferences) IsEmpty() bool {
	return len(p.CuisinePreference) == 0 &&
		len(p.TastePreferences) == 0 &&
		len(p.DietaryRestrictions) == 0 &&
		p.BudgetPreference == "" &&
		p.MealTime == "" &&
		p.GroupSize == 0 &&
		p.Occasion == ""
}

// Session holds the full in-memory state of one conversation. All mutation
// goes through methods that take the session mutex, so two messages for the
// same key arriving concurrently cannot lose counter increments or history
// appends. The turn list is append-only for the session's lifetime.
type Session struct {
	mu sync.Mutex

	id               string
	userID           string
	createdAt        time.Time
	lastActive       time.Time
	interactionCount int

	turns          []Turn
	preferences    Preferences
	intentHistory  []map[string]float64
	emotionHistory []map[string]float64
	entityHistory  []analyzer.Entities
}

func newSession(id, userID string, now time.Time) *Session {
	return &Session{
		id:               id,
		userID:           userID,
		createdAt:        now,
		lastActive:       now,
		interactionCount: 1, // the creating message is the first interaction
	}
}

func (s *Session) ID() string { return s.id }

// touch marks activity for a subsequent message. Creation already counts as
// the first interaction, so N chat calls yield an interaction count of N.
func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = now
	s.interactionCount++
}

// RecordAnalysis appends the per-message analysis to the three parallel
// histories. This happens for every inbound message, fallback path included.
func (s *Session) RecordAnalysis(intents, emotions map[string]float64, ents analyzer.Entities) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.intentHistory = append(s.intentHistory, intents)
	s.emotionHistory = append(s.emotionHistory, emotions)
	s.entityHistory = append(s.entityHistory, ents)
}

// AppendExchange commits a completed user/assistant turn pair, user first.
func (s *Session) AppendExchange(userTurn, assistantTurn Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = append(s.turns, userTurn, assistantTurn)
}

// RecentTurns returns a copy of the most recent n turns, oldest first.
func (s *Session) RecentTurns(n int) []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	start := len(s.turns) - n
	if start < 0 {
		start = 0
	}
	out := make([]Turn, len(s.turns)-start)
	copy(out, s.turns[start:])
	return out
}

func (s *Session) ConversationLength() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.turns)
}

func (s *Session) lastActiveAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// Snapshot is a point-in-time, lock-free copy of a session used for response
// building and context construction. Score maps are shared but append-only
// by convention, never mutated after being recorded.
type Snapshot struct {
	ID               string               `json:"session_id"`
	UserID           string               `json:"user_id,omitempty"`
	CreatedAt        time.Time            `json:"created_at"`
	LastActive       time.Time            `json:"last_active"`
	InteractionCount int                  `json:"interaction_count"`
	Turns            []Turn               `json:"turns"`
	Preferences      Preferences          `json:"preferences"`
	IntentHistory    []map[string]float64 `json:"intent_history"`
	EmotionHistory   []map[string]float64 `json:"emotion_history"`
	EntityHistory    []analyzer.Entities  `json:"entity_history"`
}

// Snapshot copies the session state under the session lock.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	turns := make([]Turn, len(s.turns))
	copy(turns, s.turns)
	intents := make([]map[string]float64, len(s.intentHistory))
	copy(intents, s.intentHistory)
	emotions := make([]map[string]float64, len(s.emotionHistory))
	copy(emotions, s.emotionHistory)
	ents := make([]analyzer.Entities, len(s.entityHistory))
	copy(ents, s.entityHistory)

	prefs := s.preferences
	prefs.CuisinePreference = append([]string(nil), s.preferences.CuisinePreference...)
	prefs.TastePreferences = append([]string(nil), s.preferences.TastePreferences...)
	prefs.DietaryRestrictions = append([]string(nil), s.preferences.DietaryRestrictions...)

	return Snapshot{
		ID:               s.id,
		UserID:           s.userID,
		CreatedAt:        s.createdAt,
		LastActive:       s.lastActive,
		InteractionCount: s.interactionCount,
		Turns:            turns,
		Preferences:      prefs,
		IntentHistory:    intents,
		EmotionHistory:   emotions,
		EntityHistory:    ents,
	}
}
