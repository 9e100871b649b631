package dto

import (
	"time"

	"menu-ai-be/pkg/analyzer"
	"menu-ai-be/pkg/session"
)

type ChatRequest struct {
	Message   string `json:"message" validate:"required"`
	UserId    string `json:"user_id,omitempty"`
	SessionId string `json:"session_id,omitempty"`
}

// ChatResponse always carries the analysis computed for the message, even
// when the reply came from the fallback path or a failed model call.
type ChatResponse struct {
	Response           string                   `json:"response"`
	Recommendations    []map[string]interface{} `json:"recommendations"`
	SessionId          string                   `json:"session_id"`
	Preferences        session.Preferences      `json:"preferences"`
	ConversationLength int                      `json:"conversation_length"`
	InteractionCount   int                      `json:"interaction_count"`
	IntentScores       map[string]float64       `json:"intent_scores"`
	EmotionScores      map[string]float64       `json:"emotion_scores"`
	Entities           analyzer.Entities        `json:"entities"`
}

type AnalyzeRequest struct {
	Message string `json:"message" validate:"required"`
}

type AnalyzeIntentResponse struct {
	IntentScores  map[string]float64 `json:"intent_scores"`
	PrimaryIntent string             `json:"primary_intent,omitempty"`
}

type AnalyzeEmotionResponse struct {
	EmotionScores  map[string]float64 `json:"emotion_scores"`
	PrimaryEmotion string             `json:"primary_emotion,omitempty"`
}

type ExtractEntitiesResponse struct {
	Entities analyzer.Entities `json:"entities"`
}

type SessionSummaryResponse struct {
	SessionId          string              `json:"session_id"`
	UserId             string              `json:"user_id,omitempty"`
	CreatedAt          time.Time           `json:"created_at"`
	LastActive         time.Time           `json:"last_active"`
	InteractionCount   int                 `json:"interaction_count"`
	ConversationLength int                 `json:"conversation_length"`
	Preferences        session.Preferences `json:"preferences"`
}

type CleanupSessionsResponse struct {
	RemovedCount int `json:"removed_count"`
	MaxAgeHours  int `json:"max_age_hours"`
}

type FeedbackRequest struct {
	SessionId    string `json:"session_id" validate:"required"`
	MessageId    string `json:"message_id,omitempty"`
	Rating       int    `json:"rating" validate:"required,min=1,max=5"`
	FeedbackType string `json:"feedback_type,omitempty"`
	Comment      string `json:"comment,omitempty"`
}

type FeedbackResponse struct {
	FeedbackId string `json:"feedback_id"`
}

// ConversationMetricsResponse reports session length plus quality metrics.
// Satisfaction, response time and accuracy have no measurement pipeline yet
// and are always zero.
type ConversationMetricsResponse struct {
	SessionId              string  `json:"session_id"`
	TotalMessages          int     `json:"total_messages"`
	UserSatisfactionScore  float64 `json:"user_satisfaction_score"`
	AverageResponseTime    float64 `json:"average_response_time"`
	RecommendationAccuracy float64 `json:"recommendation_accuracy"`
}
