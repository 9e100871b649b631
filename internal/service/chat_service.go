package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"menu-ai-be/internal/dto"
	"menu-ai-be/internal/pkg/logger"
	"menu-ai-be/pkg/analyzer"
	"menu-ai-be/pkg/events"
	"menu-ai-be/pkg/fallback"
	"menu-ai-be/pkg/lexicon"
	"menu-ai-be/pkg/llm"
	pktNats "menu-ai-be/pkg/nats"
	"menu-ai-be/pkg/prompt"
	"menu-ai-be/pkg/session"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// ErrSessionNotFound surfaces as a 404 at the boundary.
var ErrSessionNotFound = errors.New("session not found")

// IChatService defines the conversational service interface
type IChatService interface {
	Chat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error)
	GetSession(sessionId string) (*dto.SessionSummaryResponse, error)
	DeleteSession(sessionId string) error
	CleanupSessions(maxAgeHours int) *dto.CleanupSessionsResponse
	AnalyzeIntent(message string) *dto.AnalyzeIntentResponse
	AnalyzeEmotion(message string) *dto.AnalyzeEmotionResponse
	ExtractEntities(message string) *dto.ExtractEntitiesResponse
	SubmitFeedback(ctx context.Context, request *dto.FeedbackRequest) (*dto.FeedbackResponse, error)
	ConversationMetrics(sessionId string) (*dto.ConversationMetricsResponse, error)
}

// chatService orchestrates one inbound message end to end: resolve session,
// run analyzers, pick the model or fallback path, commit the exchange.
type chatService struct {
	store         *session.Store
	llmProvider   llm.LLMProvider // nil means fallback-only mode
	llmTimeout    time.Duration
	sysLogger     logger.ILogger
	feedbackStore *cache.Cache
	pubSub        *gochannel.GoChannel
	feedbackTopic string
	natsPub       *pktNats.Publisher // optional, nil when NATS is not configured
}

func NewChatService(
	store *session.Store,
	llmProvider llm.LLMProvider,
	llmTimeout time.Duration,
	sysLogger logger.ILogger,
	feedbackStore *cache.Cache,
	pubSub *gochannel.GoChannel,
	feedbackTopic string,
	natsPub *pktNats.Publisher,
) IChatService {
	return &chatService{
		store:         store,
		llmProvider:   llmProvider,
		llmTimeout:    llmTimeout,
		sysLogger:     sysLogger,
		feedbackStore: feedbackStore,
		pubSub:        pubSub,
		feedbackTopic: feedbackTopic,
		natsPub:       natsPub,
	}
}

// Chat handles one inbound message. The chat endpoint never fails upstream
// errors through to the caller: a broken model call degrades to an apology
// reply that still carries everything computed during analysis.
func (cs *chatService) Chat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error) {
	// Resolve or create the session.
	existed := false
	if request.SessionId != "" {
		_, existed = cs.store.Get(request.SessionId)
	}
	sess := cs.store.GetOrCreate(request.SessionId, request.UserId)
	if !existed {
		cs.publishEvent(ctx, events.TypeSessionCreated, map[string]interface{}{
			"session_id": sess.ID(),
			"user_id":    request.UserId,
		})
	}

	// Every message is scored and extracted, whichever reply path it ends
	// up on, and the results land in the parallel histories.
	intents := analyzer.ScoreIntents(request.Message)
	emotions := analyzer.ScoreEmotions(request.Message)
	ents := analyzer.ExtractEntities(request.Message)
	sess.RecordAnalysis(intents, emotions, ents)
	sess.ApplyPreferences(request.Message, ents)

	userTurn := session.Turn{
		Role:          session.RoleUser,
		Content:       request.Message,
		Timestamp:     time.Now(),
		IntentScores:  intents,
		EmotionScores: emotions,
		Entities:      &ents,
	}

	var reply string
	if cs.llmProvider == nil {
		// No model configured: rule tree only.
		reply = fallback.Respond(fallback.Input{
			Message:       request.Message,
			IntentScores:  intents,
			EmotionScores: emotions,
			Entities:      ents,
			Preferences:   sess.CurrentPreferences(),
		})
	} else {
		// No session lock is held while the model call is in flight, only
		// around the snapshot before and the commit after.
		reply = cs.dispatchModel(ctx, sess, request.Message)
	}

	// Fallback exchanges are recorded too, so conversation_length means the
	// same thing on both paths.
	assistantTurn := session.Turn{
		Role:      session.RoleAssistant,
		Content:   reply,
		Timestamp: time.Now(),
	}
	sess.AppendExchange(userTurn, assistantTurn)

	snap := sess.Snapshot()
	return &dto.ChatResponse{
		Response:           reply,
		Recommendations:    []map[string]interface{}{},
		SessionId:          snap.ID,
		Preferences:        snap.Preferences,
		ConversationLength: len(snap.Turns),
		InteractionCount:   snap.InteractionCount,
		IntentScores:       intents,
		EmotionScores:      emotions,
		Entities:           ents,
	}, nil
}

// dispatchModel sends context + replayed history + the new message to the
// model. A single attempt, bounded by the configured timeout; any failure
// degrades to an apology embedding the error text.
func (cs *chatService) dispatchModel(ctx context.Context, sess *session.Session, userMessage string) string {
	snap := sess.Snapshot()

	messages := make([]llm.Message, 0, prompt.ReplayTurnLimit+2)
	messages = append(messages, llm.Message{
		Role:    "system",
		Content: prompt.NewContextualBuilder(snap).Build(),
	})
	messages = append(messages, prompt.ReplayMessages(snap.Turns)...)
	messages = append(messages, llm.Message{Role: "user", Content: userMessage})

	callCtx, cancel := context.WithTimeout(ctx, cs.llmTimeout)
	defer cancel()

	reply, err := cs.llmProvider.Chat(callCtx, messages)
	if err != nil {
		cs.sysLogger.Error("chat", "model call failed", map[string]interface{}{
			"session_id": snap.ID,
			"error":      err.Error(),
		})
		return fmt.Sprintf("抱歉，处理您的请求时出现了错误: %s", err.Error())
	}
	return reply
}

func (cs *chatService) GetSession(sessionId string) (*dto.SessionSummaryResponse, error) {
	sess, ok := cs.store.Get(sessionId)
	if !ok {
		return nil, ErrSessionNotFound
	}
	snap := sess.Snapshot()
	return &dto.SessionSummaryResponse{
		SessionId:          snap.ID,
		UserId:             snap.UserID,
		CreatedAt:          snap.CreatedAt,
		LastActive:         snap.LastActive,
		InteractionCount:   snap.InteractionCount,
		ConversationLength: len(snap.Turns),
		Preferences:        snap.Preferences,
	}, nil
}

func (cs *chatService) DeleteSession(sessionId string) error {
	if !cs.store.Delete(sessionId) {
		return ErrSessionNotFound
	}
	return nil
}

func (cs *chatService) CleanupSessions(maxAgeHours int) *dto.CleanupSessionsResponse {
	removed := cs.store.Cleanup(time.Duration(maxAgeHours) * time.Hour)
	cs.sysLogger.Info("session", "cleanup finished", map[string]interface{}{
		"removed_count": removed,
		"max_age_hours": maxAgeHours,
	})
	return &dto.CleanupSessionsResponse{
		RemovedCount: removed,
		MaxAgeHours:  maxAgeHours,
	}
}

// Analyzer pass-throughs: direct access to the heuristic analyzers outside
// any session context.

func (cs *chatService) AnalyzeIntent(message string) *dto.AnalyzeIntentResponse {
	scores := analyzer.ScoreIntents(message)
	return &dto.AnalyzeIntentResponse{
		IntentScores:  scores,
		PrimaryIntent: analyzer.Primary(scores, lexicon.IntentOrder),
	}
}

func (cs *chatService) AnalyzeEmotion(message string) *dto.AnalyzeEmotionResponse {
	scores := analyzer.ScoreEmotions(message)
	return &dto.AnalyzeEmotionResponse{
		EmotionScores:  scores,
		PrimaryEmotion: analyzer.Primary(scores, lexicon.EmotionOrder),
	}
}

func (cs *chatService) ExtractEntities(message string) *dto.ExtractEntitiesResponse {
	return &dto.ExtractEntitiesResponse{Entities: analyzer.ExtractEntities(message)}
}

// SubmitFeedback stores the record as telemetry and fans it out on the event
// bus. Feedback is not wired into preference scoring.
func (cs *chatService) SubmitFeedback(ctx context.Context, request *dto.FeedbackRequest) (*dto.FeedbackResponse, error) {
	feedbackId := uuid.NewString()
	cs.feedbackStore.Set(feedbackId, request, cache.DefaultExpiration)

	payload, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("marshal feedback: %w", err)
	}
	if err := cs.pubSub.Publish(cs.feedbackTopic, message.NewMessage(feedbackId, payload)); err != nil {
		cs.sysLogger.Warn("feedback", "failed to publish feedback event", map[string]interface{}{
			"feedback_id": feedbackId,
			"error":       err.Error(),
		})
	}

	cs.publishEvent(ctx, events.TypeFeedbackReceived, map[string]interface{}{
		"feedback_id": feedbackId,
		"session_id":  request.SessionId,
		"rating":      request.Rating,
	})

	return &dto.FeedbackResponse{FeedbackId: feedbackId}, nil
}

// ConversationMetrics reports session length. The quality fields have no
// measurement source yet and are returned as zeros.
func (cs *chatService) ConversationMetrics(sessionId string) (*dto.ConversationMetricsResponse, error) {
	sess, ok := cs.store.Get(sessionId)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &dto.ConversationMetricsResponse{
		SessionId:     sessionId,
		TotalMessages: sess.ConversationLength(),
	}, nil
}

// publishEvent sends a best-effort telemetry event to NATS when configured.
func (cs *chatService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	if cs.natsPub == nil {
		return
	}
	event := events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	if err := cs.natsPub.Publish(ctx, event); err != nil {
		cs.sysLogger.Warn("events", "failed to publish NATS event", map[string]interface{}{
			"event_type": eventType,
			"error":      err.Error(),
		})
	}
}
