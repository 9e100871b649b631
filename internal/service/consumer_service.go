package service

import (
	"context"
	"encoding/json"

	"menu-ai-be/internal/dto"
	"menu-ai-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains feedback events off the in-process bus and records
// them in the structured log. It is the audit trail for submitted feedback;
// nothing downstream depends on it.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	sysLogger logger.ILogger
}

func NewConsumerService(pubSub *gochannel.GoChannel, topicName string, sysLogger logger.ILogger) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		sysLogger: sysLogger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var payload dto.FeedbackRequest
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.sysLogger.Error("feedback", "failed to unmarshal feedback event", map[string]interface{}{
			"message_uuid": msg.UUID,
			"error":        err.Error(),
		})
		msg.Ack() // invalid payloads are not retriable
		return
	}

	cs.sysLogger.Info("feedback", "feedback received", map[string]interface{}{
		"feedback_id":   msg.UUID,
		"session_id":    payload.SessionId,
		"rating":        payload.Rating,
		"feedback_type": payload.FeedbackType,
	})
	msg.Ack()
}
