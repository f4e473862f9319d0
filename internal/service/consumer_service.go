package service

import (
	"context"
	"encoding/json"
	"log"

	"hr-assistant-be/internal/dto"
	"hr-assistant-be/pkg/events"
	pktNats "hr-assistant-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the in-process bus and forwards completed-turn
// messages to the NATS event stream for the portal's analytics consumers.
type consumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	eventPublisher *pktNats.Publisher
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	eventPublisher *pktNats.Publisher,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		eventPublisher: eventPublisher,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishTurnCompletedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal turn message: %v", err)
		msg.Ack() // malformed messages would retry forever otherwise
		return
	}

	if cs.eventPublisher == nil {
		msg.Ack()
		return
	}

	evt := events.NewTurnCompleted(payload.SessionId, payload.UserId, payload.Intent, payload.ProcessingTimeMs)
	if err := cs.eventPublisher.Publish(ctx, evt); err != nil {
		log.Printf("[ERROR] Failed to forward TURN_COMPLETED event: %v", err)
		msg.Nack() // retriable: NATS may be reconnecting
		return
	}

	if payload.DocumentType != "" {
		docEvt := events.NewDocumentGenerated(payload.UserId, payload.DocumentType, payload.FileUrl, payload.AiModelUsed)
		if err := cs.eventPublisher.Publish(ctx, docEvt); err != nil {
			log.Printf("[ERROR] Failed to forward DOCUMENT_GENERATED event: %v", err)
			msg.Nack()
			return
		}
	}

	msg.Ack()
}
