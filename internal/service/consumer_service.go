package service

import (
	"context"
	"encoding/json"

	"ai-notebook-be/internal/pkg/logger"
	"ai-notebook-be/internal/store"
	"ai-notebook-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService generates source summaries in the background. Summaries
// land in the summary cache, never in the notebook store, so this worker
// stays out of the single-writer path for notebook state.
type consumerService struct {
	pubSub      *gochannel.GoChannel
	notebooks   *store.NotebookStore
	summaries   *store.SummaryCache
	gateway     AssistantGateway
	broadcaster EventBroadcaster
	logger      logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	notebooks *store.NotebookStore,
	summaries *store.SummaryCache,
	gateway AssistantGateway,
	broadcaster EventBroadcaster,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:      pubSub,
		notebooks:   notebooks,
		summaries:   summaries,
		gateway:     gateway,
		broadcaster: broadcaster,
		logger:      log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, events.TopicSourceAdded)
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
	var payload events.SourceAddedPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("Consumer", "Failed to unmarshal source-added payload", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // ack invalid messages to prevent infinite redelivery
		return
	}

	nb, ok := cs.notebooks.Get(payload.NotebookId)
	if !ok {
		msg.Ack()
		return
	}

	var content string
	for _, src := range nb.Sources {
		if src.Id == payload.SourceId {
			content = src.Content
			break
		}
	}
	if content == "" {
		msg.Ack()
		return
	}

	summary, err := cs.gateway.SummarizeSource(ctx, content)
	if err != nil {
		// Summaries are best effort, the source stays usable without one.
		cs.logger.Warn("Consumer", "Source summarization failed", map[string]interface{}{
			"source_id": payload.SourceId,
			"error":     err.Error(),
		})
		msg.Ack()
		return
	}

	cs.summaries.Set(payload.SourceId, summary)
	cs.broadcaster.Broadcast(events.New(events.TypeSummaryReady, payload.NotebookId, map[string]interface{}{
		"source_id": payload.SourceId,
	}))

	msg.Ack()
}
