package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"ai-notebook-be/internal/entity"
	"ai-notebook-be/internal/store"
	"ai-notebook-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConsumerFixture(gw *fakeGateway) (IConsumerService, *gochannel.GoChannel, *store.NotebookStore, *store.SummaryCache, *recordingBroadcaster) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	notebooks := store.NewNotebookStore()
	summaries := store.NewSummaryCache(time.Hour)
	broadcaster := &recordingBroadcaster{}
	svc := NewConsumerService(pubSub, notebooks, summaries, gw, broadcaster, nopLogger{})
	return svc, pubSub, notebooks, summaries, broadcaster
}

func publishSourceAdded(t *testing.T, pubSub *gochannel.GoChannel, payload events.SourceAddedPayload) {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	require.NoError(t, pubSub.Publish(events.TopicSourceAdded, message.NewMessage(watermill.NewUUID(), data)))
}

func TestConsumerSummarizesWithoutTouchingMessages(t *testing.T) {
	gw := &fakeGateway{summary: "condensed source"}
	svc, pubSub, notebooks, summaries, broadcaster := newConsumerFixture(gw)

	nb := seedNotebook(notebooks, "Alpha")
	working, _ := notebooks.Get(nb.Id)
	working.AppendMessage(entity.MessageRoleAssistant, "welcome", nil, time.Now())
	notebooks.Update(working)

	require.NoError(t, svc.Consume(context.Background()))
	publishSourceAdded(t, pubSub, events.SourceAddedPayload{
		NotebookId: nb.Id,
		SourceId:   nb.Sources[0].Id,
	})

	require.Eventually(t, func() bool {
		_, found := summaries.Get(nb.Sources[0].Id)
		return found
	}, 2*time.Second, 10*time.Millisecond)

	summary, _ := summaries.Get(nb.Sources[0].Id)
	assert.Equal(t, "condensed source", summary)

	// The summary lives in the cache only; the notebook aggregate, and in
	// particular its conversation, is untouched.
	stored, _ := notebooks.Get(nb.Id)
	require.Len(t, stored.Messages, 1)
	assert.Equal(t, "welcome", stored.Messages[0].Content)
	assert.Empty(t, stored.Sources[0].Summary)

	require.Eventually(t, func() bool {
		return len(broadcaster.byType(events.TypeSummaryReady)) == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestConsumerSummaryFailureIsBestEffort(t *testing.T) {
	gw := &fakeGateway{summaryErr: errors.New("backend down")}
	svc, pubSub, notebooks, summaries, broadcaster := newConsumerFixture(gw)
	nb := seedNotebook(notebooks, "Alpha")

	require.NoError(t, svc.Consume(context.Background()))
	publishSourceAdded(t, pubSub, events.SourceAddedPayload{
		NotebookId: nb.Id,
		SourceId:   nb.Sources[0].Id,
	})

	require.Eventually(t, func() bool {
		gw.mu.Lock()
		defer gw.mu.Unlock()
		return gw.summaryCalls == 1
	}, 2*time.Second, 10*time.Millisecond)

	_, found := summaries.Get(nb.Sources[0].Id)
	assert.False(t, found)
	assert.Empty(t, broadcaster.byType(events.TypeSummaryReady))
}

func TestConsumerIgnoresUnknownNotebook(t *testing.T) {
	gw := &fakeGateway{summary: "for the known one"}
	svc, pubSub, notebooks, summaries, _ := newConsumerFixture(gw)
	nb := seedNotebook(notebooks, "Alpha")

	require.NoError(t, svc.Consume(context.Background()))

	// An event for a notebook the store never held, then a valid one. The
	// unknown event is skipped; the valid one still gets its summary.
	publishSourceAdded(t, pubSub, events.SourceAddedPayload{
		NotebookId: uuid.New(),
		SourceId:   uuid.New(),
	})
	publishSourceAdded(t, pubSub, events.SourceAddedPayload{
		NotebookId: nb.Id,
		SourceId:   nb.Sources[0].Id,
	})

	require.Eventually(t, func() bool {
		_, found := summaries.Get(nb.Sources[0].Id)
		return found
	}, 2*time.Second, 10*time.Millisecond)

	gw.mu.Lock()
	defer gw.mu.Unlock()
	assert.Equal(t, 1, gw.summaryCalls)
}
