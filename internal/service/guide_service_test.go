package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"ai-notebook-be/internal/dto"
	"ai-notebook-be/internal/store"
	"ai-notebook-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuideFixture(gw *fakeGateway) (IGuideService, *store.NotebookStore, *recordingBroadcaster) {
	notebooks := store.NewNotebookStore()
	guides := store.NewGuideStore(time.Hour)
	broadcaster := &recordingBroadcaster{}
	svc := NewGuideService(notebooks, guides, gw, broadcaster, nopLogger{})
	return svc, notebooks, broadcaster
}

func TestGenerateGuideSavesAndBroadcasts(t *testing.T) {
	gw := &fakeGateway{guideContent: map[string]interface{}{
		"title": "Key Concepts Mindmap",
		"nodes": []interface{}{"root"},
	}}
	svc, notebooks, broadcaster := newGuideFixture(gw)
	nb := seedNotebook(notebooks, "Alpha")

	resp, err := svc.Generate(context.Background(), &dto.GenerateGuideRequest{
		NotebookId: nb.Id,
		GuideType:  "mindmap",
	})
	require.NoError(t, err)
	assert.Equal(t, "mindmap", resp.GuideType)
	assert.Equal(t, "Key Concepts Mindmap", resp.Title)

	listed, err := svc.ListByNotebook(context.Background(), nb.Id)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, resp.Id, listed[0].Id)

	assert.Len(t, broadcaster.byType(events.TypeGuideCompleted), 1)
}

func TestGenerateGuideTitleFallback(t *testing.T) {
	gw := &fakeGateway{guideContent: map[string]interface{}{"cards": []interface{}{}}}
	svc, notebooks, _ := newGuideFixture(gw)
	nb := seedNotebook(notebooks, "Alpha")

	resp, err := svc.Generate(context.Background(), &dto.GenerateGuideRequest{
		NotebookId: nb.Id,
		GuideType:  "flashcards",
	})
	require.NoError(t, err)
	assert.Equal(t, "flashcards for Test notebook", resp.Title)
}

func TestGenerateGuideRejectsUnknownType(t *testing.T) {
	svc, notebooks, _ := newGuideFixture(&fakeGateway{})
	nb := seedNotebook(notebooks, "Alpha")

	_, err := svc.Generate(context.Background(), &dto.GenerateGuideRequest{
		NotebookId: nb.Id,
		GuideType:  "podcast",
	})
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestGenerateGuideRequiresSources(t *testing.T) {
	svc, notebooks, _ := newGuideFixture(&fakeGateway{})
	nb := seedNotebook(notebooks)

	_, err := svc.Generate(context.Background(), &dto.GenerateGuideRequest{
		NotebookId: nb.Id,
		GuideType:  "quiz",
	})
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestGenerateGuideFailureBroadcasts(t *testing.T) {
	gw := &fakeGateway{guideErr: errors.New("backend down")}
	svc, notebooks, broadcaster := newGuideFixture(gw)
	nb := seedNotebook(notebooks, "Alpha")

	_, err := svc.Generate(context.Background(), &dto.GenerateGuideRequest{
		NotebookId: nb.Id,
		GuideType:  "reports",
	})
	require.Error(t, err)
	assert.Len(t, broadcaster.byType(events.TypeGuideFailed), 1)
	assert.Empty(t, broadcaster.byType(events.TypeGuideCompleted))
}

func TestGenerateGuideDiscardsSupersededResponse(t *testing.T) {
	gw := &fakeGateway{guideContent: map[string]interface{}{"title": "First"}}
	svc, notebooks, _ := newGuideFixture(gw)
	nb := seedNotebook(notebooks, "Alpha")

	// While the first request is at the gateway, a second one for the same
	// notebook completes; the first result must be dropped.
	gw.guideHook = func() {
		gw.mu.Lock()
		gw.guideHook = nil
		gw.guideContent = map[string]interface{}{"title": "Second"}
		gw.mu.Unlock()

		_, err := svc.Generate(context.Background(), &dto.GenerateGuideRequest{
			NotebookId: nb.Id,
			GuideType:  "quiz",
		})
		require.NoError(t, err)
	}

	_, err := svc.Generate(context.Background(), &dto.GenerateGuideRequest{
		NotebookId: nb.Id,
		GuideType:  "quiz",
	})
	assert.ErrorIs(t, err, ErrStaleResponse)

	listed, err := svc.ListByNotebook(context.Background(), nb.Id)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Second", listed[0].Title)
}

func TestListGuidesUnknownNotebook(t *testing.T) {
	svc, _, _ := newGuideFixture(&fakeGateway{})

	_, err := svc.ListByNotebook(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotebookNotFound)
}
