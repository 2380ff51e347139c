package store

import (
	"testing"
	"time"

	"ai-notebook-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuideStoreListsNewestFirst(t *testing.T) {
	s := NewGuideStore(time.Hour)
	notebookId := uuid.New()
	base := time.Now()

	for i := 0; i < 3; i++ {
		s.Save(&entity.Guide{
			Id:         uuid.New(),
			NotebookId: notebookId,
			Type:       entity.GuideTypeQuiz,
			Title:      "guide",
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		})
	}

	listed := s.ListByNotebook(notebookId)
	require.Len(t, listed, 3)
	assert.True(t, listed[0].CreatedAt.After(listed[1].CreatedAt))
	assert.True(t, listed[1].CreatedAt.After(listed[2].CreatedAt))
}

func TestGuideStoreIsolatesNotebooks(t *testing.T) {
	s := NewGuideStore(time.Hour)
	a, b := uuid.New(), uuid.New()

	s.Save(&entity.Guide{Id: uuid.New(), NotebookId: a, Type: entity.GuideTypeMindmap, CreatedAt: time.Now()})

	assert.Len(t, s.ListByNotebook(a), 1)
	assert.Empty(t, s.ListByNotebook(b))
}

func TestSummaryCacheRoundTrip(t *testing.T) {
	c := NewSummaryCache(time.Hour)
	sourceId := uuid.New()

	_, found := c.Get(sourceId)
	assert.False(t, found)

	c.Set(sourceId, "summary text")
	got, found := c.Get(sourceId)
	require.True(t, found)
	assert.Equal(t, "summary text", got)
}
