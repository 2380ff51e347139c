package service

import (
	"context"
	"testing"

	"ai-notebook-be/internal/dto"
	"ai-notebook-be/internal/store"
	"ai-notebook-be/pkg/gemini"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOverviewReturnsDecodedMetadata(t *testing.T) {
	// 24000 frames of silence, 16-bit mono, exactly one second.
	pcm := make([]byte, gemini.AudioSampleRate*2)
	gw := &fakeGateway{audioPCM: pcm}
	notebooks := store.NewNotebookStore()
	svc := NewAudioService(notebooks, gw, nopLogger{})
	nb := seedNotebook(notebooks, "Alpha")

	resp, err := svc.GenerateOverview(context.Background(), &dto.AudioOverviewRequest{NotebookId: nb.Id})
	require.NoError(t, err)
	assert.Equal(t, gemini.AudioSampleRate, resp.SampleRate)
	assert.Equal(t, gemini.AudioChannels, resp.Channels)
	assert.InDelta(t, 1.0, resp.Duration, 0.001)
	assert.Equal(t, pcm, resp.PCM)
}

func TestGenerateOverviewRejectsMalformedPayload(t *testing.T) {
	gw := &fakeGateway{audioPCM: []byte{0x01}} // odd length, not 16-bit frames
	notebooks := store.NewNotebookStore()
	svc := NewAudioService(notebooks, gw, nopLogger{})
	nb := seedNotebook(notebooks, "Alpha")

	_, err := svc.GenerateOverview(context.Background(), &dto.AudioOverviewRequest{NotebookId: nb.Id})
	var audioErr *gemini.AudioGenerationError
	assert.ErrorAs(t, err, &audioErr)
}

func TestGenerateOverviewRequiresSources(t *testing.T) {
	notebooks := store.NewNotebookStore()
	svc := NewAudioService(notebooks, &fakeGateway{}, nopLogger{})
	nb := seedNotebook(notebooks)

	_, err := svc.GenerateOverview(context.Background(), &dto.AudioOverviewRequest{NotebookId: nb.Id})
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestGenerateOverviewUnknownNotebook(t *testing.T) {
	svc := NewAudioService(store.NewNotebookStore(), &fakeGateway{}, nopLogger{})

	_, err := svc.GenerateOverview(context.Background(), &dto.AudioOverviewRequest{NotebookId: uuid.New()})
	assert.ErrorIs(t, err, ErrNotebookNotFound)
}
