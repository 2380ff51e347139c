package service

import (
	"context"
	"strings"

	"ai-notebook-be/internal/dto"
	"ai-notebook-be/internal/pkg/logger"
	"ai-notebook-be/internal/store"
	"ai-notebook-be/pkg/audio"
	"ai-notebook-be/pkg/gemini"
)

type IAudioService interface {
	GenerateOverview(ctx context.Context, req *dto.AudioOverviewRequest) (*dto.AudioOverviewResponse, error)
}

// audioService synthesizes a spoken overview of a notebook's sources. One
// request, one complete PCM payload back; a missing payload is terminal for
// the attempt.
type audioService struct {
	notebooks *store.NotebookStore
	gateway   AssistantGateway
	sequencer *requestSequencer
	logger    logger.ILogger
}

func NewAudioService(notebooks *store.NotebookStore, gateway AssistantGateway, log logger.ILogger) IAudioService {
	return &audioService{
		notebooks: notebooks,
		gateway:   gateway,
		sequencer: newRequestSequencer(),
		logger:    log,
	}
}

func (s *audioService) GenerateOverview(ctx context.Context, req *dto.AudioOverviewRequest) (*dto.AudioOverviewResponse, error) {
	nb, ok := s.notebooks.Get(req.NotebookId)
	if !ok {
		return nil, ErrNotebookNotFound
	}
	if len(nb.Sources) == 0 {
		return nil, &ValidationError{Field: "notebook_id", Reason: "notebook has no sources"}
	}

	seq := s.sequencer.Next(req.NotebookId, slotAudio)

	texts := make([]string, 0, len(nb.Sources))
	for _, src := range nb.Sources {
		texts = append(texts, src.Content)
	}

	pcm, err := s.gateway.SynthesizeAudio(ctx, strings.Join(texts, "\n\n"))
	if err != nil {
		s.logger.Error("Audio", "Audio synthesis failed", map[string]interface{}{
			"notebook_id": nb.Id,
			"error":       err.Error(),
		})
		return nil, err
	}

	if !s.sequencer.IsLatest(req.NotebookId, slotAudio, seq) {
		return nil, ErrStaleResponse
	}

	// Decode once to validate the payload and report the duration; the
	// client redecodes for playback.
	buf, err := audio.DecodePCM(pcm, gemini.AudioSampleRate, gemini.AudioChannels)
	if err != nil {
		return nil, &gemini.AudioGenerationError{Reason: err.Error()}
	}

	return &dto.AudioOverviewResponse{
		SampleRate: gemini.AudioSampleRate,
		Channels:   gemini.AudioChannels,
		Duration:   buf.Duration().Seconds(),
		PCM:        pcm,
	}, nil
}
