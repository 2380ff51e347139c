package service

import (
	"context"
	"fmt"
	"time"

	"ai-notebook-be/internal/dto"
	"ai-notebook-be/internal/entity"
	"ai-notebook-be/internal/pkg/logger"
	"ai-notebook-be/internal/store"
	"ai-notebook-be/pkg/events"

	"github.com/google/uuid"
)

type IGuideService interface {
	Generate(ctx context.Context, req *dto.GenerateGuideRequest) (*dto.GuideResponse, error)
	ListByNotebook(ctx context.Context, notebookId uuid.UUID) ([]*dto.GuideResponse, error)
}

// guideService produces detached guide artifacts. Guides never touch the
// message list, so generation may overlap an in-flight chat turn freely.
type guideService struct {
	notebooks   *store.NotebookStore
	guides      *store.GuideStore
	gateway     AssistantGateway
	broadcaster EventBroadcaster
	sequencer   *requestSequencer
	logger      logger.ILogger
}

func NewGuideService(
	notebooks *store.NotebookStore,
	guides *store.GuideStore,
	gateway AssistantGateway,
	broadcaster EventBroadcaster,
	log logger.ILogger,
) IGuideService {
	return &guideService{
		notebooks:   notebooks,
		guides:      guides,
		gateway:     gateway,
		broadcaster: broadcaster,
		sequencer:   newRequestSequencer(),
		logger:      log,
	}
}

func (s *guideService) Generate(ctx context.Context, req *dto.GenerateGuideRequest) (*dto.GuideResponse, error) {
	guideType := entity.GuideType(req.GuideType)
	if !guideType.Valid() {
		return nil, &ValidationError{Field: "guide_type", Reason: "unknown guide type " + req.GuideType}
	}

	nb, ok := s.notebooks.Get(req.NotebookId)
	if !ok {
		return nil, ErrNotebookNotFound
	}
	if len(nb.Sources) == 0 {
		return nil, &ValidationError{Field: "notebook_id", Reason: "notebook has no sources"}
	}

	seq := s.sequencer.Next(req.NotebookId, slotGuide)

	content, err := s.gateway.GenerateGuide(ctx, string(guideType), sourceContexts(nb.Sources))
	if err != nil {
		s.logger.Error("Guide", "Guide generation failed", map[string]interface{}{
			"notebook_id": nb.Id,
			"guide_type":  guideType,
			"error":       err.Error(),
		})
		s.broadcaster.Broadcast(events.New(events.TypeGuideFailed, nb.Id, map[string]interface{}{
			"guide_type": string(guideType),
		}))
		return nil, err
	}

	// A guide for a deleted notebook or a superseded request is dropped.
	if _, ok := s.notebooks.Get(req.NotebookId); !ok {
		return nil, ErrStaleResponse
	}
	if !s.sequencer.IsLatest(req.NotebookId, slotGuide, seq) {
		return nil, ErrStaleResponse
	}

	guide := &entity.Guide{
		Id:         uuid.New(),
		NotebookId: nb.Id,
		Type:       guideType,
		Title:      guideTitle(content, guideType, nb.Title),
		Content:    content,
		CreatedAt:  time.Now(),
	}
	s.guides.Save(guide)

	s.broadcaster.Broadcast(events.New(events.TypeGuideCompleted, nb.Id, map[string]interface{}{
		"guide_id":   guide.Id,
		"guide_type": string(guideType),
	}))

	return guideResponse(guide), nil
}

func (s *guideService) ListByNotebook(ctx context.Context, notebookId uuid.UUID) ([]*dto.GuideResponse, error) {
	if _, ok := s.notebooks.Get(notebookId); !ok {
		return nil, ErrNotebookNotFound
	}

	guides := s.guides.ListByNotebook(notebookId)
	result := make([]*dto.GuideResponse, 0, len(guides))
	for _, guide := range guides {
		result = append(result, guideResponse(guide))
	}
	return result, nil
}

// guideTitle prefers a title the model put into the payload, falling back to
// a label derived from the notebook.
func guideTitle(content map[string]interface{}, guideType entity.GuideType, notebookTitle string) string {
	if title, ok := content["title"].(string); ok && title != "" {
		return title
	}
	return fmt.Sprintf("%s for %s", guideType, notebookTitle)
}

func guideResponse(guide *entity.Guide) *dto.GuideResponse {
	return &dto.GuideResponse{
		Id:         guide.Id,
		NotebookId: guide.NotebookId,
		GuideType:  string(guide.Type),
		Title:      guide.Title,
		Content:    guide.Content,
		CreatedAt:  guide.CreatedAt,
	}
}
