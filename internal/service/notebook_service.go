package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"ai-notebook-be/internal/constant"
	"ai-notebook-be/internal/dto"
	"ai-notebook-be/internal/entity"
	"ai-notebook-be/internal/pkg/logger"
	"ai-notebook-be/internal/store"
	"ai-notebook-be/pkg/events"
	"ai-notebook-be/pkg/extract"

	"github.com/google/uuid"
)

type INotebookService interface {
	GetAll(ctx context.Context) []*dto.NotebookListItemResponse
	Create(ctx context.Context, req *dto.CreateNotebookRequest) (*dto.CreateNotebookResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ShowNotebookResponse, error)
	Select(ctx context.Context, id uuid.UUID)
	Deselect(ctx context.Context)
	Rename(ctx context.Context, req *dto.RenameNotebookRequest) error
	AddSource(ctx context.Context, req *dto.AddSourceRequest) (*dto.AddSourceResponse, error)
}

type notebookService struct {
	notebooks   *store.NotebookStore
	summaries   *store.SummaryCache
	extractor   *extract.Extractor
	publisher   IPublisherService
	broadcaster EventBroadcaster
	logger      logger.ILogger
}

func NewNotebookService(
	notebooks *store.NotebookStore,
	summaries *store.SummaryCache,
	extractor *extract.Extractor,
	publisher IPublisherService,
	broadcaster EventBroadcaster,
	log logger.ILogger,
) INotebookService {
	return &notebookService{
		notebooks:   notebooks,
		summaries:   summaries,
		extractor:   extractor,
		publisher:   publisher,
		broadcaster: broadcaster,
		logger:      log,
	}
}

func (s *notebookService) GetAll(ctx context.Context) []*dto.NotebookListItemResponse {
	result := make([]*dto.NotebookListItemResponse, 0)
	for _, nb := range s.notebooks.List() {
		result = append(result, &dto.NotebookListItemResponse{
			Id:          nb.Id,
			Title:       nb.Title,
			Icon:        nb.Icon,
			BgColor:     nb.BgColor,
			SourceCount: len(nb.Sources),
			UpdatedAt:   nb.UpdatedAt,
		})
	}
	return result
}

// Create allocates a notebook seeded with a welcome message and, optionally,
// one initial source. The new notebook is prepended so the listing stays
// newest-first. Selection is left to the calling workflow.
func (s *notebookService) Create(ctx context.Context, req *dto.CreateNotebookRequest) (*dto.CreateNotebookResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = constant.DefaultNotebookTitle
	}

	now := time.Now()
	nb := &entity.Notebook{
		Id:        uuid.New(),
		Title:     title,
		Sources:   make([]*entity.Source, 0),
		Messages:  make([]*entity.Message, 0),
		UpdatedAt: now,
		Icon:      constant.DefaultNotebookIcon,
		BgColor:   constant.DefaultNotebookBgColor,
	}

	if req.FirstSource != nil {
		src, err := s.buildSource(ctx, &dto.AddSourceRequest{
			Title:   req.FirstSource.Title,
			Kind:    req.FirstSource.Kind,
			Content: req.FirstSource.Content,
			URL:     req.FirstSource.URL,
		}, now)
		if err != nil {
			return nil, err
		}
		nb.Sources = append(nb.Sources, src)
	}

	nb.AppendMessage(
		entity.MessageRoleAssistant,
		fmt.Sprintf(constant.WelcomeMessageTemplate, title),
		nil,
		now,
	)

	s.notebooks.Insert(nb)
	s.logger.Info("Notebook", "Notebook created", map[string]interface{}{
		"notebook_id": nb.Id,
		"title":       nb.Title,
	})

	for _, src := range nb.Sources {
		s.publishSourceAdded(nb.Id, src.Id)
	}

	return &dto.CreateNotebookResponse{Id: nb.Id}, nil
}

func (s *notebookService) Show(ctx context.Context, id uuid.UUID) (*dto.ShowNotebookResponse, error) {
	nb, ok := s.notebooks.Get(id)
	if !ok {
		return nil, ErrNotebookNotFound
	}

	res := &dto.ShowNotebookResponse{
		Id:        nb.Id,
		Title:     nb.Title,
		Icon:      nb.Icon,
		BgColor:   nb.BgColor,
		Sources:   make([]*dto.SourceResponse, 0, len(nb.Sources)),
		Messages:  make([]*dto.MessageResponse, 0, len(nb.Messages)),
		UpdatedAt: nb.UpdatedAt,
	}

	for _, src := range nb.Sources {
		summary := src.Summary
		if cached, found := s.summaries.Get(src.Id); found {
			summary = cached
		}
		res.Sources = append(res.Sources, &dto.SourceResponse{
			Id:      src.Id,
			Title:   src.Title,
			Kind:    string(src.Kind),
			Content: src.Content,
			Summary: summary,
			URL:     src.URL,
		})
	}

	for _, msg := range nb.Messages {
		res.Messages = append(res.Messages, &dto.MessageResponse{
			Seq:       msg.Seq,
			Role:      msg.Role,
			Content:   msg.Content,
			Citations: msg.Citations,
			CreatedAt: msg.CreatedAt,
		})
	}

	return res, nil
}

func (s *notebookService) Select(ctx context.Context, id uuid.UUID) {
	s.notebooks.Select(id)
}

func (s *notebookService) Deselect(ctx context.Context) {
	s.notebooks.Deselect()
}

func (s *notebookService) Rename(ctx context.Context, req *dto.RenameNotebookRequest) error {
	nb, ok := s.notebooks.Get(req.Id)
	if !ok {
		return ErrNotebookNotFound
	}

	nb.Title = req.Title
	nb.UpdatedAt = time.Now()
	s.notebooks.Update(nb)
	return nil
}

// AddSource appends one source to the notebook. Sources are immutable after
// this point; replacing content means adding a new source.
func (s *notebookService) AddSource(ctx context.Context, req *dto.AddSourceRequest) (*dto.AddSourceResponse, error) {
	nb, ok := s.notebooks.Get(req.NotebookId)
	if !ok {
		return nil, ErrNotebookNotFound
	}

	now := time.Now()
	src, err := s.buildSource(ctx, req, now)
	if err != nil {
		return nil, err
	}

	nb.AppendSource(src, now)
	s.notebooks.Update(nb)

	s.publishSourceAdded(nb.Id, src.Id)
	s.broadcaster.Broadcast(events.New(events.TypeSourceAdded, nb.Id, map[string]interface{}{
		"source_id": src.Id,
		"title":     src.Title,
	}))

	return &dto.AddSourceResponse{Id: src.Id}, nil
}

// buildSource validates the request and, for web sources supplied by URL
// only, runs readability extraction to obtain the content text.
func (s *notebookService) buildSource(ctx context.Context, req *dto.AddSourceRequest, now time.Time) (*entity.Source, error) {
	kind := entity.SourceKind(req.Kind)
	if !kind.Valid() {
		return nil, &ValidationError{Field: "kind", Reason: "unknown source kind " + req.Kind}
	}

	title := strings.TrimSpace(req.Title)
	content := req.Content

	if kind == entity.SourceKindWeb && strings.TrimSpace(content) == "" && req.URL != "" {
		article, err := s.extractor.FromURL(ctx, req.URL)
		if err != nil {
			return nil, &ValidationError{Field: "url", Reason: err.Error()}
		}
		content = article.Content
		if title == "" {
			title = article.Title
		}
	}

	if strings.TrimSpace(content) == "" {
		return nil, &ValidationError{Field: "content", Reason: "source content is empty"}
	}
	if title == "" {
		title = "Untitled source"
	}

	return &entity.Source{
		Id:        uuid.New(),
		Title:     title,
		Kind:      kind,
		Content:   content,
		URL:       req.URL,
		CreatedAt: now,
	}, nil
}

func (s *notebookService) publishSourceAdded(notebookId, sourceId uuid.UUID) {
	payload, _ := json.Marshal(events.SourceAddedPayload{
		NotebookId: notebookId,
		SourceId:   sourceId,
	})
	if err := s.publisher.Publish(events.TopicSourceAdded, payload); err != nil {
		s.logger.Warn("Notebook", "Failed to publish source-added event", map[string]interface{}{
			"source_id": sourceId,
			"error":     err.Error(),
		})
	}
}
