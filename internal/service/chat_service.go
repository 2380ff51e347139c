package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"ai-notebook-be/internal/dto"
	"ai-notebook-be/internal/entity"
	"ai-notebook-be/internal/pkg/logger"
	"ai-notebook-be/internal/store"
	"ai-notebook-be/pkg/citation"
	"ai-notebook-be/pkg/events"
	"ai-notebook-be/pkg/gemini"

	"github.com/google/uuid"
)

type IChatService interface {
	SendChat(ctx context.Context, req *dto.SendChatRequest) (*dto.SendChatResponse, error)
}

// chatService owns the message merge protocol. At most one chat turn is in
// flight per notebook; a second attempt is rejected rather than interleaved,
// which keeps the message ordering invariant without any queueing.
type chatService struct {
	notebooks   *store.NotebookStore
	gateway     AssistantGateway
	broadcaster EventBroadcaster
	sequencer   *requestSequencer
	logger      logger.ILogger

	mu       sync.Mutex
	inflight map[uuid.UUID]bool
}

func NewChatService(
	notebooks *store.NotebookStore,
	gateway AssistantGateway,
	broadcaster EventBroadcaster,
	log logger.ILogger,
) IChatService {
	return &chatService{
		notebooks:   notebooks,
		gateway:     gateway,
		broadcaster: broadcaster,
		sequencer:   newRequestSequencer(),
		logger:      log,
		inflight:    make(map[uuid.UUID]bool),
	}
}

func (s *chatService) SendChat(ctx context.Context, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		// Rejected before any state mutation or gateway call.
		return nil, &ValidationError{Field: "query", Reason: "query is empty"}
	}

	nb, ok := s.notebooks.Get(req.NotebookId)
	if !ok {
		return nil, ErrNotebookNotFound
	}

	if !s.tryAcquire(req.NotebookId) {
		return nil, ErrChatBusy
	}
	defer s.release(req.NotebookId)

	seq := s.sequencer.Next(req.NotebookId, slotChat)

	// Whether the notebook held the selection when the turn started. The
	// active-notebook stale check only applies in that case; a turn on an
	// unselected notebook merges normally.
	activeAtSend := false
	if activeId, selected := s.notebooks.ActiveId(); selected && activeId == req.NotebookId {
		activeAtSend = true
	}

	// The user message is appended before the gateway call; on failure it
	// stays and no assistant reply appears.
	now := time.Now()
	userMsg := nb.AppendMessage(entity.MessageRoleUser, query, nil, now)
	s.notebooks.Update(nb)

	s.broadcaster.Broadcast(events.New(events.TypeMessageAppended, nb.Id, map[string]interface{}{
		"seq":  userMsg.Seq,
		"role": userMsg.Role,
	}))
	s.broadcaster.Broadcast(events.New(events.TypeAssistantResponding, nb.Id, map[string]interface{}{
		"responding": true,
	}))
	defer s.broadcaster.Broadcast(events.New(events.TypeAssistantResponding, nb.Id, map[string]interface{}{
		"responding": false,
	}))

	// Sources and history are snapshotted at send time, so the citation
	// indexes in the answer align with the source ordering the backend saw.
	// The gateway appends the query as the final turn itself, so history
	// excludes the message appended above.
	snapshot := nb.Sources
	sources := sourceContexts(snapshot)
	prior := nb.Messages[:len(nb.Messages)-1]
	history := make([]gemini.Turn, 0, len(prior))
	for _, msg := range prior {
		history = append(history, gemini.Turn{Role: msg.Role, Content: msg.Content})
	}

	answer, err := s.gateway.ChatWithSources(ctx, query, sources, history)
	if err != nil {
		s.logger.Error("Chat", "Gateway chat turn failed", map[string]interface{}{
			"notebook_id": nb.Id,
			"error":       err.Error(),
		})
		return nil, err
	}

	// Stale-response guard: the answer is discarded when the notebook is
	// gone, lost the selection it held at send time, or a newer request
	// superseded this one.
	fresh, ok := s.notebooks.Get(req.NotebookId)
	if !ok {
		return nil, ErrStaleResponse
	}
	if activeAtSend {
		if activeId, selected := s.notebooks.ActiveId(); !selected || activeId != req.NotebookId {
			return nil, ErrStaleResponse
		}
	}
	if !s.sequencer.IsLatest(req.NotebookId, slotChat, seq) {
		return nil, ErrStaleResponse
	}

	// Citations resolve against the send-time snapshot. A marker beyond it
	// stays unresolved even when sources arrived mid-flight, since the model
	// never saw those.
	citations := citationIds(answer, snapshot)
	replyMsg := fresh.AppendMessage(entity.MessageRoleAssistant, answer, citations, time.Now())
	s.notebooks.Update(fresh)

	s.broadcaster.Broadcast(events.New(events.TypeMessageAppended, fresh.Id, map[string]interface{}{
		"seq":  replyMsg.Seq,
		"role": replyMsg.Role,
	}))

	return &dto.SendChatResponse{
		NotebookId: fresh.Id,
		Sent:       turnResponse(userMsg, nil),
		Reply:      turnResponse(replyMsg, citationDTOs(answer, snapshot)),
	}, nil
}

func (s *chatService) tryAcquire(notebookId uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inflight[notebookId] {
		return false
	}
	s.inflight[notebookId] = true
	return true
}

func (s *chatService) release(notebookId uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, notebookId)
}

func sourceContexts(sources []*entity.Source) []gemini.SourceContext {
	contexts := make([]gemini.SourceContext, 0, len(sources))
	for _, src := range sources {
		contexts = append(contexts, gemini.SourceContext{
			Title:   src.Title,
			Content: src.Content,
		})
	}
	return contexts
}

// citationIds maps the answer's [n] markers onto source ids, dropping
// out-of-range markers. The in-text markers stay in the content either way;
// rendering an unresolved marker is a presentation concern.
func citationIds(answer string, sources []*entity.Source) []uuid.UUID {
	ids := make([]uuid.UUID, 0)
	for _, idx := range citation.Markers(answer) {
		if idx >= 1 && idx <= len(sources) {
			ids = append(ids, sources[idx-1].Id)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	return ids
}

func citationDTOs(answer string, sources []*entity.Source) []dto.CitationDTO {
	titles := make([]string, 0, len(sources))
	for _, src := range sources {
		titles = append(titles, src.Title)
	}

	resolved := citation.Resolve(answer, titles)
	if len(resolved) == 0 {
		return nil
	}

	result := make([]dto.CitationDTO, 0, len(resolved))
	for _, c := range resolved {
		item := dto.CitationDTO{
			Index:    c.Index,
			Title:    c.SourceTitle,
			Resolved: c.Resolved,
		}
		if c.Resolved {
			item.SourceId = sources[c.Index-1].Id
		}
		result = append(result, item)
	}
	return result
}

func turnResponse(msg *entity.Message, citations []dto.CitationDTO) *dto.ChatTurnResponse {
	return &dto.ChatTurnResponse{
		Seq:       msg.Seq,
		Role:      msg.Role,
		Content:   msg.Content,
		Citations: citations,
		CreatedAt: msg.CreatedAt,
	}
}
