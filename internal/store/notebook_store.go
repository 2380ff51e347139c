package store

import (
	"sync"

	"ai-notebook-be/internal/entity"

	"github.com/google/uuid"
)

// NotebookStore is the process-wide collection of notebooks and the single
// source of truth for every rendering consumer. Mutation goes through
// whole-aggregate replace (Update), never partial field writes, so a single
// mutex is the only coordination needed. Notebooks enter by prepend and the
// listing is newest-first insertion order.
//
// Every notebook handed out or taken in is deep-copied, so callers can
// read-modify-write freely without aliasing stored state.
type NotebookStore struct {
	mu        sync.RWMutex
	notebooks map[uuid.UUID]*entity.Notebook
	order     []uuid.UUID
	activeId  *uuid.UUID
}

func NewNotebookStore() *NotebookStore {
	return &NotebookStore{
		notebooks: make(map[uuid.UUID]*entity.Notebook),
	}
}

// Insert prepends a freshly created notebook. Selection is a separate step
// for composability.
func (s *NotebookStore) Insert(nb *entity.Notebook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.notebooks[nb.Id]; exists {
		return
	}
	s.notebooks[nb.Id] = nb.Clone()
	s.order = append([]uuid.UUID{nb.Id}, s.order...)
}

// Get returns a deep copy of the notebook with the given id.
func (s *NotebookStore) Get(id uuid.UUID) (*entity.Notebook, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	nb, ok := s.notebooks[id]
	if !ok {
		return nil, false
	}
	return nb.Clone(), true
}

// Update replaces the stored notebook with the given id by full value.
// Unknown ids are ignored; the store never resurrects notebooks.
func (s *NotebookStore) Update(nb *entity.Notebook) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.notebooks[nb.Id]; !ok {
		return false
	}
	s.notebooks[nb.Id] = nb.Clone()
	return true
}

// Select marks the notebook as active. A no-op when the id is unknown,
// since selection is always sourced from the listing.
func (s *NotebookStore) Select(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.notebooks[id]; !ok {
		return
	}
	s.activeId = &id
}

// Deselect clears the active notebook, returning to the listing view.
func (s *NotebookStore) Deselect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeId = nil
}

// ActiveId returns the currently selected notebook id, if any.
func (s *NotebookStore) ActiveId() (uuid.UUID, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.activeId == nil {
		return uuid.Nil, false
	}
	return *s.activeId, true
}

// Active returns a deep copy of the selected notebook, if any.
func (s *NotebookStore) Active() (*entity.Notebook, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.activeId == nil {
		return nil, false
	}
	nb, ok := s.notebooks[*s.activeId]
	if !ok {
		return nil, false
	}
	return nb.Clone(), true
}

// List returns deep copies of all notebooks, newest-first.
func (s *NotebookStore) List() []*entity.Notebook {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*entity.Notebook, 0, len(s.order))
	for _, id := range s.order {
		if nb, ok := s.notebooks[id]; ok {
			result = append(result, nb.Clone())
		}
	}
	return result
}

// Len returns the number of stored notebooks.
func (s *NotebookStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notebooks)
}
