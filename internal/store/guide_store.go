package store

import (
	"sort"
	"time"

	"ai-notebook-be/internal/entity"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// GuideStore keeps generated guide artifacts per notebook with a TTL, so the
// studio panel's recent-outputs list stays bounded without a persistence
// layer.
type GuideStore struct {
	cache *cache.Cache
}

func NewGuideStore(ttl time.Duration) *GuideStore {
	return &GuideStore{
		cache: cache.New(ttl, 10*time.Minute),
	}
}

func (s *GuideStore) Save(guide *entity.Guide) {
	key := guide.NotebookId.String()
	guides, _ := s.cache.Get(key)
	list, _ := guides.([]*entity.Guide)
	list = append(list, guide)
	s.cache.Set(key, list, cache.DefaultExpiration)
}

// ListByNotebook returns the notebook's guides, newest first.
func (s *GuideStore) ListByNotebook(notebookId uuid.UUID) []*entity.Guide {
	guides, found := s.cache.Get(notebookId.String())
	if !found {
		return []*entity.Guide{}
	}
	list, _ := guides.([]*entity.Guide)
	result := make([]*entity.Guide, len(list))
	copy(result, list)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}

// SummaryCache caches background-generated source summaries keyed by source
// id. Summaries stay out of the notebook aggregate so the background
// summarizer never writes to the single-writer NotebookStore; DTO mapping
// merges them in at read time.
type SummaryCache struct {
	cache *cache.Cache
}

func NewSummaryCache(ttl time.Duration) *SummaryCache {
	return &SummaryCache{
		cache: cache.New(ttl, 10*time.Minute),
	}
}

func (s *SummaryCache) Set(sourceId uuid.UUID, summary string) {
	s.cache.Set(sourceId.String(), summary, cache.DefaultExpiration)
}

func (s *SummaryCache) Get(sourceId uuid.UUID) (string, bool) {
	if x, found := s.cache.Get(sourceId.String()); found {
		return x.(string), true
	}
	return "", false
}
