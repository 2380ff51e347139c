package service

import (
	"time"

	"ai-notebook-be/internal/entity"
	"ai-notebook-be/internal/store"

	"github.com/google/uuid"
)

// SeedNotebooks fills an empty store with a few sample notebooks for demo
// environments. Enabled by SEED_NOTEBOOKS.
func SeedNotebooks(notebooks *store.NotebookStore) {
	if notebooks.Len() > 0 {
		return
	}

	now := time.Now()
	samples := []*entity.Notebook{
		{
			Id:        uuid.New(),
			Title:     "Software's Evolution: From Code to AI",
			Sources:   []*entity.Source{},
			Messages:  []*entity.Message{},
			UpdatedAt: now.Add(-48 * time.Hour),
			Icon:      "🤖",
			BgColor:   "bg-orange-50",
		},
		{
			Id:        uuid.New(),
			Title:     "Recursive Language Models",
			Sources:   []*entity.Source{},
			Messages:  []*entity.Message{},
			UpdatedAt: now.Add(-24 * time.Hour),
			Icon:      "🔄",
			BgColor:   "bg-blue-50",
		},
		{
			Id:    uuid.New(),
			Title: "The Wealth Formula: Automatic Investing",
			Sources: []*entity.Source{
				{
					Id:        uuid.New(),
					Title:     "Wealth Strategy",
					Kind:      entity.SourceKindWeb,
					Content:   "Pay yourself first: automate transfers into broad index funds every month and let compounding do the rest.",
					CreatedAt: now,
				},
			},
			Messages:  []*entity.Message{},
			UpdatedAt: now,
			Icon:      "🏠",
			BgColor:   "bg-emerald-50",
		},
	}

	// Insert prepends, so iterate oldest-first to end with newest on top.
	for _, nb := range samples {
		notebooks.Insert(nb)
	}
}
