package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateNotebookRequest struct {
	Title       string               `json:"title"`
	FirstSource *CreateSourceRequest `json:"first_source,omitempty"`
}

type CreateSourceRequest struct {
	Title   string `json:"title"`
	Kind    string `json:"kind" validate:"required,oneof=web pdf text youtube drive"`
	Content string `json:"content"`
	URL     string `json:"url,omitempty"`
}

type CreateNotebookResponse struct {
	Id uuid.UUID `json:"id"`
}

type AddSourceRequest struct {
	NotebookId uuid.UUID `json:"-"`
	Title      string    `json:"title"`
	Kind       string    `json:"kind" validate:"required,oneof=web pdf text youtube drive"`
	Content    string    `json:"content"`
	URL        string    `json:"url,omitempty"`
}

type AddSourceResponse struct {
	Id uuid.UUID `json:"id"`
}

type RenameNotebookRequest struct {
	Id    uuid.UUID `json:"-"`
	Title string    `json:"title" validate:"required"`
}

type SourceResponse struct {
	Id      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Kind    string    `json:"kind"`
	Content string    `json:"content"`
	Summary string    `json:"summary,omitempty"`
	URL     string    `json:"url,omitempty"`
}

type MessageResponse struct {
	Seq       int64       `json:"seq"`
	Role      string      `json:"role"`
	Content   string      `json:"content"`
	Citations []uuid.UUID `json:"citations,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

type NotebookListItemResponse struct {
	Id          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Icon        string    `json:"icon,omitempty"`
	BgColor     string    `json:"bg_color,omitempty"`
	SourceCount int       `json:"source_count"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ShowNotebookResponse struct {
	Id        uuid.UUID          `json:"id"`
	Title     string             `json:"title"`
	Icon      string             `json:"icon,omitempty"`
	BgColor   string             `json:"bg_color,omitempty"`
	Sources   []*SourceResponse  `json:"sources"`
	Messages  []*MessageResponse `json:"messages"`
	UpdatedAt time.Time          `json:"updated_at"`
}
