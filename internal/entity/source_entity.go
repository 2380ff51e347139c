package entity

import (
	"time"

	"github.com/google/uuid"
)

// SourceKind is the closed set of reference material types a notebook accepts.
type SourceKind string

const (
	SourceKindWeb     SourceKind = "web"
	SourceKindPdf     SourceKind = "pdf"
	SourceKindText    SourceKind = "text"
	SourceKindYoutube SourceKind = "youtube"
	SourceKindDrive   SourceKind = "drive"
)

// Valid reports whether the kind is one of the five known variants.
func (k SourceKind) Valid() bool {
	switch k {
	case SourceKindWeb, SourceKindPdf, SourceKindText, SourceKindYoutube, SourceKindDrive:
		return true
	}
	return false
}

// HasURL reports whether this kind carries an origin URL.
func (k SourceKind) HasURL() bool {
	switch k {
	case SourceKindWeb, SourceKindYoutube, SourceKindDrive:
		return true
	}
	return false
}

// Source is one unit of reference material attached to a Notebook.
// Content is immutable once set; a replacement source is created instead
// of mutating an old one.
type Source struct {
	Id        uuid.UUID
	Title     string
	Kind      SourceKind
	Content   string
	Summary   string
	URL       string
	CreatedAt time.Time
}

func (s *Source) Clone() *Source {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
