package service

import (
	"context"

	"ai-notebook-be/pkg/events"
	"ai-notebook-be/pkg/gemini"
)

// AssistantGateway is the external-collaborator boundary to the generative
// backend. *gemini.Client satisfies it; tests substitute fakes.
type AssistantGateway interface {
	ChatWithSources(ctx context.Context, query string, sources []gemini.SourceContext, history []gemini.Turn) (string, error)
	GenerateGuide(ctx context.Context, guideType string, sources []gemini.SourceContext) (map[string]interface{}, error)
	SynthesizeAudio(ctx context.Context, text string) ([]byte, error)
	SummarizeSource(ctx context.Context, content string) (string, error)
}

// EventBroadcaster pushes notebook activity to connected clients. The
// websocket hub implements it; a nil-safe noop is used in tests.
type EventBroadcaster interface {
	Broadcast(evt events.Event)
}

// NoopBroadcaster drops every event.
type NoopBroadcaster struct{}

func (NoopBroadcaster) Broadcast(events.Event) {}
