package service

import (
	"context"
	"sync"
	"time"

	"ai-notebook-be/internal/entity"
	"ai-notebook-be/internal/store"
	"ai-notebook-be/pkg/events"
	"ai-notebook-be/pkg/gemini"

	"github.com/google/uuid"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

// fakeGateway scripts one response per method and records call counts.
// Hooks run inside the call, before the scripted result is returned, which
// lets tests mutate store state mid-flight to exercise stale handling.
type fakeGateway struct {
	mu sync.Mutex

	chatAnswer string
	chatErr    error
	chatCalls  int
	chatHook   func()

	lastQuery   string
	lastSources []gemini.SourceContext
	lastHistory []gemini.Turn

	guideContent map[string]interface{}
	guideErr     error
	guideCalls   int
	guideHook    func()

	audioPCM   []byte
	audioErr   error
	audioCalls int
	audioHook  func()

	summary      string
	summaryErr   error
	summaryCalls int
}

func (f *fakeGateway) ChatWithSources(_ context.Context, query string, sources []gemini.SourceContext, history []gemini.Turn) (string, error) {
	f.mu.Lock()
	f.chatCalls++
	f.lastQuery = query
	f.lastSources = sources
	f.lastHistory = history
	hook := f.chatHook
	f.mu.Unlock()
	if hook != nil {
		hook()
	}
	return f.chatAnswer, f.chatErr
}

func (f *fakeGateway) GenerateGuide(_ context.Context, _ string, _ []gemini.SourceContext) (map[string]interface{}, error) {
	f.mu.Lock()
	f.guideCalls++
	hook := f.guideHook
	f.mu.Unlock()
	if hook != nil {
		hook()
	}
	return f.guideContent, f.guideErr
}

func (f *fakeGateway) SynthesizeAudio(_ context.Context, _ string) ([]byte, error) {
	f.mu.Lock()
	f.audioCalls++
	hook := f.audioHook
	f.mu.Unlock()
	if hook != nil {
		hook()
	}
	return f.audioPCM, f.audioErr
}

func (f *fakeGateway) SummarizeSource(_ context.Context, _ string) (string, error) {
	f.mu.Lock()
	f.summaryCalls++
	f.mu.Unlock()
	return f.summary, f.summaryErr
}

// recordingBroadcaster collects events for assertion.
type recordingBroadcaster struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recordingBroadcaster) Broadcast(evt events.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evt)
}

func (r *recordingBroadcaster) byType(eventType string) []events.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	matched := make([]events.Event, 0)
	for _, evt := range r.events {
		if evt.Type == eventType {
			matched = append(matched, evt)
		}
	}
	return matched
}

// seedNotebook inserts a selected notebook with the given source titles,
// each source's content mirroring its title.
func seedNotebook(notebooks *store.NotebookStore, sourceTitles ...string) *entity.Notebook {
	nb := &entity.Notebook{
		Id:        uuid.New(),
		Title:     "Test notebook",
		UpdatedAt: time.Now(),
	}
	for _, title := range sourceTitles {
		nb.Sources = append(nb.Sources, &entity.Source{
			Id:      uuid.New(),
			Title:   title,
			Kind:    entity.SourceKindText,
			Content: "Content of " + title,
		})
	}
	notebooks.Insert(nb)
	notebooks.Select(nb.Id)
	return nb
}
