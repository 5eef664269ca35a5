// Package mocks provides in-memory tracers for unit tests.
package mocks

import (
	"context"
	"sync"
	"todonotes/infras/otel"
)

// Recorder is an otel.Otel that keeps every span it opens.
type Recorder struct {
	mu    sync.Mutex
	spans []*Span
}

func (r *Recorder) NewScope(ctx context.Context, scopeName, spanName string) (context.Context, otel.Scope) {
	span := &Span{Scope: scopeName, Name: spanName, Attributes: map[string]any{}}

	r.mu.Lock()
	r.spans = append(r.spans, span)
	r.mu.Unlock()

	return ctx, span
}

// Spans returns the recorded spans in the order they were opened.
func (r *Recorder) Spans() []*Span {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]*Span{}, r.spans...)
}

// Span looks up the first span with the given name.
func (r *Recorder) Span(name string) (*Span, bool) {
	for _, span := range r.Spans() {
		if span.Name == name {
			return span, true
		}
	}

	return nil, false
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// NewOtel returns a recorder for tests that never inspect spans.
func NewOtel() otel.Otel {
	return NewRecorder()
}
