package mocks

// Span is a recorded otel.Scope.
type Span struct {
	Scope      string
	Name       string
	Attributes map[string]any
	Events     []string
	Errors     []error
	Ended      bool
}

func (s *Span) End() {
	s.Ended = true
}

func (s *Span) TraceError(err error) {
	s.Errors = append(s.Errors, err)
}

func (s *Span) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

func (s *Span) AddEvent(name string) {
	s.Events = append(s.Events, name)
}

func (s *Span) SetAttribute(key string, value any) {
	s.Attributes[key] = value
}

func (s *Span) SetAttributes(attributes map[string]any) {
	for key, value := range attributes {
		s.SetAttribute(key, value)
	}
}
