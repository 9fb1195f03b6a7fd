package llm

import (
	"context"
	"time"

	"household-hub/internal/shared"
)

// MetaRecorder receives operational metadata after each model call.
type MetaRecorder interface {
	RecordMeta(meta shared.AgentMeta) error
}

type meteredGenerator struct {
	inner     TextGenerator
	recorder  MetaRecorder
	agentName string
	onError   func(error)
}

// WithMetrics wraps a TextGenerator so every successful call reports its
// token usage and latency under the given agent name. Recording failures are
// passed to onError and never fail the generation.
func WithMetrics(inner TextGenerator, recorder MetaRecorder, agentName string, onError func(error)) TextGenerator {
	if recorder == nil {
		return inner
	}
	return &meteredGenerator{inner: inner, recorder: recorder, agentName: agentName, onError: onError}
}

func (m *meteredGenerator) GenerateContent(ctx context.Context, prompt string) (ContentResponse, error) {
	start := time.Now()
	resp, err := m.inner.GenerateContent(ctx, prompt)
	if err != nil {
		return resp, err
	}

	recordErr := m.recorder.RecordMeta(shared.AgentMeta{
		AgentName: m.agentName,
		Usage:     resp.Usage,
		Latency:   time.Since(start),
	})
	if recordErr != nil && m.onError != nil {
		m.onError(recordErr)
	}
	return resp, nil
}
