package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"course-outline-planner/pkg/log"
	"course-outline-planner/pkg/metrics"
)

// Purposes label a provider chain in logs and metrics.
const (
	PurposeChat       = "chat"
	PurposeExtraction = "extraction"
)

// Manager runs the provider chain of one purpose. Providers are tried in
// priority order; each gets RetryAttempts tries with linear backoff, all
// under MaxTotalTimeout.
type Manager struct {
	providers []Provider
	cfg       Config
	metrics   metrics.Recorder
	l         log.Logger
}

// Config defines the chain behavior of a Manager.
type Config struct {
	Purpose         string
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration
}

func NewManager(providers []Provider, cfg Config, m metrics.Recorder, l log.Logger) *Manager {
	if cfg.RetryAttempts < 1 {
		cfg.RetryAttempts = 1
	}
	if m == nil {
		m = metrics.Nop{}
	}
	return &Manager{
		providers: providers,
		cfg:       cfg,
		metrics:   m,
		l:         l,
	}
}

// Purpose returns the chain label.
func (m *Manager) Purpose() string {
	return m.cfg.Purpose
}

// GenerateContent answers req with the first provider that succeeds and
// records one LLM call outcome for the chain's purpose.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := m.generate(ctx, req)
	if err != nil {
		m.metrics.RecordLLMCall(m.cfg.Purpose, metrics.OutcomeError)
		return nil, err
	}
	m.metrics.RecordLLMCall(m.cfg.Purpose, metrics.OutcomeOK)
	return resp, nil
}

func (m *Manager) generate(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	if m.cfg.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.cfg.MaxTotalTimeout)
		defer cancel()
	}

	var failures []error
	for i, p := range m.providers {
		if i > 0 && !m.cfg.FallbackEnabled {
			break
		}
		if err := ctx.Err(); err != nil {
			failures = append(failures, fmt.Errorf("%w after %d provider(s): %v", ErrProviderTimeout, i, err))
			break
		}

		resp, err := m.tryProvider(ctx, p, req)
		if err == nil {
			m.l.Infof(ctx, "llmprovider.%s: provider=%s model=%s files=%d tokens=%d/%d",
				m.cfg.Purpose, p.Name(), p.Model(), len(resp.FileIDs), resp.Usage.InputTokens, resp.Usage.OutputTokens)
			return resp, nil
		}

		m.l.Warnf(ctx, "llmprovider.%s: provider=%s model=%s failed: %v", m.cfg.Purpose, p.Name(), p.Model(), err)
		failures = append(failures, &ProviderError{Provider: p.Name(), Err: err})
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, errors.Join(failures...))
}

// tryProvider calls one provider with linear backoff between attempts.
func (m *Manager) tryProvider(ctx context.Context, p Provider, req *Request) (*Response, error) {
	var lastErr error
	for attempt := 0; attempt < m.cfg.RetryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(time.Duration(attempt) * m.cfg.RetryDelay):
			case <-ctx.Done():
				return nil, fmt.Errorf("%w: %v", ErrProviderTimeout, ctx.Err())
			}
		}

		resp, err := p.GenerateContent(ctx, req)
		if err == nil {
			if resp.Usage == nil {
				resp.Usage = &Usage{}
			}
			return resp, nil
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %v", ErrProviderTimeout, err)
		}
		lastErr = err
	}
	return nil, lastErr
}

// validateRequest rejects requests no provider could answer.
func validateRequest(req *Request) error {
	if req == nil || len(req.Messages) == 0 {
		return fmt.Errorf("%w: no messages", ErrInvalidRequest)
	}
	for _, msg := range req.Messages {
		for _, p := range msg.Parts {
			if p.File != nil && len(p.File.Data) == 0 {
				return fmt.Errorf("%w: file %q is empty", ErrInvalidRequest, p.File.Name)
			}
		}
	}
	return nil
}
