package llm

import (
	"context"
	"time"

	"github.com/yungbote/skillup-backend/internal/pkg/logger"
)

// LoggingProvider records latency and outcome of every call.
type LoggingProvider struct {
	inner Provider
	log   *logger.Logger
}

func WithLogging(p Provider, log *logger.Logger) Provider {
	return &LoggingProvider{inner: p, log: log.With("component", "llm", "model", p.ModelID())}
}

func (l *LoggingProvider) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	text, err := l.inner.Generate(ctx, prompt)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		l.log.Warn("llm call failed", "latency_ms", latency, "error", err)
		return text, err
	}
	l.log.Debug("llm call", "latency_ms", latency, "prompt_chars", len(prompt), "response_chars", len(text))
	return text, nil
}

func (l *LoggingProvider) ModelID() string { return l.inner.ModelID() }
