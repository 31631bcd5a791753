package llm

import (
	"context"
	"log/slog"
	"time"
)

// loggingProvider records every call on a structured logger.
type loggingProvider struct {
	inner  Provider
	logger *slog.Logger
}

// WithLogging wraps p so each Generate call logs its purpose, latency,
// token usage and estimated cost. A nil logger discards.
func WithLogging(p Provider, logger *slog.Logger) Provider {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &loggingProvider{inner: p, logger: logger.With("component", "llm")}
}

func (l *loggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	attrs := []any{
		"purpose", PurposeFrom(ctx),
		"model", l.inner.ModelID(),
		"latency_ms", time.Since(start).Milliseconds(),
	}
	if err != nil {
		l.logger.WarnContext(ctx, "llm request failed", append(attrs, "error", err)...)
		return nil, err
	}

	attrs = append(attrs,
		"input_tokens", resp.Usage.InputTokens,
		"output_tokens", resp.Usage.OutputTokens,
		"stop_reason", resp.StopReason,
	)
	if c := LookupCost(l.inner.ModelID()); c != nil {
		attrs = append(attrs, "cost_usd", c.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens))
	}
	l.logger.InfoContext(ctx, "llm request", attrs...)
	return resp, nil
}

func (l *loggingProvider) ModelID() string { return l.inner.ModelID() }
