package handler

import (
	"context"

	"github.com/matthewbaird/showcase/internal/event"
	"go.uber.org/zap"
)

// recordEvent records a domain event if a recorder is configured.
// Errors are logged but do not fail the request: the mutation has
// already committed.
func recordEvent(ctx context.Context, rec event.Recorder, evt event.DomainEvent) {
	if rec == nil {
		return
	}
	if err := rec.Record(ctx, evt); err != nil {
		zap.L().Warn("event recording failed",
			zap.String("type", evt.EventType),
			zap.String("id", evt.ID),
			zap.Error(err))
	}
}
