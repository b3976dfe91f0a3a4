package eventbus

import (
	"context"

	"github.com/matthewbaird/showcase/internal/event"
	"go.uber.org/zap"
)

// LogConsumer logs all domain events for observability.
type LogConsumer struct {
	log *zap.Logger
}

func NewLogConsumer(log *zap.Logger) *LogConsumer {
	return &LogConsumer{log: log.Named("event")}
}

func (c *LogConsumer) HandleEvent(_ context.Context, evt event.DomainEvent) error {
	entities := make([]string, len(evt.AffectedEntities))
	for i, ref := range evt.AffectedEntities {
		entities[i] = ref.EntityType + ":" + ref.EntityID
	}
	c.log.Info(evt.Summary,
		zap.String("type", evt.EventType),
		zap.String("id", evt.ID),
		zap.Strings("entities", entities))
	return nil
}
