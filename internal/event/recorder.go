// Package event provides domain event recording for command handlers.
// Events are fanned out as ActivityEntry records via the activity.Store interface,
// then published to the in-process event bus for downstream consumers.
package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/matthewbaird/showcase/internal/activity"
	"github.com/matthewbaird/showcase/internal/types"
)

// ErrInvalidEvent is returned for events of an unknown type or without
// exactly one subject entity.
var ErrInvalidEvent = errors.New("invalid domain event")

// Recorder writes domain events to the activity store.
type Recorder interface {
	Record(ctx context.Context, evt DomainEvent) error
}

// Publisher sends domain events to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, evt DomainEvent)
}

// ActivityRecorder implements Recorder by indexing a listing or portfolio
// event under every entity it touched, then publishing it once the entries
// are stored.
type ActivityRecorder struct {
	store activity.Store
	bus   Publisher
	now   func() time.Time
}

// NewActivityRecorder creates a new ActivityRecorder backed by the given store.
func NewActivityRecorder(store activity.Store) *ActivityRecorder {
	return &ActivityRecorder{store: store, now: time.Now}
}

// SetPublisher attaches an event bus. Events are published after store writes.
func (r *ActivityRecorder) SetPublisher(p Publisher) {
	r.bus = p
}

// Record stamps evt with an id and time if it lacks them, writes one feed
// entry per affected entity and publishes it. Nothing is published when
// the write fails.
func (r *ActivityRecorder) Record(ctx context.Context, evt DomainEvent) error {
	if evt.ID == "" {
		evt.ID = newID()
	}
	if evt.OccurredAt.IsZero() {
		evt.OccurredAt = r.now()
	}

	entries, err := feedEntries(evt)
	if err != nil {
		return err
	}
	if err := r.store.WriteEntries(ctx, entries); err != nil {
		return fmt.Errorf("writing %s activity: %w", evt.EventType, err)
	}

	if r.bus != nil {
		r.bus.Publish(ctx, evt)
	}
	return nil
}

func feedEntries(evt DomainEvent) ([]types.ActivityEntry, error) {
	if evt.EventType != TypePropertyListed && evt.EventType != TypePortfolioPublished {
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidEvent, evt.EventType)
	}
	subjects := 0
	for _, ref := range evt.AffectedEntities {
		if ref.Role == RoleSubject {
			subjects++
		}
	}
	if subjects != 1 {
		return nil, fmt.Errorf("%w: %s has %d subjects", ErrInvalidEvent, evt.EventType, subjects)
	}

	entries := make([]types.ActivityEntry, 0, len(evt.AffectedEntities))
	for _, ref := range evt.AffectedEntities {
		summary := evt.Summary
		if ref.Role == RoleContext {
			summary = contextSummary(evt, ref)
		}
		entries = append(entries, types.ActivityEntry{
			EventID:    evt.ID,
			EventType:  evt.EventType,
			OccurredAt: evt.OccurredAt,
			EntityType: ref.EntityType,
			EntityID:   ref.EntityID,
			EntityRole: ref.Role,
			Summary:    summary,
			Payload:    evt.Payload,
		})
	}
	return entries, nil
}

// contextSummary phrases an entry for a feed filtered by a context entity,
// e.g. every villa or every template2 site. It falls back to the event
// summary when the payload does not decode.
func contextSummary(evt DomainEvent, ref types.SourceRef) string {
	switch evt.EventType {
	case TypePropertyListed:
		var p PropertyListedPayload
		if json.Unmarshal(evt.Payload, &p) == nil {
			return fmt.Sprintf("New %s: %s at %s", ref.EntityID, p.Name, FormatINR(p.Price))
		}
	case TypePortfolioPublished:
		var p PortfolioPublishedPayload
		if json.Unmarshal(evt.Payload, &p) == nil {
			return fmt.Sprintf("%s published on %s", displayName(p.Name), ref.EntityID)
		}
	}
	return evt.Summary
}
