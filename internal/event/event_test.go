package event

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/matthewbaird/showcase/internal/activity"
	"github.com/matthewbaird/showcase/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturePublisher struct{ events []DomainEvent }

func (c *capturePublisher) Publish(_ context.Context, evt DomainEvent) {
	c.events = append(c.events, evt)
}

type failingStore struct{ activity.Store }

func (failingStore) WriteEntries(context.Context, []types.ActivityEntry) error {
	return errors.New("disk full")
}

func TestFormatINR(t *testing.T) {
	assert.Equal(t, "₹1.50 Cr", FormatINR(15_000_000))
	assert.Equal(t, "₹65.00 L", FormatINR(6_500_000))
	assert.Equal(t, "₹95000", FormatINR(95_000))
}

func TestNewPropertyListed(t *testing.T) {
	evt := NewPropertyListed(types.Property{
		ID: "p1", Name: "Beach Side Villa", Type: types.PropertyTypeVilla,
		Price: 18_000_000, Location: "Candolim, Goa",
	})

	assert.Equal(t, TypePropertyListed, evt.EventType)
	assert.NotEmpty(t, evt.ID)
	assert.Equal(t, "Beach Side Villa listed in Candolim, Goa at ₹1.80 Cr", evt.Summary)
	require.Len(t, evt.AffectedEntities, 2)
	assert.Equal(t, types.SourceRef{EntityType: "property", EntityID: "p1", Role: "subject"}, evt.AffectedEntities[0])

	var payload PropertyListedPayload
	require.NoError(t, json.Unmarshal(evt.Payload, &payload))
	assert.Equal(t, types.PropertyTypeVilla, payload.PropertyType)
}

func TestNewPortfolioPublished(t *testing.T) {
	evt := NewPortfolioPublished(types.Portfolio{
		ID: "f1", Template: types.TemplateSplit,
		Services: []types.Service{{Title: "a", Description: "b"}},
	})
	assert.Equal(t, "Untitled portfolio published with 1 services and 0 works", evt.Summary)
	assert.Equal(t, "f1", evt.AffectedEntities[0].EntityID)
}

func TestActivityRecorder_FansOutAndPublishes(t *testing.T) {
	ctx := context.Background()
	store := activity.NewMemoryStore()
	pub := &capturePublisher{}
	rec := NewActivityRecorder(store)
	rec.SetPublisher(pub)

	evt := NewPropertyListed(types.Property{ID: "p1", Name: "Flat", Type: types.PropertyTypeCondo, Price: 1})
	require.NoError(t, rec.Record(ctx, evt))

	byProperty, _, err := store.QueryByEntity(ctx, "property", "p1", activity.QueryOptions{})
	require.NoError(t, err)
	require.Len(t, byProperty, 1)
	assert.Equal(t, evt.ID, byProperty[0].EventID)

	byType, _, err := store.QueryByEntity(ctx, "property_type", "condo", activity.QueryOptions{})
	require.NoError(t, err)
	require.Len(t, byType, 1)
	assert.Equal(t, "New condo: Flat at ₹1", byType[0].Summary)
	assert.Equal(t, RoleContext, byType[0].EntityRole)

	require.Len(t, pub.events, 1)
	assert.Equal(t, evt.ID, pub.events[0].ID)
}

func TestActivityRecorder_StoreFailureSkipsPublish(t *testing.T) {
	pub := &capturePublisher{}
	rec := NewActivityRecorder(failingStore{})
	rec.SetPublisher(pub)

	err := rec.Record(context.Background(), NewPropertyListed(types.Property{ID: "p1"}))
	assert.Error(t, err)
	assert.Empty(t, pub.events)
}

func TestActivityRecorder_ContextSummaries(t *testing.T) {
	ctx := context.Background()
	store := activity.NewMemoryStore()
	rec := NewActivityRecorder(store)

	evt := NewPortfolioPublished(types.Portfolio{ID: "f1", Template: types.TemplateSplit})
	require.NoError(t, rec.Record(ctx, evt))

	byTemplate, _, err := store.QueryByEntity(ctx, "template", "template2", activity.QueryOptions{})
	require.NoError(t, err)
	require.Len(t, byTemplate, 1)
	assert.Equal(t, "Untitled portfolio published on template2", byTemplate[0].Summary)

	bySubject, _, err := store.QueryByEntity(ctx, "portfolio", "f1", activity.QueryOptions{})
	require.NoError(t, err)
	require.Len(t, bySubject, 1)
	assert.Equal(t, evt.Summary, bySubject[0].Summary)
}

func TestActivityRecorder_StampsMissingFields(t *testing.T) {
	ctx := context.Background()
	store := activity.NewMemoryStore()
	pub := &capturePublisher{}
	rec := NewActivityRecorder(store)
	rec.SetPublisher(pub)
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	rec.now = func() time.Time { return at }

	evt := NewPropertyListed(types.Property{ID: "p9", Type: types.PropertyTypeHouse})
	evt.ID = ""
	evt.OccurredAt = time.Time{}
	require.NoError(t, rec.Record(ctx, evt))

	require.Len(t, pub.events, 1)
	assert.NotEmpty(t, pub.events[0].ID)
	assert.Equal(t, at, pub.events[0].OccurredAt)
}

func TestActivityRecorder_RejectsInvalidEvents(t *testing.T) {
	store := activity.NewMemoryStore()
	pub := &capturePublisher{}
	rec := NewActivityRecorder(store)
	rec.SetPublisher(pub)

	unknown := NewPropertyListed(types.Property{ID: "p1"})
	unknown.EventType = "property_sold"
	assert.ErrorIs(t, rec.Record(context.Background(), unknown), ErrInvalidEvent)

	noSubject := NewPropertyListed(types.Property{ID: "p1"})
	noSubject.AffectedEntities = noSubject.AffectedEntities[1:]
	assert.ErrorIs(t, rec.Record(context.Background(), noSubject), ErrInvalidEvent)

	assert.Empty(t, pub.events)
}
