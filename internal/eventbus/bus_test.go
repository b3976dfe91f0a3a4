package eventbus

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/matthewbaird/showcase/internal/event"
	"github.com/matthewbaird/showcase/internal/types"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func listed(id string) event.DomainEvent {
	return event.NewPropertyListed(types.Property{ID: id, Name: id, Type: types.PropertyTypeHouse, Price: 1})
}

type recorder struct {
	mu  sync.Mutex
	ids []string
}

func (r *recorder) HandleEvent(_ context.Context, evt event.DomainEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids = append(r.ids, evt.AffectedEntities[0].EntityID)
	return nil
}

func (r *recorder) got() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.ids...)
}

func TestBus_DeliversInOrderToAllSubscribers(t *testing.T) {
	defer goleak.VerifyNone(t)

	bus := New(16, zap.NewNop())
	a, b := &recorder{}, &recorder{}
	bus.Subscribe("a", a)
	bus.Subscribe("b", b)
	bus.Start(context.Background())

	for _, id := range []string{"1", "2", "3"} {
		bus.Publish(context.Background(), listed(id))
	}
	bus.Stop()

	assert.Equal(t, []string{"1", "2", "3"}, a.got())
	assert.Equal(t, []string{"1", "2", "3"}, b.got())
}

func TestBus_DrainsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	bus := New(16, zap.NewNop())
	r := &recorder{}
	bus.Subscribe("r", r)

	// Buffered before the consumer starts.
	bus.Publish(context.Background(), listed("1"))
	bus.Publish(context.Background(), listed("2"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	bus.Start(ctx)
	<-bus.done

	assert.Equal(t, []string{"1", "2"}, r.got())
}

func TestBus_DropsWhenFullOrStopped(t *testing.T) {
	defer goleak.VerifyNone(t)

	core, logs := observer.New(zap.WarnLevel)
	bus := New(1, zap.New(core))
	bus.Publish(context.Background(), listed("1"))
	bus.Publish(context.Background(), listed("2"))
	assert.Equal(t, 1, logs.FilterMessage("buffer full, dropping event").Len())

	bus.Start(context.Background())
	bus.Stop()
	bus.Stop()

	bus.Publish(context.Background(), listed("3"))
	assert.Equal(t, 1, logs.FilterMessage("bus stopped, dropping event").Len())
}

func TestBus_HandlerErrorIsLogged(t *testing.T) {
	defer goleak.VerifyNone(t)

	core, logs := observer.New(zap.ErrorLevel)
	bus := New(4, zap.New(core))
	bus.Subscribe("broken", HandlerFunc(func(context.Context, event.DomainEvent) error {
		return errors.New("boom")
	}))
	after := &recorder{}
	bus.Subscribe("after", after)
	bus.Start(context.Background())

	bus.Publish(context.Background(), listed("1"))
	bus.Stop()

	assert.Equal(t, 1, logs.FilterField(zap.String("handler", "broken")).Len())
	assert.Equal(t, []string{"1"}, after.got(), "a failing handler does not block the next")
}

func TestLogConsumer(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	c := NewLogConsumer(zap.New(core))

	evt := listed("p1")
	assert.NoError(t, c.HandleEvent(context.Background(), evt))
	entries := logs.All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, evt.Summary, entries[0].Message)
		assert.Equal(t, event.TypePropertyListed, entries[0].ContextMap()["type"])
	}
}
