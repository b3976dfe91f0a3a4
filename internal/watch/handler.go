package watch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/matthewbaird/showcase/internal/listing"
	"github.com/matthewbaird/showcase/internal/types"
	"go.uber.org/zap"
)

// Browser re-derives the visible listings for a set of criteria.
type Browser interface {
	Browse(ctx context.Context, criteria listing.Criteria) ([]types.Property, error)
}

// Handler manages WebSocket connections for the live view.
type Handler struct {
	catalog Browser
	hub     *Hub
	log     *zap.Logger
}

// NewHandler creates a WebSocket handler.
func NewHandler(catalog Browser, hub *Hub, log *zap.Logger) *Handler {
	return &Handler{catalog: catalog, hub: hub, log: log.Named("watch")}
}

// ServeHTTP upgrades to WebSocket and runs the message loop. Results for
// the default criteria are sent immediately.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		h.log.Warn("websocket accept", zap.Error(err))
		return
	}
	defer conn.CloseNow()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	listed, unsubscribe := h.hub.Subscribe()
	defer unsubscribe()

	// A single reader goroutine feeds the loop; only the loop writes.
	incoming := make(chan ClientMessage)
	readErr := make(chan error, 1)
	go func() {
		for {
			var msg ClientMessage
			if err := wsjson.Read(ctx, conn, &msg); err != nil {
				readErr <- err
				return
			}
			select {
			case incoming <- msg:
			case <-ctx.Done():
				return
			}
		}
	}()

	criteria := listing.DefaultCriteria()
	h.sendResults(ctx, conn, "", criteria)

	for {
		select {
		case <-ctx.Done():
			return
		case err := <-readErr:
			if status := websocket.CloseStatus(err); status == -1 && !errors.Is(err, context.Canceled) {
				h.log.Debug("read failed", zap.Error(err))
			}
			return
		case <-listed:
			h.sendResults(ctx, conn, "", criteria)
		case msg := <-incoming:
			switch msg.Type {
			case TypeCriteria:
				next, errs := decodeCriteria(msg.Data)
				if len(errs) > 0 {
					h.send(ctx, conn, ServerMessage{
						Type:      TypeError,
						RequestID: msg.ID,
						Data:      ErrorData{Code: "VALIDATION_ERROR", Message: "invalid criteria", Errors: errs},
					})
					continue
				}
				criteria = next
				h.sendResults(ctx, conn, msg.ID, criteria)
			case TypePing:
				h.send(ctx, conn, ServerMessage{Type: TypePong, RequestID: msg.ID})
			default:
				h.sendError(ctx, conn, msg.ID, "unknown_type", fmt.Sprintf("unknown message type: %s", msg.Type))
			}
		}
	}
}

// decodeCriteria overlays the message on the default criteria so omitted
// fields keep their defaults.
func decodeCriteria(data json.RawMessage) (listing.Criteria, map[string]string) {
	c := listing.DefaultCriteria()
	if len(data) > 0 {
		if err := json.Unmarshal(data, &c); err != nil {
			return c, map[string]string{"criteria": "Criteria must be a JSON object"}
		}
	}
	if c.Type == "" {
		c.Type = listing.TypeAll
	}
	if c.Type != listing.TypeAll && !types.PropertyType(c.Type).Valid() {
		return c, map[string]string{"type": "Property type is invalid"}
	}
	return c, nil
}

func (h *Handler) sendResults(ctx context.Context, conn *websocket.Conn, requestID string, c listing.Criteria) {
	props, err := h.catalog.Browse(ctx, c)
	if err != nil {
		h.log.Error("browse failed", zap.Error(err))
		h.sendError(ctx, conn, requestID, "INTERNAL_ERROR", "could not load properties")
		return
	}
	h.send(ctx, conn, ServerMessage{
		Type:      TypeResults,
		RequestID: requestID,
		Data:      ResultsData{Total: len(props), Properties: props},
	})
}

func (h *Handler) send(ctx context.Context, conn *websocket.Conn, msg ServerMessage) {
	if err := wsjson.Write(ctx, conn, msg); err != nil {
		h.log.Debug("write failed", zap.Error(err))
	}
}

func (h *Handler) sendError(ctx context.Context, conn *websocket.Conn, requestID, code, message string) {
	h.send(ctx, conn, ServerMessage{
		Type:      TypeError,
		RequestID: requestID,
		Data:      ErrorData{Code: code, Message: message},
	})
}
