package event

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/matthewbaird/showcase/internal/types"
)

// Event type names.
const (
	TypePropertyListed     = "property_listed"
	TypePortfolioPublished = "portfolio_published"
)

// Roles an entity plays in an event.
const (
	RoleSubject = "subject"
	RoleContext = "context"
)

// DomainEvent carries the canonical shape of every domain event.
type DomainEvent struct {
	ID               string
	EventType        string
	OccurredAt       time.Time
	AffectedEntities []types.SourceRef
	Summary          string
	Payload          json.RawMessage
}

func newID() string { return uuid.Must(uuid.NewV7()).String() }

func mustJSON(v any) json.RawMessage {
	b, _ := json.Marshal(v)
	return b
}

// ── Property events ──────────────────────────────────────────────────────────

// PropertyListedPayload carries event-specific data for PropertyListed.
type PropertyListedPayload struct {
	PropertyID   string             `json:"property_id"`
	Name         string             `json:"name"`
	PropertyType types.PropertyType `json:"property_type"`
	Price        float64            `json:"price"`
	Location     string             `json:"location"`
}

func NewPropertyListed(p types.Property) DomainEvent {
	return DomainEvent{
		ID:         newID(),
		EventType:  TypePropertyListed,
		OccurredAt: time.Now(),
		AffectedEntities: []types.SourceRef{
			{EntityType: "property", EntityID: p.ID, Role: RoleSubject},
			{EntityType: "property_type", EntityID: string(p.Type), Role: RoleContext},
		},
		Summary: fmt.Sprintf("%s listed in %s at %s", p.Name, p.Location, FormatINR(p.Price)),
		Payload: mustJSON(PropertyListedPayload{
			PropertyID:   p.ID,
			Name:         p.Name,
			PropertyType: p.Type,
			Price:        p.Price,
			Location:     p.Location,
		}),
	}
}

// ── Portfolio events ─────────────────────────────────────────────────────────

// PortfolioPublishedPayload carries event-specific data for PortfolioPublished.
type PortfolioPublishedPayload struct {
	PortfolioID string         `json:"portfolio_id"`
	Template    types.Template `json:"template"`
	Name        string         `json:"name"`
	Skills      []string       `json:"skills"`
	Services    int            `json:"services"`
	Works       int            `json:"works"`
}

func NewPortfolioPublished(p types.Portfolio) DomainEvent {
	return DomainEvent{
		ID:         newID(),
		EventType:  TypePortfolioPublished,
		OccurredAt: time.Now(),
		AffectedEntities: []types.SourceRef{
			{EntityType: "portfolio", EntityID: p.ID, Role: RoleSubject},
			{EntityType: "template", EntityID: string(p.Template), Role: RoleContext},
		},
		Summary: fmt.Sprintf("%s published with %d services and %d works", displayName(p.Hero.Name), len(p.Services), len(p.Works)),
		Payload: mustJSON(PortfolioPublishedPayload{
			PortfolioID: p.ID,
			Template:    p.Template,
			Name:        p.Hero.Name,
			Skills:      p.Skills,
			Services:    len(p.Services),
			Works:       len(p.Works),
		}),
	}
}

func displayName(name string) string {
	if name == "" {
		return "Untitled portfolio"
	}
	return name
}

// FormatINR renders a rupee amount the way the dashboard does: crores
// from 1,00,00,000, lakhs from 1,00,000, plain rupees below.
func FormatINR(v float64) string {
	switch {
	case v >= 10_000_000:
		return fmt.Sprintf("₹%.2f Cr", v/10_000_000)
	case v >= 100_000:
		return fmt.Sprintf("₹%.2f L", v/100_000)
	default:
		return fmt.Sprintf("₹%.0f", v)
	}
}
