// Package types provides the value types shared by the listing and
// portfolio slices. They are the JSON shapes served by the API and the
// documents stored by the SQL backends.
package types

import (
	"encoding/json"
	"time"
)

// PropertyType is the closed set of listing categories.
type PropertyType string

const (
	PropertyTypeApartment PropertyType = "apartment"
	PropertyTypeVilla     PropertyType = "villa"
	PropertyTypeHouse     PropertyType = "house"
	PropertyTypeCondo     PropertyType = "condo"
	PropertyTypeTownhouse PropertyType = "townhouse"
)

// PropertyTypes returns every property type in display order.
func PropertyTypes() []PropertyType {
	return []PropertyType{
		PropertyTypeApartment,
		PropertyTypeVilla,
		PropertyTypeHouse,
		PropertyTypeCondo,
		PropertyTypeTownhouse,
	}
}

// Valid reports whether t is one of the known property types.
func (t PropertyType) Valid() bool {
	for _, known := range PropertyTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// DefaultPropertyImage is shown for listings submitted without an image.
const DefaultPropertyImage = "https://images.unsplash.com/photo-1560518883-ce09059eeffa?w=500&h=300&fit=crop"

// Coordinates is a latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Property is a committed listing. Price is currency-agnostic; display
// formatting (lakh/crore) belongs to the client.
type Property struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Type             PropertyType `json:"type"`
	Price            float64      `json:"price"`
	Location         string       `json:"location"`
	Description      string       `json:"description"`
	ShortDescription string       `json:"short_description"`
	Image            string       `json:"image"`
	Bedrooms         int          `json:"bedrooms"`
	Bathrooms        int          `json:"bathrooms"`
	Sqft             float64      `json:"sqft"`
	Coordinates      Coordinates  `json:"coordinates"`
	Featured         bool         `json:"featured"`
}

// Template selects one of the two static portfolio layouts.
type Template string

const (
	TemplateSpotlight Template = "template1" // yellow hero layout
	TemplateSplit     Template = "template2" // split-screen layout
)

// Valid reports whether t names a known layout.
func (t Template) Valid() bool {
	return t == TemplateSpotlight || t == TemplateSplit
}

// Hero is the top banner of a portfolio site.
type Hero struct {
	Name         string `json:"name"`
	Title        string `json:"title"`
	Tagline      string `json:"tagline"`
	ProfileImage string `json:"profile_image"`
}

// Socials holds optional profile links.
type Socials struct {
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Twitter  string `json:"twitter"`
	Website  string `json:"website"`
}

// About is the biography and contact block.
type About struct {
	Bio      string  `json:"bio"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Location string  `json:"location"`
	Socials  Socials `json:"socials"`
}

// Service is an offered service card.
type Service struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Work is a showcased portfolio item.
type Work struct {
	Title       string `json:"title"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

// Testimonial is a client quote.
type Testimonial struct {
	Name    string `json:"name"`
	Role    string `json:"role"`
	Company string `json:"company"`
	Quote   string `json:"quote"`
	Image   string `json:"image"`
}

// Blog is the optional featured post teaser.
type Blog struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

// Contact is the closing call-to-action block.
type Contact struct {
	Message string `json:"message"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// Portfolio is a committed, immutable portfolio site definition.
type Portfolio struct {
	ID           string        `json:"id"`
	Template     Template      `json:"template"`
	Hero         Hero          `json:"hero"`
	About        About         `json:"about"`
	Skills       []string      `json:"skills"`
	Services     []Service     `json:"services"`
	Works        []Work        `json:"portfolio"`
	Testimonials []Testimonial `json:"testimonials"`
	Blog         Blog          `json:"blog"`
	Contact      Contact       `json:"contact"`
	CreatedAt    time.Time     `json:"created_at"`
}

// SourceRef identifies an entity touched by a domain event.
type SourceRef struct {
	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id"`
	Role       string `json:"role"` // "subject", "context"
}

// ActivityEntry is one row of the activity feed: a domain event indexed
// under one of the entities it affected.
type ActivityEntry struct {
	EventID    string          `json:"event_id"`
	EventType  string          `json:"event_type"`
	OccurredAt time.Time       `json:"occurred_at"`
	EntityType string          `json:"entity_type"`
	EntityID   string          `json:"entity_id"`
	EntityRole string          `json:"entity_role"`
	Summary    string          `json:"summary"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}
