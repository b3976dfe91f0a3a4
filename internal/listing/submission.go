package listing

import (
	"math"
	"strconv"
	"strings"

	"github.com/matthewbaird/showcase/internal/types"
)

// FieldErrors maps a field name to a human-readable message. A field
// missing from the map is valid.
type FieldErrors map[string]string

// Empty reports whether no field failed.
func (e FieldErrors) Empty() bool { return len(e) == 0 }

// Form defaults for fields the add-property form pre-fills.
const (
	defaultRooms     = 2
	defaultLatitude  = 28.6139
	defaultLongitude = 77.2090
)

// Submission is the raw add-property form. Numeric fields arrive as the
// strings the user typed.
type Submission struct {
	Name             string `json:"name"`
	Type             string `json:"type"`
	Price            string `json:"price"`
	Location         string `json:"location"`
	Description      string `json:"description"`
	ShortDescription string `json:"short_description"`
	Image            string `json:"image"`
	Bedrooms         string `json:"bedrooms"`
	Bathrooms        string `json:"bathrooms"`
	Sqft             string `json:"sqft"`
	Latitude         string `json:"latitude"`
	Longitude        string `json:"longitude"`
	Featured         bool   `json:"featured"`
}

// Validate checks a submission and returns every failing field. It never
// panics; the submission is acceptable iff the result is empty.
func Validate(s Submission) FieldErrors {
	errs := FieldErrors{}

	requireText(errs, "name", s.Name, "Property name is required")
	requirePositive(errs, "price", s.Price, "Price")
	requireText(errs, "location", s.Location, "Location is required")
	requireText(errs, "description", s.Description, "Description is required")
	requireText(errs, "short_description", s.ShortDescription, "Short description is required")
	requirePositive(errs, "sqft", s.Sqft, "Square footage")

	if t := strings.TrimSpace(s.Type); t != "" && !types.PropertyType(t).Valid() {
		errs["type"] = "Property type is invalid"
	}
	if _, ok := parseRooms(s.Bedrooms); !ok {
		errs["bedrooms"] = "Bedrooms must be a positive whole number"
	}
	if _, ok := parseRooms(s.Bathrooms); !ok {
		errs["bathrooms"] = "Bathrooms must be a positive whole number"
	}
	if _, ok := parseCoordinate(s.Latitude, defaultLatitude, 90); !ok {
		errs["latitude"] = "Latitude must be a number between -90 and 90"
	}
	if _, ok := parseCoordinate(s.Longitude, defaultLongitude, 180); !ok {
		errs["longitude"] = "Longitude must be a number between -180 and 180"
	}
	return errs
}

// Normalize converts a validated submission into a property candidate:
// strings trimmed, numbers parsed, form defaults applied. The id is left
// for the store to assign. Calling it on an invalid submission yields
// zero values for the failing fields.
func Normalize(s Submission) types.Property {
	typ := types.PropertyType(strings.TrimSpace(s.Type))
	if typ == "" {
		typ = types.PropertyTypeApartment
	}
	image := strings.TrimSpace(s.Image)
	if image == "" {
		image = types.DefaultPropertyImage
	}
	price, _ := parseNumber(s.Price)
	sqft, _ := parseNumber(s.Sqft)
	bedrooms, _ := parseRooms(s.Bedrooms)
	bathrooms, _ := parseRooms(s.Bathrooms)
	lat, _ := parseCoordinate(s.Latitude, defaultLatitude, 90)
	lng, _ := parseCoordinate(s.Longitude, defaultLongitude, 180)

	return types.Property{
		Name:             strings.TrimSpace(s.Name),
		Type:             typ,
		Price:            price,
		Location:         strings.TrimSpace(s.Location),
		Description:      strings.TrimSpace(s.Description),
		ShortDescription: strings.TrimSpace(s.ShortDescription),
		Image:            image,
		Bedrooms:         bedrooms,
		Bathrooms:        bathrooms,
		Sqft:             sqft,
		Coordinates:      types.Coordinates{Lat: lat, Lng: lng},
		Featured:         s.Featured,
	}
}

func requireText(errs FieldErrors, field, value, msg string) {
	if strings.TrimSpace(value) == "" {
		errs[field] = msg
	}
}

func requirePositive(errs FieldErrors, field, raw, label string) {
	if strings.TrimSpace(raw) == "" {
		errs[field] = label + " is required"
		return
	}
	n, ok := parseNumber(raw)
	if !ok {
		errs[field] = label + " must be a valid number"
		return
	}
	if n <= 0 {
		errs[field] = label + " must be greater than 0"
	}
}

func parseNumber(raw string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// parseRooms defaults an empty value to two rooms.
func parseRooms(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultRooms, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func parseCoordinate(raw string, def, limit float64) (float64, bool) {
	if strings.TrimSpace(raw) == "" {
		return def, true
	}
	n, ok := parseNumber(raw)
	if !ok || n < -limit || n > limit {
		return 0, false
	}
	return n, true
}
