package listing

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/matthewbaird/showcase/internal/types"
)

// TypeAll disables the type criterion.
const TypeAll = "all"

// Default price bounds of the dashboard's range slider.
const (
	DefaultMinPrice = 0
	DefaultMaxPrice = 50_000_000
)

// Criteria are the three independent dashboard filters.
type Criteria struct {
	Search   string  `json:"search"`
	Type     string  `json:"type"`      // a PropertyType or TypeAll
	MinPrice float64 `json:"min_price"` // inclusive
	MaxPrice float64 `json:"max_price"` // inclusive
}

// DefaultCriteria matches the dashboard's initial state.
func DefaultCriteria() Criteria {
	return Criteria{
		Type:     TypeAll,
		MinPrice: DefaultMinPrice,
		MaxPrice: DefaultMaxPrice,
	}
}

// Filter returns the subsequence of props that satisfies every criterion,
// in the original order. It never mutates props.
func Filter(props []types.Property, c Criteria) []types.Property {
	term := strings.ToLower(c.Search)
	out := make([]types.Property, 0, len(props))
	for _, p := range props {
		if term != "" && !matchesSearch(p, term) {
			continue
		}
		if c.Type != TypeAll && string(p.Type) != c.Type {
			continue
		}
		if p.Price < c.MinPrice || p.Price > c.MaxPrice {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesSearch(p types.Property, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(p.Name), lowerTerm) ||
		strings.Contains(strings.ToLower(p.Location), lowerTerm) ||
		strings.Contains(strings.ToLower(p.Description), lowerTerm)
}

// ParseCriteria reads search, type, min_price and max_price from query
// parameters. Absent values keep their defaults; malformed ones are
// reported per field.
func ParseCriteria(q url.Values) (Criteria, FieldErrors) {
	c := DefaultCriteria()
	errs := FieldErrors{}

	c.Search = q.Get("search")
	if v := q.Get("type"); v != "" {
		if v != TypeAll && !types.PropertyType(v).Valid() {
			errs["type"] = "Property type is invalid"
		}
		c.Type = v
	}
	if v := q.Get("min_price"); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs["min_price"] = "Minimum price must be a valid number"
		}
		c.MinPrice = n
	}
	if v := q.Get("max_price"); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs["max_price"] = "Maximum price must be a valid number"
		}
		c.MaxPrice = n
	}
	return c, errs
}
