package listing

import (
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/matthewbaird/showcase/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProperty(id, name string, typ types.PropertyType, price float64, location, description string) types.Property {
	return types.Property{
		ID:               id,
		Name:             name,
		Type:             typ,
		Price:            price,
		Location:         location,
		Description:      description,
		ShortDescription: name,
		Image:            types.DefaultPropertyImage,
		Bedrooms:         3,
		Bathrooms:        2,
		Sqft:             1500,
	}
}

// demoListings mirrors the dashboard's eight demo properties.
func demoListings() []types.Property {
	return []types.Property{
		testProperty("1", "Luxury Sea View Apartment", types.PropertyTypeApartment, 15_000_000, "Marine Drive, Mumbai, Maharashtra", "Premium 3BHK apartment with stunning Arabian Sea views"),
		testProperty("2", "Modern Villa with Garden", types.PropertyTypeVilla, 25_000_000, "Whitefield, Bangalore, Karnataka", "Spacious 4BHK villa in premium gated community"),
		testProperty("3", "Heritage Haveli Style House", types.PropertyTypeHouse, 8_500_000, "Civil Lines, Delhi", "Beautiful heritage-style house with courtyards"),
		testProperty("4", "IT Park Premium Condo", types.PropertyTypeCondo, 6_500_000, "Hitech City, Hyderabad, Telangana", "Ultra-modern 2BHK condo with smart home features"),
		testProperty("5", "Riverside Luxury Townhouse", types.PropertyTypeTownhouse, 12_000_000, "Koregaon Park, Pune, Maharashtra", "Elegant 3BHK townhouse overlooking Mula River"),
		testProperty("6", "Penthouse with City Views", types.PropertyTypeApartment, 35_000_000, "Golf Course Road, Gurgaon, Haryana", "Exclusive penthouse with 360-degree city views"),
		testProperty("7", "Beach Side Villa", types.PropertyTypeVilla, 18_000_000, "Candolim, Goa", "Stunning beach-side villa near Candolim beach"),
		testProperty("8", "Tech City Smart Apartment", types.PropertyTypeApartment, 9_500_000, "Electronic City, Bangalore, Karnataka", "Smart 2BHK apartment with IoT integration"),
	}
}

func ids(props []types.Property) []string {
	out := make([]string, len(props))
	for i, p := range props {
		out[i] = p.ID
	}
	return out
}

func TestFilter_DefaultsReturnEverything(t *testing.T) {
	all := demoListings()
	got := Filter(all, DefaultCriteria())
	if diff := cmp.Diff(all, got); diff != "" {
		t.Errorf("Filter with defaults (-want +got):\n%s", diff)
	}
}

func TestFilter_VillaScenario(t *testing.T) {
	c := DefaultCriteria()
	c.Type = string(types.PropertyTypeVilla)

	got := Filter(demoListings(), c)
	assert.Equal(t, []string{"2", "7"}, ids(got))
}

func TestFilter_SearchIsCaseInsensitiveAcrossFields(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"name", "PENTHOUSE", []string{"6"}},
		{"location", "bangalore", []string{"2", "8"}},
		{"description", "iot", []string{"8"}},
		{"shared substring", "villa", []string{"2", "7"}},
		{"no match", "chennai", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultCriteria()
			c.Search = tt.search
			assert.Equal(t, tt.want, ids(Filter(demoListings(), c)))
		})
	}
}

func TestFilter_PriceRangeIsInclusive(t *testing.T) {
	c := DefaultCriteria()
	c.MinPrice = 6_500_000
	c.MaxPrice = 9_500_000

	assert.Equal(t, []string{"3", "4", "8"}, ids(Filter(demoListings(), c)))
}

func TestFilter_CriteriaCombine(t *testing.T) {
	c := Criteria{Search: "bangalore", Type: "apartment", MinPrice: 0, MaxPrice: 10_000_000}
	assert.Equal(t, []string{"8"}, ids(Filter(demoListings(), c)))
}

// TestFilter_Properties checks, over a grid of criteria, that the result
// is exactly the order-preserving subsequence of matching entities and
// that re-filtering is idempotent.
func TestFilter_Properties(t *testing.T) {
	all := demoListings()
	searches := []string{"", "a", "Delhi", "smart", "zzz"}
	typeFilters := append([]string{TypeAll}, "villa", "apartment", "condo")
	ranges := [][2]float64{{0, 50_000_000}, {8_500_000, 18_000_000}, {20_000_000, 10_000_000}}

	for _, s := range searches {
		for _, tf := range typeFilters {
			for _, r := range ranges {
				c := Criteria{Search: s, Type: tf, MinPrice: r[0], MaxPrice: r[1]}
				got := Filter(all, c)

				var want []types.Property
				for _, p := range all {
					term := strings.ToLower(s)
					searchOK := s == "" ||
						strings.Contains(strings.ToLower(p.Name), term) ||
						strings.Contains(strings.ToLower(p.Location), term) ||
						strings.Contains(strings.ToLower(p.Description), term)
					typeOK := tf == TypeAll || string(p.Type) == tf
					priceOK := p.Price >= r[0] && p.Price <= r[1]
					if searchOK && typeOK && priceOK {
						want = append(want, p)
					}
				}
				assert.Equal(t, ids(want), ids(got), "criteria %+v", c)
				assert.Equal(t, got, Filter(all, c), "re-filter must be identical for %+v", c)
			}
		}
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	all := demoListings()
	before := demoListings()
	_ = Filter(all, Criteria{Search: "villa", Type: "villa", MaxPrice: 1})
	assert.Equal(t, before, all)
}

func TestParseCriteria(t *testing.T) {
	c, errs := ParseCriteria(url.Values{})
	require.True(t, errs.Empty())
	assert.Equal(t, DefaultCriteria(), c)

	c, errs = ParseCriteria(url.Values{
		"search":    {"goa"},
		"type":      {"villa"},
		"min_price": {"1000"},
		"max_price": {"20000000"},
	})
	require.True(t, errs.Empty())
	assert.Equal(t, Criteria{Search: "goa", Type: "villa", MinPrice: 1000, MaxPrice: 20_000_000}, c)

	_, errs = ParseCriteria(url.Values{"type": {"castle"}, "min_price": {"cheap"}})
	assert.Contains(t, errs, "type")
	assert.Contains(t, errs, "min_price")
	assert.NotContains(t, errs, "max_price")
}
