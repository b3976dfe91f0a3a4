package listing

import (
	"context"
	"testing"

	"github.com/matthewbaird/showcase/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmission() Submission {
	return Submission{
		Name:             "Test Villa",
		Type:             "villa",
		Price:            "5000000",
		Location:         "Test City",
		Description:      "desc",
		ShortDescription: "short",
		Sqft:             "1000",
	}
}

func keys(errs FieldErrors) []string {
	out := make([]string, 0, len(errs))
	for k := range errs {
		out = append(out, k)
	}
	return out
}

func TestValidate_ValidSubmission(t *testing.T) {
	assert.Empty(t, Validate(validSubmission()))
}

func TestValidate_MissingFieldsAndZeroPrice(t *testing.T) {
	s := validSubmission()
	s.Name = ""
	s.Price = "0"
	s.Location = "   "

	errs := Validate(s)
	assert.ElementsMatch(t, []string{"name", "price", "location"}, keys(errs))
	assert.Equal(t, "Property name is required", errs["name"])
	assert.Equal(t, "Price must be greater than 0", errs["price"])
	assert.Equal(t, "Location is required", errs["location"])
}

func TestValidate_EverythingEmpty(t *testing.T) {
	errs := Validate(Submission{})
	assert.ElementsMatch(t,
		[]string{"name", "price", "location", "description", "short_description", "sqft"},
		keys(errs))
	assert.Equal(t, "Price is required", errs["price"])
	assert.Equal(t, "Square footage is required", errs["sqft"])
	assert.Equal(t, "Short description is required", errs["short_description"])
}

func TestValidate_NumericFields(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*Submission)
		field string
		msg   string
	}{
		{"negative sqft", func(s *Submission) { s.Sqft = "-5" }, "sqft", "Square footage must be greater than 0"},
		{"price not a number", func(s *Submission) { s.Price = "lots" }, "price", "Price must be a valid number"},
		{"price NaN", func(s *Submission) { s.Price = "NaN" }, "price", "Price must be a valid number"},
		{"fractional bedrooms", func(s *Submission) { s.Bedrooms = "2.5" }, "bedrooms", "Bedrooms must be a positive whole number"},
		{"zero bathrooms", func(s *Submission) { s.Bathrooms = "0" }, "bathrooms", "Bathrooms must be a positive whole number"},
		{"latitude out of range", func(s *Submission) { s.Latitude = "91" }, "latitude", "Latitude must be a number between -90 and 90"},
		{"unknown type", func(s *Submission) { s.Type = "castle" }, "type", "Property type is invalid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSubmission()
			tt.edit(&s)
			errs := Validate(s)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.msg, errs[tt.field])
		})
	}
}

func TestNormalize_AppliesFormDefaults(t *testing.T) {
	s := validSubmission()
	s.Name = "  Test Villa  "
	s.Type = ""

	p := Normalize(s)
	assert.Equal(t, "Test Villa", p.Name)
	assert.Equal(t, types.PropertyTypeApartment, p.Type)
	assert.Equal(t, 5_000_000.0, p.Price)
	assert.Equal(t, 1000.0, p.Sqft)
	assert.Equal(t, 2, p.Bedrooms)
	assert.Equal(t, 2, p.Bathrooms)
	assert.Equal(t, types.DefaultPropertyImage, p.Image)
	assert.Equal(t, types.Coordinates{Lat: 28.6139, Lng: 77.2090}, p.Coordinates)
	assert.False(t, p.Featured)
	assert.Empty(t, p.ID)
}

func TestCatalog_SubmitSucceeds(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	catalog := NewCatalog(store)

	before, _ := store.Count(ctx)
	p, errs, err := catalog.Submit(ctx, validSubmission())
	require.NoError(t, err)
	assert.Len(t, errs, 0)
	assert.NotEmpty(t, p.ID)

	after, _ := store.Count(ctx)
	assert.Equal(t, before+1, after)

	got, err := catalog.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Test Villa", got.Name)
}

func TestCatalog_SubmitRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	catalog := NewCatalog(store)

	s := validSubmission()
	s.Name = ""
	s.Price = "0"
	s.Location = ""

	_, errs, err := catalog.Submit(ctx, s)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"name", "price", "location"}, keys(errs))

	n, _ := store.Count(ctx)
	assert.Zero(t, n, "invalid submission must not be committed")
}

func TestCatalog_BrowseSeesNewListings(t *testing.T) {
	ctx := context.Background()
	catalog := NewCatalog(NewMemoryStore())

	c := DefaultCriteria()
	c.Search = "test city"
	got, err := catalog.Browse(ctx, c)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, _, err = catalog.Submit(ctx, validSubmission())
	require.NoError(t, err)

	got, err = catalog.Browse(ctx, c)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Test Villa", got[0].Name)
}
