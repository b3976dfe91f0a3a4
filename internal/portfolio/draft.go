// Package portfolio holds the portfolio-generator slice: the wizard draft
// and its update reducer, the step sequence, the pruning commit, and the
// store of published portfolios.
package portfolio

import (
	"slices"
	"time"

	"github.com/matthewbaird/showcase/internal/types"
)

// Pre-seeded slot counts of a fresh draft.
const (
	serviceSlots = 3
	workSlots    = 3
)

// Draft is an in-progress portfolio. Drafts are values: Apply returns a
// new draft and never shares slices with the one it was given.
type Draft struct {
	Template     types.Template      `json:"template"`
	Hero         types.Hero          `json:"hero"`
	About        types.About         `json:"about"`
	Skills       []string            `json:"skills"`
	Services     []types.Service     `json:"services"`
	Works        []types.Work        `json:"portfolio"`
	Testimonials []types.Testimonial `json:"testimonials"`
	Blog         types.Blog          `json:"blog"`
	Contact      types.Contact       `json:"contact"`
}

// NewDraft returns an empty draft for the given layout, with three
// service slots, three portfolio slots and one testimonial slot.
func NewDraft(template types.Template) Draft {
	return Draft{
		Template:     template,
		Skills:       []string{},
		Services:     make([]types.Service, serviceSlots),
		Works:        make([]types.Work, workSlots),
		Testimonials: make([]types.Testimonial, 1),
	}
}

// Clone returns a deep copy of d.
func (d Draft) Clone() Draft {
	out := d
	out.Skills = slices.Clone(d.Skills)
	out.Services = slices.Clone(d.Services)
	out.Works = slices.Clone(d.Works)
	out.Testimonials = slices.Clone(d.Testimonials)
	return out
}

// Prune drops incomplete collection entries: services need a title and a
// description, works need a title, an image and a description,
// testimonials need a name and a quote.
func Prune(d Draft) Draft {
	out := d.Clone()
	out.Services = slices.DeleteFunc(out.Services, func(s types.Service) bool {
		return s.Title == "" || s.Description == ""
	})
	out.Works = slices.DeleteFunc(out.Works, func(w types.Work) bool {
		return w.Title == "" || w.Image == "" || w.Description == ""
	})
	out.Testimonials = slices.DeleteFunc(out.Testimonials, func(t types.Testimonial) bool {
		return t.Name == "" || t.Quote == ""
	})
	return out
}

// Publish prunes d and stamps it into an immutable portfolio record.
func Publish(d Draft, id string, now time.Time) types.Portfolio {
	p := Prune(d)
	return types.Portfolio{
		ID:           id,
		Template:     p.Template,
		Hero:         p.Hero,
		About:        p.About,
		Skills:       p.Skills,
		Services:     p.Services,
		Works:        p.Works,
		Testimonials: p.Testimonials,
		Blog:         p.Blog,
		Contact:      p.Contact,
		CreatedAt:    now,
	}
}
