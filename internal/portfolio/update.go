package portfolio

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/matthewbaird/showcase/internal/types"
)

// ErrUnknownUpdate is returned by DecodeUpdate for an unrecognised op.
var ErrUnknownUpdate = errors.New("unknown draft update")

// Update is one edit to a draft. The set of variants is closed; each is
// dispatched through Apply. Pointer fields left nil keep their current
// value.
type Update interface {
	apply(d *Draft)
}

// Apply returns a copy of d with u applied. Edits that would break a
// draft invariant (duplicate skill, removing the last testimonial, an
// index out of range) leave the copy unchanged.
func Apply(d Draft, u Update) Draft {
	next := d.Clone()
	u.apply(&next)
	return next
}

func set(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// HeroUpdate edits the hero section.
type HeroUpdate struct {
	Name         *string `json:"name,omitempty"`
	Title        *string `json:"title,omitempty"`
	Tagline      *string `json:"tagline,omitempty"`
	ProfileImage *string `json:"profile_image,omitempty"`
}

func (u HeroUpdate) apply(d *Draft) {
	set(&d.Hero.Name, u.Name)
	set(&d.Hero.Title, u.Title)
	set(&d.Hero.Tagline, u.Tagline)
	set(&d.Hero.ProfileImage, u.ProfileImage)
}

// SocialsUpdate edits the nested social links of the about section.
type SocialsUpdate struct {
	LinkedIn *string `json:"linkedin,omitempty"`
	GitHub   *string `json:"github,omitempty"`
	Twitter  *string `json:"twitter,omitempty"`
	Website  *string `json:"website,omitempty"`
}

// AboutUpdate edits the about section.
type AboutUpdate struct {
	Bio      *string        `json:"bio,omitempty"`
	Email    *string        `json:"email,omitempty"`
	Phone    *string        `json:"phone,omitempty"`
	Location *string        `json:"location,omitempty"`
	Socials  *SocialsUpdate `json:"socials,omitempty"`
}

func (u AboutUpdate) apply(d *Draft) {
	set(&d.About.Bio, u.Bio)
	set(&d.About.Email, u.Email)
	set(&d.About.Phone, u.Phone)
	set(&d.About.Location, u.Location)
	if s := u.Socials; s != nil {
		set(&d.About.Socials.LinkedIn, s.LinkedIn)
		set(&d.About.Socials.GitHub, s.GitHub)
		set(&d.About.Socials.Twitter, s.Twitter)
		set(&d.About.Socials.Website, s.Website)
	}
}

// SkillAdd appends a trimmed skill unless it is blank or already present
// (case-sensitive).
type SkillAdd struct {
	Value string `json:"value"`
}

func (u SkillAdd) apply(d *Draft) {
	v := strings.TrimSpace(u.Value)
	if v == "" || slices.Contains(d.Skills, v) {
		return
	}
	d.Skills = append(d.Skills, v)
}

// SkillRemove removes the skill at Index.
type SkillRemove struct {
	Index int `json:"index"`
}

func (u SkillRemove) apply(d *Draft) {
	if u.Index < 0 || u.Index >= len(d.Skills) {
		return
	}
	d.Skills = slices.Delete(d.Skills, u.Index, u.Index+1)
}

// ServiceUpdate edits the service slot at Index.
type ServiceUpdate struct {
	Index       int     `json:"index"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (u ServiceUpdate) apply(d *Draft) {
	if u.Index < 0 || u.Index >= len(d.Services) {
		return
	}
	s := &d.Services[u.Index]
	set(&s.Title, u.Title)
	set(&s.Description, u.Description)
}

// WorkUpdate edits the portfolio slot at Index.
type WorkUpdate struct {
	Index       int     `json:"index"`
	Title       *string `json:"title,omitempty"`
	Image       *string `json:"image,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (u WorkUpdate) apply(d *Draft) {
	if u.Index < 0 || u.Index >= len(d.Works) {
		return
	}
	w := &d.Works[u.Index]
	set(&w.Title, u.Title)
	set(&w.Image, u.Image)
	set(&w.Description, u.Description)
}

// TestimonialAdd appends an empty testimonial.
type TestimonialAdd struct{}

func (TestimonialAdd) apply(d *Draft) {
	d.Testimonials = append(d.Testimonials, types.Testimonial{})
}

// TestimonialRemove removes the testimonial at Index, but never the last
// remaining one.
type TestimonialRemove struct {
	Index int `json:"index"`
}

func (u TestimonialRemove) apply(d *Draft) {
	if len(d.Testimonials) <= 1 || u.Index < 0 || u.Index >= len(d.Testimonials) {
		return
	}
	d.Testimonials = slices.Delete(d.Testimonials, u.Index, u.Index+1)
}

// TestimonialUpdate edits the testimonial at Index.
type TestimonialUpdate struct {
	Index   int     `json:"index"`
	Name    *string `json:"name,omitempty"`
	Role    *string `json:"role,omitempty"`
	Company *string `json:"company,omitempty"`
	Quote   *string `json:"quote,omitempty"`
	Image   *string `json:"image,omitempty"`
}

func (u TestimonialUpdate) apply(d *Draft) {
	if u.Index < 0 || u.Index >= len(d.Testimonials) {
		return
	}
	t := &d.Testimonials[u.Index]
	set(&t.Name, u.Name)
	set(&t.Role, u.Role)
	set(&t.Company, u.Company)
	set(&t.Quote, u.Quote)
	set(&t.Image, u.Image)
}

// BlogUpdate edits the blog teaser.
type BlogUpdate struct {
	Title   *string `json:"title,omitempty"`
	Summary *string `json:"summary,omitempty"`
}

func (u BlogUpdate) apply(d *Draft) {
	set(&d.Blog.Title, u.Title)
	set(&d.Blog.Summary, u.Summary)
}

// ContactUpdate edits the contact block.
type ContactUpdate struct {
	Message *string `json:"message,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
}

func (u ContactUpdate) apply(d *Draft) {
	set(&d.Contact.Message, u.Message)
	set(&d.Contact.Email, u.Email)
	set(&d.Contact.Phone, u.Phone)
}

// Wire names of the update variants.
const (
	OpHero              = "hero"
	OpAbout             = "about"
	OpSkillAdd          = "skill_add"
	OpSkillRemove       = "skill_remove"
	OpService           = "service"
	OpWork              = "portfolio"
	OpTestimonialAdd    = "testimonial_add"
	OpTestimonialRemove = "testimonial_remove"
	OpTestimonial       = "testimonial"
	OpBlog              = "blog"
	OpContact           = "contact"
)

// DecodeUpdate turns a wire envelope {op, data} into an Update.
func DecodeUpdate(op string, data json.RawMessage) (Update, error) {
	var u Update
	switch op {
	case OpHero:
		u = &HeroUpdate{}
	case OpAbout:
		u = &AboutUpdate{}
	case OpSkillAdd:
		u = &SkillAdd{}
	case OpSkillRemove:
		u = &SkillRemove{}
	case OpService:
		u = &ServiceUpdate{}
	case OpWork:
		u = &WorkUpdate{}
	case OpTestimonialAdd:
		return TestimonialAdd{}, nil
	case OpTestimonialRemove:
		u = &TestimonialRemove{}
	case OpTestimonial:
		u = &TestimonialUpdate{}
	case OpBlog:
		u = &BlogUpdate{}
	case OpContact:
		u = &ContactUpdate{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownUpdate, op)
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, u); err != nil {
			return nil, fmt.Errorf("decoding %s update: %w", op, err)
		}
	}
	return u, nil
}
