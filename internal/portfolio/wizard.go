package portfolio

import (
	"errors"
	"strings"

	"github.com/matthewbaird/showcase/internal/types"
)

// ErrNotFinalStep is returned when a wizard is submitted before it has
// reached the contact step.
var ErrNotFinalStep = errors.New("wizard is not on the final step")

// Step names one page of the wizard.
type Step string

const (
	StepHero         Step = "hero"
	StepAbout        Step = "about"
	StepSkills       Step = "skills"
	StepServices     Step = "services"
	StepPortfolio    Step = "portfolio"
	StepTestimonials Step = "testimonials"
	StepBlog         Step = "blog"
	StepContact      Step = "contact"
)

// Steps is the fixed, strictly linear step order.
var Steps = []Step{
	StepHero, StepAbout, StepSkills, StepServices,
	StepPortfolio, StepTestimonials, StepBlog, StepContact,
}

// FieldErrors maps a field path to a human-readable message.
type FieldErrors map[string]string

// Wizard is a draft plus the step the user is on. It is not safe for
// concurrent use; session.Session serialises access.
type Wizard struct {
	step  int
	draft Draft
}

// NewWizard starts a wizard on the hero step with a fresh draft.
func NewWizard(template types.Template) *Wizard {
	return &Wizard{draft: NewDraft(template)}
}

// Step returns the current step.
func (w *Wizard) Step() Step { return Steps[w.step] }

// StepIndex returns the zero-based position of the current step.
func (w *Wizard) StepIndex() int { return w.step }

// IsFirst reports whether the wizard is on the hero step.
func (w *Wizard) IsFirst() bool { return w.step == 0 }

// IsLast reports whether the wizard is on the contact step.
func (w *Wizard) IsLast() bool { return w.step == len(Steps)-1 }

// Next advances one step. Advancing is never blocked by missing fields;
// it is a no-op on the last step.
func (w *Wizard) Next() {
	if !w.IsLast() {
		w.step++
	}
}

// Previous goes back one step; a no-op on the first step.
func (w *Wizard) Previous() {
	if !w.IsFirst() {
		w.step--
	}
}

// Draft returns a copy of the current draft.
func (w *Wizard) Draft() Draft { return w.draft.Clone() }

// Apply edits the draft.
func (w *Wizard) Apply(u Update) {
	w.draft = Apply(w.draft, u)
}

// Submit returns the pruned draft ready to publish. Only the final step
// may submit.
func (w *Wizard) Submit() (Draft, error) {
	if !w.IsLast() {
		return Draft{}, ErrNotFinalStep
	}
	return Prune(w.draft), nil
}

// CheckStep reports the required fields of step that are still blank.
// The result is advisory: the wizard does not gate Next on it.
func CheckStep(d Draft, step Step) FieldErrors {
	errs := FieldErrors{}
	switch step {
	case StepHero:
		required(errs, "hero.name", d.Hero.Name, "Full name is required")
		required(errs, "hero.title", d.Hero.Title, "Job title is required")
		required(errs, "hero.tagline", d.Hero.Tagline, "Tagline is required")
		required(errs, "hero.profile_image", d.Hero.ProfileImage, "Profile image URL is required")
	case StepAbout:
		required(errs, "about.bio", d.About.Bio, "Bio is required")
		required(errs, "about.email", d.About.Email, "Email is required")
		required(errs, "about.phone", d.About.Phone, "Phone is required")
		required(errs, "about.location", d.About.Location, "Location is required")
	}
	return errs
}

func required(errs FieldErrors, field, value, msg string) {
	if strings.TrimSpace(value) == "" {
		errs[field] = msg
	}
}
