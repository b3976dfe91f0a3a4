package resume

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/matthewbaird/showcase/internal/types"
)

// ErrUnknownUpdate is returned by DecodeUpdate for an unrecognised op.
var ErrUnknownUpdate = errors.New("unknown resume update")

// FieldErrors maps a field name to a human-readable message.
type FieldErrors map[string]string

// InvalidUpdateError reports field values an update cannot carry.
type InvalidUpdateError struct {
	Op     string
	Errors FieldErrors
}

func (e *InvalidUpdateError) Error() string {
	return fmt.Sprintf("invalid %s update: %d field(s)", e.Op, len(e.Errors))
}

// Update is one edit to a resume. Entries are addressed by id; an id that
// matches nothing leaves the resume unchanged.
type Update interface {
	apply(r *types.Resume)
}

// checker is implemented by updates whose values need range checks.
type checker interface {
	check(errs FieldErrors)
}

// Apply returns a copy of r with u applied.
func Apply(r types.Resume, u Update) types.Resume {
	next := Clone(r)
	u.apply(&next)
	return next
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func checkLevel(errs FieldErrors, level *int) {
	if level != nil && (*level < 1 || *level > 100) {
		errs["level"] = "Level must be between 1 and 100"
	}
}

func checkCategory(errs FieldErrors, c *types.SkillCategory) {
	if c != nil && !c.Valid() {
		errs["category"] = "Category must be technical, soft or language"
	}
}

// PersonalInfoUpdate edits the header fields.
type PersonalInfoUpdate struct {
	Name         *string `json:"name,omitempty"`
	Title        *string `json:"title,omitempty"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Location     *string `json:"location,omitempty"`
	Website      *string `json:"website,omitempty"`
	Bio          *string `json:"bio,omitempty"`
	ProfileImage *string `json:"profile_image,omitempty"`
}

func (u PersonalInfoUpdate) apply(r *types.Resume) {
	p := &r.PersonalInfo
	set(&p.Name, u.Name)
	set(&p.Title, u.Title)
	set(&p.Email, u.Email)
	set(&p.Phone, u.Phone)
	set(&p.Location, u.Location)
	set(&p.Website, u.Website)
	set(&p.Bio, u.Bio)
	set(&p.ProfileImage, u.ProfileImage)
}

// SkillAdd appends a skill. A blank name is ignored; level and category
// default to 80 and technical.
type SkillAdd struct {
	Name     string               `json:"name"`
	Level    *int                 `json:"level,omitempty"`
	Category *types.SkillCategory `json:"category,omitempty"`
}

func (u SkillAdd) check(errs FieldErrors) {
	checkLevel(errs, u.Level)
	checkCategory(errs, u.Category)
}

func (u SkillAdd) apply(r *types.Resume) {
	name := strings.TrimSpace(u.Name)
	if name == "" {
		return
	}
	s := types.ResumeSkill{ID: newID(), Name: name, Level: DefaultSkillLevel, Category: types.SkillCategoryTechnical}
	set(&s.Level, u.Level)
	set(&s.Category, u.Category)
	r.Skills = append(r.Skills, s)
}

// SkillUpdate edits the skill with ID.
type SkillUpdate struct {
	ID       string               `json:"id"`
	Name     *string              `json:"name,omitempty"`
	Level    *int                 `json:"level,omitempty"`
	Category *types.SkillCategory `json:"category,omitempty"`
}

func (u SkillUpdate) check(errs FieldErrors) {
	checkLevel(errs, u.Level)
	checkCategory(errs, u.Category)
}

func (u SkillUpdate) apply(r *types.Resume) {
	i := slices.IndexFunc(r.Skills, func(s types.ResumeSkill) bool { return s.ID == u.ID })
	if i < 0 {
		return
	}
	s := &r.Skills[i]
	set(&s.Name, u.Name)
	set(&s.Level, u.Level)
	set(&s.Category, u.Category)
}

// SkillRemove deletes the skill with ID.
type SkillRemove struct {
	ID string `json:"id"`
}

func (u SkillRemove) apply(r *types.Resume) {
	r.Skills = slices.DeleteFunc(r.Skills, func(s types.ResumeSkill) bool { return s.ID == u.ID })
}

// ProjectFields are the editable fields of a project.
type ProjectFields struct {
	Title        *string   `json:"title,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Technologies *[]string `json:"technologies,omitempty"`
	Image        *string   `json:"image,omitempty"`
	LiveURL      *string   `json:"live_url,omitempty"`
	GitHubURL    *string   `json:"github_url,omitempty"`
	Featured     *bool     `json:"featured,omitempty"`
}

func (f ProjectFields) applyTo(p *types.Project) {
	set(&p.Title, f.Title)
	set(&p.Description, f.Description)
	if f.Technologies != nil {
		p.Technologies = cleanList(*f.Technologies)
	}
	set(&p.Image, f.Image)
	set(&p.LiveURL, f.LiveURL)
	set(&p.GitHubURL, f.GitHubURL)
	set(&p.Featured, f.Featured)
}

// ProjectAdd appends a project. Omitted fields take the builder's
// placeholder values.
type ProjectAdd struct {
	ProjectFields
}

func (u ProjectAdd) apply(r *types.Resume) {
	p := types.Project{
		ID:           newID(),
		Title:        DefaultProjectTitle,
		Description:  defaultProjectSynopsis,
		Technologies: []string{"React", "JavaScript"},
		Image:        DefaultProjectImage,
	}
	u.applyTo(&p)
	r.Projects = append(r.Projects, p)
}

// ProjectUpdate edits the project with ID.
type ProjectUpdate struct {
	ID string `json:"id"`
	ProjectFields
}

func (u ProjectUpdate) apply(r *types.Resume) {
	if i := slices.IndexFunc(r.Projects, func(p types.Project) bool { return p.ID == u.ID }); i >= 0 {
		u.applyTo(&r.Projects[i])
	}
}

// ProjectRemove deletes the project with ID.
type ProjectRemove struct {
	ID string `json:"id"`
}

func (u ProjectRemove) apply(r *types.Resume) {
	r.Projects = slices.DeleteFunc(r.Projects, func(p types.Project) bool { return p.ID == u.ID })
}

// ExperienceFields are the editable fields of a position.
type ExperienceFields struct {
	Company      *string   `json:"company,omitempty"`
	Position     *string   `json:"position,omitempty"`
	StartDate    *string   `json:"start_date,omitempty"`
	EndDate      *string   `json:"end_date,omitempty"`
	Current      *bool     `json:"current,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Achievements *[]string `json:"achievements,omitempty"`
}

func (f ExperienceFields) applyTo(e *types.Experience) {
	set(&e.Company, f.Company)
	set(&e.Position, f.Position)
	set(&e.StartDate, f.StartDate)
	set(&e.EndDate, f.EndDate)
	set(&e.Current, f.Current)
	set(&e.Description, f.Description)
	if f.Achievements != nil {
		e.Achievements = cleanList(*f.Achievements)
	}
	if e.Current {
		e.EndDate = ""
	}
}

// ExperienceAdd appends a position.
type ExperienceAdd struct {
	ExperienceFields
}

func (u ExperienceAdd) apply(r *types.Resume) {
	e := types.Experience{ID: newID(), Achievements: []string{}}
	u.applyTo(&e)
	r.Experience = append(r.Experience, e)
}

// ExperienceUpdate edits the position with ID.
type ExperienceUpdate struct {
	ID string `json:"id"`
	ExperienceFields
}

func (u ExperienceUpdate) apply(r *types.Resume) {
	if i := slices.IndexFunc(r.Experience, func(e types.Experience) bool { return e.ID == u.ID }); i >= 0 {
		u.applyTo(&r.Experience[i])
	}
}

// ExperienceRemove deletes the position with ID.
type ExperienceRemove struct {
	ID string `json:"id"`
}

func (u ExperienceRemove) apply(r *types.Resume) {
	r.Experience = slices.DeleteFunc(r.Experience, func(e types.Experience) bool { return e.ID == u.ID })
}

// EducationFields are the editable fields of an education entry.
type EducationFields struct {
	Institution  *string   `json:"institution,omitempty"`
	Degree       *string   `json:"degree,omitempty"`
	Field        *string   `json:"field,omitempty"`
	StartDate    *string   `json:"start_date,omitempty"`
	EndDate      *string   `json:"end_date,omitempty"`
	GPA          *string   `json:"gpa,omitempty"`
	Achievements *[]string `json:"achievements,omitempty"`
}

func (f EducationFields) applyTo(e *types.Education) {
	set(&e.Institution, f.Institution)
	set(&e.Degree, f.Degree)
	set(&e.Field, f.Field)
	set(&e.StartDate, f.StartDate)
	set(&e.EndDate, f.EndDate)
	set(&e.GPA, f.GPA)
	if f.Achievements != nil {
		e.Achievements = cleanList(*f.Achievements)
	}
}

// EducationAdd appends an education entry.
type EducationAdd struct {
	EducationFields
}

func (u EducationAdd) apply(r *types.Resume) {
	e := types.Education{ID: newID(), Achievements: []string{}}
	u.applyTo(&e)
	r.Education = append(r.Education, e)
}

// EducationUpdate edits the education entry with ID.
type EducationUpdate struct {
	ID string `json:"id"`
	EducationFields
}

func (u EducationUpdate) apply(r *types.Resume) {
	if i := slices.IndexFunc(r.Education, func(e types.Education) bool { return e.ID == u.ID }); i >= 0 {
		u.applyTo(&r.Education[i])
	}
}

// EducationRemove deletes the education entry with ID.
type EducationRemove struct {
	ID string `json:"id"`
}

func (u EducationRemove) apply(r *types.Resume) {
	r.Education = slices.DeleteFunc(r.Education, func(e types.Education) bool { return e.ID == u.ID })
}

// TemplateSelect switches the template.
type TemplateSelect struct {
	Template types.ResumeTemplate `json:"template"`
}

func (u TemplateSelect) check(errs FieldErrors) {
	if _, ok := LookupTemplate(u.Template); !ok {
		errs["template"] = "Template is not available"
	}
}

func (u TemplateSelect) apply(r *types.Resume) {
	r.SelectedTemplate = u.Template
}

// cleanList trims entries and drops blank ones.
func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Wire names of the update variants.
const (
	OpPersonalInfo     = "personal_info"
	OpSkillAdd         = "skill_add"
	OpSkillUpdate      = "skill_update"
	OpSkillRemove      = "skill_remove"
	OpProjectAdd       = "project_add"
	OpProjectUpdate    = "project_update"
	OpProjectRemove    = "project_remove"
	OpExperienceAdd    = "experience_add"
	OpExperienceUpdate = "experience_update"
	OpExperienceRemove = "experience_remove"
	OpEducationAdd     = "education_add"
	OpEducationUpdate  = "education_update"
	OpEducationRemove  = "education_remove"
	OpTemplate         = "template"
)

// DecodeUpdate turns a wire envelope {op, data} into an Update. Values out
// of range are reported as an *InvalidUpdateError.
func DecodeUpdate(op string, data json.RawMessage) (Update, error) {
	var u Update
	switch op {
	case OpPersonalInfo:
		u = &PersonalInfoUpdate{}
	case OpSkillAdd:
		u = &SkillAdd{}
	case OpSkillUpdate:
		u = &SkillUpdate{}
	case OpSkillRemove:
		u = &SkillRemove{}
	case OpProjectAdd:
		u = &ProjectAdd{}
	case OpProjectUpdate:
		u = &ProjectUpdate{}
	case OpProjectRemove:
		u = &ProjectRemove{}
	case OpExperienceAdd:
		u = &ExperienceAdd{}
	case OpExperienceUpdate:
		u = &ExperienceUpdate{}
	case OpExperienceRemove:
		u = &ExperienceRemove{}
	case OpEducationAdd:
		u = &EducationAdd{}
	case OpEducationUpdate:
		u = &EducationUpdate{}
	case OpEducationRemove:
		u = &EducationRemove{}
	case OpTemplate:
		u = &TemplateSelect{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownUpdate, op)
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, u); err != nil {
			return nil, fmt.Errorf("decoding %s update: %w", op, err)
		}
	}
	if c, ok := u.(checker); ok {
		errs := FieldErrors{}
		c.check(errs)
		if len(errs) > 0 {
			return nil, &InvalidUpdateError{Op: op, Errors: errs}
		}
	}
	return u, nil
}
