package resume

import (
	"slices"

	"github.com/matthewbaird/showcase/internal/types"
)

// TemplateInfo describes a selectable template.
type TemplateInfo struct {
	ID          types.ResumeTemplate `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
}

var templates = []TemplateInfo{
	{types.ResumeTemplateModern, "Modern Professional", "Clean, minimalist design perfect for developers and designers"},
	{types.ResumeTemplateCreative, "Creative Showcase", "Bold and colorful design for creative professionals"},
	{types.ResumeTemplateMinimal, "Minimal Elegance", "Simple and elegant design focusing on content"},
	{types.ResumeTemplateCorporate, "Corporate Professional", "Professional design suitable for business and consulting"},
	{types.ResumeTemplateTech, "Tech Innovator", "Modern tech-focused design with futuristic elements"},
	{types.ResumeTemplateArtistic, "Artistic Portfolio", "Perfect for artists, photographers, and creative professionals"},
}

// Templates lists the selectable templates in display order.
func Templates() []TemplateInfo {
	return slices.Clone(templates)
}

// LookupTemplate returns the description of template id.
func LookupTemplate(id types.ResumeTemplate) (TemplateInfo, bool) {
	for _, t := range templates {
		if t.ID == id {
			return t, true
		}
	}
	return TemplateInfo{}, false
}

// SkillGroup is one category of skills on the preview.
type SkillGroup struct {
	Category types.SkillCategory `json:"category"`
	Label    string              `json:"label"`
	Skills   []types.ResumeSkill `json:"skills"`
}

var categoryLabels = map[types.SkillCategory]string{
	types.SkillCategoryTechnical: "Technical Skills",
	types.SkillCategorySoft:      "Soft Skills",
	types.SkillCategoryLanguage:  "Languages",
}

// Preview is a resume arranged for display.
type Preview struct {
	Resume      types.Resume      `json:"resume"`
	Template    TemplateInfo      `json:"template"`
	SkillGroups []SkillGroup      `json:"skill_groups"`
	Periods     map[string]string `json:"periods"` // experience id to "start - end"
}

// NewPreview arranges r for display. An unknown template falls back to modern;
// skill categories without skills are left out.
func NewPreview(r types.Resume) Preview {
	t, ok := LookupTemplate(r.SelectedTemplate)
	if !ok {
		t = templates[0]
	}

	groups := []SkillGroup{}
	for _, c := range types.SkillCategories() {
		var skills []types.ResumeSkill
		for _, s := range r.Skills {
			if s.Category == c {
				skills = append(skills, s)
			}
		}
		if len(skills) > 0 {
			groups = append(groups, SkillGroup{Category: c, Label: categoryLabels[c], Skills: skills})
		}
	}

	periods := make(map[string]string, len(r.Experience))
	for _, e := range r.Experience {
		end := e.EndDate
		if e.Current {
			end = "Present"
		}
		periods[e.ID] = e.StartDate + " - " + end
	}

	return Preview{Resume: r, Template: t, SkillGroups: groups, Periods: periods}
}
