package types

import "time"

// SkillCategory groups resume skills on the preview page.
type SkillCategory string

const (
	SkillCategoryTechnical SkillCategory = "technical"
	SkillCategorySoft      SkillCategory = "soft"
	SkillCategoryLanguage  SkillCategory = "language"
)

// SkillCategories returns every category in display order.
func SkillCategories() []SkillCategory {
	return []SkillCategory{SkillCategoryTechnical, SkillCategorySoft, SkillCategoryLanguage}
}

// Valid reports whether c is a known category.
func (c SkillCategory) Valid() bool {
	return c == SkillCategoryTechnical || c == SkillCategorySoft || c == SkillCategoryLanguage
}

// ResumeTemplate names one of the resume builder's layouts.
type ResumeTemplate string

const (
	ResumeTemplateModern    ResumeTemplate = "modern"
	ResumeTemplateCreative  ResumeTemplate = "creative"
	ResumeTemplateMinimal   ResumeTemplate = "minimal"
	ResumeTemplateCorporate ResumeTemplate = "corporate"
	ResumeTemplateTech      ResumeTemplate = "tech"
	ResumeTemplateArtistic  ResumeTemplate = "artistic"
)

// PersonalInfo is the resume header.
type PersonalInfo struct {
	Name         string `json:"name"`
	Title        string `json:"title"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Location     string `json:"location"`
	Website      string `json:"website"`
	Bio          string `json:"bio"`
	ProfileImage string `json:"profile_image"`
}

// ResumeSkill is a rated skill. Level runs from 1 to 100.
type ResumeSkill struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Level    int           `json:"level"`
	Category SkillCategory `json:"category"`
}

// Project is a showcased piece of work.
type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Image        string   `json:"image"`
	LiveURL      string   `json:"live_url,omitempty"`
	GitHubURL    string   `json:"github_url,omitempty"`
	Featured     bool     `json:"featured"`
}

// Experience is one position held. EndDate is empty while Current.
type Experience struct {
	ID           string   `json:"id"`
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	StartDate    string   `json:"start_date"` // YYYY-MM
	EndDate      string   `json:"end_date"`
	Current      bool     `json:"current"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
}

// Education is one degree or course of study.
type Education struct {
	ID           string   `json:"id"`
	Institution  string   `json:"institution"`
	Degree       string   `json:"degree"`
	Field        string   `json:"field"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	GPA          string   `json:"gpa,omitempty"`
	Achievements []string `json:"achievements"`
}

// Resume is the document edited by the resume builder.
type Resume struct {
	ID               string         `json:"id"`
	PersonalInfo     PersonalInfo   `json:"personal_info"`
	Skills           []ResumeSkill  `json:"skills"`
	Projects         []Project      `json:"projects"`
	Experience       []Experience   `json:"experience"`
	Education        []Education    `json:"education"`
	SelectedTemplate ResumeTemplate `json:"selected_template"`
	UpdatedAt        time.Time      `json:"updated_at"`
}
