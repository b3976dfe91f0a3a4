// Package resume is the resume builder: an editable document of rated
// skills, projects, work history and education, with a template choice and
// a preview that groups it for display.
package resume

import (
	"slices"

	"github.com/google/uuid"
	"github.com/matthewbaird/showcase/internal/types"
)

// Defaults for entries added without the optional fields.
const (
	DefaultSkillLevel      = 80
	DefaultProjectTitle    = "New Project"
	DefaultProjectImage    = "https://images.unsplash.com/photo-1517077304055-6e89abbf09b0?w=400&h=250&fit=crop"
	defaultProjectSynopsis = "Project description..."
)

func newID() string { return uuid.Must(uuid.NewV7()).String() }

// Clone returns a deep copy of r.
func Clone(r types.Resume) types.Resume {
	out := r
	out.Skills = slices.Clone(r.Skills)
	out.Projects = slices.Clone(r.Projects)
	for i := range out.Projects {
		out.Projects[i].Technologies = slices.Clone(out.Projects[i].Technologies)
	}
	out.Experience = slices.Clone(r.Experience)
	for i := range out.Experience {
		out.Experience[i].Achievements = slices.Clone(out.Experience[i].Achievements)
	}
	out.Education = slices.Clone(r.Education)
	for i := range out.Education {
		out.Education[i].Achievements = slices.Clone(out.Education[i].Achievements)
	}
	return out
}

// Blank returns an empty resume using the given template.
func Blank(template types.ResumeTemplate) types.Resume {
	return types.Resume{
		Skills:           []types.ResumeSkill{},
		Projects:         []types.Project{},
		Experience:       []types.Experience{},
		Education:        []types.Education{},
		SelectedTemplate: template,
	}
}

// Sample returns a filled-in developer resume to edit in place. Every
// entry gets a fresh id.
func Sample(template types.ResumeTemplate) types.Resume {
	r := Blank(template)
	r.PersonalInfo = types.PersonalInfo{
		Name:         "John Doe",
		Title:        "Full Stack Developer",
		Email:        "john.doe@email.com",
		Phone:        "+91 98765 43210",
		Location:     "Mumbai, India",
		Website:      "https://johndoe.dev",
		Bio:          "Passionate full-stack developer with 5+ years of experience building scalable web applications. Specialized in React, Node.js, and cloud technologies.",
		ProfileImage: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=200&h=200&fit=crop&crop=face",
	}
	for _, s := range []struct {
		name  string
		level int
		cat   types.SkillCategory
	}{
		{"JavaScript", 90, types.SkillCategoryTechnical},
		{"React", 85, types.SkillCategoryTechnical},
		{"Node.js", 80, types.SkillCategoryTechnical},
		{"Python", 75, types.SkillCategoryTechnical},
		{"Leadership", 85, types.SkillCategorySoft},
		{"Communication", 90, types.SkillCategorySoft},
	} {
		r.Skills = append(r.Skills, types.ResumeSkill{ID: newID(), Name: s.name, Level: s.level, Category: s.cat})
	}
	r.Projects = []types.Project{
		{
			ID:           newID(),
			Title:        "E-Commerce Platform",
			Description:  "Full-stack e-commerce solution with React frontend and Node.js backend. Features include user authentication, payment integration, and admin dashboard.",
			Technologies: []string{"React", "Node.js", "MongoDB", "Stripe"},
			Image:        "https://images.unsplash.com/photo-1556742049-0cfed4f6a45d?w=400&h=250&fit=crop",
			LiveURL:      "https://demo-ecommerce.com",
			GitHubURL:    "https://github.com/johndoe/ecommerce",
			Featured:     true,
		},
		{
			ID:           newID(),
			Title:        "Task Management App",
			Description:  "Collaborative task management application with real-time updates, team collaboration features, and project tracking.",
			Technologies: []string{"React", "Firebase", "Material-UI"},
			Image:        "https://images.unsplash.com/photo-1611224923853-80b023f02d71?w=400&h=250&fit=crop",
			LiveURL:      "https://taskmanager-demo.com",
			GitHubURL:    "https://github.com/johndoe/taskmanager",
			Featured:     true,
		},
	}
	r.Experience = []types.Experience{{
		ID:          newID(),
		Company:     "Tech Solutions India",
		Position:    "Senior Full Stack Developer",
		StartDate:   "2021-01",
		Current:     true,
		Description: "Leading development of enterprise web applications using modern technologies.",
		Achievements: []string{
			"Led a team of 5 developers in building a scalable CRM system",
			"Improved application performance by 40% through code optimization",
			"Implemented CI/CD pipelines reducing deployment time by 60%",
		},
	}}
	r.Education = []types.Education{{
		ID:          newID(),
		Institution: "Indian Institute of Technology, Mumbai",
		Degree:      "Bachelor of Technology",
		Field:       "Computer Science and Engineering",
		StartDate:   "2016-07",
		EndDate:     "2020-05",
		GPA:         "8.5/10",
		Achievements: []string{
			"Dean's List for 3 consecutive semesters",
			"Winner of Inter-college Coding Competition 2019",
		},
	}}
	return r
}
