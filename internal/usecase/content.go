package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"portfolio/internal/domain/profile"
	"portfolio/internal/domain/project"
	"portfolio/internal/domain/skill"
	"portfolio/internal/i18n"
	"portfolio/internal/repository"

	"github.com/google/uuid"
)

const (
	PlaceholderImage = "/placeholder.svg"

	defaultYearsExperience = 3
	defaultProjectsCount   = 12
)

type ProfileView struct {
	Name             string `json:"name"`
	Title            string `json:"title"`
	Bio              string `json:"bio"`
	AboutDescription string `json:"about_description"`
	YearsExperience  int    `json:"years_experience"`
	ProjectsCount    int    `json:"projects_count"`
	ProfileImage     string `json:"profile_image"`
	CVURL            string `json:"cv_url"`
	CVFileName       string `json:"cv_file_name"`
}

type ProjectCard struct {
	ID                 uuid.UUID `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	CoverImage         string    `json:"cover_image"`
	Technologies       []string  `json:"technologies"`
	LiveDemoLink       *string   `json:"live_demo_link"`
	GithubLink         *string   `json:"github_link"`
	IsUnderDevelopment bool      `json:"is_under_development"`
}

type ProjectList struct {
	Items []ProjectCard `json:"items"`
	Empty bool          `json:"empty"`
}

type ProjectDetail struct {
	ID                 uuid.UUID `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	About              string    `json:"about"`
	Images             []string  `json:"images"`
	Technologies       []string  `json:"technologies"`
	KeyFeatures        []string  `json:"key_features"`
	LiveDemoLink       *string   `json:"live_demo_link"`
	GithubLink         *string   `json:"github_link"`
	IsUnderDevelopment bool      `json:"is_under_development"`
	CreatedAt          time.Time `json:"created_at"`
}

type SkillItem struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
	LogoURL  string    `json:"logo_url"`
}

type SkillGroup struct {
	Category string      `json:"category"`
	Title    string      `json:"title"`
	Skills   []SkillItem `json:"skills"`
}

type SkillsView struct {
	Items  []SkillItem  `json:"items"`
	Groups []SkillGroup `json:"groups"`
}

type ContentUsecase interface {
	GetProfile(ctx context.Context, lang i18n.Language) ProfileView
	ListProjects(ctx context.Context, lang i18n.Language) ProjectList
	GetProject(ctx context.Context, rawID string, lang i18n.Language) (ProjectDetail, error)
	ListSkills(ctx context.Context, lang i18n.Language) SkillsView
}

// Content serves the public site. Reads never fail outward: store errors are
// logged and replaced by defaults, except the project detail which reports
// ErrNotFound.
type Content struct {
	profiles repository.ProfileRepository
	projects repository.ProjectRepository
	skills   repository.SkillRepository
	tr       *i18n.Translator
	logger   *log.Logger
}

func NewContentUsecase(
	profiles repository.ProfileRepository,
	projects repository.ProjectRepository,
	skills repository.SkillRepository,
	tr *i18n.Translator,
	logger *log.Logger,
) *Content {
	if tr == nil {
		tr = i18n.Default()
	}
	return &Content{profiles: profiles, projects: projects, skills: skills, tr: tr, logger: logger}
}

func (u *Content) GetProfile(ctx context.Context, lang i18n.Language) ProfileView {
	p, err := u.profiles.GetFirst(ctx)
	if err != nil {
		if !errors.Is(err, profile.ErrNotFound) {
			u.logf("[Content] profile fetch failed err=%v", err)
		}
		p = profile.Profile{}
	}

	v := ProfileView{
		Name:             firstNonBlank(p.Name, u.tr.T(lang, "hero.name")),
		Title:            firstNonBlank(p.Title, u.tr.T(lang, "hero.tagline")),
		Bio:              i18n.ResolveLocalizedField("", p.ShortBioEN, p.ShortBioFR, lang, u.tr.T(lang, "hero.description")),
		AboutDescription: i18n.ResolveLocalizedField(p.Description, p.DescriptionEN, p.DescriptionFR, lang, u.tr.T(lang, "about.description")),
		YearsExperience:  p.YearsExperience,
		ProjectsCount:    p.ProjectsCount,
		ProfileImage:     p.ProfileImage,
	}
	if v.YearsExperience <= 0 {
		v.YearsExperience = defaultYearsExperience
	}
	if v.ProjectsCount <= 0 {
		v.ProjectsCount = defaultProjectsCount
	}

	cv := p.CVEN
	if lang == i18n.French {
		cv = p.CVFR
	}
	if strings.TrimSpace(cv) != "" {
		v.CVURL = cv
		v.CVFileName = CVFileName(v.Name, lang)
	}
	return v
}

// CVFileName is the suggested download name, e.g. CV_Jane_Doe_FR.pdf.
func CVFileName(name string, lang i18n.Language) string {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		parts = []string{"Resume"}
	}
	return fmt.Sprintf("CV_%s_%s.pdf", strings.Join(parts, "_"), strings.ToUpper(string(lang)))
}

func (u *Content) ListProjects(ctx context.Context, lang i18n.Language) ProjectList {
	items, err := u.projects.ListVisible(ctx)
	if err != nil {
		u.logf("[Content] projects fetch failed err=%v", err)
		items = nil
	}

	out := ProjectList{Items: make([]ProjectCard, 0, len(items))}
	for _, p := range items {
		cover := p.CoverImage()
		if cover == "" {
			cover = PlaceholderImage
		}
		out.Items = append(out.Items, ProjectCard{
			ID:                 p.ID,
			Title:              p.Title,
			Description:        u.projectDescription(p, lang),
			CoverImage:         cover,
			Technologies:       p.Technologies,
			LiveDemoLink:       p.LiveDemoLink,
			GithubLink:         p.GithubLink,
			IsUnderDevelopment: p.IsUnderDevelopment,
		})
	}
	out.Empty = len(out.Items) == 0
	return out
}

func (u *Content) GetProject(ctx context.Context, rawID string, lang i18n.Language) (ProjectDetail, error) {
	id, err := uuid.Parse(strings.TrimSpace(rawID))
	if err != nil || id == uuid.Nil {
		return ProjectDetail{}, ErrNotFound
	}

	p, err := u.projects.GetVisibleByID(ctx, id)
	if err != nil {
		if !errors.Is(err, project.ErrNotFound) {
			u.logf("[Content] project fetch failed id=%s err=%v", id, err)
		}
		return ProjectDetail{}, ErrNotFound
	}

	desc := u.projectDescription(p, lang)
	return ProjectDetail{
		ID:                 p.ID,
		Title:              p.Title,
		Description:        desc,
		About:              i18n.ResolveLocalizedField(p.AboutProject, p.AboutProjectEN, p.AboutProjectFR, lang, desc),
		Images:             p.Images,
		Technologies:       p.Technologies,
		KeyFeatures:        p.KeyFeatures,
		LiveDemoLink:       p.LiveDemoLink,
		GithubLink:         p.GithubLink,
		IsUnderDevelopment: p.IsUnderDevelopment,
		CreatedAt:          p.CreatedAt,
	}, nil
}

func (u *Content) ListSkills(ctx context.Context, lang i18n.Language) SkillsView {
	items, err := u.skills.ListVisible(ctx)
	if err != nil {
		u.logf("[Content] skills fetch failed err=%v", err)
		items = nil
	}

	v := SkillsView{Items: make([]SkillItem, 0, len(items)), Groups: make([]SkillGroup, 0)}
	groupIdx := map[skill.Category]int{}
	for _, s := range items {
		it := SkillItem{ID: s.ID, Name: s.Name, Category: string(s.Category), LogoURL: s.LogoURL}
		v.Items = append(v.Items, it)

		idx, ok := groupIdx[s.Category]
		if !ok {
			idx = len(v.Groups)
			groupIdx[s.Category] = idx
			v.Groups = append(v.Groups, SkillGroup{
				Category: string(s.Category),
				Title:    u.tr.T(lang, s.Category.TranslationKey()),
				Skills:   make([]SkillItem, 0),
			})
		}
		v.Groups[idx].Skills = append(v.Groups[idx].Skills, it)
	}
	return v
}

func (u *Content) projectDescription(p project.Project, lang i18n.Language) string {
	return i18n.ResolveLocalizedField(p.Description, p.DescriptionEN, p.DescriptionFR, lang, u.tr.T(lang, "projects.noDescription"))
}

func (u *Content) logf(format string, args ...any) {
	if u.logger != nil {
		u.logger.Printf(format, args...)
	}
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
