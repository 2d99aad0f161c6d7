package application

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/careertrack/internal/domain/entity"
	repo "github.com/oksasatya/careertrack/internal/domain/repository"
)

// ResumeService stores resume documents and the presets used to assemble
// them, and prepares export downloads.
type ResumeService struct {
	Resumes repo.ResumeRepository
	Presets repo.PresetRepository
	Logger  *logrus.Logger
}

func NewResumeService(resumes repo.ResumeRepository, presets repo.PresetRepository, logger *logrus.Logger) *ResumeService {
	return &ResumeService{Resumes: resumes, Presets: presets, Logger: logger}
}

// ---- Resumes ----

type ResumeInput struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	JobTitle   string `json:"job_title"`
	Company    string `json:"company"`
	IsFavorite bool   `json:"is_favorite"`
}

type ResumeUpdate struct {
	Title      *string `json:"title"`
	Content    *string `json:"content"`
	JobTitle   *string `json:"job_title"`
	Company    *string `json:"company"`
	IsFavorite *bool   `json:"is_favorite"`
}

func (s *ResumeService) CreateResume(ctx context.Context, userID string, in ResumeInput) (*entity.Resume, error) {
	title, err := requireTrimmed("title", in.Title)
	if err != nil {
		return nil, err
	}
	r := &entity.Resume{
		UserID:     userID,
		Title:      title,
		Content:    in.Content,
		JobTitle:   strings.TrimSpace(in.JobTitle),
		Company:    strings.TrimSpace(in.Company),
		IsFavorite: in.IsFavorite,
	}
	if err := s.Resumes.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *ResumeService) ListResumes(ctx context.Context, userID string) ([]entity.Resume, error) {
	return s.Resumes.ListByUser(ctx, userID)
}

func (s *ResumeService) GetResume(ctx context.Context, id, userID string) (*entity.Resume, error) {
	return s.Resumes.GetByID(ctx, id, userID)
}

func (s *ResumeService) UpdateResume(ctx context.Context, id, userID string, in ResumeUpdate) (*entity.Resume, error) {
	var p entity.ResumePatch
	if in.Title != nil {
		title, err := requireTrimmed("title", *in.Title)
		if err != nil {
			return nil, err
		}
		p.Title = &title
	}
	p.Content = in.Content
	p.JobTitle = in.JobTitle
	p.Company = in.Company
	p.IsFavorite = in.IsFavorite
	return s.Resumes.Update(ctx, id, userID, p)
}

func (s *ResumeService) DeleteResume(ctx context.Context, id, userID string) error {
	return s.Resumes.Delete(ctx, id, userID)
}

// ---- Presets ----

type PresetInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Content     json.RawMessage `json:"content"`
}

type PresetUpdate struct {
	Name        *string         `json:"name"`
	Description *string         `json:"description"`
	Content     json.RawMessage `json:"content"`
}

func (s *ResumeService) CreatePreset(ctx context.Context, userID string, in PresetInput) (*entity.Preset, error) {
	name, err := requireTrimmed("name", in.Name)
	if err != nil {
		return nil, err
	}
	p := &entity.Preset{
		UserID:      userID,
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Content:     in.Content,
	}
	if err := s.Presets.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ResumeService) ListPresets(ctx context.Context, userID string) ([]entity.Preset, error) {
	return s.Presets.ListByUser(ctx, userID)
}

func (s *ResumeService) UpdatePreset(ctx context.Context, id, userID string, in PresetUpdate) (*entity.Preset, error) {
	var patch entity.PresetPatch
	if in.Name != nil {
		name, err := requireTrimmed("name", *in.Name)
		if err != nil {
			return nil, err
		}
		patch.Name = &name
	}
	patch.Description = in.Description
	patch.Content = in.Content
	return s.Presets.Update(ctx, id, userID, patch)
}

func (s *ResumeService) DeletePreset(ctx context.Context, id, userID string) error {
	return s.Presets.Delete(ctx, id, userID)
}

// ---- Export ----

type ExportRequest struct {
	Content  string `json:"content"`
	JobTitle string `json:"jobTitle"`
	Company  string `json:"company"`
}

type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}

var filenameStrip = regexp.MustCompile(`[^a-z0-9_]+`)

// ExportFilename builds a download name from job title and company, reduced
// to [a-z0-9_].
func ExportFilename(jobTitle, company, ext string) string {
	base := strings.ToLower(strings.TrimSpace(jobTitle + "_" + company))
	base = filenameStrip.ReplaceAllString(strings.ReplaceAll(base, " ", "_"), "")
	base = strings.Trim(base, "_")
	if base == "" {
		base = "resume"
	}
	return base + ext
}

// ExportText prepares a plain-text download of resume content.
func (s *ResumeService) ExportText(in ExportRequest) (*ExportFile, error) {
	if strings.TrimSpace(in.Content) == "" {
		return nil, invalidf("content is required")
	}
	return &ExportFile{
		Filename:    ExportFilename(in.JobTitle, in.Company, ".txt"),
		ContentType: "text/plain; charset=utf-8",
		Body:        []byte(in.Content),
	}, nil
}
