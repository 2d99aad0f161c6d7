package application

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/careertrack/internal/domain/entity"
	repo "github.com/oksasatya/careertrack/internal/domain/repository"
)

// ProfileService owns the profile sections of an account: education,
// employment history, skills, certifications, and projects. Required-field
// and format validation happens here, before any SQL runs; ownership
// enforcement lives in the repositories.
type ProfileService struct {
	Education      repo.EducationRepository
	Employment     repo.EmploymentRepository
	Skills         repo.SkillRepository
	Certifications repo.CertificationRepository
	Projects       repo.ProjectRepository
	Logger         *logrus.Logger
}

func NewProfileService(
	education repo.EducationRepository,
	employment repo.EmploymentRepository,
	skills repo.SkillRepository,
	certifications repo.CertificationRepository,
	projects repo.ProjectRepository,
	logger *logrus.Logger,
) *ProfileService {
	return &ProfileService{
		Education:      education,
		Employment:     employment,
		Skills:         skills,
		Certifications: certifications,
		Projects:       projects,
		Logger:         logger,
	}
}

// ---- Education ----

type EducationInput struct {
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"field_of_study"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Description  string `json:"description"`
}

type EducationUpdate struct {
	School       *string `json:"school"`
	Degree       *string `json:"degree"`
	FieldOfStudy *string `json:"field_of_study"`
	StartDate    *string `json:"start_date"`
	EndDate      *string `json:"end_date"`
	Description  *string `json:"description"`
}

func (s *ProfileService) CreateEducation(ctx context.Context, userID string, in EducationInput) (*entity.Education, error) {
	school, err := requireTrimmed("school", in.School)
	if err != nil {
		return nil, err
	}
	start, err := parseDate("start_date", in.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate("end_date", in.EndDate)
	if err != nil {
		return nil, err
	}
	e := &entity.Education{
		UserID:       userID,
		School:       school,
		Degree:       strings.TrimSpace(in.Degree),
		FieldOfStudy: strings.TrimSpace(in.FieldOfStudy),
		StartDate:    start,
		EndDate:      end,
		Description:  in.Description,
	}
	if err := s.Education.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *ProfileService) ListEducation(ctx context.Context, userID string) ([]entity.Education, error) {
	return s.Education.ListByUser(ctx, userID)
}

func (s *ProfileService) UpdateEducation(ctx context.Context, id, userID string, in EducationUpdate) (*entity.Education, error) {
	var p entity.EducationPatch
	if in.School != nil {
		school, err := requireTrimmed("school", *in.School)
		if err != nil {
			return nil, err
		}
		p.School = &school
	}
	p.Degree = in.Degree
	p.FieldOfStudy = in.FieldOfStudy
	p.Description = in.Description
	if in.StartDate != nil {
		d, err := parseDate("start_date", *in.StartDate)
		if err != nil {
			return nil, err
		}
		p.StartDate = d
	}
	if in.EndDate != nil {
		d, err := parseDate("end_date", *in.EndDate)
		if err != nil {
			return nil, err
		}
		p.EndDate = d
	}
	return s.Education.Update(ctx, id, userID, p)
}

func (s *ProfileService) DeleteEducation(ctx context.Context, id, userID string) error {
	return s.Education.Delete(ctx, id, userID)
}

// ---- Employment ----

type EmploymentInput struct {
	Company     string `json:"company"`
	Title       string `json:"title"`
	Location    string `json:"location"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

type EmploymentUpdate struct {
	Company     *string `json:"company"`
	Title       *string `json:"title"`
	Location    *string `json:"location"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Current     *bool   `json:"current"`
	Description *string `json:"description"`
}

// withDuration fills the derived months-of-service field.
func withDuration(e *entity.Employment) *entity.Employment {
	if e.StartDate == nil {
		return e
	}
	end := time.Now()
	if !e.Current && e.EndDate != nil {
		end = *e.EndDate
	}
	e.DurationMonths = monthsBetween(*e.StartDate, end)
	return e
}

func (s *ProfileService) CreateEmployment(ctx context.Context, userID string, in EmploymentInput) (*entity.Employment, error) {
	company, err := requireTrimmed("company", in.Company)
	if err != nil {
		return nil, err
	}
	title, err := requireTrimmed("title", in.Title)
	if err != nil {
		return nil, err
	}
	start, err := parseDate("start_date", in.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate("end_date", in.EndDate)
	if err != nil {
		return nil, err
	}
	e := &entity.Employment{
		UserID:      userID,
		Company:     company,
		Title:       title,
		Location:    strings.TrimSpace(in.Location),
		StartDate:   start,
		EndDate:     end,
		Current:     in.Current,
		Description: in.Description,
	}
	if err := s.Employment.Create(ctx, e); err != nil {
		return nil, err
	}
	return withDuration(e), nil
}

func (s *ProfileService) ListEmployment(ctx context.Context, userID string) ([]entity.Employment, error) {
	list, err := s.Employment.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range list {
		withDuration(&list[i])
	}
	return list, nil
}

func (s *ProfileService) UpdateEmployment(ctx context.Context, id, userID string, in EmploymentUpdate) (*entity.Employment, error) {
	var p entity.EmploymentPatch
	if in.Company != nil {
		company, err := requireTrimmed("company", *in.Company)
		if err != nil {
			return nil, err
		}
		p.Company = &company
	}
	if in.Title != nil {
		title, err := requireTrimmed("title", *in.Title)
		if err != nil {
			return nil, err
		}
		p.Title = &title
	}
	p.Location = in.Location
	p.Current = in.Current
	p.Description = in.Description
	if in.StartDate != nil {
		d, err := parseDate("start_date", *in.StartDate)
		if err != nil {
			return nil, err
		}
		p.StartDate = d
	}
	if in.EndDate != nil {
		d, err := parseDate("end_date", *in.EndDate)
		if err != nil {
			return nil, err
		}
		p.EndDate = d
	}
	e, err := s.Employment.Update(ctx, id, userID, p)
	if err != nil {
		return nil, err
	}
	return withDuration(e), nil
}

func (s *ProfileService) DeleteEmployment(ctx context.Context, id, userID string) error {
	return s.Employment.Delete(ctx, id, userID)
}

// ---- Skills ----

type SkillInput struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Proficiency string `json:"proficiency"`
}

type SkillUpdate struct {
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	Proficiency *string `json:"proficiency"`
}

func (s *ProfileService) CreateSkill(ctx context.Context, userID string, in SkillInput) (*entity.Skill, error) {
	name, err := requireTrimmed("name", in.Name)
	if err != nil {
		return nil, err
	}
	sk := &entity.Skill{
		UserID:      userID,
		Name:        name,
		Category:    strings.TrimSpace(in.Category),
		Proficiency: strings.TrimSpace(in.Proficiency),
	}
	if err := s.Skills.Create(ctx, sk); err != nil {
		return nil, err
	}
	return sk, nil
}

func (s *ProfileService) ListSkills(ctx context.Context, userID string) ([]entity.Skill, error) {
	return s.Skills.ListByUser(ctx, userID)
}

func (s *ProfileService) UpdateSkill(ctx context.Context, id, userID string, in SkillUpdate) (*entity.Skill, error) {
	var p entity.SkillPatch
	if in.Name != nil {
		name, err := requireTrimmed("name", *in.Name)
		if err != nil {
			return nil, err
		}
		p.Name = &name
	}
	p.Category = in.Category
	p.Proficiency = in.Proficiency
	return s.Skills.Update(ctx, id, userID, p)
}

func (s *ProfileService) DeleteSkill(ctx context.Context, id, userID string) error {
	return s.Skills.Delete(ctx, id, userID)
}

// ---- Certifications ----

type CertificationInput struct {
	Name          string `json:"name"`
	Organization  string `json:"organization"`
	IssueDate     string `json:"issue_date"`
	ExpiryDate    string `json:"expiry_date"`
	CredentialID  string `json:"credential_id"`
	CredentialURL string `json:"credential_url"`
}

type CertificationUpdate struct {
	Name          *string `json:"name"`
	Organization  *string `json:"organization"`
	IssueDate     *string `json:"issue_date"`
	ExpiryDate    *string `json:"expiry_date"`
	CredentialID  *string `json:"credential_id"`
	CredentialURL *string `json:"credential_url"`
}

func (s *ProfileService) CreateCertification(ctx context.Context, userID string, in CertificationInput) (*entity.Certification, error) {
	name, err := requireTrimmed("name", in.Name)
	if err != nil {
		return nil, err
	}
	org, err := requireTrimmed("organization", in.Organization)
	if err != nil {
		return nil, err
	}
	issue, err := parseDate("issue_date", in.IssueDate)
	if err != nil {
		return nil, err
	}
	expiry, err := parseDate("expiry_date", in.ExpiryDate)
	if err != nil {
		return nil, err
	}
	c := &entity.Certification{
		UserID:        userID,
		Name:          name,
		Organization:  org,
		IssueDate:     issue,
		ExpiryDate:    expiry,
		CredentialID:  strings.TrimSpace(in.CredentialID),
		CredentialURL: strings.TrimSpace(in.CredentialURL),
	}
	if err := s.Certifications.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ProfileService) ListCertifications(ctx context.Context, userID string) ([]entity.Certification, error) {
	return s.Certifications.ListByUser(ctx, userID)
}

func (s *ProfileService) UpdateCertification(ctx context.Context, id, userID string, in CertificationUpdate) (*entity.Certification, error) {
	var p entity.CertificationPatch
	if in.Name != nil {
		name, err := requireTrimmed("name", *in.Name)
		if err != nil {
			return nil, err
		}
		p.Name = &name
	}
	if in.Organization != nil {
		org, err := requireTrimmed("organization", *in.Organization)
		if err != nil {
			return nil, err
		}
		p.Organization = &org
	}
	p.CredentialID = in.CredentialID
	p.CredentialURL = in.CredentialURL
	if in.IssueDate != nil {
		d, err := parseDate("issue_date", *in.IssueDate)
		if err != nil {
			return nil, err
		}
		p.IssueDate = d
	}
	if in.ExpiryDate != nil {
		d, err := parseDate("expiry_date", *in.ExpiryDate)
		if err != nil {
			return nil, err
		}
		p.ExpiryDate = d
	}
	return s.Certifications.Update(ctx, id, userID, p)
}

func (s *ProfileService) DeleteCertification(ctx context.Context, id, userID string) error {
	return s.Certifications.Delete(ctx, id, userID)
}

// ---- Projects ----

type ProjectInput struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	URL          string   `json:"url"`
	Technologies []string `json:"technologies"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
}

type ProjectUpdate struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	URL          *string  `json:"url"`
	Technologies []string `json:"technologies"`
	StartDate    *string  `json:"start_date"`
	EndDate      *string  `json:"end_date"`
}

func (s *ProfileService) CreateProject(ctx context.Context, userID string, in ProjectInput) (*entity.Project, error) {
	name, err := requireTrimmed("name", in.Name)
	if err != nil {
		return nil, err
	}
	start, err := parseDate("start_date", in.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate("end_date", in.EndDate)
	if err != nil {
		return nil, err
	}
	p := &entity.Project{
		UserID:       userID,
		Name:         name,
		Description:  in.Description,
		URL:          strings.TrimSpace(in.URL),
		Technologies: in.Technologies,
		StartDate:    start,
		EndDate:      end,
	}
	if err := s.Projects.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProfileService) ListProjects(ctx context.Context, userID string) ([]entity.Project, error) {
	return s.Projects.ListByUser(ctx, userID)
}

func (s *ProfileService) UpdateProject(ctx context.Context, id, userID string, in ProjectUpdate) (*entity.Project, error) {
	var p entity.ProjectPatch
	if in.Name != nil {
		name, err := requireTrimmed("name", *in.Name)
		if err != nil {
			return nil, err
		}
		p.Name = &name
	}
	p.Description = in.Description
	p.URL = in.URL
	p.Technologies = in.Technologies
	if in.StartDate != nil {
		d, err := parseDate("start_date", *in.StartDate)
		if err != nil {
			return nil, err
		}
		p.StartDate = d
	}
	if in.EndDate != nil {
		d, err := parseDate("end_date", *in.EndDate)
		if err != nil {
			return nil, err
		}
		p.EndDate = d
	}
	return s.Projects.Update(ctx, id, userID, p)
}

func (s *ProfileService) DeleteProject(ctx context.Context, id, userID string) error {
	return s.Projects.Delete(ctx, id, userID)
}
