package application

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"
	"github.com/tmc/langchaingo/llms"

	"github.com/oksasatya/careertrack/internal/domain/entity"
	repo "github.com/oksasatya/careertrack/internal/domain/repository"
)

// Deadline urgency colors for the calendar view.
const (
	UrgencyGray  = "gray"  // deadline passed
	UrgencyRed   = "red"   // due within 3 days
	UrgencyAmber = "amber" // due within 7 days
	UrgencyGreen = "green"
)

var jobStatuses = map[string]bool{
	entity.JobStatusSaved:     true,
	entity.JobStatusApplied:   true,
	entity.JobStatusInterview: true,
	entity.JobStatusOffer:     true,
	entity.JobStatusRejected:  true,
}

// JobService tracks job postings through the application funnel.
// Elasticsearch and the LLM client are optional infrastructure: indexing and
// search degrade to no-ops when they are not configured.
type JobService struct {
	Jobs    repo.JobPostingRepository
	ES      *elasticsearch.Client
	ESIndex string
	LLM     llms.Model
	Logger  *logrus.Logger
}

func NewJobService(jobs repo.JobPostingRepository, es *elasticsearch.Client, esIndex string, llm llms.Model, logger *logrus.Logger) *JobService {
	return &JobService{Jobs: jobs, ES: es, ESIndex: esIndex, LLM: llm, Logger: logger}
}

type JobPostingInput struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	URL         string `json:"url"`
	SalaryRange string `json:"salary_range"`
	Status      string `json:"status"`
	Deadline    string `json:"deadline"`
	Notes       string `json:"notes"`
}

type JobPostingUpdate struct {
	Title       *string `json:"title"`
	Company     *string `json:"company"`
	Location    *string `json:"location"`
	URL         *string `json:"url"`
	SalaryRange *string `json:"salary_range"`
	Status      *string `json:"status"`
	Deadline    *string `json:"deadline"`
	Notes       *string `json:"notes"`
}

func (s *JobService) Create(ctx context.Context, userID string, in JobPostingInput) (*entity.JobPosting, error) {
	title, err := requireTrimmed("title", in.Title)
	if err != nil {
		return nil, err
	}
	company, err := requireTrimmed("company", in.Company)
	if err != nil {
		return nil, err
	}
	status := strings.TrimSpace(in.Status)
	if status != "" && !jobStatuses[status] {
		return nil, invalidf("status must be one of saved, applied, interview, offer, rejected")
	}
	deadline, err := parseDate("deadline", in.Deadline)
	if err != nil {
		return nil, err
	}
	j := &entity.JobPosting{
		UserID:      userID,
		Title:       title,
		Company:     company,
		Location:    strings.TrimSpace(in.Location),
		URL:         strings.TrimSpace(in.URL),
		SalaryRange: strings.TrimSpace(in.SalaryRange),
		Status:      status,
		Deadline:    deadline,
		Notes:       in.Notes,
	}
	if err := s.Jobs.Create(ctx, j); err != nil {
		return nil, err
	}
	s.index(ctx, j)
	return j, nil
}

func (s *JobService) List(ctx context.Context, userID string) ([]entity.JobPosting, error) {
	return s.Jobs.ListByUser(ctx, userID)
}

func (s *JobService) Get(ctx context.Context, id, userID string) (*entity.JobPosting, error) {
	return s.Jobs.GetByID(ctx, id, userID)
}

func (s *JobService) Update(ctx context.Context, id, userID string, in JobPostingUpdate) (*entity.JobPosting, error) {
	var p entity.JobPostingPatch
	if in.Title != nil {
		title, err := requireTrimmed("title", *in.Title)
		if err != nil {
			return nil, err
		}
		p.Title = &title
	}
	if in.Company != nil {
		company, err := requireTrimmed("company", *in.Company)
		if err != nil {
			return nil, err
		}
		p.Company = &company
	}
	if in.Status != nil {
		status := strings.TrimSpace(*in.Status)
		if !jobStatuses[status] {
			return nil, invalidf("status must be one of saved, applied, interview, offer, rejected")
		}
		p.Status = &status
	}
	if in.Deadline != nil {
		d, err := parseDate("deadline", *in.Deadline)
		if err != nil {
			return nil, err
		}
		p.Deadline = d
	}
	p.Location = in.Location
	p.URL = in.URL
	p.SalaryRange = in.SalaryRange
	p.Notes = in.Notes

	j, err := s.Jobs.Update(ctx, id, userID, p)
	if err != nil {
		return nil, err
	}
	s.index(ctx, j)
	return j, nil
}

func (s *JobService) Delete(ctx context.Context, id, userID string) error {
	if err := s.Jobs.Delete(ctx, id, userID); err != nil {
		return err
	}
	s.deleteFromIndex(ctx, id)
	return nil
}

// ---- Calendar ----

type DeadlineEntry struct {
	Job     entity.JobPosting `json:"job"`
	DaysOut int               `json:"days_out"`
	Urgency string            `json:"urgency"`
}

// UrgencyFor maps days-until-deadline onto a display color.
func UrgencyFor(deadline, now time.Time) (int, string) {
	days := int(deadline.Sub(now).Hours() / 24)
	if deadline.Before(now) {
		return days, UrgencyGray
	}
	switch {
	case days <= 3:
		return days, UrgencyRed
	case days <= 7:
		return days, UrgencyAmber
	default:
		return days, UrgencyGreen
	}
}

func (s *JobService) Calendar(ctx context.Context, userID string) ([]DeadlineEntry, error) {
	jobs, err := s.Jobs.ListWithDeadlines(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	out := make([]DeadlineEntry, 0, len(jobs))
	for _, j := range jobs {
		days, urgency := UrgencyFor(*j.Deadline, now)
		out = append(out, DeadlineEntry{Job: j, DaysOut: days, Urgency: urgency})
	}
	return out, nil
}

// ---- Elasticsearch ----

func (s *JobService) index(ctx context.Context, j *entity.JobPosting) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	doc := map[string]any{
		"id":       j.ID,
		"user_id":  j.UserID,
		"title":    j.Title,
		"company":  j.Company,
		"location": j.Location,
		"status":   j.Status,
		"notes":    j.Notes,
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: j.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("job_id", j.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("job_id", j.ID).Warn("es index response error")
	}
}

func (s *JobService) deleteFromIndex(ctx context.Context, id string) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("job_id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

// Search runs a multi_match over title/company/notes, restricted to the
// caller's own postings.
func (s *JobService) Search(ctx context.Context, userID, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must": map[string]any{
					"multi_match": map[string]any{
						"query":  q,
						"fields": []string{"title^2", "company^2", "notes"},
					},
				},
				"filter": map[string]any{
					"term": map[string]any{"user_id": userID},
				},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(s.ES.Search.WithContext(c), s.ES.Search.WithIndex(s.ESIndex), s.ES.Search.WithBody(strings.NewReader(string(b))))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}

// ---- AI import ----

const jobExtractionPrompt = `You are a job data extraction assistant. Analyze the raw HTML or text of a job posting and extract structured data.

Instructions:
1. Ignore navigation menus, footers, "similar jobs" lists, and advertisements.
2. Extract the fields below.
3. Output valid JSON only. Do not wrap the output in markdown code blocks.
4. If a field is missing, use an empty string. Do not guess.

Output schema:
{
  "title": "job title",
  "company": "company name",
  "location": "location or Remote",
  "salary_range": "salary string if explicitly mentioned",
  "url": "canonical posting URL if present",
  "notes": "clean one-paragraph summary of responsibilities and requirements"
}

Raw content:
%s`

const maxImportContent = 20000

// ImportedJob is the parsed result returned to the caller. Nothing is
// persisted by an import; saving requires an authenticated create.
type ImportedJob struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	SalaryRange string `json:"salary_range"`
	URL         string `json:"url"`
	Notes       string `json:"notes"`
}

func (s *JobService) ImportFromContent(ctx context.Context, raw string) (*ImportedJob, error) {
	if s.LLM == nil {
		return nil, invalidf("job import is not configured")
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, invalidf("content is required")
	}
	if len(raw) > maxImportContent {
		raw = raw[:maxImportContent]
	}
	resp, err := llms.GenerateFromSinglePrompt(ctx, s.LLM, fmt.Sprintf(jobExtractionPrompt, raw))
	if err != nil {
		return nil, err
	}
	// Models occasionally wrap the JSON in a code fence despite instructions.
	resp = strings.TrimSpace(resp)
	resp = strings.TrimPrefix(resp, "```json")
	resp = strings.TrimPrefix(resp, "```")
	resp = strings.TrimSuffix(resp, "```")

	var out ImportedJob
	if err := json.Unmarshal([]byte(strings.TrimSpace(resp)), &out); err != nil {
		return nil, invalidf("extraction returned unparseable data")
	}
	return &out, nil
}
