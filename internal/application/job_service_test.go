package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/careertrack/internal/domain/entity"
)

type fakeJobRepo struct {
	jobs []entity.JobPosting
	err  error
}

func (f *fakeJobRepo) Create(_ context.Context, j *entity.JobPosting) error {
	if f.err != nil {
		return f.err
	}
	j.ID = "job-1"
	if j.Status == "" {
		j.Status = entity.JobStatusSaved
	}
	f.jobs = append(f.jobs, *j)
	return nil
}

func (f *fakeJobRepo) ListByUser(context.Context, string) ([]entity.JobPosting, error) {
	return f.jobs, f.err
}

func (f *fakeJobRepo) ListWithDeadlines(context.Context, string) ([]entity.JobPosting, error) {
	out := make([]entity.JobPosting, 0, len(f.jobs))
	for _, j := range f.jobs {
		if j.Deadline != nil {
			out = append(out, j)
		}
	}
	return out, f.err
}

func (f *fakeJobRepo) GetByID(_ context.Context, id, _ string) (*entity.JobPosting, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &entity.JobPosting{ID: id}, nil
}

func (f *fakeJobRepo) Update(_ context.Context, id, _ string, _ entity.JobPostingPatch) (*entity.JobPosting, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &entity.JobPosting{ID: id}, nil
}

func (f *fakeJobRepo) Delete(context.Context, string, string) error { return f.err }

func TestJobCreate_RejectsUnknownStatus(t *testing.T) {
	t.Parallel()
	svc := NewJobService(&fakeJobRepo{}, nil, "", nil, nil)

	_, err := svc.Create(context.Background(), "u1", JobPostingInput{
		Title:   "Engineer",
		Company: "Acme",
		Status:  "ghosted",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestJobCreate_DefaultsToSaved(t *testing.T) {
	t.Parallel()
	repo := &fakeJobRepo{}
	svc := NewJobService(repo, nil, "", nil, nil)

	j, err := svc.Create(context.Background(), "u1", JobPostingInput{Title: "Engineer", Company: "Acme"})
	require.NoError(t, err)
	assert.Equal(t, entity.JobStatusSaved, j.Status)
}

func TestUrgencyFor(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		deadline time.Time
		want     string
	}{
		{now.AddDate(0, 0, -1), UrgencyGray},
		{now.Add(12 * time.Hour), UrgencyRed},
		{now.AddDate(0, 0, 3), UrgencyRed},
		{now.AddDate(0, 0, 5), UrgencyAmber},
		{now.AddDate(0, 0, 7), UrgencyAmber},
		{now.AddDate(0, 0, 30), UrgencyGreen},
	}
	for _, tc := range cases {
		_, got := UrgencyFor(tc.deadline, now)
		assert.Equal(t, tc.want, got, "deadline %s", tc.deadline)
	}
}

func TestCalendar_OnlyDatedJobs(t *testing.T) {
	t.Parallel()
	soon := time.Now().AddDate(0, 0, 2)
	repo := &fakeJobRepo{jobs: []entity.JobPosting{
		{ID: "a", Title: "No deadline"},
		{ID: "b", Title: "Due soon", Deadline: &soon},
	}}
	svc := NewJobService(repo, nil, "", nil, nil)

	entries, err := svc.Calendar(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "b", entries[0].Job.ID)
	assert.Equal(t, UrgencyRed, entries[0].Urgency)
}

func TestSearch_NoESReturnsEmpty(t *testing.T) {
	t.Parallel()
	svc := NewJobService(&fakeJobRepo{}, nil, "", nil, nil)

	hits, err := svc.Search(context.Background(), "u1", "golang", 10)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestImport_Unconfigured(t *testing.T) {
	t.Parallel()
	svc := NewJobService(&fakeJobRepo{}, nil, "", nil, nil)

	_, err := svc.ImportFromContent(context.Background(), "<html>some posting</html>")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestImport_EmptyContent(t *testing.T) {
	t.Parallel()
	svc := NewJobService(&fakeJobRepo{}, nil, "", nil, nil)

	_, err := svc.ImportFromContent(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrValidation)
}
