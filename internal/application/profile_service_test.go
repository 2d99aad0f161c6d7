package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/careertrack/internal/domain/entity"
	"github.com/oksasatya/careertrack/internal/domain/repository"
)

// In-memory fakes. Each records the last patch it saw so tests can assert
// which fields a partial update actually touched.

type fakeEducationRepo struct {
	created   *entity.Education
	lastPatch entity.EducationPatch
	err       error
}

func (f *fakeEducationRepo) Create(_ context.Context, e *entity.Education) error {
	if f.err != nil {
		return f.err
	}
	e.ID = "edu-1"
	f.created = e
	return nil
}

func (f *fakeEducationRepo) ListByUser(context.Context, string) ([]entity.Education, error) {
	return []entity.Education{}, f.err
}

func (f *fakeEducationRepo) Update(_ context.Context, id, _ string, p entity.EducationPatch) (*entity.Education, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastPatch = p
	return &entity.Education{ID: id}, nil
}

func (f *fakeEducationRepo) Delete(context.Context, string, string) error { return f.err }

type fakeEmploymentRepo struct {
	lastPatch entity.EmploymentPatch
	stored    *entity.Employment
	err       error
}

func (f *fakeEmploymentRepo) Create(_ context.Context, e *entity.Employment) error {
	if f.err != nil {
		return f.err
	}
	e.ID = "emp-1"
	f.stored = e
	return nil
}

func (f *fakeEmploymentRepo) ListByUser(context.Context, string) ([]entity.Employment, error) {
	if f.stored == nil {
		return []entity.Employment{}, f.err
	}
	return []entity.Employment{*f.stored}, f.err
}

func (f *fakeEmploymentRepo) Update(_ context.Context, id, _ string, p entity.EmploymentPatch) (*entity.Employment, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastPatch = p
	return &entity.Employment{ID: id}, nil
}

func (f *fakeEmploymentRepo) Delete(context.Context, string, string) error { return f.err }

type fakeSkillRepo struct {
	err error
}

func (f *fakeSkillRepo) Create(_ context.Context, s *entity.Skill) error {
	if f.err != nil {
		return f.err
	}
	s.ID = "skill-1"
	return nil
}

func (f *fakeSkillRepo) ListByUser(context.Context, string) ([]entity.Skill, error) {
	return []entity.Skill{}, f.err
}

func (f *fakeSkillRepo) Update(_ context.Context, id, _ string, _ entity.SkillPatch) (*entity.Skill, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &entity.Skill{ID: id}, nil
}

func (f *fakeSkillRepo) Delete(context.Context, string, string) error { return f.err }

func newProfileService(edu *fakeEducationRepo, emp *fakeEmploymentRepo, sk *fakeSkillRepo) *ProfileService {
	if edu == nil {
		edu = &fakeEducationRepo{}
	}
	if emp == nil {
		emp = &fakeEmploymentRepo{}
	}
	if sk == nil {
		sk = &fakeSkillRepo{}
	}
	return &ProfileService{Education: edu, Employment: emp, Skills: sk}
}

func TestCreateEducation_RequiresSchool(t *testing.T) {
	t.Parallel()
	svc := newProfileService(nil, nil, nil)

	_, err := svc.CreateEducation(context.Background(), "u1", EducationInput{School: "   "})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateEducation_RejectsBadDate(t *testing.T) {
	t.Parallel()
	svc := newProfileService(nil, nil, nil)

	_, err := svc.CreateEducation(context.Background(), "u1", EducationInput{
		School:    "MIT",
		StartDate: "01/09/2020",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateEducation_EmptyDatesBecomeNil(t *testing.T) {
	t.Parallel()
	edu := &fakeEducationRepo{}
	svc := newProfileService(edu, nil, nil)

	e, err := svc.CreateEducation(context.Background(), "u1", EducationInput{School: " MIT "})
	require.NoError(t, err)
	assert.Equal(t, "MIT", e.School)
	assert.Nil(t, e.StartDate)
	assert.Nil(t, e.EndDate)
}

func TestUpdateEducation_PartialTouchesOnlyGivenFields(t *testing.T) {
	t.Parallel()
	edu := &fakeEducationRepo{}
	svc := newProfileService(edu, nil, nil)

	degree := "BSc"
	_, err := svc.UpdateEducation(context.Background(), "edu-1", "u1", EducationUpdate{Degree: &degree})
	require.NoError(t, err)

	assert.Nil(t, edu.lastPatch.School)
	assert.Nil(t, edu.lastPatch.StartDate)
	require.NotNil(t, edu.lastPatch.Degree)
	assert.Equal(t, "BSc", *edu.lastPatch.Degree)
}

func TestUpdateEducation_NotFoundPropagates(t *testing.T) {
	t.Parallel()
	edu := &fakeEducationRepo{err: repository.ErrNotFound}
	svc := newProfileService(edu, nil, nil)

	degree := "BSc"
	_, err := svc.UpdateEducation(context.Background(), "missing", "u1", EducationUpdate{Degree: &degree})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCreateEmployment_DurationForClosedRange(t *testing.T) {
	t.Parallel()
	emp := &fakeEmploymentRepo{}
	svc := newProfileService(nil, emp, nil)

	e, err := svc.CreateEmployment(context.Background(), "u1", EmploymentInput{
		Company:   "Acme",
		Title:     "Engineer",
		StartDate: "2020-01-15",
		EndDate:   "2021-01-15",
	})
	require.NoError(t, err)
	assert.Equal(t, 12, e.DurationMonths)
}

func TestCreateEmployment_CurrentRunsToNow(t *testing.T) {
	t.Parallel()
	emp := &fakeEmploymentRepo{}
	svc := newProfileService(nil, emp, nil)

	start := time.Now().AddDate(-2, 0, 0).Format("2006-01-02")
	e, err := svc.CreateEmployment(context.Background(), "u1", EmploymentInput{
		Company:   "Acme",
		Title:     "Engineer",
		StartDate: start,
		Current:   true,
	})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, e.DurationMonths, 23)
	assert.LessOrEqual(t, e.DurationMonths, 24)
}

func TestCreateSkill_DuplicatePropagates(t *testing.T) {
	t.Parallel()
	sk := &fakeSkillRepo{err: repository.ErrDuplicate}
	svc := newProfileService(nil, nil, sk)

	_, err := svc.CreateSkill(context.Background(), "u1", SkillInput{Name: "Go"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestDeleteSkill_SecondDeleteNotFound(t *testing.T) {
	t.Parallel()
	sk := &fakeSkillRepo{err: repository.ErrNotFound}
	svc := newProfileService(nil, nil, sk)

	err := svc.DeleteSkill(context.Background(), "skill-1", "u1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMonthsBetween_FloorsAtZero(t *testing.T) {
	t.Parallel()
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, monthsBetween(start, end))
}

func TestMonthsBetween_PartialMonthRoundsDown(t *testing.T) {
	t.Parallel()
	start := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, monthsBetween(start, end))
}
