package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/careertrack/internal/domain/entity"
	"github.com/oksasatya/careertrack/internal/domain/repository"
)

type JobPostingRepository struct {
	pool *pgxpool.Pool
}

func NewJobPostingRepository(pool *pgxpool.Pool) *JobPostingRepository {
	return &JobPostingRepository{pool: pool}
}

const jobCols = "id, user_id, title, company, location, url, salary_range, status, deadline, notes, created_at, updated_at"

func scanJob(row interface{ Scan(...any) error }, j *entity.JobPosting) error {
	return row.Scan(&j.ID, &j.UserID, &j.Title, &j.Company, &j.Location, &j.URL,
		&j.SalaryRange, &j.Status, &j.Deadline, &j.Notes, &j.CreatedAt, &j.UpdatedAt)
}

func (r *JobPostingRepository) Create(ctx context.Context, j *entity.JobPosting) error {
	if j.Status == "" {
		j.Status = entity.JobStatusSaved
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO job_postings (user_id, title, company, location, url, salary_range, status, deadline, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`, j.UserID, j.Title, j.Company, j.Location, j.URL, j.SalaryRange, j.Status, j.Deadline, j.Notes)

	return classify(row.Scan(&j.ID, &j.CreatedAt, &j.UpdatedAt))
}

func (r *JobPostingRepository) ListByUser(ctx context.Context, userID string) ([]entity.JobPosting, error) {
	return r.list(ctx, `
		SELECT `+jobCols+`
		FROM job_postings
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
}

func (r *JobPostingRepository) ListWithDeadlines(ctx context.Context, userID string) ([]entity.JobPosting, error) {
	return r.list(ctx, `
		SELECT `+jobCols+`
		FROM job_postings
		WHERE user_id = $1 AND deadline IS NOT NULL
		ORDER BY deadline ASC
	`, userID)
}

func (r *JobPostingRepository) list(ctx context.Context, q, userID string) ([]entity.JobPosting, error) {
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	out := make([]entity.JobPosting, 0)
	for rows.Next() {
		var j entity.JobPosting
		if err := scanJob(rows, &j); err != nil {
			return nil, classify(err)
		}
		out = append(out, j)
	}
	return out, classify(rows.Err())
}

func (r *JobPostingRepository) GetByID(ctx context.Context, id, userID string) (*entity.JobPosting, error) {
	j := &entity.JobPosting{}
	row := r.pool.QueryRow(ctx, `
		SELECT `+jobCols+`
		FROM job_postings
		WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err := scanJob(row, j); err != nil {
		return nil, classify(err)
	}
	return j, nil
}

func (r *JobPostingRepository) Update(ctx context.Context, id, userID string, p entity.JobPostingPatch) (*entity.JobPosting, error) {
	b := &patchBuilder{}
	if p.Title != nil {
		b.set("title", *p.Title)
	}
	if p.Company != nil {
		b.set("company", *p.Company)
	}
	if p.Location != nil {
		b.set("location", *p.Location)
	}
	if p.URL != nil {
		b.set("url", *p.URL)
	}
	if p.SalaryRange != nil {
		b.set("salary_range", *p.SalaryRange)
	}
	if p.Status != nil {
		b.set("status", *p.Status)
	}
	if p.Deadline != nil {
		b.set("deadline", *p.Deadline)
	}
	if p.Notes != nil {
		b.set("notes", *p.Notes)
	}
	if b.empty() {
		return r.GetByID(ctx, id, userID)
	}
	b.sets = append(b.sets, "updated_at = now()")

	q := fmt.Sprintf(`
		UPDATE job_postings SET %s
		WHERE id = $%d AND user_id = $%d
		RETURNING `+jobCols,
		b.setClause(), b.arg(id), b.arg(userID))

	j := &entity.JobPosting{}
	if err := scanJob(r.pool.QueryRow(ctx, q, b.args...), j); err != nil {
		return nil, classify(err)
	}
	return j, nil
}

func (r *JobPostingRepository) Delete(ctx context.Context, id, userID string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM job_postings WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return classify(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.JobPostingRepository = (*JobPostingRepository)(nil)
