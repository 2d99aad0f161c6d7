package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/careertrack/internal/domain/entity"
	"github.com/oksasatya/careertrack/internal/domain/repository"
)

type ResumeRepository struct {
	pool *pgxpool.Pool
}

func NewResumeRepository(pool *pgxpool.Pool) *ResumeRepository {
	return &ResumeRepository{pool: pool}
}

const resumeCols = "id, user_id, title, content, job_title, company, is_favorite, created_at, updated_at"

func scanResume(row interface{ Scan(...any) error }, r *entity.Resume) error {
	return row.Scan(&r.ID, &r.UserID, &r.Title, &r.Content, &r.JobTitle,
		&r.Company, &r.IsFavorite, &r.CreatedAt, &r.UpdatedAt)
}

func (r *ResumeRepository) Create(ctx context.Context, res *entity.Resume) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO resumes (user_id, title, content, job_title, company, is_favorite)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, res.UserID, res.Title, res.Content, res.JobTitle, res.Company, res.IsFavorite)

	return classify(row.Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt))
}

func (r *ResumeRepository) ListByUser(ctx context.Context, userID string) ([]entity.Resume, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+resumeCols+`
		FROM resumes
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	out := make([]entity.Resume, 0)
	for rows.Next() {
		var res entity.Resume
		if err := scanResume(rows, &res); err != nil {
			return nil, classify(err)
		}
		out = append(out, res)
	}
	return out, classify(rows.Err())
}

func (r *ResumeRepository) GetByID(ctx context.Context, id, userID string) (*entity.Resume, error) {
	res := &entity.Resume{}
	row := r.pool.QueryRow(ctx, `
		SELECT `+resumeCols+`
		FROM resumes
		WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err := scanResume(row, res); err != nil {
		return nil, classify(err)
	}
	return res, nil
}

func (r *ResumeRepository) Update(ctx context.Context, id, userID string, p entity.ResumePatch) (*entity.Resume, error) {
	b := &patchBuilder{}
	if p.Title != nil {
		b.set("title", *p.Title)
	}
	if p.Content != nil {
		b.set("content", *p.Content)
	}
	if p.JobTitle != nil {
		b.set("job_title", *p.JobTitle)
	}
	if p.Company != nil {
		b.set("company", *p.Company)
	}
	if p.IsFavorite != nil {
		b.set("is_favorite", *p.IsFavorite)
	}
	if b.empty() {
		return r.GetByID(ctx, id, userID)
	}
	b.sets = append(b.sets, "updated_at = now()")

	q := fmt.Sprintf(`
		UPDATE resumes SET %s
		WHERE id = $%d AND user_id = $%d
		RETURNING `+resumeCols,
		b.setClause(), b.arg(id), b.arg(userID))

	res := &entity.Resume{}
	if err := scanResume(r.pool.QueryRow(ctx, q, b.args...), res); err != nil {
		return nil, classify(err)
	}
	return res, nil
}

func (r *ResumeRepository) Delete(ctx context.Context, id, userID string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return classify(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.ResumeRepository = (*ResumeRepository)(nil)
