package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/careertrack/internal/domain/entity"
	"github.com/oksasatya/careertrack/internal/domain/repository"
)

type EmploymentRepository struct {
	pool *pgxpool.Pool
}

func NewEmploymentRepository(pool *pgxpool.Pool) *EmploymentRepository {
	return &EmploymentRepository{pool: pool}
}

const employmentCols = "id, user_id, company, title, location, start_date, end_date, current, description, created_at"

func scanEmployment(row interface{ Scan(...any) error }, e *entity.Employment) error {
	return row.Scan(&e.ID, &e.UserID, &e.Company, &e.Title, &e.Location,
		&e.StartDate, &e.EndDate, &e.Current, &e.Description, &e.CreatedAt)
}

func (r *EmploymentRepository) Create(ctx context.Context, e *entity.Employment) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO employment (user_id, company, title, location, start_date, end_date, current, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`, e.UserID, e.Company, e.Title, e.Location, e.StartDate, e.EndDate, e.Current, e.Description)

	return classify(row.Scan(&e.ID, &e.CreatedAt))
}

func (r *EmploymentRepository) ListByUser(ctx context.Context, userID string) ([]entity.Employment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+employmentCols+`
		FROM employment
		WHERE user_id = $1
		ORDER BY start_date DESC NULLS LAST, created_at DESC
	`, userID)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	out := make([]entity.Employment, 0)
	for rows.Next() {
		var e entity.Employment
		if err := scanEmployment(rows, &e); err != nil {
			return nil, classify(err)
		}
		out = append(out, e)
	}
	return out, classify(rows.Err())
}

func (r *EmploymentRepository) Update(ctx context.Context, id, userID string, p entity.EmploymentPatch) (*entity.Employment, error) {
	b := &patchBuilder{}
	if p.Company != nil {
		b.set("company", *p.Company)
	}
	if p.Title != nil {
		b.set("title", *p.Title)
	}
	if p.Location != nil {
		b.set("location", *p.Location)
	}
	if p.StartDate != nil {
		b.set("start_date", *p.StartDate)
	}
	if p.EndDate != nil {
		b.set("end_date", *p.EndDate)
	}
	if p.Current != nil {
		b.set("current", *p.Current)
	}
	if p.Description != nil {
		b.set("description", *p.Description)
	}
	if b.empty() {
		return r.getByID(ctx, id, userID)
	}

	q := fmt.Sprintf(`
		UPDATE employment SET %s
		WHERE id = $%d AND user_id = $%d
		RETURNING `+employmentCols,
		b.setClause(), b.arg(id), b.arg(userID))

	e := &entity.Employment{}
	if err := scanEmployment(r.pool.QueryRow(ctx, q, b.args...), e); err != nil {
		return nil, classify(err)
	}
	return e, nil
}

func (r *EmploymentRepository) Delete(ctx context.Context, id, userID string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM employment WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return classify(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *EmploymentRepository) getByID(ctx context.Context, id, userID string) (*entity.Employment, error) {
	e := &entity.Employment{}
	row := r.pool.QueryRow(ctx, `
		SELECT `+employmentCols+`
		FROM employment
		WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err := scanEmployment(row, e); err != nil {
		return nil, classify(err)
	}
	return e, nil
}

var _ repository.EmploymentRepository = (*EmploymentRepository)(nil)
