package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/careertrack/internal/domain/entity"
	"github.com/oksasatya/careertrack/internal/domain/repository"
)

type EducationRepository struct {
	pool *pgxpool.Pool
}

func NewEducationRepository(pool *pgxpool.Pool) *EducationRepository {
	return &EducationRepository{pool: pool}
}

const educationCols = "id, user_id, school, degree, field_of_study, start_date, end_date, description, created_at"

func scanEducation(row interface{ Scan(...any) error }, e *entity.Education) error {
	return row.Scan(&e.ID, &e.UserID, &e.School, &e.Degree, &e.FieldOfStudy,
		&e.StartDate, &e.EndDate, &e.Description, &e.CreatedAt)
}

func (r *EducationRepository) Create(ctx context.Context, e *entity.Education) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO education (user_id, school, degree, field_of_study, start_date, end_date, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`, e.UserID, e.School, e.Degree, e.FieldOfStudy, e.StartDate, e.EndDate, e.Description)

	return classify(row.Scan(&e.ID, &e.CreatedAt))
}

func (r *EducationRepository) ListByUser(ctx context.Context, userID string) ([]entity.Education, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+educationCols+`
		FROM education
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	out := make([]entity.Education, 0)
	for rows.Next() {
		var e entity.Education
		if err := scanEducation(rows, &e); err != nil {
			return nil, classify(err)
		}
		out = append(out, e)
	}
	return out, classify(rows.Err())
}

func (r *EducationRepository) Update(ctx context.Context, id, userID string, p entity.EducationPatch) (*entity.Education, error) {
	b := &patchBuilder{}
	if p.School != nil {
		b.set("school", *p.School)
	}
	if p.Degree != nil {
		b.set("degree", *p.Degree)
	}
	if p.FieldOfStudy != nil {
		b.set("field_of_study", *p.FieldOfStudy)
	}
	if p.StartDate != nil {
		b.set("start_date", *p.StartDate)
	}
	if p.EndDate != nil {
		b.set("end_date", *p.EndDate)
	}
	if p.Description != nil {
		b.set("description", *p.Description)
	}
	if b.empty() {
		return r.getByID(ctx, id, userID)
	}

	q := fmt.Sprintf(`
		UPDATE education SET %s
		WHERE id = $%d AND user_id = $%d
		RETURNING `+educationCols,
		b.setClause(), b.arg(id), b.arg(userID))

	e := &entity.Education{}
	if err := scanEducation(r.pool.QueryRow(ctx, q, b.args...), e); err != nil {
		return nil, classify(err)
	}
	return e, nil
}

func (r *EducationRepository) Delete(ctx context.Context, id, userID string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM education WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return classify(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *EducationRepository) getByID(ctx context.Context, id, userID string) (*entity.Education, error) {
	e := &entity.Education{}
	row := r.pool.QueryRow(ctx, `
		SELECT `+educationCols+`
		FROM education
		WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err := scanEducation(row, e); err != nil {
		return nil, classify(err)
	}
	return e, nil
}

var _ repository.EducationRepository = (*EducationRepository)(nil)
