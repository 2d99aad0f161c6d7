package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/careertrack/internal/domain/entity"
	"github.com/oksasatya/careertrack/internal/domain/repository"
)

type ProjectRepository struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

const projectCols = "id, user_id, name, description, url, technologies, start_date, end_date, created_at"

func scanProject(row interface{ Scan(...any) error }, p *entity.Project) error {
	return row.Scan(&p.ID, &p.UserID, &p.Name, &p.Description, &p.URL,
		&p.Technologies, &p.StartDate, &p.EndDate, &p.CreatedAt)
}

func (r *ProjectRepository) Create(ctx context.Context, p *entity.Project) error {
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO projects (user_id, name, description, url, technologies, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`, p.UserID, p.Name, p.Description, p.URL, p.Technologies, p.StartDate, p.EndDate)

	return classify(row.Scan(&p.ID, &p.CreatedAt))
}

func (r *ProjectRepository) ListByUser(ctx context.Context, userID string) ([]entity.Project, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+projectCols+`
		FROM projects
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	out := make([]entity.Project, 0)
	for rows.Next() {
		var p entity.Project
		if err := scanProject(rows, &p); err != nil {
			return nil, classify(err)
		}
		out = append(out, p)
	}
	return out, classify(rows.Err())
}

func (r *ProjectRepository) Update(ctx context.Context, id, userID string, patch entity.ProjectPatch) (*entity.Project, error) {
	b := &patchBuilder{}
	if patch.Name != nil {
		b.set("name", *patch.Name)
	}
	if patch.Description != nil {
		b.set("description", *patch.Description)
	}
	if patch.URL != nil {
		b.set("url", *patch.URL)
	}
	if patch.Technologies != nil {
		b.set("technologies", patch.Technologies)
	}
	if patch.StartDate != nil {
		b.set("start_date", *patch.StartDate)
	}
	if patch.EndDate != nil {
		b.set("end_date", *patch.EndDate)
	}
	if b.empty() {
		return r.getByID(ctx, id, userID)
	}

	q := fmt.Sprintf(`
		UPDATE projects SET %s
		WHERE id = $%d AND user_id = $%d
		RETURNING `+projectCols,
		b.setClause(), b.arg(id), b.arg(userID))

	p := &entity.Project{}
	if err := scanProject(r.pool.QueryRow(ctx, q, b.args...), p); err != nil {
		return nil, classify(err)
	}
	return p, nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id, userID string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return classify(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ProjectRepository) getByID(ctx context.Context, id, userID string) (*entity.Project, error) {
	p := &entity.Project{}
	row := r.pool.QueryRow(ctx, `
		SELECT `+projectCols+`
		FROM projects
		WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err := scanProject(row, p); err != nil {
		return nil, classify(err)
	}
	return p, nil
}

var _ repository.ProjectRepository = (*ProjectRepository)(nil)
