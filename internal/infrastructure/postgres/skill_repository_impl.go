package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/careertrack/internal/domain/entity"
	"github.com/oksasatya/careertrack/internal/domain/repository"
)

// SkillRepository enforces the (user_id, lower(name)) uniqueness constraint
// at the database; the 23505 violation surfaces as ErrDuplicate.
type SkillRepository struct {
	pool *pgxpool.Pool
}

func NewSkillRepository(pool *pgxpool.Pool) *SkillRepository {
	return &SkillRepository{pool: pool}
}

const skillCols = "id, user_id, name, category, proficiency, created_at"

func scanSkill(row interface{ Scan(...any) error }, s *entity.Skill) error {
	return row.Scan(&s.ID, &s.UserID, &s.Name, &s.Category, &s.Proficiency, &s.CreatedAt)
}

func (r *SkillRepository) Create(ctx context.Context, s *entity.Skill) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO skills (user_id, name, category, proficiency)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, s.UserID, s.Name, s.Category, s.Proficiency)

	return classify(row.Scan(&s.ID, &s.CreatedAt))
}

func (r *SkillRepository) ListByUser(ctx context.Context, userID string) ([]entity.Skill, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+skillCols+`
		FROM skills
		WHERE user_id = $1
		ORDER BY category ASC, name ASC
	`, userID)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	out := make([]entity.Skill, 0)
	for rows.Next() {
		var s entity.Skill
		if err := scanSkill(rows, &s); err != nil {
			return nil, classify(err)
		}
		out = append(out, s)
	}
	return out, classify(rows.Err())
}

func (r *SkillRepository) Update(ctx context.Context, id, userID string, p entity.SkillPatch) (*entity.Skill, error) {
	b := &patchBuilder{}
	if p.Name != nil {
		b.set("name", *p.Name)
	}
	if p.Category != nil {
		b.set("category", *p.Category)
	}
	if p.Proficiency != nil {
		b.set("proficiency", *p.Proficiency)
	}
	if b.empty() {
		return r.getByID(ctx, id, userID)
	}

	q := fmt.Sprintf(`
		UPDATE skills SET %s
		WHERE id = $%d AND user_id = $%d
		RETURNING `+skillCols,
		b.setClause(), b.arg(id), b.arg(userID))

	s := &entity.Skill{}
	if err := scanSkill(r.pool.QueryRow(ctx, q, b.args...), s); err != nil {
		return nil, classify(err)
	}
	return s, nil
}

func (r *SkillRepository) Delete(ctx context.Context, id, userID string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM skills WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return classify(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *SkillRepository) getByID(ctx context.Context, id, userID string) (*entity.Skill, error) {
	s := &entity.Skill{}
	row := r.pool.QueryRow(ctx, `
		SELECT `+skillCols+`
		FROM skills
		WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err := scanSkill(row, s); err != nil {
		return nil, classify(err)
	}
	return s, nil
}

var _ repository.SkillRepository = (*SkillRepository)(nil)
