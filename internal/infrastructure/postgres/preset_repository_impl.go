package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/careertrack/internal/domain/entity"
	"github.com/oksasatya/careertrack/internal/domain/repository"
)

type PresetRepository struct {
	pool *pgxpool.Pool
}

func NewPresetRepository(pool *pgxpool.Pool) *PresetRepository {
	return &PresetRepository{pool: pool}
}

const presetCols = "id, user_id, name, description, content, created_at"

func scanPreset(row interface{ Scan(...any) error }, p *entity.Preset) error {
	return row.Scan(&p.ID, &p.UserID, &p.Name, &p.Description, &p.Content, &p.CreatedAt)
}

func (r *PresetRepository) Create(ctx context.Context, p *entity.Preset) error {
	if p.Content == nil {
		p.Content = []byte("{}")
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO presets (user_id, name, description, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, p.UserID, p.Name, p.Description, p.Content)

	return classify(row.Scan(&p.ID, &p.CreatedAt))
}

func (r *PresetRepository) ListByUser(ctx context.Context, userID string) ([]entity.Preset, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+presetCols+`
		FROM presets
		WHERE user_id = $1
		ORDER BY name ASC
	`, userID)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	out := make([]entity.Preset, 0)
	for rows.Next() {
		var p entity.Preset
		if err := scanPreset(rows, &p); err != nil {
			return nil, classify(err)
		}
		out = append(out, p)
	}
	return out, classify(rows.Err())
}

func (r *PresetRepository) Update(ctx context.Context, id, userID string, patch entity.PresetPatch) (*entity.Preset, error) {
	b := &patchBuilder{}
	if patch.Name != nil {
		b.set("name", *patch.Name)
	}
	if patch.Description != nil {
		b.set("description", *patch.Description)
	}
	if patch.Content != nil {
		b.set("content", patch.Content)
	}
	if b.empty() {
		return r.getByID(ctx, id, userID)
	}

	q := fmt.Sprintf(`
		UPDATE presets SET %s
		WHERE id = $%d AND user_id = $%d
		RETURNING `+presetCols,
		b.setClause(), b.arg(id), b.arg(userID))

	p := &entity.Preset{}
	if err := scanPreset(r.pool.QueryRow(ctx, q, b.args...), p); err != nil {
		return nil, classify(err)
	}
	return p, nil
}

func (r *PresetRepository) Delete(ctx context.Context, id, userID string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM presets WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return classify(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PresetRepository) getByID(ctx context.Context, id, userID string) (*entity.Preset, error) {
	p := &entity.Preset{}
	row := r.pool.QueryRow(ctx, `
		SELECT `+presetCols+`
		FROM presets
		WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err := scanPreset(row, p); err != nil {
		return nil, classify(err)
	}
	return p, nil
}

var _ repository.PresetRepository = (*PresetRepository)(nil)
