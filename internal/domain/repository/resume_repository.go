package repository

import (
	"context"

	"github.com/oksasatya/careertrack/internal/domain/entity"
)

type ResumeRepository interface {
	Create(ctx context.Context, r *entity.Resume) error
	ListByUser(ctx context.Context, userID string) ([]entity.Resume, error)
	GetByID(ctx context.Context, id, userID string) (*entity.Resume, error)
	Update(ctx context.Context, id, userID string, p entity.ResumePatch) (*entity.Resume, error)
	Delete(ctx context.Context, id, userID string) error
}

type PresetRepository interface {
	Create(ctx context.Context, p *entity.Preset) error
	ListByUser(ctx context.Context, userID string) ([]entity.Preset, error)
	Update(ctx context.Context, id, userID string, patch entity.PresetPatch) (*entity.Preset, error)
	Delete(ctx context.Context, id, userID string) error
}
