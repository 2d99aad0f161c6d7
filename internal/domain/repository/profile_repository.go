package repository

import (
	"context"

	"github.com/oksasatya/careertrack/internal/domain/entity"
)

// Profile section stores. Every operation is scoped to the owning user: list
// filters on user_id, update and delete match id AND user_id, and zero
// affected rows surfaces as ErrNotFound.

type EducationRepository interface {
	Create(ctx context.Context, e *entity.Education) error
	ListByUser(ctx context.Context, userID string) ([]entity.Education, error)
	Update(ctx context.Context, id, userID string, p entity.EducationPatch) (*entity.Education, error)
	Delete(ctx context.Context, id, userID string) error
}

type EmploymentRepository interface {
	Create(ctx context.Context, e *entity.Employment) error
	ListByUser(ctx context.Context, userID string) ([]entity.Employment, error)
	Update(ctx context.Context, id, userID string, p entity.EmploymentPatch) (*entity.Employment, error)
	Delete(ctx context.Context, id, userID string) error
}

// SkillRepository additionally enforces uniqueness on (user_id, lower(name));
// violations are reported as ErrDuplicate.
type SkillRepository interface {
	Create(ctx context.Context, s *entity.Skill) error
	ListByUser(ctx context.Context, userID string) ([]entity.Skill, error)
	Update(ctx context.Context, id, userID string, p entity.SkillPatch) (*entity.Skill, error)
	Delete(ctx context.Context, id, userID string) error
}

type CertificationRepository interface {
	Create(ctx context.Context, c *entity.Certification) error
	ListByUser(ctx context.Context, userID string) ([]entity.Certification, error)
	Update(ctx context.Context, id, userID string, p entity.CertificationPatch) (*entity.Certification, error)
	Delete(ctx context.Context, id, userID string) error
}

type ProjectRepository interface {
	Create(ctx context.Context, p *entity.Project) error
	ListByUser(ctx context.Context, userID string) ([]entity.Project, error)
	Update(ctx context.Context, id, userID string, patch entity.ProjectPatch) (*entity.Project, error)
	Delete(ctx context.Context, id, userID string) error
}
