package repository

import (
	"context"

	"github.com/oksasatya/careertrack/internal/domain/entity"
)

type JobPostingRepository interface {
	Create(ctx context.Context, j *entity.JobPosting) error
	ListByUser(ctx context.Context, userID string) ([]entity.JobPosting, error)
	GetByID(ctx context.Context, id, userID string) (*entity.JobPosting, error)
	Update(ctx context.Context, id, userID string, p entity.JobPostingPatch) (*entity.JobPosting, error)
	Delete(ctx context.Context, id, userID string) error
	// ListWithDeadlines returns owned postings that carry a deadline,
	// soonest first, for the calendar view.
	ListWithDeadlines(ctx context.Context, userID string) ([]entity.JobPosting, error)
}
