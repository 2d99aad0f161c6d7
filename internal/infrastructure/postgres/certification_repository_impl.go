package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/careertrack/internal/domain/entity"
	"github.com/oksasatya/careertrack/internal/domain/repository"
)

type CertificationRepository struct {
	pool *pgxpool.Pool
}

func NewCertificationRepository(pool *pgxpool.Pool) *CertificationRepository {
	return &CertificationRepository{pool: pool}
}

const certificationCols = "id, user_id, name, organization, issue_date, expiry_date, credential_id, credential_url, created_at"

func scanCertification(row interface{ Scan(...any) error }, c *entity.Certification) error {
	return row.Scan(&c.ID, &c.UserID, &c.Name, &c.Organization, &c.IssueDate,
		&c.ExpiryDate, &c.CredentialID, &c.CredentialURL, &c.CreatedAt)
}

func (r *CertificationRepository) Create(ctx context.Context, c *entity.Certification) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO certifications (user_id, name, organization, issue_date, expiry_date, credential_id, credential_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`, c.UserID, c.Name, c.Organization, c.IssueDate, c.ExpiryDate, c.CredentialID, c.CredentialURL)

	return classify(row.Scan(&c.ID, &c.CreatedAt))
}

func (r *CertificationRepository) ListByUser(ctx context.Context, userID string) ([]entity.Certification, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+certificationCols+`
		FROM certifications
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	out := make([]entity.Certification, 0)
	for rows.Next() {
		var c entity.Certification
		if err := scanCertification(rows, &c); err != nil {
			return nil, classify(err)
		}
		out = append(out, c)
	}
	return out, classify(rows.Err())
}

func (r *CertificationRepository) Update(ctx context.Context, id, userID string, p entity.CertificationPatch) (*entity.Certification, error) {
	b := &patchBuilder{}
	if p.Name != nil {
		b.set("name", *p.Name)
	}
	if p.Organization != nil {
		b.set("organization", *p.Organization)
	}
	if p.IssueDate != nil {
		b.set("issue_date", *p.IssueDate)
	}
	if p.ExpiryDate != nil {
		b.set("expiry_date", *p.ExpiryDate)
	}
	if p.CredentialID != nil {
		b.set("credential_id", *p.CredentialID)
	}
	if p.CredentialURL != nil {
		b.set("credential_url", *p.CredentialURL)
	}
	if b.empty() {
		return r.getByID(ctx, id, userID)
	}

	q := fmt.Sprintf(`
		UPDATE certifications SET %s
		WHERE id = $%d AND user_id = $%d
		RETURNING `+certificationCols,
		b.setClause(), b.arg(id), b.arg(userID))

	c := &entity.Certification{}
	if err := scanCertification(r.pool.QueryRow(ctx, q, b.args...), c); err != nil {
		return nil, classify(err)
	}
	return c, nil
}

func (r *CertificationRepository) Delete(ctx context.Context, id, userID string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM certifications WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return classify(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *CertificationRepository) getByID(ctx context.Context, id, userID string) (*entity.Certification, error) {
	c := &entity.Certification{}
	row := r.pool.QueryRow(ctx, `
		SELECT `+certificationCols+`
		FROM certifications
		WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err := scanCertification(row, c); err != nil {
		return nil, classify(err)
	}
	return c, nil
}

var _ repository.CertificationRepository = (*CertificationRepository)(nil)
