package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"unlock-service/internal/domain"
	"unlock-service/pkg/xerrors"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

// Repository is the document-store boundary for unlock requests. Identifiers
// it returns are opaque strings; callers never see store-native types.
type Repository interface {
	CreateUnlockRequest(ctx context.Context, req *domain.UnlockRequest) (string, error)
	ListUnlockRequests(ctx context.Context, limit int) ([]*domain.StoredUnlockRequest, error)
	Ping(ctx context.Context) error
}

type pgRepo struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &pgRepo{db: db}
}

// EnsureSchema creates the unlockrequest collection table if it does not
// exist yet. Run once at startup.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	_, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS unlockrequest (
			id         TEXT PRIMARY KEY,
			brand      TEXT NOT NULL,
			model      TEXT NOT NULL,
			issue      TEXT NOT NULL,
			imei       TEXT NOT NULL,
			region     TEXT NOT NULL DEFAULT '',
			name       TEXT NOT NULL,
			email      TEXT NOT NULL,
			notes      TEXT NOT NULL DEFAULT '',
			status     TEXT NOT NULL DEFAULT 'new',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		return fmt.Errorf("ensure unlockrequest schema: %w", err)
	}
	return nil
}

// CreateUnlockRequest implements Repository. The identifier is generated
// here, at the store boundary, and returned as a plain string.
func (p *pgRepo) CreateUnlockRequest(ctx context.Context, req *domain.UnlockRequest) (string, error) {
	id := uuid.New().String()

	_, err := p.db.Exec(ctx, `
		INSERT INTO unlockrequest (
			id, brand, model, issue, imei, region, name, email, notes, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)
	`, id, req.Brand, req.Model, req.Issue, req.IMEI, req.Region, req.Name, req.Email, req.Notes, string(req.Status))
	if err != nil {
		return "", fmt.Errorf("%w: insert unlock request: %v", xerrors.ErrStoreUnavailable, err)
	}

	return id, nil
}

// ListUnlockRequests implements Repository. Results are newest first and
// capped at the clamped limit.
func (p *pgRepo) ListUnlockRequests(ctx context.Context, limit int) ([]*domain.StoredUnlockRequest, error) {
	limit = ClampLimit(limit)

	rows, err := p.db.Query(ctx, `
		SELECT id, brand, model, issue, imei, region, name, email, notes, status, created_at
		FROM unlockrequest
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: list unlock requests: %v", xerrors.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var requests []*domain.StoredUnlockRequest
	for rows.Next() {
		var r domain.StoredUnlockRequest
		var status string
		err := rows.Scan(
			&r.ID,
			&r.Brand,
			&r.Model,
			&r.Issue,
			&r.IMEI,
			&r.Region,
			&r.Name,
			&r.Email,
			&r.Notes,
			&status,
			&r.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan unlock request: %w", err)
		}
		r.Status = domain.Status(status)
		requests = append(requests, &r)
	}

	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return requests, nil
}

// Ping implements Repository.
func (p *pgRepo) Ping(ctx context.Context) error {
	return p.db.Ping(ctx)
}

// ClampLimit normalizes the caller-supplied limit: non-positive values fall
// back to the default, oversized values are capped. Never unlimited.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
