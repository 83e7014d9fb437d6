package requests

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stockless/stockless-backend/pkg/db/models"
	pkgerrors "github.com/stockless/stockless-backend/pkg/errors"
	"github.com/stockless/stockless-backend/pkg/pagination"
)

// Repository persists license requests.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a license request repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx scopes the repository to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	if tx == nil {
		return r
	}
	return &Repository{db: tx}
}

// Create inserts one license request row.
func (r *Repository) Create(ctx context.Context, req *models.LicenseRequest) (*models.LicenseRequest, error) {
	if err := r.db.WithContext(ctx).Create(req).Error; err != nil {
		return nil, err
	}
	return req, nil
}

// GetByID loads one license request.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*models.LicenseRequest, error) {
	var req models.LicenseRequest
	err := r.db.WithContext(ctx).First(&req, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "license request not found")
		}
		return nil, err
	}
	return &req, nil
}

// ListByBuyer returns a buyer's requests, newest first, cursor paged.
func (r *Repository) ListByBuyer(ctx context.Context, buyerID uuid.UUID, cursor *pagination.Cursor, limit int) ([]models.LicenseRequest, error) {
	return r.list(ctx, "buyer_id = ?", buyerID, cursor, limit)
}

// ListByCreator returns the requests addressed to one creator, newest first.
func (r *Repository) ListByCreator(ctx context.Context, creatorID uuid.UUID, cursor *pagination.Cursor, limit int) ([]models.LicenseRequest, error) {
	return r.list(ctx, "creator_id = ?", creatorID, cursor, limit)
}

func (r *Repository) list(ctx context.Context, scope string, owner uuid.UUID, cursor *pagination.Cursor, limit int) ([]models.LicenseRequest, error) {
	query := r.db.WithContext(ctx).
		Model(&models.LicenseRequest{}).
		Where(scope, owner)

	if cursor != nil {
		query = query.Where("(created_at < ?) OR (created_at = ? AND id < ?)", cursor.CreatedAt, cursor.CreatedAt, cursor.ID)
	}

	query = query.Order("created_at DESC").Order("id DESC").Limit(limit)

	var rows []models.LicenseRequest
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
