package profiles

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stockless/stockless-backend/pkg/db/models"
	pkgerrors "github.com/stockless/stockless-backend/pkg/errors"
	"github.com/stockless/stockless-backend/pkg/pagination"
)

// Repository exposes creator profile persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a profile repository tied to the provided GORM DB.
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

// GetByID loads one profile by its primary key.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*models.CreatorProfile, error) {
	var profile models.CreatorProfile
	err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "creator not found")
		}
		return nil, err
	}
	return &profile, nil
}

// GetByUserID loads the profile owned by the given user account.
func (r *Repository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.CreatorProfile, error) {
	var profile models.CreatorProfile
	err := r.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "creator profile not found")
		}
		return nil, err
	}
	return &profile, nil
}

// Create inserts a new profile row.
func (r *Repository) Create(ctx context.Context, profile *models.CreatorProfile) (*models.CreatorProfile, error) {
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// Update persists the full profile row.
func (r *Repository) Update(ctx context.Context, profile *models.CreatorProfile) (*models.CreatorProfile, error) {
	if err := r.db.WithContext(ctx).Save(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// ListListed returns catalog-visible profiles using cursor pagination.
// Listing requires both the signed contract and a connected social account.
func (r *Repository) ListListed(ctx context.Context, cursor *pagination.Cursor, limit int) ([]models.CreatorProfile, error) {
	query := r.db.WithContext(ctx).
		Model(&models.CreatorProfile{}).
		Where("contract_signed = ? AND social_media_connected = ?", true, true)

	if cursor != nil {
		query = query.Where("(created_at < ?) OR (created_at = ? AND id < ?)", cursor.CreatedAt, cursor.CreatedAt, cursor.ID)
	}

	query = query.Order("created_at DESC").Order("id DESC").Limit(limit)

	var rows []models.CreatorProfile
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
