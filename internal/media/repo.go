package media

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stockless/stockless-backend/pkg/db/models"
	"github.com/stockless/stockless-backend/pkg/enums"
	pkgerrors "github.com/stockless/stockless-backend/pkg/errors"
	"github.com/stockless/stockless-backend/pkg/pagination"
)

// Repository exposes media item persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a media repository tied to the provided GORM DB.
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

// Create inserts a new media row.
func (r *Repository) Create(ctx context.Context, item *models.MediaItem) (*models.MediaItem, error) {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// GetByID loads one media item regardless of availability.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*models.MediaItem, error) {
	var item models.MediaItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "media item not found")
		}
		return nil, err
	}
	return &item, nil
}

// GetAvailableByID loads one media item, treating soft-deleted rows as absent.
func (r *Repository) GetAvailableByID(ctx context.Context, id uuid.UUID) (*models.MediaItem, error) {
	var item models.MediaItem
	err := r.db.WithContext(ctx).First(&item, "id = ? AND available = ?", id, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "media item not found")
		}
		return nil, err
	}
	return &item, nil
}

// ListByCreator returns a creator's media using cursor pagination. When
// onlyAvailable is set, soft-deleted rows are excluded.
func (r *Repository) ListByCreator(ctx context.Context, creatorID uuid.UUID, onlyAvailable bool, cursor *pagination.Cursor, limit int) ([]models.MediaItem, error) {
	query := r.db.WithContext(ctx).
		Model(&models.MediaItem{}).
		Where("creator_id = ?", creatorID)

	if onlyAvailable {
		query = query.Where("available = ?", true)
	}
	if cursor != nil {
		query = query.Where("(created_at < ?) OR (created_at = ? AND id < ?)", cursor.CreatedAt, cursor.CreatedAt, cursor.ID)
	}

	query = query.Order("created_at DESC").Order("id DESC").Limit(limit)

	var rows []models.MediaItem
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// SetUnavailable soft-deletes one media item, scoped to its owner.
func (r *Repository) SetUnavailable(ctx context.Context, creatorID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Model(&models.MediaItem{}).
		Where("id = ? AND creator_id = ?", id, creatorID).
		Update("available", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "media item not found")
	}
	return nil
}

// SyncUnitPrices re-points a creator's media at the profile's current
// photo/video prices. Called inside the profile-update transaction.
func (r *Repository) SyncUnitPrices(ctx context.Context, tx *gorm.DB, creatorID uuid.UUID, photoCents, videoCents *int64) error {
	conn := r.db
	if tx != nil {
		conn = tx
	}

	if photoCents != nil {
		err := conn.WithContext(ctx).
			Model(&models.MediaItem{}).
			Where("creator_id = ? AND type = ?", creatorID, enums.MediaTypeImage).
			Update("unit_price_cents", *photoCents).Error
		if err != nil {
			return err
		}
	}
	if videoCents != nil {
		err := conn.WithContext(ctx).
			Model(&models.MediaItem{}).
			Where("creator_id = ? AND type = ?", creatorID, enums.MediaTypeVideo).
			Update("unit_price_cents", *videoCents).Error
		if err != nil {
			return err
		}
	}
	return nil
}
