package cart

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stockless/stockless-backend/pkg/db"
	"github.com/stockless/stockless-backend/pkg/db/models"
	pkgerrors "github.com/stockless/stockless-backend/pkg/errors"
)

// Repo persists cart lines through GORM.
type Repo struct {
	db *gorm.DB
}

// NewRepo binds the repository to the provided DB handle.
func NewRepo(conn *gorm.DB) *Repo {
	return &Repo{db: conn}
}

// WithTx scopes the repository to the provided transaction.
func (r *Repo) WithTx(tx *gorm.DB) CartRepository {
	if tx == nil {
		return r
	}
	return &Repo{db: tx}
}

// ListByUser returns the user's cart lines oldest-first so grouping stays
// stable across refetches.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Insert writes one cart line. A duplicate (user, media item) pair maps to
// a conflict so callers can surface "Item already in cart" verbatim.
func (r *Repo) Insert(ctx context.Context, item *models.CartItem) (*models.CartItem, error) {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		if db.IsUniqueViolation(err, models.UniqueCartUserMedia) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "Item already in cart")
		}
		return nil, err
	}
	return item, nil
}

// Delete removes a single line. Deleting an absent line is a no-op.
func (r *Repo) Delete(ctx context.Context, userID, mediaItemID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND media_item_id = ?", userID, mediaItemID).
		Delete(&models.CartItem{}).Error
}

// Clear drops every line the user holds.
func (r *Repo) Clear(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.CartItem{}).Error
}
