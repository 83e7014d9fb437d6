package cart

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stockless/stockless-backend/pkg/db/models"
)

// CartRepository defines the persistence surface required by the cart service.
type CartRepository interface {
	WithTx(tx *gorm.DB) CartRepository
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error)
	Insert(ctx context.Context, item *models.CartItem) (*models.CartItem, error)
	Delete(ctx context.Context, userID, mediaItemID uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID) error
}

type mediaLoader interface {
	GetAvailableByID(ctx context.Context, id uuid.UUID) (*models.MediaItem, error)
}

type profileLoader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.CreatorProfile, error)
}
