package cart

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/stockless/stockless-backend/internal/pricing"
	"github.com/stockless/stockless-backend/pkg/db/models"
	"github.com/stockless/stockless-backend/pkg/types"
)

// View is the aggregated cart returned to buyers: the raw lines plus the
// per-creator grouping derived from them.
type View struct {
	Items  []models.CartItem `json:"items"`
	Groups []CreatorGroup    `json:"groups"`
}

// Service exposes cart operations for one buyer.
type Service interface {
	List(ctx context.Context, userID uuid.UUID) (*View, error)
	Add(ctx context.Context, userID, mediaItemID uuid.UUID) (*models.CartItem, error)
	Remove(ctx context.Context, userID, mediaItemID uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID) error
}

type service struct {
	repo             CartRepository
	media            mediaLoader
	profiles         profileLoader
	defaultUnitPrice int64
}

// NewService builds a cart service backed by the provided stack.
func NewService(repo CartRepository, media mediaLoader, profiles profileLoader, defaultUnitPriceCents int64) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	if media == nil {
		return nil, fmt.Errorf("media loader required")
	}
	if profiles == nil {
		return nil, fmt.Errorf("profile loader required")
	}
	return &service{
		repo:             repo,
		media:            media,
		profiles:         profiles,
		defaultUnitPrice: defaultUnitPriceCents,
	}, nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID) (*View, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &View{
		Items:  items,
		Groups: GroupByCreator(items),
	}, nil
}

// Add inserts one line for the media item. A second add of the same item is
// rejected with a conflict and leaves the existing line untouched.
func (s *service) Add(ctx context.Context, userID, mediaItemID uuid.UUID) (*models.CartItem, error) {
	item, err := s.media.GetAvailableByID(ctx, mediaItemID)
	if err != nil {
		return nil, err
	}
	profile, err := s.profiles.GetByID(ctx, item.CreatorID)
	if err != nil {
		return nil, err
	}

	line := &models.CartItem{
		UserID:      userID,
		MediaItemID: item.ID,
		CreatorID:   item.CreatorID,
		Snapshot: types.CartSnapshot{
			Media: types.MediaSnapshot{
				ID:             item.ID,
				Title:          item.Title,
				Type:           item.Type,
				ThumbnailURL:   item.ThumbnailURL,
				UnitPriceCents: pricing.ResolveUnitPriceCents(item, profile, s.defaultUnitPrice),
			},
			Creator: types.CreatorSnapshot{
				ID:          profile.ID,
				DisplayName: profile.DisplayName,
				AvatarURL:   profile.AvatarURL,
			},
		},
	}

	return s.repo.Insert(ctx, line)
}

// Remove is idempotent: removing an item that is not in the cart succeeds.
func (s *service) Remove(ctx context.Context, userID, mediaItemID uuid.UUID) error {
	return s.repo.Delete(ctx, userID, mediaItemID)
}

func (s *service) Clear(ctx context.Context, userID uuid.UUID) error {
	return s.repo.Clear(ctx, userID)
}
