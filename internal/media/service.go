package media

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/stockless/stockless-backend/internal/pricing"
	"github.com/stockless/stockless-backend/pkg/db/models"
	"github.com/stockless/stockless-backend/pkg/enums"
	pkgerrors "github.com/stockless/stockless-backend/pkg/errors"
	"github.com/stockless/stockless-backend/pkg/pagination"
)

type profileLoader interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.CreatorProfile, error)
}

type mediaRepository interface {
	Create(ctx context.Context, item *models.MediaItem) (*models.MediaItem, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID, onlyAvailable bool, cursor *pagination.Cursor, limit int) ([]models.MediaItem, error)
	SetUnavailable(ctx context.Context, creatorID, id uuid.UUID) error
}

// PublishInput carries the fields a creator supplies when publishing.
type PublishInput struct {
	Title          string
	Type           enums.MediaType
	URL            string
	ThumbnailURL   string
	UnitPriceCents *int64
}

// ListResult is one page of media plus the cursor for the next one.
type ListResult struct {
	Items      []models.MediaItem `json:"items"`
	NextCursor string             `json:"next_cursor,omitempty"`
}

// Service exposes creator-scoped media management.
type Service interface {
	Publish(ctx context.Context, userID uuid.UUID, input PublishInput) (*models.MediaItem, error)
	Delete(ctx context.Context, userID, mediaID uuid.UUID) error
	ListOwn(ctx context.Context, userID uuid.UUID, params pagination.Params) (*ListResult, error)
}

type service struct {
	repo     mediaRepository
	profiles profileLoader
}

// NewService builds a media service backed by the provided stack.
func NewService(repo mediaRepository, profiles profileLoader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("media repository required")
	}
	if profiles == nil {
		return nil, fmt.Errorf("profile loader required")
	}
	return &service{repo: repo, profiles: profiles}, nil
}

// Publish creates a media item owned by the caller's profile. The item
// inherits the profile's photo/video price unless an explicit price is given.
func (s *service) Publish(ctx context.Context, userID uuid.UUID, input PublishInput) (*models.MediaItem, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "title is required")
	}
	if !input.Type.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid media type")
	}
	if strings.TrimSpace(input.URL) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "asset url is required")
	}
	if input.UnitPriceCents != nil && *input.UnitPriceCents < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unit price cannot be negative")
	}

	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	item := &models.MediaItem{
		CreatorID:      profile.ID,
		Title:          input.Title,
		Type:           input.Type,
		URL:            input.URL,
		ThumbnailURL:   input.ThumbnailURL,
		UnitPriceCents: input.UnitPriceCents,
		Available:      true,
	}
	if item.UnitPriceCents == nil {
		if inherited := pricing.ResolveUnitPriceCents(item, profile, 0); inherited > 0 {
			item.UnitPriceCents = &inherited
		}
	}

	return s.repo.Create(ctx, item)
}

// Delete soft-deletes an item. Ownership is enforced by scoping the update
// to the caller's profile; someone else's item reads as not found.
func (s *service) Delete(ctx context.Context, userID, mediaID uuid.UUID) error {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	return s.repo.SetUnavailable(ctx, profile.ID, mediaID)
}

// ListOwn returns the caller's media including soft-deleted rows, so
// creators can see what buyers no longer can.
func (s *service) ListOwn(ctx context.Context, userID uuid.UUID, params pagination.Params) (*ListResult, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}

	limit := pagination.NormalizeLimit(params.Limit)
	rows, err := s.repo.ListByCreator(ctx, profile.ID, false, cursor, limit+1)
	if err != nil {
		return nil, err
	}

	return pageResult(rows, limit), nil
}

func pageResult(rows []models.MediaItem, limit int) *ListResult {
	result := &ListResult{Items: rows}
	if len(rows) > limit {
		result.Items = rows[:limit]
		last := result.Items[len(result.Items)-1]
		result.NextCursor = pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
	}
	return result
}
