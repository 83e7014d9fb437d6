package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/stockless/stockless-backend/pkg/db/models"
	pkgerrors "github.com/stockless/stockless-backend/pkg/errors"
	"github.com/stockless/stockless-backend/pkg/pagination"
)

type profileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.CreatorProfile, error)
	ListListed(ctx context.Context, cursor *pagination.Cursor, limit int) ([]models.CreatorProfile, error)
}

type mediaRepository interface {
	ListByCreator(ctx context.Context, creatorID uuid.UUID, onlyAvailable bool, cursor *pagination.Cursor, limit int) ([]models.MediaItem, error)
}

// CreatorCard is the public shape of a listed creator. Contract and social
// connection state never leave the backend; being in the catalog already
// implies both.
type CreatorCard struct {
	ID              uuid.UUID `json:"id"`
	DisplayName     string    `json:"display_name"`
	Bio             string    `json:"bio,omitempty"`
	AvatarURL       string    `json:"avatar_url,omitempty"`
	Tags            []string  `json:"tags"`
	Restrictions    []string  `json:"restrictions"`
	PhotoPriceCents *int64    `json:"photo_price_cents,omitempty"`
	VideoPriceCents *int64    `json:"video_price_cents,omitempty"`
}

// CreatorsPage is one page of the catalog.
type CreatorsPage struct {
	Creators   []CreatorCard `json:"creators"`
	NextCursor string        `json:"next_cursor,omitempty"`
}

// MediaPage is one page of a listed creator's available media.
type MediaPage struct {
	Items      []models.MediaItem `json:"items"`
	NextCursor string             `json:"next_cursor,omitempty"`
}

// Service exposes the buyer-facing catalog. Every path enforces the listing
// rule: unlisted creators and their media are invisible, indistinguishable
// from absent.
type Service interface {
	ListCreators(ctx context.Context, params pagination.Params) (*CreatorsPage, error)
	GetCreator(ctx context.Context, creatorID uuid.UUID) (*CreatorCard, error)
	ListCreatorMedia(ctx context.Context, creatorID uuid.UUID, params pagination.Params) (*MediaPage, error)
}

type service struct {
	profiles profileRepository
	media    mediaRepository
}

// NewService builds a catalog service backed by the provided repositories.
func NewService(profiles profileRepository, media mediaRepository) (Service, error) {
	if profiles == nil {
		return nil, fmt.Errorf("profile repository required")
	}
	if media == nil {
		return nil, fmt.Errorf("media repository required")
	}
	return &service{profiles: profiles, media: media}, nil
}

func (s *service) ListCreators(ctx context.Context, params pagination.Params) (*CreatorsPage, error) {
	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}

	limit := pagination.NormalizeLimit(params.Limit)
	rows, err := s.profiles.ListListed(ctx, cursor, limit+1)
	if err != nil {
		return nil, err
	}

	page := &CreatorsPage{}
	visible := rows
	if len(rows) > limit {
		visible = rows[:limit]
		last := visible[len(visible)-1]
		page.NextCursor = pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
	}
	page.Creators = make([]CreatorCard, 0, len(visible))
	for _, row := range visible {
		page.Creators = append(page.Creators, toCard(row))
	}
	return page, nil
}

func (s *service) GetCreator(ctx context.Context, creatorID uuid.UUID) (*CreatorCard, error) {
	profile, err := s.visibleProfile(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	card := toCard(*profile)
	return &card, nil
}

func (s *service) ListCreatorMedia(ctx context.Context, creatorID uuid.UUID, params pagination.Params) (*MediaPage, error) {
	if _, err := s.visibleProfile(ctx, creatorID); err != nil {
		return nil, err
	}

	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}

	limit := pagination.NormalizeLimit(params.Limit)
	rows, err := s.media.ListByCreator(ctx, creatorID, true, cursor, limit+1)
	if err != nil {
		return nil, err
	}

	page := &MediaPage{Items: rows}
	if len(rows) > limit {
		page.Items = rows[:limit]
		last := page.Items[len(page.Items)-1]
		page.NextCursor = pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
	}
	return page, nil
}

func (s *service) visibleProfile(ctx context.Context, creatorID uuid.UUID) (*models.CreatorProfile, error) {
	profile, err := s.profiles.GetByID(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	if !profile.Listed() {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "creator not found")
	}
	return profile, nil
}

func toCard(profile models.CreatorProfile) CreatorCard {
	return CreatorCard{
		ID:              profile.ID,
		DisplayName:     profile.DisplayName,
		Bio:             profile.Bio,
		AvatarURL:       profile.AvatarURL,
		Tags:            profile.Tags,
		Restrictions:    profile.Restrictions,
		PhotoPriceCents: profile.PhotoPriceCents,
		VideoPriceCents: profile.VideoPriceCents,
	}
}
