package profiles

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stockless/stockless-backend/pkg/db/models"
	pkgerrors "github.com/stockless/stockless-backend/pkg/errors"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type profileRepository interface {
	WithTx(tx *gorm.DB) *Repository
	GetByID(ctx context.Context, id uuid.UUID) (*models.CreatorProfile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.CreatorProfile, error)
	Update(ctx context.Context, profile *models.CreatorProfile) (*models.CreatorProfile, error)
}

type mediaPriceSyncer interface {
	SyncUnitPrices(ctx context.Context, tx *gorm.DB, creatorID uuid.UUID, photoCents, videoCents *int64) error
}

// UpdateInput is a partial profile update; nil fields are left untouched.
type UpdateInput struct {
	DisplayName          *string
	Bio                  *string
	AvatarURL            *string
	Tags                 []string
	Restrictions         []string
	PhotoPriceCents      *int64
	VideoPriceCents      *int64
	SocialMediaConnected *bool
	ContractSigned       *bool
}

// Service exposes owner-scoped profile reads and updates.
type Service interface {
	GetOwn(ctx context.Context, userID uuid.UUID) (*models.CreatorProfile, error)
	UpdateOwn(ctx context.Context, userID uuid.UUID, input UpdateInput) (*models.CreatorProfile, error)
}

type service struct {
	repo  profileRepository
	tx    txRunner
	media mediaPriceSyncer
}

// NewService builds a profile service backed by the provided stack.
func NewService(repo profileRepository, tx txRunner, media mediaPriceSyncer) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("profile repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if media == nil {
		return nil, fmt.Errorf("media price syncer required")
	}
	return &service{repo: repo, tx: tx, media: media}, nil
}

func (s *service) GetOwn(ctx context.Context, userID uuid.UUID) (*models.CreatorProfile, error) {
	return s.repo.GetByUserID(ctx, userID)
}

// UpdateOwn applies a partial update to the caller's own profile. When the
// photo or video price changes, the unit price on the creator's existing
// media is re-synced in the same transaction so quotes and profile always
// agree.
func (s *service) UpdateOwn(ctx context.Context, userID uuid.UUID, input UpdateInput) (*models.CreatorProfile, error) {
	if err := validatePrices(input); err != nil {
		return nil, err
	}

	var updated *models.CreatorProfile
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		profile, err := repo.GetByUserID(ctx, userID)
		if err != nil {
			return err
		}

		applyUpdate(profile, input)

		if updated, err = repo.Update(ctx, profile); err != nil {
			return err
		}

		if input.PhotoPriceCents != nil || input.VideoPriceCents != nil {
			return s.media.SyncUnitPrices(ctx, tx, profile.ID, input.PhotoPriceCents, input.VideoPriceCents)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func applyUpdate(profile *models.CreatorProfile, input UpdateInput) {
	if input.DisplayName != nil {
		profile.DisplayName = *input.DisplayName
	}
	if input.Bio != nil {
		profile.Bio = *input.Bio
	}
	if input.AvatarURL != nil {
		profile.AvatarURL = *input.AvatarURL
	}
	if input.Tags != nil {
		profile.Tags = input.Tags
	}
	if input.Restrictions != nil {
		profile.Restrictions = input.Restrictions
	}
	if input.PhotoPriceCents != nil {
		profile.PhotoPriceCents = input.PhotoPriceCents
	}
	if input.VideoPriceCents != nil {
		profile.VideoPriceCents = input.VideoPriceCents
	}
	if input.SocialMediaConnected != nil {
		profile.SocialMediaConnected = *input.SocialMediaConnected
	}
	if input.ContractSigned != nil {
		profile.ContractSigned = *input.ContractSigned
	}
}

func validatePrices(input UpdateInput) error {
	if input.PhotoPriceCents != nil && *input.PhotoPriceCents < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "photo price cannot be negative")
	}
	if input.VideoPriceCents != nil && *input.VideoPriceCents < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "video price cannot be negative")
	}
	return nil
}
