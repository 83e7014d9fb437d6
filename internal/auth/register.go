package auth

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/stockless/stockless-backend/internal/profiles"
	"github.com/stockless/stockless-backend/pkg/config"
	"github.com/stockless/stockless-backend/pkg/db"
	"github.com/stockless/stockless-backend/pkg/db/models"
	"github.com/stockless/stockless-backend/pkg/enums"
	pkgerrors "github.com/stockless/stockless-backend/pkg/errors"
	"github.com/stockless/stockless-backend/pkg/security"
)

// RegisterService handles the onboarding transaction.
type RegisterService interface {
	Register(ctx context.Context, req RegisterRequest) (*UserDTO, error)
}

// RegisterServiceParams packages the dependencies for the registration flow.
type RegisterServiceParams struct {
	DB             *db.Client
	PasswordConfig config.PasswordConfig
}

type registerService struct {
	db          *db.Client
	passwordCfg config.PasswordConfig
}

// NewRegisterService builds a registration service with the provided dependencies.
func NewRegisterService(params RegisterServiceParams) (RegisterService, error) {
	if params.DB == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "database client required")
	}
	return &registerService{
		db:          params.DB,
		passwordCfg: params.PasswordConfig,
	}, nil
}

// Register creates the account and, for creators, an empty unlisted profile
// in the same transaction. The profile stays out of the catalog until the
// contract is signed and a social account is connected.
func (s *registerService) Register(ctx context.Context, req RegisterRequest) (*UserDTO, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	role, err := enums.ParseUserRole(req.Role)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid role")
	}
	displayName := strings.TrimSpace(req.DisplayName)
	if displayName == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "display name is required")
	}

	passwordHash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	var dto *UserDTO
	err = s.db.WithTx(ctx, func(tx *gorm.DB) error {
		userRepo := NewUserRepo(tx)
		profileRepo := profiles.NewRepository(tx)

		if _, err := userRepo.FindByEmail(ctx, email); err == nil {
			return pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check user email")
		}

		user, err := userRepo.Create(ctx, &models.User{
			Email:        email,
			PasswordHash: passwordHash,
			DisplayName:  displayName,
			Role:         role,
			IsActive:     true,
		})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create user")
		}

		if role != enums.UserRoleCreator {
			dto = userDTO(user, nil)
			return nil
		}

		profile, err := profileRepo.Create(ctx, &models.CreatorProfile{
			UserID:      user.ID,
			DisplayName: displayName,
		})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create creator profile")
		}
		dto = userDTO(user, &profile.ID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}
