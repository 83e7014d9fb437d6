package auth

import (
	"github.com/google/uuid"

	"github.com/stockless/stockless-backend/pkg/db/models"
	"github.com/stockless/stockless-backend/pkg/enums"
)

// RegisterRequest contains the payload required to open an account. The
// role is fixed here and never changes afterwards.
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	DisplayName string `json:"display_name" validate:"required"`
	Role        string `json:"role" validate:"required,oneof=buyer creator"`
}

// LoginRequest captures the credentials sent to the login endpoint. Portal
// is optional: when the client says which storefront the user is signing in
// from, a role mismatch is rejected instead of silently redirected.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Portal   string `json:"portal,omitempty" validate:"omitempty,oneof=buyer creator"`
}

// RefreshRequest carries the expired access token and its refresh pair.
type RefreshRequest struct {
	AccessToken  string `json:"access_token" validate:"required"`
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// UserDTO is the public shape of an account.
type UserDTO struct {
	ID               uuid.UUID      `json:"id"`
	Email            string         `json:"email"`
	DisplayName      string         `json:"display_name"`
	Role             enums.UserRole `json:"role"`
	CreatorProfileID *uuid.UUID     `json:"creator_profile_id,omitempty"`
}

// LoginResponse contains the token pair plus the landing route the client
// should navigate to for the user's role.
type LoginResponse struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	User         *UserDTO `json:"user"`
	RedirectTo   string   `json:"redirect_to"`
}

// RefreshResponse carries the rotated token pair.
type RefreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func userDTO(user *models.User, profileID *uuid.UUID) *UserDTO {
	if user == nil {
		return nil
	}
	return &UserDTO{
		ID:               user.ID,
		Email:            user.Email,
		DisplayName:      user.DisplayName,
		Role:             user.Role,
		CreatorProfileID: profileID,
	}
}
