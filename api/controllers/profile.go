package controllers

import (
	"net/http"

	"github.com/stockless/stockless-backend/api/responses"
	"github.com/stockless/stockless-backend/api/validators"
	profilesvc "github.com/stockless/stockless-backend/internal/profiles"
	pkgerrors "github.com/stockless/stockless-backend/pkg/errors"
	"github.com/stockless/stockless-backend/pkg/logger"
)

// ProfileGet returns the caller's own creator profile, including the
// listing flags buyers never see.
func ProfileGet(svc profilesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "profile service unavailable"))
			return
		}

		userID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		profile, err := svc.GetOwn(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, profile)
	}
}

type updateProfileRequest struct {
	DisplayName          *string  `json:"display_name" validate:"omitempty,min=1"`
	Bio                  *string  `json:"bio"`
	AvatarURL            *string  `json:"avatar_url" validate:"omitempty,url"`
	Tags                 []string `json:"tags"`
	Restrictions         []string `json:"restrictions"`
	PhotoPriceCents      *int64   `json:"photo_price_cents" validate:"omitempty,min=0"`
	VideoPriceCents      *int64   `json:"video_price_cents" validate:"omitempty,min=0"`
	SocialMediaConnected *bool    `json:"social_media_connected"`
	ContractSigned       *bool    `json:"contract_signed"`
}

func (p updateProfileRequest) toInput() profilesvc.UpdateInput {
	return profilesvc.UpdateInput{
		DisplayName:          p.DisplayName,
		Bio:                  p.Bio,
		AvatarURL:            p.AvatarURL,
		Tags:                 p.Tags,
		Restrictions:         p.Restrictions,
		PhotoPriceCents:      p.PhotoPriceCents,
		VideoPriceCents:      p.VideoPriceCents,
		SocialMediaConnected: p.SocialMediaConnected,
		ContractSigned:       p.ContractSigned,
	}
}

// ProfileUpdate applies a partial update to the caller's profile. Price
// changes cascade to the creator's existing media inside the service.
func ProfileUpdate(svc profilesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "profile service unavailable"))
			return
		}

		userID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateProfileRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		profile, err := svc.UpdateOwn(r.Context(), userID, payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, profile)
	}
}
