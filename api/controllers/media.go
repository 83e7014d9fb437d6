package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stockless/stockless-backend/api/responses"
	"github.com/stockless/stockless-backend/api/validators"
	mediasvc "github.com/stockless/stockless-backend/internal/media"
	"github.com/stockless/stockless-backend/pkg/enums"
	pkgerrors "github.com/stockless/stockless-backend/pkg/errors"
	"github.com/stockless/stockless-backend/pkg/logger"
)

type publishMediaRequest struct {
	Title          string `json:"title" validate:"required"`
	Type           string `json:"type" validate:"required,oneof=image video"`
	URL            string `json:"url" validate:"required,url"`
	ThumbnailURL   string `json:"thumbnail_url" validate:"omitempty,url"`
	UnitPriceCents *int64 `json:"unit_price_cents" validate:"omitempty,min=0"`
}

// MediaPublish creates a media item owned by the caller's profile.
func MediaPublish(svc mediasvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "media service unavailable"))
			return
		}

		userID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload publishMediaRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.Publish(r.Context(), userID, mediasvc.PublishInput{
			Title:          payload.Title,
			Type:           enums.MediaType(payload.Type),
			URL:            payload.URL,
			ThumbnailURL:   payload.ThumbnailURL,
			UnitPriceCents: payload.UnitPriceCents,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, item)
	}
}

// MediaDelete soft-deletes one of the caller's items. Someone else's item
// reads as not found.
func MediaDelete(svc mediasvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "media service unavailable"))
			return
		}

		userID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		mediaID, err := parsePathID(r, chi.URLParam(r, "mediaId"), "media id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), userID, mediaID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

// MediaListOwn returns the caller's media including removed rows.
func MediaListOwn(svc mediasvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "media service unavailable"))
			return
		}

		userID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		params, err := validators.ParsePagination(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		page, err := svc.ListOwn(r.Context(), userID, params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, page)
	}
}
