package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/stockless/stockless-backend/api/responses"
	"github.com/stockless/stockless-backend/api/validators"
	checkoutsvc "github.com/stockless/stockless-backend/internal/checkout"
	pkgerrors "github.com/stockless/stockless-backend/pkg/errors"
	"github.com/stockless/stockless-backend/pkg/logger"
)

type quoteRequest struct {
	MediaItemID     *uuid.UUID `json:"media_item_id"`
	Count           int        `json:"count" validate:"min=0"`
	MediaType       string     `json:"media_type" validate:"omitempty,oneof=image video"`
	IncludesEditing bool       `json:"includes_editing"`
	Exclusivity     bool       `json:"exclusivity"`
	DurationMonths  int        `json:"duration_months" validate:"required"`
	Region          string     `json:"region"`
	Territory       string     `json:"territory"`
	Commercial      bool       `json:"commercial"`
}

// Quote prices a hypothetical license without touching any order state.
// Sending a territory switches to the legacy pricing scheme.
func Quote(svc checkoutsvc.QuoteService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "quote service unavailable"))
			return
		}

		var payload quoteRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Quote(r.Context(), checkoutsvc.QuoteInput{
			MediaItemID:     payload.MediaItemID,
			Count:           payload.Count,
			MediaType:       payload.MediaType,
			IncludesEditing: payload.IncludesEditing,
			Exclusivity:     payload.Exclusivity,
			DurationMonths:  payload.DurationMonths,
			Region:          payload.Region,
			Territory:       payload.Territory,
			Commercial:      payload.Commercial,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
