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

type checkoutTermsPayload struct {
	IncludesEditing bool   `json:"includes_editing"`
	Exclusivity     bool   `json:"exclusivity"`
	DurationMonths  int    `json:"duration_months" validate:"required"`
	Region          string `json:"region"`
}

type checkoutRequest struct {
	CreatorID uuid.UUID            `json:"creator_id" validate:"required"`
	Terms     checkoutTermsPayload `json:"terms" validate:"required"`
}

// Checkout turns the caller's cart lines for one creator into a pending
// license request. The cart keeps its lines so the remaining creator groups
// can still be checked out.
func Checkout(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		buyerID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload checkoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.Checkout(r.Context(), buyerID, checkoutsvc.Input{
			CreatorID: payload.CreatorID,
			Terms: checkoutsvc.TermsInput{
				IncludesEditing: payload.Terms.IncludesEditing,
				Exclusivity:     payload.Terms.Exclusivity,
				DurationMonths:  payload.Terms.DurationMonths,
				Region:          payload.Terms.Region,
			},
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}
