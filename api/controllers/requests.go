package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stockless/stockless-backend/api/middleware"
	"github.com/stockless/stockless-backend/api/responses"
	"github.com/stockless/stockless-backend/api/validators"
	requestsvc "github.com/stockless/stockless-backend/internal/requests"
	"github.com/stockless/stockless-backend/pkg/enums"
	pkgerrors "github.com/stockless/stockless-backend/pkg/errors"
	"github.com/stockless/stockless-backend/pkg/logger"
)

// RequestsList returns license requests scoped to the caller's role:
// buyers see the requests they opened, creators the ones addressed to them.
func RequestsList(svc requestsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "request service unavailable"))
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

		var page *requestsvc.ListResult
		if middleware.RoleFromContext(r.Context()) == string(enums.UserRoleCreator) {
			page, err = svc.ListForCreator(r.Context(), userID, params)
		} else {
			page, err = svc.ListForBuyer(r.Context(), userID, params)
		}
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, page)
	}
}

type requestDecisionPayload struct {
	Decision string `json:"decision" validate:"required,oneof=completed rejected"`
}

// RequestDecide records a creator's decision on a pending request. The
// settlement path is not built yet, so a valid decision still answers
// not implemented after all checks pass.
func RequestDecide(svc requestsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "request service unavailable"))
			return
		}

		userID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		requestID, err := parsePathID(r, chi.URLParam(r, "requestId"), "request id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload requestDecisionPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Decide(r.Context(), userID, requestID, payload.Decision); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "decided"})
	}
}
