package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stockless/stockless-backend/api/responses"
	"github.com/stockless/stockless-backend/api/validators"
	catalogsvc "github.com/stockless/stockless-backend/internal/catalog"
	pkgerrors "github.com/stockless/stockless-backend/pkg/errors"
	"github.com/stockless/stockless-backend/pkg/logger"
)

// CatalogListCreators returns one page of listed creators.
func CatalogListCreators(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		params, err := validators.ParsePagination(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		page, err := svc.ListCreators(r.Context(), params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, page)
	}
}

func CatalogGetCreator(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		creatorID, err := parsePathID(r, chi.URLParam(r, "creatorId"), "creator id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		card, err := svc.GetCreator(r.Context(), creatorID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, card)
	}
}

// CatalogListCreatorMedia returns one page of a listed creator's available
// media. Unlisted creators read as not found, same as the profile endpoint.
func CatalogListCreatorMedia(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		creatorID, err := parsePathID(r, chi.URLParam(r, "creatorId"), "creator id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		params, err := validators.ParsePagination(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		page, err := svc.ListCreatorMedia(r.Context(), creatorID, params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, page)
	}
}
