package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/stockless/stockless-backend/api/middleware"
	pkgerrors "github.com/stockless/stockless-backend/pkg/errors"
)

// currentUserID reads the authenticated user out of the request context.
// Handlers behind the auth middleware can rely on it being present; a
// missing or malformed value means the route was wired without it.
func currentUserID(r *http.Request) (uuid.UUID, error) {
	raw := middleware.UserIDFromContext(r.Context())
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid user id")
	}
	return id, nil
}

func parsePathID(r *http.Request, raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid "+field)
	}
	return id, nil
}
