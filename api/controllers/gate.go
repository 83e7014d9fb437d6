package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/stockless/stockless-backend/api/middleware"
	"github.com/stockless/stockless-backend/api/responses"
	authsvc "github.com/stockless/stockless-backend/internal/auth"
	pkgauth "github.com/stockless/stockless-backend/pkg/auth"
	"github.com/stockless/stockless-backend/pkg/enums"
	pkgerrors "github.com/stockless/stockless-backend/pkg/errors"
	"github.com/stockless/stockless-backend/pkg/logger"
)

// Gate resolves where the current session belongs. Runs behind the optional
// auth middleware: anonymous callers get the login route, signed-in callers
// their role's landing route.
func Gate(svc *authsvc.GateService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "gate service unavailable"))
			return
		}

		var claims *pkgauth.AccessTokenClaims
		if raw := middleware.UserIDFromContext(r.Context()); raw != "" {
			userID, err := uuid.Parse(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid user id"))
				return
			}
			claims = &pkgauth.AccessTokenClaims{
				UserID: userID,
				Role:   enums.UserRole(middleware.RoleFromContext(r.Context())),
			}
		}

		result, err := svc.Resolve(r.Context(), claims)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
