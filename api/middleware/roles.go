package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/stockless/stockless-backend/api/responses"
	"github.com/stockless/stockless-backend/pkg/enums"
	pkgerrors "github.com/stockless/stockless-backend/pkg/errors"
	"github.com/stockless/stockless-backend/pkg/logger"
)

// RouteResolver maps an authenticated identity onto its landing route.
type RouteResolver interface {
	RouteFor(ctx context.Context, userID uuid.UUID, role enums.UserRole) (string, error)
}

// RequireRole blocks callers whose role does not match. A signed-in user on
// the wrong surface is pointed at their own landing route, never at login.
func RequireRole(role string, routes RouteResolver, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actual := RoleFromContext(r.Context())
			if actual == role {
				next.ServeHTTP(w, r)
				return
			}

			err := pkgerrors.New(pkgerrors.CodeForbidden, "this area is for "+role+" accounts")
			if redirect := ownRoute(r.Context(), routes, actual); redirect != "" {
				err = err.WithDetails(map[string]string{"redirect_to": redirect})
			}
			responses.WriteError(r.Context(), logg, w, err)
		})
	}
}

func ownRoute(ctx context.Context, routes RouteResolver, role string) string {
	if routes == nil {
		return ""
	}
	userID, err := uuid.Parse(UserIDFromContext(ctx))
	if err != nil {
		return ""
	}
	route, err := routes.RouteFor(ctx, userID, enums.UserRole(role))
	if err != nil {
		return ""
	}
	return route
}
