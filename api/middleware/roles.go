package middleware

import (
	"net/http"

	"github.com/angelmondragon/fireshop-backend/api/responses"
	"github.com/angelmondragon/fireshop-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/fireshop-backend/pkg/errors"
	"github.com/angelmondragon/fireshop-backend/pkg/logger"
)

// RequireRole rejects callers whose role from the access token does not meet
// the minimum. Runs after Auth, which seeds the role into the context.
func RequireRole(min enums.UserRole, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			role, err := enums.ParseUserRole(RoleFromContext(ctx))
			if err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing access token"))
				return
			}

			if !role.AtLeast(min) {
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "insufficient permissions"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
