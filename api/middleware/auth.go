package middleware

import (
	"net/http"
	"strings"

	"github.com/angelmondragon/fireshop-backend/api/responses"
	"github.com/angelmondragon/fireshop-backend/pkg/auth"
	"github.com/angelmondragon/fireshop-backend/pkg/config"
	pkgerrors "github.com/angelmondragon/fireshop-backend/pkg/errors"
	"github.com/angelmondragon/fireshop-backend/pkg/logger"
)

// TokenCookieName is the HTTP-only cookie the login flow sets for browser clients.
const TokenCookieName = "fireshop_token"

// Auth validates the access token from the Authorization header or the session
// cookie and seeds the request context with the caller's identity.
func Auth(cfg config.JWTConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString := bearerToken(r)
			if tokenString == "" {
				if cookie, err := r.Cookie(TokenCookieName); err == nil {
					tokenString = cookie.Value
				}
			}

			if tokenString == "" {
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing access token"))
				return
			}

			claims, err := auth.ParseAccessToken(cfg, tokenString)
			if err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid access token"))
				return
			}

			ctx = WithUserID(ctx, claims.UserID.String())
			ctx = WithRole(ctx, claims.Role.String())
			if logg != nil {
				ctx = logg.WithUserID(ctx, claims.UserID.String())
				ctx = logg.WithUserRole(ctx, claims.Role.String())
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
