package controllers

import (
	"net/http"
	"strings"

	"github.com/angelmondragon/fireshop-backend/api/middleware"
	"github.com/angelmondragon/fireshop-backend/api/responses"
	"github.com/angelmondragon/fireshop-backend/api/validators"
	"github.com/angelmondragon/fireshop-backend/api/views"
	"github.com/angelmondragon/fireshop-backend/internal/auth"
	"github.com/angelmondragon/fireshop-backend/internal/users"
	"github.com/angelmondragon/fireshop-backend/pkg/config"
	pkgerrors "github.com/angelmondragon/fireshop-backend/pkg/errors"
	"github.com/angelmondragon/fireshop-backend/pkg/flash"
	"github.com/angelmondragon/fireshop-backend/pkg/logger"
)

// loginResponse is the JSON shape returned to API clients on success.
type loginResponse struct {
	AccessToken  string         `json:"accessToken"`
	RedirectPath string         `json:"redirectPath"`
	User         *users.UserDTO `json:"user"`
}

// LoginPage renders the sign-in form, draining any queued flash messages.
func LoginPage(renderer *views.Renderer, flashes *flash.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var messages []string
		if flashes != nil {
			messages = flashes.Pop(w, r)
		}

		err := renderer.Render(w, views.PageData{
			Title:    "Login",
			Page:     "login",
			Messages: messages,
		})
		if err != nil && logg != nil {
			logg.Error(r.Context(), "render login page", err)
		}
	}
}

// RegisterPage renders the account creation form.
func RegisterPage(renderer *views.Renderer, flashes *flash.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var messages []string
		if flashes != nil {
			messages = flashes.Pop(w, r)
		}

		err := renderer.Render(w, views.PageData{
			Title:    "Register",
			Page:     "register",
			Messages: messages,
		})
		if err != nil && logg != nil {
			logg.Error(r.Context(), "render register page", err)
		}
	}
}

// Login verifies credentials and hands the access token to the client.
// Browser form posts get a redirect plus an HTTP-only cookie; JSON clients
// get the token in the response body. Credential failures queue a flash
// message and bounce back to the login page.
func Login(svc auth.Service, flashes *flash.Store, jwtCfg config.JWTConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req auth.LoginRequest
		if err := validators.DecodeRequestBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := svc.Login(ctx, req)
		if err != nil {
			if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeUnauthorized && !wantsJSON(r) {
				if flashes != nil {
					flashes.Push(w, r, typed.Message())
				}
				http.Redirect(w, r, auth.LoginPath, http.StatusFound)
				return
			}
			responses.WriteError(ctx, logg, w, err)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     middleware.TokenCookieName,
			Value:    result.AccessToken,
			Path:     "/",
			MaxAge:   int(jwtCfg.TokenTTL().Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		if wantsJSON(r) {
			responses.WriteSuccess(w, loginResponse{
				AccessToken:  result.AccessToken,
				RedirectPath: result.RedirectPath,
				User:         result.User,
			})
			return
		}

		http.Redirect(w, r, result.RedirectPath, http.StatusFound)
	}
}

// Register creates a MEMBER account. Browser form posts bounce back to the
// register page with a flash on failure and to the login page on success;
// JSON clients get the created user or a status code.
func Register(svc auth.Service, flashes *flash.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req auth.RegisterRequest
		if err := validators.DecodeRequestBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		created, err := svc.Register(ctx, req)
		if err != nil {
			if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeConflict && !wantsJSON(r) {
				if flashes != nil {
					flashes.Push(w, r, typed.Message())
				}
				http.Redirect(w, r, auth.RegisterPath, http.StatusFound)
				return
			}
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if wantsJSON(r) {
			responses.WriteSuccessStatus(w, http.StatusCreated, created)
			return
		}

		if flashes != nil {
			flashes.Push(w, r, auth.MessageAccountCreated)
		}
		http.Redirect(w, r, auth.LoginPath, http.StatusFound)
	}
}

// wantsJSON reports whether the client posted JSON and expects JSON back.
func wantsJSON(r *http.Request) bool {
	contentType := strings.ToLower(r.Header.Get("Content-Type"))
	return strings.HasPrefix(contentType, "application/json")
}
