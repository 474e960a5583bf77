package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/angelmondragon/fireshop-backend/api/middleware"
	"github.com/angelmondragon/fireshop-backend/api/views"
	"github.com/angelmondragon/fireshop-backend/internal/auth"
	"github.com/angelmondragon/fireshop-backend/internal/users"
	"github.com/angelmondragon/fireshop-backend/pkg/config"
	pkgerrors "github.com/angelmondragon/fireshop-backend/pkg/errors"
	"github.com/angelmondragon/fireshop-backend/pkg/flash"
)

type stubAuthService struct {
	result     *auth.LoginResult
	registered *users.UserDTO
	err        error
}

func (s *stubAuthService) Login(ctx context.Context, req auth.LoginRequest) (*auth.LoginResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func (s *stubAuthService) Register(ctx context.Context, req auth.RegisterRequest) (*users.UserDTO, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.registered, nil
}

func newFlashStore(t *testing.T) *flash.Store {
	t.Helper()
	store, err := flash.NewStore("flash-test-secret")
	if err != nil {
		t.Fatalf("new flash store: %v", err)
	}
	return store
}

func newRenderer(t *testing.T) *views.Renderer {
	t.Helper()
	renderer, err := views.NewRenderer()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return renderer
}

func TestLoginFormCredentialsFailure(t *testing.T) {
	logg := testLogger()
	flashes := newFlashStore(t)
	jwtCfg := config.JWTConfig{Secret: "s", Issuer: "i", ExpirationMinutes: 15}

	stub := &stubAuthService{err: pkgerrors.New(pkgerrors.CodeUnauthorized, auth.MessageNoUser)}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("email=ghost@example.com&password=x"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	Login(stub, flashes, jwtCfg, logg).ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != auth.LoginPath {
		t.Fatalf("expected redirect to %s, got %s", auth.LoginPath, got)
	}

	var flashCookie *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "fireshop_flash" {
			flashCookie = cookie
		}
	}
	if flashCookie == nil {
		t.Fatalf("expected a flash cookie to be queued")
	}

	// The queued message surfaces on the next login page render, then clears.
	renderer := newRenderer(t)
	pageReq := httptest.NewRequest(http.MethodGet, "/login", nil)
	pageReq.AddCookie(flashCookie)
	pageRec := httptest.NewRecorder()
	LoginPage(renderer, flashes, logg).ServeHTTP(pageRec, pageReq)

	if pageRec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", pageRec.Code)
	}
	if !strings.Contains(pageRec.Body.String(), auth.MessageNoUser) {
		t.Fatalf("expected flash message on the page: %s", pageRec.Body.String())
	}
}

func TestLoginFormSuccess(t *testing.T) {
	logg := testLogger()
	flashes := newFlashStore(t)
	jwtCfg := config.JWTConfig{Secret: "s", Issuer: "i", ExpirationMinutes: 15}

	stub := &stubAuthService{result: &auth.LoginResult{
		AccessToken:  "token-value",
		RedirectPath: auth.ShopPath,
		User:         &users.UserDTO{Email: "buyer@example.com"},
	}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("email=buyer@example.com&password=pw"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	Login(stub, flashes, jwtCfg, logg).ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != auth.ShopPath {
		t.Fatalf("expected redirect to %s, got %s", auth.ShopPath, got)
	}

	var tokenCookie *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == middleware.TokenCookieName {
			tokenCookie = cookie
		}
	}
	if tokenCookie == nil {
		t.Fatalf("expected the token cookie to be set")
	}
	if tokenCookie.Value != "token-value" || !tokenCookie.HttpOnly {
		t.Fatalf("unexpected token cookie %+v", tokenCookie)
	}
}

func TestLoginJSON(t *testing.T) {
	logg := testLogger()
	flashes := newFlashStore(t)
	jwtCfg := config.JWTConfig{Secret: "s", Issuer: "i", ExpirationMinutes: 15}

	t.Run("success answers the token in the body", func(t *testing.T) {
		stub := &stubAuthService{result: &auth.LoginResult{
			AccessToken:  "token-value",
			RedirectPath: auth.AdminPath,
			User:         &users.UserDTO{Email: "admin@example.com"},
		}}
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"admin@example.com","password":"pw"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		Login(stub, flashes, jwtCfg, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if !strings.Contains(rec.Body.String(), "token-value") {
			t.Fatalf("expected token in body: %s", rec.Body.String())
		}
		if !strings.Contains(rec.Body.String(), auth.AdminPath) {
			t.Fatalf("expected redirect path in body: %s", rec.Body.String())
		}
	})

	t.Run("credential failure answers 401 without a redirect", func(t *testing.T) {
		stub := &stubAuthService{err: pkgerrors.New(pkgerrors.CodeUnauthorized, auth.MessageInvalidCredentials)}
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"a@b.c","password":"pw"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		Login(stub, flashes, jwtCfg, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), auth.MessageInvalidCredentials) {
			t.Fatalf("unexpected body: %s", rec.Body.String())
		}
	})

	t.Run("missing fields answer 400", func(t *testing.T) {
		stub := &stubAuthService{}
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"a@b.c"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		Login(stub, flashes, jwtCfg, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestRegisterForm(t *testing.T) {
	logg := testLogger()

	t.Run("success bounces to the login page with a flash", func(t *testing.T) {
		flashes := newFlashStore(t)
		stub := &stubAuthService{registered: &users.UserDTO{Email: "new@example.com"}}
		req := httptest.NewRequest(http.MethodPost, "/login/register", strings.NewReader("email=new@example.com&password=pw"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		Register(stub, flashes, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusFound {
			t.Fatalf("expected 302, got %d: %s", rec.Code, rec.Body.String())
		}
		if got := rec.Header().Get("Location"); got != auth.LoginPath {
			t.Fatalf("expected redirect to %s, got %s", auth.LoginPath, got)
		}

		var flashCookie *http.Cookie
		for _, cookie := range rec.Result().Cookies() {
			if cookie.Name == "fireshop_flash" {
				flashCookie = cookie
			}
		}
		if flashCookie == nil {
			t.Fatalf("expected a flash cookie to be queued")
		}

		pageReq := httptest.NewRequest(http.MethodGet, "/login", nil)
		pageReq.AddCookie(flashCookie)
		pageRec := httptest.NewRecorder()
		LoginPage(newRenderer(t), flashes, logg).ServeHTTP(pageRec, pageReq)
		if !strings.Contains(pageRec.Body.String(), auth.MessageAccountCreated) {
			t.Fatalf("expected the created message on the page: %s", pageRec.Body.String())
		}
	})

	t.Run("taken email bounces back to the register page", func(t *testing.T) {
		flashes := newFlashStore(t)
		stub := &stubAuthService{err: pkgerrors.New(pkgerrors.CodeConflict, auth.MessageEmailTaken)}
		req := httptest.NewRequest(http.MethodPost, "/login/register", strings.NewReader("email=taken@example.com&password=pw"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		Register(stub, flashes, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusFound {
			t.Fatalf("expected 302, got %d", rec.Code)
		}
		if got := rec.Header().Get("Location"); got != auth.RegisterPath {
			t.Fatalf("expected redirect to %s, got %s", auth.RegisterPath, got)
		}
	})

	t.Run("json client gets 201 with the user", func(t *testing.T) {
		stub := &stubAuthService{registered: &users.UserDTO{Email: "new@example.com"}}
		req := httptest.NewRequest(http.MethodPost, "/login/register", strings.NewReader(`{"email":"new@example.com","password":"pw"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		Register(stub, newFlashStore(t), logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if !strings.Contains(rec.Body.String(), "new@example.com") {
			t.Fatalf("expected the created user in the body: %s", rec.Body.String())
		}
	})

	t.Run("missing password answers 400", func(t *testing.T) {
		stub := &stubAuthService{}
		req := httptest.NewRequest(http.MethodPost, "/login/register", strings.NewReader(`{"email":"new@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		Register(stub, newFlashStore(t), logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestRegisterPage(t *testing.T) {
	rec := httptest.NewRecorder()
	RegisterPage(newRenderer(t), newFlashStore(t), testLogger()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/register", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Create Account") {
		t.Fatalf("expected the register form: %s", rec.Body.String())
	}
}
