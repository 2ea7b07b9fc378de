package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/relayy/relayy-backend/internal/domain"
	"github.com/relayy/relayy-backend/internal/middleware"
	"github.com/relayy/relayy-backend/internal/routing"
	"github.com/relayy/relayy-backend/internal/service"
	"github.com/relayy/relayy-backend/internal/testutil"
)

// Helper to set up auth context with JWT claims
func setupAuthContext(c echo.Context, auth0ID, email, name, picture string) {
	customClaims := &middleware.CustomClaims{
		Email:   email,
		Name:    name,
		Picture: picture,
	}
	claims := &validator.ValidatedClaims{
		RegisteredClaims: validator.RegisteredClaims{
			Subject: auth0ID,
		},
		CustomClaims: customClaims,
	}
	ctx := context.WithValue(c.Request().Context(), middleware.ClaimsKey, claims)
	ctx = context.WithValue(ctx, middleware.Auth0IDKey, auth0ID)
	c.SetRequest(c.Request().WithContext(ctx))
}

// Helper to set up a resolved local user on the context
func setupUserContext(c echo.Context, userID uuid.UUID) {
	ctx := context.WithValue(c.Request().Context(), middleware.UserIDKey, userID)
	c.SetRequest(c.Request().WithContext(ctx))
}

func hasCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func TestCallback_NewUser(t *testing.T) {
	e := echo.New()
	userRepo := testutil.NewMockUserRepository()
	identityService := service.NewIdentityService(userRepo)
	handler := NewAuthHandler(identityService, "")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/callback", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	setupAuthContext(c, "auth0|newuser123", "new@example.com", "New User", "https://example.com/pic.jpg")

	err := handler.Callback(c)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response AuthCallbackResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.User.Email != "new@example.com" {
		t.Errorf("Expected email 'new@example.com', got %s", response.User.Email)
	}

	// A fresh login arms the one-shot redirect suppression
	skip := hasCookie(rec, routing.SkipRedirectCookie)
	if skip == nil {
		t.Fatal("Expected skip redirect cookie to be set")
	}
	if skip.MaxAge != 0 {
		t.Errorf("Expected session-scoped skip cookie, got MaxAge %d", skip.MaxAge)
	}
}

func TestCallback_ExistingUser(t *testing.T) {
	e := echo.New()
	userRepo := testutil.NewMockUserRepository()
	identityService := service.NewIdentityService(userRepo)
	handler := NewAuthHandler(identityService, "")

	// First login
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/callback", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, "auth0|user123", "user@example.com", "", "")
	if err := handler.Callback(c); err != nil {
		t.Fatalf("First callback: expected no error, got %v", err)
	}
	var first AuthCallbackResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &first)

	// Second login with the same subject
	req = httptest.NewRequest(http.MethodPost, "/api/v1/auth/callback", nil)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	setupAuthContext(c, "auth0|user123", "user@example.com", "", "")
	if err := handler.Callback(c); err != nil {
		t.Fatalf("Second callback: expected no error, got %v", err)
	}
	var second AuthCallbackResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &second)

	if first.User.ID != second.User.ID {
		t.Errorf("Expected same user across logins, got %s and %s", first.User.ID, second.User.ID)
	}
}

func TestCallback_NoAuth(t *testing.T) {
	e := echo.New()
	userRepo := testutil.NewMockUserRepository()
	identityService := service.NewIdentityService(userRepo)
	handler := NewAuthHandler(identityService, "")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/callback", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.Callback(c)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", rec.Code)
	}
}

func TestCallback_MissingEmail(t *testing.T) {
	e := echo.New()
	userRepo := testutil.NewMockUserRepository()
	identityService := service.NewIdentityService(userRepo)
	handler := NewAuthHandler(identityService, "")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/callback", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, "auth0|noemail", "", "", "")

	_ = handler.Callback(c)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestMe_Success(t *testing.T) {
	e := echo.New()
	userRepo := testutil.NewMockUserRepository()
	identityService := service.NewIdentityService(userRepo)
	handler := NewAuthHandler(identityService, "")

	name := "Jane"
	userRepo.AddUser(&domain.User{
		ID:      uuid.New(),
		Auth0ID: "auth0|user123",
		Email:   "user@example.com",
		Name:    &name,
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, "auth0|user123", "user@example.com", "", "")

	err := handler.Me(c)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var response UserResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Email != "user@example.com" {
		t.Errorf("Expected email user@example.com, got %s", response.Email)
	}
}

func TestMe_UnknownUser(t *testing.T) {
	e := echo.New()
	userRepo := testutil.NewMockUserRepository()
	identityService := service.NewIdentityService(userRepo)
	handler := NewAuthHandler(identityService, "")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, "auth0|ghost", "ghost@example.com", "", "")

	_ = handler.Me(c)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}

func TestLogout_ClearsSkipCookieKeepsRecent(t *testing.T) {
	e := echo.New()
	userRepo := testutil.NewMockUserRepository()
	identityService := service.NewIdentityService(userRepo)
	handler := NewAuthHandler(identityService, "")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, "auth0|user123", "user@example.com", "", "")

	err := handler.Logout(c)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	skip := hasCookie(rec, routing.SkipRedirectCookie)
	if skip == nil || skip.MaxAge != -1 {
		t.Error("Expected skip redirect cookie to be cleared")
	}

	// The recent-workspace preference survives logout
	if hasCookie(rec, routing.RecentWorkspaceCookie) != nil {
		t.Error("Expected recent workspace cookie untouched on logout")
	}
}
