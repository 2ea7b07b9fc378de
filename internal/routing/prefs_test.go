package routing

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func newTestContext(cookies ...*http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestPreferencesFromRequest_Empty(t *testing.T) {
	c, _ := newTestContext()

	prefs := PreferencesFromRequest(c)
	if prefs.RecentWorkspaceID != uuid.Nil {
		t.Errorf("Expected no recent workspace, got %s", prefs.RecentWorkspaceID)
	}
	if prefs.SkipCreateJoin {
		t.Error("Expected skip flag unset")
	}
}

func TestPreferencesFromRequest_RecentWorkspace(t *testing.T) {
	workspaceID := uuid.New()
	c, _ := newTestContext(&http.Cookie{Name: RecentWorkspaceCookie, Value: workspaceID.String()})

	prefs := PreferencesFromRequest(c)
	if prefs.RecentWorkspaceID != workspaceID {
		t.Errorf("Expected recent workspace %s, got %s", workspaceID, prefs.RecentWorkspaceID)
	}
}

func TestPreferencesFromRequest_MalformedRecent(t *testing.T) {
	c, _ := newTestContext(&http.Cookie{Name: RecentWorkspaceCookie, Value: "not-a-uuid"})

	prefs := PreferencesFromRequest(c)
	if prefs.RecentWorkspaceID != uuid.Nil {
		t.Errorf("Expected malformed cookie to read as unset, got %s", prefs.RecentWorkspaceID)
	}
}

func TestPreferencesFromRequest_SkipFlag(t *testing.T) {
	c, _ := newTestContext(&http.Cookie{Name: SkipRedirectCookie, Value: "1"})

	prefs := PreferencesFromRequest(c)
	if !prefs.SkipCreateJoin {
		t.Error("Expected skip flag set")
	}
}

func TestSetRecentWorkspace_Durable(t *testing.T) {
	c, rec := newTestContext()
	workspaceID := uuid.New()

	SetRecentWorkspace(c, workspaceID, "")

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("Expected 1 cookie, got %d", len(cookies))
	}
	cookie := cookies[0]
	if cookie.Name != RecentWorkspaceCookie {
		t.Errorf("Expected cookie %s, got %s", RecentWorkspaceCookie, cookie.Name)
	}
	if cookie.Value != workspaceID.String() {
		t.Errorf("Expected value %s, got %s", workspaceID, cookie.Value)
	}
	if cookie.MaxAge != int(recentWorkspaceMaxAge.Seconds()) {
		t.Errorf("Expected year-long MaxAge, got %d", cookie.MaxAge)
	}
	if !cookie.HttpOnly {
		t.Error("Expected HttpOnly cookie")
	}
}

func TestSetSkipRedirect_SessionScoped(t *testing.T) {
	c, rec := newTestContext()

	SetSkipRedirect(c, "")

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("Expected 1 cookie, got %d", len(cookies))
	}
	cookie := cookies[0]
	if cookie.Name != SkipRedirectCookie {
		t.Errorf("Expected cookie %s, got %s", SkipRedirectCookie, cookie.Name)
	}
	// Session cookie: no MaxAge, no Expires
	if cookie.MaxAge != 0 {
		t.Errorf("Expected session-scoped cookie, got MaxAge %d", cookie.MaxAge)
	}
}

func TestClearSkipRedirect(t *testing.T) {
	c, rec := newTestContext()

	ClearSkipRedirect(c, "")

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("Expected 1 cookie, got %d", len(cookies))
	}
	if cookies[0].MaxAge != -1 {
		t.Errorf("Expected expired cookie, got MaxAge %d", cookies[0].MaxAge)
	}
}
