package routing

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// RecentWorkspaceCookie remembers the most recently visited workspace
	// across sessions
	RecentWorkspaceCookie = "recent_workspace"
	// SkipRedirectCookie is the one-shot suppression flag set at login or
	// signup and consumed by the next landing resolution
	SkipRedirectCookie = "skip_workspace_redirect"

	// recentWorkspaceMaxAge keeps the recent-workspace preference for a year
	recentWorkspaceMaxAge = 365 * 24 * time.Hour
)

// Preferences are the client-local routing preferences carried on each
// request. Two tabs can race on the recent workspace; last write wins,
// which only affects the cosmetic landing choice.
type Preferences struct {
	RecentWorkspaceID uuid.UUID
	SkipCreateJoin    bool
}

// PreferencesFromRequest reads routing preferences from request cookies.
// A malformed recent-workspace value reads as unset.
func PreferencesFromRequest(c echo.Context) Preferences {
	var prefs Preferences

	if cookie, err := c.Cookie(RecentWorkspaceCookie); err == nil {
		if id, err := uuid.Parse(cookie.Value); err == nil {
			prefs.RecentWorkspaceID = id
		}
	}
	if cookie, err := c.Cookie(SkipRedirectCookie); err == nil && cookie.Value != "" {
		prefs.SkipCreateJoin = true
	}

	return prefs
}

// SetRecentWorkspace durably records the visited workspace
func SetRecentWorkspace(c echo.Context, workspaceID uuid.UUID, cookieDomain string) {
	c.SetCookie(&http.Cookie{
		Name:     RecentWorkspaceCookie,
		Value:    workspaceID.String(),
		Path:     "/",
		Domain:   cookieDomain,
		MaxAge:   int(recentWorkspaceMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// SetSkipRedirect arms the one-shot suppression flag. Session-scoped: the
// cookie carries no MaxAge and dies with the browser session.
func SetSkipRedirect(c echo.Context, cookieDomain string) {
	c.SetCookie(&http.Cookie{
		Name:     SkipRedirectCookie,
		Value:    "1",
		Path:     "/",
		Domain:   cookieDomain,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSkipRedirect consumes the suppression flag
func ClearSkipRedirect(c echo.Context, cookieDomain string) {
	c.SetCookie(&http.Cookie{
		Name:     SkipRedirectCookie,
		Value:    "",
		Path:     "/",
		Domain:   cookieDomain,
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
