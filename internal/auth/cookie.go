package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"HireEcho-backend/internal/utilities"
)

// CookiePolicy decides the attributes of the token cookie.
type CookiePolicy struct {
	Production bool
	MaxAge     time.Duration
}

// sameSite is None in production, where the front end runs on another site, and Strict otherwise.
func (p CookiePolicy) sameSite() http.SameSite {
	if p.Production {
		return http.SameSiteNoneMode
	}
	return http.SameSiteStrictMode
}

// Set writes the token cookie.
func (p CookiePolicy) Set(c *gin.Context, token string) {
	c.SetSameSite(p.sameSite())
	c.SetCookie(utilities.TokenCookieName, token, int(p.MaxAge.Seconds()), "/", "", p.Production, true)
}

// Clear expires the token cookie with the same attributes it was set with.
func (p CookiePolicy) Clear(c *gin.Context) {
	c.SetSameSite(p.sameSite())
	c.SetCookie(utilities.TokenCookieName, "", -1, "/", "", p.Production, true)
}
