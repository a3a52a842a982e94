package utilities

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// TokenCookieName is the cookie carrying the session token.
const TokenCookieName = "token"

// ErrNoToken is returned when the request carries no token cookie.
var ErrNoToken = errors.New("no token cookie")

// ExtractTokenCookie returns the session token from the request cookies.
func ExtractTokenCookie(c *gin.Context) (string, error) {
	token, err := c.Cookie(TokenCookieName)
	if err != nil || token == "" {
		return "", ErrNoToken
	}
	return token, nil
}
