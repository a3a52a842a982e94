package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"HireEcho-backend/internal/utilities"
)

// LogoutHandler clears the token cookie and revokes the presented token until it expires.
// @Summary Log out
// @Description Always succeeds. A valid token in the `token` cookie is revoked.
// @Tags Auth
// @Produce json
// @Success 200 {object} utilities.SuccessResponse "Cookie cleared"
// @Failure 500 {object} utilities.ErrorResponse "Failed to revoke token"
// @Router /logout [post]
func (sc *SessionController) LogoutHandler(c *gin.Context) {
	if tokenString, err := utilities.ExtractTokenCookie(c); err == nil {
		if claims, err := sc.Tokens.Parse(tokenString); err == nil {
			if err := sc.BlacklistStore.AddToBlacklist(claims.ID, claims.ExpiresAt.Time); err != nil {
				LogAuthAttempt(sc.Log, logrus.ErrorLevel, "Logout", "Fail", identifier(claims.Data), err.Error())
				utilities.RespondError(c, err)
				return
			}
			LogAuthAttempt(sc.Log, logrus.InfoLevel, "Logout", "Success", identifier(claims.Data), "")
		}
	}

	sc.Cookie.Clear(c)
	c.JSON(http.StatusOK, utilities.SuccessResponse{Success: true})
}
