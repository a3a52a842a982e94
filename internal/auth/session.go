package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"HireEcho-backend/internal/utilities"
)

// SessionController issues session tokens and ends sessions.
type SessionController struct {
	Tokens         *TokenService
	BlacklistStore JwtBlacklistStore
	Cookie         CookiePolicy
	Log            logrus.FieldLogger
}

// NewSessionController creates a new instance of SessionController
func NewSessionController(tokens *TokenService, blacklist JwtBlacklistStore, cookie CookiePolicy, log logrus.FieldLogger) *SessionController {
	return &SessionController{
		Tokens:         tokens,
		BlacklistStore: blacklist,
		Cookie:         cookie,
		Log:            log,
	}
}

// IssueTokenHandler signs the posted claims and sets them as the token cookie.
// @Summary Issue a session token
// @Description Signs any JSON object as token claims. The token is returned in the httpOnly `token` cookie and expires after 2 hours.
// @Tags Auth
// @Accept json
// @Produce json
// @Param claims body object false "Claims to sign, usually {\"email\": \"...\"}"
// @Success 200 {object} utilities.SuccessResponse "Cookie set"
// @Failure 400 {object} utilities.ErrorResponse "Body is not a JSON object"
// @Failure 413 {object} utilities.ErrorResponse "Body too large"
// @Failure 500 {object} utilities.ErrorResponse "Failed to sign token"
// @Router /jwt [post]
func (sc *SessionController) IssueTokenHandler(c *gin.Context) {
	claims := map[string]interface{}{}
	if err := json.NewDecoder(c.Request.Body).Decode(&claims); err != nil && !errors.Is(err, io.EOF) {
		LogAuthAttempt(sc.Log, logrus.InfoLevel, "Issue", "Fail", "", "invalid claims body")
		utilities.RespondError(c, fmt.Errorf("%w: %w", utilities.ErrInvalidBody, err))
		return
	}

	token, err := sc.Tokens.Issue(claims)
	if err != nil {
		LogAuthAttempt(sc.Log, logrus.ErrorLevel, "Issue", "Fail", "", err.Error())
		utilities.RespondError(c, err)
		return
	}

	sc.Cookie.Set(c, token)
	LogAuthAttempt(sc.Log, logrus.InfoLevel, "Issue", "Success", identifier(claims), "")
	c.JSON(http.StatusOK, utilities.SuccessResponse{Success: true})
}

// identifier picks a claim that names the user, for logs.
func identifier(claims map[string]interface{}) string {
	email, _ := claims["email"].(string)
	return email
}
