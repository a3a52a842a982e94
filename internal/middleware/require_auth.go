// Package middleware contain utilities middleware code
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"HireEcho-backend/internal/auth"
	"HireEcho-backend/internal/utilities"
)

// TokenIDKey is the gin context key of the verified token's ID.
const TokenIDKey = "token_id"

// TokenVerifier validates session tokens.
type TokenVerifier interface {
	Parse(token string) (*auth.Claims, error)
}

// RequireAuth validates the token cookie and attaches its claims to the
// request. Every failure gets the same 401 body; the reason is only logged.
func RequireAuth(tokens TokenVerifier, log logrus.FieldLogger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString, err := utilities.ExtractTokenCookie(ctx)
		if err != nil {
			rejectUnauthorized(ctx, log, "no credential presented")
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			rejectUnauthorized(ctx, log, "credential rejected: "+err.Error())
			return
		}

		data := claims.Data
		if data == nil {
			data = map[string]interface{}{}
		}
		ctx.Set(utilities.ClaimsKey, data)
		ctx.Set(TokenIDKey, claims.ID)
		ctx.Next()
	}
}

func rejectUnauthorized(ctx *gin.Context, log logrus.FieldLogger, reason string) {
	auth.LogAuthAttempt(log.WithFields(logrus.Fields{
		"path":       ctx.FullPath(),
		"request_id": ctx.GetString(RequestIDKey),
	}), logrus.DebugLevel, "Guard", "Fail", "", reason)
	utilities.RespondError(ctx, utilities.ErrUnauthorized)
}
