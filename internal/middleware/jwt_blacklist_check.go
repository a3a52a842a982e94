package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"HireEcho-backend/internal/auth"
	"HireEcho-backend/internal/utilities"
)

// JwtBlacklistCheck is a middleware that checks if the JWT token is blacklisted.
// It must run after RequireAuth.
func JwtBlacklistCheck(bl auth.JwtBlacklistStore, log logrus.FieldLogger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		jti := ctx.GetString(TokenIDKey)
		if jti == "" {
			rejectUnauthorized(ctx, log, "token has no id")
			return
		}

		isBlacklisted, err := bl.IsBlacklisted(jti)
		if err != nil {
			utilities.RespondError(ctx, err)
			return
		}

		if isBlacklisted {
			rejectUnauthorized(ctx, log, "token has been revoked")
			return
		}

		ctx.Next()
	}
}
