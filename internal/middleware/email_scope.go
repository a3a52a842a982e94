package middleware

import (
	"github.com/gin-gonic/gin"

	"HireEcho-backend/internal/utilities"
)

// MatchEmailClaim rejects requests whose query parameter param names another
// user than the email claim of the token. It must run after RequireAuth.
func MatchEmailClaim(param string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		queried := ctx.Query(param)
		claimed := utilities.ClaimString(ctx, "email")

		if queried != "" && claimed != "" && queried != claimed {
			utilities.RespondError(ctx, utilities.ErrForbidden)
			return
		}
		ctx.Next()
	}
}
