package middleware

import (
	"strconv"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-gonic/gin"

	"HireEcho-backend/internal/utilities"
)

func keyFunc(c *gin.Context) string {
	if email := utilities.ClaimString(c, "email"); email != "" {
		return "user: " + email
	}
	return "ip: " + c.ClientIP()
}

func errorHandler(c *gin.Context, info ratelimit.Info) {
	c.Header("Retry-After", strconv.Itoa(int(time.Until(info.ResetTime).Seconds())+1))
	utilities.RespondError(c, utilities.ErrTooManyRequests)
}

// RateLimiterMiddleware limits each client to reqPerSec requests per second.
func RateLimiterMiddleware(reqPerSec uint) gin.HandlerFunc {
	if reqPerSec == 0 {
		reqPerSec = 5
	}

	store := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Second,
		Limit: reqPerSec,
	})

	return ratelimit.RateLimiter(store, &ratelimit.Options{
		KeyFunc:      keyFunc,
		ErrorHandler: errorHandler,
	})
}
