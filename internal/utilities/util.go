// Package utilities contain utility code that use across the package
package utilities

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
)

// ClaimsKey is the gin context key the verified token claims are stored under.
const ClaimsKey = "claims"

// ErrorResponse type for swagger docs
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// MessageResponse type for swagger docs
type MessageResponse struct {
	Message string `json:"message"`
}

// SuccessResponse type for swagger docs
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ExtractClaims returns the claims the auth middleware attached to the request.
func ExtractClaims(c *gin.Context) (map[string]interface{}, error) {
	v, ok := c.Get(ClaimsKey)
	if !ok || v == nil {
		return nil, errors.New("claims not provided")
	}
	claims, ok := v.(map[string]interface{})
	if !ok {
		return nil, errors.New("failed to assert claims type")
	}
	return claims, nil
}

// ClaimString returns a string claim, or "" when it is missing or not a string.
func ClaimString(c *gin.Context, key string) string {
	claims, err := ExtractClaims(c)
	if err != nil {
		return ""
	}
	s, _ := claims[key].(string)
	return s
}

// BindJSON decodes the request body into out. Decoding failures wrap ErrInvalidBody.
func BindJSON(c *gin.Context, out interface{}) error {
	if err := json.NewDecoder(c.Request.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	return nil
}
