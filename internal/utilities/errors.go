package utilities

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"HireEcho-backend/internal/store"
)

// Error kinds returned in the error field of an ErrorResponse.
const (
	KindMalformedIdentifier = "MalformedIdentifier"
	KindInvalidBody         = "InvalidBody"
	KindUnauthorized        = "Unauthorized"
	KindForbidden           = "Forbidden"
	KindNotFound            = "NotFound"
	KindAlreadyApplied      = "AlreadyApplied"
	KindPayloadTooLarge     = "PayloadTooLarge"
	KindTooManyRequests     = "TooManyRequests"
	KindStoreUnavailable    = "StoreUnavailable"
	KindInternal            = "Internal"
)

var (
	// ErrInvalidBody marks a request body that cannot be decoded.
	ErrInvalidBody = errors.New("invalid request body")
	// ErrUnauthorized marks a request without a valid credential.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden marks a request outside the caller's scope.
	ErrForbidden = errors.New("forbidden")
	// ErrTooManyRequests marks a rate limited request.
	ErrTooManyRequests = errors.New("too many requests")
)

var kindStatus = map[string]int{
	KindMalformedIdentifier: http.StatusBadRequest,
	KindInvalidBody:         http.StatusBadRequest,
	KindUnauthorized:        http.StatusUnauthorized,
	KindForbidden:           http.StatusForbidden,
	KindNotFound:            http.StatusNotFound,
	KindAlreadyApplied:      http.StatusConflict,
	KindPayloadTooLarge:     http.StatusRequestEntityTooLarge,
	KindTooManyRequests:     http.StatusTooManyRequests,
	KindStoreUnavailable:    http.StatusServiceUnavailable,
	KindInternal:            http.StatusInternalServerError,
}

var kindMessage = map[string]string{
	KindMalformedIdentifier: "identifier is not valid",
	KindInvalidBody:         "request body is not valid",
	KindUnauthorized:        "unauthorized access",
	KindForbidden:           "forbidden access",
	KindNotFound:            "resource not found",
	KindAlreadyApplied:      "already applied to this job",
	KindPayloadTooLarge:     "request body too large",
	KindTooManyRequests:     "too many requests, try again later",
	KindStoreUnavailable:    "service temporarily unavailable",
	KindInternal:            "internal server error",
}

// ErrorKind maps err to the kind reported to clients.
func ErrorKind(err error) string {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return KindPayloadTooLarge
	case errors.Is(err, store.ErrMalformedIdentifier):
		return KindMalformedIdentifier
	case errors.Is(err, ErrInvalidBody),
		errors.Is(err, store.ErrEmptyUpdate),
		errors.Is(err, store.ErrInvalidUpdate):
		return KindInvalidBody
	case errors.Is(err, ErrUnauthorized):
		return KindUnauthorized
	case errors.Is(err, ErrForbidden):
		return KindForbidden
	case errors.Is(err, ErrTooManyRequests):
		return KindTooManyRequests
	case errors.Is(err, store.ErrNotFound):
		return KindNotFound
	case errors.Is(err, store.ErrDuplicate):
		return KindAlreadyApplied
	case errors.Is(err, store.ErrStoreUnavailable):
		return KindStoreUnavailable
	default:
		return KindInternal
	}
}

// HTTPStatus maps err to a response status code.
func HTTPStatus(err error) int {
	return kindStatus[ErrorKind(err)]
}

// NewErrorResponse builds the body for err. The message is generic per kind.
func NewErrorResponse(err error) ErrorResponse {
	kind := ErrorKind(err)
	return ErrorResponse{Error: kind, Message: kindMessage[kind]}
}

// RespondError writes the error response for err and stops the handler chain.
func RespondError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(HTTPStatus(err), NewErrorResponse(err))
}
