package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// JwtIssuer is the issuer claim of every token.
const JwtIssuer = "HireEcho"

// ErrInvalidToken is returned for tokens that are unparseable, badly signed or expired.
var ErrInvalidToken = errors.New("invalid token")

// Claims carries the caller-supplied claims under Data.
type Claims struct {
	Data map[string]interface{} `json:"data"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed session tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService creates a TokenService signing with secret. Tokens expire ttl after issuance.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// TTL returns the token lifetime.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue signs claims. Claims are not validated and come back verbatim from Verify.
func (s *TokenService) Issue(claims map[string]interface{}) (string, error) {
	if claims == nil {
		claims = map[string]interface{}{}
	}
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Data: claims,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    JwtIssuer,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Parse validates token and returns its claims.
func (s *TokenService) Parse(token string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.NewParser().ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	// the parser only checks exp against the wall clock
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(s.now()) {
		return nil, fmt.Errorf("%w: token is expired", ErrInvalidToken)
	}
	if !claims.VerifyIssuer(JwtIssuer, true) {
		return nil, fmt.Errorf("%w: unexpected issuer", ErrInvalidToken)
	}
	return claims, nil
}

// Verify returns the caller-supplied claims of a valid token.
func (s *TokenService) Verify(token string) (map[string]interface{}, error) {
	claims, err := s.Parse(token)
	if err != nil {
		return nil, err
	}
	if claims.Data == nil {
		return map[string]interface{}{}, nil
	}
	return claims.Data, nil
}
