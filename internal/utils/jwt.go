package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/erosion-server/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrEmptySignKey      = errors.New("empty JWT sign key")
	ErrInvalidAuthHeader = errors.New("invalid authorization header")
	ErrEmptySubject      = errors.New("empty subject error")
	ErrMissingUserID     = errors.New("missing user_id claim")
)

const bearerScheme = "bearer"

// JWTManager issues and verifies HS256 bearer tokens.
//
// The sign key is injected once at construction and never read from global
// state. When duration is zero the issued tokens carry no exp claim and stay
// valid until the sign key changes.
type JWTManager struct {
	signKey  []byte
	duration time.Duration
}

// NewJWTManager constructs a [JWTManager]. signKey must not be empty.
func NewJWTManager(signKey string, duration time.Duration) (*JWTManager, error) {
	if signKey == "" {
		return nil, ErrEmptySignKey
	}
	return &JWTManager{signKey: []byte(signKey), duration: duration}, nil
}

// Issue creates a signed token for user.
//
// The token includes the following claims:
//   - Subject  (sub):     the username
//   - user_id:            the numeric user id
//   - IssuedAt (iat), ExpiresAt (exp): only when a duration is configured
//
// Example usage:
//
//	token, err := manager.Issue(models.User{ID: 42, Username: "ann"})
//	header := "Bearer " + token.SignedString
func (m *JWTManager) Issue(user models.User) (models.Token, error) {
	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: user.Username},
		UserID:           user.ID,
	}
	if m.duration != 0 {
		now := time.Now()
		claims.IssuedAt = jwt.NewNumericDate(now)
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(m.duration))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	tokenString, err := token.SignedString(m.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, Claims: claims, SignedString: tokenString}, nil
}

// Verify validates tokenString and extracts its claims.
//
// Validation includes:
//   - the algorithm must be HS256 (alg "none" and asymmetric algorithms are rejected)
//   - signature verification with the configured sign key
//   - expiration (exp) check, when the claim is present
//   - presence of the subject and the user_id claim
func (m *JWTManager) Verify(tokenString string) (models.Token, error) {
	var claims models.Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return m.signKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Token{}, ErrEmptySubject
	}
	if claims.UserID == 0 {
		return models.Token{}, ErrMissingUserID
	}

	return models.Token{Token: token, Claims: claims, SignedString: tokenString}, nil
}

// ParseBearerToken extracts the token from an Authorization header value of
// the form "Bearer <token>". The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", ErrInvalidAuthHeader
	}
	token = strings.TrimSpace(token)
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", ErrInvalidAuthHeader
	}
	return token, nil
}
