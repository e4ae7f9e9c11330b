package session

import (
	"github.com/golang-jwt/jwt/v5" // JWT library
)

// tokenClaims carries the opaque session id inside the signed cookie.
// Expiry is governed by the Redis TTL, not by the token itself.
type tokenClaims struct {
	SessionID            string `json:"sid"` // Custom claim for the session id
	jwt.RegisteredClaims        // Standard JWT claims
}

// signToken wraps a session id in an HS256-signed token for the cookie.
func signToken(sessionID, secret string) (string, error) {
	claims := tokenClaims{SessionID: sessionID}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString([]byte(secret))                  // Sign the token with the secret
}

// parseToken verifies a cookie token and extracts the session id.
func parseToken(tokenStr, secret string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &tokenClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil // Return the secret key for validation
	})
	if err != nil {
		return "", err // Return error if parsing fails
	}
	if claims, ok := token.Claims.(*tokenClaims); ok && token.Valid {
		return claims.SessionID, nil // Return session id if valid
	}
	return "", jwt.ErrSignatureInvalid
}
