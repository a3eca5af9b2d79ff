// Package token mints and validates the signed session tokens carried by
// the session cookie.
package token

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the literal name of the session cookie.
const CookieName = "jwt"

// DefaultTTL is the session lifetime applied by the server.
const DefaultTTL = 7 * 24 * time.Hour

// ErrInvalidToken is returned by Verify for any token that does not carry
// a valid signature, is expired, or lacks a usable subject claim.
var ErrInvalidToken = errors.New("invalid token")

// Issuer creates signed session tokens and manages the session cookie on
// HTTP responses. The token payload carries only the user identifier.
type Issuer struct {
	secret        []byte
	ttl           time.Duration
	secureCookies bool
}

// NewIssuer creates an Issuer. secureCookies should be true in production
// so the cookie is only sent over HTTPS.
func NewIssuer(secret string, ttl time.Duration, secureCookies bool) *Issuer {
	return &Issuer{
		secret:        []byte(secret),
		ttl:           ttl,
		secureCookies: secureCookies,
	}
}

// Issue creates a signed token for the given user, expiring after the
// configured lifetime.
func (i *Issuer) Issue(userID uint) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": now.Add(i.ttl).Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the token's signature and expiry and returns the user
// identifier it was issued for.
func (i *Issuer) Verify(tokenStr string) (uint, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC is accepted; rejects alg-substitution tokens.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}
	sub, ok := claims["sub"].(float64) // JWT numbers decode as float64
	if !ok {
		return 0, ErrInvalidToken
	}
	return uint(sub), nil
}

// Attach writes the session cookie onto the response. HttpOnly keeps the
// token away from page scripts; SameSite=Strict keeps cross-site requests
// from attaching it.
func (i *Issuer) Attach(w http.ResponseWriter, tok string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    tok,
		Path:     "/",
		MaxAge:   int(i.ttl / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   i.secureCookies,
	})
}

// Clear overwrites the session cookie with an empty value and zero max-age.
func (i *Issuer) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   i.secureCookies,
	})
}
