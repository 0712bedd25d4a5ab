// Package auth signs the cookie that ties a browser to its browsing context.
// It identifies a visitor, not a user: logins are simulated elsewhere.
package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	CookieName = "grocer_visitor"
	issuer     = "grocer-be"
)

var ErrInvalidToken = errors.New("invalid visitor token")

type VisitorTokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewVisitorTokens(secret string, ttl time.Duration) *VisitorTokens {
	return &VisitorTokens{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token whose subject is visitorID.
func (v *VisitorTokens) Issue(visitorID string) (string, error) {
	now := v.now()
	claims := jwt.RegisteredClaims{
		Subject:   visitorID,
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(v.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}

// Parse returns the visitor id of a valid, unexpired token.
func (v *VisitorTokens) Parse(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(v.now),
	)
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

func (v *VisitorTokens) Cookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(v.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func ExtractVisitorToken(r *http.Request) string {
	if cookie, err := r.Cookie(CookieName); err == nil {
		if cookie.Value != "" {
			return cookie.Value
		}
	}

	// scripted clients send it as a header instead
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return ""
}
