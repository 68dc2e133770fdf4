// Package auth issues and validates the signed session tokens that carry a
// logged-in identity between requests. Tokens are self-contained; the server
// keeps no session state.
package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/loginkeeper/internal/common"
	"github.com/dmitrijs2005/loginkeeper/internal/server/config"
)

// Claims is the set of identity fields bound inside a session token.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"uid"`
	Username string `json:"username"`
}

// Issuer signs and verifies session tokens with a process-wide HS256 secret
// and decides the cookie attributes under which they travel. It is immutable
// after construction and safe for concurrent use.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	mode   config.Mode
}

func NewIssuer(secret []byte, ttl time.Duration, mode config.Mode) *Issuer {
	return &Issuer{secret: secret, ttl: ttl, mode: mode}
}

// Issue builds the claims for a verified identity and returns the signed
// token string. The validity window starts now and lasts the configured TTL.
func (i *Issuer) Issue(userID string, username string) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		UserID:   userID,
		Username: username,
	})

	tokenString, err := token.SignedString(i.secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Parse verifies the token signature and expiry and returns the embedded
// claims. A tampered, malformed or wrongly-signed token yields
// common.ErrInvalidToken; a well-formed but expired one yields
// common.ErrTokenExpired.
func (i *Issuer) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}

// SessionCookie wraps a freshly issued token in the session cookie. The
// cookie is always HttpOnly; in production it is additionally Secure and
// cross-site-sendable so a separately hosted frontend can present it, while
// in development it stays Lax over plain transport.
func (i *Issuer) SessionCookie(token string) *http.Cookie {
	c := &http.Cookie{
		Name:     common.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(i.ttl.Seconds()),
		HttpOnly: true,
	}
	i.applyModeAttributes(c)
	return c
}

// ExpiredCookie mirrors the session cookie attributes with an immediate
// expiry, instructing the client to discard the token on logout.
func (i *Issuer) ExpiredCookie() *http.Cookie {
	c := &http.Cookie{
		Name:     common.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	}
	i.applyModeAttributes(c)
	return c
}

func (i *Issuer) applyModeAttributes(c *http.Cookie) {
	if i.mode == config.ModeProduction {
		c.Secure = true
		c.SameSite = http.SameSiteNoneMode
	} else {
		c.SameSite = http.SameSiteLaxMode
	}
}
