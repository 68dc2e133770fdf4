package auth

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/dmitrijs2005/loginkeeper/internal/common"
	"github.com/dmitrijs2005/loginkeeper/internal/server/config"
)

func newTestIssuer(ttl time.Duration) *Issuer {
	return NewIssuer([]byte("super-secret"), ttl, config.ModeDevelopment)
}

func TestIssueAndParse_Success(t *testing.T) {
	t.Parallel()

	i := newTestIssuer(time.Hour)

	tok, err := i.Issue("user-123", "alice")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := i.Parse(tok)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if claims.UserID != "user-123" || claims.Username != "alice" {
		t.Fatalf("claims mismatch: %+v", claims)
	}

	wantExp := claims.IssuedAt.Add(time.Hour)
	if !claims.ExpiresAt.Equal(wantExp) {
		t.Fatalf("expiry not bound to issuance: iat=%v exp=%v", claims.IssuedAt, claims.ExpiresAt)
	}
}

func TestParse_Expired(t *testing.T) {
	t.Parallel()

	i := newTestIssuer(-1 * time.Second)

	tok, err := i.Issue("u1", "alice")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = i.Parse(tok)
	if !errors.Is(err, common.ErrTokenExpired) {
		t.Fatalf("want common.ErrTokenExpired, got %v", err)
	}
}

func TestParse_AcceptedStrictlyBeforeExpiry(t *testing.T) {
	t.Parallel()

	// Short but still-live window: the token must validate right up until
	// the expiry instant.
	i := newTestIssuer(2 * time.Second)

	tok, err := i.Issue("u1", "alice")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := i.Parse(tok); err != nil {
		t.Fatalf("token rejected before expiry: %v", err)
	}
}

func TestParse_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := newTestIssuer(time.Hour).Issue("u2", "bob")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	other := NewIssuer([]byte("wrong-secret"), time.Hour, config.ModeDevelopment)
	_, err = other.Parse(tok)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("want common.ErrInvalidToken, got %v", err)
	}
}

func TestParse_TamperedToken(t *testing.T) {
	t.Parallel()

	i := newTestIssuer(time.Hour)
	tok, err := i.Issue("u3", "carol")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	// Flip one byte at a time; every mutation must be rejected as invalid,
	// never parsed into different claims.
	for pos := 0; pos < len(tok); pos += 7 {
		b := []byte(tok)
		if b[pos] == 'A' {
			b[pos] = 'B'
		} else {
			b[pos] = 'A'
		}
		mutated := string(b)
		if mutated == tok {
			continue
		}
		if _, err := i.Parse(mutated); !errors.Is(err, common.ErrInvalidToken) {
			t.Fatalf("tampered token at byte %d: want common.ErrInvalidToken, got %v", pos, err)
		}
	}
}

func TestParse_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := newTestIssuer(time.Hour).Parse("not.a.jwt")
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("want common.ErrInvalidToken, got %v", err)
	}
}

func TestSessionCookie_DevelopmentAttributes(t *testing.T) {
	t.Parallel()

	i := NewIssuer([]byte("k"), time.Hour, config.ModeDevelopment)
	c := i.SessionCookie("tok")

	if c.Name != common.SessionCookieName || c.Value != "tok" {
		t.Fatalf("unexpected cookie: %+v", c)
	}
	if !c.HttpOnly {
		t.Fatalf("session cookie must always be HttpOnly")
	}
	if c.Secure || c.SameSite != http.SameSiteLaxMode {
		t.Fatalf("development cookie must be Lax and not Secure: %+v", c)
	}
	if c.MaxAge != int(time.Hour.Seconds()) {
		t.Fatalf("cookie MaxAge must match the token TTL, got %d", c.MaxAge)
	}
}

func TestSessionCookie_ProductionAttributes(t *testing.T) {
	t.Parallel()

	i := NewIssuer([]byte("k"), time.Hour, config.ModeProduction)
	c := i.SessionCookie("tok")

	if !c.HttpOnly || !c.Secure || c.SameSite != http.SameSiteNoneMode {
		t.Fatalf("production cookie must be HttpOnly, Secure and SameSite=None: %+v", c)
	}
}

func TestExpiredCookie_MirrorsAttributes(t *testing.T) {
	t.Parallel()

	for _, mode := range []config.Mode{config.ModeDevelopment, config.ModeProduction} {
		i := NewIssuer([]byte("k"), time.Hour, mode)
		set := i.SessionCookie("tok")
		clear := i.ExpiredCookie()

		if clear.Name != set.Name || clear.Path != set.Path {
			t.Fatalf("%s: logout cookie must target the same cookie: %+v vs %+v", mode, clear, set)
		}
		if clear.HttpOnly != set.HttpOnly || clear.Secure != set.Secure || clear.SameSite != set.SameSite {
			t.Fatalf("%s: logout cookie attributes must mirror issuance: %+v vs %+v", mode, clear, set)
		}
		if clear.MaxAge >= 0 || clear.Value != "" {
			t.Fatalf("%s: logout cookie must expire immediately: %+v", mode, clear)
		}
	}
}
