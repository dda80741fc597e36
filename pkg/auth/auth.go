package auth

import (
	"fmt"
	"log"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Service resolves viewer identity from incoming requests and answers
// authorization level checks against a static viewer->levels map. It covers
// the two host-side collaborators of the gating core: the viewer resolver
// and the capability check.
type Service struct {
	secret      []byte
	levels      map[string][]string
	debugHeader bool
}

// Config for the auth service
type Config struct {
	Secret      string              // HS256 signing secret for viewer tokens
	Levels      map[string][]string // viewer id -> authorization levels held
	DebugHeader bool                // accept X-Nudger-Viewer header, development only
}

// New makes an auth service
func New(cfg Config) *Service {
	return &Service{secret: []byte(cfg.Secret), levels: cfg.Levels, debugHeader: cfg.DebugHeader}
}

// HasLevel reports whether the viewer holds the given authorization level.
// Unknown viewers hold no levels.
func (s *Service) HasLevel(viewer, level string) bool {
	return slices.Contains(s.levels[viewer], level)
}

// Viewer extracts a stable viewer id from the request, either from a bearer
// token's subject claim or, when debug header mode is on, from the
// X-Nudger-Viewer header. Returns an empty string when unresolvable, the
// caller treats that as "do not show".
func (s *Service) Viewer(r *http.Request) string {
	if s.debugHeader {
		if v := r.Header.Get("X-Nudger-Viewer"); v != "" {
			return v
		}
	}

	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(strings.TrimPrefix(header, prefix), claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		log.Printf("[DEBUG] viewer token rejected: %v", err)
		return ""
	}
	return claims.Subject
}

// MakeToken issues a signed viewer token with the given lifetime
func (s *Service) MakeToken(viewer string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   viewer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign viewer token: %w", err)
	}
	return signed, nil
}
