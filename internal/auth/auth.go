// Package auth resolves bearer tokens to principals. It is a stand-in for a
// real identity provider: the accepted-token table is built once at startup
// and holds a single entry in the default wiring.
package auth

import (
	"crypto/subtle"
	"fmt"

	"github.com/unalterable/base-fullstack-app/internal/domain"
)

type Service struct {
	tokens map[string]string // token -> username
}

func NewService(tokens map[string]string) *Service {
	return &Service{tokens: tokens}
}

// Authenticate returns the principal behind token, or ErrUnauthenticated for
// an empty or unknown token.
func (s *Service) Authenticate(token string) (domain.Principal, error) {
	if token == "" {
		return domain.Principal{}, fmt.Errorf("empty token: %w", domain.ErrUnauthenticated)
	}
	for accepted, username := range s.tokens {
		if subtle.ConstantTimeCompare([]byte(token), []byte(accepted)) == 1 {
			return domain.Principal{Username: username}, nil
		}
	}
	return domain.Principal{}, fmt.Errorf("unknown token: %w", domain.ErrUnauthenticated)
}
