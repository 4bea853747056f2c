// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stub

import (
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/token-relay/internal/config"
	"github.com/MKhiriev/token-relay/internal/logger"
	"github.com/MKhiriev/token-relay/internal/utils"
	"github.com/MKhiriev/token-relay/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Verifier struct {
	accepted map[string]struct{}
	signKey  string
	issuer   string

	mu     sync.Mutex
	hits   map[string]int
	total  int
	logger *logger.Logger
}

func NewVerifier(cfg config.Stub, logger *logger.Logger) (*Verifier, error) {
	if len(cfg.AcceptedTokens) == 0 && cfg.SignKey == "" {
		return nil, ErrNothingToAccept
	}

	accepted := make(map[string]struct{}, len(cfg.AcceptedTokens))
	for _, token := range cfg.AcceptedTokens {
		accepted[token] = struct{}{}
	}

	logger.Info().
		Int("accepted_tokens", len(accepted)).
		Bool("jwt_enabled", cfg.SignKey != "").
		Str("issuer", cfg.Issuer).
		Msg("stub verifier created")

	return &Verifier{
		accepted: accepted,
		signKey:  cfg.SignKey,
		issuer:   cfg.Issuer,
		hits:     make(map[string]int),
		logger:   logger,
	}, nil
}

func (v *Verifier) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Post("/verify", v.verify)

	return router
}

func (v *Verifier) verify(w http.ResponseWriter, r *http.Request) {
	values := r.Header.Values(models.TokenHeader)
	v.record(values)

	if len(values) == 0 || !v.Accepts(values[0]) {
		w.WriteHeader(http.StatusForbidden)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// Accepts reports whether token is allowlisted or a valid JWT.
func (v *Verifier) Accepts(token string) bool {
	if _, ok := v.accepted[token]; ok {
		return true
	}
	if v.signKey == "" || token == "" {
		return false
	}

	claims, err := utils.ValidateJWTToken(token, v.signKey, v.issuer)
	if err != nil {
		v.logger.Debug().Err(err).Msg("jwt rejected")
		return false
	}

	v.logger.Debug().Str("subject", claims.Subject).Msg("jwt accepted")
	return true
}

// IssueToken mints a JWT the verifier will accept until ttl elapses.
func (v *Verifier) IssueToken(subject string, ttl time.Duration) (string, error) {
	return utils.GenerateJWTToken(v.issuer, subject, ttl, v.signKey)
}

func (v *Verifier) record(values []string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.total++
	if len(values) > 0 {
		v.hits[values[0]]++
	}
}

// Hits returns how many requests carried token.
func (v *Verifier) Hits(token string) int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.hits[token]
}

// TotalHits counts every request to /verify, with or without a token.
func (v *Verifier) TotalHits() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.total
}

func (v *Verifier) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.hits = make(map[string]int)
	v.total = 0
}
