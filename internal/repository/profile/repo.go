// Package profile reads user profile snapshots from Redis hashes. The
// pipeline only ever reads; profiles are written by the surrounding
// application.
package profile

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/rueidis"

	"github.com/pepdex-ai/pepdex/internal/domain"
)

// Hash fields of one profile snapshot. List-valued fields are comma-separated.
const (
	fieldExpertise     = "expertise_level"
	fieldGoals         = "goals"
	fieldPastCompounds = "past_compounds"
	fieldSensitivities = "sensitivities"
)

// Repo reads profile snapshots.
type Repo struct {
	client rueidis.Client
	prefix string
}

// New creates a profile repository.
func New(client rueidis.Client, keyPrefix string) *Repo {
	if keyPrefix == "" {
		keyPrefix = "pepdex:"
	}
	return &Repo{client: client, prefix: keyPrefix}
}

// Get returns the snapshot for a user id, or domain.ErrNotFound when none
// exists (the valid anonymous/new-user state).
func (r *Repo) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	key := fmt.Sprintf("%sprofile:%s", r.prefix, userID)

	cmd := r.client.B().Hgetall().Key(key).Build()
	fields, err := r.client.Do(ctx, cmd).AsStrMap()
	if err != nil {
		return nil, fmt.Errorf("read profile %s: %w", userID, err)
	}
	if len(fields) == 0 {
		return nil, domain.ErrNotFound
	}

	return &domain.Profile{
		ExpertiseLevel: fields[fieldExpertise],
		Goals:          splitList(fields[fieldGoals]),
		PastCompounds:  splitList(fields[fieldPastCompounds]),
		Sensitivities:  splitList(fields[fieldSensitivities]),
	}, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
