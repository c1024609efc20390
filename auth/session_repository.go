package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/patrickmn/go-cache"
)

// SessionRepository resolves bearer session tokens against the sessions
// table. Lookups are cached briefly so every request doesn't hit the
// database; the TTL is short enough that expiry stays meaningful.
type SessionRepository struct {
	pool  *pgxpool.Pool
	cache *cache.Cache
}

func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{
		pool:  pool,
		cache: cache.New(1*time.Minute, 5*time.Minute),
	}
}

func (r *SessionRepository) IdentityForToken(ctx context.Context, token string) (Identity, error) {
	if cached, found := r.cache.Get(token); found {
		return cached.(Identity), nil
	}

	sql := `
			SELECT u.id, COALESCE(u.name, ''), u.role
			FROM sessions s
			JOIN users u ON u.id = s.user_id
			WHERE s.session_token = $1 AND s.expires > now();
		`

	var identity Identity
	err := r.pool.QueryRow(ctx, sql, token).Scan(
		&identity.ID,
		&identity.Name,
		&identity.Role,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return Identity{}, ErrInvalidSession
	}

	if err != nil {
		return Identity{}, fmt.Errorf("failed to resolve session: %w", err)
	}

	r.cache.SetDefault(token, identity)

	return identity, nil
}
