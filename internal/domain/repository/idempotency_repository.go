package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shipos/shipos-api/internal/domain/entity"
)

// IdempotencyRepository stores cached responses keyed by idempotency key.
type IdempotencyRepository interface {
	// GetByKey looks up a key scoped to the user who sent it.
	GetByKey(ctx context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error)
	// Create records a response for (key, user), replacing a stale row for
	// the same pair.
	Create(ctx context.Context, ikey *entity.IdempotencyKey) error
	// DeleteExpired prunes keys past their TTL.
	DeleteExpired(ctx context.Context) error
}
