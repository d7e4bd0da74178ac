package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shipos/shipos-api/internal/domain/entity"
)

// UserRepository persists staff accounts.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	// GetWithRoles loads the user with roles and their permissions, for
	// token issuance.
	GetWithRoles(ctx context.Context, id uuid.UUID) (*entity.User, error)
	AssignRole(ctx context.Context, userID uuid.UUID, roleID uint) error
}

// RoleRepository looks up the seeded roles.
type RoleRepository interface {
	GetByName(ctx context.Context, name string) (*entity.Role, error)
}

// PasswordResetTokenRepository persists single-use reset tokens.
type PasswordResetTokenRepository interface {
	Create(ctx context.Context, token *entity.PasswordResetToken) error
	GetByToken(ctx context.Context, token string) (*entity.PasswordResetToken, error)
	MarkAsUsed(ctx context.Context, token string) error
	DeleteByEmail(ctx context.Context, email string) error
	DeleteExpired(ctx context.Context) error
}
