// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"fitplan/internal/domain/entity"
)

// UserRepository defines the persistence operations for users.
type UserRepository interface {
	// FindByID retrieves a user by external identity id.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// Upsert inserts the user or, when the id exists, leaves the row untouched.
	// The returned flag is true when a row was created.
	Upsert(ctx context.Context, user *entity.User) (bool, error)
}
