// Package store is the persistence boundary for users and catalog modules.
package store

import (
	"context"

	"entropy/models"
)

// Store abstracts the durable state behind the identity and enrollment
// services. Implementations must serialize UpdateUser calls per user and
// must never lose IncrementEnrolled updates under concurrent writers.
type Store interface {
	// CreateUser assigns an id and persists the user. Fails with a
	// conflict error if the email is already registered.
	CreateUser(ctx context.Context, user *models.User) error
	UserByID(ctx context.Context, id uint) (*models.User, error)
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	Users(ctx context.Context) ([]models.User, error)

	// UpdateUser applies fn to the current user record and persists the
	// result. The read-check-write is atomic with respect to concurrent
	// UpdateUser calls on the same user. An error from fn aborts the
	// update and is returned unchanged.
	UpdateUser(ctx context.Context, id uint, fn func(*models.User) error) (*models.User, error)

	// SeedModules loads the catalog once; it is a no-op if modules exist.
	SeedModules(ctx context.Context, modules []models.Module) error
	ModuleByID(ctx context.Context, id uint) (*models.Module, error)
	// Modules returns the catalog snapshot in ascending id order.
	Modules(ctx context.Context) ([]models.Module, error)
	// IncrementEnrolled atomically bumps the module's enrolled counter.
	IncrementEnrolled(ctx context.Context, id uint) (*models.Module, error)
	// SetEnrolledCount overwrites the counter; used by reconciliation.
	SetEnrolledCount(ctx context.Context, id uint, count int64) error
}
