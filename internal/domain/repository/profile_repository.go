// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"reachqr/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is a domain-specific error returned when no profile
// matches the given key. Callers deliberately do not learn whether a token
// hash never existed or was rotated away.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the standard operations for profile persistence.
// The application layer depends on this interface, not the concrete implementation.
type ProfileRepository interface {
	// Create persists a new profile. A slug uniqueness violation is reported
	// as a conflict error; the row is never partially written.
	Create(ctx context.Context, profile *entity.Profile) error

	// FindByID retrieves a single profile by its store-generated ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// FindBySlug retrieves a single profile by its public slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Profile, error)

	// FindByTokenHash retrieves the profile whose stored edit token hash
	// matches the given digest.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Profile, error)

	// FindAllByEmail retrieves every profile registered under the given
	// (already normalized) contact email.
	FindAllByEmail(ctx context.Context, email string) ([]*entity.Profile, error)

	// FindAll retrieves all profiles ordered by creation time, newest first.
	FindAll(ctx context.Context) ([]*entity.Profile, error)

	// Update modifies the mutable content fields of an existing profile and
	// bumps its updated_at timestamp. The edit token hash is not touched.
	Update(ctx context.Context, profile *entity.Profile) error

	// RotateTokenHash overwrites the stored edit token hash for a profile,
	// invalidating whatever token was previously live.
	RotateTokenHash(ctx context.Context, id uuid.UUID, tokenHash string) error

	// IncrementViews bumps the view counter for a slug. The increment is
	// read-then-write without atomicity; concurrent views may undercount.
	IncrementViews(ctx context.Context, slug string) error

	// Delete hard-deletes a profile. There is no soft-delete or tombstone.
	Delete(ctx context.Context, id uuid.UUID) error
}
