package usecase

import (
	"context"

	"reachqr/internal/domain/entity"

	"github.com/google/uuid"
)

// AdminUsecase defines the interface for the shared-secret administrative
// operations. Authentication happens in the delivery layer; these methods
// assume the caller is already trusted.
type AdminUsecase interface {
	// ListProfiles returns every profile, newest first, including view counts.
	// Token hashes are cleared before the entities are returned.
	ListProfiles(ctx context.Context) ([]*entity.Profile, error)

	// DeleteProfile hard-deletes a profile by ID.
	DeleteProfile(ctx context.Context, id uuid.UUID) error

	// NotifyAll sends an announcement email to every profile owner,
	// sequentially, continuing past individual failures.
	NotifyAll(ctx context.Context) (*NotifyAllResult, error)
}

// NotifyAllResult summarizes a bulk notification run. Errors holds at most
// the first few failures so the response stays bounded.
type NotifyAllResult struct {
	Sent   int      `json:"sent"`
	Failed int      `json:"failed"`
	Total  int      `json:"total"`
	Errors []string `json:"errors"`
}
