// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"reachqr/internal/domain/entity"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	// CreateProfile registers a new public page and mints its edit token. The
	// raw token appears in the output exactly once and is never retrievable
	// again.
	CreateProfile(ctx context.Context, input *CreateProfileInput) (*CreateProfileOutput, error)

	// GetProfileByToken resolves the profile owned by the given edit token.
	// The returned entity has its token hash cleared.
	GetProfileByToken(ctx context.Context, token string) (*entity.Profile, error)

	// UpdateProfileByToken rewrites the profile owned by the given edit token
	// and returns its slug.
	UpdateProfileByToken(ctx context.Context, token string, input *UpdateProfileInput) (string, error)

	// ResolvePublicProfile fetches the page behind a public slug. The token
	// hash is cleared before the entity is returned.
	ResolvePublicProfile(ctx context.Context, slug string) (*entity.Profile, error)

	// CheckSlugAvailability reports whether a slug is still free.
	CheckSlugAvailability(ctx context.Context, slug string) (bool, error)

	// RecordView bumps the view counter for a public page.
	RecordView(ctx context.Context, slug string) error
}

// --- Input/Output DTOs ---

// CreateProfileInput defines the data required to create a profile. Social
// fields carry bare handles; the service expands them into canonical URLs.
// Honeypot is a hidden form field real users never fill in.
type CreateProfileInput struct {
	Slug         string `json:"slug"`
	BusinessName string `json:"business_name"`
	Tagline      string `json:"tagline"`
	LogoURL      string `json:"logo_url"`
	WhatsAppE164 string `json:"whatsapp_e164"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Instagram    string `json:"instagram"`
	Twitter      string `json:"twitter"`
	TikTok       string `json:"tiktok"`
	Facebook     string `json:"facebook"`
	LinkedIn     string `json:"linkedin"`
	YouTube      string `json:"youtube"`
	Website      string `json:"website"`
	Address      string `json:"address"`
	Honeypot     string `json:"honeypot"`
}

// CreateProfileOutput carries the one-time creation result.
type CreateProfileOutput struct {
	Slug      string `json:"slug"`
	EditToken string `json:"editToken"`
}

// UpdateProfileInput defines the data required to update a profile. The slug
// is immutable and therefore absent.
type UpdateProfileInput struct {
	BusinessName string `json:"business_name"`
	Tagline      string `json:"tagline"`
	LogoURL      string `json:"logo_url"`
	WhatsAppE164 string `json:"whatsapp_e164"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Instagram    string `json:"instagram"`
	Twitter      string `json:"twitter"`
	TikTok       string `json:"tiktok"`
	Facebook     string `json:"facebook"`
	LinkedIn     string `json:"linkedin"`
	YouTube      string `json:"youtube"`
	Website      string `json:"website"`
	Address      string `json:"address"`
}
