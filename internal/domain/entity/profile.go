// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the sole persistent entity of the system: one public business
// card page. Its public identity is the slug; write access is granted by
// possession of the raw edit token whose SHA-256 digest is EditTokenHash.
// The raw token itself is never stored anywhere.
type Profile struct {
	ID   uuid.UUID // Store-generated unique identifier.
	Slug string    // Unique, lowercase, URL-safe public identity.

	// EditTokenHash is the one-way digest of the current edit token. Issuing
	// a new token overwrites this field, which irrevocably invalidates the
	// previous token.
	EditTokenHash string

	BusinessName string
	Tagline      string
	Email        string // Contact email, stored lowercased and trimmed.
	WhatsAppE164 string // WhatsApp number in E.164 form, digits only.
	Phone        string

	LogoURL      string
	InstagramURL string
	TwitterURL   string
	TikTokURL    string
	FacebookURL  string
	LinkedInURL  string
	YouTubeURL   string
	WebsiteURL   string
	Address      string

	// Views is a best-effort vanity counter, not a billing-grade metric.
	Views int64

	CreatedAt time.Time // Immutable.
	UpdatedAt time.Time // Bumped on every edit.
}
