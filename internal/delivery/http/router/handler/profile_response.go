package handler

import (
	"time"

	"reachqr/internal/domain/entity"
)

// ProfileResponse is the wire representation of a profile. The edit token
// hash has no field here at all, so it can never leak through serialization.
type ProfileResponse struct {
	ID           string    `json:"id"`
	Slug         string    `json:"slug"`
	BusinessName string    `json:"business_name"`
	Tagline      string    `json:"tagline,omitempty"`
	Email        string    `json:"email,omitempty"`
	WhatsAppE164 string    `json:"whatsapp_e164"`
	Phone        string    `json:"phone,omitempty"`
	LogoURL      string    `json:"logo_url,omitempty"`
	InstagramURL string    `json:"instagram_url,omitempty"`
	TwitterURL   string    `json:"twitter_url,omitempty"`
	TikTokURL    string    `json:"tiktok_url,omitempty"`
	FacebookURL  string    `json:"facebook_url,omitempty"`
	LinkedInURL  string    `json:"linkedin_url,omitempty"`
	YouTubeURL   string    `json:"youtube_url,omitempty"`
	WebsiteURL   string    `json:"website_url,omitempty"`
	Address      string    `json:"address,omitempty"`
	Views        int64     `json:"views"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toProfileResponse(profile *entity.Profile) *ProfileResponse {
	return &ProfileResponse{
		ID:           profile.ID.String(),
		Slug:         profile.Slug,
		BusinessName: profile.BusinessName,
		Tagline:      profile.Tagline,
		Email:        profile.Email,
		WhatsAppE164: profile.WhatsAppE164,
		Phone:        profile.Phone,
		LogoURL:      profile.LogoURL,
		InstagramURL: profile.InstagramURL,
		TwitterURL:   profile.TwitterURL,
		TikTokURL:    profile.TikTokURL,
		FacebookURL:  profile.FacebookURL,
		LinkedInURL:  profile.LinkedInURL,
		YouTubeURL:   profile.YouTubeURL,
		WebsiteURL:   profile.WebsiteURL,
		Address:      profile.Address,
		Views:        profile.Views,
		CreatedAt:    profile.CreatedAt,
		UpdatedAt:    profile.UpdatedAt,
	}
}

func toProfileResponses(profiles []*entity.Profile) []*ProfileResponse {
	responses := make([]*ProfileResponse, 0, len(profiles))
	for _, profile := range profiles {
		responses = append(responses, toProfileResponse(profile))
	}

	return responses
}
