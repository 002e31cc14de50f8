package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table. PostgreSQL generates UUIDs via
// uuid_generate_v7(). The edit_token_hash column holds the SHA-256 hex digest
// of the live edit token; the raw token is never written to the database.
type ProfileModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Slug          string    `gorm:"type:varchar(50);unique;not null"`
	EditTokenHash string    `gorm:"type:char(64);not null"`

	BusinessName string `gorm:"type:varchar(100);not null"`
	Tagline      string `gorm:"type:varchar(200)"`
	Email        string `gorm:"type:varchar(255);not null;index"`
	WhatsAppE164 string `gorm:"column:whatsapp_e164;type:varchar(20);not null"`
	Phone        string `gorm:"type:varchar(30)"`

	LogoURL      string `gorm:"column:logo_url;type:text"`
	InstagramURL string `gorm:"column:instagram_url;type:text"`
	TwitterURL   string `gorm:"column:twitter_url;type:text"`
	TikTokURL    string `gorm:"column:tiktok_url;type:text"`
	FacebookURL  string `gorm:"column:facebook_url;type:text"`
	LinkedInURL  string `gorm:"column:linkedin_url;type:text"`
	YouTubeURL   string `gorm:"column:youtube_url;type:text"`
	WebsiteURL   string `gorm:"column:website_url;type:text"`
	Address      string `gorm:"type:text"`

	Views int64 `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
