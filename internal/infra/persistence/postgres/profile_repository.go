// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"reachqr/internal/domain/entity"
	domainerrors "reachqr/internal/domain/errors"
	"reachqr/internal/domain/repository"
	"reachqr/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// profileRepository implements the domain.ProfileRepository interface using GORM.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
// It returns the repository as a domain.ProfileRepository interface, adhering to dependency inversion.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// Create persists a new profile. A slug uniqueness violation surfaces as a
// conflict; the insert either fully succeeds or leaves nothing behind.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrSlugTaken.WrapMessage("slug already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	// Update the profile entity with the generated ID and timestamps
	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindByID retrieves a single profile by its store-generated ID.
func (repo *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&profileM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by id")
	}

	return toProfileDomain(&profileM), nil
}

// FindBySlug retrieves a single profile by its public slug.
func (repo *profileRepository) FindBySlug(ctx context.Context, slug string) (*entity.Profile, error) {
	var profileM model.ProfileModel
	err := repo.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&profileM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by slug")
	}

	return toProfileDomain(&profileM), nil
}

// FindByTokenHash retrieves the profile whose stored edit token hash matches
// the given digest. The caller never learns whether a miss means "never
// existed" or "rotated away".
func (repo *profileRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Profile, error) {
	var profileM model.ProfileModel
	err := repo.db.WithContext(ctx).
		Where("edit_token_hash = ?", tokenHash).
		First(&profileM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by token hash")
	}

	return toProfileDomain(&profileM), nil
}

// FindAllByEmail retrieves every profile registered under the given email.
// The email must already be trim/lowercase normalized by the caller.
func (repo *profileRepository) FindAllByEmail(ctx context.Context, email string) ([]*entity.Profile, error) {
	var profileModels []*model.ProfileModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		Find(&profileModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to find profiles by email")
	}

	profiles := make([]*entity.Profile, 0, len(profileModels))
	for _, profileM := range profileModels {
		profiles = append(profiles, toProfileDomain(profileM))
	}

	return profiles, nil
}

// FindAll retrieves all profiles ordered by creation time, newest first.
func (repo *profileRepository) FindAll(ctx context.Context) ([]*entity.Profile, error) {
	var profileModels []*model.ProfileModel
	err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&profileModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to find profiles")
	}

	profiles := make([]*entity.Profile, 0, len(profileModels))
	for _, profileM := range profileModels {
		profiles = append(profiles, toProfileDomain(profileM))
	}

	return profiles, nil
}

// Update modifies the mutable content fields of an existing profile. The
// edit token hash and view counter are deliberately excluded: the token only
// changes via RotateTokenHash and the counter via IncrementViews.
func (repo *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	updates := map[string]any{
		"business_name": profile.BusinessName,
		"tagline":       profile.Tagline,
		"email":         profile.Email,
		"whatsapp_e164": profile.WhatsAppE164,
		"phone":         profile.Phone,
		"logo_url":      profile.LogoURL,
		"instagram_url": profile.InstagramURL,
		"twitter_url":   profile.TwitterURL,
		"tiktok_url":    profile.TikTokURL,
		"facebook_url":  profile.FacebookURL,
		"linkedin_url":  profile.LinkedInURL,
		"youtube_url":   profile.YouTubeURL,
		"website_url":   profile.WebsiteURL,
		"address":       profile.Address,
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", profile.ID).
		Updates(updates)

	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// RotateTokenHash overwrites the stored edit token hash for a profile. The
// previous hash is replaced, not appended, which is what makes rotation
// irrevocable.
func (repo *profileRepository) RotateTokenHash(ctx context.Context, id uuid.UUID, tokenHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", id).
		Update("edit_token_hash", tokenHash)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to rotate token hash")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// IncrementViews bumps the view counter for a slug. Read-then-write without
// atomicity: concurrent views can undercount, which is acceptable for a
// vanity metric.
func (repo *profileRepository) IncrementViews(ctx context.Context, slug string) error {
	var profileM model.ProfileModel
	err := repo.db.WithContext(ctx).
		Select("id", "views").
		Where("slug = ?", slug).
		First(&profileM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrProfileNotFound
		}

		return errors.Wrap(err, "failed to read view count")
	}

	err = repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", profileM.ID).
		UpdateColumn("views", profileM.Views+1).Error

	if err != nil {
		return errors.Wrap(err, "failed to write view count")
	}

	return nil
}

// Delete hard-deletes a profile. Non-recoverable; there is no tombstone.
func (repo *profileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProfileModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toProfileDomain converts a GORM ProfileModel to a domain Profile entity.
func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		ID:            data.ID,
		Slug:          data.Slug,
		EditTokenHash: data.EditTokenHash,
		BusinessName:  data.BusinessName,
		Tagline:       data.Tagline,
		Email:         data.Email,
		WhatsAppE164:  data.WhatsAppE164,
		Phone:         data.Phone,
		LogoURL:       data.LogoURL,
		InstagramURL:  data.InstagramURL,
		TwitterURL:    data.TwitterURL,
		TikTokURL:     data.TikTokURL,
		FacebookURL:   data.FacebookURL,
		LinkedInURL:   data.LinkedInURL,
		YouTubeURL:    data.YouTubeURL,
		WebsiteURL:    data.WebsiteURL,
		Address:       data.Address,
		Views:         data.Views,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromProfileDomain converts a domain Profile entity to a GORM ProfileModel for persistence.
func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	return &model.ProfileModel{
		ID:            data.ID,
		Slug:          data.Slug,
		EditTokenHash: data.EditTokenHash,
		BusinessName:  data.BusinessName,
		Tagline:       data.Tagline,
		Email:         data.Email,
		WhatsAppE164:  data.WhatsAppE164,
		Phone:         data.Phone,
		LogoURL:       data.LogoURL,
		InstagramURL:  data.InstagramURL,
		TwitterURL:    data.TwitterURL,
		TikTokURL:     data.TikTokURL,
		FacebookURL:   data.FacebookURL,
		LinkedInURL:   data.LinkedInURL,
		YouTubeURL:    data.YouTubeURL,
		WebsiteURL:    data.WebsiteURL,
		Address:       data.Address,
		Views:         data.Views,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
