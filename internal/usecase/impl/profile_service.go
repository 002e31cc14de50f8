// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"reachqr/config"
	"reachqr/internal/domain/entity"
	domainerrors "reachqr/internal/domain/errors"
	"reachqr/internal/domain/repository"
	"reachqr/internal/domain/service"
	"reachqr/internal/usecase"
	"reachqr/internal/util"

	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	tokenCodec  service.TokenCodec
	mailer      service.Mailer
	baseURL     string
	logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	cfg *config.Config,
	profileRepo repository.ProfileRepository,
	tokenCodec service.TokenCodec,
	mailer service.Mailer,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: profileRepo,
		tokenCodec:  tokenCodec,
		mailer:      mailer,
		baseURL:     cfg.App.BaseURL,
		logger:      logger,
	}
}

// CreateProfile registers a new page, mints its edit token, and mails the
// edit link. A filled honeypot short-circuits into a fabricated success so
// bots cannot tell they were caught.
func (srv *profileService) CreateProfile(ctx context.Context, input *usecase.CreateProfileInput) (*usecase.CreateProfileOutput, error) {
	if strings.TrimSpace(input.Honeypot) != "" {
		srv.logger.InfoContext(ctx, "honeypot triggered, returning fabricated success")

		return &usecase.CreateProfileOutput{
			Slug:      "fake-slug",
			EditToken: "fake-token",
		}, nil
	}

	if strings.TrimSpace(input.BusinessName) == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Please enter your business name")
	}
	slug := util.Slugify(input.Slug)
	if slug == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Please choose a unique link")
	}
	if strings.TrimSpace(input.Email) == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Please enter your email")
	}
	if strings.TrimSpace(input.WhatsAppE164) == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Please enter your WhatsApp number")
	}

	editToken, err := srv.tokenCodec.GenerateToken()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate edit token")
	}

	profile := &entity.Profile{
		Slug:          slug,
		EditTokenHash: srv.tokenCodec.HashToken(editToken),
		BusinessName:  strings.TrimSpace(input.BusinessName),
		Tagline:       strings.TrimSpace(input.Tagline),
		Email:         strings.ToLower(strings.TrimSpace(input.Email)),
		WhatsAppE164:  strings.TrimSpace(input.WhatsAppE164),
		Phone:         strings.TrimSpace(input.Phone),
		LogoURL:       strings.TrimSpace(input.LogoURL),
		InstagramURL:  socialURL("instagram", input.Instagram),
		TwitterURL:    socialURL("twitter", input.Twitter),
		TikTokURL:     socialURL("tiktok", input.TikTok),
		FacebookURL:   socialURL("facebook", input.Facebook),
		LinkedInURL:   socialURL("linkedin", input.LinkedIn),
		YouTubeURL:    socialURL("youtube", input.YouTube),
		WebsiteURL:    websiteURL(input.Website),
		Address:       strings.TrimSpace(input.Address),
	}

	if err := srv.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}

	srv.logger.InfoContext(ctx, "profile created", slog.String("slug", profile.Slug))

	// Email delivery must not delay or fail the creation response. The raw
	// token travels in the email body and in the response, nowhere else.
	srv.sendEditLinkAsync(ctx, &service.EditLinkEmail{
		To:           profile.Email,
		BusinessName: profile.BusinessName,
		EditLink:     srv.editLink(editToken),
		PublicLink:   srv.publicLink(profile.Slug),
	})

	return &usecase.CreateProfileOutput{
		Slug:      profile.Slug,
		EditToken: editToken,
	}, nil
}

// GetProfileByToken resolves the profile owned by an edit token. Misses come
// back as the generic invalid-link error regardless of cause.
func (srv *profileService) GetProfileByToken(ctx context.Context, token string) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByTokenHash(ctx, srv.tokenCodec.HashToken(token))
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrEditLinkInvalid
		}

		return nil, errors.Wrap(err, "failed to find profile by token")
	}

	profile.EditTokenHash = ""

	return profile, nil
}

// UpdateProfileByToken rewrites the content of the profile owned by an edit
// token. Social handles are re-normalized the same way as at creation. The
// slug and the token itself never change here.
func (srv *profileService) UpdateProfileByToken(ctx context.Context, token string, input *usecase.UpdateProfileInput) (string, error) {
	if strings.TrimSpace(input.BusinessName) == "" {
		return "", domainerrors.ErrValidationFailed.WithMessage("Business name is required")
	}
	if strings.TrimSpace(input.WhatsAppE164) == "" {
		return "", domainerrors.ErrValidationFailed.WithMessage("WhatsApp number is required")
	}

	profile, err := srv.profileRepo.FindByTokenHash(ctx, srv.tokenCodec.HashToken(token))
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return "", domainerrors.ErrEditLinkInvalid
		}

		return "", errors.Wrap(err, "failed to find profile by token")
	}

	profile.BusinessName = strings.TrimSpace(input.BusinessName)
	profile.Tagline = strings.TrimSpace(input.Tagline)
	profile.Email = strings.ToLower(strings.TrimSpace(input.Email))
	profile.WhatsAppE164 = strings.TrimSpace(input.WhatsAppE164)
	profile.Phone = strings.TrimSpace(input.Phone)
	profile.LogoURL = strings.TrimSpace(input.LogoURL)
	profile.InstagramURL = socialURL("instagram", input.Instagram)
	profile.TwitterURL = socialURL("twitter", input.Twitter)
	profile.TikTokURL = socialURL("tiktok", input.TikTok)
	profile.FacebookURL = socialURL("facebook", input.Facebook)
	profile.LinkedInURL = socialURL("linkedin", input.LinkedIn)
	profile.YouTubeURL = socialURL("youtube", input.YouTube)
	profile.WebsiteURL = websiteURL(input.Website)
	profile.Address = strings.TrimSpace(input.Address)

	if err := srv.profileRepo.Update(ctx, profile); err != nil {
		return "", err
	}

	srv.logger.InfoContext(ctx, "profile updated", slog.String("slug", profile.Slug))

	return profile.Slug, nil
}

// ResolvePublicProfile fetches the page behind a public slug.
func (srv *profileService) ResolvePublicProfile(ctx context.Context, slug string) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindBySlug(ctx, strings.ToLower(strings.TrimSpace(slug)))
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by slug")
	}

	profile.EditTokenHash = ""

	return profile, nil
}

// CheckSlugAvailability reports whether a slug is still free.
func (srv *profileService) CheckSlugAvailability(ctx context.Context, slug string) (bool, error) {
	_, err := srv.profileRepo.FindBySlug(ctx, strings.ToLower(strings.TrimSpace(slug)))
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return true, nil
		}

		return false, errors.Wrap(err, "failed to check slug")
	}

	return false, nil
}

// RecordView bumps the view counter. A miss is swallowed; view tracking must
// never surface an error to a public page visitor.
func (srv *profileService) RecordView(ctx context.Context, slug string) error {
	err := srv.profileRepo.IncrementViews(ctx, strings.ToLower(strings.TrimSpace(slug)))
	if err != nil && !errors.Is(err, repository.ErrProfileNotFound) {
		return errors.Wrap(err, "failed to record view")
	}

	return nil
}

func (srv *profileService) sendEditLinkAsync(ctx context.Context, email *service.EditLinkEmail) {
	sendCtx := context.WithoutCancel(ctx)
	go func() {
		if err := srv.mailer.SendEditLink(sendCtx, email); err != nil {
			srv.logger.ErrorContext(sendCtx, "failed to send edit link email",
				slog.String("error", err.Error()))
		}
	}()
}

func (srv *profileService) editLink(token string) string {
	return srv.baseURL + "/edit/" + token
}

func (srv *profileService) publicLink(slug string) string {
	return srv.baseURL + "/u/" + slug
}
