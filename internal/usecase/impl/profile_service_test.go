package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"reachqr/config"
	"reachqr/internal/domain/entity"
	domainerrors "reachqr/internal/domain/errors"
	"reachqr/internal/domain/repository"
	mockRepo "reachqr/internal/mocks/repository"
	mockSvc "reachqr/internal/mocks/service"
	"reachqr/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.BaseURL = "https://reachqr.example"

	return cfg
}

func createTestProfileService(t *testing.T) (
	usecase.ProfileUsecase,
	*mockRepo.MockProfileRepository,
	*mockSvc.MockTokenCodec,
	*mockSvc.MockMailer,
) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	tokenCodec := mockSvc.NewMockTokenCodec(t)
	mailer := mockSvc.NewMockMailer(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewProfileService(testConfig(), profileRepo, tokenCodec, mailer, logger)

	return service, profileRepo, tokenCodec, mailer
}

func validCreateInput() *usecase.CreateProfileInput {
	return &usecase.CreateProfileInput{
		Slug:         "Acme Design Studio",
		BusinessName: "Acme Design Studio",
		Tagline:      "We design things",
		Email:        "Owner@Example.COM",
		WhatsAppE164: "+14155551234",
		Instagram:    "@acmedesign",
		Twitter:      "acmedesign",
		TikTok:       "acmedesign",
		LinkedIn:     "acme-design",
		YouTube:      "acmedesign",
		Website:      "acme.example",
	}
}

func TestProfileService_CreateProfile_Success(t *testing.T) {
	service, profileRepo, tokenCodec, mailer := createTestProfileService(t)
	ctx := context.Background()

	tokenCodec.On("GenerateToken").Return("a1b2c3", nil)
	tokenCodec.On("HashToken", "a1b2c3").Return("hashed-token")

	var created *entity.Profile
	profileRepo.On("Create", ctx, mock.AnythingOfType("*entity.Profile")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.Profile)
		}).
		Return(nil)

	mailer.On("SendEditLink", mock.Anything, mock.Anything).Return(nil).Maybe()

	output, err := service.CreateProfile(ctx, validCreateInput())

	require.NoError(t, err)
	assert.Equal(t, "acme-design-studio", output.Slug)
	assert.Equal(t, "a1b2c3", output.EditToken)

	require.NotNil(t, created)
	assert.Equal(t, "acme-design-studio", created.Slug)
	assert.Equal(t, "hashed-token", created.EditTokenHash)
	assert.Equal(t, "owner@example.com", created.Email)
	assert.Equal(t, "https://instagram.com/acmedesign", created.InstagramURL)
	assert.Equal(t, "https://x.com/acmedesign", created.TwitterURL)
	assert.Equal(t, "https://tiktok.com/@acmedesign", created.TikTokURL)
	assert.Equal(t, "https://linkedin.com/in/acme-design", created.LinkedInURL)
	assert.Equal(t, "https://youtube.com/@acmedesign", created.YouTubeURL)
	assert.Equal(t, "https://acme.example", created.WebsiteURL)
}

func TestProfileService_CreateProfile_HoneypotReturnsFakeSuccess(t *testing.T) {
	service, _, _, _ := createTestProfileService(t)

	input := validCreateInput()
	input.Honeypot = "gotcha"

	output, err := service.CreateProfile(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "fake-slug", output.Slug)
	assert.Equal(t, "fake-token", output.EditToken)
	// No repository or mailer expectations were set; any call would fail the test.
}

func TestProfileService_CreateProfile_ValidationMessages(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*usecase.CreateProfileInput)
		message string
	}{
		{"missing business name", func(in *usecase.CreateProfileInput) { in.BusinessName = "  " }, "Please enter your business name"},
		{"missing slug", func(in *usecase.CreateProfileInput) { in.Slug = "???" }, "Please choose a unique link"},
		{"missing email", func(in *usecase.CreateProfileInput) { in.Email = "" }, "Please enter your email"},
		{"missing whatsapp", func(in *usecase.CreateProfileInput) { in.WhatsAppE164 = "" }, "Please enter your WhatsApp number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, _, _ := createTestProfileService(t)

			input := validCreateInput()
			tt.mutate(input)

			output, err := service.CreateProfile(context.Background(), input)

			require.Error(t, err)
			assert.Nil(t, output)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, 400, appErr.HTTPCode())
			assert.Equal(t, tt.message, appErr.Message())
		})
	}
}

func TestProfileService_CreateProfile_SlugConflict(t *testing.T) {
	service, profileRepo, tokenCodec, _ := createTestProfileService(t)
	ctx := context.Background()

	tokenCodec.On("GenerateToken").Return("a1b2c3", nil)
	tokenCodec.On("HashToken", "a1b2c3").Return("hashed-token")

	profileRepo.On("Create", ctx, mock.Anything).
		Return(domainerrors.ErrSlugTaken.WrapMessage("slug already exists"))

	output, err := service.CreateProfile(ctx, validCreateInput())

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrSlugTaken)
}

func TestProfileService_GetProfileByToken_Success(t *testing.T) {
	service, profileRepo, tokenCodec, _ := createTestProfileService(t)
	ctx := context.Background()

	tokenCodec.On("HashToken", "a1b2c3").Return("hashed-token")
	profileRepo.On("FindByTokenHash", ctx, "hashed-token").
		Return(&entity.Profile{Slug: "corner-cafe", EditTokenHash: "hashed-token"}, nil)

	profile, err := service.GetProfileByToken(ctx, "a1b2c3")

	require.NoError(t, err)
	assert.Equal(t, "corner-cafe", profile.Slug)
	assert.Empty(t, profile.EditTokenHash)
}

func TestProfileService_GetProfileByToken_InvalidToken(t *testing.T) {
	service, profileRepo, tokenCodec, _ := createTestProfileService(t)
	ctx := context.Background()

	tokenCodec.On("HashToken", "bogus").Return("bogus-hash")
	profileRepo.On("FindByTokenHash", ctx, "bogus-hash").
		Return(nil, repository.ErrProfileNotFound)

	profile, err := service.GetProfileByToken(ctx, "bogus")

	require.Error(t, err)
	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrEditLinkInvalid)
}

func TestProfileService_UpdateProfileByToken_Success(t *testing.T) {
	service, profileRepo, tokenCodec, _ := createTestProfileService(t)
	ctx := context.Background()

	tokenCodec.On("HashToken", "a1b2c3").Return("hashed-token")
	profileRepo.On("FindByTokenHash", ctx, "hashed-token").
		Return(&entity.Profile{Slug: "corner-cafe", EditTokenHash: "hashed-token"}, nil)

	var updated *entity.Profile
	profileRepo.On("Update", ctx, mock.AnythingOfType("*entity.Profile")).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(*entity.Profile)
		}).
		Return(nil)

	slug, err := service.UpdateProfileByToken(ctx, "a1b2c3", &usecase.UpdateProfileInput{
		BusinessName: "Corner Cafe",
		WhatsAppE164: "+14155551234",
		Instagram:    "@cornercafe",
		Website:      "cornercafe.example",
	})

	require.NoError(t, err)
	assert.Equal(t, "corner-cafe", slug)

	require.NotNil(t, updated)
	assert.Equal(t, "Corner Cafe", updated.BusinessName)
	assert.Equal(t, "https://instagram.com/cornercafe", updated.InstagramURL)
	assert.Equal(t, "https://cornercafe.example", updated.WebsiteURL)
}

func TestProfileService_UpdateProfileByToken_Validation(t *testing.T) {
	service, _, _, _ := createTestProfileService(t)

	_, err := service.UpdateProfileByToken(context.Background(), "a1b2c3", &usecase.UpdateProfileInput{
		WhatsAppE164: "+14155551234",
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Business name is required", appErr.Message())

	_, err = service.UpdateProfileByToken(context.Background(), "a1b2c3", &usecase.UpdateProfileInput{
		BusinessName: "Corner Cafe",
	})

	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "WhatsApp number is required", appErr.Message())
}

func TestProfileService_UpdateProfileByToken_InvalidToken(t *testing.T) {
	service, profileRepo, tokenCodec, _ := createTestProfileService(t)
	ctx := context.Background()

	tokenCodec.On("HashToken", "rotated-away").Return("stale-hash")
	profileRepo.On("FindByTokenHash", ctx, "stale-hash").
		Return(nil, repository.ErrProfileNotFound)

	_, err := service.UpdateProfileByToken(ctx, "rotated-away", &usecase.UpdateProfileInput{
		BusinessName: "Corner Cafe",
		WhatsAppE164: "+14155551234",
	})

	assert.ErrorIs(t, err, domainerrors.ErrEditLinkInvalid)
}

func TestProfileService_ResolvePublicProfile(t *testing.T) {
	service, profileRepo, _, _ := createTestProfileService(t)
	ctx := context.Background()

	profileRepo.On("FindBySlug", ctx, "corner-cafe").
		Return(&entity.Profile{Slug: "corner-cafe", EditTokenHash: "hashed-token"}, nil)

	profile, err := service.ResolvePublicProfile(ctx, " Corner-Cafe ")

	require.NoError(t, err)
	assert.Equal(t, "corner-cafe", profile.Slug)
	assert.Empty(t, profile.EditTokenHash)
}

func TestProfileService_ResolvePublicProfile_NotFound(t *testing.T) {
	service, profileRepo, _, _ := createTestProfileService(t)
	ctx := context.Background()

	profileRepo.On("FindBySlug", ctx, "missing").
		Return(nil, repository.ErrProfileNotFound)

	profile, err := service.ResolvePublicProfile(ctx, "missing")

	require.Error(t, err)
	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestProfileService_CheckSlugAvailability(t *testing.T) {
	service, profileRepo, _, _ := createTestProfileService(t)
	ctx := context.Background()

	profileRepo.On("FindBySlug", ctx, "taken").
		Return(&entity.Profile{Slug: "taken"}, nil)
	profileRepo.On("FindBySlug", ctx, "free").
		Return(nil, repository.ErrProfileNotFound)

	available, err := service.CheckSlugAvailability(ctx, "taken")
	require.NoError(t, err)
	assert.False(t, available)

	available, err = service.CheckSlugAvailability(ctx, "free")
	require.NoError(t, err)
	assert.True(t, available)
}

func TestProfileService_RecordView(t *testing.T) {
	service, profileRepo, _, _ := createTestProfileService(t)
	ctx := context.Background()

	profileRepo.On("IncrementViews", ctx, "corner-cafe").Return(nil)

	require.NoError(t, service.RecordView(ctx, "Corner-Cafe"))
}

func TestProfileService_RecordView_MissSwallowed(t *testing.T) {
	service, profileRepo, _, _ := createTestProfileService(t)
	ctx := context.Background()

	profileRepo.On("IncrementViews", ctx, "missing").
		Return(repository.ErrProfileNotFound)

	require.NoError(t, service.RecordView(ctx, "missing"))
}
