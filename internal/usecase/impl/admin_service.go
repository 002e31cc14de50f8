package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"reachqr/config"
	"reachqr/internal/domain/entity"
	"reachqr/internal/domain/repository"
	"reachqr/internal/domain/service"
	"reachqr/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	defaultNotifySendDelay = 100 * time.Millisecond
	maxReportedSendErrors  = 5
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	profileRepo repository.ProfileRepository
	mailer      service.Mailer
	baseURL     string
	sendDelay   time.Duration
	logger      *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(
	cfg *config.Config,
	profileRepo repository.ProfileRepository,
	mailer service.Mailer,
	logger *slog.Logger,
) usecase.AdminUsecase {
	sendDelay := defaultNotifySendDelay
	if cfg.Notify != nil && cfg.Notify.SendDelay > 0 {
		sendDelay = cfg.Notify.SendDelay
	}

	return &adminService{
		profileRepo: profileRepo,
		mailer:      mailer,
		baseURL:     cfg.App.BaseURL,
		sendDelay:   sendDelay,
		logger:      logger,
	}
}

// ListProfiles returns every profile, newest first.
func (srv *adminService) ListProfiles(ctx context.Context) ([]*entity.Profile, error) {
	profiles, err := srv.profileRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	for _, profile := range profiles {
		profile.EditTokenHash = ""
	}

	return profiles, nil
}

// DeleteProfile hard-deletes a profile by ID.
func (srv *adminService) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	if err := srv.profileRepo.Delete(ctx, id); err != nil {
		return err
	}

	srv.logger.InfoContext(ctx, "profile deleted by admin", slog.String("id", id.String()))

	return nil
}

// NotifyAll mails every profile owner sequentially, pacing sends to respect
// the provider's throughput limit. One failed send never stops the run.
func (srv *adminService) NotifyAll(ctx context.Context) (*usecase.NotifyAllResult, error) {
	profiles, err := srv.profileRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles for notification")
	}

	result := &usecase.NotifyAllResult{
		Total:  len(profiles),
		Errors: []string{},
	}

	for i, profile := range profiles {
		if profile.Email == "" {
			continue
		}

		err := srv.mailer.SendNotification(ctx, &service.NotificationEmail{
			To:           profile.Email,
			BusinessName: profile.BusinessName,
			PublicLink:   srv.baseURL + "/u/" + profile.Slug,
			RecoverLink:  srv.baseURL + "/recover",
		})
		if err != nil {
			result.Failed++
			if len(result.Errors) < maxReportedSendErrors {
				result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", profile.Email, err))
			}
		} else {
			result.Sent++
		}

		if i < len(profiles)-1 {
			select {
			case <-ctx.Done():
				return result, errors.Wrap(ctx.Err(), "notification run canceled")
			case <-time.After(srv.sendDelay):
			}
		}
	}

	srv.logger.InfoContext(ctx, "bulk notification finished",
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
		slog.Int("total", result.Total))

	return result, nil
}
