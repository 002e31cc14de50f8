package impl

import (
	"context"
	"log/slog"
	"strings"

	"reachqr/config"
	domainerrors "reachqr/internal/domain/errors"
	"reachqr/internal/domain/repository"
	"reachqr/internal/domain/service"
	"reachqr/internal/usecase"

	"github.com/pkg/errors"
)

// recoveryService implements the RecoveryUsecase interface.
type recoveryService struct {
	profileRepo repository.ProfileRepository
	tokenCodec  service.TokenCodec
	mailer      service.Mailer
	baseURL     string
	logger      *slog.Logger
}

// NewRecoveryService is the constructor for recoveryService.
func NewRecoveryService(
	cfg *config.Config,
	profileRepo repository.ProfileRepository,
	tokenCodec service.TokenCodec,
	mailer service.Mailer,
	logger *slog.Logger,
) usecase.RecoveryUsecase {
	return &recoveryService{
		profileRepo: profileRepo,
		tokenCodec:  tokenCodec,
		mailer:      mailer,
		baseURL:     cfg.App.BaseURL,
		logger:      logger,
	}
}

// Recover rotates the edit token of every profile registered under the given
// email and mails the fresh links in a single message. Nothing in the outcome
// reveals whether the address matched any profile. Rotation happens even if
// the email later fails to send; the owner can simply recover again.
func (srv *recoveryService) Recover(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return domainerrors.ErrValidationFailed.WithMessage("Please enter your email")
	}

	profiles, err := srv.profileRepo.FindAllByEmail(ctx, email)
	if err != nil {
		return errors.Wrap(err, "failed to look up profiles for recovery")
	}

	if len(profiles) == 0 {
		return nil
	}

	pages := make([]service.RecoveredPage, 0, len(profiles))
	for _, profile := range profiles {
		newToken, err := srv.tokenCodec.GenerateToken()
		if err != nil {
			return errors.Wrap(err, "failed to generate replacement token")
		}

		if err := srv.profileRepo.RotateTokenHash(ctx, profile.ID, srv.tokenCodec.HashToken(newToken)); err != nil {
			return errors.Wrap(err, "failed to rotate edit token")
		}

		pages = append(pages, service.RecoveredPage{
			BusinessName: profile.BusinessName,
			EditLink:     srv.baseURL + "/edit/" + newToken,
			PublicLink:   srv.baseURL + "/u/" + profile.Slug,
		})
	}

	srv.logger.InfoContext(ctx, "edit tokens rotated for recovery",
		slog.Int("profiles", len(pages)))

	sendCtx := context.WithoutCancel(ctx)
	go func() {
		if err := srv.mailer.SendRecovery(sendCtx, email, pages); err != nil {
			srv.logger.ErrorContext(sendCtx, "failed to send recovery email",
				slog.String("error", err.Error()))
		}
	}()

	return nil
}
