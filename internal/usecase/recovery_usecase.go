package usecase

import "context"

// RecoveryUsecase defines the interface for edit link recovery.
type RecoveryUsecase interface {
	// Recover rotates the edit tokens of every profile registered under the
	// given email and mails the fresh links. It reports success whether or
	// not any profile matched, so callers cannot probe which addresses exist.
	Recover(ctx context.Context, email string) error
}

// RecoverInput defines the data required to request edit link recovery.
type RecoverInput struct {
	Email string `json:"email"`
}
