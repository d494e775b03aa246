package impl

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"libris/config"
	"libris/internal/domain/entity"
	domainerrors "libris/internal/domain/errors"
	"libris/internal/domain/repository"
	"libris/internal/domain/service"
	"libris/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	otpSubject = "Your OTP Code"
	otpBody    = "Your OTP code is: %s"

	// Codes are drawn uniformly from [100000, 999999].
	otpMin = 100000
)

// otpService implements the OTPUsecase interface.
type otpService struct {
	codeRepo repository.OneTimeCodeRepository
	notifier service.Notifier
	ttl      time.Duration
	logger   *slog.Logger

	// now is swappable for tests.
	now func() time.Time
}

// OTPServiceParams holds dependencies for otpService, injected by Fx.
type OTPServiceParams struct {
	fx.In

	CodeRepo repository.OneTimeCodeRepository
	Notifier service.Notifier
	Config   *config.Config
	Logger   *slog.Logger
}

// NewOTPService is the constructor for otpService.
func NewOTPService(params OTPServiceParams) usecase.OTPUsecase {
	return &otpService{
		codeRepo: params.CodeRepo,
		notifier: params.Notifier,
		ttl:      params.Config.OTPTTL(),
		logger:   params.Logger,
		now:      time.Now,
	}
}

// IssueCode generates a fresh 6-digit code, persists its digest and hands the
// plain code to the notifier. The code is never part of the return value.
func (srv *otpService) IssueCode(ctx context.Context, input *usecase.IssueCodeInput) error {
	if input == nil {
		return domainerrors.ErrValidationFailed.WithDetails("missing request body")
	}

	code, err := generateCode()
	if err != nil {
		srv.logger.Error("Failed to generate verification code", slog.Any("error", err))

		return domainerrors.ErrInternalError.WrapMessage("failed to generate verification code")
	}

	digest := sha256.Sum256([]byte(code))
	issuedAt := srv.now()

	record := &entity.OneTimeCode{
		Email:     input.Email,
		CodeHash:  digest[:],
		IssuedAt:  issuedAt,
		ExpiresAt: issuedAt.Add(srv.ttl),
	}

	if err := srv.codeRepo.Save(ctx, record); err != nil {
		srv.logger.Error("Failed to persist verification code", slog.String("email", input.Email), slog.Any("error", err))

		return errors.Wrap(err, "failed to persist verification code")
	}

	if err := srv.notifier.Send(ctx, input.Email, otpSubject, fmt.Sprintf(otpBody, code)); err != nil {
		srv.logger.Error("Failed to deliver verification code", slog.String("email", input.Email), slog.Any("error", err))

		return domainerrors.ErrDeliveryFailed.WrapMessage("failed to deliver verification code")
	}

	srv.logger.Info("Verification code issued", slog.String("email", input.Email))

	return nil
}

// VerifyCode checks a submitted code against the stored digest for the email.
// Wrong, expired and never-issued codes all fail with the same error.
func (srv *otpService) VerifyCode(ctx context.Context, input *usecase.VerifyCodeInput) error {
	if input == nil {
		return domainerrors.ErrValidationFailed.WithDetails("missing request body")
	}

	record, err := srv.codeRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrCodeNotFound) {
		return domainerrors.ErrCodeVerificationFailed
	}
	if err != nil {
		srv.logger.Error("Failed to fetch verification code", slog.String("email", input.Email), slog.Any("error", err))

		return domainerrors.NewDatabaseExecuteError(err, "failed to fetch verification code")
	}

	if record.Expired(srv.now()) {
		if err := srv.codeRepo.Delete(ctx, record.ID); err != nil {
			srv.logger.Warn("Failed to purge expired verification code", slog.Any("error", err))
		}

		return domainerrors.ErrCodeVerificationFailed
	}

	digest := sha256.Sum256([]byte(input.Code))
	if subtle.ConstantTimeCompare(digest[:], record.CodeHash) != 1 {
		srv.logger.Warn("Verification code mismatch", slog.String("email", input.Email))

		return domainerrors.ErrCodeVerificationFailed
	}

	// A code is single use: consume it on success.
	if err := srv.codeRepo.Delete(ctx, record.ID); err != nil {
		srv.logger.Warn("Failed to consume verification code", slog.Any("error", err))
	}

	srv.logger.Info("Verification code accepted", slog.String("email", input.Email))

	return nil
}

// generateCode draws a uniform 6-digit code from [100000, 999999] using the
// system's cryptographic randomness source.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", errors.Wrap(err, "failed to read random source")
	}

	return fmt.Sprintf("%06d", n.Int64()+otpMin), nil
}
