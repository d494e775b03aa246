package impl

import (
	"context"
	"crypto/sha256"
	"log/slog"
	"regexp"
	"strconv"
	"testing"
	"time"

	"libris/internal/domain/entity"
	domainerrors "libris/internal/domain/errors"
	"libris/internal/domain/repository"
	"libris/internal/mocks"
	"libris/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var otpBodyPattern = regexp.MustCompile(`^Your OTP code is: (\d{6})$`)

func newTestOTPService(codeRepo *mocks.MockOneTimeCodeRepository, notifier *mocks.MockNotifier, now time.Time) *otpService {
	return &otpService{
		codeRepo: codeRepo,
		notifier: notifier,
		ttl:      5 * time.Minute,
		logger:   slog.New(slog.DiscardHandler),
		now:      func() time.Time { return now },
	}
}

func TestOTPService_IssueCode_SendsSixDigitCode(t *testing.T) {
	codeRepo := new(mocks.MockOneTimeCodeRepository)
	notifier := new(mocks.MockNotifier)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	srv := newTestOTPService(codeRepo, notifier, now)

	var saved *entity.OneTimeCode
	var sentBody string
	codeRepo.On("Save", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*entity.OneTimeCode)
	}).Return(nil)
	notifier.On("Send", mock.Anything, "ada@example.com", "Your OTP Code", mock.Anything).Run(func(args mock.Arguments) {
		sentBody = args.String(3)
	}).Return(nil)

	err := srv.IssueCode(context.Background(), &usecase.IssueCodeInput{Email: "ada@example.com"})

	require.NoError(t, err)
	matches := otpBodyPattern.FindStringSubmatch(sentBody)
	require.Len(t, matches, 2, "body %q must carry a 6-digit code", sentBody)

	code, convErr := strconv.Atoi(matches[1])
	require.NoError(t, convErr)
	assert.GreaterOrEqual(t, code, 100000)
	assert.LessOrEqual(t, code, 999999)

	// The persisted record holds the digest of the code that was sent,
	// never the plain code, and expires after the configured lifetime.
	require.NotNil(t, saved)
	digest := sha256.Sum256([]byte(matches[1]))
	assert.Equal(t, digest[:], saved.CodeHash)
	assert.Equal(t, "ada@example.com", saved.Email)
	assert.Equal(t, now.Add(5*time.Minute), saved.ExpiresAt)
}

func TestOTPService_IssueCode_NotifierFailure(t *testing.T) {
	codeRepo := new(mocks.MockOneTimeCodeRepository)
	notifier := new(mocks.MockNotifier)
	srv := newTestOTPService(codeRepo, notifier, time.Now())

	codeRepo.On("Save", mock.Anything, mock.Anything).Return(nil)
	notifier.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("550 relay refused"))

	err := srv.IssueCode(context.Background(), &usecase.IssueCodeInput{Email: "ada@example.com"})

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DELIVERY_FAILED", appErr.ErrorCode())
	// The transport's own wording must not surface in the client message.
	assert.NotContains(t, appErr.Message(), "relay")
}

func TestOTPService_IssueCode_SaveFailureSendsNothing(t *testing.T) {
	codeRepo := new(mocks.MockOneTimeCodeRepository)
	notifier := new(mocks.MockNotifier)
	srv := newTestOTPService(codeRepo, notifier, time.Now())

	codeRepo.On("Save", mock.Anything, mock.Anything).Return(errors.New("connection reset"))

	err := srv.IssueCode(context.Background(), &usecase.IssueCodeInput{Email: "ada@example.com"})

	require.Error(t, err)
	notifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestOTPService_VerifyCode_Success(t *testing.T) {
	codeRepo := new(mocks.MockOneTimeCodeRepository)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	srv := newTestOTPService(codeRepo, new(mocks.MockNotifier), now)

	digest := sha256.Sum256([]byte("123456"))
	codeRepo.On("FindByEmail", mock.Anything, "ada@example.com").Return(&entity.OneTimeCode{
		ID:        7,
		Email:     "ada@example.com",
		CodeHash:  digest[:],
		IssuedAt:  now.Add(-time.Minute),
		ExpiresAt: now.Add(4 * time.Minute),
	}, nil)
	codeRepo.On("Delete", mock.Anything, int64(7)).Return(nil)

	err := srv.VerifyCode(context.Background(), &usecase.VerifyCodeInput{Email: "ada@example.com", Code: "123456"})

	require.NoError(t, err)
	codeRepo.AssertCalled(t, "Delete", mock.Anything, int64(7))
}

func TestOTPService_VerifyCode_WrongExpiredAndMissingFailAlike(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	digest := sha256.Sum256([]byte("123456"))

	cases := map[string]func(*mocks.MockOneTimeCodeRepository){
		"wrong code": func(repo *mocks.MockOneTimeCodeRepository) {
			repo.On("FindByEmail", mock.Anything, "ada@example.com").Return(&entity.OneTimeCode{
				ID: 7, Email: "ada@example.com", CodeHash: digest[:], ExpiresAt: now.Add(time.Minute),
			}, nil)
		},
		"expired code": func(repo *mocks.MockOneTimeCodeRepository) {
			repo.On("FindByEmail", mock.Anything, "ada@example.com").Return(&entity.OneTimeCode{
				ID: 7, Email: "ada@example.com", CodeHash: digest[:], ExpiresAt: now.Add(-time.Second),
			}, nil)
			repo.On("Delete", mock.Anything, int64(7)).Return(nil)
		},
		"never issued": func(repo *mocks.MockOneTimeCodeRepository) {
			repo.On("FindByEmail", mock.Anything, "ada@example.com").Return(nil, repository.ErrCodeNotFound)
		},
	}

	for name, arrange := range cases {
		t.Run(name, func(t *testing.T) {
			codeRepo := new(mocks.MockOneTimeCodeRepository)
			arrange(codeRepo)
			srv := newTestOTPService(codeRepo, new(mocks.MockNotifier), now)

			code := "654321"
			if name == "expired code" {
				code = "123456"
			}
			err := srv.VerifyCode(context.Background(), &usecase.VerifyCodeInput{Email: "ada@example.com", Code: code})

			require.ErrorIs(t, err, domainerrors.ErrCodeVerificationFailed)
		})
	}
}

func TestGenerateCode_StaysInRange(t *testing.T) {
	seen := make(map[string]struct{})
	for range 256 {
		code, err := generateCode()
		require.NoError(t, err)
		require.Len(t, code, 6)

		n, convErr := strconv.Atoi(code)
		require.NoError(t, convErr)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)

		seen[code] = struct{}{}
	}

	// 256 uniform draws from 900000 values collide rarely; a tiny set of
	// distinct codes would mean the generator is not uniform.
	assert.Greater(t, len(seen), 200)
}
