package impl

import (
	"context"
	"log/slog"
	"testing"

	"libris/internal/domain/entity"
	domainerrors "libris/internal/domain/errors"
	"libris/internal/domain/repository"
	"libris/internal/mocks"
	"libris/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(userRepo *mocks.MockUserRepository, adminRepo *mocks.MockAdminRepository, hasher *mocks.MockPasswordHasher) usecase.AuthUsecase {
	return &authService{
		userRepo:  userRepo,
		adminRepo: adminRepo,
		hasher:    hasher,
		logger:    slog.New(slog.DiscardHandler),
	}
}

func validRegisterInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Username:  "ada",
		Email:     "ada@example.com",
		Password:  "correct horse",
		Address:   "12 Analytical St",
		City:      "London",
		State:     "LDN",
		Zip:       "E1 6AN",
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	adminRepo := new(mocks.MockAdminRepository)
	hasher := new(mocks.MockPasswordHasher)
	srv := newTestAuthService(userRepo, adminRepo, hasher)

	hasher.On("Hash", "correct horse").Return("$bcrypt-digest$", nil)
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == "ada@example.com" && u.PasswordHash == "$bcrypt-digest$"
	})).Return(nil)

	out, err := srv.Register(context.Background(), validRegisterInput())

	require.NoError(t, err)
	assert.Equal(t, "User registered successfully!", out.Message)
	userRepo.AssertExpectations(t)
	hasher.AssertExpectations(t)
}

func TestAuthService_Register_StoresDigestNotPlaintext(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	hasher := new(mocks.MockPasswordHasher)
	srv := newTestAuthService(userRepo, new(mocks.MockAdminRepository), hasher)

	var stored *entity.User
	hasher.On("Hash", "correct horse").Return("$bcrypt-digest$", nil)
	userRepo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*entity.User)
	}).Return(nil)

	_, err := srv.Register(context.Background(), validRegisterInput())

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "correct horse", stored.PasswordHash)
	assert.Equal(t, "$bcrypt-digest$", stored.PasswordHash)
}

func TestAuthService_Register_MissingFieldTouchesNothing(t *testing.T) {
	fields := []func(*usecase.RegisterInput){
		func(in *usecase.RegisterInput) { in.FirstName = "" },
		func(in *usecase.RegisterInput) { in.LastName = "" },
		func(in *usecase.RegisterInput) { in.Username = "" },
		func(in *usecase.RegisterInput) { in.Email = "" },
		func(in *usecase.RegisterInput) { in.Password = "" },
	}

	for _, blank := range fields {
		userRepo := new(mocks.MockUserRepository)
		hasher := new(mocks.MockPasswordHasher)
		srv := newTestAuthService(userRepo, new(mocks.MockAdminRepository), hasher)

		input := validRegisterInput()
		blank(input)

		out, err := srv.Register(context.Background(), input)

		require.Error(t, err)
		assert.Nil(t, out)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())

		// Neither the hasher nor the store may be reached.
		hasher.AssertNotCalled(t, "Hash", mock.Anything)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	}
}

func TestAuthService_NilInputTouchesNothing(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	hasher := new(mocks.MockPasswordHasher)
	srv := newTestAuthService(userRepo, new(mocks.MockAdminRepository), hasher)

	// A nil input must fail validation, not dereference.
	_, registerErr := srv.Register(context.Background(), nil)
	_, loginErr := srv.Login(context.Background(), nil)

	for _, err := range []error{registerErr, loginErr} {
		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	}

	hasher.AssertNotCalled(t, "Hash", mock.Anything)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	userRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestAuthService_Login_RoundTripAfterRegister(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	hasher := new(mocks.MockPasswordHasher)
	srv := newTestAuthService(userRepo, new(mocks.MockAdminRepository), hasher)

	registered := &entity.User{
		FirstName:    "Ada",
		Email:        "ada@example.com",
		PasswordHash: "$bcrypt-digest$",
	}
	userRepo.On("FindByEmail", mock.Anything, "ada@example.com").Return(registered, nil)
	hasher.On("Check", "correct horse", "$bcrypt-digest$").Return(true)

	identity, err := srv.Login(context.Background(), &usecase.LoginInput{
		Email:    "ada@example.com",
		Password: "correct horse",
		Role:     "user",
	})

	require.NoError(t, err)
	assert.Equal(t, "Ada", identity.DisplayName)
	assert.Equal(t, entity.RoleUser, identity.Role)
}

func TestAuthService_Login_AdminTable(t *testing.T) {
	adminRepo := new(mocks.MockAdminRepository)
	hasher := new(mocks.MockPasswordHasher)
	srv := newTestAuthService(new(mocks.MockUserRepository), adminRepo, hasher)

	adminRepo.On("FindByEmail", mock.Anything, "root@example.com").Return(&entity.Admin{
		FirstName:    "Grace",
		Email:        "root@example.com",
		PasswordHash: "$admin-digest$",
	}, nil)
	hasher.On("Check", "hopper", "$admin-digest$").Return(true)

	identity, err := srv.Login(context.Background(), &usecase.LoginInput{
		Email:    "root@example.com",
		Password: "hopper",
		Role:     "admin",
	})

	require.NoError(t, err)
	assert.Equal(t, "Grace", identity.DisplayName)
	assert.Equal(t, entity.RoleAdmin, identity.Role)
}

func TestAuthService_Login_UnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	hasher := new(mocks.MockPasswordHasher)
	srv := newTestAuthService(userRepo, new(mocks.MockAdminRepository), hasher)

	userRepo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, repository.ErrUserNotFound)
	userRepo.On("FindByEmail", mock.Anything, "ada@example.com").Return(&entity.User{
		FirstName:    "Ada",
		Email:        "ada@example.com",
		PasswordHash: "$bcrypt-digest$",
	}, nil)
	hasher.On("Check", mock.Anything, mock.Anything).Return(false)

	_, errUnknown := srv.Login(context.Background(), &usecase.LoginInput{
		Email: "nobody@example.com", Password: "whatever", Role: "user",
	})
	_, errWrongPass := srv.Login(context.Background(), &usecase.LoginInput{
		Email: "ada@example.com", Password: "wrong", Role: "user",
	})

	require.Error(t, errUnknown)
	require.Error(t, errWrongPass)
	assert.Equal(t, errUnknown.Error(), errWrongPass.Error())

	// Both paths must cost a digest comparison.
	hasher.AssertNumberOfCalls(t, "Check", 2)
}

func TestAuthService_Login_UnknownRoleRejectedBeforeLookup(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	adminRepo := new(mocks.MockAdminRepository)
	srv := newTestAuthService(userRepo, adminRepo, new(mocks.MockPasswordHasher))

	_, err := srv.Login(context.Background(), &usecase.LoginInput{
		Email:    "ada@example.com",
		Password: "correct horse",
		Role:     "superuser",
	})

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_ROLE", appErr.ErrorCode())

	userRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	adminRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	srv := newTestAuthService(new(mocks.MockUserRepository), new(mocks.MockAdminRepository), new(mocks.MockPasswordHasher))

	_, err := srv.Login(context.Background(), &usecase.LoginInput{Email: "", Password: "x", Role: "user"})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}
