// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"libris/internal/domain/entity"
	domainerrors "libris/internal/domain/errors"
	"libris/internal/domain/repository"
	"libris/internal/domain/service"
	"libris/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dummyDigest is a well-formed bcrypt digest checked when the email is
// unknown, so that path costs the same as a real mismatch and the two
// failures stay indistinguishable by timing.
const dummyDigest = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo  repository.UserRepository
	adminRepo repository.AdminRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	AdminRepo repository.AdminRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:  params.UserRepo,
		adminRepo: params.AdminRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

// Register orchestrates the complete member registration process.
// All required fields are checked before the store is touched.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if err := validateRegisterInput(input); err != nil {
		srv.logger.Warn("Registration rejected by validation", slog.Any("error", err))

		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	newUser := &entity.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Address: entity.Address{
			Line1: input.Address,
			Line2: input.Address2,
			City:  input.City,
			State: input.State,
			Zip:   input.Zip,
		},
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		srv.logger.Error("Failed to create user during registration", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.logger.Info("User registered", slog.String("email", input.Email))

	return &usecase.RegisterOutput{Message: "User registered successfully!"}, nil
}

func validateRegisterInput(input *usecase.RegisterInput) error {
	if input == nil {
		return domainerrors.ErrValidationFailed.WithDetails("missing request body")
	}

	required := map[string]string{
		"firstName": input.FirstName,
		"lastName":  input.LastName,
		"username":  input.Username,
		"email":     input.Email,
		"password":  input.Password,
	}

	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return domainerrors.ErrValidationFailed.WithDetails("missing required field: " + field)
		}
	}

	return nil
}

// Login resolves a credential against the identity table selected by role.
// An unknown email and a wrong password produce the identical error.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.Identity, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("missing request body")
	}
	if strings.TrimSpace(input.Email) == "" || input.Password == "" || strings.TrimSpace(input.Role) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email, password and userType are required")
	}

	role := entity.Role(input.Role)
	if !role.IsValid() {
		srv.logger.Warn("Login attempt with unknown role", slog.String("role", input.Role))

		return nil, domainerrors.ErrInvalidRole.WithDetails("userType must be 'user' or 'admin'")
	}

	displayName, passwordHash, err := srv.lookupCredential(ctx, role, input.Email)
	if err != nil {
		return nil, err
	}

	if passwordHash == "" {
		// Unknown email: burn a compare against a fixed digest so the
		// response time matches the wrong-password path.
		srv.hasher.Check(input.Password, dummyDigest)
		srv.logger.Warn("Login failed", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !srv.hasher.Check(input.Password, passwordHash) {
		srv.logger.Warn("Login failed", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	srv.logger.Debug("Login succeeded", slog.String("email", input.Email), slog.Any("role", role))

	return &usecase.Identity{
		DisplayName: displayName,
		Role:        role,
	}, nil
}

// lookupCredential returns the display name and password digest for the email
// in the role's identity table. A missing record is reported as empty values,
// not as an error, so the caller controls what the client learns.
func (srv *authService) lookupCredential(ctx context.Context, role entity.Role, email string) (string, string, error) {
	switch role {
	case entity.RoleAdmin:
		admin, err := srv.adminRepo.FindByEmail(ctx, email)
		if errors.Is(err, repository.ErrAdminNotFound) {
			return "", "", nil
		}
		if err != nil {
			srv.logger.Error("Failed to fetch admin during login", slog.Any("error", err))

			return "", "", domainerrors.NewDatabaseExecuteError(err, "failed to fetch admin data")
		}

		return admin.FirstName, admin.PasswordHash, nil
	default:
		user, err := srv.userRepo.FindByEmail(ctx, email)
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", "", nil
		}
		if err != nil {
			srv.logger.Error("Failed to fetch user during login", slog.Any("error", err))

			return "", "", domainerrors.NewDatabaseExecuteError(err, "failed to fetch user data")
		}

		return user.FirstName, user.PasswordHash, nil
	}
}
