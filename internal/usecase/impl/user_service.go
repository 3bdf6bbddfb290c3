package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"unicode/utf8"

	deliverycontext "punchclock/internal/delivery/context"
	"punchclock/internal/domain/entity"
	domainerrors "punchclock/internal/domain/errors"
	"punchclock/internal/domain/repository"
	"punchclock/internal/domain/service"
	"punchclock/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	minPasswordLength = 8
	// bcrypt ignores input past 72 bytes.
	maxPasswordLength = 72

	// unknownUserPassword is hashed once so logins for unknown emails pay
	// the same bcrypt cost as a password mismatch.
	unknownUserPassword = "punchclock-unknown-user"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.SessionTokenService
	logger       *slog.Logger

	decoyOnce sync.Once
	decoyHash string
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.SessionTokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account with a bcrypt password hash.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	email := normalizeEmail(input.Email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, errors.WithStack(domainerrors.ErrInvalidInput.WithDetails("a valid email is required"))
	}

	if n := len(input.Password); n < minPasswordLength || n > maxPasswordLength || !utf8.ValidString(input.Password) {
		return nil, errors.WithStack(domainerrors.ErrInvalidInput.WithDetails("password must be 8 to 72 bytes"))
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.WithStack(domainerrors.ErrPasswordHashFailed.WithDetails(err.Error()))
	}

	user := &entity.User{
		Email:        email,
		PasswordHash: hash,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", user.ID))

	return user, nil
}

// Login checks the credentials and replaces the user's session with a new one.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting user login", slog.String("email", email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.hasher.Check(input.Password, srv.unknownUserHash())
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "unknown email"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user for login")
	}

	// bcrypt is CPU-bound; nothing else is held while it runs.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "password mismatch"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	sessionID := uuid.NewString()

	token, expiresAt, err := srv.tokenService.Issue(sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	if err := srv.userRepo.UpdateSessionID(ctx, user.ID, &sessionID); err != nil {
		return nil, errors.Wrap(err, "failed to store session")
	}
	user.SessionID = &sessionID

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

// Logout clears the user's session slot.
func (srv *userService) Logout(ctx context.Context, userID uuid.UUID) error {
	err := srv.userRepo.UpdateSessionID(ctx, userID, nil)
	if errors.Is(err, repository.ErrUserNotFound) {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}
	if err != nil {
		return errors.Wrap(err, "failed to clear session")
	}

	srv.log(ctx).Debug("User logged out", slog.Any("userID", userID))

	return nil
}

// ResolveSession maps a session token to the user currently holding that session.
func (srv *userService) ResolveSession(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	sessionID, err := srv.tokenService.Parse(token)
	if err != nil {
		srv.log(ctx).Debug("Rejected session token", slog.Any("error", err))

		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	user, err := srv.userRepo.FindBySessionID(ctx, sessionID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve session")
	}

	return user, nil
}

// DeleteAccount removes the user together with all of their entries.
func (srv *userService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	err := srv.userRepo.Delete(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return errors.WithStack(domainerrors.ErrUserNotFound)
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("Account deleted", slog.Any("userID", userID))

	return nil
}

// unknownUserHash returns a real hash at the configured cost to check against
// when no account matches. A hashing failure leaves it empty.
func (srv *userService) unknownUserHash() string {
	srv.decoyOnce.Do(func() {
		hash, err := srv.hasher.Hash(unknownUserPassword)
		if err != nil {
			srv.logger.Warn("Failed to prepare unknown-user hash", slog.Any("error", err))

			return
		}
		srv.decoyHash = hash
	})

	return srv.decoyHash
}
