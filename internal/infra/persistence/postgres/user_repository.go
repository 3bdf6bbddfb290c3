// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"

	"punchclock/internal/domain/entity"
	domainerrors "punchclock/internal/domain/errors"
	"punchclock/internal/domain/repository"
	"punchclock/internal/errors"
	"punchclock/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(ctx, "find user by id", "id = ?", id)
}

// FindByEmail retrieves a single user by email, ignoring case.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, "find user by email", "lower(email) = ?", strings.ToLower(email))
}

// FindBySessionID resolves an opaque session id to the user holding it.
func (repo *userRepository) FindBySessionID(ctx context.Context, sessionID string) (*entity.User, error) {
	if sessionID == "" {
		return nil, repository.ErrUserNotFound
	}

	return repo.findOne(ctx, "find user by session", "session_id = ?", sessionID)
}

func (repo *userRepository) findOne(ctx context.Context, op string, query string, args ...any) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).Where(query, args...).Take(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, op)
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user. The email is stored lower-cased.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "generate user id")
		}
		user.ID = id
	}
	user.Email = strings.ToLower(user.Email)

	userM := fromUserDomain(user)
	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WithDetails("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// UpdateSessionID overwrites the single session slot.
func (repo *userRepository) UpdateSessionID(ctx context.Context, id uuid.UUID, sessionID *string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("session_id", sessionID)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update session")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// Delete removes the user. Time entries go with it through ON DELETE CASCADE.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.UserModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		SessionID:    data.SessionID,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		SessionID:    data.SessionID,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
