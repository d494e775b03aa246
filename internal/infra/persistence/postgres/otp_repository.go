package postgres

import (
	"context"

	"libris/internal/domain/entity"
	domainerrors "libris/internal/domain/errors"
	"libris/internal/domain/repository"
	"libris/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// otpRepository implements the repository.OneTimeCodeRepository interface using GORM.
type otpRepository struct {
	db *gorm.DB
}

// NewOneTimeCodeRepository is the constructor for otpRepository.
func NewOneTimeCodeRepository(db *gorm.DB) repository.OneTimeCodeRepository {
	return &otpRepository{db: db}
}

// Save persists a freshly issued code after clearing earlier codes for the
// same email, so at most one live code exists per address.
func (repo *otpRepository) Save(ctx context.Context, code *entity.OneTimeCode) error {
	if err := repo.db.WithContext(ctx).
		Where("email = ?", code.Email).
		Delete(&model.OneTimeCodeModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear previous codes")
	}

	codeM := &model.OneTimeCodeModel{
		Email:     code.Email,
		CodeHash:  code.CodeHash,
		IssuedAt:  code.IssuedAt,
		ExpiresAt: code.ExpiresAt,
	}

	if err := repo.db.WithContext(ctx).Create(codeM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save one-time code")
	}

	code.ID = codeM.ID

	return nil
}

// FindByEmail retrieves the most recently issued code for the email.
func (repo *otpRepository) FindByEmail(ctx context.Context, email string) (*entity.OneTimeCode, error) {
	var codeM model.OneTimeCodeModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		Order("issued_at DESC").
		First(&codeM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCodeNotFound
		}

		return nil, errors.Wrap(err, "failed to find one-time code")
	}

	return &entity.OneTimeCode{
		ID:        codeM.ID,
		Email:     codeM.Email,
		CodeHash:  codeM.CodeHash,
		IssuedAt:  codeM.IssuedAt,
		ExpiresAt: codeM.ExpiresAt,
	}, nil
}

// Delete removes a code record once consumed or superseded.
func (repo *otpRepository) Delete(ctx context.Context, id int64) error {
	if err := repo.db.WithContext(ctx).Delete(&model.OneTimeCodeModel{}, id).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete one-time code")
	}

	return nil
}
