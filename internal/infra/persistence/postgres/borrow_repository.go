package postgres

import (
	"context"

	"libris/internal/domain/entity"
	domainerrors "libris/internal/domain/errors"
	"libris/internal/domain/repository"
	"libris/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// borrowRepository implements the repository.BorrowRepository interface using GORM.
type borrowRepository struct {
	db *gorm.DB
}

// NewBorrowRepository is the constructor for borrowRepository.
func NewBorrowRepository(db *gorm.DB) repository.BorrowRepository {
	return &borrowRepository{db: db}
}

// UpdateStatus sets the status of an existing borrow record. Updating to the
// status the record already holds touches zero rows and is still a success,
// so existence is checked first.
func (repo *borrowRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BorrowRecordModel{}).
		Where("id = ?", id).
		Update("status", status)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update borrow status")
	}

	if result.RowsAffected == 0 {
		// GORM reports zero rows both for a missing id and for a value-equal
		// update on some dialects; distinguish by looking the record up.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.BorrowRecordModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to check borrow record existence")
		}
		if count == 0 {
			return repository.ErrBorrowRecordNotFound
		}
	}

	return nil
}

// ListWithBooks retrieves every borrow record joined with its book's display
// fields, in insertion order.
func (repo *borrowRepository) ListWithBooks(ctx context.Context) ([]*entity.BorrowedBook, error) {
	var recordMs []model.BorrowRecordModel
	if err := repo.db.WithContext(ctx).
		Preload("Book").
		Order("id").
		Find(&recordMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list borrowed books")
	}

	borrowed := make([]*entity.BorrowedBook, 0, len(recordMs))
	for i := range recordMs {
		item := &entity.BorrowedBook{
			Record: *toBorrowRecordDomain(&recordMs[i]),
		}
		if recordMs[i].Book != nil {
			item.BookTitle = recordMs[i].Book.Title
			item.BookImg = recordMs[i].Book.ImgSrc
		}
		borrowed = append(borrowed, item)
	}

	return borrowed, nil
}

// toBorrowRecordDomain converts a GORM BorrowRecordModel to a domain BorrowRecord entity.
func toBorrowRecordDomain(data *model.BorrowRecordModel) *entity.BorrowRecord {
	if data == nil {
		return nil
	}

	return &entity.BorrowRecord{
		ID:        data.ID,
		BookID:    data.BookID,
		Status:    data.Status,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
