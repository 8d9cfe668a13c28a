package repo

import (
	"errors"

	"gorm.io/gorm"

	"go-journal-api/internal/domain"
)

type JournalRepo struct{ db *gorm.DB }

func NewJournalRepo(db *gorm.DB) *JournalRepo { return &JournalRepo{db: db} }

func (r *JournalRepo) Create(e *domain.JournalEntry) error {
	return r.db.Create(e).Error
}

func (r *JournalRepo) ListByUser(userID string) ([]domain.JournalEntry, error) {
	var out []domain.JournalEntry
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

// FindOne 查询始终带 user_id 条件：别人的条目等同于不存在
func (r *JournalRepo) FindOne(userID, entryID string) (*domain.JournalEntry, error) {
	var e domain.JournalEntry
	err := r.db.First(&e, "id = ? AND user_id = ?", entryID, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *JournalRepo) Update(e *domain.JournalEntry) error {
	return r.db.Save(e).Error
}

func (r *JournalRepo) Delete(userID, entryID string) error {
	res := r.db.Where("id = ? AND user_id = ?", entryID, userID).Delete(&domain.JournalEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}
