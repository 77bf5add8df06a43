package repository

import (
	"thinkquest_backend/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// FindByUser returns the active run for a user. Reset runs are soft
// deleted, so only the live one matches.
func (r *ProgressRepository) FindByUser(userID uint) (*model.QuestProgress, error) {
	var progress model.QuestProgress
	err := r.DB.Where("user_id = ?", userID).First(&progress).Error
	return &progress, err
}

func (r *ProgressRepository) Create(progress *model.QuestProgress) error {
	return r.DB.Create(progress).Error
}

func (r *ProgressRepository) Save(progress *model.QuestProgress) error {
	return r.DB.Save(progress).Error
}

func (r *ProgressRepository) DeleteByUser(userID uint) error {
	return r.DB.Where("user_id = ?", userID).Delete(&model.QuestProgress{}).Error
}
