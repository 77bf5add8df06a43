package repository

import (
	"thinkquest_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) FindAllQuestions() ([]model.QuizQuestion, error) {
	var questions []model.QuizQuestion
	err := r.DB.Order("position").Find(&questions).Error
	return questions, err
}

func (r *QuizRepository) CreateResult(result *model.QuizResult) error {
	return r.DB.Create(result).Error
}
