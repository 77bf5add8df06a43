package repository

import (
	"thinkquest_backend/internal/model"

	"gorm.io/gorm"
)

type ProblemRepository struct {
	DB *gorm.DB
}

func NewProblemRepository(db *gorm.DB) *ProblemRepository {
	return &ProblemRepository{DB: db}
}

func (r *ProblemRepository) FindAll() ([]model.Problem, error) {
	var problems []model.Problem
	err := r.DB.Order("id").Find(&problems).Error
	return problems, err
}

func (r *ProblemRepository) FindByID(id uint) (*model.Problem, error) {
	var problem model.Problem
	err := r.DB.Preload("Personas").First(&problem, id).Error
	return &problem, err
}

func (r *ProblemRepository) FindPersonas(problemID uint) ([]model.Persona, error) {
	var personas []model.Persona
	err := r.DB.Where("problem_id = ?", problemID).Order("id").Find(&personas).Error
	return personas, err
}
