package repository

import (
	"thinkquest_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

func (r *UserRepository) UpdateAvatar(userID uint, avatarURL string) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("avatar_url", avatarURL).
		Error
}

// AddRewards increments the token and star balances atomically.
func (r *UserRepository) AddRewards(userID uint, tokens, stars int) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"tokens": gorm.Expr("tokens + ?", tokens),
			"stars":  gorm.Expr("stars + ?", stars),
		}).Error
}

// QuizReady satisfies the quiz gate middleware.
func (r *UserRepository) QuizReady(userID uint) (bool, error) {
	var user model.User
	if err := r.DB.Select("quiz_completed", "quiz_skipped").First(&user, userID).Error; err != nil {
		return false, err
	}
	return user.QuizReady(), nil
}
