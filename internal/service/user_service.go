package service

import (
	"errors"
	"thinkquest_backend/internal/model"
	"thinkquest_backend/internal/util"

	"gorm.io/gorm"
)

type UserStore interface {
	FindByID(id uint) (*model.User, error)
	Update(user *model.User) error
}

type UpdateProfileRequest struct {
	Name       string `json:"name"`
	Grade      string `json:"grade"`
	SchoolName string `json:"schoolName"`
}

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Profile(userID uint) (*model.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) UpdateProfile(userID uint, req *UpdateProfileRequest) (*model.User, error) {
	user, err := s.Profile(userID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Grade != "" {
		user.Grade = req.Grade
	}
	if req.SchoolName != "" {
		user.SchoolName = req.SchoolName
	}

	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
