package util

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrEmailRegistered = errors.New("email already registered")
	ErrInvalidPassword = errors.New("invalid email or password")
	ErrProblemNotFound = errors.New("problem not found")
	ErrStageLocked     = errors.New("stage is locked")
	ErrUnknownStage    = errors.New("unknown stage")
	ErrQuizRequired    = errors.New("complete or skip the quiz first")
	ErrQuestIncomplete = errors.New("not all stages are completed")
)
