package service

import (
	"math"
	"thinkquest_backend/internal/model"
)

// QuizTokenReward is granted once for finishing the quiz.
const QuizTokenReward = 50

// QuizStore is the persistence slice the quiz service needs.
type QuizStore interface {
	FindAllQuestions() ([]model.QuizQuestion, error)
	CreateResult(result *model.QuizResult) error
}

// QuizUserStore updates the user's quiz flags and balances.
type QuizUserStore interface {
	FindByID(id uint) (*model.User, error)
	Update(user *model.User) error
	AddRewards(userID uint, tokens, stars int) error
}

// QuizSubmission holds the selected option index per question, keyed
// by question position.
type QuizSubmission struct {
	Answers map[int]int `json:"answers" binding:"required"`
}

// QuizOutcome is the graded result returned to the client.
type QuizOutcome struct {
	Score   int                `json:"score"`
	Correct int                `json:"correct"`
	Total   int                `json:"total"`
	Tokens  int                `json:"tokensAwarded"`
	Review  []model.QuizReview `json:"review"`
}

type QuizService struct {
	store QuizStore
	users QuizUserStore
}

func NewQuizService(store QuizStore, users QuizUserStore) *QuizService {
	return &QuizService{store: store, users: users}
}

// Questions returns the quiz without answers or rationales.
func (s *QuizService) Questions() ([]model.QuizQuestion, error) {
	return s.store.FindAllQuestions()
}

// Submit grades an attempt and marks the quiz completed regardless of
// the score. The token reward is granted only on the first completion.
func (s *QuizService) Submit(userID uint, submission *QuizSubmission) (*QuizOutcome, error) {
	questions, err := s.store.FindAllQuestions()
	if err != nil {
		return nil, err
	}

	correct := 0
	review := make([]model.QuizReview, 0, len(questions))
	for _, q := range questions {
		selected, answered := submission.Answers[q.Position]
		if !answered {
			selected = -1
		}
		ok := answered && selected == q.Answer
		if ok {
			correct++
		}
		review = append(review, model.QuizReview{
			Position:  q.Position,
			Selected:  selected,
			Answer:    q.Answer,
			Correct:   ok,
			Rationale: q.Rationale,
		})
	}

	total := len(questions)
	score := 0
	if total > 0 {
		score = int(math.Round(float64(correct) / float64(total) * 100))
	}

	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, err
	}

	tokens := 0
	if !user.QuizCompleted {
		tokens = QuizTokenReward
	}
	user.QuizCompleted = true
	user.QuizScore = score
	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	if tokens > 0 {
		if err := s.users.AddRewards(userID, tokens, 0); err != nil {
			return nil, err
		}
	}

	if err := s.store.CreateResult(&model.QuizResult{
		UserID:  userID,
		Correct: correct,
		Total:   total,
		Score:   score,
	}); err != nil {
		return nil, err
	}

	return &QuizOutcome{
		Score:   score,
		Correct: correct,
		Total:   total,
		Tokens:  tokens,
		Review:  review,
	}, nil
}

// Skip lets a user bypass the quiz. No reward, but the quest gate
// opens.
func (s *QuizService) Skip(userID uint) error {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return err
	}
	if user.QuizSkipped {
		return nil
	}
	user.QuizSkipped = true
	return s.users.Update(user)
}
