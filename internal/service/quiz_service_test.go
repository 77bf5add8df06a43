package service

import (
	"testing"
	"thinkquest_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQuizStore struct {
	questions []model.QuizQuestion
	results   []*model.QuizResult
}

func (f *fakeQuizStore) FindAllQuestions() ([]model.QuizQuestion, error) {
	return f.questions, nil
}

func (f *fakeQuizStore) CreateResult(result *model.QuizResult) error {
	f.results = append(f.results, result)
	return nil
}

type fakeQuizUserStore struct {
	user   *model.User
	tokens int
	stars  int
}

func (f *fakeQuizUserStore) FindByID(id uint) (*model.User, error) {
	return f.user, nil
}

func (f *fakeQuizUserStore) Update(user *model.User) error {
	f.user = user
	return nil
}

func (f *fakeQuizUserStore) AddRewards(userID uint, tokens, stars int) error {
	f.tokens += tokens
	f.stars += stars
	return nil
}

func quizFixture() *fakeQuizStore {
	return &fakeQuizStore{questions: []model.QuizQuestion{
		{Position: 1, Question: "q1", Options: []string{"a", "b"}, Answer: 1, Rationale: "r1"},
		{Position: 2, Question: "q2", Options: []string{"a", "b"}, Answer: 0, Rationale: "r2"},
		{Position: 3, Question: "q3", Options: []string{"a", "b"}, Answer: 1, Rationale: "r3"},
		{Position: 4, Question: "q4", Options: []string{"a", "b"}, Answer: 0, Rationale: "r4"},
	}}
}

func TestQuizSubmitScoresAndRewards(t *testing.T) {
	users := &fakeQuizUserStore{user: &model.User{BaseModel: model.BaseModel{ID: 1}}}
	store := quizFixture()
	svc := NewQuizService(store, users)

	outcome, err := svc.Submit(1, &QuizSubmission{Answers: map[int]int{1: 1, 2: 0, 3: 0, 4: 1}})
	require.NoError(t, err)

	assert.Equal(t, 2, outcome.Correct)
	assert.Equal(t, 4, outcome.Total)
	assert.Equal(t, 50, outcome.Score)
	assert.Equal(t, QuizTokenReward, outcome.Tokens)
	assert.Equal(t, QuizTokenReward, users.tokens)
	assert.True(t, users.user.QuizCompleted)
	assert.Equal(t, 50, users.user.QuizScore)
	require.Len(t, store.results, 1)

	require.Len(t, outcome.Review, 4)
	assert.True(t, outcome.Review[0].Correct)
	assert.Equal(t, "r1", outcome.Review[0].Rationale)
	assert.False(t, outcome.Review[2].Correct)
}

func TestQuizSubmitRewardOnlyOnce(t *testing.T) {
	users := &fakeQuizUserStore{user: &model.User{BaseModel: model.BaseModel{ID: 1}, QuizCompleted: true}}
	svc := NewQuizService(quizFixture(), users)

	outcome, err := svc.Submit(1, &QuizSubmission{Answers: map[int]int{1: 1}})
	require.NoError(t, err)
	assert.Equal(t, 0, outcome.Tokens)
	assert.Equal(t, 0, users.tokens)
}

func TestQuizSubmitUnansweredCountsWrong(t *testing.T) {
	users := &fakeQuizUserStore{user: &model.User{BaseModel: model.BaseModel{ID: 1}}}
	svc := NewQuizService(quizFixture(), users)

	outcome, err := svc.Submit(1, &QuizSubmission{Answers: map[int]int{}})
	require.NoError(t, err)
	assert.Equal(t, 0, outcome.Correct)
	assert.Equal(t, 0, outcome.Score)
	assert.Equal(t, -1, outcome.Review[0].Selected)
}

func TestQuizSkipOpensGate(t *testing.T) {
	users := &fakeQuizUserStore{user: &model.User{BaseModel: model.BaseModel{ID: 1}}}
	svc := NewQuizService(quizFixture(), users)

	require.NoError(t, svc.Skip(1))
	assert.True(t, users.user.QuizSkipped)
	assert.True(t, users.user.QuizReady())
	assert.Equal(t, 0, users.tokens)
}
