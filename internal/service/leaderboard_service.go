package service

import (
	"math"
	"sort"
	"sync"
	"thinkquest_backend/internal/model"
	"time"
)

// QuestBadge is awarded for any completed run.
const QuestBadge = "Innovator"

// QuestMaxScore is the score ceiling across the five stages.
const QuestMaxScore = 500

// RewardUserStore credits quest rewards to the user account.
type RewardUserStore interface {
	FindByID(id uint) (*model.User, error)
	AddRewards(userID uint, tokens, stars int) error
}

// LeaderboardService keeps finished runs in memory for the lifetime of
// the process. Restarting the server clears the board.
type LeaderboardService struct {
	mu       sync.RWMutex
	records  []model.QuestRecord
	users    RewardUserStore
	problems ProblemLookup
}

func NewLeaderboardService(users RewardUserStore, problems ProblemLookup) *LeaderboardService {
	return &LeaderboardService{users: users, problems: problems}
}

// CompleteQuest records a finished run and computes the reward. Tokens
// and stars are credited to the user's balances.
func (s *LeaderboardService) CompleteQuest(userID, problemID uint, totalScore float64, solution string) (*model.QuestReward, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, err
	}

	problemTitle := ""
	if problem, err := s.problems.FindByID(problemID); err == nil {
		problemTitle = problem.Title
	}

	s.mu.Lock()
	s.records = append(s.records, model.QuestRecord{
		UserID:       userID,
		Username:     user.Name,
		Avatar:       user.AvatarURL,
		ProblemID:    problemID,
		ProblemTitle: problemTitle,
		Solution:     solution,
		TotalScore:   totalScore,
		CompletedAt:  time.Now(),
	})
	s.mu.Unlock()

	rank := int(math.Round(totalScore / QuestMaxScore * 100))
	tokens := int(totalScore / 10)
	stars := int(totalScore / 100)
	if err := s.users.AddRewards(userID, tokens, stars); err != nil {
		return nil, err
	}

	return &model.QuestReward{
		Rank:       rank,
		Reward:     200,
		Badge:      QuestBadge,
		Tokens:     tokens,
		Stars:      stars,
		TotalScore: totalScore,
	}, nil
}

// Entries returns the board for one problem, best score first, ranks
// assigned from 1.
func (s *LeaderboardService) Entries(problemID uint) []model.LeaderboardEntry {
	s.mu.RLock()
	filtered := make([]model.QuestRecord, 0, len(s.records))
	for _, rec := range s.records {
		if rec.ProblemID == problemID {
			filtered = append(filtered, rec)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].TotalScore > filtered[j].TotalScore
	})

	entries := make([]model.LeaderboardEntry, len(filtered))
	for i, rec := range filtered {
		entries[i] = model.LeaderboardEntry{
			Rank:         i + 1,
			UserID:       rec.UserID,
			Username:     rec.Username,
			Avatar:       rec.Avatar,
			ProblemID:    rec.ProblemID,
			ProblemTitle: rec.ProblemTitle,
			Solution:     rec.Solution,
			TotalScore:   rec.TotalScore,
			CompletedAt:  rec.CompletedAt,
		}
	}
	return entries
}
