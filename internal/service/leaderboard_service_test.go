package service

import (
	"testing"
	"thinkquest_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRewardStore struct {
	users  map[uint]*model.User
	tokens map[uint]int
	stars  map[uint]int
}

func newFakeRewardStore() *fakeRewardStore {
	return &fakeRewardStore{
		users:  make(map[uint]*model.User),
		tokens: make(map[uint]int),
		stars:  make(map[uint]int),
	}
}

func (f *fakeRewardStore) FindByID(id uint) (*model.User, error) {
	return f.users[id], nil
}

func (f *fakeRewardStore) AddRewards(userID uint, tokens, stars int) error {
	f.tokens[userID] += tokens
	f.stars[userID] += stars
	return nil
}

func newLeaderboardService(store *fakeRewardStore) *LeaderboardService {
	problems := &fakeProblemLookup{titles: map[uint]string{
		2: "Water shortages",
		5: "Load shedding",
		9: "Commute safety",
	}}
	return NewLeaderboardService(store, problems)
}

func TestCompleteQuestRewards(t *testing.T) {
	store := newFakeRewardStore()
	store.users[1] = &model.User{BaseModel: model.BaseModel{ID: 1}, Name: "Lerato"}
	svc := newLeaderboardService(store)

	reward, err := svc.CompleteQuest(1, 2, 400, "Solar study lamps")
	require.NoError(t, err)

	assert.Equal(t, 80, reward.Rank)
	assert.Equal(t, 200, reward.Reward)
	assert.Equal(t, QuestBadge, reward.Badge)
	assert.Equal(t, 40, reward.Tokens)
	assert.Equal(t, 4, reward.Stars)
	assert.Equal(t, 40, store.tokens[1])
	assert.Equal(t, 4, store.stars[1])
}

func TestCompleteQuestRecordsRunDetails(t *testing.T) {
	store := newFakeRewardStore()
	store.users[1] = &model.User{
		BaseModel: model.BaseModel{ID: 1},
		Name:      "Lerato",
		AvatarURL: "https://models.readyplayer.me/lerato.glb",
	}
	svc := newLeaderboardService(store)

	_, err := svc.CompleteQuest(1, 5, 420, "A lending desk for solar lamps")
	require.NoError(t, err)

	entries := svc.Entries(5)
	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, uint(1), entry.UserID)
	assert.Equal(t, "Lerato", entry.Username)
	assert.Equal(t, "https://models.readyplayer.me/lerato.glb", entry.Avatar)
	assert.Equal(t, "Load shedding", entry.ProblemTitle)
	assert.Equal(t, "A lending desk for solar lamps", entry.Solution)
	assert.Equal(t, 420.0, entry.TotalScore)
	assert.False(t, entry.CompletedAt.IsZero())
}

func TestLeaderboardSortedAndRanked(t *testing.T) {
	store := newFakeRewardStore()
	store.users[1] = &model.User{BaseModel: model.BaseModel{ID: 1}, Name: "Lerato"}
	store.users[2] = &model.User{BaseModel: model.BaseModel{ID: 2}, Name: "Bongani"}
	store.users[3] = &model.User{BaseModel: model.BaseModel{ID: 3}, Name: "Thandi"}
	svc := newLeaderboardService(store)

	_, err := svc.CompleteQuest(1, 5, 310, "s1")
	require.NoError(t, err)
	_, err = svc.CompleteQuest(2, 5, 450, "s2")
	require.NoError(t, err)
	_, err = svc.CompleteQuest(3, 9, 500, "s3")
	require.NoError(t, err)

	entries := svc.Entries(5)
	require.Len(t, entries, 2)
	assert.Equal(t, "Bongani", entries[0].Username)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "Lerato", entries[1].Username)
	assert.Equal(t, 2, entries[1].Rank)

	// Other problems keep their own boards.
	other := svc.Entries(9)
	require.Len(t, other, 1)
	assert.Equal(t, "Thandi", other[0].Username)
}

func TestLeaderboardEmptyProblem(t *testing.T) {
	assert.Empty(t, newLeaderboardService(newFakeRewardStore()).Entries(1))
}
