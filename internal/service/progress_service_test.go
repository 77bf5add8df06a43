package service

import (
	"testing"
	"thinkquest_backend/internal/model"
	"thinkquest_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeProgressStore struct {
	byUser map[uint]*model.QuestProgress
}

func newFakeProgressStore() *fakeProgressStore {
	return &fakeProgressStore{byUser: make(map[uint]*model.QuestProgress)}
}

func (f *fakeProgressStore) FindByUser(userID uint) (*model.QuestProgress, error) {
	p, ok := f.byUser[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (f *fakeProgressStore) Create(p *model.QuestProgress) error {
	f.byUser[p.UserID] = p
	return nil
}

func (f *fakeProgressStore) Save(p *model.QuestProgress) error {
	f.byUser[p.UserID] = p
	return nil
}

func (f *fakeProgressStore) DeleteByUser(userID uint) error {
	delete(f.byUser, userID)
	return nil
}

type fakeProblemLookup struct {
	titles map[uint]string
}

func (f *fakeProblemLookup) FindByID(id uint) (*model.Problem, error) {
	title, ok := f.titles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &model.Problem{BaseModel: model.BaseModel{ID: id}, Title: title}, nil
}

func newProgressService() (*ProgressService, *fakeProgressStore) {
	store := newFakeProgressStore()
	return NewProgressService(store, &fakeProblemLookup{titles: map[uint]string{1: "Load shedding"}}), store
}

func TestGetCreatesFreshRun(t *testing.T) {
	svc, _ := newProgressService()

	progress, err := svc.Get(7)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, false, false, false}, progress.StagesUnlocked)
	assert.Equal(t, model.ProgressSchemaVersion, progress.SchemaVersion)
}

func TestGetMigratesOldSchema(t *testing.T) {
	svc, store := newProgressService()
	store.byUser[3] = &model.QuestProgress{
		UserID:         3,
		SchemaVersion:  1,
		StagesUnlocked: []bool{true, true},
	}

	progress, err := svc.Get(3)
	require.NoError(t, err)
	assert.Len(t, progress.StagesUnlocked, model.StageCount)
	// A previously earned unlock survives migration.
	assert.True(t, progress.Unlocked(model.StageDefine))
	assert.Equal(t, model.ProgressSchemaVersion, progress.SchemaVersion)
	require.NotNil(t, progress.Stages["test"])
}

func TestSubmitStagePassUnlocksNext(t *testing.T) {
	svc, _ := newProgressService()

	progress, unlocked, err := svc.SubmitStage(1, "empathy", 82, "good notes", nil)
	require.NoError(t, err)
	assert.True(t, unlocked)
	assert.True(t, progress.Unlocked(model.StageDefine))
	assert.True(t, progress.Stages["empathy"].Completed)
	assert.Equal(t, 82.0, progress.Stages["empathy"].Score)
}

func TestSubmitStageFailKeepsNextLocked(t *testing.T) {
	svc, _ := newProgressService()

	progress, unlocked, err := svc.SubmitStage(1, "empathy", 55, "", nil)
	require.NoError(t, err)
	assert.False(t, unlocked)
	assert.False(t, progress.Unlocked(model.StageDefine))
	// The attempt still counts as completed.
	assert.True(t, progress.Stages["empathy"].Completed)
}

func TestSubmitStageUnlocksAreMonotonic(t *testing.T) {
	svc, _ := newProgressService()

	_, _, err := svc.SubmitStage(1, "empathy", 90, "", nil)
	require.NoError(t, err)

	// A later low score never re-locks the next stage.
	progress, unlocked, err := svc.SubmitStage(1, "empathy", 10, "", nil)
	require.NoError(t, err)
	assert.False(t, unlocked)
	assert.True(t, progress.Unlocked(model.StageDefine))
}

func TestSubmitStageLocked(t *testing.T) {
	svc, _ := newProgressService()

	_, _, err := svc.SubmitStage(1, "ideate", 95, "", nil)
	assert.ErrorIs(t, err, util.ErrStageLocked)
}

func TestSubmitStageUnknown(t *testing.T) {
	svc, _ := newProgressService()

	_, _, err := svc.SubmitStage(1, "polish", 95, "", nil)
	assert.ErrorIs(t, err, util.ErrUnknownStage)
}

func TestSelectProblem(t *testing.T) {
	svc, _ := newProgressService()

	progress, err := svc.SelectProblem(1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint(1), progress.ProblemID)

	_, err = svc.SelectProblem(1, 99)
	assert.ErrorIs(t, err, util.ErrProblemNotFound)
}

func TestResetStartsOver(t *testing.T) {
	svc, _ := newProgressService()

	_, _, err := svc.SubmitStage(1, "empathy", 90, "", nil)
	require.NoError(t, err)
	require.NoError(t, svc.Reset(1))

	progress, err := svc.Get(1)
	require.NoError(t, err)
	assert.False(t, progress.Unlocked(model.StageDefine))
	assert.False(t, progress.Stages["empathy"].Completed)
}

func TestTotalScoreAndCompletion(t *testing.T) {
	svc, _ := newProgressService()

	stages := []string{"empathy", "define", "ideate", "prototype", "test"}
	for _, stage := range stages {
		_, _, err := svc.SubmitStage(1, stage, 80, "", nil)
		require.NoError(t, err)
	}

	progress, err := svc.Get(1)
	require.NoError(t, err)
	assert.True(t, progress.AllCompleted())
	assert.Equal(t, 400.0, progress.TotalScore())
}
