package service

import (
	"errors"
	"thinkquest_backend/internal/model"
	"thinkquest_backend/internal/util"
	"thinkquest_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProgressStore is the persistence slice the progress service needs.
type ProgressStore interface {
	FindByUser(userID uint) (*model.QuestProgress, error)
	Create(progress *model.QuestProgress) error
	Save(progress *model.QuestProgress) error
	DeleteByUser(userID uint) error
}

// ProblemLookup resolves problem ids when a run starts.
type ProblemLookup interface {
	FindByID(id uint) (*model.Problem, error)
}

type ProgressService struct {
	store    ProgressStore
	problems ProblemLookup
}

func NewProgressService(store ProgressStore, problems ProblemLookup) *ProgressService {
	return &ProgressService{store: store, problems: problems}
}

// Get returns the user's run, creating a fresh one on first access.
// Older records are migrated to the current schema before returning.
func (s *ProgressService) Get(userID uint) (*model.QuestProgress, error) {
	progress, err := s.store.FindByUser(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		progress = model.NewQuestProgress(userID)
		if err := s.store.Create(progress); err != nil {
			return nil, err
		}
		return progress, nil
	}
	if err != nil {
		return nil, err
	}

	if progress.SchemaVersion != model.ProgressSchemaVersion {
		logger.Log.Info("Migrating quest progress record",
			zap.Uint("userID", userID),
			zap.Int("from", progress.SchemaVersion),
			zap.Int("to", model.ProgressSchemaVersion))
		progress.Migrate()
		if err := s.store.Save(progress); err != nil {
			return nil, err
		}
	} else {
		progress.Migrate()
	}
	return progress, nil
}

// SelectProblem binds the run to a problem. Switching problems mid-run
// keeps the stage state; the client resets explicitly when needed.
func (s *ProgressService) SelectProblem(userID, problemID uint) (*model.QuestProgress, error) {
	if _, err := s.problems.FindByID(problemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrProblemNotFound
		}
		return nil, err
	}

	progress, err := s.Get(userID)
	if err != nil {
		return nil, err
	}
	progress.ProblemID = problemID
	if err := s.store.Save(progress); err != nil {
		return nil, err
	}
	return progress, nil
}

// SubmitStage records a scored stage. The stage must already be
// unlocked; clearing the pass threshold opens the next one and a low
// score never closes anything that is already open.
func (s *ProgressService) SubmitStage(userID uint, stageKey string, score float64, reflection string, data map[string]any) (*model.QuestProgress, bool, error) {
	stage := model.StageIndex(stageKey)
	if stage < 0 {
		return nil, false, util.ErrUnknownStage
	}

	progress, err := s.Get(userID)
	if err != nil {
		return nil, false, err
	}
	if !progress.Unlocked(stage) {
		return nil, false, util.ErrStageLocked
	}

	unlocked := progress.ApplyScore(stage, score, reflection, data)
	if err := s.store.Save(progress); err != nil {
		return nil, false, err
	}
	return progress, unlocked, nil
}

// Reset discards the active run. The next Get starts over with only
// the first stage open.
func (s *ProgressService) Reset(userID uint) error {
	return s.store.DeleteByUser(userID)
}
