package model

import "time"

// Quest stage indices, in play order.
const (
	StageEmpathy = iota
	StageDefine
	StageIdeate
	StagePrototype
	StageTest
	StageCount
)

// PassThreshold is the minimum stage score that unlocks the next stage.
const PassThreshold = 70

// ProgressSchemaVersion is bumped whenever the persisted progress shape
// changes. Records with an older version are migrated on load.
const ProgressSchemaVersion = 2

var stageKeys = [StageCount]string{"empathy", "define", "ideate", "prototype", "test"}

// StageKey returns the canonical name of a stage index, or "" when the
// index is out of range.
func StageKey(stage int) string {
	if stage < 0 || stage >= StageCount {
		return ""
	}
	return stageKeys[stage]
}

// StageIndex resolves a stage name to its index, -1 when unknown.
func StageIndex(key string) int {
	for i, k := range stageKeys {
		if k == key {
			return i
		}
	}
	return -1
}

// StageRecord holds the submitted work and score of a single stage.
type StageRecord struct {
	Completed  bool           `json:"completed"`
	Score      float64        `json:"score"`
	Reflection string         `json:"reflection,omitempty"`
	Data       map[string]any `json:"data,omitempty"`
	ScoredAt   *time.Time     `json:"scoredAt,omitempty"`
}

// QuestProgress is the server side copy of a player's run through the
// five stages. One active record per user; resetting soft deletes it.
type QuestProgress struct {
	BaseModel
	UserID         uint                    `gorm:"index;not null" json:"userId"`
	ProblemID      uint                    `gorm:"index" json:"problemId"`
	SchemaVersion  int                     `gorm:"default:2" json:"schemaVersion"`
	StagesUnlocked []bool                  `gorm:"serializer:json" json:"stagesUnlocked"`
	Stages         map[string]*StageRecord `gorm:"serializer:json" json:"stages"`
	CompletedAt    *time.Time              `json:"completedAt,omitempty"`
}

// NewQuestProgress returns a fresh run with only the first stage open.
func NewQuestProgress(userID uint) *QuestProgress {
	p := &QuestProgress{UserID: userID}
	p.Migrate()
	return p
}

// Migrate fills in defaults for records persisted under an older schema
// version. It never revokes an unlock the stored record already grants.
func (p *QuestProgress) Migrate() {
	if len(p.StagesUnlocked) < StageCount {
		unlocked := make([]bool, StageCount)
		copy(unlocked, p.StagesUnlocked)
		p.StagesUnlocked = unlocked
	}
	p.StagesUnlocked[StageEmpathy] = true
	if p.Stages == nil {
		p.Stages = make(map[string]*StageRecord, StageCount)
	}
	for _, key := range stageKeys {
		if p.Stages[key] == nil {
			p.Stages[key] = &StageRecord{}
		}
	}
	p.SchemaVersion = ProgressSchemaVersion
}

// Unlocked reports whether a stage may be entered.
func (p *QuestProgress) Unlocked(stage int) bool {
	return stage >= 0 && stage < len(p.StagesUnlocked) && p.StagesUnlocked[stage]
}

// ApplyScore records a stage result and, when the score clears the pass
// threshold, unlocks the next stage. Unlocks are monotonic: a later low
// score never re-locks a stage. It reports whether a new stage opened.
func (p *QuestProgress) ApplyScore(stage int, score float64, reflection string, data map[string]any) bool {
	key := StageKey(stage)
	if key == "" {
		return false
	}
	now := time.Now()
	rec := p.Stages[key]
	rec.Completed = true
	rec.Score = score
	rec.Reflection = reflection
	if data != nil {
		rec.Data = data
	}
	rec.ScoredAt = &now
	if score >= PassThreshold && stage+1 < StageCount && !p.StagesUnlocked[stage+1] {
		p.StagesUnlocked[stage+1] = true
		return true
	}
	return false
}

// TotalScore sums the recorded stage scores.
func (p *QuestProgress) TotalScore() float64 {
	var total float64
	for _, key := range stageKeys {
		if rec := p.Stages[key]; rec != nil && rec.Completed {
			total += rec.Score
		}
	}
	return total
}

// AllCompleted reports whether every stage has a recorded result.
func (p *QuestProgress) AllCompleted() bool {
	for _, key := range stageKeys {
		if rec := p.Stages[key]; rec == nil || !rec.Completed {
			return false
		}
	}
	return true
}
