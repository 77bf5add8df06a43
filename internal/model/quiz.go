package model

// QuizQuestion is one entry of the onboarding quiz. The correct answer
// index and rationale stay server side and are stripped from list
// responses.
type QuizQuestion struct {
	BaseModel
	Position  int      `gorm:"uniqueIndex;not null" json:"position"`
	Question  string   `gorm:"type:text;not null" json:"question"`
	Options   []string `gorm:"serializer:json" json:"options"`
	Answer    int      `gorm:"not null" json:"-"`
	Rationale string   `gorm:"type:text" json:"-"`
}

// QuizResult records a finished attempt.
type QuizResult struct {
	BaseModel
	UserID  uint `gorm:"index;not null" json:"userId"`
	Correct int  `json:"correct"`
	Total   int  `json:"total"`
	Score   int  `json:"score"`
}

// QuizReview is the per-question outcome returned after submission.
type QuizReview struct {
	Position  int    `json:"position"`
	Selected  int    `json:"selected"`
	Answer    int    `json:"answer"`
	Correct   bool   `json:"correct"`
	Rationale string `json:"rationale"`
}
