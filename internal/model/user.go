package model

import "time"

// User is a player account. Token and star balances mirror the rewards
// granted by quiz and quest completion.
type User struct {
	BaseModel
	Name          string     `gorm:"size:100;not null" json:"name"`
	Email         string     `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password      string     `gorm:"size:255;not null" json:"-"`
	Grade         string     `gorm:"size:50" json:"grade"`
	SchoolName    string     `gorm:"size:200" json:"schoolName"`
	AvatarURL     string     `gorm:"size:500" json:"avatarUrl"`
	QuizCompleted bool       `gorm:"default:false" json:"quizCompleted"`
	QuizSkipped   bool       `gorm:"default:false" json:"quizSkipped"`
	QuizScore     int        `gorm:"default:0" json:"quizScore"`
	Tokens        int        `gorm:"default:0" json:"tokens"`
	Stars         int        `gorm:"default:0" json:"stars"`
	LastLogin     *time.Time `json:"lastLogin,omitempty"`
}

// QuizReady reports whether the user may enter the quest stages.
func (u *User) QuizReady() bool {
	return u.QuizCompleted || u.QuizSkipped
}
