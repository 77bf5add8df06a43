package model

// Problem is a design challenge players pick before starting the quest.
type Problem struct {
	BaseModel
	Slug        string    `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `gorm:"size:100" json:"category"`
	ImageURL    string    `gorm:"size:500" json:"imageUrl"`
	Tags        []string  `gorm:"serializer:json" json:"tags"`
	Personas    []Persona `gorm:"foreignKey:ProblemID" json:"personas,omitempty"`
}

// Persona is a simulated user attached to a problem. The chat relay
// impersonates a persona when building prompts.
type Persona struct {
	BaseModel
	ProblemID  uint   `gorm:"index;not null" json:"problemId"`
	Name       string `gorm:"size:100;not null" json:"name"`
	Role       string `gorm:"size:200" json:"role"`
	Background string `gorm:"type:text" json:"background"`
	Goals      string `gorm:"type:text" json:"goals"`
	Pains      string `gorm:"type:text" json:"pains"`
	AvatarURL  string `gorm:"size:500" json:"avatarUrl"`
}
