package model

import "time"

// QuestRecord is one finished run on the in-memory leaderboard. The
// board lives for the lifetime of the process only.
type QuestRecord struct {
	UserID       uint      `json:"userId"`
	Username     string    `json:"username"`
	Avatar       string    `json:"avatar"`
	ProblemID    uint      `json:"problemId"`
	ProblemTitle string    `json:"problemTitle"`
	Solution     string    `json:"solution"`
	TotalScore   float64   `json:"totalScore"`
	CompletedAt  time.Time `json:"completedAt"`
}

// LeaderboardEntry is a ranked row returned to clients.
type LeaderboardEntry struct {
	Rank         int       `json:"rank"`
	UserID       uint      `json:"userId"`
	Username     string    `json:"username"`
	Avatar       string    `json:"avatar"`
	ProblemID    uint      `json:"problemId"`
	ProblemTitle string    `json:"problemTitle"`
	Solution     string    `json:"solution"`
	TotalScore   float64   `json:"totalScore"`
	CompletedAt  time.Time `json:"completedAt"`
}

// QuestReward is what a player receives for completing the quest.
type QuestReward struct {
	Rank       int     `json:"rank"`
	Reward     int     `json:"reward"`
	Badge      string  `json:"badge"`
	Tokens     int     `json:"tokens"`
	Stars      int     `json:"stars"`
	TotalScore float64 `json:"totalScore"`
}
