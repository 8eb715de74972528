package domain

const (
	RequesterIDCtxKey    = "academy-requesterId"
	RequesterEmailCtxKey = "academy-requesterEmail"
)

const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)
