package entity

const (
	StatusOngoing = "ongoing"
	StatusWon     = "won"
	StatusDraw    = "draw"
)

// GameResult is the outcome of a board evaluation.
type GameResult struct {
	Status string `json:"status"`
	Winner Mark   `json:"winner,omitempty"`
}

func Winner(mark Mark) GameResult {
	return GameResult{Status: StatusWon, Winner: mark}
}

func Draw() GameResult {
	return GameResult{Status: StatusDraw}
}

func InProgress() GameResult {
	return GameResult{Status: StatusOngoing}
}

func (that GameResult) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusDraw
}

func (that GameResult) IsDraw() bool {
	return that.Status == StatusDraw
}

func (that GameResult) String() string {
	switch that.Status {
	case StatusWon:
		return "The winner is " + that.Winner.String()
	case StatusDraw:
		return "It's a draw"
	default:
		return "The game is ongoing"
	}
}
