package entity

// Mark is the content of a single board cell.
type Mark string

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"
	Empty   Mark = "_"
)

// Players lists the marks in evaluation order.
var Players = [2]Mark{PlayerO, PlayerX}

// NewMark maps a serialized board character to a mark, case-insensitively.
func NewMark(r rune) (Mark, bool) {
	switch r {
	case 'X', 'x':
		return PlayerX, true
	case 'O', 'o':
		return PlayerO, true
	case 'N', 'n', '_':
		return Empty, true
	default:
		return "", false
	}
}

func (that Mark) String() string {
	return string(that)
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Opponent returns the other player's mark. Empty has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return Empty
	}
}
