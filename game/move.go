package game

import "fmt"

// Move is an origin/destination pair. Nothing else is tracked: applying a
// move relocates the origin piece and discards whatever held the
// destination.
type Move struct {
	From Square
	To   Square
}

// OnBoard reports whether both squares are on the board and distinct. The
// null move fails here, so the other rule predicates never see it.
func (m Move) OnBoard() bool {
	return m.From.OnBoard() && m.To.OnBoard() && m.From != m.To
}

func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// ParseMove reads the fixed four-character notation, e.g. "e2e4". Richer
// notations are out of scope.
func ParseMove(s string) (Move, error) {
	if len(s) != 4 {
		return Move{}, fmt.Errorf("move %q: want four characters", s)
	}
	from, err := ParseSquare(s[:2])
	if err != nil {
		return Move{}, fmt.Errorf("move %q: %w", s, err)
	}
	to, err := ParseSquare(s[2:])
	if err != nil {
		return Move{}, fmt.Errorf("move %q: %w", s, err)
	}
	return Move{From: from, To: to}, nil
}
