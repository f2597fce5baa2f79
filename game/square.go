package game

import "fmt"

// Square is a board coordinate: File 0..7 maps to files a..h and Rank 0..7
// to ranks 1..8.
type Square struct {
	File int
	Rank int
}

// OnBoard reports whether both coordinates lie in [0,7].
func (s Square) OnBoard() bool {
	return s.File >= 0 && s.File <= 7 && s.Rank >= 0 && s.Rank <= 7
}

func (s Square) String() string {
	return fmt.Sprintf("%c%d", 'a'+s.File, s.Rank+1)
}

// ParseSquare reads the two-character notation, e.g. "e2".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("square %q: want two characters", s)
	}
	sq := Square{File: int(s[0] - 'a'), Rank: int(s[1] - '1')}
	if !sq.OnBoard() {
		return Square{}, fmt.Errorf("square %q: outside the board", s)
	}
	return sq, nil
}
