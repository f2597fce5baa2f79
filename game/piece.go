package game

// Side identifies one of the two players.
type Side int

const (
	White Side = iota
	Black
)

func (s Side) Opponent() Side {
	if s == White {
		return Black
	}
	return White
}

func (s Side) String() string {
	if s == White {
		return "White"
	}
	return "Black"
}

// PieceKind is the movement class of a piece. The underlying byte is the
// lowercase letter used in board files and rendering.
type PieceKind byte

const (
	Pawn   PieceKind = 'p'
	Rook   PieceKind = 'r'
	Bishop PieceKind = 'b'
	Queen  PieceKind = 'q'
	King   PieceKind = 'k'
)

func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "Pawn"
	case Rook:
		return "Rook"
	case Bishop:
		return "Bishop"
	case Queen:
		return "Queen"
	case King:
		return "King"
	}
	return "Unknown"
}

// Piece is an immutable (side, kind) pair owned by exactly one square.
type Piece struct {
	Side Side
	Kind PieceKind
}

// Letter renders the piece as a single letter: uppercase for White,
// lowercase for Black.
func (p Piece) Letter() byte {
	if p.Side == White {
		return byte(p.Kind) - 'a' + 'A'
	}
	return byte(p.Kind)
}
