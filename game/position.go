package game

// Position is one snapshot of the board plus the side to move. Positions
// are never edited once in play: Apply returns a fresh copy, so a search
// can explore many branches from one ancestor without corrupting it.
type Position struct {
	turn  Side
	board [8][8]*Piece // indexed [file][rank]
}

// NewPosition returns an empty board with the given side to move.
func NewPosition(turn Side) *Position {
	return &Position{turn: turn}
}

// SetPiece places pc on sq. It exists for the construction boundary (board
// files, test setups); once a position is in play it is replaced through
// Apply, never mutated.
func (p *Position) SetPiece(sq Square, pc Piece) {
	p.board[sq.File][sq.Rank] = &pc
}

// Turn returns the side to move.
func (p *Position) Turn() Side {
	return p.turn
}

// PieceAt returns the piece on sq, if any. sq must be on the board;
// callers validate coordinates first.
func (p *Position) PieceAt(sq Square) (Piece, bool) {
	pc := p.board[sq.File][sq.Rank]
	if pc == nil {
		return Piece{}, false
	}
	return *pc, true
}

// Apply returns a new Position with the piece on m.From relocated to m.To
// and the turn flipped. The receiver is left untouched. Apply does not
// check legality; callers gate moves through IsLegal first.
func (p *Position) Apply(m Move) *Position {
	next := &Position{turn: p.turn.Opponent(), board: p.board}
	next.board[m.To.File][m.To.Rank] = next.board[m.From.File][m.From.Rank]
	next.board[m.From.File][m.From.Rank] = nil
	return next
}

// KingMissing reports whether side has no King on the board. A captured
// King is the engine's only terminal condition; a well-formed game has one
// King per side but nothing here assumes it.
func (p *Position) KingMissing(side Side) bool {
	for file := 0; file < 8; file++ {
		for rank := 0; rank < 8; rank++ {
			pc := p.board[file][rank]
			if pc != nil && pc.Side == side && pc.Kind == King {
				return false
			}
		}
	}
	return true
}
