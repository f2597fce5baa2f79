package game

// The legality predicates are pure: they inspect the position and the
// candidate move, nothing else. A move into the mover's own check is not
// forbidden; the King being captured on the reply is what ends the game.

// DestinationBlocked reports whether m.To holds a piece of the mover's own
// side. Enemy-occupied destinations remain legal (capture semantics).
func (p *Position) DestinationBlocked(m Move) bool {
	mover, ok := p.PieceAt(m.From)
	if !ok {
		return false
	}
	dest, ok := p.PieceAt(m.To)
	return ok && dest.Side == mover.Side
}

// ShapeAllowed reports whether the move's geometry matches the movement
// pattern of the piece on m.From. An empty origin, or one owned by the
// side not to move, fails outright.
func (p *Position) ShapeAllowed(m Move) bool {
	mover, ok := p.PieceAt(m.From)
	if !ok || mover.Side != p.turn {
		return false
	}

	df := m.To.File - m.From.File
	dr := m.To.Rank - m.From.Rank

	switch mover.Kind {
	case Pawn:
		forward := 1
		if mover.Side == Black {
			forward = -1
		}
		if dr != forward {
			return false
		}
		if df == 0 { // straight ahead, only to an empty square
			_, occupied := p.PieceAt(m.To)
			return !occupied
		}
		if abs(df) == 1 { // diagonal, capture only
			dest, occupied := p.PieceAt(m.To)
			return occupied && dest.Side != mover.Side
		}
		return false
	case Rook:
		return (df == 0) != (dr == 0)
	case Bishop:
		return df != 0 && abs(df) == abs(dr)
	case Queen:
		return (df == 0) != (dr == 0) || (df != 0 && abs(df) == abs(dr))
	case King:
		// The null move is already rejected by Move.OnBoard.
		return abs(df) <= 1 && abs(dr) <= 1
	}
	return false
}

// PathClear reports whether every square strictly between m.From and m.To
// is empty. Pawns and Kings move a single step and are exempt. For sliders
// the move's geometry must already be valid (see ShapeAllowed); IsLegal
// checks in that order.
func (p *Position) PathClear(m Move) bool {
	mover, ok := p.PieceAt(m.From)
	if !ok {
		return false
	}
	if mover.Kind == Pawn || mover.Kind == King {
		return true
	}

	stepFile := sign(m.To.File - m.From.File)
	stepRank := sign(m.To.Rank - m.From.Rank)
	sq := Square{File: m.From.File + stepFile, Rank: m.From.Rank + stepRank}
	for sq != m.To {
		if _, occupied := p.PieceAt(sq); occupied {
			return false
		}
		sq.File += stepFile
		sq.Rank += stepRank
	}
	return true
}

// IsLegal is the single legality gate: on the board, matching the piece's
// shape, not onto a friendly piece, and with a clear path.
func (p *Position) IsLegal(m Move) bool {
	return m.OnBoard() && p.ShapeAllowed(m) && !p.DestinationBlocked(m) && p.PathClear(m)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
