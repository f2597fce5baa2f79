package game

// Value returns the material worth of a piece kind.
func (k PieceKind) Value() int {
	switch k {
	case Pawn:
		return 1
	case Rook, Bishop:
		return 10
	case Queen:
		return 50
	case King:
		return 150
	}
	return 0
}

// Material sums the piece values of one side.
func (p *Position) Material(side Side) int {
	total := 0
	for file := 0; file < 8; file++ {
		for rank := 0; rank < 8; rank++ {
			pc := p.board[file][rank]
			if pc != nil && pc.Side == side {
				total += pc.Kind.Value()
			}
		}
	}
	return total
}

// Evaluate scores the position as the White-minus-Black material balance
// weighted by the remaining search depth. Positive favors White. The depth
// weight is intentional, not incidental: at equal material it makes the
// search prefer wins found fewer plies away and losses found more plies
// away.
func (p *Position) Evaluate(depthLeft int) int {
	return (p.Material(White) - p.Material(Black)) * depthLeft
}
