package game

// LegalMoves enumerates every legal move for the side to move. For each
// occupied origin, all 64 destinations are tried against IsLegal; origins
// and destinations are scanned file-major then rank-major, and that fixed
// order is part of the contract because search tie-breaks resolve to the
// first move encountered. Generation is deliberately brute force:
// correctness is the design point and the search's branching factor, not
// generation cost, dominates runtime.
func (p *Position) LegalMoves() []Move {
	var moves []Move
	for file := 0; file < 8; file++ {
		for rank := 0; rank < 8; rank++ {
			from := Square{File: file, Rank: rank}
			pc, ok := p.PieceAt(from)
			if !ok || pc.Side != p.turn {
				continue
			}
			for toFile := 0; toFile < 8; toFile++ {
				for toRank := 0; toRank < 8; toRank++ {
					m := Move{From: from, To: Square{File: toFile, Rank: toRank}}
					if p.IsLegal(m) {
						moves = append(moves, m)
					}
				}
			}
		}
	}
	return moves
}
