package searcher

import (
	"errors"

	"chess/game"
)

// ErrNoLegalMoves is returned when the side to move has no legal move at
// the search root. The engine has no stalemate rule, so a blocked side
// with its King still on the board is a legitimate reachable state; the
// caller decides what it means (stop the game, re-prompt, declare a draw).
var ErrNoLegalMoves = errors.New("searcher: no legal moves")

// Searcher recommends a move for the side to move along with the score the
// search expects to reach. Each call is an independent tree exploration;
// nothing persists between calls.
type Searcher interface {
	BestMove(pos *game.Position, maxDepth int) (game.Move, int, error)
}

// scoreInf bounds every reachable score: the full material of both sides
// times any remaining depth stays far below it.
const scoreInf = 1 << 30

// Minimax explores the full game tree.
type Minimax struct{}

func NewMinimax() *Minimax { return &Minimax{} }

func (*Minimax) BestMove(pos *game.Position, maxDepth int) (game.Move, int, error) {
	return bestMove(pos, maxDepth, false)
}

// AlphaBeta explores the same tree with an (alpha, beta) window, cutting
// branches that provably cannot change the outcome. Pruning is a
// performance optimization only: for any input it returns the same move
// and score as Minimax.
type AlphaBeta struct{}

func NewAlphaBeta() *AlphaBeta { return &AlphaBeta{} }

func (*AlphaBeta) BestMove(pos *game.Position, maxDepth int) (game.Move, int, error) {
	return bestMove(pos, maxDepth, true)
}

func bestMove(pos *game.Position, maxDepth int, prune bool) (game.Move, int, error) {
	if maxDepth < 1 {
		maxDepth = 1 // keep the deepest evaluation weight at 1, never 0
	}

	moves := pos.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, 0, ErrNoLegalMoves
	}

	maximizing := pos.Turn() == game.White
	best := moves[0]
	bestScore := scoreInf
	if maximizing {
		bestScore = -scoreInf
	}

	// The root window only ever narrows on the root side's own bound, so
	// pruned child values below the current best can never displace it and
	// both searchers pick the identical move.
	alpha, beta := -scoreInf, scoreInf
	for _, m := range moves {
		score := value(pos.Apply(m), maxDepth, alpha, beta, prune)
		if maximizing {
			if score > bestScore {
				best, bestScore = m, score
			}
			if prune && bestScore > alpha {
				alpha = bestScore
			}
		} else {
			if score < bestScore {
				best, bestScore = m, score
			}
			if prune && bestScore < beta {
				beta = bestScore
			}
		}
	}
	return best, bestScore, nil
}

// value scores a position under one depth rule: a node is a leaf when the
// side to move has no King, when it has no legal moves, or when the
// remaining depth is 1 or less. Leaves score Evaluate(depth), so the
// deepest static evaluations carry weight 1 and a King capture found
// closer to the root carries more, which is what makes equal-material
// lines prefer the faster win. Ties resolve to the first move generated.
func value(pos *game.Position, depth, alpha, beta int, prune bool) int {
	if pos.KingMissing(pos.Turn()) || depth <= 1 {
		return pos.Evaluate(depth)
	}
	moves := pos.LegalMoves()
	if len(moves) == 0 {
		return pos.Evaluate(depth)
	}

	if pos.Turn() == game.White {
		best := -scoreInf
		for _, m := range moves {
			v := value(pos.Apply(m), depth-1, alpha, beta, prune)
			if v > best {
				best = v
			}
			if prune {
				if best >= beta {
					return best
				}
				if best > alpha {
					alpha = best
				}
			}
		}
		return best
	}

	best := scoreInf
	for _, m := range moves {
		v := value(pos.Apply(m), depth-1, alpha, beta, prune)
		if v < best {
			best = v
		}
		if prune {
			if best <= alpha {
				return best
			}
			if best < beta {
				beta = best
			}
		}
	}
	return best
}
