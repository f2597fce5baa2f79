package engine

import (
	"golang.org/x/exp/rand"

	"chess/game"
	"chess/searcher"
)

// SearchAgent plays the move a searcher recommends at a fixed depth.
type SearchAgent struct {
	searcher searcher.Searcher
	depth    int
}

func NewSearchAgent(s searcher.Searcher, depth int) *SearchAgent {
	return &SearchAgent{searcher: s, depth: depth}
}

func (a *SearchAgent) FindMove(pos *game.Position) (game.Move, error) {
	move, _, err := a.searcher.BestMove(pos, a.depth)
	return move, err
}

// RandomAgent plays a uniformly random legal move. It is a weak baseline
// opponent for self-play runs and tests.
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) FindMove(pos *game.Position) (game.Move, error) {
	moves := pos.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, searcher.ErrNoLegalMoves
	}
	return moves[a.rng.Intn(len(moves))], nil
}
