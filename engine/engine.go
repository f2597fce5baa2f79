package engine

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"chess/game"
	"chess/searcher"
)

// Agent picks a move for the side to move.
type Agent interface {
	FindMove(pos *game.Position) (game.Move, error)
}

// Outcome describes a finished game.
type Outcome struct {
	Winner   game.Side
	Decisive bool // false when no King was captured
	Turns    int
}

// Engine drives a local game between two agents. It owns the single live
// position, which is replaced (never mutated) after each applied move.
type Engine struct {
	id       uuid.UUID
	state    *game.Position
	agents   map[game.Side]Agent
	maxTurns int
}

// DefaultMaxTurns caps runaway games between agents that never capture.
const DefaultMaxTurns = 500

type Option func(*Engine)

func WithMaxTurns(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxTurns = n
		}
	}
}

func New(start *game.Position, white, black Agent, options ...Option) *Engine {
	e := &Engine{
		id:       uuid.New(),
		state:    start,
		agents:   map[game.Side]Agent{game.White: white, game.Black: black},
		maxTurns: DefaultMaxTurns,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// State returns the current position.
func (e *Engine) State() *game.Position {
	return e.state
}

// Run plays the game out: it stops when a King goes missing, when the side
// to move has no legal moves (an undecided game, since there is no
// stalemate rule), when an agent fails, or at the turn cap. Agent moves
// are re-checked against IsLegal before being applied; an agent returning
// an illegal move aborts the game.
func (e *Engine) Run() (Outcome, error) {
	logger := log.With().Stringer("game", e.id).Logger()
	logger.Info().Stringer("side", e.state.Turn()).Msg("game started")

	for turn := 1; turn <= e.maxTurns; turn++ {
		side := e.state.Turn()

		move, err := e.agents[side].FindMove(e.state)
		if errors.Is(err, searcher.ErrNoLegalMoves) {
			logger.Info().Stringer("side", side).Int("turns", turn-1).Msg("no legal moves, game undecided")
			return Outcome{Turns: turn - 1}, nil
		}
		if err != nil {
			return Outcome{Turns: turn - 1}, fmt.Errorf("turn %d (%s): %w", turn, side, err)
		}
		if !e.state.IsLegal(move) {
			return Outcome{Turns: turn - 1}, fmt.Errorf("turn %d (%s): illegal move %s", turn, side, move)
		}

		e.state = e.state.Apply(move)
		logger.Info().Int("turn", turn).Stringer("side", side).Stringer("move", move).Msg("move played")

		if e.state.KingMissing(side.Opponent()) {
			logger.Info().Stringer("winner", side).Int("turns", turn).Msg("game over")
			return Outcome{Winner: side, Decisive: true, Turns: turn}, nil
		}
	}

	logger.Info().Int("turns", e.maxTurns).Msg("turn cap reached")
	return Outcome{Turns: e.maxTurns}, nil
}
