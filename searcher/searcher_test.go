package searcher

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"chess/game"
)

func position(t *testing.T, turn game.Side, pieces map[string]game.Piece) *game.Position {
	t.Helper()

	pos := game.NewPosition(turn)
	for name, pc := range pieces {
		sq, err := game.ParseSquare(name)
		require.NoError(t, err)
		pos.SetPiece(sq, pc)
	}
	return pos
}

func mustMove(t *testing.T, notation string) game.Move {
	t.Helper()

	m, err := game.ParseMove(notation)
	require.NoError(t, err)
	return m
}

// rookEndgame is a position where White can capture the black king
// outright: rook on a1, clear a-file, black king on a8.
func rookEndgame(t *testing.T) *game.Position {
	t.Helper()
	return position(t, game.White, map[string]game.Piece{
		"a1": {Side: game.White, Kind: game.Rook},
		"e1": {Side: game.White, Kind: game.King},
		"a8": {Side: game.Black, Kind: game.King},
	})
}

// blockedBlack has both kings on the board but no legal move for Black.
func blockedBlack(t *testing.T) *game.Position {
	t.Helper()
	return position(t, game.Black, map[string]game.Piece{
		"a1": {Side: game.Black, Kind: game.King},
		"a2": {Side: game.Black, Kind: game.Pawn},
		"b1": {Side: game.Black, Kind: game.Pawn},
		"b2": {Side: game.Black, Kind: game.Pawn},
		"h8": {Side: game.White, Kind: game.King},
	})
}

func searchers() map[string]Searcher {
	return map[string]Searcher{
		"minimax":    NewMinimax(),
		"alpha-beta": NewAlphaBeta(),
	}
}

func TestBestMoveNoLegalMoves(t *testing.T) {
	for name, s := range searchers() {
		t.Run(name, func(t *testing.T) {
			pos := blockedBlack(t)

			_, _, err := s.BestMove(pos, 3)

			require.ErrorIs(t, err, ErrNoLegalMoves,
				"an empty root move list must be a distinct failure, not a pick from an empty slice")
		})
	}
}

func TestBestMoveFindsKingCapture(t *testing.T) {
	for name, s := range searchers() {
		t.Run(name, func(t *testing.T) {
			pos := rookEndgame(t)

			move, score, err := s.BestMove(pos, 1)

			require.NoError(t, err)
			require.Equal(t, mustMove(t, "a1a8"), move)
			require.Equal(t, 160, score, "white keeps rook and king, black loses everything")
		})
	}
}

func TestBestMovePrefersFasterWin(t *testing.T) {
	// The capture is available immediately; at depth 3 its leaf weight is 3,
	// so it must outscore any line that delays the capture.
	for name, s := range searchers() {
		t.Run(name, func(t *testing.T) {
			pos := rookEndgame(t)

			move, score, err := s.BestMove(pos, 3)

			require.NoError(t, err)
			require.Equal(t, mustMove(t, "a1a8"), move)
			require.Equal(t, 480, score)
		})
	}
}

func TestBestMoveBlackMinimizes(t *testing.T) {
	pos := position(t, game.Black, map[string]game.Piece{
		"d1": {Side: game.White, Kind: game.Rook},
		"e1": {Side: game.White, Kind: game.King},
		"d8": {Side: game.Black, Kind: game.Queen},
		"e8": {Side: game.Black, Kind: game.King},
	})

	for name, s := range searchers() {
		t.Run(name, func(t *testing.T) {
			move, score, err := s.BestMove(pos, 1)

			require.NoError(t, err)
			require.Equal(t, mustMove(t, "d8d1"), move, "black should grab the rook")
			require.Equal(t, -50, score)
		})
	}
}

func TestBestMoveTieBreak(t *testing.T) {
	// Kings only: every move scores zero, so the first generated legal move
	// must win the tie, for both strategies, every time.
	pos := position(t, game.White, map[string]game.Piece{
		"e1": {Side: game.White, Kind: game.King},
		"e8": {Side: game.Black, Kind: game.King},
	})
	first := pos.LegalMoves()[0]

	for name, s := range searchers() {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 3; i++ {
				move, score, err := s.BestMove(pos, 1)

				require.NoError(t, err)
				require.Equal(t, first, move)
				require.Equal(t, 0, score)
			}
		})
	}
}

func TestBestMoveClampsDepth(t *testing.T) {
	for name, s := range searchers() {
		t.Run(name, func(t *testing.T) {
			pos := rookEndgame(t)

			move, score, err := s.BestMove(pos, 0)

			require.NoError(t, err)
			require.Equal(t, mustMove(t, "a1a8"), move, "depth below one behaves like depth one")
			require.Equal(t, 160, score)
		})
	}
}

func TestMinimaxAlphaBetaParity(t *testing.T) {
	positions := map[string]*game.Position{
		"kings only, black to move": position(t, game.Black, map[string]game.Piece{
			"e1": {Side: game.White, Kind: game.King},
			"e8": {Side: game.Black, Kind: game.King},
		}),
		"rook endgame, white to move": rookEndgame(t),
		"middlegame, white to move": position(t, game.White, map[string]game.Piece{
			"a1": {Side: game.White, Kind: game.Rook},
			"c3": {Side: game.White, Kind: game.Bishop},
			"e2": {Side: game.White, Kind: game.Pawn},
			"f3": {Side: game.White, Kind: game.Pawn},
			"e1": {Side: game.White, Kind: game.King},
			"h1": {Side: game.White, Kind: game.Queen},
			"b5": {Side: game.Black, Kind: game.Rook},
			"c7": {Side: game.Black, Kind: game.Pawn},
			"f7": {Side: game.Black, Kind: game.Queen},
			"e8": {Side: game.Black, Kind: game.King},
		}),
		"middlegame, black to move": position(t, game.Black, map[string]game.Piece{
			"a1": {Side: game.White, Kind: game.Rook},
			"c3": {Side: game.White, Kind: game.Bishop},
			"e2": {Side: game.White, Kind: game.Pawn},
			"e1": {Side: game.White, Kind: game.King},
			"b5": {Side: game.Black, Kind: game.Rook},
			"c7": {Side: game.Black, Kind: game.Pawn},
			"f7": {Side: game.Black, Kind: game.Queen},
			"e8": {Side: game.Black, Kind: game.King},
		}),
	}

	minimax := NewMinimax()
	alphabeta := NewAlphaBeta()

	for name, pos := range positions {
		for depth := 1; depth <= 3; depth++ {
			t.Run(fmt.Sprintf("%s, depth %d", name, depth), func(t *testing.T) {
				wantMove, wantScore, wantErr := minimax.BestMove(pos, depth)
				gotMove, gotScore, gotErr := alphabeta.BestMove(pos, depth)

				require.Equal(t, wantErr, gotErr, "depth %d", depth)
				require.Equal(t, wantMove, gotMove, "depth %d: pruning must not change the chosen move", depth)
				require.Equal(t, wantScore, gotScore, "depth %d: pruning must not change the score", depth)
			})
		}
	}
}
