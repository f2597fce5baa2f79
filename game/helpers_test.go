package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// position builds a board from algebraic square names for test setups.
func position(t *testing.T, turn Side, pieces map[string]Piece) *Position {
	t.Helper()

	pos := NewPosition(turn)
	for name, pc := range pieces {
		sq, err := ParseSquare(name)
		require.NoError(t, err)
		pos.SetPiece(sq, pc)
	}
	return pos
}

func mustMove(t *testing.T, notation string) Move {
	t.Helper()

	m, err := ParseMove(notation)
	require.NoError(t, err)
	return m
}

// snapshot collects every occupied square for whole-board comparisons.
func snapshot(p *Position) map[Square]Piece {
	pieces := map[Square]Piece{}
	for file := 0; file < 8; file++ {
		for rank := 0; rank < 8; rank++ {
			sq := Square{File: file, Rank: rank}
			if pc, ok := p.PieceAt(sq); ok {
				pieces[sq] = pc
			}
		}
	}
	return pieces
}
