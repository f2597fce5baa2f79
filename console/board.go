// Package console holds the I/O collaborators around the engine core: the
// board-file codec, board rendering, and the interactive human agent. The
// core itself never reads or formats text.
package console

import (
	"fmt"
	"strings"

	"chess/game"
)

// ParseBoard reads the textual board format: eight rows of eight
// characters from rank 8 down to rank 1, '.' for an empty square,
// uppercase piece letters for White and lowercase for Black, followed by a
// line holding W or B for the side to move.
func ParseBoard(input string) (*game.Position, error) {
	lines := strings.Split(strings.ReplaceAll(input, "\r", ""), "\n")
	if len(lines) < 9 {
		return nil, fmt.Errorf("board: want 8 rows and a turn line, got %d lines", len(lines))
	}

	var turn game.Side
	switch turnLine := strings.TrimSpace(lines[8]); turnLine {
	case "W":
		turn = game.White
	case "B":
		turn = game.Black
	default:
		return nil, fmt.Errorf("board: turn line %q: want W or B", turnLine)
	}

	pos := game.NewPosition(turn)
	for row := 0; row < 8; row++ {
		line := lines[row]
		if len(line) != 8 {
			return nil, fmt.Errorf("board: row %d has %d squares, want 8", row+1, len(line))
		}
		for col := 0; col < 8; col++ {
			ch := line[col]
			if ch == '.' {
				continue
			}
			pc, err := parsePiece(ch)
			if err != nil {
				return nil, fmt.Errorf("board: row %d: %w", row+1, err)
			}
			pos.SetPiece(game.Square{File: col, Rank: 7 - row}, pc)
		}
	}
	return pos, nil
}

func parsePiece(ch byte) (game.Piece, error) {
	side := game.Black
	if ch >= 'A' && ch <= 'Z' {
		side = game.White
		ch += 'a' - 'A'
	}
	switch kind := game.PieceKind(ch); kind {
	case game.Pawn, game.Rook, game.Bishop, game.Queen, game.King:
		return game.Piece{Side: side, Kind: kind}, nil
	}
	return game.Piece{}, fmt.Errorf("unknown piece letter %q", string(ch))
}

// FormatBoard renders a position for display: file letters on top, ranks 8
// down to 1, and the side to move at the end.
func FormatBoard(pos *game.Position) string {
	var b strings.Builder
	b.WriteString("   abcdefgh\n\n")
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&b, "%d  ", rank+1)
		for file := 0; file < 8; file++ {
			if pc, ok := pos.PieceAt(game.Square{File: file, Rank: rank}); ok {
				b.WriteByte(pc.Letter())
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "It is %s's turn\n", pos.Turn())
	return b.String()
}
