package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"chess/game"
	"chess/searcher"
)

// ErrQuit is returned when the player asks to stop.
var ErrQuit = errors.New("console: player quit")

// HumanAgent reads four-character moves from In, re-prompting until one is
// legal or the player enters q. When Hint is set, the searcher's
// recommended move and score are shown before each prompt.
type HumanAgent struct {
	In        io.Reader
	Out       io.Writer
	Hint      searcher.Searcher
	HintDepth int

	scanner *bufio.Scanner
}

func (a *HumanAgent) FindMove(pos *game.Position) (game.Move, error) {
	if a.scanner == nil {
		a.scanner = bufio.NewScanner(a.In)
	}

	if len(pos.LegalMoves()) == 0 {
		// Prompting would loop forever; let the driver decide.
		return game.Move{}, searcher.ErrNoLegalMoves
	}

	fmt.Fprint(a.Out, FormatBoard(pos))
	fmt.Fprintf(a.Out, "Current score: %d\n", pos.Evaluate(1))
	if a.Hint != nil {
		move, score, err := a.Hint.BestMove(pos, a.HintDepth)
		if err != nil {
			return game.Move{}, err
		}
		fmt.Fprintf(a.Out, "Best move: %s (score %d)\n", move, score)
	}

	for {
		fmt.Fprint(a.Out, "Indicate your move (or q to stop): ")
		if !a.scanner.Scan() {
			if err := a.scanner.Err(); err != nil {
				return game.Move{}, err
			}
			return game.Move{}, ErrQuit
		}
		input := strings.TrimSpace(a.scanner.Text())
		if input == "q" {
			return game.Move{}, ErrQuit
		}
		move, err := game.ParseMove(input)
		if err != nil || !pos.IsLegal(move) {
			fmt.Fprintln(a.Out, "Incorrect move!")
			continue
		}
		return move, nil
	}
}
