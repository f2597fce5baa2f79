package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"chess/console"
	"chess/engine"
	"chess/searcher"
)

type config struct {
	boardFile string
	depth     int
	minimax   bool
	selfPlay  bool
	verbose   bool
}

func parseFlags() config {
	var cfg config
	flag.StringVar(&cfg.boardFile, "board", "test_board.chb", "board file to load")
	flag.IntVar(&cfg.depth, "depth", 4, "search depth in plies")
	flag.BoolVar(&cfg.minimax, "minimax", false, "search without alpha-beta pruning")
	flag.BoolVar(&cfg.selfPlay, "selfplay", false, "let the engine play both sides")
	flag.BoolVar(&cfg.verbose, "v", false, "log every move")
	flag.Parse()
	return cfg
}

func main() {
	cfg := parseFlags()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if !cfg.verbose {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}

	fmt.Printf("Reading from %s...\n", cfg.boardFile)
	data, err := os.ReadFile(cfg.boardFile)
	if err != nil {
		log.Fatal().Err(err).Msg("read board file")
	}
	pos, err := console.ParseBoard(string(data))
	if err != nil {
		log.Fatal().Err(err).Msg("parse board file")
	}

	var s searcher.Searcher = searcher.NewAlphaBeta()
	if cfg.minimax {
		s = searcher.NewMinimax()
	}

	var white, black engine.Agent
	if cfg.selfPlay {
		white = engine.NewSearchAgent(s, cfg.depth)
		black = engine.NewSearchAgent(s, cfg.depth)
	} else {
		// Advisor mode: the player enters every move and the searcher
		// suggests the best one each turn.
		human := &console.HumanAgent{
			In:        os.Stdin,
			Out:       os.Stdout,
			Hint:      s,
			HintDepth: cfg.depth,
		}
		white, black = human, human
	}

	e := engine.New(pos, white, black)
	outcome, err := e.Run()
	if err != nil {
		if errors.Is(err, console.ErrQuit) {
			fmt.Println("Exiting program...")
			return
		}
		log.Fatal().Err(err).Msg("game aborted")
	}

	fmt.Print(console.FormatBoard(e.State()))
	if outcome.Decisive {
		fmt.Printf("%s wins!\n", outcome.Winner)
	} else {
		fmt.Printf("No winner after %d turns\n", outcome.Turns)
	}
}
