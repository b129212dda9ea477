package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/justinabrahms/checkers/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Parse command line flags
	var (
		showHelp   bool
		configPath string
	)
	flag.BoolVar(&showHelp, "help", false, "Show help information")
	flag.BoolVar(&showHelp, "h", false, "Show help information")
	flag.StringVar(&configPath, "config", "", "Path to a config file")
	flag.Parse()

	if showHelp {
		showHelpMessage()
		return
	}

	// Load config
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	setupLogging(cfg.Development)

	sessionID := uuid.New().String()
	logger := log.With().Str("session", sessionID).Logger()
	logger.Info().
		Bool("blackAtBottom", cfg.Display.BlackAtBottom).
		Msg("Starting checkers session")

	game := newSession(os.Stdout, cfg.Display, logger)
	if err := game.Run(os.Stdin); err != nil {
		logger.Fatal().Err(err).Msg("Session failed")
	}

	logger.Info().Int("plies", game.plies).Msg("Session ended")
}

func setupLogging(dev config.DevelopmentConfig) {
	level, err := zerolog.ParseLevel(dev.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// Logs go to stderr so they never interleave with the board on stdout
	if dev.Debug {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		return
	}
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
}

func showHelpMessage() {
	fmt.Println(`Checkers

DESCRIPTION:
    Two-player 8x8 checkers on one terminal. Pieces are picked and moved
    by entering board coordinates, the same way a click would on a grid.

USAGE:
    checkers [OPTIONS]

OPTIONS:
    -h, --help       Show this help message
    -config PATH     Read configuration from PATH instead of ./config.yaml

COMMANDS:
    x y      Click the cell at column x, row y (both 0-7). Row 0 is
             Black's home row. Click one of your marked pieces to select
             it, click it again to drop it, or click a marked cell to move.
    flip     Toggle which side is drawn at the bottom
    help     Show the command list
    quit     Leave the game

BOARD:
    ⬤ black man    ◯ white man    ♚ black king    ♔ white king
    <⬤> selectable piece   [⬤] selected piece   <*> move destination

CONFIGURATION:
    Example config.yaml:
        display:
          black_at_bottom: true
          show_annotations: true
          wide_ambiguous: false   # true for terminals drawing ◯ two columns wide

        development:
          debug: false
          log_level: info

    Any key can be overridden with an environment variable, e.g.
    CHECKERS_DISPLAY_BLACK_AT_BOTTOM=false or CHECKERS_DEVELOPMENT_LOG_LEVEL=debug.

RULES:
    Black moves first. Men move one step diagonally forward or jump an
    adjacent enemy piece. The turn always passes after one move.`)
}
