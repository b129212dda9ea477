package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/justinabrahms/checkers/internal/checkers"
	"github.com/justinabrahms/checkers/internal/config"
	"github.com/justinabrahms/checkers/internal/display"
	"github.com/rs/zerolog"
)

var errQuit = errors.New("quit")

// session drives one local game from line-based input.
type session struct {
	out    io.Writer
	opts   display.Options
	logger zerolog.Logger
	state  checkers.GameState
	plies  int
}

func newSession(out io.Writer, cfg config.DisplayConfig, logger zerolog.Logger) *session {
	return &session{
		out: out,
		opts: display.Options{
			BlackAtBottom:   cfg.BlackAtBottom,
			ShowAnnotations: cfg.ShowAnnotations,
			WideAmbiguous:   cfg.WideAmbiguous,
		},
		logger: logger,
		state:  checkers.InitialState(),
	}
}

// Run reads commands until EOF or "quit", rendering after every one.
func (s *session) Run(in io.Reader) error {
	if err := s.render(); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		err := s.handle(line)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			s.logger.Warn().Err(err).Str("input", line).Msg("Rejected input")
			fmt.Fprintf(s.out, "%v\n", err)
			continue
		}
		if err := s.render(); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

func (s *session) handle(line string) error {
	fields := strings.Fields(line)
	switch strings.ToLower(fields[0]) {
	case "quit", "q", "exit":
		return errQuit
	case "flip":
		s.opts.BlackAtBottom = !s.opts.BlackAtBottom
		s.logger.Debug().Bool("blackAtBottom", s.opts.BlackAtBottom).Msg("Flipped board")
		return nil
	case "help":
		_, err := fmt.Fprintln(s.out, "commands: <x> <y> | flip | help | quit")
		return err
	}

	x, y, err := parseCoordinates(fields)
	if err != nil {
		return err
	}
	return s.click(x, y)
}

func (s *session) click(x, y int) error {
	prev := s.state
	next, err := checkers.HandleClick(prev, x, y)
	if err != nil {
		return fmt.Errorf("click (%d, %d): %w", x, y, err)
	}

	s.logger.Debug().
		Int("x", x).
		Int("y", y).
		Str("player", prev.NextPlayer().String()).
		Msg("Click")

	if sel, ok := prev.Selection().(checkers.Selected); ok && next.NextPlayer() != prev.NextPlayer() {
		s.plies++
		s.logger.Info().
			Str("player", prev.NextPlayer().String()).
			Int("fromX", sel.Cell.X).
			Int("fromY", sel.Cell.Y).
			Int("toX", x).
			Int("toY", y).
			Bool("capture", prev.Board().Count() != next.Board().Count()).
			Int("ply", s.plies).
			Msg("Move played")

		if !next.AnyMoveFound() {
			s.logger.Info().Str("player", next.NextPlayer().String()).Msg("No legal moves for next player")
		}
	}

	s.state = next
	return nil
}

func (s *session) render() error {
	return display.Render(s.out, s.state, s.opts)
}

func parseCoordinates(fields []string) (int, int, error) {
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("expected \"x y\", got %q", strings.Join(fields, " "))
	}
	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid x %q: %w", fields[0], err)
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid y %q: %w", fields[1], err)
	}
	return x, y, nil
}
