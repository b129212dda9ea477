package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/justinabrahms/checkers/internal/checkers"
	"github.com/justinabrahms/checkers/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(out *bytes.Buffer, logs *bytes.Buffer) *session {
	logger := zerolog.New(logs).Level(zerolog.DebugLevel)
	return newSession(out, config.Defaults().Display, logger)
}

func TestSessionPlaysMove(t *testing.T) {
	var out, logs bytes.Buffer
	s := newTestSession(&out, &logs)

	require.NoError(t, s.Run(strings.NewReader("2 2\n1 3\n")))

	board := s.state.Board()
	assert.Equal(t, checkers.Empty, board.At(2, 2))
	assert.Equal(t, checkers.BlackMan, board.At(1, 3))
	assert.Equal(t, checkers.White, s.state.NextPlayer())
	assert.Equal(t, 1, s.plies)

	assert.Contains(t, out.String(), "Next player: White")
	assert.Contains(t, logs.String(), `"message":"Move played"`)
	assert.Contains(t, logs.String(), `"capture":false`)
}

func TestSessionRejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"out of range", "8 0", "invalid coordinate"},
		{"negative", "-1 3", "invalid coordinate"},
		{"not a number", "a b", "invalid x"},
		{"one field", "3", "expected \"x y\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, logs bytes.Buffer
			s := newTestSession(&out, &logs)

			require.NoError(t, s.Run(strings.NewReader(tt.input+"\n")))

			assert.Contains(t, out.String(), tt.want)
			assert.Contains(t, logs.String(), "Rejected input")
			assert.Equal(t, checkers.InitialState(), s.state)
		})
	}
}

func TestSessionQuitStopsReading(t *testing.T) {
	var out, logs bytes.Buffer
	s := newTestSession(&out, &logs)

	require.NoError(t, s.Run(strings.NewReader("2 2\nquit\n1 3\n")))

	assert.Equal(t, checkers.Black, s.state.NextPlayer())
	assert.IsType(t, checkers.Selected{}, s.state.Selection())
	assert.Zero(t, s.plies)
}

func TestSessionFlip(t *testing.T) {
	var out, logs bytes.Buffer
	s := newTestSession(&out, &logs)
	require.True(t, s.opts.BlackAtBottom)

	require.NoError(t, s.Run(strings.NewReader("flip\n")))

	assert.False(t, s.opts.BlackAtBottom)
	frames := strings.Split(out.String(), "Next player: Black")
	require.Len(t, frames, 3)
	assert.True(t, strings.HasPrefix(frames[0], "7 "))
	second := frames[1][strings.Index(frames[1], "\n")+1:]
	assert.True(t, strings.HasPrefix(second, "0 "))
}

func TestParseCoordinates(t *testing.T) {
	x, y, err := parseCoordinates([]string{"3", "4"})
	require.NoError(t, err)
	assert.Equal(t, 3, x)
	assert.Equal(t, 4, y)

	_, _, err = parseCoordinates([]string{"3", "four"})
	assert.Error(t, err)
}
