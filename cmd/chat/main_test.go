package main

import (
	"bytes"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/scoracle-chat/internal/config"
	"github.com/albapepper/scoracle-chat/internal/dataset"
	"github.com/albapepper/scoracle-chat/internal/query"
)

var fixturePath = filepath.Join("..", "..", "internal", "query", "testdata", "sports_results.json")

func testEngine() *query.Engine {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return query.NewDefaultEngine(dataset.NewLoader([]string{fixturePath}, logger), logger)
}

func TestRunAsk(t *testing.T) {
	tests := []struct {
		name string
		opts askOptions
		text string
		want string
	}{
		{
			name: "router follows up",
			text: "who is top of the la liga table",
			want: "The top team in LaLiga is Barcelona with 50 points (16 wins, 2 draws, 1 losses).\n",
		},
		{
			name: "named action with slots",
			opts: askOptions{action: query.ActionGetFixture, slots: query.Slots{Sport: "Football", League: "LaLiga", Matchday: "Matchday 3"}},
			want: "Matchday 3 fixtures in LaLiga:\nBarcelona vs Real Madrid on 2025-01-26 at 21:00\nAtletico Madrid vs Sevilla on 2025-01-25\n",
		},
		{
			name: "player flag becomes an entity",
			opts: askOptions{action: query.ActionGetTopScorers, player: "Campazzo"},
			want: "Campazzo scored 18 points for Real Madrid in the game Real Madrid vs Olympiacos.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, runAsk(&out, testEngine(), tt.opts, tt.text))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestRunAsk_Errors(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, runAsk(&out, testEngine(), askOptions{}, "  "))
	assert.ErrorIs(t, runAsk(&out, testEngine(), askOptions{action: "action_nope"}, "hi"), query.ErrUnknownAction)
	assert.Empty(t, out.String())
}

func TestRunDataset(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, runDataset(&out, dataset.NewLoader([]string{fixturePath}, logger)))

	s := out.String()
	assert.Contains(t, s, "source: "+fixturePath)
	assert.Contains(t, s, "sports=Football,Basketball leagues=4")
	assert.Regexp(t, `Basketball\s+EuroLeague\s+0\s+1\s+1\s+0`, s)

	err := runDataset(&out, dataset.NewLoader([]string{filepath.Join(t.TempDir(), "none.json")}, logger))
	assert.ErrorIs(t, err, dataset.ErrNoCandidate)
}

func TestRootCmd_Ask(t *testing.T) {
	cmd := newRootCmd(&config.Config{})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--dataset", fixturePath, "ask", "--sport", "basketball", "--league", "nba", "--action", query.ActionGetStandings})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Current top 5 standings in NBA:\n1. Boston Celtics - 0.78 win% (32-9)\n2. Cleveland Cavaliers - 0.732 win% (30-11)\n", out.String())
}
