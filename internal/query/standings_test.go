package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStandings(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name string
		turn Turn
		want []string
	}{
		{
			name: "league from text, top five only",
			turn: Turn{Text: "Show me the LaLiga standings"},
			want: []string{"Current top 5 standings in LaLiga:\n" +
				"1. Barcelona - 50 pts (16-2-1)\n" +
				"2. Real Madrid - 48 pts (15-3-1)\n" +
				"3. Atletico Madrid - 40 pts (12-4-3)\n" +
				"4. Athletic Club - 35 pts (10-5-4)\n" +
				"5. Villarreal - 32 pts (9-5-5)"},
		},
		{
			name: "top keyword gives the leader only",
			turn: Turn{Text: "who is top of la liga?"},
			want: []string{"The top team in LaLiga is Barcelona with 50 points (16 wins, 2 draws, 1 losses)."},
		},
		{
			name: "leader with missing stats",
			turn: Turn{Text: "who's leading", Slots: Slots{Sport: "Football", League: "premier league"}},
			want: []string{"The top team in PremierLeague is Liverpool with 50 points (16 wins, 2 draws, 1 losses)."},
		},
		{
			name: "plain query lists every row",
			turn: Turn{Text: "table please", Slots: Slots{Sport: "Football", League: "PremierLeague"}},
			want: []string{"Current top 5 standings in PremierLeague:\n" +
				"1. Liverpool - 50 pts (16-2-1)\n" +
				"2. Arsenal - 40 pts (n/a-n/a-n/a)"},
		},
		{
			name: "basketball columns",
			turn: Turn{Text: "standings", Slots: Slots{Sport: "Basketball", League: "nba"}},
			want: []string{"Current top 5 standings in NBA:\n" +
				"1. Boston Celtics - 0.78 win% (32-9)\n" +
				"2. Cleveland Cavaliers - 0.732 win% (30-11)"},
		},
		{
			name: "basketball leader",
			turn: Turn{Text: "who is first in the nba"},
			want: []string{"The top team in NBA is Boston Celtics with 0.78 win percentage (32-9)."},
		},
		{
			name: "league in text overrides sport slot",
			turn: basketball("premier league table"),
			want: []string{"Current top 5 standings in PremierLeague:\n" +
				"1. Liverpool - 50 pts (16-2-1)\n" +
				"2. Arsenal - 40 pts (n/a-n/a-n/a)"},
		},
		{
			name: "league without standings",
			turn: Turn{Slots: Slots{Sport: "Basketball", League: "EuroLeague"}},
			want: []string{"No standings found for EuroLeague in Basketball."},
		},
		{
			name: "football clarification",
			turn: football("show me the standings"),
			want: []string{"Please specify which football league you're interested in (LaLiga or PremierLeague)."},
		},
		{
			name: "basketball clarification",
			turn: basketball("standings"),
			want: []string{"Please specify which basketball league you're interested in (NBA or EuroLeague)."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, e, ActionGetStandings, tt.turn)
			assert.Equal(t, tt.want, res.Messages)
			assert.Empty(t, res.Events)
		})
	}
}
