package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStadium(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name string
		turn Turn
		want []string
	}{
		{
			name: "first home match",
			turn: withEntities(football(""), teamEntity("Barcelona")),
			want: []string{"Barcelona plays their home games at Camp Nou in Barcelona."},
		},
		{
			name: "upcoming home match adds the opponent",
			turn: withEntities(football(""), teamEntity("Chelsea")),
			want: []string{"Chelsea plays their home games at Stamford Bridge in London.\n\n" +
				"Their next home match is against Liverpool on 2025-01-20."},
		},
		{
			name: "only an away match",
			turn: basketball("where do the bucks play"),
			want: []string{"Milwaukee Bucks's next away game is against Los Angeles Lakers at Crypto.com Arena in Los Angeles on 2025-01-14 at 22:00."},
		},
		{
			name: "arena directory",
			turn: Turn{Text: "what arena do the knicks play in"},
			want: []string{"New York Knicks plays their home games at Madison Square Garden in New York, New York."},
		},
		{
			name: "stadium word does not pin a basketball team to football",
			turn: Turn{Text: "which stadium do the celtics play in"},
			want: []string{"Boston Celtics plays their home games at TD Garden in Massachusetts."},
		},
		{
			name: "celtics override a football slot",
			turn: Turn{Text: "where do the celtics play", Slots: Slots{Sport: "Football"}},
			want: []string{"Boston Celtics plays their home games at TD Garden in Massachusetts."},
		},
		{
			name: "unknown team",
			turn: withEntities(football(""), teamEntity("Getafe")),
			want: []string{"I couldn't find stadium information for Getafe."},
		},
		{
			name: "matchday venues",
			turn: Turn{Slots: Slots{Sport: "Football", Matchday: "Matchday 3"}},
			want: []string{
				"Note: Matchday 3 information is only available for LaLiga. No data for PremierLeague.",
				"Stadium information for Matchday 3 in LaLiga:\n" +
					"Barcelona vs Real Madrid at Camp Nou, Barcelona\n" +
					"Atletico Madrid vs Sevilla at Metropolitano, Madrid",
			},
		},
		{
			name: "arena vocabulary for basketball rounds",
			turn: Turn{Slots: Slots{Sport: "Basketball", Matchday: "Round 1"}},
			want: []string{
				"Note: Round 1 information is only available for EuroLeague. No data for NBA.",
				"Arena information for Round 1 in EuroLeague:\n" +
					"Real Madrid vs Olympiacos at WiZink Center, Madrid",
			},
		},
		{
			name: "nothing to go on",
			turn: football("where is it"),
			want: []string{"Please specify either a team or matchday to get stadium information."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, e, ActionGetStadium, tt.turn)
			assert.Equal(t, tt.want, res.Messages)
		})
	}
}
