package sport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Sport
		ok   bool
	}{
		{"Football", Football, true},
		{"football", Football, true},
		{"soccer", Football, true},
		{" BASKETBALL ", Basketball, true},
		{"hockey", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Parse(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDisambiguate(t *testing.T) {
	v := NewVocabulary()

	tests := []struct {
		name     string
		explicit string
		text     string
		want     Sport
	}{
		{"explicit wins over text", "Football", "lakers celtics nba arena", Football},
		{"explicit soccer", "soccer", "", Football},
		{"explicit unknown returned as given", "Hockey", "nba", Sport("Hockey")},
		{"basketball majority", "", "How did the Lakers do in the NBA?", Basketball},
		{"football majority", "", "premier league table for arsenal", Football},
		{"tie defaults to football", "", "arena stadium", Football},
		{"silence defaults to football", "", "hello there", Football},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.Disambiguate(tt.explicit, tt.text))
		})
	}
}

func TestDisambiguate_Deterministic(t *testing.T) {
	v := NewVocabulary()
	text := "lakers vs barcelona at the arena"
	first := v.Disambiguate("", text)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, v.Disambiguate("", text))
	}
}

func TestProfile_FallsBackToDefault(t *testing.T) {
	v := NewVocabulary()
	assert.Equal(t, Football, v.Profile(Sport("Hockey")).Sport)
	assert.Equal(t, Basketball, v.Profile(Basketball).Sport)
}

func TestLeagueFromText(t *testing.T) {
	v := NewVocabulary()

	tests := []struct {
		text   string
		league string
		sport  Sport
		ok     bool
	}{
		{"show me la liga", "LaLiga", Football, true},
		{"premier league table", "PremierLeague", Football, true},
		{"nba standings", "NBA", Basketball, true},
		{"euro league games", "EuroLeague", Basketball, true},
		{"what's on tonight", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			league, s, ok := v.LeagueFromText(tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.league, league)
			assert.Equal(t, tt.sport, s)
		})
	}
}

func TestNormalizeLeague(t *testing.T) {
	v := NewVocabulary()
	fb := v.Profile(Football)
	bb := v.Profile(Basketball)

	assert.Equal(t, "LaLiga", fb.NormalizeLeague("la liga"))
	assert.Equal(t, "PremierLeague", fb.NormalizeLeague("premierleague"))
	assert.Equal(t, "EuroLeague", bb.NormalizeLeague("Euro League"))
	assert.Equal(t, "NBA", bb.NormalizeLeague("nba"))
	assert.Equal(t, "Serie A", fb.NormalizeLeague(" Serie A "))
}

func TestNormalizeMatchday(t *testing.T) {
	v := NewVocabulary()
	fb := v.Profile(Football)
	bb := v.Profile(Basketball)

	assert.Equal(t, "Matchday 3", fb.NormalizeMatchday("matchday 3"))
	assert.Equal(t, "Week 3", bb.NormalizeMatchday("Matchday 3"))
	assert.Equal(t, "Week 12", bb.NormalizeMatchday("week 12"))
	assert.Equal(t, "Round 2", bb.NormalizeMatchday("ROUND 2"))
	// Only matchday-to-week is rewritten.
	assert.Equal(t, "Week 4", fb.NormalizeMatchday("week 4"))
	assert.Equal(t, "Opening Day", fb.NormalizeMatchday("Opening Day"))
	assert.Empty(t, fb.NormalizeMatchday("  "))
}

func TestMatchdayFromText(t *testing.T) {
	v := NewVocabulary()

	assert.Equal(t, "Matchday 5", v.Profile(Football).MatchdayFromText("fixtures for matchday 5"))
	assert.Equal(t, "Week 2", v.Profile(Basketball).MatchdayFromText("games in week 2"))
	assert.Equal(t, "Round 3", v.Profile(Basketball).MatchdayFromText("week 2 or round 3"))
	assert.Empty(t, v.Profile(Football).MatchdayFromText("week 2"))
}

func TestTeamsFromText(t *testing.T) {
	v := NewVocabulary()
	bb := v.Profile(Basketball)

	assert.Equal(t, []string{"lakers", "celtics"}, bb.TeamsFromText("did the lakers beat the celtics"))
	assert.Equal(t, []string{"phoenix suns"}, bb.TeamsFromText("phoenix suns next game"))
	assert.Equal(t, "barcelona", v.Profile(Football).TeamFromText("when do barcelona play"))
	assert.Empty(t, v.Profile(Football).TeamsFromText("nothing here"))
}

func TestPlayerFromText(t *testing.T) {
	v := NewVocabulary()

	assert.Equal(t, "salah", v.Profile(Football).PlayerFromText("did salah score"))
	assert.Equal(t, "jokić", v.Profile(Basketball).PlayerFromText(Fold("how many points did Jokić get")))
	assert.Empty(t, v.Profile(Basketball).PlayerFromText("salah"))
}

func TestVenueSport(t *testing.T) {
	v := NewVocabulary()

	s, ok := v.VenueSport("which arena do they play in")
	require.True(t, ok)
	assert.Equal(t, Basketball, s)

	s, ok = v.VenueSport("soccer stadium")
	require.True(t, ok)
	assert.Equal(t, Football, s)

	_, ok = v.VenueSport("stadium or arena")
	assert.False(t, ok)
}

func TestIntent(t *testing.T) {
	v := NewVocabulary()

	tests := []struct {
		text string
		want Intent
	}{
		{"show me the standings", IntentStandings},
		{"league table and next match", IntentStandings},
		{"when is the next match", IntentFixture},
		{"what was the score", IntentScore},
		{"top goal getters", IntentScorers},
		{"which stadium", IntentStadium},
		{"hello", IntentNone},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, v.Intent(tt.text))
		})
	}
}

func TestKeywordHelpers(t *testing.T) {
	v := NewVocabulary()

	assert.True(t, v.AsksForTop("who's leading la liga"))
	assert.False(t, v.AsksForTop("la liga standings"))
	assert.True(t, v.AsksUpcoming("upcoming games"))
	assert.True(t, v.AsksDidWin("did barcelona win"))
	assert.False(t, v.AsksDidWin("barcelona win"))
}
