package dataset

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `{
  "Football": {
    "PremierLeague": {
      "standings": [
        {"position": 1, "team": "Liverpool", "points": 50, "won": 16, "drawn": 2, "lost": 1},
        {"position": 2, "team": "Arsenal", "points": "40", "won": 12, "drawn": 4, "lost": 3}
      ],
      "Matchday 2": {
        "fixtures": [
          {"home_team": "Arsenal", "away_team": "Chelsea", "date": "2025-03-08", "stadium": "Emirates Stadium", "city": "London"}
        ]
      },
      "Matchday 1": {
        "fixtures": [
          {"home_team": "Liverpool", "away_team": "Everton", "date": "2025-03-01", "score": "2-1",
           "goal_scorers": {"Liverpool": ["Salah", "Nunez"], "Everton": ["Calvert-Lewin"]}},
          {"home_team": "Chelsea", "away_team": "Spurs", "date": "2025-03-02", "score": "Postponed"}
        ]
      }
    },
    "LaLiga": "coming soon"
  },
  "Basketball": {
    "NBA": {
      "Week 1": {
        "games": [
          {"home_team": "Boston Celtics", "away_team": "Los Angeles Lakers", "date": "2025-03-01",
           "score": "110-102", "arena": "TD Garden", "state": "Massachusetts",
           "quarters": ["28-25", "30-27", "25-26", "27-24"],
           "top_scorers": {"Celtics": [{"name": "Tatum", "points": 31}], "Lakers": [{"name": "LeBron James", "points": 28.5}]}}
        ]
      }
    }
  }
}`

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestParse_KeepsDocumentOrder(t *testing.T) {
	ds, err := Parse([]byte(sampleDoc))
	require.NoError(t, err)

	require.Len(t, ds.Sports, 2)
	assert.Equal(t, "Football", ds.Sports[0].Name)
	assert.Equal(t, "Basketball", ds.Sports[1].Name)

	fb := ds.Sport("Football")
	assert.Equal(t, []string{"PremierLeague", "LaLiga"}, fb.LeagueNames())

	pl, ok := fb.League("PremierLeague")
	require.True(t, ok)
	require.Len(t, pl.Matchdays, 2)
	assert.Equal(t, "Matchday 2", pl.Matchdays[0].Name)
	assert.Equal(t, "Matchday 1", pl.Matchdays[1].Name)

	md, ok := pl.Matchday("Matchday 1")
	require.True(t, ok)
	sheet := md.Matches("fixtures")[0].Scorers("goal_scorers")
	require.Len(t, sheet, 2)
	assert.Equal(t, "Liverpool", sheet[0].Team)
	assert.Equal(t, []string{"Salah", "Nunez"}, sheet[0].Names())
	assert.Equal(t, "Everton", sheet[1].Team)
}

func TestParse_NonObjectLeagueKeptEmpty(t *testing.T) {
	ds, err := Parse([]byte(sampleDoc))
	require.NoError(t, err)

	laliga, ok := ds.Sport("Football").League("LaLiga")
	require.True(t, ok)
	assert.Empty(t, laliga.Matchdays)
	assert.Empty(t, laliga.Standings)
}

func TestParse_Standings(t *testing.T) {
	ds, err := Parse([]byte(sampleDoc))
	require.NoError(t, err)

	pl, _ := ds.Sport("Football").League("PremierLeague")
	require.Len(t, pl.Standings, 2)

	top := pl.Standings[0]
	assert.Equal(t, Value("1"), top.Position)
	assert.Equal(t, "Liverpool", top.Team)
	assert.Equal(t, "50", top.Stat("points"))
	assert.Equal(t, "40", pl.Standings[1].Stat("points"))
	assert.Equal(t, "n/a", top.Stat("win_percentage"))
}

func TestParse_BasketballRecord(t *testing.T) {
	ds, err := Parse([]byte(sampleDoc))
	require.NoError(t, err)

	nba, _ := ds.Sport("Basketball").League("NBA")
	md, _ := nba.Matchday("Week 1")
	games := md.Matches("games")
	require.Len(t, games, 1)

	g := games[0]
	assert.Equal(t, "TD Garden", g.Venue("arena"))
	assert.Equal(t, "TD Garden", g.AnyVenue())
	assert.Empty(t, g.Venue("stadium"))
	assert.Equal(t, "Massachusetts", g.Location())
	assert.Equal(t, "28-25, 30-27, 25-26, 27-24", g.QuarterText())

	sheet := g.Scorers("top_scorers")
	require.Len(t, sheet, 2)
	assert.Equal(t, Scorer{Name: "Tatum", Points: "31"}, sheet[0].Scorers[0])
	assert.Equal(t, Value("28.5"), sheet[1].Scorers[0].Points)
	assert.Nil(t, g.Scorers("goal_scorers"))
}

func TestMatch_UpcomingClassification(t *testing.T) {
	score := func(s string) *Value { v := Value(s); return &v }

	tests := []struct {
		name     string
		match    Match
		upcoming bool
	}{
		{"no score field", Match{}, true},
		{"postponed", Match{Score: score("Postponed")}, true},
		{"played", Match{Score: score("2-1")}, false},
		{"played draw", Match{Score: score("0-0")}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.upcoming, tt.match.Upcoming())
			assert.Equal(t, !tt.upcoming, tt.match.Played())
		})
	}
}

func TestParse_Rejects(t *testing.T) {
	for _, doc := range []string{"", "not json", `["Football"]`, `{"Football": {}`, `{} {}`} {
		_, err := Parse([]byte(doc))
		assert.Error(t, err, "doc %q", doc)
	}
}

func TestParse_ScoreNullIsUpcoming(t *testing.T) {
	ds, err := Parse([]byte(`{"Football": {"LaLiga": {"Matchday 1": {"fixtures": [
		{"home_team": "Barcelona", "away_team": "Sevilla", "score": null, "goal_scorers": null}
	]}}}}`))
	require.NoError(t, err)

	n := 0
	ds.Sport("Football").Walk("fixtures", func(_ *League, _ *Matchday, m *Match) bool {
		n++
		assert.True(t, m.Upcoming())
		return true
	})
	assert.Equal(t, 1, n)
}

func TestWalk_OrderAndStop(t *testing.T) {
	ds, err := Parse([]byte(sampleDoc))
	require.NoError(t, err)

	var seen []string
	complete := ds.Sport("Football").Walk("fixtures", func(l *League, md *Matchday, m *Match) bool {
		seen = append(seen, md.Name+":"+m.HomeTeam)
		return true
	})
	assert.True(t, complete)
	assert.Equal(t, []string{"Matchday 2:Arsenal", "Matchday 1:Liverpool", "Matchday 1:Chelsea"}, seen)

	seen = nil
	complete = ds.Sport("Football").Walk("fixtures", func(l *League, md *Matchday, m *Match) bool {
		seen = append(seen, m.HomeTeam)
		return false
	})
	assert.False(t, complete)
	assert.Equal(t, []string{"Arsenal"}, seen)

	// Wrong roster key finds nothing.
	n := 0
	ds.Sport("Football").Walk("games", func(*League, *Matchday, *Match) bool { n++; return true })
	assert.Zero(t, n)
}

func TestDataset_SportMissing(t *testing.T) {
	ds, err := Parse([]byte(`{"Football": {}}`))
	require.NoError(t, err)

	bb := ds.Sport("Basketball")
	require.NotNil(t, bb)
	assert.Empty(t, bb.Leagues)

	var nilDS *Dataset
	assert.NotNil(t, nilDS.Sport("Football"))
}

func TestParseYAML_MatchesJSON(t *testing.T) {
	doc := `
Football:
  PremierLeague:
    standings:
      - position: 1
        team: Liverpool
        points: 50
    Matchday 2:
      fixtures:
        - home_team: Arsenal
          away_team: Chelsea
          date: 2025-03-08
          time: "20:00"
    Matchday 1:
      fixtures:
        - home_team: Liverpool
          away_team: Everton
          date: 2025-03-01
          score: 2-1
          goal_scorers:
            Liverpool: [Salah]
Basketball: {}
`
	ds, err := ParseYAML([]byte(doc))
	require.NoError(t, err)

	pl, ok := ds.Sport("Football").League("PremierLeague")
	require.True(t, ok)
	assert.Equal(t, "50", pl.Standings[0].Stat("points"))
	require.Len(t, pl.Matchdays, 2)
	assert.Equal(t, "Matchday 2", pl.Matchdays[0].Name)

	next := pl.Matchdays[0].Matches("fixtures")[0]
	assert.Equal(t, Value("2025-03-08"), next.Date)
	assert.Equal(t, Value("20:00"), next.Time)
	assert.True(t, next.Upcoming())

	played := pl.Matchdays[1].Matches("fixtures")[0]
	assert.Equal(t, "2-1", played.ScoreText())
	assert.Equal(t, []string{"Salah"}, played.GoalScorers[0].Names())
}

func TestLoader_FirstParsableCandidateWins(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.json")
	good := filepath.Join(dir, "good.json")
	require.NoError(t, os.WriteFile(broken, []byte("{not json"), 0o644))
	require.NoError(t, os.WriteFile(good, []byte(sampleDoc), 0o644))

	l := NewLoader([]string{filepath.Join(dir, "missing.json"), broken, good}, discardLogger())
	ds, path, err := l.LoadWithSource()
	require.NoError(t, err)
	assert.Equal(t, good, path)
	assert.Len(t, ds.Sport("Football").Leagues, 2)
}

func TestLoader_YAMLCandidate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "results.yml")
	require.NoError(t, os.WriteFile(path, []byte("Basketball:\n  NBA: {}\n"), 0o644))

	ds := NewLoader([]string{path}, discardLogger()).Load()
	_, ok := ds.Sport("Basketball").League("NBA")
	assert.True(t, ok)
}

func TestLoader_FallsBackToSkeleton(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte("]]"), 0o644))

	l := NewLoader([]string{filepath.Join(dir, "missing.json"), broken}, discardLogger())

	_, _, err := l.LoadWithSource()
	require.ErrorIs(t, err, ErrNoCandidate)

	ds := l.Load()
	require.Len(t, ds.Sports, 2)
	assert.Equal(t, "Football", ds.Sports[0].Name)
	assert.Equal(t, "Basketball", ds.Sports[1].Name)
	assert.Empty(t, ds.Sports[0].Leagues)
	assert.Empty(t, ds.Sports[1].Leagues)
}

func TestLoader_NoPaths(t *testing.T) {
	_, _, err := NewLoader(nil, nil).LoadWithSource()
	assert.ErrorIs(t, err, ErrNoCandidate)
}

func TestLoader_ReadsFreshEachCall(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Football": {}}`), 0o644))
	l := NewLoader([]string{path}, discardLogger())

	assert.Empty(t, l.Load().Sport("Football").Leagues)

	require.NoError(t, os.WriteFile(path, []byte(`{"Football": {"LaLiga": {}}}`), 0o644))
	assert.Equal(t, []string{"LaLiga"}, l.Load().Sport("Football").LeagueNames())
}

func TestDataset_Summary(t *testing.T) {
	ds, err := Parse([]byte(sampleDoc))
	require.NoError(t, err)

	leagues := ds.Leagues()
	require.Len(t, leagues, 3)
	assert.Equal(t, LeagueSummary{
		Sport: "Football", League: "PremierLeague",
		Standings: 2, Matchdays: 2, Matches: 3, Upcoming: 2,
	}, leagues[0])

	assert.Equal(t, "sports=Football,Basketball leagues=3 matches=4 upcoming=2", ds.Summary())
	assert.Equal(t, "sports=Football,Basketball leagues=0 matches=0 upcoming=0", Skeleton().Summary())
}

func TestValue_Unmarshal(t *testing.T) {
	tests := []struct {
		raw  string
		want Value
	}{
		{`"2-1"`, "2-1"},
		{`50`, "50"},
		{`0.75`, "0.75"},
		{`true`, "true"},
		{`null`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var v Value
			require.NoError(t, v.UnmarshalJSON([]byte(tt.raw)))
			assert.Equal(t, tt.want, v)
		})
	}

	var v Value
	assert.Error(t, v.UnmarshalJSON([]byte(`{"a":1}`)))
	assert.Equal(t, "TBD", Value("").Or("TBD"))
}

func TestParse_MalformedRecordSkippedAlone(t *testing.T) {
	ds, err := Parse([]byte(`{"Football": {"PremierLeague": {
		"standings": [
			"Liverpool",
			{"position": 1, "team": "Arsenal", "points": 3}
		],
		"Matchday 1": {"fixtures": [
			{"home_team": "Arsenal", "away_team": "Chelsea", "score": "1-0"},
			{"home_team": "Everton", "away_team": "Fulham", "quarters": [{"q": 1}]},
			{"home_team": "Brentford", "away_team": "Wolves", "score": {"home": 2}}
		]}
	}}}`))
	require.NoError(t, err)

	pl, ok := ds.Sport("Football").League("PremierLeague")
	require.True(t, ok)
	require.Len(t, pl.Standings, 1)
	assert.Equal(t, "Arsenal", pl.Standings[0].Team)

	md, ok := pl.Matchday("Matchday 1")
	require.True(t, ok)
	matches := md.Matches("fixtures")
	require.Len(t, matches, 1)
	assert.Equal(t, "Arsenal", matches[0].HomeTeam)
	assert.Equal(t, "1-0", matches[0].ScoreText())
}
