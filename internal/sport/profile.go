package sport

import (
	"fmt"
	"regexp"
	"strings"
)

// League is a canonical league key and the phrases that name it.
type League struct {
	Key     string
	Aliases []string
}

// StandingFormat renders a standings row. Fields name the stat keys fed to
// the format strings after the leading league/team (Leader) or
// position/team (Row) arguments.
type StandingFormat struct {
	Leader string
	Row    string
	Fields []string
}

// Profile is the per-sport vocabulary record: document keys, nouns used in
// replies, and the fixed lists scanned out of message text.
type Profile struct {
	Sport Sport

	// Results document keys
	RosterKey string // matchday list: fixtures | games
	ScorerKey string // goal_scorers | top_scorers
	VenueKey  string // stadium | arena

	// Reply vocabulary
	MatchNoun   string // match | game
	MatchPlural string // matches | games
	FixtureNoun string // fixture | game
	RosterNoun  string // fixtures | games
	VenueNoun   string // stadium | arena
	VenueTitle  string // Stadium | Arena
	ScorerTitle string // Goal scorers | Top scorers
	ScoringNoun string // goals | points
	ScorerInfo  string // goal scorer information | scoring information

	// PlayerHit formats a scorer found by name. Arguments: scorer, points,
	// team, home, away.
	PlayerHit string
	// EmptySheet formats a played match without scorers. Arguments: home,
	// away.
	EmptySheet string

	// PointsScoring is set when scorer entries carry point totals.
	PointsScoring bool
	// ScorersPerTeam caps scorer lists in summaries; 0 shows all.
	ScorersPerTeam int
	// ArenaFallback enables the static venue directory.
	ArenaFallback bool

	Leagues   []League
	Standings StandingFormat

	terms         []string
	venueTerms    []string
	teams         []string
	players       []string
	matchdayScans []*regexp.Regexp
	rewrites      map[string]string
}

// LeagueKeys lists the canonical league keys in declaration order.
func (p *Profile) LeagueKeys() []string {
	keys := make([]string, len(p.Leagues))
	for i, l := range p.Leagues {
		keys[i] = l.Key
	}
	return keys
}

// NormalizeLeague maps a league slot value onto a canonical key of this
// sport. Unrecognized values come back trimmed.
func (p *Profile) NormalizeLeague(s string) string {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	for _, l := range p.Leagues {
		if lower == strings.ToLower(l.Key) {
			return l.Key
		}
		for _, a := range l.Aliases {
			if lower == a {
				return l.Key
			}
		}
	}
	return s
}

// LeagueFromText returns the first league whose alias occurs in text.
func (p *Profile) LeagueFromText(text string) string {
	for _, l := range p.Leagues {
		if ContainsAny(text, l.Aliases) {
			return l.Key
		}
	}
	return ""
}

// TeamFromText returns the first listed team mentioned in text.
func (p *Profile) TeamFromText(text string) string {
	for _, t := range p.teams {
		if strings.Contains(text, t) {
			return t
		}
	}
	return ""
}

// TeamsFromText returns every listed team mentioned in text, skipping names
// that only occur inside a longer name already found.
func (p *Profile) TeamsFromText(text string) []string {
	var found []string
	for _, t := range p.teams {
		if !strings.Contains(text, t) {
			continue
		}
		nested := false
		for _, f := range found {
			if strings.Contains(f, t) {
				nested = true
				break
			}
		}
		if !nested {
			found = append(found, t)
		}
	}
	return found
}

// PlayerFromText returns the first listed player mentioned in text.
func (p *Profile) PlayerFromText(text string) string {
	for _, pl := range p.players {
		if strings.Contains(text, pl) {
			return pl
		}
	}
	return ""
}

// MatchdayFromText finds a round reference ("matchday 3", "week 12").
// When several patterns match, the last one listed wins.
func (p *Profile) MatchdayFromText(text string) string {
	var md string
	for _, re := range p.matchdayScans {
		if m := re.FindStringSubmatch(text); m != nil {
			md = fmt.Sprintf("%s %s", title(m[1]), m[2])
		}
	}
	return md
}

var roundPattern = regexp.MustCompile(`(?i)^(matchday|week|round)\s*(\d+)$`)

// NormalizeMatchday canonicalizes a round name ("matchday 3" becomes
// "Matchday 3") and rewrites vocabulary this sport does not use, so a
// basketball "Matchday 3" becomes "Week 3".
func (p *Profile) NormalizeMatchday(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if m := roundPattern.FindStringSubmatch(s); m != nil {
		word := strings.ToLower(m[1])
		if to, ok := p.rewrites[word]; ok {
			return to + " " + m[2]
		}
		return title(word) + " " + m[2]
	}
	lower := strings.ToLower(s)
	for from, to := range p.rewrites {
		if strings.Contains(lower, from) {
			return to + " " + strings.TrimSpace(strings.ReplaceAll(lower, from, ""))
		}
	}
	return s
}

func newProfile(p Profile, terms, venueTerms, teams, players, roundWords []string, rewrites map[string]string) *Profile {
	p.terms = terms
	p.venueTerms = venueTerms
	p.teams = teams
	p.players = players
	p.rewrites = rewrites
	for _, w := range roundWords {
		p.matchdayScans = append(p.matchdayScans, regexp.MustCompile(`(?i)(`+w+`)\s+(\d+)`))
	}
	return &p
}

func footballProfile() *Profile {
	return newProfile(Profile{
		Sport:       Football,
		RosterKey:   "fixtures",
		ScorerKey:   "goal_scorers",
		VenueKey:    "stadium",
		MatchNoun:   "match",
		MatchPlural: "matches",
		FixtureNoun: "fixture",
		RosterNoun:  "fixtures",
		VenueNoun:   "stadium",
		VenueTitle:  "Stadium",
		ScorerTitle: "Goal scorers",
		ScoringNoun: "goals",
		ScorerInfo:  "goal scorer information",
		PlayerHit:   "%[1]s scored for %[3]s in the match %[4]s vs %[5]s.",
		EmptySheet:  "No goals scored in the match %s vs %s.",
		Leagues: []League{
			{Key: "LaLiga", Aliases: []string{"laliga", "la liga"}},
			{Key: "PremierLeague", Aliases: []string{"premierleague", "premier league", "premier"}},
		},
		Standings: StandingFormat{
			Leader: "The top team in %s is %s with %s points (%s wins, %s draws, %s losses).",
			Row:    "%s. %s - %s pts (%s-%s-%s)",
			Fields: []string{"points", "won", "drawn", "lost"},
		},
	},
		[]string{"laliga", "premier", "football", "soccer", "barcelona", "madrid",
			"goal", "stadium", "liverpool", "manchester", "arsenal", "chelsea"},
		[]string{"football", "soccer", "stadium"},
		[]string{"barcelona", "real madrid", "manchester united", "manchester city",
			"liverpool", "arsenal", "chelsea", "atletico"},
		[]string{"lewandowski", "salah", "haaland", "messi", "ronaldo", "benzema"},
		[]string{"matchday"},
		nil,
	)
}

func basketballProfile() *Profile {
	return newProfile(Profile{
		Sport:          Basketball,
		RosterKey:      "games",
		ScorerKey:      "top_scorers",
		VenueKey:       "arena",
		MatchNoun:      "game",
		MatchPlural:    "games",
		FixtureNoun:    "game",
		RosterNoun:     "games",
		VenueNoun:      "arena",
		VenueTitle:     "Arena",
		ScorerTitle:    "Top scorers",
		ScoringNoun:    "points",
		ScorerInfo:     "scoring information",
		PlayerHit:      "%[1]s scored %[2]s points for %[3]s in the game %[4]s vs %[5]s.",
		EmptySheet:     "No scoring information available for the game %s vs %s.",
		PointsScoring:  true,
		ScorersPerTeam: 3,
		ArenaFallback:  true,
		Leagues: []League{
			{Key: "NBA", Aliases: []string{"nba"}},
			{Key: "EuroLeague", Aliases: []string{"euroleague", "euro league"}},
		},
		Standings: StandingFormat{
			Leader: "The top team in %s is %s with %s win percentage (%s-%s).",
			Row:    "%s. %s - %s win%% (%s-%s)",
			Fields: []string{"win_percentage", "won", "lost"},
		},
	},
		[]string{"nba", "euroleague", "points", "basketball", "celtics", "lakers",
			"warriors", "arena", "boston celtics", "los angeles lakers",
			"golden state", "bulls", "heat"},
		[]string{"basketball", "nba", "arena"},
		[]string{"lakers", "los angeles", "celtics", "boston", "warriors", "bulls",
			"heat", "bucks", "phoenix suns", "phoenix", "nuggets", "mavericks", "nets", "knicks"},
		[]string{"lebron", "curry", "jokić", "antetokounmpo", "tatum"},
		[]string{"week", "round"},
		map[string]string{"matchday": "Week"},
	)
}
