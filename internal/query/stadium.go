package query

import (
	"fmt"
	"strings"

	"github.com/albapepper/scoracle-chat/internal/dataset"
	"github.com/albapepper/scoracle-chat/internal/sport"
)

var stadiumOrder = []dimension{byTeam, byMatchday}

// basketballVenueTeams pin a venue question to Basketball, even over an
// explicit sport slot.
var basketballVenueTeams = []string{"celtics", "lakers"}

func (e *Engine) stadium(t Turn) *Result {
	r := e.newRequest(t)
	if s, ok := e.vocab.VenueSport(r.text); ok && s != r.sport {
		r.use(e, s)
		r.explicit = false
	}
	if r.sport != sport.Basketball && sport.ContainsAny(r.text, basketballVenueTeams) {
		r.use(e, sport.Basketball)
	}

	teamName := e.resolveTeam(r)
	in := inputs{
		teams:    teamsOf(teamName),
		matchday: e.resolveMatchday(r),
	}
	p := selectPlan(in, stadiumOrder,
		fmt.Sprintf("Please specify either a team or matchday to get %s information.", r.profile.VenueNoun))
	e.logPlan(ActionGetStadium, r, p)

	switch p := p.(type) {
	case lookupTeam:
		return e.teamVenue(r, p.teams[0])
	case lookupMatchday:
		return e.matchdayVenues(r, p.matchday)
	case clarify:
		return reply(p.reason)
	}
	return &Result{}
}

// teamVenue tries, in order: the team's first match as home side, its
// first upcoming away match, then the static arena directory.
func (e *Engine) teamVenue(r *request, teamName string) *Result {
	p := r.profile
	table := e.source.Load().Sport(string(r.sport))

	var home *dataset.Match
	table.Walk(p.RosterKey, func(_ *dataset.League, _ *dataset.Matchday, m *dataset.Match) bool {
		if e.sameClub(teamName, m.HomeTeam) {
			home = m
			return false
		}
		return true
	})
	if home != nil {
		var b strings.Builder
		fmt.Fprintf(&b, "%s plays their home games at %s%s.", home.HomeTeam, venueName(home, p.VenueKey), inPlace(home))
		if home.Upcoming() {
			fmt.Fprintf(&b, "\n\nTheir next home %s is against %s on %s%s.",
				p.MatchNoun, home.AwayTeam, home.Date.Or("TBD"), atTime(home))
		}
		return reply(b.String())
	}

	var away *dataset.Match
	table.Walk(p.RosterKey, func(_ *dataset.League, _ *dataset.Matchday, m *dataset.Match) bool {
		if m.Upcoming() && e.sameClub(teamName, m.AwayTeam) {
			away = m
			return false
		}
		return true
	})
	if away != nil {
		return reply(fmt.Sprintf("%s's next away %s is against %s at %s%s on %s%s.",
			away.AwayTeam, p.MatchNoun, away.HomeTeam, venueName(away, p.VenueKey), inPlace(away),
			away.Date.Or("TBD"), atTime(away)))
	}

	if p.ArenaFallback {
		if v, ok := e.arenas.Lookup(e.teams.Canonicalize(teamName)); ok {
			return reply(fmt.Sprintf("%s plays their home games at %s in %s.", v.Team, v.Name, v.Location))
		}
	}

	return reply(fmt.Sprintf("I couldn't find %s information for %s.", p.VenueNoun, teamName))
}

// matchdayVenues lists every venue of a round, one message per league.
func (e *Engine) matchdayVenues(r *request, matchday string) *Result {
	p := r.profile
	table := e.source.Load().Sport(string(r.sport))

	var withData, blocks []string
	for i := range table.Leagues {
		l := &table.Leagues[i]
		md, ok := l.Matchday(matchday)
		if !ok {
			continue
		}
		withData = append(withData, l.Name)

		matches := md.Matches(p.RosterKey)
		if len(matches) == 0 {
			continue
		}
		lines := make([]string, len(matches))
		for j := range matches {
			m := &matches[j]
			line := fmt.Sprintf("%s at %s", pairing(m), venueName(m, p.VenueKey))
			if loc := m.Location(); loc != "" {
				line += ", " + loc
			}
			lines[j] = line
		}
		blocks = append(blocks, block(fmt.Sprintf("%s information for %s in %s:", p.VenueTitle, matchday, l.Name), lines))
	}

	if len(blocks) == 0 {
		return reply(fmt.Sprintf("No %s information found for %s in any %s league.", p.VenueNoun, matchday, r.sport.Lower()))
	}

	res := &Result{}
	if note := missingNote(matchday, withData, table.LeagueNames()); note != "" {
		res.say(note)
	}
	for _, b := range blocks {
		res.say(b)
	}
	return res
}

func venueName(m *dataset.Match, key string) string {
	if v := m.Venue(key); v != "" {
		return v
	}
	return "Unknown venue"
}
