package query

import (
	"fmt"
	"sort"

	"github.com/albapepper/scoracle-chat/internal/dataset"
)

const (
	upcomingShown = 5
	// Undated matches sort last in upcoming lists and never count as the
	// most recent result.
	undatedLast  = "9999-99-99"
	undatedFirst = "0000-00-00"
)

var fixtureOrder = []dimension{byTeam, byMatchday, byUpcoming}

func (e *Engine) fixture(t Turn) *Result {
	r := e.newRequest(t)
	league := e.resolveLeague(r)
	teamName := e.resolveTeam(r)
	in := inputs{
		teams:    teamsOf(teamName),
		matchday: e.resolveMatchday(r),
		league:   league,
		upcoming: e.vocab.AsksUpcoming(r.text),
	}

	p := selectPlan(in, fixtureOrder,
		fmt.Sprintf("Please provide more details about the fixtures you're looking for in %s.", r.sport))
	e.logPlan(ActionGetFixture, r, p)

	switch p := p.(type) {
	case lookupTeam:
		return e.teamFixture(r, p.teams[0])
	case lookupMatchday:
		return e.matchdayFixtures(r, p.matchday, p.league)
	case lookupGeneral:
		return e.upcomingFixtures(r, p.league)
	case clarify:
		return reply(p.reason)
	}
	return &Result{}
}

// teamFixture reports the first upcoming match for the team in document
// order, else its latest played match by date.
func (e *Engine) teamFixture(r *request, teamName string) *Result {
	table := e.source.Load().Sport(string(r.sport))
	p := r.profile

	var next *dataset.Match
	table.Walk(p.RosterKey, func(_ *dataset.League, _ *dataset.Matchday, m *dataset.Match) bool {
		if m.Upcoming() && e.involves(teamName, m) {
			next = m
			return false
		}
		return true
	})
	if next != nil {
		return reply(fmt.Sprintf("Next %s: %s on %s%s, %s",
			p.FixtureNoun, pairing(next), next.Date.Or("Date not specified"), atTime(next), venueOrUnknown(next)))
	}

	var recent *dataset.Match
	latest := undatedFirst
	table.Walk(p.RosterKey, func(_ *dataset.League, _ *dataset.Matchday, m *dataset.Match) bool {
		if m.Played() && e.involves(teamName, m) {
			if d := m.Date.Or(undatedFirst); d > latest {
				latest, recent = d, m
			}
		}
		return true
	})
	if recent != nil {
		return reply(fmt.Sprintf("Most recent %s: %s ended %s on %s%s, %s",
			p.MatchNoun, pairing(recent), recent.ScoreText(), recent.Date.Or("Date not specified"), atTime(recent), venueOrUnknown(recent)))
	}

	return reply(fmt.Sprintf("Couldn't find any matches for %s.", e.teams.Canonicalize(teamName)))
}

// matchdayFixtures lists a round league by league. Without a league filter
// a note names the leagues that have no data for the round.
func (e *Engine) matchdayFixtures(r *request, matchday, league string) *Result {
	table := e.source.Load().Sport(string(r.sport))
	p := r.profile

	var withData, blocks []string
	for i := range table.Leagues {
		l := &table.Leagues[i]
		if league != "" && l.Name != league {
			continue
		}
		md, ok := l.Matchday(matchday)
		if !ok {
			continue
		}
		matches := md.Matches(p.RosterKey)
		if len(matches) == 0 {
			continue
		}
		lines := make([]string, len(matches))
		for j := range matches {
			m := &matches[j]
			lines[j] = fmt.Sprintf("%s on %s%s", pairing(m), m.Date.Or("TBD"), atTime(m))
		}
		blocks = append(blocks, block(fmt.Sprintf("%s %s in %s:", matchday, p.RosterNoun, l.Name), lines))
		withData = append(withData, l.Name)
	}

	if len(blocks) == 0 {
		return reply(fmt.Sprintf("No %s found for %s in %s.", p.RosterNoun, matchday, r.sport))
	}

	res := &Result{}
	if league == "" {
		if note := missingNote(matchday, withData, table.LeagueNames()); note != "" {
			res.say(note)
		}
	}
	for _, b := range blocks {
		res.say(b)
	}
	return res
}

type dated struct {
	matchday string
	match    *dataset.Match
}

// upcomingFixtures lists the next few unplayed matches per league, earliest
// first.
func (e *Engine) upcomingFixtures(r *request, league string) *Result {
	table := e.source.Load().Sport(string(r.sport))
	p := r.profile

	res := &Result{}
	for i := range table.Leagues {
		l := &table.Leagues[i]
		if league != "" && l.Name != league {
			continue
		}

		var upcoming []dated
		l.Walk(p.RosterKey, func(_ *dataset.League, md *dataset.Matchday, m *dataset.Match) bool {
			if m.Upcoming() {
				upcoming = append(upcoming, dated{matchday: md.Name, match: m})
			}
			return true
		})
		if len(upcoming) == 0 {
			continue
		}

		sort.SliceStable(upcoming, func(a, b int) bool {
			return upcoming[a].match.Date.Or(undatedLast) < upcoming[b].match.Date.Or(undatedLast)
		})
		if len(upcoming) > upcomingShown {
			upcoming = upcoming[:upcomingShown]
		}

		lines := make([]string, len(upcoming))
		for j, u := range upcoming {
			lines[j] = fmt.Sprintf("%s on %s%s (%s)", pairing(u.match), u.match.Date.Or("TBD"), atTime(u.match), u.matchday)
		}
		res.say(block(fmt.Sprintf("Upcoming %s in %s:", p.MatchPlural, l.Name), lines))
	}

	if len(res.Messages) == 0 {
		if league != "" {
			return reply(fmt.Sprintf("No upcoming matches found for %s in %s.", league, r.sport))
		}
		return reply(fmt.Sprintf("No upcoming matches found for %s.", r.sport))
	}
	return res
}

func venueOrUnknown(m *dataset.Match) string {
	if v := m.AnyVenue(); v != "" {
		return v
	}
	return "Location not specified"
}
