package query

import (
	"fmt"
	"strings"

	"github.com/albapepper/scoracle-chat/internal/dataset"
	"github.com/albapepper/scoracle-chat/internal/sport"
)

var scorerOrder = []dimension{byPlayer, byTeam, byMatchday}

func (e *Engine) goalScorers(t Turn) *Result {
	return e.scorers(ActionGetGoalScorers, e.newFixedRequest(t, sport.Football))
}

func (e *Engine) topScorers(t Turn) *Result {
	return e.scorers(ActionGetTopScorers, e.newFixedRequest(t, sport.Basketball))
}

// scorers answers scorer questions for one sport: by player name, else by
// team (its first played match), else by matchday across leagues.
func (e *Engine) scorers(action string, r *request) *Result {
	p := r.profile
	in := inputs{
		player:   e.resolvePlayer(r),
		teams:    teamsOf(e.resolveTeam(r)),
		matchday: e.resolveMatchday(r),
	}
	pick := selectPlan(in, scorerOrder,
		fmt.Sprintf("Please specify a %s team, player, or matchday to get %s.", r.sport.Lower(), p.ScorerInfo))
	e.logPlan(action, r, pick)

	switch pick := pick.(type) {
	case lookupPlayer:
		return e.playerScoring(r, pick.player)
	case lookupTeam:
		return e.teamScoring(r, pick.teams[0])
	case lookupMatchday:
		return e.matchdayScoring(r, pick.matchday)
	case clarify:
		return reply(pick.reason)
	}
	return &Result{}
}

// playerScoring finds the first scorer entry whose name contains player.
func (e *Engine) playerScoring(r *request, player string) *Result {
	p := r.profile
	needle := sport.Fold(strings.TrimSpace(player))
	table := e.source.Load().Sport(string(r.sport))

	var msg string
	table.Walk(p.RosterKey, func(_ *dataset.League, _ *dataset.Matchday, m *dataset.Match) bool {
		for _, side := range m.Scorers(p.ScorerKey) {
			for _, s := range side.Scorers {
				if strings.Contains(sport.Fold(s.Name), needle) {
					msg = fmt.Sprintf(p.PlayerHit, s.Name, s.Points, side.Team, m.HomeTeam, m.AwayTeam)
					return false
				}
			}
		}
		return true
	})
	if msg != "" {
		return reply(msg)
	}
	return reply(fmt.Sprintf("Could not find any %s scored by %s.", p.ScoringNoun, needle))
}

// teamScoring dumps the full score sheet of the team's first played match.
func (e *Engine) teamScoring(r *request, teamName string) *Result {
	p := r.profile
	table := e.source.Load().Sport(string(r.sport))

	var found *dataset.Match
	table.Walk(p.RosterKey, func(_ *dataset.League, _ *dataset.Matchday, m *dataset.Match) bool {
		if m.Played() && e.involves(teamName, m) {
			found = m
			return false
		}
		return true
	})
	if found == nil {
		return reply(fmt.Sprintf("Couldn't find recent %s involving %s.", p.MatchPlural, teamName))
	}

	sheet := found.Scorers(p.ScorerKey)
	if sheet.Empty() {
		return reply(fmt.Sprintf(p.EmptySheet, found.HomeTeam, found.AwayTeam))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s in %s:", p.ScorerTitle, pairing(found))
	for _, side := range sheet {
		if len(side.Scorers) == 0 {
			continue
		}
		if !p.PointsScoring {
			fmt.Fprintf(&b, "\n%s: %s", side.Team, strings.Join(side.Names(), ", "))
			continue
		}
		fmt.Fprintf(&b, "\n\n%s:", side.Team)
		for _, s := range side.Scorers {
			fmt.Fprintf(&b, "\n  %s: %s points", s.Name, s.Points)
		}
	}
	return reply(b.String())
}

// matchdayScoring aggregates every scored match of a round, one message per
// league.
func (e *Engine) matchdayScoring(r *request, matchday string) *Result {
	p := r.profile
	table := e.source.Load().Sport(string(r.sport))

	res := &Result{}
	for i := range table.Leagues {
		l := &table.Leagues[i]
		md, ok := l.Matchday(matchday)
		if !ok {
			continue
		}

		var b strings.Builder
		fmt.Fprintf(&b, "%s for %s in %s:", p.ScorerTitle, matchday, l.Name)
		scored := false
		matches := md.Matches(p.RosterKey)
		for j := range matches {
			m := &matches[j]
			sheet := m.Scorers(p.ScorerKey)
			if len(sheet) == 0 {
				continue
			}
			scored = true
			fmt.Fprintf(&b, "\n\n%s:", pairing(m))
			for _, side := range sheet {
				if len(side.Scorers) == 0 {
					continue
				}
				if !p.PointsScoring {
					fmt.Fprintf(&b, "\n  %s: %s", side.Team, strings.Join(side.Names(), ", "))
					continue
				}
				fmt.Fprintf(&b, "\n  %s:", side.Team)
				for _, s := range capScorers(side.Scorers, p.ScorersPerTeam) {
					fmt.Fprintf(&b, "\n    %s: %s points", s.Name, s.Points)
				}
			}
		}
		if scored {
			res.say(b.String())
		}
	}

	if len(res.Messages) == 0 {
		return reply(fmt.Sprintf("No %s found for %s.", p.ScorerInfo, matchday))
	}
	return res
}
