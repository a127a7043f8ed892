package query

import (
	"fmt"
	"strings"

	"github.com/albapepper/scoracle-chat/internal/dataset"
)

func (e *Engine) score(t Turn) *Result {
	r := e.newRequest(t)
	teams := e.resolveTeams(r)

	p := selectPlan(inputs{teams: teams}, []dimension{byTeam},
		fmt.Sprintf("Please specify which team's score you're interested in for %s.", r.sport))
	e.logPlan(ActionGetScore, r, p)

	lt, ok := p.(lookupTeam)
	if !ok {
		return reply(p.(clarify).reason)
	}

	table := e.source.Load().Sport(string(r.sport))
	key := r.profile.RosterKey
	didWin := e.vocab.AsksDidWin(r.text)

	// Both teams named: their first meeting wins.
	if len(lt.teams) > 1 {
		var found *dataset.Match
		table.Walk(key, func(_ *dataset.League, _ *dataset.Matchday, m *dataset.Match) bool {
			if m.Played() && e.involvesAll(lt.teams, m) {
				found = m
				return false
			}
			return true
		})
		if found != nil {
			return reply(e.scoreReport(r, lt.teams[0], found, didWin))
		}
	}

	for _, name := range lt.teams {
		var found *dataset.Match
		table.Walk(key, func(_ *dataset.League, _ *dataset.Matchday, m *dataset.Match) bool {
			if m.Played() && e.involves(name, m) {
				found = m
				return false
			}
			return true
		})
		if found != nil {
			return reply(e.scoreReport(r, name, found, didWin))
		}
	}

	return reply(fmt.Sprintf("No recent match results found for %s in %s.", strings.Join(lt.teams, ", "), r.sport))
}

func (e *Engine) involvesAll(teams []string, m *dataset.Match) bool {
	for _, t := range teams {
		if !e.involves(t, m) {
			return false
		}
	}
	return true
}

// scoreReport renders a played match: an optional win/loss verdict for
// teamName, the final score, quarter scores and the score sheet.
func (e *Engine) scoreReport(r *request, teamName string, m *dataset.Match, didWin bool) string {
	var b strings.Builder
	if didWin {
		if v := e.verdict(teamName, m); v != "" {
			b.WriteString(v + ". ")
		}
	}
	fmt.Fprintf(&b, "%s ended %s on %s.", pairing(m), m.ScoreText(), m.Date.Or("Date unknown"))

	if q := m.QuarterText(); q != "" {
		b.WriteString("\nQuarter scores: " + q)
	}

	if lines := scorerLines(r.profile, m.Scorers(r.profile.ScorerKey)); len(lines) > 0 {
		b.WriteString("\n\n" + r.profile.ScorerTitle + ":")
		for _, l := range lines {
			b.WriteString("\n" + l)
		}
	}
	return b.String()
}
