package query

import (
	"fmt"
	"strings"

	"github.com/albapepper/scoracle-chat/internal/dataset"
)

const standingsShown = 5

func (e *Engine) standings(t Turn) *Result {
	r := e.newRequest(t)
	league := e.resolveLeague(r)

	var p plan = lookupGeneral{league: league}
	if league == "" {
		p = clarify{reason: fmt.Sprintf("Please specify which %s league you're interested in (%s).",
			r.sport.Lower(), strings.Join(r.profile.LeagueKeys(), " or "))}
	}
	e.logPlan(ActionGetStandings, r, p)
	if c, ok := p.(clarify); ok {
		return reply(c.reason)
	}

	table := e.source.Load().Sport(string(r.sport))
	l, ok := table.League(league)
	if !ok || len(l.Standings) == 0 {
		return reply(fmt.Sprintf("No standings found for %s in %s.", league, r.sport))
	}

	format := r.profile.Standings
	if e.vocab.AsksForTop(r.text) {
		top := l.Standings[0]
		args := append([]any{league, top.Team}, stats(&top, format.Fields)...)
		return reply(fmt.Sprintf(format.Leader, args...))
	}

	rows := l.Standings
	if len(rows) > standingsShown {
		rows = rows[:standingsShown]
	}
	lines := make([]string, 0, len(rows))
	for i := range rows {
		args := append([]any{rows[i].Position, rows[i].Team}, stats(&rows[i], format.Fields)...)
		lines = append(lines, fmt.Sprintf(format.Row, args...))
	}
	return reply(block(fmt.Sprintf("Current top %d standings in %s:", standingsShown, league), lines))
}

func stats(s *dataset.Standing, fields []string) []any {
	out := make([]any, len(fields))
	for i, f := range fields {
		out[i] = s.Stat(f)
	}
	return out
}
