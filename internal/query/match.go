package query

import (
	"strconv"
	"strings"

	"github.com/albapepper/scoracle-chat/internal/dataset"
)

// involves reports whether the team plays in m: its canonical key equals,
// or is contained in, the canonical home or away name.
func (e *Engine) involves(teamName string, m *dataset.Match) bool {
	return e.onSide(teamName, m.HomeTeam) || e.onSide(teamName, m.AwayTeam)
}

// onSide reports whether teamName names side, one way.
func (e *Engine) onSide(teamName, side string) bool {
	t := e.teams.Canonicalize(teamName)
	if t == "" {
		return false
	}
	s := e.teams.Canonicalize(side)
	return t == s || strings.Contains(s, t)
}

// sameClub is onSide in both directions, for venue lookups where either
// name may be the longer one.
func (e *Engine) sameClub(teamName, side string) bool {
	t := e.teams.Canonicalize(teamName)
	s := e.teams.Canonicalize(side)
	if t == "" || s == "" {
		return false
	}
	return t == s || strings.Contains(s, t) || strings.Contains(t, s)
}

// parseScore reads "home-away" as two integers.
func parseScore(score string) (home, away int, ok bool) {
	h, a, found := strings.Cut(score, "-")
	if !found {
		return 0, 0, false
	}
	home, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil {
		return 0, 0, false
	}
	away, err = strconv.Atoi(strings.TrimSpace(a))
	if err != nil {
		return 0, 0, false
	}
	return home, away, true
}

// verdict answers "did teamName win" for a played match. The team is
// matched on whichever side it occupies, home first. An unreadable score
// gives no verdict.
func (e *Engine) verdict(teamName string, m *dataset.Match) string {
	home, away, ok := parseScore(m.ScoreText())
	if !ok {
		return ""
	}
	name, own, other := m.HomeTeam, home, away
	if !e.onSide(teamName, m.HomeTeam) {
		name, own, other = m.AwayTeam, away, home
	}
	switch {
	case own > other:
		return "Yes, " + name + " won"
	case own < other:
		return "No, " + name + " lost"
	}
	return "It was a draw"
}
