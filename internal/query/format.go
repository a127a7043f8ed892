package query

import (
	"fmt"
	"strings"

	"github.com/albapepper/scoracle-chat/internal/dataset"
	"github.com/albapepper/scoracle-chat/internal/sport"
)

// pairing is "Home vs Away".
func pairing(m *dataset.Match) string {
	return m.HomeTeam + " vs " + m.AwayTeam
}

// atTime is " at HH:MM", or "" when no kick-off time is recorded.
func atTime(m *dataset.Match) string {
	if m.Time == "" {
		return ""
	}
	return " at " + string(m.Time)
}

// inPlace is " in City", or "" when no location is recorded.
func inPlace(m *dataset.Match) string {
	if loc := m.Location(); loc != "" {
		return " in " + loc
	}
	return ""
}

// block joins a heading and its lines into one message.
func block(heading string, lines []string) string {
	return strings.Join(append([]string{heading}, lines...), "\n")
}

// missingNote tells which leagues lack data for a matchday, or "" when
// every league has some.
func missingNote(matchday string, withData, all []string) string {
	have := make(map[string]bool, len(withData))
	for _, l := range withData {
		have[l] = true
	}
	var missing []string
	for _, l := range all {
		if !have[l] {
			missing = append(missing, l)
		}
	}
	if len(missing) == 0 {
		return ""
	}
	return fmt.Sprintf("Note: %s information is only available for %s. No data for %s.",
		matchday, strings.Join(withData, ", "), strings.Join(missing, ", "))
}

// scorerLines renders a score sheet one line per team. Points-scoring
// sports list each scorer with points, capped per team.
func scorerLines(p *sport.Profile, sheet dataset.ScoreSheet) []string {
	var lines []string
	for _, side := range sheet {
		if len(side.Scorers) == 0 {
			continue
		}
		if !p.PointsScoring {
			lines = append(lines, side.Team+": "+strings.Join(side.Names(), ", "))
			continue
		}
		for _, s := range capScorers(side.Scorers, p.ScorersPerTeam) {
			lines = append(lines, fmt.Sprintf("%s: %s - %s pts", side.Team, s.Name, s.Points))
		}
	}
	return lines
}

func capScorers(s []dataset.Scorer, n int) []dataset.Scorer {
	if n > 0 && len(s) > n {
		return s[:n]
	}
	return s
}
