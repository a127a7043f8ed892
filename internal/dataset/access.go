package dataset

import (
	"fmt"
	"strings"
)

// Visitor is called for each match in a walk. Returning false stops it.
type Visitor func(l *League, md *Matchday, m *Match) bool

// Sport returns the named sport's table. A sport missing from the document
// yields an empty table, never nil.
func (d *Dataset) Sport(name string) *SportTable {
	if d != nil {
		for i := range d.Sports {
			if d.Sports[i].Name == name {
				return &d.Sports[i]
			}
		}
	}
	return &SportTable{Name: name}
}

// League looks up a league by exact name.
func (t *SportTable) League(name string) (*League, bool) {
	for i := range t.Leagues {
		if t.Leagues[i].Name == name {
			return &t.Leagues[i], true
		}
	}
	return nil, false
}

// LeagueNames lists the league names in document order.
func (t *SportTable) LeagueNames() []string {
	names := make([]string, len(t.Leagues))
	for i, l := range t.Leagues {
		names[i] = l.Name
	}
	return names
}

// Walk visits every match stored under rosterKey, league by league and
// matchday by matchday, in document order. It reports whether the walk ran
// to completion.
func (t *SportTable) Walk(rosterKey string, visit Visitor) bool {
	for i := range t.Leagues {
		if !t.Leagues[i].Walk(rosterKey, visit) {
			return false
		}
	}
	return true
}

// Walk visits this league's matches in document order.
func (l *League) Walk(rosterKey string, visit Visitor) bool {
	for i := range l.Matchdays {
		md := &l.Matchdays[i]
		matches := md.rosters[rosterKey]
		for j := range matches {
			if !visit(l, md, &matches[j]) {
				return false
			}
		}
	}
	return true
}

// Matchday looks up a matchday by exact name.
func (l *League) Matchday(name string) (*Matchday, bool) {
	for i := range l.Matchdays {
		if l.Matchdays[i].Name == name {
			return &l.Matchdays[i], true
		}
	}
	return nil, false
}

// Matches returns the matchday's list stored under rosterKey.
func (md *Matchday) Matches(rosterKey string) []Match {
	return md.rosters[rosterKey]
}

// ---------------------------------------------------------------------------
// Summary
// ---------------------------------------------------------------------------

// LeagueSummary counts what one league holds.
type LeagueSummary struct {
	Sport     string `json:"sport"`
	League    string `json:"league"`
	Standings int    `json:"standings"`
	Matchdays int    `json:"matchdays"`
	Matches   int    `json:"matches"`
	Upcoming  int    `json:"upcoming"`
}

// Leagues summarizes every league of every sport.
func (d *Dataset) Leagues() []LeagueSummary {
	var out []LeagueSummary
	for _, t := range d.Sports {
		for _, l := range t.Leagues {
			s := LeagueSummary{
				Sport:     t.Name,
				League:    l.Name,
				Standings: len(l.Standings),
				Matchdays: len(l.Matchdays),
			}
			for _, md := range l.Matchdays {
				for _, roster := range md.rosters {
					for i := range roster {
						s.Matches++
						if roster[i].Upcoming() {
							s.Upcoming++
						}
					}
				}
			}
			out = append(out, s)
		}
	}
	return out
}

// Summary returns a one-line human-readable description.
func (d *Dataset) Summary() string {
	var leagues, matches, upcoming int
	sports := make([]string, 0, len(d.Sports))
	for _, t := range d.Sports {
		sports = append(sports, t.Name)
	}
	for _, s := range d.Leagues() {
		leagues++
		matches += s.Matches
		upcoming += s.Upcoming
	}
	return fmt.Sprintf(
		"sports=%s leagues=%d matches=%d upcoming=%d",
		strings.Join(sports, ","), leagues, matches, upcoming,
	)
}
