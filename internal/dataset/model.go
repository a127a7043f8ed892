// Package dataset models the nested sports-results document and loads it
// from the first readable candidate location.
//
// The document is keyed by sport, then league, then either "standings" or a
// matchday name:
//
//	{ "Football": { "LaLiga": { "standings": [...], "Matchday 1": { "fixtures": [...] } } } }
//
// Member order is significant (handlers report the first hit in document
// order), so every level is decoded into slices rather than maps.
package dataset

import (
	"encoding/json"
	"fmt"
	"strings"
)

// standingsKey is the reserved league member holding the table.
const standingsKey = "standings"

// Postponed is the score text of a match that has not been played.
const Postponed = "Postponed"

// Dataset is one loaded results document.
type Dataset struct {
	Sports []SportTable
}

// SportTable holds one sport's leagues in document order.
type SportTable struct {
	Name    string
	Leagues []League
}

// League holds a league's standings and matchdays in document order.
type League struct {
	Name      string
	Standings []Standing
	Matchdays []Matchday
}

// Matchday is one round. Rosters are keyed by the sport's list key
// ("fixtures" for football, "games" for basketball).
type Matchday struct {
	Name    string
	rosters map[string][]Match
}

// Match is one fixture or game.
type Match struct {
	HomeTeam    string     `json:"home_team"`
	AwayTeam    string     `json:"away_team"`
	Date        Value      `json:"date"`
	Time        Value      `json:"time"`
	Stadium     Value      `json:"stadium"`
	Arena       Value      `json:"arena"`
	City        Value      `json:"city"`
	State       Value      `json:"state"`
	Score       *Value     `json:"score"`
	Quarters    []Value    `json:"quarters"`
	GoalScorers ScoreSheet `json:"goal_scorers"`
	TopScorers  ScoreSheet `json:"top_scorers"`
}

// Standing is one row of a league table. Stats carries the sport-specific
// columns (points/won/drawn/lost or win_percentage/won/lost).
type Standing struct {
	Position Value
	Team     string
	Stats    map[string]Value
}

// ScoreSheet lists scorers per team in document order.
type ScoreSheet []TeamScorers

// TeamScorers is one side's scorers in a match.
type TeamScorers struct {
	Team    string
	Scorers []Scorer
}

// Scorer is a scorer entry. Football sheets list bare names; basketball
// sheets list {name, points} objects.
type Scorer struct {
	Name   string `json:"name"`
	Points Value  `json:"points"`
}

// ---------------------------------------------------------------------------
// Match accessors
// ---------------------------------------------------------------------------

// Upcoming reports a match with no score, or one marked Postponed.
func (m *Match) Upcoming() bool {
	return m.Score == nil || string(*m.Score) == Postponed
}

// Played is the complement of Upcoming.
func (m *Match) Played() bool {
	return !m.Upcoming()
}

// ScoreText returns the recorded score, or "" for an unscored match.
func (m *Match) ScoreText() string {
	if m.Score == nil {
		return ""
	}
	return string(*m.Score)
}

// Venue returns the venue stored under key ("stadium" or "arena").
func (m *Match) Venue(key string) string {
	switch key {
	case "stadium":
		return string(m.Stadium)
	case "arena":
		return string(m.Arena)
	}
	return ""
}

// AnyVenue returns the stadium, else the arena.
func (m *Match) AnyVenue() string {
	if m.Stadium != "" {
		return string(m.Stadium)
	}
	return string(m.Arena)
}

// Location returns the city, else the state.
func (m *Match) Location() string {
	if m.City != "" {
		return string(m.City)
	}
	return string(m.State)
}

// Scorers returns the score sheet stored under key ("goal_scorers" or
// "top_scorers").
func (m *Match) Scorers(key string) ScoreSheet {
	switch key {
	case "goal_scorers":
		return m.GoalScorers
	case "top_scorers":
		return m.TopScorers
	}
	return nil
}

// QuarterText joins the quarter-by-quarter scores.
func (m *Match) QuarterText() string {
	parts := make([]string, len(m.Quarters))
	for i, q := range m.Quarters {
		parts[i] = string(q)
	}
	return strings.Join(parts, ", ")
}

// ---------------------------------------------------------------------------
// Standing / Scorer accessors
// ---------------------------------------------------------------------------

// Stat returns a stat column, or "n/a" when the row lacks it.
func (s *Standing) Stat(name string) string {
	if v, ok := s.Stats[name]; ok {
		return string(v)
	}
	return "n/a"
}

// Names lists the scorer names.
func (t TeamScorers) Names() []string {
	names := make([]string, len(t.Scorers))
	for i, s := range t.Scorers {
		names[i] = s.Name
	}
	return names
}

// Empty reports a sheet with no scorer on any side.
func (s ScoreSheet) Empty() bool {
	for _, t := range s {
		if len(t.Scorers) > 0 {
			return false
		}
	}
	return true
}

// ---------------------------------------------------------------------------
// Decoding
// ---------------------------------------------------------------------------

// UnmarshalJSON decodes a team → scorers object keeping team order.
func (s *ScoreSheet) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		*s = nil
		return nil
	}
	var sheet ScoreSheet
	err := eachMember(data, func(team string, raw json.RawMessage) error {
		var scorers []Scorer
		if err := json.Unmarshal(raw, &scorers); err != nil {
			return fmt.Errorf("scorers for %s: %w", team, err)
		}
		sheet = append(sheet, TeamScorers{Team: team, Scorers: scorers})
		return nil
	})
	if err != nil {
		return err
	}
	*s = sheet
	return nil
}

// UnmarshalJSON accepts a bare name or a {name, points} object.
func (s *Scorer) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*s = Scorer{Name: name}
		return nil
	}
	type plain Scorer
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*s = Scorer(p)
	return nil
}

// UnmarshalJSON splits a standings row into position, team and the
// remaining stat columns. Non-scalar columns are dropped.
func (s *Standing) UnmarshalJSON(data []byte) error {
	var row map[string]json.RawMessage
	if err := json.Unmarshal(data, &row); err != nil {
		return err
	}
	out := Standing{Stats: make(map[string]Value, len(row))}
	for k, raw := range row {
		var v Value
		if err := json.Unmarshal(raw, &v); err != nil {
			continue
		}
		switch k {
		case "position":
			out.Position = v
		case "team":
			out.Team = string(v)
		default:
			out.Stats[k] = v
		}
	}
	*s = out
	return nil
}
