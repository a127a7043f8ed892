package query

import (
	"strings"

	"github.com/albapepper/scoracle-chat/internal/sport"
)

// request is one turn with its sport settled.
type request struct {
	turn     Turn
	text     string // folded message text
	sport    sport.Sport
	profile  *sport.Profile
	explicit bool // sport came from the slot, not from the text
}

func (e *Engine) newRequest(t Turn) *request {
	text := sport.Fold(t.Text)
	r := &request{
		turn:     t,
		text:     text,
		explicit: strings.TrimSpace(t.Slots.Sport) != "",
	}
	r.use(e, e.vocab.Disambiguate(t.Slots.Sport, text))
	return r
}

// newFixedRequest pins the sport regardless of slots and text.
func (e *Engine) newFixedRequest(t Turn, s sport.Sport) *request {
	r := &request{turn: t, text: sport.Fold(t.Text), explicit: true}
	r.use(e, s)
	return r
}

func (r *request) use(e *Engine, s sport.Sport) {
	r.sport = s
	r.profile = e.vocab.Profile(s)
}

// ---------------------------------------------------------------------------
// Dimension resolution: entity, then slot, then a scan of the text
// ---------------------------------------------------------------------------

// resolveLeague returns a canonical league key. A league named in the text
// also settles the sport for the turn.
func (e *Engine) resolveLeague(r *request) string {
	if v := firstNonEmpty(r.turn.Entity(EntityLeague), r.turn.Slots.League); v != "" {
		return r.profile.NormalizeLeague(v)
	}
	if league, s, ok := e.vocab.LeagueFromText(r.text); ok {
		if s != r.sport {
			r.use(e, s)
		}
		return league
	}
	return ""
}

// resolveTeam returns the team mention for single-team lookups. When the
// sport was only inferred, a team known to the other sport's list switches
// the sport.
func (e *Engine) resolveTeam(r *request) string {
	if v := firstNonEmpty(r.turn.Entity(EntityTeam), r.turn.Slots.Team); v != "" {
		return strings.TrimSpace(v)
	}
	if t := r.profile.TeamFromText(r.text); t != "" {
		return t
	}
	if r.explicit {
		return ""
	}
	for _, p := range e.vocab.Profiles() {
		if p.Sport == r.sport {
			continue
		}
		if t := p.TeamFromText(r.text); t != "" {
			r.use(e, p.Sport)
			return t
		}
	}
	return ""
}

// resolveTeams returns up to two distinct teams for score lookups.
func (e *Engine) resolveTeams(r *request) []string {
	mentions := r.turn.EntityValues(EntityTeam)
	if len(mentions) == 0 && strings.TrimSpace(r.turn.Slots.Team) != "" {
		mentions = []string{r.turn.Slots.Team}
	}
	if len(mentions) == 0 {
		mentions = r.profile.TeamsFromText(r.text)
	}

	seen := make(map[string]bool, len(mentions))
	var teams []string
	for _, m := range mentions {
		m = strings.TrimSpace(m)
		key := e.teams.Canonicalize(m)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		teams = append(teams, m)
		if len(teams) == 2 {
			break
		}
	}
	return teams
}

// resolveMatchday returns the round name in the sport's own vocabulary.
func (e *Engine) resolveMatchday(r *request) string {
	v := firstNonEmpty(r.turn.Entity(EntityMatchday), r.turn.Slots.Matchday)
	if v == "" {
		v = r.profile.MatchdayFromText(r.text)
	}
	return r.profile.NormalizeMatchday(v)
}

func (e *Engine) resolvePlayer(r *request) string {
	if v := r.turn.Entity(EntityPlayer); v != "" {
		return strings.TrimSpace(v)
	}
	return r.profile.PlayerFromText(r.text)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// ---------------------------------------------------------------------------
// Plans
// ---------------------------------------------------------------------------

// plan is the lookup a handler will run, decided before any traversal.
type plan interface {
	kind() string
}

type clarify struct{ reason string }

type lookupTeam struct{ teams []string }

type lookupPlayer struct{ player string }

type lookupMatchday struct{ matchday, league string }

type lookupGeneral struct{ league string }

func (clarify) kind() string        { return "clarify" }
func (lookupTeam) kind() string     { return "team" }
func (lookupPlayer) kind() string   { return "player" }
func (lookupMatchday) kind() string { return "matchday" }
func (lookupGeneral) kind() string  { return "general" }

// dimension is an input a plan can be keyed on.
type dimension int

const (
	byPlayer dimension = iota
	byTeam
	byMatchday
	byUpcoming
)

// inputs are the resolved dimensions of a turn.
type inputs struct {
	teams    []string
	player   string
	matchday string
	league   string
	upcoming bool
}

// selectPlan picks the first dimension in order that the inputs carry, or
// asks for clarification.
func selectPlan(in inputs, order []dimension, reason string) plan {
	for _, d := range order {
		switch d {
		case byPlayer:
			if in.player != "" {
				return lookupPlayer{player: in.player}
			}
		case byTeam:
			if len(in.teams) > 0 {
				return lookupTeam{teams: in.teams}
			}
		case byMatchday:
			if in.matchday != "" {
				return lookupMatchday{matchday: in.matchday, league: in.league}
			}
		case byUpcoming:
			if in.upcoming {
				return lookupGeneral{league: in.league}
			}
		}
	}
	return clarify{reason: reason}
}

func (e *Engine) logPlan(action string, r *request, p plan) {
	e.logger.Debug("plan selected",
		"action", action,
		"sport", string(r.sport),
		"plan", p.kind(),
	)
}

func teamsOf(t string) []string {
	if t == "" {
		return nil
	}
	return []string{t}
}
