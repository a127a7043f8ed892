package query

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/albapepper/scoracle-chat/internal/dataset"
	"github.com/albapepper/scoracle-chat/internal/sport"
	"github.com/albapepper/scoracle-chat/internal/team"
)

// Action names as registered with the dialogue engine.
const (
	ActionSetSport       = "action_set_sport"
	ActionGetStandings   = "action_get_standings"
	ActionGetFixture     = "action_get_fixture"
	ActionGetScore       = "action_get_score"
	ActionGetGoalScorers = "action_get_goal_scorers"
	ActionGetTopScorers  = "action_get_top_scorers"
	ActionGetStadium     = "action_get_stadium"
)

// ErrUnknownAction is returned by Run for an unregistered action name.
var ErrUnknownAction = errors.New("unknown action")

// DatasetSource supplies a freshly loaded results document per call.
// *dataset.Loader satisfies it.
type DatasetSource interface {
	Load() *dataset.Dataset
}

type action func(*Engine, Turn) *Result

// Engine runs actions. It holds only immutable lookup tables and is safe
// for concurrent use; the dataset is loaded anew by every lookup.
type Engine struct {
	vocab   *sport.Vocabulary
	teams   *team.Canonicalizer
	arenas  team.VenueDirectory
	source  DatasetSource
	logger  *slog.Logger
	actions map[string]action
}

// NewEngine wires the lookup tables and the dataset source together.
func NewEngine(vocab *sport.Vocabulary, teams *team.Canonicalizer, arenas team.VenueDirectory, source DatasetSource, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		vocab:  vocab,
		teams:  teams,
		arenas: arenas,
		source: source,
		logger: logger,
		actions: map[string]action{
			ActionSetSport:       (*Engine).setSport,
			ActionGetStandings:   (*Engine).standings,
			ActionGetFixture:     (*Engine).fixture,
			ActionGetScore:       (*Engine).score,
			ActionGetGoalScorers: (*Engine).goalScorers,
			ActionGetTopScorers:  (*Engine).topScorers,
			ActionGetStadium:     (*Engine).stadium,
		},
	}
}

// NewDefaultEngine uses the stock vocabulary, alias table and arena
// directory.
func NewDefaultEngine(source DatasetSource, logger *slog.Logger) *Engine {
	return NewEngine(sport.NewVocabulary(), team.Default(), team.DefaultArenas(), source, logger)
}

// Actions lists the registered action names, sorted.
func (e *Engine) Actions() []string {
	names := make([]string, 0, len(e.actions))
	for name := range e.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run executes one named action against the turn.
func (e *Engine) Run(name string, t Turn) (*Result, error) {
	fn, ok := e.actions[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAction, name)
	}
	res := fn(e, t)
	e.logger.Debug("action complete",
		"action", name,
		"messages", len(res.Messages),
		"events", len(res.Events),
	)
	return res, nil
}

// Converse runs the sport router and, when it queues a follow-up, applies
// its slot events to the turn and runs the follow-up too. The returned
// result carries the messages and events of both.
func (e *Engine) Converse(t Turn) *Result {
	res, _ := e.Run(ActionSetSport, t)

	next, ok := res.Followup()
	if !ok {
		return res
	}
	res.Apply(&t.Slots)

	more, err := e.Run(next, t)
	if err != nil {
		e.logger.Warn("follow-up action failed", "action", next, "error", err)
		return res
	}
	res.Messages = append(res.Messages, more.Messages...)
	res.Events = append(res.Events, more.Events...)
	return res
}
