// Package query resolves one conversational turn against the results
// document. Each named action (the sport router and the five lookups) reads
// the turn's slots, entities and text, fills in whatever is missing, picks a
// lookup plan and replies with plain-text messages.
package query

import "strings"

// Entity types read from a turn.
const (
	EntityTeam     = "team"
	EntityLeague   = "league"
	EntityMatchday = "matchday"
	EntityPlayer   = "player"
)

// Slots is the conversation state persisted by the dialogue engine.
type Slots struct {
	Sport    string `json:"sport,omitempty"`
	League   string `json:"league,omitempty"`
	Team     string `json:"team,omitempty"`
	Matchday string `json:"matchday,omitempty"`
}

// Entity is one recognized span of the latest message.
type Entity struct {
	Type  string `json:"entity"`
	Value string `json:"value"`
}

// Turn is everything an action sees about the current message.
type Turn struct {
	Text     string   `json:"text"`
	Slots    Slots    `json:"slots"`
	Entities []Entity `json:"entities,omitempty"`
}

// Entity returns the value of the last entity of the given type.
func (t Turn) Entity(typ string) string {
	var v string
	for _, e := range t.Entities {
		if e.Type == typ && strings.TrimSpace(e.Value) != "" {
			v = e.Value
		}
	}
	return v
}

// EntityValues returns every value of the given type in message order.
func (t Turn) EntityValues(typ string) []string {
	var out []string
	for _, e := range t.Entities {
		if e.Type == typ && strings.TrimSpace(e.Value) != "" {
			out = append(out, e.Value)
		}
	}
	return out
}

// Event kinds understood by the dialogue engine.
const (
	EventSlot     = "slot"
	EventFollowup = "followup"
)

// Event is a directive for the dialogue engine: set a slot, or run another
// action next.
type Event struct {
	Kind  string  `json:"event"`
	Name  string  `json:"name"`
	Value *string `json:"value,omitempty"`
}

// Result is an action's reply.
type Result struct {
	Messages []string `json:"messages"`
	Events   []Event  `json:"events"`
}

func (r *Result) say(msg string) {
	r.Messages = append(r.Messages, msg)
}

func (r *Result) setSlot(name, value string) {
	r.Events = append(r.Events, Event{Kind: EventSlot, Name: name, Value: &value})
}

func (r *Result) followup(action string) {
	r.Events = append(r.Events, Event{Kind: EventFollowup, Name: action})
}

// Followup returns the queued follow-up action, if any.
func (r *Result) Followup() (string, bool) {
	for _, e := range r.Events {
		if e.Kind == EventFollowup {
			return e.Name, true
		}
	}
	return "", false
}

// Apply copies slot events onto s.
func (r *Result) Apply(s *Slots) {
	for _, e := range r.Events {
		if e.Kind != EventSlot {
			continue
		}
		var v string
		if e.Value != nil {
			v = *e.Value
		}
		switch e.Name {
		case "sport":
			s.Sport = v
		case "league":
			s.League = v
		case "team":
			s.Team = v
		case "matchday":
			s.Matchday = v
		}
	}
}

func reply(msgs ...string) *Result {
	return &Result{Messages: msgs}
}
