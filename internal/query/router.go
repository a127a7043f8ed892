package query

import (
	"fmt"
	"strings"

	"github.com/albapepper/scoracle-chat/internal/sport"
)

// setSport settles the sport slot and, when the message also asks
// something, queues the matching lookup so the user needs no second turn.
func (e *Engine) setSport(t Turn) *Result {
	text := sport.Fold(t.Text)
	res := &Result{}

	if explicit := strings.TrimSpace(t.Slots.Sport); explicit != "" {
		s, ok := sport.Parse(explicit)
		if !ok {
			res.say("I can only provide information about football or basketball. Let's talk about football by default.")
			res.setSlot("sport", string(sport.Football))
			return res
		}
		res.setSlot("sport", string(s))
		if next := e.intentAction(s, text); next != "" {
			res.followup(next)
			return res
		}
		res.say(fmt.Sprintf("I'll provide you with %s information. What would you like to know?", s.Lower()))
		return res
	}

	s := e.vocab.Disambiguate("", text)
	res.setSlot("sport", string(s))
	if next := e.intentAction(s, text); next != "" {
		res.followup(next)
		return res
	}
	res.say(fmt.Sprintf("I'm not sure which sport you're interested in. Let's talk about %s by default.", s))
	return res
}

// intentAction maps the message's intent onto the lookup that answers it.
func (e *Engine) intentAction(s sport.Sport, text string) string {
	switch e.vocab.Intent(text) {
	case sport.IntentStandings:
		return ActionGetStandings
	case sport.IntentFixture:
		return ActionGetFixture
	case sport.IntentScore:
		return ActionGetScore
	case sport.IntentScorers:
		if s == sport.Basketball {
			return ActionGetTopScorers
		}
		return ActionGetGoalScorers
	case sport.IntentStadium:
		return ActionGetStadium
	}
	return ""
}
