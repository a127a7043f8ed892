package sport

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Intent is a sub-question read out of message text by keyword match.
type Intent int

const (
	IntentNone Intent = iota
	IntentStandings
	IntentFixture
	IntentScore
	IntentScorers
	IntentStadium
)

func (i Intent) String() string {
	switch i {
	case IntentStandings:
		return "standings"
	case IntentFixture:
		return "fixture"
	case IntentScore:
		return "score"
	case IntentScorers:
		return "scorers"
	case IntentStadium:
		return "stadium"
	}
	return "none"
}

// Keywords are the fixed word lists matched against lower-cased text.
type Keywords struct {
	Standings []string
	Fixture   []string
	Score     []string
	Scorer    []string
	Stadium   []string
	Top       []string
	Upcoming  []string
	DidWin    []string
}

// DefaultKeywords returns the stock keyword sets.
func DefaultKeywords() Keywords {
	return Keywords{
		Standings: []string{"standings", "table", "rankings", "positions"},
		Fixture:   []string{"match", "fixture", "playing next", "games", "upcoming"},
		Score:     []string{"score", "result", "win", "lose", "beat"},
		Scorer:    []string{"score", "scorer", "goal", "point", "basket"},
		Stadium:   []string{"stadium", "arena", "venue", "play", "home"},
		Top:       []string{"top", "leading", "first", "winner"},
		Upcoming:  []string{"next", "upcoming", "future", "soon", "following", "scheduled"},
		DidWin:    []string{"did", "win"},
	}
}

// Vocabulary is the immutable lookup state shared by every handler: one
// Profile per sport plus the intent keyword sets. Build it once and pass it
// around; it is safe for concurrent use.
type Vocabulary struct {
	profiles []*Profile
	bySport  map[Sport]*Profile
	keywords Keywords
}

// NewVocabulary builds the football and basketball vocabularies.
func NewVocabulary() *Vocabulary {
	return newVocabulary(DefaultKeywords(), footballProfile(), basketballProfile())
}

func newVocabulary(kw Keywords, profiles ...*Profile) *Vocabulary {
	v := &Vocabulary{
		profiles: profiles,
		bySport:  make(map[Sport]*Profile, len(profiles)),
		keywords: kw,
	}
	for _, p := range profiles {
		v.bySport[p.Sport] = p
	}
	return v
}

// Profile returns the vocabulary record for s. Unknown sports get the
// Default profile.
func (v *Vocabulary) Profile(s Sport) *Profile {
	if p, ok := v.bySport[s]; ok {
		return p
	}
	return v.bySport[Default]
}

// Profiles lists every sport's record in document order.
func (v *Vocabulary) Profiles() []*Profile {
	return append([]*Profile(nil), v.profiles...)
}

// Keywords returns the intent keyword sets.
func (v *Vocabulary) Keywords() Keywords {
	return v.keywords
}

// Disambiguate picks the active sport. A non-empty explicit value wins and
// is returned as given (after recognizing "Soccer" and case variants).
// Otherwise basketball and football terms in text are tallied; basketball
// needs a strict majority, and ties or silence mean Football.
func (v *Vocabulary) Disambiguate(explicit, text string) Sport {
	if explicit = strings.TrimSpace(explicit); explicit != "" {
		if s, ok := Parse(explicit); ok {
			return s
		}
		return Sport(explicit)
	}

	text = Fold(text)
	football := countTerms(text, v.Profile(Football).terms)
	basketball := countTerms(text, v.Profile(Basketball).terms)
	if basketball > football {
		return Basketball
	}
	return Default
}

// LeagueFromText scans every sport's league aliases in document order and
// reports the first league named in text together with its sport.
func (v *Vocabulary) LeagueFromText(text string) (string, Sport, bool) {
	for _, p := range v.profiles {
		if l := p.LeagueFromText(text); l != "" {
			return l, p.Sport, true
		}
	}
	return "", "", false
}

// VenueSport reports which sport the venue words in text point to
// ("arena", "nba" against "stadium", "soccer"). A tie points nowhere.
func (v *Vocabulary) VenueSport(text string) (Sport, bool) {
	football := countTerms(text, v.Profile(Football).venueTerms)
	basketball := countTerms(text, v.Profile(Basketball).venueTerms)
	switch {
	case basketball > football:
		return Basketball, true
	case football > basketball:
		return Football, true
	}
	return "", false
}

// Intent returns the highest-priority intent whose keywords occur in text:
// standings, then fixture, score, scorers, stadium.
func (v *Vocabulary) Intent(text string) Intent {
	kw := v.keywords
	switch {
	case ContainsAny(text, kw.Standings):
		return IntentStandings
	case ContainsAny(text, kw.Fixture):
		return IntentFixture
	case ContainsAny(text, kw.Score):
		return IntentScore
	case ContainsAny(text, kw.Scorer):
		return IntentScorers
	case ContainsAny(text, kw.Stadium):
		return IntentStadium
	}
	return IntentNone
}

// AsksForTop reports a leader-only standings question.
func (v *Vocabulary) AsksForTop(text string) bool {
	return ContainsAny(text, v.keywords.Top)
}

// AsksUpcoming reports a question about future matches.
func (v *Vocabulary) AsksUpcoming(text string) bool {
	return ContainsAny(text, v.keywords.Upcoming)
}

// AsksDidWin reports a "did X win" question.
func (v *Vocabulary) AsksDidWin(text string) bool {
	return ContainsAll(text, v.keywords.DidWin)
}

// Fold prepares message text for keyword scans.
func Fold(text string) string {
	return norm.NFC.String(strings.ToLower(text))
}

func countTerms(text string, terms []string) int {
	n := 0
	for _, t := range terms {
		if strings.Contains(text, t) {
			n++
		}
	}
	return n
}
