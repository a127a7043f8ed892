// Package sport holds the fixed vocabulary the query handlers work from:
// which sports exist, how each one names its leagues, rounds, rosters and
// venues, and the keyword sets used to read intent out of a message.
package sport

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Sport is the top-level key of the results document.
type Sport string

const (
	Football   Sport = "Football"
	Basketball Sport = "Basketball"
)

// Default is chosen whenever nothing points elsewhere.
const Default = Football

// All lists the supported sports in document order.
var All = []Sport{Football, Basketball}

// title upper-cases the first letter of each word. Casers carry state, so
// one is built per call.
func title(s string) string {
	return cases.Title(language.English).String(s)
}

// Parse recognizes an explicit sport value. "Soccer" is Football.
func Parse(s string) (Sport, bool) {
	switch title(strings.TrimSpace(s)) {
	case "Football", "Soccer":
		return Football, true
	case "Basketball":
		return Basketball, true
	}
	return "", false
}

// Lower returns the sport name for use mid-sentence.
func (s Sport) Lower() string {
	return strings.ToLower(string(s))
}

// ContainsAny reports whether text contains any of the words as a substring.
func ContainsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// ContainsAll reports whether text contains every word as a substring.
func ContainsAll(text string, words []string) bool {
	for _, w := range words {
		if !strings.Contains(text, w) {
			return false
		}
	}
	return len(words) > 0
}
