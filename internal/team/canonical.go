// Package team maps free-form team mentions onto canonical club keys and
// holds the static arena directory used when the results document has no
// venue for a club.
package team

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Entry is one club in the alias table.
type Entry struct {
	Key     string
	Aliases []string
}

// Canonicalizer resolves team text to a canonical key. It is immutable after
// construction and safe for concurrent use.
type Canonicalizer struct {
	entries []Entry
	keys    map[string]struct{}
	exact   map[string]string // alias -> first declaring key
}

// NewCanonicalizer builds a canonicalizer from an alias table. Entries that
// repeat a key are folded into the first entry with that key, keeping its
// position. Every key is also an alias of itself.
func NewCanonicalizer(table []Entry) *Canonicalizer {
	c := &Canonicalizer{
		keys:  make(map[string]struct{}, len(table)),
		exact: make(map[string]string),
	}
	index := make(map[string]int, len(table))

	for _, e := range table {
		key := fold(e.Key)
		if key == "" {
			continue
		}
		i, seen := index[key]
		if !seen {
			i = len(c.entries)
			index[key] = i
			c.keys[key] = struct{}{}
			c.entries = append(c.entries, Entry{Key: key, Aliases: []string{key}})
		}
		for _, a := range e.Aliases {
			a = fold(a)
			if a == "" || contains(c.entries[i].Aliases, a) {
				continue
			}
			c.entries[i].Aliases = append(c.entries[i].Aliases, a)
		}
	}

	for _, e := range c.entries {
		for _, a := range e.Aliases {
			if _, taken := c.exact[a]; !taken {
				c.exact[a] = e.Key
			}
		}
	}
	return c
}

// Default returns a canonicalizer over DefaultAliases.
func Default() *Canonicalizer {
	return NewCanonicalizer(DefaultAliases())
}

// Canonicalize maps team text to its canonical key:
//
//  1. exact match on a key, then on any alias
//  2. substring scan in table order (input inside an alias, or an alias
//     longer than three characters inside the input)
//  3. one club prefix ("fc ", "ud ", ...) stripped from the input
//
// Empty input yields "". The function is total and idempotent on every
// declared alias.
func (c *Canonicalizer) Canonicalize(name string) string {
	s := fold(name)
	if s == "" {
		return ""
	}
	if _, ok := c.keys[s]; ok {
		return s
	}
	if key, ok := c.exact[s]; ok {
		return key
	}

	for _, e := range c.entries {
		for _, a := range e.Aliases {
			if strings.Contains(a, s) {
				return e.Key
			}
			if utf8.RuneCountInString(a) > 3 && strings.Contains(s, a) {
				return e.Key
			}
		}
	}

	for _, p := range clubPrefixes {
		if strings.HasPrefix(s, p) {
			return strings.TrimPrefix(s, p)
		}
	}
	return s
}

// Entries returns a copy of the merged alias table in declaration order.
func (c *Canonicalizer) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	for i, e := range c.entries {
		out[i] = Entry{Key: e.Key, Aliases: append([]string(nil), e.Aliases...)}
	}
	return out
}

// fold lower-cases, trims and NFC-normalizes so decomposed accents compare
// equal to the table's precomposed ones.
func fold(s string) string {
	return norm.NFC.String(strings.ToLower(strings.TrimSpace(s)))
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
