package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// errNotObject marks a JSON value that is valid but not an object.
var errNotObject = errors.New("not a JSON object")

// Parse decodes a results document. Only a malformed document or a
// non-object top level is an error; unexpected shapes further down are
// skipped so a partly hand-edited file still answers what it can.
func Parse(data []byte) (*Dataset, error) {
	ds := &Dataset{}
	err := eachMember(data, func(name string, raw json.RawMessage) error {
		table := SportTable{Name: name}
		_ = eachMember(raw, func(league string, raw json.RawMessage) error {
			table.Leagues = append(table.Leagues, decodeLeague(league, raw))
			return nil
		})
		ds.Sports = append(ds.Sports, table)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("decode results document: %w", err)
	}
	return ds, nil
}

// decodeLeague keeps non-object leagues as empty entries: they still count
// as leagues of the sport when reporting which leagues lack data.
func decodeLeague(name string, data json.RawMessage) League {
	l := League{Name: name}
	_ = eachMember(data, func(key string, raw json.RawMessage) error {
		if key == standingsKey {
			if rows, ok := decodeRecords[Standing](raw, "standings", name); ok {
				l.Standings = rows
			}
			return nil
		}
		if md, ok := decodeMatchday(key, raw); ok {
			l.Matchdays = append(l.Matchdays, md)
		}
		return nil
	})
	return l
}

// decodeMatchday reads every list member as a roster. Lists that are not
// match records are ignored.
func decodeMatchday(name string, data json.RawMessage) (Matchday, bool) {
	md := Matchday{Name: name, rosters: make(map[string][]Match)}
	err := eachMember(data, func(key string, raw json.RawMessage) error {
		if matches, ok := decodeRecords[Match](raw, key, name); ok {
			md.rosters[key] = matches
		}
		return nil
	})
	return md, err == nil
}

// decodeRecords decodes a JSON list one record at a time. A record with an
// unexpected shape is dropped on its own; the rest of the list survives.
// ok is false only when data is not a list.
func decodeRecords[T any](data json.RawMessage, list, parent string) ([]T, bool) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, false
	}
	out := make([]T, 0, len(items))
	for i, item := range items {
		var rec T
		if err := json.Unmarshal(item, &rec); err != nil {
			slog.Debug("skipping malformed record", "parent", parent, "list", list, "index", i, "error", err)
			continue
		}
		out = append(out, rec)
	}
	return out, true
}

// eachMember walks the members of a JSON object in document order.
func eachMember(data []byte, fn func(key string, raw json.RawMessage) error) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errNotObject
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected object key %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("member %q: %w", key, err)
		}
		if err := fn(key, raw); err != nil {
			return err
		}
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return errors.New("trailing data after object")
	}
	return nil
}

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}
