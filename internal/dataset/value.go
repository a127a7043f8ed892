package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Value is a scalar field from the results document rendered as text.
// Documents are hand-edited, so the same field may arrive as a string in one
// record and a number in the next ("points": 50 vs "points": "50").
type Value string

// UnmarshalJSON accepts any JSON scalar. Null decodes to "".
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty value")
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Value(s)
	case 'n':
		*v = ""
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*v = Value(strconv.FormatBool(b))
	case '{', '[':
		return fmt.Errorf("expected scalar, got %s", kindOf(data[0]))
	default:
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return fmt.Errorf("parse number %q: %w", data, err)
		}
		*v = Value(strconv.FormatFloat(f, 'f', -1, 64))
	}
	return nil
}

// String returns the text form.
func (v Value) String() string {
	return string(v)
}

// Or returns v, or fallback when v is empty.
func (v Value) Or(fallback string) string {
	if v == "" {
		return fallback
	}
	return string(v)
}

func kindOf(b byte) string {
	if b == '{' {
		return "object"
	}
	return "array"
}
