package types

import (
	"encoding/json"
	"errors"
)

var ErrNotStringOrNumber = errors.New("value is neither a string nor a number")

// StringOrNumber keeps identifiers that upstream services emit either as
// JSON strings or as JSON numbers. Numbers keep their literal text.
type StringOrNumber string

func (s *StringOrNumber) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*s = ""
		return nil
	}

	var asStr string
	if err := json.Unmarshal(b, &asStr); err == nil {
		*s = StringOrNumber(asStr)
		return nil
	}

	var asNum json.Number
	if err := json.Unmarshal(b, &asNum); err == nil {
		*s = StringOrNumber(asNum.String())
		return nil
	}

	return ErrNotStringOrNumber
}

func (s StringOrNumber) String() string {
	return string(s)
}
