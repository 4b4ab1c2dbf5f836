package types

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

var ErrNotInteger = errors.New("value is not an integer")

// IntOrString decodes form-style numeric input sent either as a JSON number
// or as a numeric string ("3", " 3 ").
type IntOrString int

func (i *IntOrString) UnmarshalJSON(b []byte) error {
	var asInt int
	if err := json.Unmarshal(b, &asInt); err == nil {
		*i = IntOrString(asInt)
		return nil
	}

	var asStr string
	if err := json.Unmarshal(b, &asStr); err == nil {
		parsed, err := strconv.Atoi(strings.TrimSpace(asStr))
		if err != nil {
			return ErrNotInteger
		}
		*i = IntOrString(parsed)
		return nil
	}

	return ErrNotInteger
}

func (i IntOrString) Int() int {
	return int(i)
}
