package diagram

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/rcakit/ishikawa/pkg/errors"
)

// rawInput mirrors Input with untyped fields so that a sloppy producer
// (numbers, booleans, nulls where strings belong) does not fail the decode.
type rawInput struct {
	Effect     any           `json:"effect"`
	Categories []rawCategory `json:"categories"`
}

type rawCategory struct {
	Label any   `json:"label"`
	Items []any `json:"items"`
}

// Decode reads a JSON diagram input from r. Non-string labels and items are
// coerced to their textual representation rather than rejected; only
// malformed JSON yields an error.
func Decode(r io.Reader) (Input, error) {
	var raw rawInput
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return Input{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode diagram input")
	}
	return fromRaw(raw), nil
}

// DecodeBytes is a convenience wrapper around Decode for in-memory payloads.
func DecodeBytes(data []byte) (Input, error) {
	var raw rawInput
	if err := json.Unmarshal(data, &raw); err != nil {
		return Input{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode diagram input")
	}
	return fromRaw(raw), nil
}

func fromRaw(raw rawInput) Input {
	in := Input{Effect: coerce(raw.Effect)}
	for _, rc := range raw.Categories {
		c := Category{Label: coerce(rc.Label)}
		for _, item := range rc.Items {
			c.Items = append(c.Items, coerce(item))
		}
		in.Categories = append(in.Categories, c)
	}
	return in
}

// coerce turns any JSON scalar into its textual form. Nulls become empty
// strings so downstream placeholder handling kicks in.
func coerce(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
