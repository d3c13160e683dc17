package scoring

import (
	"strconv"

	"skillsummary/internal/errors"
)

// ValueKind is the type tag carried by a raw store attribute.
type ValueKind string

const (
	Number ValueKind = "N"
	String ValueKind = "S"
)

// Value is one singly-tagged attribute value from the score store. The store
// transports every payload as a string; Kind says how to read it.
type Value struct {
	Kind ValueKind
	Raw  string
}

// NumberValue builds a numeric Value.
func NumberValue(raw string) Value {
	return Value{Kind: Number, Raw: raw}
}

// StringValue builds a string Value.
func StringValue(raw string) Value {
	return Value{Kind: String, Raw: raw}
}

// Float unwraps the tagged payload and coerces it to a float64. String-tagged
// payloads are coerced too, matching how upstream writers sometimes stringify
// numeric scores.
func (v Value) Float() (float64, error) {
	f, err := strconv.ParseFloat(v.Raw, 64)
	if err != nil {
		return 0, errors.InvalidInput("attribute value " + strconv.Quote(v.Raw) + " is not numeric")
	}
	return f, nil
}

// Record is one raw score item keyed by attribute name. It may carry
// attributes outside the skill schema; extraction ignores those.
type Record map[string]Value
