package output

import (
	"fmt"

	"github.com/eddmann/strava-cli/internal/cli/feedback"

	"github.com/iancoleman/orderedmap"
)

// Value is a structured API result prior to formatting: either a single
// record or a sequence of records, each an ordered mapping from field name
// to a scalar, nested mapping, or sequence. Key order is the order first
// encountered on the wire.
type Value interface{}

// Records normalizes a Value into its underlying record sequence,
// reporting whether the value was a sequence to begin with
func Records(v Value) ([]*orderedmap.OrderedMap, bool, error) {
	switch value := v.(type) {
	case *orderedmap.OrderedMap:
		return []*orderedmap.OrderedMap{value}, false, nil
	case orderedmap.OrderedMap:
		return []*orderedmap.OrderedMap{&value}, false, nil
	case []*orderedmap.OrderedMap:
		return value, true, nil
	case nil:
		return nil, true, nil
	default:
		return nil, false, feedback.NewSerializationErr(fmt.Errorf("unrenderable value of type %T", v))
	}
}

// Record constructs a single ordered record from alternating key/value pairs,
// preserving the order the pairs are given in
func Record(pairs ...interface{}) *orderedmap.OrderedMap {
	o := orderedmap.New()
	for i := 0; i+1 < len(pairs); i += 2 {
		o.Set(fmt.Sprint(pairs[i]), pairs[i+1])
	}
	return o
}
