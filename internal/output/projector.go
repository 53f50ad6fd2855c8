package output

import (
	"strings"

	"github.com/iancoleman/orderedmap"
)

// Project returns the value narrowed to the named fields, in the requested
// order. Fields are dotted paths resolving into nested mappings. A path
// absent on a given record yields an explicit null for that record rather
// than an error, so heterogeneous sequences still render uniformly.
// A nil field list returns the value unchanged.
func Project(v Value, fields []string) (Value, error) {
	if len(fields) == 0 {
		return v, nil
	}

	records, isSequence, err := Records(v)
	if err != nil {
		return nil, err
	}

	projected := make([]*orderedmap.OrderedMap, len(records))
	for i, record := range records {
		projected[i] = projectRecord(record, fields)
	}

	if !isSequence {
		return projected[0], nil
	}
	return projected, nil
}

func projectRecord(record *orderedmap.OrderedMap, fields []string) *orderedmap.OrderedMap {
	out := orderedmap.New()
	for _, field := range fields {
		value, _ := lookupPath(record, field)
		out.Set(field, value)
	}
	return out
}

// lookupPath resolves a dotted path against nested ordered mappings
func lookupPath(record *orderedmap.OrderedMap, path string) (interface{}, bool) {
	var current interface{} = record
	for _, segment := range strings.Split(path, ".") {
		var (
			value interface{}
			ok    bool
		)
		switch node := current.(type) {
		case *orderedmap.OrderedMap:
			value, ok = node.Get(segment)
		case orderedmap.OrderedMap:
			value, ok = node.Get(segment)
		default:
			return nil, false
		}
		if !ok {
			return nil, false
		}
		current = value
	}
	return current, true
}
