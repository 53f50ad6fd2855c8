package output

import (
	"encoding/json"
	"testing"

	"github.com/iancoleman/orderedmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeRecord(t *testing.T, data string) *orderedmap.OrderedMap {
	t.Helper()
	record := orderedmap.New()
	require.NoError(t, json.Unmarshal([]byte(data), record))
	return record
}

func decodeRecords(t *testing.T, data string) []*orderedmap.OrderedMap {
	t.Helper()
	var records []*orderedmap.OrderedMap
	require.NoError(t, json.Unmarshal([]byte(data), &records))
	return records
}

func TestProjectWithoutFieldsReturnsValueUnchanged(t *testing.T) {
	record := decodeRecord(t, `{"name":"Morning Run","distance":5000}`)

	projected, err := Project(record, nil)
	require.NoError(t, err)
	assert.Equal(t, Value(record), projected)
}

func TestProjectSelectsFieldsInRequestedOrder(t *testing.T) {
	record := decodeRecord(t, `{"distance":5000,"name":"Morning Run","sport_type":"Run"}`)

	projected, err := Project(record, []string{"name", "distance"})
	require.NoError(t, err)

	out, ok := projected.(*orderedmap.OrderedMap)
	require.True(t, ok)
	assert.Equal(t, []string{"name", "distance"}, out.Keys())

	name, _ := out.Get("name")
	assert.Equal(t, "Morning Run", name)
}

func TestProjectResolvesDottedPathsAndMissingFields(t *testing.T) {
	records := decodeRecords(t, `[{"a":1,"b":{"c":2}}]`)

	projected, err := Project(records, []string{"b.c", "d"})
	require.NoError(t, err)

	out, ok := projected.([]*orderedmap.OrderedMap)
	require.True(t, ok)
	require.Len(t, out, 1)
	assert.Equal(t, []string{"b.c", "d"}, out[0].Keys())

	c, ok := out[0].Get("b.c")
	require.True(t, ok)
	assert.Equal(t, float64(2), c)

	d, ok := out[0].Get("d")
	require.True(t, ok, "missing path must yield an explicit null, not an absent key")
	assert.Nil(t, d)
}

func TestProjectIsLenientPerRecord(t *testing.T) {
	records := decodeRecords(t, `[{"athlete":{"id":7}},{"name":"no athlete here"}]`)

	projected, err := Project(records, []string{"athlete.id", "name"})
	require.NoError(t, err)

	out := projected.([]*orderedmap.OrderedMap)
	require.Len(t, out, 2)

	id, _ := out[0].Get("athlete.id")
	assert.Equal(t, float64(7), id)
	name, _ := out[0].Get("name")
	assert.Nil(t, name)

	id, _ = out[1].Get("athlete.id")
	assert.Nil(t, id)
	name, _ = out[1].Get("name")
	assert.Equal(t, "no athlete here", name)
}

func TestProjectDoesNotMutateInput(t *testing.T) {
	record := decodeRecord(t, `{"a":1,"b":2}`)

	_, err := Project(record, []string{"b"})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, record.Keys())
}

func TestProjectRejectsUnrenderableValue(t *testing.T) {
	_, err := Project(42, []string{"a"})
	assert.Error(t, err)
}
