package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, v Value, opts Options) string {
	t.Helper()
	out := new(bytes.Buffer)
	require.NoError(t, Render(out, v, opts))
	return out.String()
}

func TestRenderJSON(t *testing.T) {
	t.Run("should pretty print a single record preserving key order", func(t *testing.T) {
		record := decodeRecord(t, `{"name":"Morning Run","distance":5000,"sport_type":"Run"}`)

		out := render(t, record, Options{Format: FormatJSON})

		assert.Equal(t, `{
  "name": "Morning Run",
  "distance": 5000,
  "sport_type": "Run"
}
`, out)
	})

	t.Run("should render a sequence as one JSON array", func(t *testing.T) {
		records := decodeRecords(t, `[{"id":1},{"id":2}]`)

		out := render(t, records, Options{Format: FormatJSON})

		assert.True(t, strings.HasPrefix(out, "[\n"))
		assert.Equal(t, 1, strings.Count(out, `"id": 1`))
		assert.Equal(t, 1, strings.Count(out, `"id": 2`))
	})

	t.Run("should render an empty sequence as an empty array", func(t *testing.T) {
		out := render(t, decodeRecords(t, `[]`), Options{Format: FormatJSON})
		assert.Equal(t, "[]\n", out)
	})
}

func TestRenderJSONLines(t *testing.T) {
	t.Run("should render one compact object per line with no enclosing array", func(t *testing.T) {
		records := decodeRecords(t, `[{"id":1,"name":"a"},{"id":2,"name":"b"}]`)

		out := render(t, records, Options{Format: FormatJSONL})

		assert.Equal(t, `{"id":1,"name":"a"}
{"id":2,"name":"b"}
`, out)
	})

	t.Run("should render a single value as exactly one line", func(t *testing.T) {
		record := decodeRecord(t, `{"id":1}`)

		out := render(t, record, Options{Format: FormatJSONL})

		assert.Equal(t, "{\"id\":1}\n", out)
	})
}

func TestRenderCSV(t *testing.T) {
	t.Run("should emit the header in first-seen key order then data", func(t *testing.T) {
		record := decodeRecord(t, `{"name":"Morning Run","distance":5000,"sport_type":"Run"}`)

		out := render(t, record, Options{Format: FormatCSV})

		assert.Equal(t, "name,distance,sport_type\nMorning Run,5000,Run\n", out)
	})

	t.Run("should suppress the header when requested", func(t *testing.T) {
		record := decodeRecord(t, `{"name":"Morning Run","distance":5000}`)

		out := render(t, record, Options{Format: FormatCSV, NoHeader: true})

		assert.Equal(t, "Morning Run,5000\n", out)
	})

	t.Run("should use the union of keys across heterogeneous records", func(t *testing.T) {
		records := decodeRecords(t, `[{"a":1,"b":2},{"b":3,"c":4}]`)

		out := render(t, records, Options{Format: FormatCSV})

		assert.Equal(t, "a,b,c\n1,2,\n,3,4\n", out)
	})

	t.Run("should JSON-encode nested values into their cell", func(t *testing.T) {
		records := decodeRecords(t, `[{"id":1,"athlete":{"id":7,"name":"sam"}}]`)

		out := render(t, records, Options{Format: FormatCSV})

		lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, `1,"{""id"":7,""name"":""sam""}"`, lines[1])
	})

	t.Run("should escape delimiters and quotes per the quoting rule", func(t *testing.T) {
		record := decodeRecord(t, `{"name":"Run, with \"quotes\"","id":1}`)

		out := render(t, record, Options{Format: FormatCSV, NoHeader: true})

		assert.Equal(t, "\"Run, with \"\"quotes\"\"\",1\n", out)
	})
}

func TestRenderTSVDiffersFromCSVOnlyInDelimiter(t *testing.T) {
	records := decodeRecords(t, `[{"name":"Morning Run","distance":5000},{"name":"Evening Ride","distance":20000}]`)
	opts := Options{Fields: []string{"name", "distance"}}

	opts.Format = FormatCSV
	csvOut := render(t, records, opts)

	opts.Format = FormatTSV
	tsvOut := render(t, records, opts)

	assert.Equal(t, csvOut, strings.ReplaceAll(tsvOut, "\t", ","))
}

func TestRenderHuman(t *testing.T) {
	records := decodeRecords(t, `[{"name":"Morning Run","distance":5000},{"name":"Lunch Swim","distance":null}]`)

	out := render(t, records, Options{Format: FormatHuman})

	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "DISTANCE")
	assert.Contains(t, out, "Morning Run")
	assert.Contains(t, out, "5000")
	assert.Contains(t, out, "-")
}

func TestRenderFieldSetIsIdenticalAcrossFormats(t *testing.T) {
	records := decodeRecords(t, `[{"a":1,"b":{"c":2}},{"a":3,"d":4}]`)
	fields := []string{"a", "b.c", "d"}

	for _, format := range []Format{FormatJSON, FormatJSONL, FormatCSV, FormatTSV, FormatHuman} {
		t.Run(format.String(), func(t *testing.T) {
			out := render(t, records, Options{Format: format, Fields: fields})
			for _, field := range fields {
				check := field
				if format == FormatHuman {
					check = strings.ToUpper(field)
				}
				assert.Contains(t, out, check, "format %s must render field %s", format, field)
			}
		})
	}
}

func TestRenderRejectsUnknownFormat(t *testing.T) {
	out := new(bytes.Buffer)
	err := Render(out, decodeRecord(t, `{"a":1}`), Options{Format: Format("xml")})
	assert.Error(t, err)
}

func TestFormatFlagValue(t *testing.T) {
	var f Format
	assert.NoError(t, f.Set("tsv"))
	assert.Equal(t, FormatTSV, f)

	assert.Error(t, f.Set("yaml"))
	assert.Equal(t, FormatTSV, f, "an invalid value must not clobber the previous one")
}
