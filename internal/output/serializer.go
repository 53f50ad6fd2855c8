package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/eddmann/strava-cli/internal/cli/feedback"

	"github.com/iancoleman/orderedmap"
	"github.com/jedib0t/go-pretty/v6/table"
)

// humanCellWidthMax bounds a single cell in human tables so one long
// description cannot corrupt the column alignment
const humanCellWidthMax = 60

// Options configure how a Value is rendered
type Options struct {
	Format   Format
	Fields   []string
	NoHeader bool
}

// Render writes the value to w in the requested format. The same projected
// field set is rendered for every format; only the encoding differs. The
// input value is never mutated, and sequences are written record by record
// where the format's syntax allows it.
func Render(w io.Writer, v Value, opts Options) error {
	projected, err := Project(v, opts.Fields)
	if err != nil {
		return err
	}

	switch format := opts.Format; format {
	case FormatJSON, "":
		return renderJSON(w, projected)
	case FormatJSONL:
		return renderJSONLines(w, projected)
	case FormatCSV:
		return renderDelimited(w, projected, ',', opts)
	case FormatTSV:
		return renderDelimited(w, projected, '\t', opts)
	case FormatHuman:
		return renderHuman(w, projected, opts)
	default:
		return feedback.NewSerializationErr(fmt.Errorf("unsupported output format type: %s", format))
	}
}

func renderJSON(w io.Writer, v Value) error {
	records, isSequence, err := Records(v)
	if err != nil {
		return err
	}

	var doc interface{} = v
	if isSequence && records == nil {
		doc = []*orderedmap.OrderedMap{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return feedback.NewSerializationErr(err)
	}

	_, err = fmt.Fprintln(w, string(data))
	return err
}

func renderJSONLines(w io.Writer, v Value) error {
	records, _, err := Records(v)
	if err != nil {
		return err
	}

	for _, record := range records {
		data, err := json.Marshal(record)
		if err != nil {
			return feedback.NewSerializationErr(err)
		}
		if _, err := fmt.Fprintln(w, string(data)); err != nil {
			return err
		}
	}
	return nil
}

func renderDelimited(w io.Writer, v Value, delimiter rune, opts Options) error {
	records, _, err := Records(v)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	cols := columns(records, opts.Fields)

	cw := csv.NewWriter(w)
	cw.Comma = delimiter

	if !opts.NoHeader {
		if err := cw.Write(cols); err != nil {
			return err
		}
	}

	row := make([]string, len(cols))
	for _, record := range records {
		for i, col := range cols {
			value, _ := record.Get(col)
			cell, err := cellString(value)
			if err != nil {
				return err
			}
			row[i] = cell
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func renderHuman(w io.Writer, v Value, opts Options) error {
	records, _, err := Records(v)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	cols := columns(records, opts.Fields)

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)

	header := make(table.Row, len(cols))
	configs := make([]table.ColumnConfig, len(cols))
	for i, col := range cols {
		header[i] = strings.ToUpper(col)
		configs[i] = table.ColumnConfig{Number: i + 1, WidthMax: humanCellWidthMax}
	}
	tw.AppendHeader(header)
	tw.SetColumnConfigs(configs)

	for _, record := range records {
		row := make(table.Row, len(cols))
		for i, col := range cols {
			value, ok := record.Get(col)
			if !ok || value == nil {
				row[i] = "-"
				continue
			}
			cell, err := cellString(value)
			if err != nil {
				return err
			}
			row[i] = cell
		}
		tw.AppendRow(row)
	}

	tw.Render()
	return nil
}

// columns determines the column set: the explicit field list when given,
// otherwise the union of all record keys in the order first encountered
func columns(records []*orderedmap.OrderedMap, fields []string) []string {
	if len(fields) > 0 {
		return fields
	}

	var cols []string
	seen := make(map[string]struct{})
	for _, record := range records {
		for _, key := range record.Keys() {
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			cols = append(cols, key)
		}
	}
	return cols
}

// cellString serializes a single field value for a table cell. Nested
// mappings and sequences keep their canonical JSON text form rather than
// being dropped or flattened further.
func cellString(value interface{}) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case json.Number:
		return v.String(), nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return "", feedback.NewSerializationErr(err)
		}
		return string(data), nil
	}
}
