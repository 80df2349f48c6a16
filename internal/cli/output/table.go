// Package output renders tokgen results for the terminal.
package output

import (
	"fmt"
	"io"
	"reflect"
	"strings"
	"text/tabwriter"
)

// TableFormatter formats data as an aligned table.
type TableFormatter struct {
	NoHeaders bool
}

// Format renders a *Table directly, a struct as FIELD/VALUE rows and a
// slice of structs as one row per element. Anything else is printed with %v.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	if data == nil {
		return nil
	}
	if t, ok := data.(*Table); ok {
		return t.RenderWithOptions(w, f.NoHeaders)
	}

	v := reflect.ValueOf(data)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		return structToTable(v).RenderWithOptions(w, f.NoHeaders)
	case reflect.Slice, reflect.Array:
		return sliceToTable(v).RenderWithOptions(w, f.NoHeaders)
	default:
		_, err := fmt.Fprintln(w, v.Interface())
		return err
	}
}

type column struct {
	name  string
	index []int
}

// columns lists exported fields by json name, flattening embedded structs
// and skipping json:"-".
func columns(t reflect.Type) []column {
	var cols []column
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := strings.Split(field.Tag.Get("json"), ",")[0]
		if tag == "-" {
			continue
		}
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			for _, c := range columns(field.Type) {
				cols = append(cols, column{name: c.name, index: append([]int{i}, c.index...)})
			}
			continue
		}
		if !field.IsExported() {
			continue
		}
		name := field.Name
		if tag != "" {
			name = tag
		}
		cols = append(cols, column{name: name, index: []int{i}})
	}
	return cols
}

func structToTable(v reflect.Value) *Table {
	t := &Table{Headers: []string{"FIELD", "VALUE"}}
	for _, c := range columns(v.Type()) {
		t.AddRow(c.name, formatValue(v.FieldByIndex(c.index)))
	}
	return t
}

func sliceToTable(v reflect.Value) *Table {
	t := &Table{}
	if v.Len() == 0 {
		return t
	}

	elemType := v.Type().Elem()
	for elemType.Kind() == reflect.Ptr {
		elemType = elemType.Elem()
	}
	if elemType.Kind() != reflect.Struct {
		t.SetHeaders("VALUE")
		for i := 0; i < v.Len(); i++ {
			t.AddRow(formatValue(v.Index(i)))
		}
		return t
	}

	cols := columns(elemType)
	for _, c := range cols {
		t.Headers = append(t.Headers, strings.ToUpper(c.name))
	}
	for i := 0; i < v.Len(); i++ {
		elem := reflect.Indirect(v.Index(i))
		row := make([]string, len(cols))
		for j, c := range cols {
			row[j] = formatValue(elem.FieldByIndex(c.index))
		}
		t.AddRow(row...)
	}
	return t
}

func formatValue(v reflect.Value) string {
	if !v.IsValid() {
		return ""
	}
	if (v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface) && v.IsNil() {
		return ""
	}
	v = reflect.Indirect(v)

	if v.Kind() == reflect.String && v.String() == "" {
		return "-"
	}
	return fmt.Sprintf("%v", v.Interface())
}

// Table represents tabular data.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Render renders the table to the writer.
func (t *Table) Render(w io.Writer) error {
	return t.RenderWithOptions(w, false)
}

// RenderWithOptions renders the table, optionally without the header row.
func (t *Table) RenderWithOptions(w io.Writer, noHeaders bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if !noHeaders && len(t.Headers) > 0 {
		fmt.Fprintln(tw, strings.Join(t.Headers, "\t"))
	}
	for _, row := range t.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	return tw.Flush()
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// SetHeaders sets the table headers.
func (t *Table) SetHeaders(headers ...string) {
	t.Headers = headers
}
