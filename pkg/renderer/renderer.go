/*
Copyright 2023 The Nuclio Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package renderer

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/nuclio/errors"
	"sigs.k8s.io/yaml"
)

// Tabular is implemented by objects that can be presented as a table
type Tabular interface {

	// GetTableHeader returns the column names
	GetTableHeader() []interface{}

	// GetTableRecords returns the rows, each holding a value per column
	GetTableRecords() [][]interface{}
}

type Renderer struct {
	output io.Writer
}

func NewRenderer(output io.Writer) *Renderer {
	return &Renderer{
		output: output,
	}
}

func (r *Renderer) RenderTable(title string, header []interface{}, records [][]interface{}) {
	tw := table.NewWriter()
	tw.SetOutputMirror(r.output)
	tw.SetStyle(table.Style{
		Name: "Nuclio",
		Box: table.BoxStyle{
			MiddleVertical: "|",
			PaddingLeft:    " ",
			PaddingRight:   " ",
		},
		Options: table.Options{
			DoNotColorBordersAndSeparators: true,
			DrawBorder:                     false,
			SeparateColumns:                true,
			SeparateFooter:                 false,
			SeparateHeader:                 false,
			SeparateRows:                   false,
		},
		Color:  table.ColorOptionsDefault,
		Format: table.FormatOptionsDefault,
		HTML:   table.DefaultHTMLOptions,
		Title:  table.TitleOptionsDefault,
	})

	if title != "" {
		tw.SetTitle(title)
	}

	tw.AppendHeader(r.rowInterfaceToTableRow(header), table.RowConfig{})
	tw.AppendRows(r.rowsStringToTableRows(records), table.RowConfig{})
	tw.Render()
}

// RenderTabular renders an object that knows its own table layout
func (r *Renderer) RenderTabular(title string, tabular Tabular) {
	r.RenderTable(title, tabular.GetTableHeader(), tabular.GetTableRecords())
}

// RenderAttributes renders a map as a two column table, ordered by key
func (r *Renderer) RenderAttributes(title string, attributes map[string]interface{}) {
	keys := make([]string, 0, len(attributes))
	for key := range attributes {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	records := make([][]interface{}, 0, len(keys))
	for _, key := range keys {
		records = append(records, []interface{}{key, attributes[key]})
	}

	r.RenderTable(title, []interface{}{"Key", "Value"}, records)
}

// RenderValue prints a value in its default format, prefixed by a title when given
func (r *Renderer) RenderValue(title string, value interface{}) error {
	var err error

	if title != "" {
		_, err = fmt.Fprintf(r.output, "%s: %v\n", title, value)
	} else {
		_, err = fmt.Fprintf(r.output, "%v\n", value)
	}

	if err != nil {
		return errors.Wrap(err, "Failed to render value")
	}

	return nil
}

func (r *Renderer) RenderYAML(items interface{}) error {
	body, err := yaml.Marshal(items)
	if err != nil {
		return errors.Wrap(err, "Failed to render YAML")
	}

	if _, err := r.output.Write(body); err != nil {
		return errors.Wrap(err, "Failed to write YAML")
	}

	return nil
}

func (r *Renderer) RenderJSON(items interface{}, indent string, escapeHTML bool) error {
	encoder := json.NewEncoder(r.output)
	encoder.SetIndent("", indent)
	encoder.SetEscapeHTML(escapeHTML)

	if err := encoder.Encode(items); err != nil {
		return errors.Wrap(err, "Failed to render JSON")
	}

	return nil
}

func (r *Renderer) rowsStringToTableRows(rows [][]interface{}) []table.Row {
	tableRows := make([]table.Row, len(rows))
	for rowIndex, rowValue := range rows {
		tableRows[rowIndex] = r.rowInterfaceToTableRow(rowValue)
	}
	return tableRows
}

func (r *Renderer) rowInterfaceToTableRow(row []interface{}) table.Row {
	tableRow := make(table.Row, len(row))
	copy(tableRow, row)
	return tableRow
}
