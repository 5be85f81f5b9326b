// SPDX-License-Identifier: Unlicense OR MIT

package ir

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Sansa-Organisation/vidra-sub001/core"
)

// DataRow is one record of a DataSet: column name to string value.
type DataRow map[string]string

// DataSet is a tabular data-binding source loaded from CSV or JSON,
// used to drive batch/templated renders (one scene instance per row).
type DataSet struct {
	Columns []string
	Rows    []DataRow
}

// LoadDataSet loads a DataSet from path, dispatching on file
// extension: .csv or .json.
func LoadDataSet(path string) (*DataSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, core.Wrap(core.KindAsset, core.Node{}, "read dataset "+path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return loadCSV(data)
	case ".json":
		return loadJSON(data)
	default:
		return nil, core.NewError(core.KindAsset, core.Node{},
			"unsupported dataset extension: "+filepath.Ext(path))
	}
}

func loadCSV(data []byte) (*DataSet, error) {
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	var nonEmpty []string
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			nonEmpty = append(nonEmpty, l)
		}
	}
	if len(nonEmpty) == 0 {
		return &DataSet{}, nil
	}
	columns := parseCSVLine(nonEmpty[0])
	ds := &DataSet{Columns: columns}
	for _, line := range nonEmpty[1:] {
		fields := parseCSVLine(line)
		row := make(DataRow, len(columns))
		for i, col := range columns {
			if i < len(fields) {
				row[col] = fields[i]
			}
		}
		ds.Rows = append(ds.Rows, row)
	}
	return ds, nil
}

// parseCSVLine splits a single CSV line on unquoted commas, trimming
// each field and stripping its surrounding quotes if present.
func parseCSVLine(line string) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	fields = append(fields, strings.TrimSpace(cur.String()))
	return fields
}

func loadJSON(data []byte) (*DataSet, error) {
	var rows []map[string]interface{}
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, core.Wrap(core.KindAsset, core.Node{}, "parse json dataset", err)
	}
	if len(rows) == 0 {
		return &DataSet{}, nil
	}
	columns := make([]string, 0, len(rows[0]))
	for k := range rows[0] {
		columns = append(columns, k)
	}
	ds := &DataSet{Columns: columns}
	for _, r := range rows {
		row := make(DataRow, len(columns))
		for _, col := range columns {
			row[col] = stringifyJSONValue(r[col])
		}
		ds.Rows = append(ds.Rows, row)
	}
	return ds, nil
}

func stringifyJSONValue(v interface{}) string {
	switch vv := v.(type) {
	case nil:
		return ""
	case string:
		return vv
	default:
		return fmt.Sprintf("%v", vv)
	}
}

// Interpolate substitutes every literal "{{key}}" occurrence in
// template with row[key], leaving unmatched placeholders as literal
// text.
func Interpolate(template string, row DataRow) string {
	var out strings.Builder
	i := 0
	for i < len(template) {
		start := strings.Index(template[i:], "{{")
		if start == -1 {
			out.WriteString(template[i:])
			break
		}
		start += i
		out.WriteString(template[i:start])
		end := strings.Index(template[start:], "}}")
		if end == -1 {
			out.WriteString(template[start:])
			break
		}
		end += start
		key := strings.TrimSpace(template[start+2 : end])
		if v, ok := row[key]; ok {
			out.WriteString(v)
		} else {
			out.WriteString(template[start : end+2])
		}
		i = end + 2
	}
	return out.String()
}
