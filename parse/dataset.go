/*
github.com/fogsim/resultviz - Visualization of fog simulation results.
Copyright (C) 2026 The project authors - fogsim

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.

*/
/*
This package loads the results table written by the simulation, classifies
its metrics and generates the output charts and summary table.
*/
package parse

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/fogsim/resultviz/config"
)

// MissingInputError is returned by LocateResults when no candidate
// location holds a results file.
type MissingInputError struct {
	Searched []string
}

func (e *MissingInputError) Error() string {
	var b strings.Builder
	b.WriteString(config.ResultsFileName + " not found, searched in the following locations:")
	for _, loc := range e.Searched {
		b.WriteString("\n  - ")
		b.WriteString(loc)
	}
	b.WriteString("\nPlease ensure " + config.ResultsFileName + " exists in one of these locations.")
	b.WriteString("\nThe simulation should generate this file after running.")
	return b.String()
}

// LocateResults returns the first existing results file under root,
// checking the locations in config.ResultsSearchDirs order.
func LocateResults(root string) (string, error) {
	searched := make([]string, 0, len(config.ResultsSearchDirs))
	for _, dir := range config.ResultsSearchDirs {
		loc := filepath.Join(root, dir, config.ResultsFileName)
		if _, err := os.Stat(loc); err == nil {
			return loc, nil
		}
		searched = append(searched, loc)
	}
	return "", &MissingInputError{Searched: searched}
}

// Dataset is a results table loaded from a CSV file. Columns and Rows
// keep the file order; cells stay strings until a caller needs numbers.
// A Dataset is never mutated after loading.
type Dataset struct {
	Columns []string
	Rows    [][]string
}

// LoadDataset parses the CSV file at path. The first record is taken as
// the header row, everything after it as data rows.
func LoadDataset(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %v", path)
	}
	defer func() {
		_ = f.Close()
	}()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "reading %v", path)
	}
	if len(records) == 0 {
		return nil, errors.Errorf("no header row in %v", path)
	}
	return &Dataset{Columns: records[0], Rows: records[1:]}, nil
}

// ColumnIndex returns the position of name in ds.Columns, or -1 when
// no column carries that name.
func (ds *Dataset) ColumnIndex(name string) int {
	for i, col := range ds.Columns {
		if col == name {
			return i
		}
	}
	return -1
}

// Column returns the full ordered sequence of cells under name, or nil
// when the column does not exist.
func (ds *Dataset) Column(name string) []string {
	idx := ds.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	vals := make([]string, 0, len(ds.Rows))
	for _, row := range ds.Rows {
		if idx < len(row) {
			vals = append(vals, row[idx])
		}
	}
	return vals
}

// Preview formats the header plus the first n data rows for logging.
func (ds *Dataset) Preview(n int) string {
	if n > len(ds.Rows) {
		n = len(ds.Rows)
	}
	var b strings.Builder
	b.WriteString(strings.Join(ds.Columns, ", "))
	for _, row := range ds.Rows[:n] {
		b.WriteString("\n")
		b.WriteString(strings.Join(row, ", "))
	}
	return b.String()
}
