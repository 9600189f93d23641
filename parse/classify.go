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

package parse

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/fogsim/resultviz/config"
)

// Metric describes one of the tracked performance dimensions and how
// to recognize it in a results table.
type Metric struct {
	Name     string
	Keywords []string
	YLabel   string
	Color    color.RGBA
}

// Metrics lists the tracked metrics. Order matters: classification is
// first match wins in this order, so a column such as "Network Delay"
// lands on whichever keyword group is declared first.
var Metrics = []Metric{
	{
		Name:     "Execution Time",
		Keywords: []string{"execution", "time", "exec"},
		YLabel:   "Execution Time (ms)",
		Color:    color.RGBA{R: 70, G: 130, B: 180, A: 255}, // steel blue
	},
	{
		Name:     "Delay",
		Keywords: []string{"delay"},
		YLabel:   "Delay (ms)",
		Color:    color.RGBA{G: 128, A: 255}, // green
	},
	{
		Name:     "Energy Consumption",
		Keywords: []string{"energy", "power"},
		YLabel:   "Energy Consumption (J)",
		Color:    color.RGBA{R: 128, B: 128, A: 255}, // purple
	},
	{
		Name:     "Network Usage",
		Keywords: []string{"network", "usage", "bandwidth"},
		YLabel:   "Network Usage (Bytes)",
		Color:    color.RGBA{R: 255, G: 165, A: 255}, // orange
	},
}

// Title returns the chart title used for the metric.
func (m Metric) Title() string {
	return m.Name + " Comparison"
}

// FileStem returns the output file name stem derived from the metric
// name, spaces replaced by underscores and lower-cased.
func (m Metric) FileStem() string {
	return strings.ToLower(strings.ReplaceAll(m.Name, " ", "_"))
}

// GraphFileName returns the name of the chart file for the metric.
func (m Metric) GraphFileName() string {
	return m.FileStem() + config.GraphFileSuffix
}

// matchesKeywords reports whether text contains any of the keywords as
// a case-insensitive substring.
func matchesKeywords(text string, keywords []string) bool {
	text = strings.ToLower(text)
	for _, keyword := range keywords {
		if strings.Contains(text, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}

// FindColumn returns the name of the first column (in dataset order)
// containing any of the keywords as a case-insensitive substring.
// When several columns match only the first is used.
func (ds *Dataset) FindColumn(keywords []string) (string, bool) {
	for _, col := range ds.Columns {
		if matchesKeywords(col, keywords) {
			return col, true
		}
	}
	return "", false
}

// CollectRowSeries reinterprets ds as metrics-in-rows: the first cell
// of each row names a metric and the remaining cells are its series
// across configurations. The first matching row wins per metric. Cells
// that do not parse as numbers are dropped from the series; a metric
// counts as found only if at least one numeric cell remains.
func CollectRowSeries(ds *Dataset) map[string][]float64 {
	series := make(map[string][]float64)
	for _, row := range ds.Rows {
		if len(row) == 0 {
			continue
		}
		for _, m := range Metrics {
			if _, ok := series[m.Name]; ok {
				continue
			}
			if !matchesKeywords(row[0], m.Keywords) {
				continue
			}
			var values []float64
			for _, cell := range row[1:] {
				v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
				if err != nil {
					continue // non-numeric cell, drop it
				}
				values = append(values, v)
			}
			if len(values) > 0 {
				series[m.Name] = values
			}
		}
	}
	return series
}
