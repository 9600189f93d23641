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
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/fogsim/resultviz/config"
	"github.com/fogsim/resultviz/logging"
	"github.com/fogsim/resultviz/plotting"
)

// MetricSeries is one charted metric together with the numeric values
// that made it onto the chart.
type MetricSeries struct {
	Metric Metric
	Values []float64
}

// GenCharts locates and loads the results file under root, then writes
// one bar chart per recognized metric next to root, plus a summary
// table of the charted metrics. Metrics that cannot be classified are
// skipped with a warning; if none can be classified at all, guidance on
// the accepted input shapes is printed and no error is returned.
func GenCharts(root string) error {
	path, err := LocateResults(root)
	if err != nil {
		return err
	}
	logging.Printf("Reading data from: %v", path)

	ds, err := LoadDataset(path)
	if err != nil {
		return err
	}
	logging.Printf("Columns found: %v", ds.Columns)
	logging.Print("First few rows:")
	logging.Print(ds.Preview(config.PreviewRows))

	var charted []MetricSeries
	if hasMetricColumns(ds) {
		logging.Print("Detected column-based structure")
		charted = chartColumns(ds, root)
	} else {
		logging.Print("Trying row-based structure")
		charted = chartRows(ds, root)
	}

	if len(charted) == 0 {
		printFormatGuidance()
		return nil
	}

	if err := writeSummaryTable(root, charted); err != nil {
		logging.Warning("could not write summary table: ", err)
	}
	return nil
}

// hasMetricColumns reports whether at least one metric can be
// classified onto a column.
func hasMetricColumns(ds *Dataset) bool {
	for _, m := range Metrics {
		if _, ok := ds.FindColumn(m.Keywords); ok {
			return true
		}
	}
	return false
}

// chartColumns renders one chart per metric that classifies onto a
// column, in declared metric order, and returns the charted series.
func chartColumns(ds *Dataset, root string) []MetricSeries {
	var charted []MetricSeries
	for _, m := range Metrics {
		col, ok := ds.FindColumn(m.Keywords)
		if !ok {
			logging.Warningf("Could not find column for %v", m.Name)
			logging.Warningf("Available columns: %v", ds.Columns)
			continue
		}

		cells := ds.Column(col)
		values := make([]float64, len(cells))
		notes := make([]string, len(cells))
		var numeric []float64
		for i, cell := range cells {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				// still drawn, as a zero-height bar annotated with the raw text
				notes[i] = cell
				continue
			}
			values[i] = v
			numeric = append(numeric, v)
		}

		bc := plotting.BarChart{
			Title:  m.Title(),
			XLabel: "Configuration",
			YLabel: m.YLabel,
			Color:  m.Color,
			Labels: categoryLabels(ds, col, len(values)),
			Values: values,
			Notes:  notes,
		}
		if err := bc.Render(filepath.Join(root, m.GraphFileName())); err != nil {
			logging.Errorf("Could not chart %v: %v", m.Name, err)
			continue
		}
		charted = append(charted, MetricSeries{Metric: m, Values: numeric})
	}
	return charted
}

// chartRows renders one chart per metric found via the row-structure
// fallback, in declared metric order, and returns the charted series.
func chartRows(ds *Dataset, root string) []MetricSeries {
	series := CollectRowSeries(ds)
	var charted []MetricSeries
	for _, m := range Metrics {
		values, ok := series[m.Name]
		if !ok {
			continue
		}
		bc := plotting.BarChart{
			Title:  m.Title(),
			XLabel: "Configuration",
			YLabel: m.YLabel,
			Color:  m.Color,
			Labels: configLabels(len(values)),
			Values: values,
		}
		if err := bc.Render(filepath.Join(root, m.GraphFileName())); err != nil {
			logging.Errorf("Could not chart %v: %v", m.Name, err)
			continue
		}
		charted = append(charted, MetricSeries{Metric: m, Values: values})
	}
	return charted
}

// categoryLabels picks the bar labels for a metric column: the cells of
// the dataset's first column when it is a different column, otherwise
// synthesized configuration names.
func categoryLabels(ds *Dataset, metricCol string, n int) []string {
	if len(ds.Columns) > 1 && ds.Columns[0] != metricCol {
		return ds.Column(ds.Columns[0])
	}
	return configLabels(n)
}

// configLabels synthesizes "Config 1".."Config n".
func configLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("Config %d", i+1)
	}
	return labels
}

// writeSummaryTable writes a LaTeX tabular of min/avg/max per charted
// metric next to root.
func writeSummaryTable(root string, charted []MetricSeries) error {
	path := filepath.Join(root, config.TableFileName)
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %v", path)
	}
	defer func() {
		_ = f.Close()
	}()

	tab, _, err := InitTable("Metric", []Header{NewHeader("min"), NewHeader("avg"), NewHeader("max")}, f)
	if err != nil {
		return err
	}
	for _, nxt := range charted {
		if len(nxt.Values) == 0 {
			continue
		}
		min, avg, max := summarize(nxt.Values)
		if _, err := tab.AddRow(nxt.Metric.Name, []interface{}{min, avg, max}, 2); err != nil {
			return err
		}
	}
	if _, err := tab.Done("Simulation results summary"); err != nil {
		return err
	}
	logging.Printf("Saved: %v", path)
	return nil
}

func summarize(values []float64) (min, avg, max float64) {
	min = values[0]
	max = values[0]
	var sum float64
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		sum += v
	}
	return min, sum / float64(len(values)), max
}

// printFormatGuidance shows the two accepted input shapes when no
// metric could be classified either way.
func printFormatGuidance() {
	logging.Print("Could not automatically detect metric columns.")
	logging.Print("Please check the structure of " + config.ResultsFileName + ".")
	logging.Print("Expected format:")
	logging.Print("Option 1 - Column-based:")
	logging.Print("  Configuration, Execution Time, Delay, Energy, Network Usage")
	logging.Print("  Config1, 100, 50, 200, 1000")
	logging.Print("Option 2 - Row-based:")
	logging.Print("  Metric, Config1, Config2, Config3")
	logging.Print("  Execution Time, 100, 120, 110")
	logging.Print("  Delay, 50, 55, 52")
}
