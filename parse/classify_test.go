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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindColumn(t *testing.T) {
	ds := &Dataset{Columns: []string{"Configuration", "Execution Time", "Delay", "Energy", "Network Usage"}}

	col, ok := ds.FindColumn([]string{"execution", "time", "exec"})
	assert.True(t, ok)
	assert.Equal(t, "Execution Time", col)

	col, ok = ds.FindColumn([]string{"delay"})
	assert.True(t, ok)
	assert.Equal(t, "Delay", col)

	_, ok = ds.FindColumn([]string{"latency"})
	assert.False(t, ok)
}

func TestFindColumnCaseInsensitive(t *testing.T) {
	ds := &Dataset{Columns: []string{"total_EXEC_ms"}}

	col, ok := ds.FindColumn([]string{"execution", "time", "exec"})
	assert.True(t, ok)
	assert.Equal(t, "total_EXEC_ms", col)

	col, ok = ds.FindColumn([]string{"TOTAL"})
	assert.True(t, ok)
	assert.Equal(t, "total_EXEC_ms", col)
}

func TestFindColumnFirstMatchWins(t *testing.T) {
	// "Network Delay" matches the delay keywords before "Delay" does
	ds := &Dataset{Columns: []string{"Network Delay", "Delay"}}

	col, ok := ds.FindColumn([]string{"delay"})
	assert.True(t, ok)
	assert.Equal(t, "Network Delay", col)
}

func TestMetricNames(t *testing.T) {
	var m Metric
	for _, nxt := range Metrics {
		if nxt.Name == "Energy Consumption" {
			m = nxt
		}
	}
	require.NotEmpty(t, m.Name)
	assert.Equal(t, "energy_consumption", m.FileStem())
	assert.Equal(t, "energy_consumption_graph.png", m.GraphFileName())
	assert.Equal(t, "Energy Consumption Comparison", m.Title())
}

func TestCollectRowSeries(t *testing.T) {
	ds := &Dataset{
		Columns: []string{"Metric", "Config1", "Config2"},
		Rows: [][]string{
			{"Execution Time", "100", "120"},
			{"Delay", "50", "55"},
		},
	}

	series := CollectRowSeries(ds)
	require.Len(t, series, 2)
	assert.Equal(t, []float64{100, 120}, series["Execution Time"])
	assert.Equal(t, []float64{50, 55}, series["Delay"])
}

func TestCollectRowSeriesDropsBadCells(t *testing.T) {
	ds := &Dataset{
		Columns: []string{"Metric", "Config1", "Config2", "Config3"},
		Rows: [][]string{
			{"Energy", "10", "notanumber", "30"},
			{"Network Usage", "n/a", "n/a", "n/a"},
		},
	}

	series := CollectRowSeries(ds)
	require.Len(t, series, 1)
	assert.Equal(t, []float64{10, 30}, series["Energy Consumption"])
}

func TestCollectRowSeriesFirstRowWins(t *testing.T) {
	ds := &Dataset{
		Columns: []string{"Metric", "Config1"},
		Rows: [][]string{
			{"Delay", "50"},
			{"Average Delay", "999"},
		},
	}

	series := CollectRowSeries(ds)
	require.Len(t, series, 1)
	assert.Equal(t, []float64{50}, series["Delay"])
}

func TestCollectRowSeriesMultipleMetricsPerRow(t *testing.T) {
	// a row naming two metric groups populates both
	ds := &Dataset{
		Columns: []string{"Metric", "Config1"},
		Rows: [][]string{
			{"Network Delay", "42"},
		},
	}

	series := CollectRowSeries(ds)
	require.Len(t, series, 2)
	assert.Equal(t, []float64{42}, series["Delay"])
	assert.Equal(t, []float64{42}, series["Network Usage"])
}
