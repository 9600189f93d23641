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

package plotting

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testChart() BarChart {
	return BarChart{
		Title:  "Delay Comparison",
		XLabel: "Configuration",
		YLabel: "Delay (ms)",
		Color:  color.RGBA{G: 128, A: 255},
		Labels: []string{"Config 1", "Config 2"},
		Values: []float64{50, 55},
	}
}

func TestBarChartRender(t *testing.T) {
	out := filepath.Join(t.TempDir(), "delay_graph.png")
	bc := testChart()

	require.Nil(t, bc.Render(out))

	info, err := os.Stat(out)
	require.Nil(t, err)
	assert.True(t, info.Size() > 0)
}

func TestBarChartRenderDeterministic(t *testing.T) {
	dir := t.TempDir()
	bc := testChart()

	require.Nil(t, bc.Render(filepath.Join(dir, "a.png")))
	require.Nil(t, bc.Render(filepath.Join(dir, "b.png")))

	a, err := os.ReadFile(filepath.Join(dir, "a.png"))
	require.Nil(t, err)
	b, err := os.ReadFile(filepath.Join(dir, "b.png"))
	require.Nil(t, err)
	assert.Equal(t, a, b)
}

func TestAnnotation(t *testing.T) {
	bc := testChart()
	assert.Equal(t, "50.00", bc.annotation(0))
	assert.Equal(t, "55.00", bc.annotation(1))

	bc.Notes = []string{"", "n/a"}
	assert.Equal(t, "50.00", bc.annotation(0))
	assert.Equal(t, "n/a", bc.annotation(1))
}
