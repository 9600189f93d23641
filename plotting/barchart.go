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
Bar chart rendering for the simulation metrics.
*/
package plotting

import (
	"image/color"
	"math"
	"os"
	"os/exec"
	"runtime"
	"strconv"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"github.com/fogsim/resultviz/config"
	"github.com/fogsim/resultviz/logging"
)

// BarChart describes a single annotated bar chart, one bar per
// configuration in row order.
type BarChart struct {
	Title  string
	XLabel string
	YLabel string
	Color  color.RGBA
	Labels []string  // category labels, one per bar
	Values []float64 // bar heights, same order as Labels
	Notes  []string  // per-bar annotation overrides; value text when empty
}

// annotation returns the text drawn above bar i: the override from
// Notes when set, otherwise the value to two decimal places.
func (bc *BarChart) annotation(i int) string {
	if i < len(bc.Notes) && bc.Notes[i] != "" {
		return bc.Notes[i]
	}
	return strconv.FormatFloat(bc.Values[i], 'f', 2, 64)
}

// Render draws the chart and writes it as a PNG to outPath, then opens
// the platform image viewer on it (best effort).
func (bc *BarChart) Render(outPath string) error {
	p := plot.New()
	p.Title.Text = bc.Title
	p.X.Label.Text = bc.XLabel
	p.Y.Label.Text = bc.YLabel

	// horizontal gridlines only, kept faint so they sit behind the bars
	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	grid.Horizontal.Color = color.RGBA{A: 70}
	p.Add(grid)

	bar, err := plotter.NewBarChart(plotter.Values(bc.Values), vg.Points(40))
	if err != nil {
		return errors.Wrap(err, "creating bar chart")
	}
	bar.Color = bc.Color
	bar.LineStyle.Width = vg.Points(0.5)
	bar.LineStyle.Color = color.Black
	p.Add(bar)
	p.NominalX(bc.Labels...)

	// rotate category labels so long configuration names stay legible
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter

	labels, err := bc.valueLabels()
	if err != nil {
		return errors.Wrap(err, "creating value labels")
	}
	p.Add(labels)

	if err := p.Save(config.ChartWidthInches*vg.Inch, config.ChartHeightInches*vg.Inch, outPath); err != nil {
		return errors.Wrapf(err, "saving %v", outPath)
	}
	logging.Printf("Saved: %v", outPath)
	ShowChart(outPath)
	return nil
}

// valueLabels builds the per-bar annotations drawn just above the bars.
func (bc *BarChart) valueLabels() (*plotter.Labels, error) {
	var max float64
	for _, v := range bc.Values {
		if v > max {
			max = v
		}
	}
	pad := max * 0.01

	xys := make([]plotter.XY, len(bc.Values))
	texts := make([]string, len(bc.Values))
	for i, v := range bc.Values {
		xys[i] = plotter.XY{X: float64(i), Y: v + pad}
		texts[i] = bc.annotation(i)
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = text.XCenter
		labels.TextStyle[i].YAlign = text.YBottom
	}
	return labels, nil
}

// ShowChart opens the chart in the platform image viewer. Viewing is
// best effort: the run continues whatever happens here.
func ShowChart(path string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		if os.Getenv("DISPLAY") == "" {
			return // headless, nothing to show on
		}
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		logging.Info("could not open image viewer: ", err)
	}
}
