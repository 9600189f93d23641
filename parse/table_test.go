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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable(t *testing.T) {
	h1 := NewHeader("min")
	h2 := NewHeader("avg")
	h3 := NewHeader("max")
	caption := "caption"
	round := 2

	str := &strings.Builder{}
	tab, _, err := InitTable("Metric", []Header{h1, h2, h3}, str)
	assert.Nil(t, err)
	_, err = tab.AddRow("Delay", []interface{}{1, 2.2222, 3}, round)
	assert.Nil(t, err)
	_, err = tab.AddRow("Energy Consumption", []interface{}{4.44444, 5, 9.99999}, round)
	assert.Nil(t, err)
	_, err = tab.Done(caption)
	assert.Nil(t, err)

	out := str.String()
	assert.Contains(t, out, "\\begin{tabular}{ l | c c c }")
	assert.Contains(t, out, "Metric & min & avg & max")
	assert.Contains(t, out, "Delay & 1 & 2.22 & 3")
	assert.Contains(t, out, "Energy Consumption & 4.44 & 5 & 10")
	assert.Contains(t, out, "\\caption{caption}")
}

func TestTableWrongValueCount(t *testing.T) {
	str := &strings.Builder{}
	tab, _, err := InitTable("Metric", []Header{NewHeader("avg")}, str)
	assert.Nil(t, err)
	_, err = tab.AddRow("Delay", []interface{}{1, 2}, 2)
	assert.NotNil(t, err)
}

func TestRoundFloat(t *testing.T) {
	assert.Equal(t, 2.22, roundFloat(2.2222, 2))
	assert.Equal(t, 2.22, roundFloat("2.2222", 2))
	assert.Equal(t, "notanumber", roundFloat("notanumber", 2))
	assert.Equal(t, 7, roundFloat(7, 2))
}
