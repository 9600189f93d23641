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
	"io"
	"math"
	"strconv"
)

// Header names a column of a PrintTable.
type Header struct {
	name string
}

func NewHeader(name string) Header {
	return Header{name: name}
}

// PrintTable writes a LaTeX tabular to its writer, one row at a time.
type PrintTable struct {
	headers []Header
	writer  io.Writer
	n       int
}

// InitTable starts a table with the given left header and one column
// per header, writing the tabular preamble.
func InitTable(leftHeader string, headers []Header, writer io.Writer) (ret *PrintTable, n int, err error) {
	defer func() {
		n = ret.n
	}()

	ret = &PrintTable{
		headers: headers,
		writer:  writer,
	}
	if err = ret.writeStr("\\begin{table}\n\\centering\n\\begin{tabular}{ l |"); err != nil {
		return
	}
	for range headers {
		if err = ret.writeStr(" c"); err != nil {
			return
		}
	}
	if err = ret.writeStr(fmt.Sprintf(" }\n%v", leftHeader)); err != nil {
		return
	}
	for _, nxt := range headers {
		if err = ret.writeStr(fmt.Sprintf(" & %v", nxt.name)); err != nil {
			return
		}
	}
	if err = ret.writeStr(" \\\\\n\\hline\n"); err != nil {
		return
	}
	return
}

func (pt *PrintTable) writeStr(str string) error {
	n, err := pt.writer.Write([]byte(str))
	pt.n += n
	return err
}

func roundFloat(nxt interface{}, roundTo int) interface{} {
	round := math.Pow(10, float64(roundTo))
	ret := nxt
	switch v := nxt.(type) {
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			ret = math.Round(f*round) / round
		}
	case float32:
		ret = math.Round(float64(v)*round) / round
	case float64:
		ret = math.Round(v*round) / round
	}
	return ret
}

// AddRow writes one table row, rounding numeric values to roundTo
// decimal places. values must have one entry per header.
func (pt *PrintTable) AddRow(title interface{}, values []interface{}, roundTo int) (n int, err error) {
	defer func() {
		n = pt.n
	}()
	pt.n = 0

	if len(values) != len(pt.headers) {
		return 0, fmt.Errorf("got %v values for %v headers", len(values), len(pt.headers))
	}
	if err = pt.writeStr(fmt.Sprintf("%v", title)); err != nil {
		return
	}
	for _, nxt := range values {
		if err = pt.writeStr(fmt.Sprintf(" & %v", roundFloat(nxt, roundTo))); err != nil {
			return
		}
	}
	if err = pt.writeStr(" \\\\ \n"); err != nil {
		return
	}
	return
}

// Done closes the tabular, adding the caption.
func (pt *PrintTable) Done(caption string) (n int, err error) {
	defer func() {
		n = pt.n
	}()
	pt.n = 0
	if err = pt.writeStr(fmt.Sprintf("\\end{tabular}\n"+
		"\\caption{%v}\\label{tab:%v}\n"+
		"\\end{table}\n\n",
		caption, caption)); err != nil {

		return
	}
	return
}
