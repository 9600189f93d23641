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
General configuration settings.
*/
package config

type Logtype int

const (
	GOLOG Logtype = iota // uses the default go logger
	FMT                  // prints logs using fmt package
)

type LogFmtLevel int

const (
	LOGERROR LogFmtLevel = iota
	LOGWARNING
	LOGINFO
)

const (
	// for logging
	LoggingType     = FMT
	LoggingFmtLevel = LOGINFO

	// ResultsFileName is the file the simulation writes its metrics to.
	ResultsFileName = "results.csv"

	// PreviewRows is the number of data rows echoed after loading.
	PreviewRows = 5

	// Chart geometry in inches, matching the simulation report layout.
	ChartWidthInches  = 10
	ChartHeightInches = 6

	// GraphFileSuffix is appended to a metric's file stem when naming chart output.
	GraphFileSuffix = "_graph.png"

	// TableFileName is the file the per-metric summary table is written to.
	TableFileName = "results_table.tex"
)

// ResultsSearchDirs are the directories checked for ResultsFileName,
// relative to the project root, in search order. The empty entry is the
// root itself.
var ResultsSearchDirs = []string{"", "output", "results"}
