// Copyright © 2025 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package report renders a tournament's final standings for humans:
// a terminal table, a bar chart and a spreadsheet workbook.
package report

import (
	"fmt"
	"strings"

	"laptudirm.com/x/swiss/pkg/swiss"
)

// Table renders the standings as a bordered terminal table, best
// competitor first. The champion's row is highlighted, and competitors
// who sat out a round carry a * after their name.
func Table(standings []swiss.Standing) string {
	var table strings.Builder

	table.WriteString("╔═══════════════════════════════════════════════════╗\n")
	table.WriteString("║     Name                  MP   OMWP   GWP    OGWP ║\n")
	table.WriteString("╠═══════════════════════════════════════════════════╣\n")
	for i, standing := range standings {
		bye := " "
		if standing.HasBye {
			bye = "*"
		}

		format := "║ %2d. %-18s %s %3d   %.2f   %.2f   %.2f ║\n"
		if i == 0 {
			format = "║ \x1b[32m%2d. %-18s %s %3d   %.2f   %.2f   %.2f\x1b[0m ║\n"
		}

		table.WriteString(fmt.Sprintf(
			format,
			i+1, standing.Name, bye,
			standing.MatchPoints,
			standing.OMWP, standing.GWP, standing.OGWP,
		))
	}
	table.WriteString("╚═══════════════════════════════════════════════════╝\n")

	return table.String()
}
