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

package report

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"

	"laptudirm.com/x/swiss/pkg/swiss"
)

// Chart renders the standings' match points as a PNG bar chart, one
// bar per competitor in standing order.
func Chart(standings []swiss.Standing, w io.Writer) error {
	if len(standings) == 0 {
		return fmt.Errorf("render chart: no standings to chart")
	}

	most := 1 // keep the value range non-degenerate for 0-0 events
	bars := make([]chart.Value, 0, len(standings))
	for _, standing := range standings {
		if standing.MatchPoints > most {
			most = standing.MatchPoints
		}

		bars = append(bars, chart.Value{
			Label: standing.Name,
			Value: float64(standing.MatchPoints),
		})
	}

	graph := chart.BarChart{
		Title: "Match Points",

		Width:  chartWidth(len(bars)),
		Height: 512,

		BarWidth:   40,
		BarSpacing: 16,

		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: float64(most)},
		},

		Bars: bars,
	}

	return graph.Render(chart.PNG, w)
}

// chartWidth sizes the canvas to its bars; large tournaments grow wide
// instead of squeezing the labels together.
func chartWidth(bars int) int {
	width := 120 + 56*bars
	if width < 480 {
		width = 480
	}

	return width
}
