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

	"github.com/xuri/excelize/v2"

	"laptudirm.com/x/swiss/pkg/swiss"
)

// Match is one recorded result, kept around by the drivers so the
// workbook can replay the tournament round by round.
type Match struct {
	Round int

	Home string
	Away string

	HomeScore int
	AwayScore int
	Drawn     int
}

// Sheet names of the exported workbook.
const (
	StandingsSheet = "Standings"
	RoundsSheet    = "Rounds"
)

// Workbook builds an xlsx workbook out of the tournament: a Standings
// sheet with the full tiebreak record of every competitor, and a
// Rounds sheet with every recorded result. Callers own the returned
// file and should Close it once saved.
func Workbook(standings []swiss.Standing, matches []Match) (*excelize.File, error) {
	file := excelize.NewFile()

	if err := file.SetSheetName(file.GetSheetName(file.GetActiveSheetIndex()), StandingsSheet); err != nil {
		return nil, fmt.Errorf("build workbook: %w", err)
	}

	rows := [][]any{
		{"Rank", "Name", "Match Points", "Game Points", "Matches", "Games", "OMWP", "GWP", "OGWP", "Bye"},
	}
	for i, standing := range standings {
		rows = append(rows, []any{
			i + 1, standing.Name,
			standing.MatchPoints, standing.GamePoints,
			standing.MatchesPlayed, standing.GamesPlayed,
			standing.OMWP, standing.GWP, standing.OGWP,
			standing.HasBye,
		})
	}

	if err := writeRows(file, StandingsSheet, rows); err != nil {
		return nil, fmt.Errorf("build workbook: %w", err)
	}

	if _, err := file.NewSheet(RoundsSheet); err != nil {
		return nil, fmt.Errorf("build workbook: %w", err)
	}

	rows = [][]any{
		{"Round", "Home", "Away", "Home Score", "Away Score", "Drawn"},
	}
	for _, match := range matches {
		rows = append(rows, []any{
			match.Round, match.Home, match.Away,
			match.HomeScore, match.AwayScore, match.Drawn,
		})
	}

	if err := writeRows(file, RoundsSheet, rows); err != nil {
		return nil, fmt.Errorf("build workbook: %w", err)
	}

	return file, nil
}

func writeRows(file *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}

		if err := file.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	return nil
}
