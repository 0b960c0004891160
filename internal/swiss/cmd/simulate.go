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

package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/swiss/pkg/report"
	"laptudirm.com/x/swiss/pkg/swiss"
)

const SPIN = 31

// swiss simulate
func Simulate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simulate a full tournament between generated competitors",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`simulate plays an entire tournament out without a scorekeeper:
			the roster is filled with generated names and every pairing is
			scored as a best-of-three with random game results.

			With a fixed --seed the whole event is reproducible: the names,
			pairings, byes and scores come out the same every time.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, _ := cmd.Flags().GetInt("players")
			seed, _ := cmd.Flags().GetInt64("seed")

			if count < 1 {
				return fmt.Errorf("simulate: at least 1 competitor required, have %d", count)
			}

			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			rng := rand.New(rand.NewSource(seed))

			// Generated names collide sometimes, regenerate until unique.
			faker := gofakeit.New(uint64(seed))
			players := make([]*swiss.Player, 0, count)
			taken := make(map[string]bool, count)
			for len(players) < count {
				name := faker.Name()
				if taken[name] {
					continue
				}

				taken[name] = true
				players = append(players, swiss.NewPlayer(name))
			}

			tour := swiss.NewTournament(players, rng)
			logrus.Infof(
				"Simulating a \x1b[33m%d\x1b[0m round tournament between \x1b[33m%d\x1b[0m competitors\n",
				tour.Rounds, count,
			)

			s := spinner.New(spinner.CharSets[SPIN], 100*time.Millisecond)
			s.Start()
			defer s.Stop()

			var matches []report.Match
			for {
				pairs, more := tour.NextRound()
				if !more {
					break
				}

				s.Suffix = fmt.Sprintf(" Round %d of %d", tour.CurrentRound, tour.Rounds)

				for _, pair := range pairs {
					homeScore, awayScore, drawn := playMatch(rng)
					if err := tour.RecordResult(pair.ID, homeScore, awayScore, drawn); err != nil {
						return err
					}

					logrus.Infof(
						"Round #%d: %s \x1b[33m%d-%d-%d\x1b[0m %s\n",
						tour.CurrentRound, pair.Home,
						homeScore, awayScore, drawn, pair.Away,
					)

					matches = append(matches, report.Match{
						Round: tour.CurrentRound,
						Home:  pair.Home, Away: pair.Away,
						HomeScore: homeScore, AwayScore: awayScore, Drawn: drawn,
					})
				}
			}

			s.Stop()

			standings := tour.Ranking()
			fmt.Print("\n=== RESULTS ===\n\n")
			fmt.Print(report.Table(standings))

			return export(cmd, standings, matches)
		},
	}

	cmd.Flags().IntP("players", "p", 16, "Number of generated competitors")
	cmd.Flags().Int64("seed", 0, "Seed for the entire simulation, 0 picks one")
	cmd.Flags().Bool("chart", false, "Export a standings chart to the reports directory")
	cmd.Flags().Bool("workbook", false, "Export a results workbook to the reports directory")

	return cmd
}

// playMatch plays one pairing out as a best-of-three: games fall at
// random until somebody takes two or three have been played.
func playMatch(rng *rand.Rand) (home, away, drawn int) {
	for home < 2 && away < 2 && home+away+drawn < 3 {
		switch rng.Intn(3) {
		case 0:
			home++
		case 1:
			away++
		default:
			drawn++
		}
	}

	return home, away, drawn
}
