package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/swiss/pkg/common"
	"laptudirm.com/x/swiss/pkg/report"
	"laptudirm.com/x/swiss/pkg/roster"
	"laptudirm.com/x/swiss/pkg/swiss"
	"laptudirm.com/x/swiss/pkg/viewer"
)

// swiss run roster
func Run() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run roster",
		Short: "Conduct a Swiss tournament over the given roster",
		Args:  cobra.ExactArgs(1),
		Long: heredoc.Doc(`run conducts a complete Swiss-system tournament between the
			competitors of the given roster and prints the final standings
			once every round has been scored.

			The roster is either a file with one competitor per line, or a
			directory of pictures where every file is a competitor: the
			file names become the competitors' names, and each pairing's
			portraits are opened side by side in the configured image
			viewer while its scores are being entered.

			Scores are entered as the number of games, 0 to 2, won by each
			side of a pairing. A 1-1 score implies a third, drawn game.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, _ := cmd.Flags().GetInt64("seed")

			path := args[0]
			info, err := os.Stat(path)
			if err != nil {
				return err
			}

			names, err := roster.Load(path)
			if err != nil {
				return err
			}

			config, err := common.LoadConfig()
			if err != nil {
				return err
			}

			players := make([]*swiss.Player, 0, len(names))
			for _, name := range names {
				players = append(players, swiss.NewPlayer(name))
			}

			tour := swiss.NewTournament(players, newRand(seed))
			logrus.Infof(
				"Conducting a \x1b[33m%d\x1b[0m round tournament between \x1b[33m%d\x1b[0m competitors\n",
				tour.Rounds, len(players),
			)

			keeper := &scorekeeper{
				tour:     tour,
				scores:   bufio.NewScanner(os.Stdin),
				roster:   path,
				pictures: info.IsDir(),
			}

			if keeper.pictures {
				keeper.viewer = viewer.New(config.Viewer)
			}

			if err := keeper.conduct(); err != nil {
				return err
			}

			standings := tour.Ranking()
			fmt.Print("\n=== RESULTS ===\n\n")
			fmt.Print(report.Table(standings))

			return export(cmd, standings, keeper.matches)
		},
	}

	cmd.Flags().Int64("seed", 0, "Seed for the pairing shuffles, 0 picks one")
	cmd.Flags().Bool("chart", false, "Export a standings chart to the reports directory")
	cmd.Flags().Bool("workbook", false, "Export a results workbook to the reports directory")

	return cmd
}

// scorekeeper drives one live tournament, prompting the terminal for
// every pairing's scores and showing portraits for picture rosters.
type scorekeeper struct {
	tour   *swiss.Tournament
	scores *bufio.Scanner

	roster   string
	pictures bool
	viewer   *viewer.Viewer

	matches []report.Match
}

func (keeper *scorekeeper) conduct() error {
	for {
		pairs, more := keeper.tour.NextRound()
		if !more {
			return nil
		}

		fmt.Printf("\n=== ROUND %d/%d ===\n", keeper.tour.CurrentRound, keeper.tour.Rounds)
		for i, pair := range pairs {
			fmt.Printf("[%d] %s vs %s\n", i+1, keeper.name(pair.Home), keeper.name(pair.Away))
		}

		for _, pair := range pairs {
			if err := keeper.resolve(pair); err != nil {
				return err
			}
		}
	}
}

// resolve shows the pairing's portraits, prompts for its scores until
// the rules accept them, and records the result.
func (keeper *scorekeeper) resolve(pair swiss.Pair) error {
	if keeper.viewer != nil {
		session, err := keeper.viewer.Show(
			filepath.Join(keeper.roster, pair.Home),
			filepath.Join(keeper.roster, pair.Away),
		)
		if err != nil {
			// Scores can still be entered without the portraits.
			logrus.Error(err)
		}

		defer session.Close()
	}

	home := keeper.name(pair.Home)
	away := keeper.name(pair.Away)
	fmt.Printf("\nPAIRING:\n[1] %s\n[2] %s\n\n", home, away)

	for {
		homeScore, err := keeper.readScore(1, home)
		if errors.Is(err, errNotScore) {
			fmt.Println("Could not parse score into an integer!")
			continue
		}

		if err != nil {
			return err
		}

		awayScore, err := keeper.readScore(2, away)
		if errors.Is(err, errNotScore) {
			fmt.Println("Could not parse score into an integer!")
			continue
		}

		if err != nil {
			return err
		}

		// A 1-1 score implies a third game which was drawn.
		drawn := 0
		if homeScore == 1 && awayScore == 1 {
			drawn = 1
		}

		err = keeper.tour.RecordResult(pair.ID, homeScore, awayScore, drawn)
		if err == nil {
			keeper.matches = append(keeper.matches, report.Match{
				Round: keeper.tour.CurrentRound,
				Home:  pair.Home, Away: pair.Away,
				HomeScore: homeScore, AwayScore: awayScore, Drawn: drawn,
			})

			return nil
		}

		var invalid *swiss.OutOfRangeError
		if errors.As(err, &invalid) {
			fmt.Printf("Error recording result: %s\n", err)
			continue
		}

		return err
	}
}

var errNotScore = errors.New("run: score is not a whole number")

func (keeper *scorekeeper) readScore(seat int, name string) (int, error) {
	fmt.Printf("[%d] %s > ", seat, name)

	if !keeper.scores.Scan() {
		if err := keeper.scores.Err(); err != nil {
			return 0, err
		}

		return 0, errors.New("run: score input ended early")
	}

	score, err := strconv.Atoi(strings.TrimSpace(keeper.scores.Text()))
	if err != nil {
		return 0, errNotScore
	}

	return score, nil
}

// name strips the file extension off picture competitors; prompts read
// better as "fern 3" than "fern 3.png".
func (keeper *scorekeeper) name(competitor string) string {
	if !keeper.pictures {
		return competitor
	}

	return strings.TrimSuffix(competitor, filepath.Ext(competitor))
}

// newRand builds the engine's random source: fixed when a seed was
// given, fresh otherwise.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		return nil
	}

	return rand.New(rand.NewSource(seed))
}

// export honors the --chart and --workbook flags shared by the
// tournament commands, writing into the reports directory.
func export(cmd *cobra.Command, standings []swiss.Standing, matches []report.Match) error {
	if chart, _ := cmd.Flags().GetBool("chart"); chart {
		common.TryMkdir(common.ReportsDirectory)
		path := filepath.Join(common.ReportsDirectory, "standings.png")

		file, err := os.Create(path)
		if err != nil {
			return err
		}

		if err := report.Chart(standings, file); err != nil {
			_ = file.Close()
			return err
		}

		if err := file.Close(); err != nil {
			return err
		}

		logrus.Infof("Exported the standings chart to \x1b[32m%s\x1b[0m\n", path)
	}

	if workbook, _ := cmd.Flags().GetBool("workbook"); workbook {
		common.TryMkdir(common.ReportsDirectory)
		path := filepath.Join(common.ReportsDirectory, "tournament.xlsx")

		file, err := report.Workbook(standings, matches)
		if err != nil {
			return err
		}

		if err := file.SaveAs(path); err != nil {
			return err
		}

		if err := file.Close(); err != nil {
			return err
		}

		logrus.Infof("Exported the results workbook to \x1b[32m%s\x1b[0m\n", path)
	}

	return nil
}
