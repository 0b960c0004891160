package swiss

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestRounds(t *testing.T) {
	cases := []struct {
		players int
		rounds  int
	}{
		{1, 0}, {2, 1}, {3, 2}, {4, 2}, {8, 3},
		{13, 4}, {16, 4}, {60, 6}, {64, 6},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%d players", tc.players), func(t *testing.T) {
			tour := NewTournament(numberedPlayers(tc.players), rand.New(rand.NewSource(1)))
			require.Equal(t, tc.rounds, tour.Rounds)
		})
	}
}

// numberedPlayers builds the roster "Player 1" through "Player n".
func numberedPlayers(n int) []*Player {
	players := make([]*Player, 0, n)
	for i := 1; i <= n; i++ {
		players = append(players, NewPlayer(fmt.Sprintf("Player %d", i)))
	}

	return players
}

// playerNumber recovers i from a "Player i" name.
func playerNumber(t *testing.T, name string) int {
	t.Helper()

	number, err := strconv.Atoi(strings.TrimPrefix(name, "Player "))
	require.NoError(t, err, "roster name %q", name)
	return number
}

// playTournament drives a whole event under the policy that the higher
// numbered player always wins 2-1, checking the scheduling invariants
// round by round: the pairing set is a perfect matching over the active
// roster and nobody ever faces the same opponent twice. The policy
// makes the outcome independent of where the random byes land, since a
// bye's 2-0 and a played 2-1 are both worth six game points.
func playTournament(t *testing.T, tour *Tournament, n int) {
	t.Helper()

	met := make(map[string]bool)

	rounds := 0
	for {
		pairs, more := tour.NextRound()
		if !more {
			break
		}

		rounds++
		require.Equal(t, rounds, tour.CurrentRound)
		require.Len(t, pairs, n/2)

		paired := make(map[string]bool, n)
		for _, pair := range pairs {
			require.False(t, paired[pair.Home], "%s paired twice in round %d", pair.Home, rounds)
			require.False(t, paired[pair.Away], "%s paired twice in round %d", pair.Away, rounds)
			paired[pair.Home] = true
			paired[pair.Away] = true

			matchup := pair.Home + " vs " + pair.Away
			if pair.Away < pair.Home {
				matchup = pair.Away + " vs " + pair.Home
			}
			require.False(t, met[matchup], "rematch of %s in round %d", matchup, rounds)
			met[matchup] = true
		}

		for _, pair := range pairs {
			if playerNumber(t, pair.Home) > playerNumber(t, pair.Away) {
				require.NoError(t, tour.RecordResult(pair.ID, 2, 1, 0))
			} else {
				require.NoError(t, tour.RecordResult(pair.ID, 1, 2, 0))
			}
		}
	}

	require.Equal(t, tour.Rounds, rounds)
}

// byeCount counts the standings rows that record a bye.
func byeCount(standings []Standing) int {
	count := 0
	for _, standing := range standings {
		if standing.HasBye {
			count++
		}
	}

	return count
}

func TestTournament(t *testing.T) {
	t.Run("two players", func(t *testing.T) {
		tour := NewTournament(numberedPlayers(2), rand.New(rand.NewSource(2)))
		require.Equal(t, 1, tour.Rounds)

		pairs, more := tour.NextRound()
		require.True(t, more)
		require.Len(t, pairs, 1)

		pair := pairs[0]
		require.ElementsMatch(t, []string{"Player 1", "Player 2"}, []string{pair.Home, pair.Away})

		require.NoError(t, tour.RecordResult(pair.ID, 2, 1, 0))

		pairs, more = tour.NextRound()
		require.False(t, more)
		require.Nil(t, pairs)

		standings := tour.Ranking()
		require.Len(t, standings, 2)
		require.Zero(t, byeCount(standings))

		winner, loser := standings[0], standings[1]
		require.Equal(t, pair.Home, winner.Name)
		require.Equal(t, 1, winner.MatchesPlayed)
		require.Equal(t, 3, winner.MatchPoints)
		require.Equal(t, 3, winner.GamesPlayed)
		require.Equal(t, 6, winner.GamePoints)

		require.Equal(t, pair.Away, loser.Name)
		require.Equal(t, 1, loser.MatchesPlayed)
		require.Equal(t, 0, loser.MatchPoints)
		require.Equal(t, 3, loser.GamesPlayed)
		require.Equal(t, 3, loser.GamePoints)
	})

	t.Run("three players", func(t *testing.T) {
		tour := NewTournament(numberedPlayers(3), rand.New(rand.NewSource(3)))
		require.Equal(t, 2, tour.Rounds)

		playTournament(t, tour, 3)

		standings := tour.Ranking()
		require.Equal(t, 2, byeCount(standings))

		// Player 3 wins every round, at the board or through the bye.
		winner := standings[0]
		require.Equal(t, "Player 3", winner.Name)
		require.Equal(t, 2, winner.MatchesPlayed)
		require.GreaterOrEqual(t, winner.GamesPlayed, 5)
		require.Equal(t, 6, winner.MatchPoints)
		require.Equal(t, 12, winner.GamePoints)

		second := standings[1]
		require.Contains(t, []string{"Player 1", "Player 2"}, second.Name)
		require.Equal(t, 2, second.MatchesPlayed)
		require.GreaterOrEqual(t, second.GamesPlayed, 5)
		require.Contains(t, []int{0, 3}, second.MatchPoints)
		require.Contains(t, []int{3, 9}, second.GamePoints)
	})

	t.Run("four players", func(t *testing.T) {
		tour := NewTournament(numberedPlayers(4), rand.New(rand.NewSource(4)))
		require.Equal(t, 2, tour.Rounds)

		playTournament(t, tour, 4)

		standings := tour.Ranking()
		require.Zero(t, byeCount(standings))

		// Two rounds over four players settle every placement: 2-0 on
		// matches for Player 4, 1-1 for the middle pair, 0-2 for
		// Player 1, everybody with six games on the board.
		require.Equal(t, "Player 4", standings[0].Name)
		require.Equal(t, 6, standings[0].MatchPoints)
		require.Equal(t, 12, standings[0].GamePoints)
		require.Equal(t, 6, standings[0].GamesPlayed)

		for _, middle := range standings[1:3] {
			require.Contains(t, []string{"Player 2", "Player 3"}, middle.Name)
			require.Equal(t, 2, middle.MatchesPlayed)
			require.Equal(t, 6, middle.GamesPlayed)
			require.Equal(t, 3, middle.MatchPoints)
			require.Equal(t, 9, middle.GamePoints)
		}

		require.Equal(t, "Player 1", standings[3].Name)
		require.Equal(t, 0, standings[3].MatchPoints)
		require.Equal(t, 6, standings[3].GamePoints)
		require.Equal(t, 6, standings[3].GamesPlayed)
	})

	t.Run("eight players", func(t *testing.T) {
		tour := NewTournament(numberedPlayers(8), rand.New(rand.NewSource(8)))
		require.Equal(t, 3, tour.Rounds)

		playTournament(t, tour, 8)

		standings := tour.Ranking()
		require.Zero(t, byeCount(standings))

		winner := standings[0]
		require.Equal(t, "Player 8", winner.Name)
		require.Equal(t, 3, winner.MatchesPlayed)
		require.Equal(t, 9, winner.GamesPlayed)
		require.Equal(t, 9, winner.MatchPoints)
		require.Equal(t, 18, winner.GamePoints)

		loser := standings[7]
		require.Equal(t, 3, loser.MatchesPlayed)
		require.Equal(t, 9, loser.GamesPlayed)
		require.Equal(t, 0, loser.MatchPoints)
		require.Equal(t, 9, loser.GamePoints)
	})

	t.Run("thirteen players", func(t *testing.T) {
		tour := NewTournament(numberedPlayers(13), rand.New(rand.NewSource(13)))
		require.Equal(t, 4, tour.Rounds)

		playTournament(t, tour, 13)

		standings := tour.Ranking()
		require.Equal(t, 4, byeCount(standings))

		winner := standings[0]
		require.Equal(t, "Player 13", winner.Name)
		require.Equal(t, 4, winner.MatchesPlayed)
		require.GreaterOrEqual(t, winner.GamesPlayed, 11)
		require.Equal(t, 12, winner.MatchPoints)
		require.Equal(t, 24, winner.GamePoints)

		loser := standings[12]
		require.Equal(t, 4, loser.MatchesPlayed)
		require.GreaterOrEqual(t, loser.GamesPlayed, 11)
		require.Contains(t, []int{0, 3}, loser.MatchPoints)
		require.Contains(t, []int{12, 15}, loser.GamePoints)
	})

	t.Run("sixty players", func(t *testing.T) {
		tour := NewTournament(numberedPlayers(60), rand.New(rand.NewSource(60)))
		require.Equal(t, 6, tour.Rounds)

		playTournament(t, tour, 60)

		standings := tour.Ranking()
		require.Zero(t, byeCount(standings))

		winner := standings[0]
		require.Equal(t, "Player 60", winner.Name)
		require.Equal(t, 6, winner.MatchesPlayed)
		require.GreaterOrEqual(t, winner.GamesPlayed, 17)
		require.Equal(t, 18, winner.MatchPoints)
		require.Equal(t, 36, winner.GamePoints)

		loser := standings[59]
		require.Equal(t, 6, loser.MatchesPlayed)
		require.GreaterOrEqual(t, loser.GamesPlayed, 17)
		require.Contains(t, []int{0, 3}, loser.MatchPoints)
		require.Contains(t, []int{18, 21}, loser.GamePoints)
	})
}

func TestNextRoundTerminal(t *testing.T) {
	t.Run("single player plays no rounds", func(t *testing.T) {
		tour := NewTournament(numberedPlayers(1), rand.New(rand.NewSource(1)))
		require.Equal(t, 0, tour.Rounds)

		pairs, more := tour.NextRound()
		require.False(t, more)
		require.Nil(t, pairs)

		standings := tour.Ranking()
		require.Len(t, standings, 1)
		require.Zero(t, standings[0].MatchPoints)
	})

	t.Run("empty roster", func(t *testing.T) {
		tour := NewTournament(nil, rand.New(rand.NewSource(1)))
		require.Equal(t, 0, tour.Rounds)

		pairs, more := tour.NextRound()
		require.False(t, more)
		require.Nil(t, pairs)
		require.Empty(t, tour.Ranking())
	})
}

func TestByes(t *testing.T) {
	players := numberedPlayers(5)
	records := make(map[string]*Player, len(players))
	for _, player := range players {
		records[player.Name] = player
	}

	tour := NewTournament(players, rand.New(rand.NewSource(5)))
	require.Equal(t, 3, tour.Rounds)

	recipients := make(map[string]bool)

	for round := 1; round <= tour.Rounds; round++ {
		type snapshot struct {
			matchPoints, gamePoints    int
			matchesPlayed, gamesPlayed int
			opponents                  int
		}
		before := make(map[string]snapshot, len(players))
		for name, player := range records {
			before[name] = snapshot{
				matchPoints:   player.MatchPoints,
				gamePoints:    player.GamePoints,
				matchesPlayed: player.MatchesPlayed,
				gamesPlayed:   player.GamesPlayed,
				opponents:     len(player.Opponents),
			}
		}

		pairs, more := tour.NextRound()
		require.True(t, more)
		require.Len(t, pairs, 2)

		paired := make(map[string]bool, 4)
		for _, pair := range pairs {
			paired[pair.Home] = true
			paired[pair.Away] = true
		}

		// Exactly one player sits the round out, and their record shows
		// an uncontested 2-0 win with no new opponent.
		var sitter *Player
		for name, player := range records {
			if !paired[name] {
				require.Nil(t, sitter, "two players excluded in round %d", round)
				sitter = player
			}
		}
		require.NotNil(t, sitter, "no bye granted in round %d", round)

		require.False(t, recipients[sitter.Name], "%s granted a second bye", sitter.Name)
		recipients[sitter.Name] = true
		require.True(t, sitter.HasBye)

		was := before[sitter.Name]
		require.Equal(t, was.matchPoints+3, sitter.MatchPoints)
		require.Equal(t, was.gamePoints+6, sitter.GamePoints)
		require.Equal(t, was.matchesPlayed+1, sitter.MatchesPlayed)
		require.Equal(t, was.gamesPlayed+2, sitter.GamesPlayed)
		require.Equal(t, was.opponents, len(sitter.Opponents))

		for _, pair := range pairs {
			if playerNumber(t, pair.Home) > playerNumber(t, pair.Away) {
				require.NoError(t, tour.RecordResult(pair.ID, 2, 0, 0))
			} else {
				require.NoError(t, tour.RecordResult(pair.ID, 0, 2, 0))
			}
		}
	}

	_, more := tour.NextRound()
	require.False(t, more)
	require.Len(t, recipients, tour.Rounds)
}

func TestNoByeCandidate(t *testing.T) {
	// An odd roster where everyone somehow holds a bye already: no bye
	// is granted and one player is left unpaired for the round.
	players := numberedPlayers(3)
	for _, player := range players {
		player.HasBye = true
	}

	tour := NewTournament(players, rand.New(rand.NewSource(7)))

	pairs, more := tour.NextRound()
	require.True(t, more)
	require.Len(t, pairs, 1)

	for _, player := range players {
		require.Equal(t, 0, player.MatchPoints, "%s received a second bye", player.Name)
	}
}

func TestRecordResult(t *testing.T) {
	t.Run("unknown pairing", func(t *testing.T) {
		tour := NewTournament(numberedPlayers(2), rand.New(rand.NewSource(2)))
		_, more := tour.NextRound()
		require.True(t, more)

		id := uuid.New()
		err := tour.RecordResult(id, 2, 0, 0)

		var notFound *NotFoundError
		require.ErrorAs(t, err, &notFound)
		require.Equal(t, id, notFound.ID)
	})

	t.Run("invalid scoreline leaves the pairing open", func(t *testing.T) {
		tour := NewTournament(numberedPlayers(2), rand.New(rand.NewSource(2)))
		pairs, more := tour.NextRound()
		require.True(t, more)

		err := tour.RecordResult(pairs[0].ID, 4, 0, 0)

		var outOfRange *OutOfRangeError
		require.ErrorAs(t, err, &outOfRange)
		require.Equal(t, 4, outOfRange.Value)

		// The failed report changed nothing; the same identifier still
		// accepts a valid scoreline.
		require.NoError(t, tour.RecordResult(pairs[0].ID, 2, 0, 0))
	})

	t.Run("identifier from a cleared round", func(t *testing.T) {
		tour := NewTournament(numberedPlayers(4), rand.New(rand.NewSource(4)))

		pairs, more := tour.NextRound()
		require.True(t, more)
		stale := pairs[0].ID

		for _, pair := range pairs {
			require.NoError(t, tour.RecordResult(pair.ID, 2, 1, 0))
		}

		_, more = tour.NextRound()
		require.True(t, more)

		var notFound *NotFoundError
		require.ErrorAs(t, tour.RecordResult(stale, 2, 1, 0), &notFound)
		require.Equal(t, stale, notFound.ID)
	})
}
