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

package swiss

import "sort"

// Standing is one row of the final ranking: a snapshot of a player's
// record together with the tiebreak percentages it was ranked under.
type Standing struct {
	Name string

	MatchPoints   int
	GamePoints    int
	MatchesPlayed int
	GamesPlayed   int

	OMWP float64 // opponents' match win percentage
	GWP  float64 // own game win percentage
	OGWP float64 // opponents' game win percentage

	HasBye bool
}

// Ranking computes the final standings. Players are ordered by match
// points, then opponents' match win percentage, then own game win
// percentage, then opponents' game win percentage, every key
// descending and exact ties broken at random.
//
// The order is produced by four stable sorts run from the least
// significant key to the most significant one, so the last sort
// dominates; the up-front shuffle is what randomizes full ties.
func (tour *Tournament) Ranking() []Standing {
	tour.rng.Shuffle(len(tour.players), func(i, j int) {
		tour.players[i], tour.players[j] = tour.players[j], tour.players[i]
	})

	sort.SliceStable(tour.players, func(i, j int) bool {
		return tour.ogwp(tour.players[i]) > tour.ogwp(tour.players[j])
	})
	sort.SliceStable(tour.players, func(i, j int) bool {
		return tour.players[i].GameWinPercentage() > tour.players[j].GameWinPercentage()
	})
	sort.SliceStable(tour.players, func(i, j int) bool {
		return tour.omwp(tour.players[i]) > tour.omwp(tour.players[j])
	})
	sort.SliceStable(tour.players, func(i, j int) bool {
		return tour.players[i].MatchPoints > tour.players[j].MatchPoints
	})

	standings := make([]Standing, 0, len(tour.players))
	for _, player := range tour.players {
		standings = append(standings, Standing{
			Name:          player.Name,
			MatchPoints:   player.MatchPoints,
			GamePoints:    player.GamePoints,
			MatchesPlayed: player.MatchesPlayed,
			GamesPlayed:   player.GamesPlayed,
			OMWP:          tour.omwp(player),
			GWP:           player.GameWinPercentage(),
			OGWP:          tour.ogwp(player),
			HasBye:        player.HasBye,
		})
	}

	return standings
}

// omwp resolves a player's opponents' match win percentage through the
// tournament's roster. A player with no opponents on record, possible
// only when no rounds were played, takes the 1/3 floor instead of an
// undefined mean.
func (tour *Tournament) omwp(player *Player) float64 {
	if len(player.Opponents) == 0 {
		return 1.0 / 3.0
	}

	return player.OpponentsMatchWinPercentage(tour.index)
}

// ogwp is omwp over game win percentages.
func (tour *Tournament) ogwp(player *Player) float64 {
	if len(player.Opponents) == 0 {
		return 1.0 / 3.0
	}

	return player.OpponentsGameWinPercentage(tour.index)
}
