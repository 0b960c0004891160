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

// Package swiss implements the scheduling and ranking core of a
// Swiss-system tournament: round counts, rematch-free pairings, byes,
// result recording, and the final four-level tiebreak cascade.
package swiss

import (
	"math"

	"github.com/google/uuid"
)

// Player is a single competitor's record: its identity plus the
// cumulative statistics gathered over one tournament.
type Player struct {
	ID   uuid.UUID
	Name string

	MatchPoints   int // 3 per match win, 1 per draw
	GamePoints    int // 3 per game win, 1 per draw
	MatchesPlayed int
	GamesPlayed   int

	// Opponents lists the identifier of every opponent faced so far,
	// in pairing order. Byes never show up here. Only the Pairing
	// constructor appends to this list, to both sides at once.
	Opponents []uuid.UUID

	// HasBye records whether this player has already sat out a round;
	// the bye-granting rule allows at most one per tournament.
	HasBye bool
}

// NewPlayer creates a fresh zero-score record for the given display
// name.
func NewPlayer(name string) *Player {
	return &Player{ID: uuid.New(), Name: name}
}

// Roster is an arena of player records indexed by their identifiers,
// used to resolve opponent histories back into records.
type Roster map[uuid.UUID]*Player

// NewRoster builds a Roster over the given players.
func NewRoster(players ...*Player) Roster {
	roster := make(Roster, len(players))
	for _, player := range players {
		roster[player.ID] = player
	}

	return roster
}

// LoseGame records a lost game, worth nothing.
func (player *Player) LoseGame() {
	player.GamesPlayed++
}

// DrawGame records a drawn game, worth 1 game point.
func (player *Player) DrawGame() {
	player.GamesPlayed++
	player.GamePoints++
}

// WinGame records a won game, worth 3 game points.
func (player *Player) WinGame() {
	player.GamesPlayed++
	player.GamePoints += 3
}

// LoseMatch records a lost match, worth nothing.
func (player *Player) LoseMatch() {
	player.MatchesPlayed++
}

// DrawMatch records a drawn match, worth 1 match point.
func (player *Player) DrawMatch() {
	player.MatchesPlayed++
	player.MatchPoints++
}

// WinMatch records a won match, worth 3 match points.
func (player *Player) WinMatch() {
	player.MatchesPlayed++
	player.MatchPoints += 3
}

// Bye awards the uncontested 2-0 match win a player receives for
// sitting out a round of an odd-sized roster. The opponent history is
// left alone: a bye is nobody's opponent.
func (player *Player) Bye() {
	player.WinGame()
	player.WinGame()
	player.WinMatch()
	player.HasBye = true
}

// HasPlayed reports whether the player has already faced the given
// opponent this tournament.
func (player *Player) HasPlayed(opponent uuid.UUID) bool {
	for _, id := range player.Opponents {
		if id == opponent {
			return true
		}
	}

	return false
}

// MatchWinPercentage is the share of available match points the player
// has taken so far, floored at 1/3 so a single dreadful record can't
// drag down an opponent's tiebreaks out of proportion. A player with
// no matches behind them reports exactly the floor.
func (player *Player) MatchWinPercentage() float64 {
	if player.MatchesPlayed == 0 {
		return 1.0 / 3.0
	}

	// points taken / points available, where a win pays 3
	percentage := float64(player.MatchPoints) / float64(3*player.MatchesPlayed)
	return math.Max(1.0/3.0, percentage)
}

// GameWinPercentage is MatchWinPercentage computed over games instead
// of matches, with the same 1/3 floor.
func (player *Player) GameWinPercentage() float64 {
	if player.GamesPlayed == 0 {
		return 1.0 / 3.0
	}

	percentage := float64(player.GamePoints) / float64(3*player.GamesPlayed)
	return math.Max(1.0/3.0, percentage)
}

// OpponentsMatchWinPercentage is the arithmetic mean of
// MatchWinPercentage across every opponent on record, resolved through
// the given roster. Byes are excluded by construction since they never
// enter the history. The mean is undefined for an empty history;
// callers guard that case.
func (player *Player) OpponentsMatchWinPercentage(players Roster) float64 {
	var total float64
	for _, id := range player.Opponents {
		total += players[id].MatchWinPercentage()
	}

	return total / float64(len(player.Opponents))
}

// OpponentsGameWinPercentage is OpponentsMatchWinPercentage over
// GameWinPercentage.
func (player *Player) OpponentsGameWinPercentage(players Roster) float64 {
	var total float64
	for _, id := range player.Opponents {
		total += players[id].GameWinPercentage()
	}

	return total / float64(len(player.Opponents))
}
