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

import "github.com/google/uuid"

// Side identifies one of the two seats of a Pairing.
type Side uint8

const (
	Home Side = iota
	Away
)

// Pairing binds two players for one round and routes game and match
// results into the right records. It shares the records, it does not
// own them; its identifier stays a valid result key until the
// tournament clears its table for the next round.
type Pairing struct {
	ID   uuid.UUID
	Home *Player
	Away *Player
}

// NewPairing matches home against away for one round. Each player
// immediately receives the other into its opponent history; this is
// the only place histories grow, and always to both sides together.
func NewPairing(home, away *Player) *Pairing {
	home.Opponents = append(home.Opponents, away.ID)
	away.Opponents = append(away.Opponents, home.ID)

	return &Pairing{ID: uuid.New(), Home: home, Away: away}
}

// WinGame records one decisive game won by the given side.
func (pair *Pairing) WinGame(winner Side) {
	if winner == Home {
		pair.Home.WinGame()
		pair.Away.LoseGame()
		return
	}

	pair.Away.WinGame()
	pair.Home.LoseGame()
}

// DrawGame records one drawn game against both sides.
func (pair *Pairing) DrawGame() {
	pair.Home.DrawGame()
	pair.Away.DrawGame()
}

// EndMatch validates a finished match's scoreline and applies it to
// both records. home and away count the games each side won, at most
// 2; drawn counts drawn games, at most 3; together they must make 1 to
// 3 played games. Validation is all-or-nothing: every bound is checked
// before the first counter moves, and a bad scoreline comes back as an
// OutOfRangeError naming the value at fault, with both records exactly
// as they were.
//
// A valid scoreline plays out the individual games and then awards the
// match: the strictly higher score wins, equal scores draw.
func (pair *Pairing) EndMatch(home, away, drawn int) error {
	if err := checkRange(home, 0, 2); err != nil {
		return err
	}
	if err := checkRange(away, 0, 2); err != nil {
		return err
	}
	if err := checkRange(drawn, 0, 3); err != nil {
		return err
	}
	if err := checkRange(home+away+drawn, 1, 3); err != nil {
		return err
	}

	for i := 0; i < home; i++ {
		pair.WinGame(Home)
	}
	for i := 0; i < away; i++ {
		pair.WinGame(Away)
	}
	for i := 0; i < drawn; i++ {
		pair.DrawGame()
	}

	switch {
	case home > away:
		pair.Home.WinMatch()
		pair.Away.LoseMatch()
	case away > home:
		pair.Away.WinMatch()
		pair.Home.LoseMatch()
	default:
		pair.Home.DrawMatch()
		pair.Away.DrawMatch()
	}

	return nil
}
