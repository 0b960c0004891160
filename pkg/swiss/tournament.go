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

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Tournament runs the rounds of a Swiss-system event over a fixed
// roster of players. All methods are driven from a single goroutine;
// nothing here blocks or suspends.
type Tournament struct {
	// Rounds is the total number of rounds, ceil(log2 N) for N
	// players: enough for a single undefeated player to emerge.
	Rounds int

	// CurrentRound counts from 1 during play; it is 0 before the
	// first NextRound call and Rounds+1 once the event is over.
	CurrentRound int

	players  []*Player // active roster; a bye sits out of here for its round
	index    Roster    // every player ever entered, byes included
	pairings map[uuid.UUID]*Pairing
	needsBye bool
	rng      *rand.Rand
}

// NewTournament sets up a tournament over the given players. The
// roster is fixed for the tournament's lifetime; the records remain
// owned by the caller. rng drives every shuffle the tournament makes,
// so a seeded source reproduces an entire event; nil falls back to a
// time-seeded one.
func NewTournament(players []*Player, rng *rand.Rand) *Tournament {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	rounds := 0
	if len(players) > 1 {
		rounds = int(math.Ceil(math.Log2(float64(len(players)))))
	}

	active := make([]*Player, len(players))
	copy(active, players)

	return &Tournament{
		Rounds:   rounds,
		players:  active,
		index:    NewRoster(players...),
		needsBye: len(players)%2 == 1,
		rng:      rng,
	}
}

// Pair is one scheduled matchup as handed to the driver: the key to
// report the result under, and the two display names.
type Pair struct {
	ID   uuid.UUID
	Home string
	Away string
}

// NextRound advances the tournament by one round and returns its
// pairings, replacing the previous round's pairing table. Once every
// round has been played it reports false and leaves the table alone.
//
// On an odd roster the lowest-scoring player without a bye sits the
// round out with a free 2-0 win. The rest are paired by match points,
// nearest standings first, never repeating an earlier matchup; the
// whole attempt is redrawn from scratch whenever the histories leave
// someone unpairable. A roster whose only completion is a rematch
// cannot be paired at all, and the redraw loop will not return for
// it; with Rounds capped at ceil(log2 N) no tournament reaches that
// state through normal play.
func (tour *Tournament) NextRound() ([]Pair, bool) {
	tour.CurrentRound++
	if tour.CurrentRound > tour.Rounds {
		return nil, false
	}

	var bye *Player
	if tour.needsBye {
		bye = tour.grantBye()
	}

	pairs := tour.pairRound()

	// Presentation order carries no meaning, so don't leak one.
	tour.rng.Shuffle(len(pairs), func(i, j int) {
		pairs[i], pairs[j] = pairs[j], pairs[i]
	})

	if bye != nil {
		tour.players = append(tour.players, bye)
	}

	return pairs, true
}

// grantBye picks the bye recipient, awards the 2-0, and removes them
// from the active roster for the round. The pick is the lowest match
// point total among players still without a bye, with ties broken at
// random by the preceding shuffle. No candidate means no bye.
func (tour *Tournament) grantBye() *Player {
	tour.rng.Shuffle(len(tour.players), func(i, j int) {
		tour.players[i], tour.players[j] = tour.players[j], tour.players[i]
	})

	choice := -1
	for i, player := range tour.players {
		if player.HasBye {
			continue
		}

		if choice == -1 || player.MatchPoints < tour.players[choice].MatchPoints {
			choice = i
		}
	}

	if choice == -1 {
		return nil
	}

	player := tour.players[choice]
	tour.players = append(tour.players[:choice], tour.players[choice+1:]...)
	player.Bye()

	return player
}

// pairRound builds a perfect matching over the active roster and
// installs it as the round's pairing table. Generate and retry: every
// attempt starts from a fresh shuffle, and a stable sort on match
// points then lines the queue up with equal scores adjacent in random
// order. Pairings are only constructed once an attempt has matched
// everyone, so a discarded attempt never touches opponent histories.
func (tour *Tournament) pairRound() []Pair {
	half := len(tour.players) / 2

	for {
		queue := make([]*Player, len(tour.players))
		copy(queue, tour.players)

		tour.rng.Shuffle(len(queue), func(i, j int) {
			queue[i], queue[j] = queue[j], queue[i]
		})
		sort.SliceStable(queue, func(i, j int) bool {
			return queue[i].MatchPoints < queue[j].MatchPoints
		})

		matched := make([][2]*Player, 0, half)

		for len(queue) > 0 {
			// Pop the strongest player left as home, then walk down
			// the standings for the first opponent they haven't met.
			// No fresh opponent leaves home unpaired this attempt.
			home := queue[len(queue)-1]
			queue = queue[:len(queue)-1]

			for i := len(queue) - 1; i >= 0; i-- {
				if home.HasPlayed(queue[i].ID) {
					continue
				}

				matched = append(matched, [2]*Player{home, queue[i]})
				queue = append(queue[:i], queue[i+1:]...)
				break
			}
		}

		if len(matched) != half {
			continue
		}

		pairs := make([]Pair, 0, half)
		table := make(map[uuid.UUID]*Pairing, half)

		for _, match := range matched {
			pairing := NewPairing(match[0], match[1])
			table[pairing.ID] = pairing
			pairs = append(pairs, Pair{ID: pairing.ID, Home: match[0].Name, Away: match[1].Name})
		}

		tour.pairings = table
		return pairs
	}
}

// RecordResult reports a finished match by its pairing identifier.
// Unknown identifiers come back as a NotFoundError, scorelines outside
// EndMatch's bounds as an OutOfRangeError; in both cases no state
// changes and the caller may simply try again.
func (tour *Tournament) RecordResult(id uuid.UUID, home, away, drawn int) error {
	pairing, found := tour.pairings[id]
	if !found {
		return &NotFoundError{ID: id}
	}

	return pairing.EndMatch(home, away, drawn)
}
