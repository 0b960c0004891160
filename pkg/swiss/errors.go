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
	"fmt"

	"github.com/google/uuid"
)

// OutOfRangeError reports a score or drawn-game count outside its
// permitted bounds, carrying the offending value and the inclusive
// bounds it broke so the caller can show them and re-prompt. No
// counters move when one of these is returned.
type OutOfRangeError struct {
	Value int
	Min   int
	Max   int
}

func (err *OutOfRangeError) Error() string {
	return fmt.Sprintf("swiss: value %d outside permitted range %d to %d", err.Value, err.Min, err.Max)
}

// checkRange verifies min <= value <= max, both bounds inclusive.
func checkRange(value, min, max int) error {
	if value < min || value > max {
		return &OutOfRangeError{Value: value, Min: min, Max: max}
	}

	return nil
}

// NotFoundError reports a pairing identifier with no active pairing
// behind it: already cleared by a newer round, or never issued at all.
type NotFoundError struct {
	ID uuid.UUID
}

func (err *NotFoundError) Error() string {
	return fmt.Sprintf("swiss: no active pairing %s", err.ID)
}
