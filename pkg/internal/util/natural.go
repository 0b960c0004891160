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

package util

// NaturalLess reports whether a sorts before b in natural order, the
// order a human expects from numbered names: runs of digits compare by
// value, so "img2.png" comes before "img10.png", while everything else
// compares byte by byte.
func NaturalLess(a, b string) bool {
	for a != "" && b != "" {
		if isDigit(a[0]) && isDigit(b[0]) {
			numA, restA := splitDigits(a)
			numB, restB := splitDigits(b)
			if numA != numB {
				return numA < numB
			}

			a, b = restA, restB
			continue
		}

		if a[0] != b[0] {
			return a[0] < b[0]
		}

		a, b = a[1:], b[1:]
	}

	// One string is a prefix of the other; the shorter sorts first.
	return len(a) < len(b)
}

// splitDigits cuts the leading digit run off s and returns its value.
func splitDigits(s string) (value int, rest string) {
	for s != "" && isDigit(s[0]) {
		value = value*10 + int(s[0]-'0')
		s = s[1:]
	}

	return value, s
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
