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

// Package roster loads the competitors of a tournament from the
// filesystem, either as a list file or as a directory of pictures.
package roster

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"laptudirm.com/x/swiss/pkg/internal/util"
)

// Load reads competitor names from the given path. A plain file
// contributes one name per line, surrounding whitespace trimmed and
// blank lines skipped. A directory contributes the name of each of its
// regular files, in natural order: this is the picture-roster mode,
// where every file is a competitor's portrait. Load rejects empty and
// duplicated rosters; the core needs every display name to be unique.
func Load(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}

	var names []string
	if info.IsDir() {
		names, err = fromDirectory(path)
	} else {
		names, err = fromFile(path)
	}

	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}

	if len(names) == 0 {
		return nil, fmt.Errorf("load roster: no competitors in %s", path)
	}

	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			return nil, fmt.Errorf("load roster: duplicate competitor %q", name)
		}
		seen[name] = true
	}

	return names, nil
}

func fromFile(path string) ([]string, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, line := range strings.Split(string(file), "\n") {
		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}

		names = append(names, line)
	}

	return names, nil
}

func fromDirectory(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		names = append(names, entry.Name())
	}

	// Natural order, so portrait-2 seats before portrait-10.
	sort.SliceStable(names, func(i, j int) bool {
		return util.NaturalLess(names[i], names[j])
	})

	return names, nil
}
