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

package common

import (
	_ "embed"
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"laptudirm.com/x/swiss/pkg/viewer"
)

//go:embed swiss.yaml
var DefaultConfigFile []byte

// Config is swiss's on-disk configuration.
type Config struct {
	Viewer viewer.Config `yaml:"viewer"`
}

// LoadConfig reads ConfigFile on top of the embedded defaults, so a
// partial file only overrides the fields it names. A missing file
// leaves the defaults untouched.
func LoadConfig() (Config, error) {
	var config Config
	if err := yaml.Unmarshal(DefaultConfigFile, &config); err != nil {
		return config, err
	}

	file, err := os.ReadFile(ConfigFile)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}

	if err != nil {
		return config, err
	}

	return config, yaml.Unmarshal(file, &config)
}
