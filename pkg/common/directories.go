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

// Package common holds the filesystem and configuration plumbing
// shared by every swiss command.
package common

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const Permissions = 0755

var (
	// Directory is swiss's home, everything it writes lives here.
	Directory string = filepath.Join(xdg.Home, "swiss")

	// ReportsDirectory receives the exported charts and workbooks.
	ReportsDirectory string = filepath.Join(Directory, "reports")

	// ConfigFile tweaks the tournament runner, see the embedded
	// defaults for the supported fields.
	ConfigFile string = filepath.Join(Directory, "swiss.yaml")
)
