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

// Package viewer shows the portraits of a picture roster's pairing in
// an external image viewer while its scores are being entered.
package viewer

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Config describes how the external image viewer is launched. An empty
// Command disables the viewer altogether.
type Config struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`

	// X geometries of the home and away windows, so the two portraits
	// come up side by side instead of stacked.
	HomeGeometry string `yaml:"home-geometry"`
	AwayGeometry string `yaml:"away-geometry"`
}

// Default is the classic two-panel feh setup on a 1920x1080 screen:
// home portrait on the left half, away portrait on the right.
var Default = Config{
	Command:      "feh",
	Args:         []string{"--scale-down"},
	HomeGeometry: "960x1080+0+0",
	AwayGeometry: "960x1080+960+0",
}

type Viewer struct {
	config Config
}

func New(config Config) *Viewer {
	return &Viewer{config: config}
}

// Show opens the two portraits in side by side viewer windows and
// returns the running Session. A disabled viewer returns a nil
// Session, which is safe to Close.
func (viewer *Viewer) Show(home, away string) (*Session, error) {
	if viewer.config.Command == "" {
		return nil, nil
	}

	session := &Session{group: new(errgroup.Group)}

	for _, window := range []struct {
		geometry, portrait string
	}{
		{viewer.config.HomeGeometry, home},
		{viewer.config.AwayGeometry, away},
	} {
		args := []string{"-g", window.geometry}
		args = append(args, viewer.config.Args...)
		args = append(args, window.portrait)

		logrus.Debugf("\x1b[34m%s\x1b[0m %s\n", viewer.config.Command, strings.Join(args, " "))

		process := exec.Command(viewer.config.Command, args...)
		if err := process.Start(); err != nil {
			_ = session.Close()
			return nil, fmt.Errorf("show %s: %w", window.portrait, err)
		}

		session.processes = append(session.processes, process)
		session.group.Go(process.Wait)
	}

	return session, nil
}

// Session is one pairing's pair of running viewer windows. A nil
// Session closes as a no-op.
type Session struct {
	group     *errgroup.Group
	processes []*exec.Cmd
}

// Close kills both viewer windows and reaps the processes. Windows the
// scorekeeper already closed by hand are fine.
func (session *Session) Close() error {
	if session == nil {
		return nil
	}

	for _, process := range session.processes {
		if err := process.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
			return err
		}
	}

	// The waits just report the kills delivered above.
	_ = session.group.Wait()
	return nil
}
