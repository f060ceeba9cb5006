// Copyright ©2020 BlinnikovAA. All rights reserved.
// This file is part of yagogame.
//
// yagogame is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// yagogame is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with yagogame.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/yagoggame/goboard/game/igame"
)

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		want  *config
		isErr error
	}{
		{
			name: "defaults",
			args: nil,
			want: &config{First: igame.Black},
		},
		{
			name: "white first with log",
			args: []string{"-first", "White", "-log", "go.log", "-debug"},
			want: &config{First: igame.White, LogPath: "go.log", Debug: true},
		},
		{
			name:  "unknown colour",
			args:  []string{"-first", "red"},
			isErr: ErrFirst,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg, err := parseConfig(test.args, io.Discard)
			if !errors.Is(err, test.isErr) {
				t.Fatalf("Unexpected parseConfig err:\nwant: %v,\ngot: %v.", test.isErr, err)
			}
			if err != nil {
				return
			}
			if *cfg != *test.want {
				t.Errorf("Unexpected config:\nwant: %+v,\ngot: %+v.", *test.want, *cfg)
			}
		})
	}
}

func TestParseConfigBadFlag(t *testing.T) {
	if _, err := parseConfig([]string{"-size", "9"}, io.Discard); err == nil {
		t.Errorf("Unknown flag should fail")
	}
}

func TestNewLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goboard.log")
	logger, err := newLogger(&config{LogPath: path, Debug: true})
	if err != nil {
		t.Fatalf("Unexpected newLogger err: %v", err)
	}
	logger.Debug("hello")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Unexpected ReadFile err: %v", err)
	}
	if len(data) == 0 {
		t.Errorf("Debug entry was not written")
	}
}
