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
	"flag"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/yagoggame/goboard/game/igame"
)

// ErrFirst error occurs when the starting colour flag names no colour
var ErrFirst = errors.New("starting colour must be black or white")

// config holds command line settings.
type config struct {
	First   igame.Colour
	LogPath string
	Debug   bool
}

// parseConfig reads args (without the program name).
func parseConfig(args []string, output io.Writer) (*config, error) {
	fs := flag.NewFlagSet("goboard", flag.ContinueOnError)
	fs.SetOutput(output)

	first := fs.String("first", "black", "colour to move first: black or white")
	logPath := fs.String("log", "", "write logs to this file (none if empty)")
	debug := fs.Bool("debug", false, "log every move")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &config{LogPath: *logPath, Debug: *debug}
	switch strings.ToLower(*first) {
	case "black", "b":
		cfg.First = igame.Black
	case "white", "w":
		cfg.First = igame.White
	default:
		return nil, fmt.Errorf("%w: got %q", ErrFirst, *first)
	}
	return cfg, nil
}

// newLogger builds a file logger: the terminal belongs to the board.
func newLogger(cfg *config) (*zap.Logger, error) {
	if cfg.LogPath == "" {
		return zap.NewNop(), nil
	}

	zcfg := zap.NewProductionConfig()
	zcfg.OutputPaths = []string{cfg.LogPath}
	zcfg.ErrorOutputPaths = []string{cfg.LogPath}
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.Debug {
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to open log %q: %w", cfg.LogPath, err)
	}
	return logger, nil
}
