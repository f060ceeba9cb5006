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

// goboard - a two players Go board in the terminal.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/yagoggame/goboard/game"
	"github.com/yagoggame/goboard/internal/ui"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := parseConfig(args, os.Stderr)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	g, err := game.NewGame(logger, cfg.First)
	if err != nil {
		return err
	}
	defer g.End()

	if err := ui.NewApp(g, logger, cfg.First).Run(); err != nil {
		logger.Error("terminal failed", zap.Error(err))
		return err
	}
	return nil
}
