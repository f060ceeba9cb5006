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

package ui

import (
	"errors"

	"github.com/rivo/tview"
	"go.uber.org/zap"

	"github.com/yagoggame/goboard/game"
	"github.com/yagoggame/goboard/game/igame"
)

const (
	pageMenu  = "menu"
	pageBoard = "board"
)

var menuButtons = []string{"Black First", "White First", "Quit"}

// App is the terminal application around one Game.
type App struct {
	app    *tview.Application
	pages  *tview.Pages
	menu   *tview.Modal
	board  *BoardView
	status *tview.TextView
	game   game.Game
	logger *zap.Logger
}

// NewApp builds the screens. The colour selection comes first with
// first preselected.
func NewApp(g game.Game, logger *zap.Logger, first igame.Colour) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &App{
		app:    tview.NewApplication(),
		pages:  tview.NewPages(),
		status: tview.NewTextView(),
		game:   g,
		logger: logger,
	}

	a.board = NewBoardView(a, DefaultTheme)
	a.board.SetBorder(true).SetTitle(" Go ")

	a.menu = tview.NewModal().
		SetText("Zen Go\n\nSelect starting colour").
		AddButtons(menuButtons).
		SetDoneFunc(a.chosen)
	if first == igame.White {
		a.menu.SetFocus(1)
	}

	layout := tview.NewFlex().
		AddItem(a.board, labelWidth+igame.Size*2+2, 0, true).
		AddItem(a.status, 0, 1, false)

	a.pages.AddPage(pageBoard, layout, true, false)
	a.pages.AddPage(pageMenu, a.menu, true, true)
	a.app.SetRoot(a.pages, true)
	return a
}

// Run blocks until the player quits.
func (a *App) Run() error {
	return a.app.Run()
}

// Place implements Controller.
func (a *App) Place(x, y int) {
	a.show(a.game.PlaceStone(x, y))
}

// Undo implements Controller.
func (a *App) Undo() {
	a.show(a.game.UndoMove())
}

// NewGame implements Controller. It goes back to the colour selection.
func (a *App) NewGame() {
	a.pages.SwitchToPage(pageMenu)
	a.app.SetFocus(a.menu)
}

// Quit implements Controller.
func (a *App) Quit() {
	a.app.Stop()
}

func (a *App) chosen(index int, label string) {
	var colour igame.Colour
	switch label {
	case menuButtons[0]:
		colour = igame.Black
	case menuButtons[1]:
		colour = igame.White
	case menuButtons[2]:
		a.Quit()
		return
	default:
		return
	}

	a.show(a.game.StartNewGame(colour))
	a.pages.SwitchToPage(pageBoard)
	a.app.SetFocus(a.board)
}

// show puts state on screen. Rejected moves carry their reason
// in the state message; only a dead game stops the application.
func (a *App) show(state game.State, err error) {
	if errors.Is(err, game.ErrResourceNotAvailable) {
		a.logger.Error("game is not available", zap.Error(err))
		a.app.Stop()
		return
	}
	a.board.SetState(state)
	a.status.SetText(StatusText(state))
}
