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

// Package ui is the terminal front end of the board: colour selection,
// board view with a cursor and the status panel.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/yagoggame/goboard/game"
	"github.com/yagoggame/goboard/game/igame"
)

// Controller receives the actions chosen on the board view.
type Controller interface {
	Place(x, y int)
	Undo()
	NewGame()
	Quit()
}

// labelWidth is the room left of the grid for row numbers.
const labelWidth = 3

// Theme holds colours used to draw the board.
type Theme struct {
	Board    tcell.Color
	Line     tcell.Color
	Black    tcell.Color
	White    tcell.Color
	Cursor   tcell.Color
	LastMove tcell.Color
	Label    tcell.Color
}

// DefaultTheme is a wooden board.
var DefaultTheme = Theme{
	Board:    tcell.NewRGBColor(0xdc, 0xb3, 0x5c),
	Line:     tcell.NewRGBColor(0x5c, 0x40, 0x33),
	Black:    tcell.ColorBlack,
	White:    tcell.ColorWhite,
	Cursor:   tcell.NewRGBColor(0x8f, 0xbc, 0x8f),
	LastMove: tcell.NewRGBColor(0xcd, 0x85, 0x3f),
	Label:    tcell.ColorDefault,
}

// BoardView draws a game state and moves a cursor over it.
type BoardView struct {
	*tview.Box
	state game.State
	theme Theme
	ctrl  Controller
	selX  int
	selY  int
}

// NewBoardView creates the view with the cursor on the centre point.
func NewBoardView(ctrl Controller, theme Theme) *BoardView {
	v := &BoardView{
		Box:   tview.NewBox(),
		theme: theme,
		ctrl:  ctrl,
		selX:  igame.Size / 2,
		selY:  igame.Size / 2,
	}
	v.Box.SetDrawFunc(v.draw)
	return v
}

// SetState replaces the state shown.
func (v *BoardView) SetState(state game.State) {
	v.state = state
}

// Selected returns the point under the cursor.
func (v *BoardView) Selected() igame.Coordinate {
	return igame.Coordinate{X: v.selX, Y: v.selY}
}

// MoveSelection shifts the cursor by (h, v) unless it would leave the board.
func (v *BoardView) MoveSelection(h, w int) {
	next := igame.Coordinate{X: v.selX + h, Y: v.selY + w}
	if !next.OnBoard() {
		return
	}
	v.selX, v.selY = next.X, next.Y
}

// InputHandler handles cursor keys, hjkl and the action keys.
func (v *BoardView) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return v.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		switch event.Key() {
		case tcell.KeyUp:
			v.MoveSelection(0, -1)
		case tcell.KeyDown:
			v.MoveSelection(0, 1)
		case tcell.KeyLeft:
			v.MoveSelection(-1, 0)
		case tcell.KeyRight:
			v.MoveSelection(1, 0)
		case tcell.KeyEnter:
			v.ctrl.Place(v.selX, v.selY)
		case tcell.KeyEscape:
			v.ctrl.NewGame()
		case tcell.KeyRune:
			switch event.Rune() {
			case 'k':
				v.MoveSelection(0, -1)
			case 'j':
				v.MoveSelection(0, 1)
			case 'h':
				v.MoveSelection(-1, 0)
			case 'l':
				v.MoveSelection(1, 0)
			case ' ':
				v.ctrl.Place(v.selX, v.selY)
			case 'u':
				if v.state.CanUndo() {
					v.ctrl.Undo()
				}
			case 'n':
				v.ctrl.NewGame()
			case 'q':
				v.ctrl.Quit()
			}
		}
	})
}

func (v *BoardView) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	labelStyle := tcell.StyleDefault.Foreground(v.theme.Label)
	for col := 0; col < igame.Size; col++ {
		screen.SetContent(x+labelWidth+col*2, y, rune(igame.ColumnLabel(col)), nil, labelStyle)
	}

	last, hasLast := v.state.LastMove()
	for row := 0; row < igame.Size; row++ {
		tview.Print(screen, fmt.Sprintf("%2d", igame.RowLabel(row)), x, y+1+row, labelWidth, tview.AlignLeft, v.theme.Label)

		for col := 0; col < igame.Size; col++ {
			at := igame.Coordinate{X: col, Y: row}
			bg := v.theme.Board
			switch {
			case at == v.Selected():
				bg = v.theme.Cursor
			case hasLast && at == last:
				bg = v.theme.LastMove
			}
			style := tcell.StyleDefault.Background(bg)

			r, fg := gridRune(at), v.theme.Line
			switch v.state.Board.At(at) {
			case igame.Black:
				r, fg = stoneRune, v.theme.Black
			case igame.White:
				r, fg = stoneRune, v.theme.White
			}
			screen.SetContent(x+labelWidth+col*2, y+1+row, r, nil, style.Foreground(fg))

			conn := '─'
			if col == igame.Size-1 || v.state.Board.At(igame.Coordinate{X: col + 1, Y: row}) != igame.NoColour {
				conn = ' '
			}
			screen.SetContent(x+labelWidth+col*2+1, y+1+row, conn, nil, tcell.StyleDefault.Background(v.theme.Board).Foreground(v.theme.Line))
		}
	}
	return x, y, labelWidth + igame.Size*2, igame.Size + 1
}

const stoneRune = '●'


// gridRune returns the box drawing character of an empty point.
func gridRune(at igame.Coordinate) rune {
	if igame.IsStarPoint(at) {
		return '╋'
	}

	top, bottom := at.Y == 0, at.Y == igame.Size-1
	left, right := at.X == 0, at.X == igame.Size-1

	switch {
	case top && left:
		return '┌'
	case top && right:
		return '┐'
	case bottom && left:
		return '└'
	case bottom && right:
		return '┘'
	case top:
		return '┬'
	case bottom:
		return '┴'
	case left:
		return '├'
	case right:
		return '┤'
	}
	return '┼'
}
