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
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/yagoggame/goboard/game"
	"github.com/yagoggame/goboard/game/igame"
)

// recorder is a Controller remembering what was asked.
type recorder struct {
	placed  []igame.Coordinate
	undos   int
	newGame int
	quit    int
}

func (r *recorder) Place(x, y int) { r.placed = append(r.placed, igame.Coordinate{X: x, Y: y}) }
func (r *recorder) Undo()         { r.undos++ }
func (r *recorder) NewGame()      { r.newGame++ }
func (r *recorder) Quit()         { r.quit++ }

func newState(t *testing.T, moves ...igame.Coordinate) game.State {
	t.Helper()
	s, err := game.NewState(igame.Black)
	if err != nil {
		t.Fatalf("Unexpected NewState err: %v", err)
	}
	for _, m := range moves {
		if s, err = s.Place(m); err != nil {
			t.Fatalf("Unexpected Place(%v) err: %v", m, err)
		}
	}
	return s
}

func press(v *BoardView, key tcell.Key, r rune) {
	v.InputHandler()(tcell.NewEventKey(key, r, tcell.ModNone), func(tview.Primitive) {})
}

func TestMoveSelection(t *testing.T) {
	v := NewBoardView(&recorder{}, DefaultTheme)
	centre := igame.Coordinate{X: 9, Y: 9}
	if v.Selected() != centre {
		t.Fatalf("Unexpected start selection:\nwant: %v,\ngot: %v.", centre, v.Selected())
	}

	for i := 0; i < igame.Size*2; i++ {
		v.MoveSelection(-1, -1)
	}
	if got := v.Selected(); got != (igame.Coordinate{X: 0, Y: 0}) {
		t.Errorf("Selection should stop at the corner, got: %v", got)
	}

	press(v, tcell.KeyRune, 'l')
	press(v, tcell.KeyDown, 0)
	press(v, tcell.KeyRune, 'j')
	if got := v.Selected(); got != (igame.Coordinate{X: 1, Y: 2}) {
		t.Errorf("Unexpected selection:\nwant: {1 2},\ngot: %v.", got)
	}
}

func TestActionKeys(t *testing.T) {
	rec := &recorder{}
	v := NewBoardView(rec, DefaultTheme)

	press(v, tcell.KeyEnter, 0)
	press(v, tcell.KeyRune, 'u')
	if len(rec.placed) != 1 || rec.placed[0] != (igame.Coordinate{X: 9, Y: 9}) {
		t.Errorf("Unexpected placements: %v", rec.placed)
	}
	if rec.undos != 0 {
		t.Errorf("Undo should be disabled without history")
	}

	v.SetState(newState(t, igame.Coordinate{X: 9, Y: 9}))
	press(v, tcell.KeyRune, 'u')
	press(v, tcell.KeyRune, 'n')
	press(v, tcell.KeyRune, 'q')
	if rec.undos != 1 || rec.newGame != 1 || rec.quit != 1 {
		t.Errorf("Unexpected actions: undo %d, new game %d, quit %d", rec.undos, rec.newGame, rec.quit)
	}
}

func TestGridRune(t *testing.T) {
	tests := []struct {
		name string
		at   igame.Coordinate
		want rune
	}{
		{name: "top left", at: igame.Coordinate{X: 0, Y: 0}, want: '┌'},
		{name: "bottom right", at: igame.Coordinate{X: 18, Y: 18}, want: '┘'},
		{name: "top edge", at: igame.Coordinate{X: 5, Y: 0}, want: '┬'},
		{name: "left edge", at: igame.Coordinate{X: 0, Y: 5}, want: '├'},
		{name: "star point", at: igame.Coordinate{X: 9, Y: 9}, want: '╋'},
		{name: "inside", at: igame.Coordinate{X: 4, Y: 5}, want: '┼'},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := gridRune(test.at); got != test.want {
				t.Errorf("Unexpected rune:\nwant: %q,\ngot: %q.", test.want, got)
			}
		})
	}
}

func TestDraw(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Unexpected screen Init err: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(60, 25)

	v := NewBoardView(&recorder{}, DefaultTheme)
	v.SetState(newState(t, igame.Coordinate{X: 3, Y: 3}, igame.Coordinate{X: 15, Y: 15}))
	v.SetRect(0, 0, 60, 25)
	v.Draw(screen)
	screen.Show()

	cells, width, _ := screen.GetContents()
	runeAt := func(x, y int) rune {
		c := cells[y*width+x]
		if len(c.Runes) == 0 {
			return 0
		}
		return c.Runes[0]
	}

	if got := runeAt(labelWidth, 0); got != 'A' {
		t.Errorf("Unexpected column label:\nwant: 'A',\ngot: %q.", got)
	}
	if got := runeAt(labelWidth+2*8, 0); got != 'J' {
		t.Errorf("Unexpected ninth column label:\nwant: 'J',\ngot: %q.", got)
	}
	if got := string([]rune{runeAt(0, 1), runeAt(1, 1)}); got != "19" {
		t.Errorf("Unexpected row label:\nwant: \"19\",\ngot: %q.", got)
	}
	for _, at := range []igame.Coordinate{{X: 3, Y: 3}, {X: 15, Y: 15}} {
		if got := runeAt(labelWidth+at.X*2, 1+at.Y); got != stoneRune {
			t.Errorf("Unexpected rune at %v:\nwant: %q,\ngot: %q.", at, stoneRune, got)
		}
	}
	if got := runeAt(labelWidth, 1); got != '┌' {
		t.Errorf("Unexpected corner rune:\nwant: '┌',\ngot: %q.", got)
	}
}

func TestStatusText(t *testing.T) {
	fresh := StatusText(newState(t))
	for _, want := range []string{"Black Turn", "Black to move", "Captured White: 0", "Captured Black: 0", "- undo"} {
		if !strings.Contains(fresh, want) {
			t.Errorf("Status of a fresh game misses %q:\n%s", want, fresh)
		}
	}

	moved := StatusText(newState(t, igame.Coordinate{X: 0, Y: 0}))
	for _, want := range []string{"White Turn", "White to move", "Moves: 1", "u undo"} {
		if !strings.Contains(moved, want) {
			t.Errorf("Status after a move misses %q:\n%s", want, moved)
		}
	}
}
