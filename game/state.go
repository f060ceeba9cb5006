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

package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/yagoggame/goboard/game/field"
	"github.com/yagoggame/goboard/game/igame"
)

// Status messages shown to the players.
const (
	msgTurn     = "%v to move"
	msgCaptured = "Captured %d stone(s)!"
	msgUndone   = "Move undone."

	msgOccupied = "Invalid move: Position occupied."
	msgPosition = "Invalid move: Position out of range."
	msgSuicide  = "Invalid move: Suicide is forbidden."
	msgKo       = "Invalid move: Ko rule (cannot repeat board state)."
)

// State is the whole game aggregate at one moment.
// Transitions never modify the receiver; they return the next State.
type State struct {
	// ID identifies the game session, fresh for every new game.
	ID string
	// Board is the current position.
	Board field.Board
	// Current is the colour to move.
	Current igame.Colour
	// CapturedByBlack counts white stones removed by black moves.
	CapturedByBlack int
	// CapturedByWhite counts black stones removed by white moves.
	CapturedByWhite int
	// History holds the board before each accepted move, oldest first.
	History []field.Board
	// Message describes the outcome of the last operation.
	Message string
	// GameOver is reserved: no transition sets it.
	GameOver bool
}

// NewState produces an empty board with colour to move.
func NewState(colour igame.Colour) (State, error) {
	if !colour.IsStone() {
		return State{}, fmt.Errorf("%w: starting colour: %v", ErrColour, colour)
	}
	return State{
		ID:      uuid.NewString(),
		Current: colour,
		Message: fmt.Sprintf(msgTurn, colour),
	}, nil
}

// Place tries to put a stone of the current colour at c.
// On rejection the returned State differs from s by Message only
// (not even that for ErrGameOver) and the error tells the reason.
func (s State) Place(c igame.Coordinate) (State, error) {
	if s.GameOver {
		return s, ErrGameOver
	}

	colour := s.Current
	next := s.Board
	if err := next.Put(colour, c); err != nil {
		return s.reject(err), err
	}

	captured := captures(&next, c, colour.Opponent())
	stones := 0
	for _, grp := range captured {
		next.Remove(grp.Stones)
		stones += len(grp.Stones)
	}

	if stones == 0 && next.Group(c, colour).Liberties == 0 {
		err := fmt.Errorf("%w: %v at %v", ErrSuicide, colour, c)
		return s.reject(err), err
	}

	if n := len(s.History); n > 0 && next.Equal(&s.History[n-1]) {
		err := fmt.Errorf("%w: %v at %v", ErrKo, colour, c)
		return s.reject(err), err
	}

	n := len(s.History)
	s.History = append(s.History[:n:n], s.Board)
	s.Board = next
	s.Current = colour.Opponent()
	switch colour {
	case igame.Black:
		s.CapturedByBlack += stones
	case igame.White:
		s.CapturedByWhite += stones
	}
	if stones > 0 {
		s.Message = fmt.Sprintf(msgCaptured, stones)
	} else {
		s.Message = fmt.Sprintf(msgTurn, s.Current)
	}
	s.GameOver = false
	return s, nil
}

// Undo restores the board before the last accepted move and gives the turn
// back. Capture tallies stay as they are. With empty history s is returned
// unchanged.
func (s State) Undo() State {
	n := len(s.History)
	if n == 0 {
		return s
	}
	s.Board = s.History[n-1]
	s.History = s.History[: n-1 : n-1]
	s.Current = s.Current.Opponent()
	s.Message = msgUndone
	s.GameOver = false
	return s
}

// CanUndo reports whether there is a move to take back.
func (s State) CanUndo() bool {
	return len(s.History) > 0
}

// Moves returns the number of accepted moves on record.
func (s State) Moves() int {
	return len(s.History)
}

// LastMove returns the point of the most recent stone, if any.
func (s State) LastMove() (igame.Coordinate, bool) {
	n := len(s.History)
	if n == 0 {
		return igame.Coordinate{}, false
	}
	return field.LastMove(&s.History[n-1], &s.Board)
}

// Captured returns the number of stones captured by colour.
func (s State) Captured(colour igame.Colour) int {
	switch colour {
	case igame.Black:
		return s.CapturedByBlack
	case igame.White:
		return s.CapturedByWhite
	}
	return 0
}

// Clone returns a copy of s not sharing the history storage.
func (s State) Clone() State {
	if s.History != nil {
		s.History = append([]field.Board(nil), s.History...)
	}
	return s
}

func (s State) reject(err error) State {
	s.Message = rejectMessage(err)
	return s
}

// captures collects the groups of opponent touching c left without
// liberties. Every group is judged on b as it is, before any removal.
func captures(b *field.Board, c igame.Coordinate, opponent igame.Colour) []field.Group {
	var rez []field.Group
	for _, n := range field.Neighbours(c) {
		if b.At(n) != opponent || seen(rez, n) {
			continue
		}
		if grp := b.Group(n, opponent); grp.Liberties == 0 {
			rez = append(rez, grp)
		}
	}
	return rez
}

func seen(groups []field.Group, c igame.Coordinate) bool {
	for _, grp := range groups {
		if grp.Contains(c) {
			return true
		}
	}
	return false
}

func rejectMessage(err error) string {
	switch {
	case errors.Is(err, ErrOccupied):
		return msgOccupied
	case errors.Is(err, ErrPosition):
		return msgPosition
	case errors.Is(err, ErrSuicide):
		return msgSuicide
	case errors.Is(err, ErrKo):
		return msgKo
	}
	return "Invalid move: " + err.Error()
}
