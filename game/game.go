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

// Package game provides the rules of play and a thread safe game entity
// holding the one authoritative game state.
package game

import (
	"errors"

	"go.uber.org/zap"

	"github.com/yagoggame/goboard/game/field"
	"github.com/yagoggame/goboard/game/igame"
)

var (
	// ErrColour error occurs when a game is started with No Colour
	ErrColour = field.ErrColour
	// ErrPosition error occurs when a stone is placed out of the board
	ErrPosition = field.ErrPosition
	// ErrOccupied error occurs when a stone is placed on occupied position
	ErrOccupied = field.ErrOccupied
	// ErrSuicide error occurs when a move leaves its own group without liberties
	ErrSuicide = errors.New("suicide is forbidden")
	// ErrKo error occurs when a move repeats the previous board
	ErrKo = errors.New("ko rule: the board cannot repeat")
	// ErrGameOver error occurs when attempt operation on game wich is over
	ErrGameOver = errors.New("the game is over")
	// ErrResourceNotAvailable error occurs when the Game is already ended
	ErrResourceNotAvailable = errors.New("resource not available")
)

// Game is a datatype based on chanel, to provide a thread safe game entity.
// Every operation is processed to the end before the next one begins.
type Game chan *gameCommand

// NewGame creates the Game with colour to move first.
// Game must be finished by calling of End() method.
// A nil logger disables logging.
func NewGame(logger *zap.Logger, colour igame.Colour) (Game, error) {
	state, err := NewState(colour)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	g := make(Game)
	g.run(logger, state)
	return g, nil
}

// StartNewGame drops the current game and begins an empty one
// with colour to move first.
func (g Game) StartNewGame(colour igame.Colour) (state State, err error) {
	// the Game may be closed by End, process it
	defer recoverAsErr(&err)

	c := make(chan interface{})
	g <- &gameCommand{act: startCMD, colour: colour, rez: c}
	return takeResult(<-c)
}

// PlaceStone tries to put a stone of the current colour at (x, y).
// The returned state is valid on rejection too: it carries the reason
// in its Message.
func (g Game) PlaceStone(x, y int) (state State, err error) {
	// the Game may be closed by End, process it
	defer recoverAsErr(&err)

	c := make(chan interface{})
	g <- &gameCommand{act: placeCMD, at: igame.Coordinate{X: x, Y: y}, rez: c}
	return takeResult(<-c)
}

// UndoMove takes back the last accepted move. Without history it does nothing.
func (g Game) UndoMove() (state State, err error) {
	// the Game may be closed by End, process it
	defer recoverAsErr(&err)

	c := make(chan interface{})
	g <- &gameCommand{act: undoCMD, rez: c}
	return takeResult(<-c)
}

// State returns a copy of the current state (to prevent a manual changing).
func (g Game) State() (state State, err error) {
	// the Game may be closed by End, process it
	defer recoverAsErr(&err)

	c := make(chan interface{})
	g <- &gameCommand{act: stateCMD, rez: c}
	return takeResult(<-c)
}

// End releases game resources and closes a Game object as chanel.
// If the End() invoked after this - an error will be returned.
func (g Game) End() (err error) {
	defer recoverAsErr(&err)

	c := make(chan interface{})
	g <- &gameCommand{act: endCMD, rez: c}
	<-c
	return nil
}
