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
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/yagoggame/goboard/game/igame"
)

// gameAction is a type with game action values
type gameAction int

// set of actions values of Game object
const (
	endCMD   gameAction = iota //finish this game
	startCMD                   //start a new game
	placeCMD                   //place a stone
	undoCMD                    //take back a move
	stateCMD                   //request of state
)

// gameCommand is a type to hold a comand to a Game
type gameCommand struct {
	act    gameAction
	colour igame.Colour
	at     igame.Coordinate
	rez    chan<- interface{}
}

// result is passed back for operations producing a state and maybe an error.
type result struct {
	state State
	err   error
}

// recoverAsErr processes the panic
// on any action after closing the Game as chanel
func recoverAsErr(err *error) {
	r := recover()
	if r == nil {
		return
	}

	if errR, ok := r.(error); ok == true {
		*err = errR
		if strings.Compare((*err).Error(), "send on closed channel") != 0 {
			panic(r)
		}
		*err = ErrResourceNotAvailable
		return
	}
	panic(r)
}

func takeResult(v interface{}) (State, error) {
	switch v := v.(type) {
	case result:
		return v.state, v.err
	case nil:
		return State{}, ErrResourceNotAvailable
	}
	return State{}, fmt.Errorf("unknown type of value returned: %T: %v", v, v)
}

// Process queries

// startGame implements concurrently safe processing of querry of
// StartNewGame function
func startGame(state *State, colour igame.Colour, logger *zap.Logger, rezChan chan<- interface{}) {
	defer close(rezChan)

	next, err := NewState(colour)
	if err != nil {
		logger.Info("new game refused", zap.String("game_id", state.ID), zap.Error(err))
		rezChan <- result{state: state.Clone(), err: err}
		return
	}

	*state = next
	logger.Info("new game",
		zap.String("game_id", state.ID),
		zap.Stringer("first", colour),
	)
	rezChan <- result{state: state.Clone()}
}

// placeStone implements concurrently safe processing of querry of
// PlaceStone function
func placeStone(state *State, at igame.Coordinate, logger *zap.Logger, rezChan chan<- interface{}) {
	defer close(rezChan)

	colour := state.Current
	before := state.Captured(colour)
	next, err := state.Place(at)
	*state = next
	if err != nil {
		logger.Info("move rejected",
			zap.String("game_id", state.ID),
			zap.Stringer("colour", colour),
			zap.Stringer("at", at),
			zap.Error(err),
		)
		rezChan <- result{state: state.Clone(), err: err}
		return
	}

	logger.Debug("move accepted",
		zap.String("game_id", state.ID),
		zap.Stringer("colour", colour),
		zap.Stringer("at", at),
		zap.Int("captured", state.Captured(colour)-before),
		zap.Int("moves", state.Moves()),
	)
	rezChan <- result{state: state.Clone()}
}

// undoMove implements concurrently safe processing of querry of
// UndoMove function
func undoMove(state *State, logger *zap.Logger, rezChan chan<- interface{}) {
	defer close(rezChan)

	if state.CanUndo() {
		*state = state.Undo()
		logger.Debug("move undone",
			zap.String("game_id", state.ID),
			zap.Int("moves", state.Moves()),
		)
	}
	rezChan <- result{state: state.Clone()}
}

// run processes commads for thread safe operations on Game.
func (g Game) run(logger *zap.Logger, state State) {
	logger.Info("new game",
		zap.String("game_id", state.ID),
		zap.Stringer("first", state.Current),
	)

	go func(g Game) {
		for cmd := range g {
			switch cmd.act {
			case endCMD:
				logger.Info("game ended",
					zap.String("game_id", state.ID),
					zap.Int("moves", state.Moves()),
				)
				close(g)
				close(cmd.rez)

			case startCMD:
				startGame(&state, cmd.colour, logger, cmd.rez)
			case placeCMD:
				placeStone(&state, cmd.at, logger, cmd.rez)
			case undoCMD:
				undoMove(&state, logger, cmd.rez)
			case stateCMD:
				cmd.rez <- result{state: state.Clone()}
				close(cmd.rez)
			}
		}
	}(g)
}
