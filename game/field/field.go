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

// Package field provides the game board and the group/liberty analysis on it.
package field

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yagoggame/goboard/game/igame"
)

var (
	// ErrColour error occurs when some of operations is made with No Colour
	ErrColour = errors.New("only black and white stones allowed")
	// ErrPosition error occurs when a coordinate is out of the board
	ErrPosition = errors.New("position is out of range")
	// ErrOccupied error occurs when Put is made on occupied position
	ErrOccupied = errors.New("the position is occupied")
)

// directions are the orthogonal steps: up, down, left, right.
var directions = [4]igame.Coordinate{
	{X: 0, Y: -1},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
	{X: 1, Y: 0},
}

// Board holds the stones on the 19x19 desk, indexed [y][x].
// Board is a value: assigning it copies every point.
type Board [igame.Size][igame.Size]igame.Colour

// OnBoard reports whether (x, y) is a point of the board.
func OnBoard(x, y int) bool {
	return igame.Coordinate{X: x, Y: y}.OnBoard()
}

// At returns the colour at c, NoColour for an empty point.
// c must be on the board.
func (b *Board) At(c igame.Coordinate) igame.Colour {
	return b[c.Y][c.X]
}

// Set stores colour at c without any rule checks.
// Setting NoColour empties the point.
func (b *Board) Set(c igame.Coordinate, colour igame.Colour) {
	b[c.Y][c.X] = colour
}

// Put places a stone of colour at c if the point exists and is empty.
func (b *Board) Put(colour igame.Colour, c igame.Coordinate) error {
	if !colour.IsStone() {
		return fmt.Errorf("%w: got colour: %v", ErrColour, colour)
	}
	if !c.OnBoard() {
		return fmt.Errorf("%w: got coordinate: %v", ErrPosition, c)
	}
	if b.At(c) != igame.NoColour {
		return fmt.Errorf("%w: at %v", ErrOccupied, c)
	}
	b.Set(c, colour)
	return nil
}

// Remove empties every point of stones.
func (b *Board) Remove(stones []igame.Coordinate) {
	for _, c := range stones {
		b.Set(c, igame.NoColour)
	}
}

// Neighbours returns the orthogonal neighbours of c lying on the board.
func Neighbours(c igame.Coordinate) []igame.Coordinate {
	rez := make([]igame.Coordinate, 0, len(directions))
	for _, d := range directions {
		n := igame.Coordinate{X: c.X + d.X, Y: c.Y + d.Y}
		if n.OnBoard() {
			rez = append(rez, n)
		}
	}
	return rez
}

// Stones lists the points holding colour, row by row.
func (b *Board) Stones(colour igame.Colour) []igame.Coordinate {
	positions := make([]igame.Coordinate, 0)
	for y := range b {
		for x := range b[y] {
			if b[y][x] == colour {
				positions = append(positions, igame.Coordinate{X: x, Y: y})
			}
		}
	}
	return positions
}

// IsEmpty reports whether no stone is on the board.
func (b *Board) IsEmpty() bool {
	return *b == Board{}
}

// Equal compares boards point by point.
func (b *Board) Equal(other *Board) bool {
	return *b == *other
}

// LastMove finds the stone present on cur which was not on prev.
// ok is false when no point gained a stone.
func LastMove(prev, cur *Board) (c igame.Coordinate, ok bool) {
	for y := range cur {
		for x := range cur[y] {
			if cur[y][x] != igame.NoColour && cur[y][x] != prev[y][x] {
				return igame.Coordinate{X: x, Y: y}, true
			}
		}
	}
	return igame.Coordinate{}, false
}

// String draws the board with X for black, O for white and . for empty,
// one row per line.
func (b *Board) String() string {
	var sb strings.Builder
	for y := range b {
		for x := range b[y] {
			switch b[y][x] {
			case igame.Black:
				sb.WriteByte('X')
			case igame.White:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
