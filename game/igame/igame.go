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

// Package igame holds the vocabulary shared by the board and the game:
// stone colours, coordinates and board geometry.
package igame

import "fmt"

// Size is the number of lines on each side of the board.
const Size = 19

// coordLetters are the column labels. The letter I is skipped by convention.
const coordLetters = "ABCDEFGHJKLMNOPQRST"

// Colour provides datatype of stone's colours.
// The zero value NoColour marks an empty point and is never a stone.
type Colour int

// Set of stone's colours
const (
	NoColour Colour = iota
	Black
	White
)

// Opponent returns the colour playing against c.
// NoColour has no opponent and is returned unchanged.
func (c Colour) Opponent() Colour {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	return NoColour
}

// IsStone reports whether c is Black or White.
func (c Colour) IsStone() bool {
	return c == Black || c == White
}

// String provides compatibility with Stringer interface.
func (c Colour) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	case NoColour:
		return "Empty"
	}
	return fmt.Sprintf("Colour(%d)", int(c))
}

// Coordinate is a 0-indexed point on the board: X is the column, Y the row
// counted from the top.
type Coordinate struct {
	X, Y int
}

// OnBoard reports whether c lies within the board.
func (c Coordinate) OnBoard() bool {
	return c.X >= 0 && c.X < Size && c.Y >= 0 && c.Y < Size
}

// String renders c in board notation, e.g. {3 3} is "D16".
func (c Coordinate) String() string {
	if !c.OnBoard() {
		return fmt.Sprintf("(%d,%d)", c.X, c.Y)
	}
	return fmt.Sprintf("%c%d", ColumnLabel(c.X), RowLabel(c.Y))
}

// ColumnLabel returns the letter labelling column x.
func ColumnLabel(x int) byte {
	return coordLetters[x]
}

// RowLabel returns the number labelling row y: 19 on top, 1 at the bottom.
func RowLabel(y int) int {
	return Size - y
}

// StarPoints are the hoshi of the 19x19 board.
var StarPoints = []Coordinate{
	{X: 3, Y: 3}, {X: 9, Y: 3}, {X: 15, Y: 3},
	{X: 3, Y: 9}, {X: 9, Y: 9}, {X: 15, Y: 9},
	{X: 3, Y: 15}, {X: 9, Y: 15}, {X: 15, Y: 15},
}

// IsStarPoint reports whether c is one of the StarPoints.
func IsStarPoint(c Coordinate) bool {
	for _, sp := range StarPoints {
		if sp == c {
			return true
		}
	}
	return false
}
