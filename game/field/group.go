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

package field

import "github.com/yagoggame/goboard/game/igame"

// Group is a chain of same coloured stones connected orthogonally,
// together with the number of distinct empty points touching it.
type Group struct {
	Colour    igame.Colour
	Stones    []igame.Coordinate
	Liberties int
}

// Group collects the chain of colour containing start.
// start must be on the board and hold a stone of colour.
func (b *Board) Group(start igame.Coordinate, colour igame.Colour) Group {
	var visited, liberty [igame.Size][igame.Size]bool

	grp := Group{Colour: colour}
	stack := []igame.Coordinate{start}
	visited[start.Y][start.X] = true

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		grp.Stones = append(grp.Stones, cur)

		for _, n := range Neighbours(cur) {
			switch b.At(n) {
			case igame.NoColour:
				if !liberty[n.Y][n.X] {
					liberty[n.Y][n.X] = true
					grp.Liberties++
				}
			case colour:
				if !visited[n.Y][n.X] {
					visited[n.Y][n.X] = true
					stack = append(stack, n)
				}
			}
		}
	}
	return grp
}

// Contains reports whether c is one of the group's stones.
func (grp Group) Contains(c igame.Coordinate) bool {
	for _, s := range grp.Stones {
		if s == c {
			return true
		}
	}
	return false
}
