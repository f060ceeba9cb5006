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
	"fmt"
	"strings"

	"github.com/yagoggame/goboard/game"
	"github.com/yagoggame/goboard/game/igame"
)

// StatusText renders the panel beside the board: whose turn it is,
// the last message, both capture tallies and the keys.
func StatusText(state game.State) string {
	var sb strings.Builder

	stone := "●"
	if state.Current == igame.White {
		stone = "○"
	}
	fmt.Fprintf(&sb, "  %s %v Turn\n\n", stone, state.Current)
	fmt.Fprintf(&sb, "  %s\n\n", state.Message)
	fmt.Fprintf(&sb, "  Captured White: %d\n", state.CapturedByBlack)
	fmt.Fprintf(&sb, "  Captured Black: %d\n", state.CapturedByWhite)
	fmt.Fprintf(&sb, "  Moves: %d\n\n", state.Moves())

	sb.WriteString("  hjkl/arrows move   enter play\n")
	if state.CanUndo() {
		sb.WriteString("  u undo")
	} else {
		sb.WriteString("  - undo")
	}
	sb.WriteString("   n new game   q quit\n")
	return sb.String()
}
