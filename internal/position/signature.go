/*
 * spell-chess - deterministic rules engine for chess with spells
 *
 * MIT License
 *
 * Copyright (c) 2026 wjkiely
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package position

import (
	"strconv"
	"strings"

	"github.com/wjkiely/spell-chess/internal/config"
)

// Signature computes the canonical position signature used for threefold
// repetition detection (spec.md §4.5): board layout (piece letter plus '*'
// for jumpable, rows joined by '/'), side to move, castling rights,
// en-passant target, and all four cooldown markers. Piece ids and
// remaining charge counts are deliberately omitted so two positions with an
// identical playable future fold together modulo cooldowns.
//
// Cooldown markers are encoded as turns-remaining-until-available (0 if
// already available), not the raw last-used-turn number: two occurrences
// of the same position reached at different turn numbers must still fold
// together whenever their spells are equally available.
func Signature(snap *GameSnapshot) string {
	var b strings.Builder
	for r := 0; r < 8; r++ {
		if r > 0 {
			b.WriteByte('/')
		}
		for c := 0; c < 8; c++ {
			p := snap.Board[r][c]
			if p == nil {
				b.WriteByte(' ')
				continue
			}
			letter := pieceLetter(p.Type)
			if p.Color == Black {
				letter = toLower(letter)
			}
			b.WriteString(letter)
			if p.IsJumpable {
				b.WriteByte('*')
			}
		}
	}
	b.WriteByte(';')
	b.WriteString(snap.CurrentPlayer.String())
	b.WriteByte(';')
	b.WriteString(snap.CastlingRights.String())
	b.WriteByte(';')
	if snap.EnPassant != nil {
		b.WriteString(strconv.Itoa(snap.EnPassant.Row))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(snap.EnPassant.Col))
	} else {
		b.WriteByte('-')
	}
	b.WriteByte(';')
	b.WriteString(strconv.Itoa(cooldownRemaining(snap.Spells[White].JumpLastUsedTurn, snap.GameTurnNumber, config.Settings.Spells.JumpCooldownTurns)))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(cooldownRemaining(snap.Spells[White].FreezeLastUsedTurn, snap.GameTurnNumber, config.Settings.Spells.FreezeCooldownTurns)))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(cooldownRemaining(snap.Spells[Black].JumpLastUsedTurn, snap.GameTurnNumber, config.Settings.Spells.JumpCooldownTurns)))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(cooldownRemaining(snap.Spells[Black].FreezeLastUsedTurn, snap.GameTurnNumber, config.Settings.Spells.FreezeCooldownTurns)))
	return b.String()
}

// cooldownRemaining returns how many turns remain before a spell last cast
// at lastUsed is available again as of currentTurn; 0 if never cast or
// already available.
func cooldownRemaining(lastUsed, currentTurn, cooldown int) int {
	if lastUsed == 0 {
		return 0
	}
	remaining := lastUsed + cooldown - currentTurn
	if remaining < 0 {
		return 0
	}
	return remaining
}
