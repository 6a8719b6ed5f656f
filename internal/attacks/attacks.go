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

// Package attacks implements spec.md §4.2: path clearance under jumpable
// pieces, the square-attacked predicate, check detection and attacker
// enumeration. Freeze and jump act on these queries, never on movement
// generation directly - rules.go consults this package for every legality
// check.
package attacks

import (
	"github.com/op/go-logging"

	myLogging "github.com/wjkiely/spell-chess/internal/logging"
	"github.com/wjkiely/spell-chess/internal/position"
)

var log *logging.Logger

func init() {
	log = myLogging.GetLog()
}

// Square is a simple (row, col) pair, used for attacker lists.
type Square struct {
	Row, Col int
}

// PathClear iterates the squares strictly between from and to along their
// unique straight or diagonal line (undefined for non-colinear input - call
// sites only use this after confirming piece geometry). A square blocks the
// path iff it holds a piece whose IsJumpable is false; jumpable pieces are
// transparent to sliders and to the pawn double-push pass-through check.
func PathClear(fromR, fromC, toR, toC int, b *position.Board) bool {
	dr := sign(toR - fromR)
	dc := sign(toC - fromC)
	r, c := fromR+dr, fromC+dc
	for r != toR || c != toC {
		if p := b.At(r, c); p != nil && !p.IsJumpable {
			return false
		}
		r += dr
		c += dc
	}
	return true
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// IsFrozen reports whether the piece at (r, c) is immobilized by an active
// Freeze spell. Kings are exempt from freeze for both attack and movement
// purposes (spec.md §4.2 - preserves the invariant that a king is always
// playable); frozen kings still give check.
func IsFrozen(b *position.Board, r, c int, activeSpells []position.ActiveSpell, ply int) bool {
	p := b.At(r, c)
	if p == nil || p.Type == position.King {
		return false
	}
	for _, as := range activeSpells {
		if as.Kind != position.SpellFreeze || as.Expired(ply) {
			continue
		}
		if abs(r-as.TargetRow) <= 1 && abs(c-as.TargetCol) <= 1 {
			return true
		}
	}
	return false
}

// IsAttacked reports whether attackerColor attacks (r, c). A piece
// contributes attacks iff it is not currently frozen (kings are exempt from
// freeze for this purpose).
func IsAttacked(b *position.Board, r, c int, attackerColor position.Color, activeSpells []position.ActiveSpell, ply int) bool {
	for fr := 0; fr < 8; fr++ {
		for fc := 0; fc < 8; fc++ {
			p := b.At(fr, fc)
			if p == nil || p.Color != attackerColor {
				continue
			}
			if IsFrozen(b, fr, fc, activeSpells, ply) {
				continue
			}
			if pieceAttacksSquare(b, p, fr, fc, r, c) {
				return true
			}
		}
	}
	return false
}

// GetAttackers returns every square occupied by an attackerColor piece that
// attacks (r, c), used by the mate-escape jump analysis in the rules
// package.
func GetAttackers(b *position.Board, r, c int, attackerColor position.Color, activeSpells []position.ActiveSpell, ply int) []Square {
	var out []Square
	for fr := 0; fr < 8; fr++ {
		for fc := 0; fc < 8; fc++ {
			p := b.At(fr, fc)
			if p == nil || p.Color != attackerColor {
				continue
			}
			if IsFrozen(b, fr, fc, activeSpells, ply) {
				continue
			}
			if pieceAttacksSquare(b, p, fr, fc, r, c) {
				out = append(out, Square{Row: fr, Col: fc})
			}
		}
	}
	return out
}

// IsInCheck reports whether color's king is currently attacked. Returns
// false (not an error) if the king is absent, used during mid-transition
// queries (e.g. after a simulated king-capturing move).
func IsInCheck(b *position.Board, color position.Color, activeSpells []position.ActiveSpell, ply int) bool {
	kr, kc, ok := b.FindKing(color)
	if !ok {
		return false
	}
	inCheck := IsAttacked(b, kr, kc, color.Opponent(), activeSpells, ply)
	if inCheck {
		log.Debugf("%s king at (%d,%d) is in check", color, kr, kc)
	}
	return inCheck
}

// pieceAttacksSquare reports whether the piece at (fr, fc) attacks (tr, tc).
// This is a pure geometry + path-clearance query; it does not consider
// whose turn it is or king safety.
func pieceAttacksSquare(b *position.Board, p *position.Piece, fr, fc, tr, tc int) bool {
	if fr == tr && fc == tc {
		return false
	}
	dr := tr - fr
	dc := tc - fc
	switch p.Type {
	case position.Pawn:
		dir := -1 // white moves toward row 0
		if p.Color == position.Black {
			dir = 1
		}
		return dr == dir && abs(dc) == 1
	case position.Knight:
		return (abs(dr) == 1 && abs(dc) == 2) || (abs(dr) == 2 && abs(dc) == 1)
	case position.King:
		return abs(dr) <= 1 && abs(dc) <= 1
	case position.Bishop:
		return abs(dr) == abs(dc) && PathClear(fr, fc, tr, tc, b)
	case position.Rook:
		return (dr == 0 || dc == 0) && PathClear(fr, fc, tr, tc, b)
	case position.Queen:
		if dr == 0 || dc == 0 || abs(dr) == abs(dc) {
			return PathClear(fr, fc, tr, tc, b)
		}
		return false
	default:
		return false
	}
}
