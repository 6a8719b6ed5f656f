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

// Package spells implements spec.md §4.4: cast validation for Jump and
// Freeze, cooldown/charge bookkeeping, active-spell lifecycle and expiry.
// A spell never advances the turn or ply; it only mutates the casting
// side's SpellState, appends an ActiveSpell record and, for Jump, marks the
// target piece jumpable. The caller is
// responsible for finalizing the half-move with a move or a resignation.
package spells

import (
	"github.com/op/go-logging"

	"github.com/wjkiely/spell-chess/internal/coords"
	"github.com/wjkiely/spell-chess/internal/engineerr"
	myLogging "github.com/wjkiely/spell-chess/internal/logging"
	"github.com/wjkiely/spell-chess/internal/position"
)

var log *logging.Logger

func init() {
	log = myLogging.GetLog()
}

// CanCast reports whether color may cast kind right now - equivalent to
// spec.md's can_cast(state, kind), scoped to a side.
func CanCast(s *position.GameState, color position.Color, kind position.SpellKind) bool {
	return s.Spells[color].CanCast(kind, s.GameTurnNumber)
}

// ApplyJump casts Jump at (r, c), per spec.md §4.4. The square must hold a
// piece of either color. It returns the jump@<sq> notation token on success.
func ApplyJump(s *position.GameState, r, c int) (string, error) {
	if !position.InBounds(r, c) {
		return "", engineerr.New(engineerr.SpellTargetInvalid, "jump target (%d,%d) is off the board", r, c)
	}
	color := s.CurrentPlayer
	if !CanCast(s, color, position.SpellJump) {
		return "", engineerr.New(engineerr.SpellUnavailable, "jump is unavailable for %s (no charges or on cooldown)", color)
	}
	target := s.Board.At(r, c)
	if target == nil {
		return "", engineerr.New(engineerr.SpellTargetInvalid, "jump cast on empty square")
	}

	sp := s.Spells[color]
	sp.JumpLeft--
	sp.JumpLastUsedTurn = s.GameTurnNumber
	s.Spells[color] = sp

	target.IsJumpable = true
	s.ActiveSpells = append(s.ActiveSpells, position.ActiveSpell{
		Kind:         position.SpellJump,
		Caster:       color,
		PieceID:      target.ID,
		TargetRow:    r,
		TargetCol:    c,
		ExpiresAtPly: position.JumpExpiry(s.PlyCount),
	})

	log.Debugf("%s casts jump at (%d,%d) on piece #%d", color, r, c, target.ID)
	return "jump@" + coords.Algebraic(r, c), nil
}

// ApplyFreeze casts Freeze at (r, c), per spec.md §4.4. Occupancy is not
// required; the spell immobilizes the 3x3 zone clipped to the board for its
// duration. It returns the freeze@<sq> notation token on success.
func ApplyFreeze(s *position.GameState, r, c int) (string, error) {
	if !position.InBounds(r, c) {
		return "", engineerr.New(engineerr.SpellTargetInvalid, "freeze target (%d,%d) is off the board", r, c)
	}
	color := s.CurrentPlayer
	if !CanCast(s, color, position.SpellFreeze) {
		return "", engineerr.New(engineerr.SpellUnavailable, "freeze is unavailable for %s (no charges or on cooldown)", color)
	}

	sp := s.Spells[color]
	sp.FreezeLeft--
	sp.FreezeLastUsedTurn = s.GameTurnNumber
	s.Spells[color] = sp

	var occupants []int
	for rr := r - 1; rr <= r+1; rr++ {
		for cc := c - 1; cc <= c+1; cc++ {
			if !position.InBounds(rr, cc) {
				continue
			}
			if p := s.Board.At(rr, cc); p != nil {
				occupants = append(occupants, p.ID)
			}
		}
	}
	s.ActiveSpells = append(s.ActiveSpells, position.ActiveSpell{
		Kind:         position.SpellFreeze,
		Caster:       color,
		TargetRow:    r,
		TargetCol:    c,
		OccupantIDs:  occupants,
		ExpiresAtPly: position.FreezeExpiry(s.PlyCount),
	})

	log.Debugf("%s casts freeze at (%d,%d), %d occupants caught", color, r, c, len(occupants))
	return "freeze@" + coords.Algebraic(r, c), nil
}

// UpdateActiveSpells prunes every ActiveSpell whose ExpiresAtPly has been
// reached or passed, clearing IsJumpable on the corresponding piece for
// expired jump spells (if that piece still exists). It is invoked by the
// turn executor as part of finalization, per spec.md §4.4.
func UpdateActiveSpells(s *position.GameState) {
	kept := s.ActiveSpells[:0]
	for _, as := range s.ActiveSpells {
		if as.Expired(s.PlyCount) {
			if as.Kind == position.SpellJump {
				if r, c, ok := s.Board.FindByID(as.PieceID); ok {
					s.Board.At(r, c).IsJumpable = false
				}
			}
			continue
		}
		kept = append(kept, as)
	}
	s.ActiveSpells = kept
}
