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

import "github.com/wjkiely/spell-chess/internal/config"

// SpellKind distinguishes the two spells a player can cast.
type SpellKind int

const (
	// SpellJump makes a targeted piece transparent to sliders, pawn double
	// pushes, and attacks for the duration of the spell.
	SpellJump SpellKind = iota
	// SpellFreeze immobilizes every non-king piece in a 3x3 zone.
	SpellFreeze
)

func (k SpellKind) String() string {
	if k == SpellJump {
		return "jump"
	}
	return "freeze"
}

// SpellState holds one player's remaining spell charges and cooldowns.
type SpellState struct {
	JumpLeft   int
	FreezeLeft int

	// 0 means "never used".
	JumpLastUsedTurn   int
	FreezeLastUsedTurn int
}

// NewSpellState returns a fresh SpellState using the configured starting
// charges (spec.md defaults: 2 jump, 5 freeze).
func NewSpellState() SpellState {
	return SpellState{
		JumpLeft:   config.Settings.Spells.JumpCharges,
		FreezeLeft: config.Settings.Spells.FreezeCharges,
	}
}

// CanCast reports whether kind is available this turn: charges remain and
// the cooldown (if any cast has happened) has elapsed.
func (s SpellState) CanCast(kind SpellKind, currentTurn int) bool {
	switch kind {
	case SpellJump:
		return s.JumpLeft > 0 && cooldownElapsed(s.JumpLastUsedTurn, currentTurn, config.Settings.Spells.JumpCooldownTurns)
	case SpellFreeze:
		return s.FreezeLeft > 0 && cooldownElapsed(s.FreezeLastUsedTurn, currentTurn, config.Settings.Spells.FreezeCooldownTurns)
	default:
		return false
	}
}

func cooldownElapsed(lastUsed, currentTurn, cooldown int) bool {
	return lastUsed == 0 || currentTurn >= lastUsed+cooldown
}

// ActiveSpell is a live Jump or Freeze effect. For Jump, PieceID names the
// targeted piece; for Freeze, TargetRow/TargetCol name the cast square and
// OccupantIDs records who stood in the zone at cast time (diagnostics
// only - the freeze zone is always recomputed live from TargetRow/Col).
type ActiveSpell struct {
	Kind         SpellKind
	Caster       Color
	PieceID      int // Jump only
	TargetRow    int // cast square; defines the zone for Freeze
	TargetCol    int // cast square; defines the zone for Freeze
	OccupantIDs  []int
	ExpiresAtPly int
}

// Expired reports whether the spell's effect has ended as of plyCount.
func (a ActiveSpell) Expired(plyCount int) bool {
	return plyCount >= a.ExpiresAtPly
}

// Clone returns a deep copy of a.
func (a ActiveSpell) Clone() ActiveSpell {
	out := a
	if a.OccupantIDs != nil {
		out.OccupantIDs = append([]int(nil), a.OccupantIDs...)
	}
	return out
}

// JumpExpiry computes the ExpiresAtPly for a jump cast at plyCountAtCast:
// the effect covers the caster's current ply and the opponent's next ply,
// then expires.
func JumpExpiry(plyCountAtCast int) int {
	return plyCountAtCast + config.Settings.Spells.JumpDurationPlies
}

// FreezeExpiry computes the ExpiresAtPly for a freeze cast at plyCountAtCast.
func FreezeExpiry(plyCountAtCast int) int {
	return plyCountAtCast + config.Settings.Spells.FreezeDurationPlies
}
