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

// Package engine is the public facade for the spell-chess rules engine,
// gathering spec.md §6's public operations (initial_state, apply_spell,
// apply_move, apply_promotion, apply_resign, valid_moves_for,
// has_legal_moves, replay, build_compact_log) behind a single import. Every
// operation is a pure function of its inputs: the GameState passed in is
// never observed to change, and two calls with equal inputs produce equal
// outputs.
package engine

import (
	"github.com/op/go-logging"

	myLogging "github.com/wjkiely/spell-chess/internal/logging"
	"github.com/wjkiely/spell-chess/internal/position"
	"github.com/wjkiely/spell-chess/internal/replay"
	"github.com/wjkiely/spell-chess/internal/rules"
	"github.com/wjkiely/spell-chess/internal/spells"
	"github.com/wjkiely/spell-chess/internal/turn"
)

var log *logging.Logger

func init() {
	log = myLogging.GetLog()
}

// MoveOutcome is spec.md §6's Result<MoveOutcome>: either Done (State,
// AwaitingPromotion false) or AwaitingPromotion (State, true).
type MoveOutcome = turn.MoveOutcome

// Square is a destination square returned by ValidMovesFor.
type Square struct {
	Row, Col int
}

// InitialState returns a fresh standard starting position, per spec.md §5.
func InitialState() *position.GameState {
	return position.NewInitialState()
}

// ApplySpell casts kind at (r, c) for s.CurrentPlayer, per spec.md §6's
// apply_spell. Unlike the internal spells package (which mutates its
// argument as an implementation detail shared with the turn executor), this
// facade clones s first so the caller's State is never observed to change.
func ApplySpell(s *position.GameState, kind position.SpellKind, r, c int) (*position.GameState, string, error) {
	scratch := s.Clone()
	var notation string
	var err error
	switch kind {
	case position.SpellJump:
		notation, err = spells.ApplyJump(scratch, r, c)
	case position.SpellFreeze:
		notation, err = spells.ApplyFreeze(scratch, r, c)
	}
	if err != nil {
		return nil, "", err
	}
	log.Debugf("apply_spell: %s casts %s at (%d,%d)", scratch.CurrentPlayer, kind, r, c)
	return scratch, notation, nil
}

// ApplyMove validates and applies a move, per spec.md §6's apply_move.
func ApplyMove(s *position.GameState, fromR, fromC, toR, toC int, spellNotation string, promo byte) (MoveOutcome, error) {
	return turn.ApplyMove(s, fromR, fromC, toR, toC, spellNotation, promo)
}

// ApplyPromotion completes a pending promotion, per spec.md §6.
func ApplyPromotion(s *position.GameState, promo byte, spellNotation string) (*position.GameState, error) {
	return turn.ApplyPromotion(s, promo, spellNotation)
}

// ApplyResign ends the game with s.CurrentPlayer resigning, per spec.md §6.
func ApplyResign(s *position.GameState) (*position.GameState, error) {
	return turn.ApplyResign(s)
}

// ValidMovesFor enumerates every legal destination for the piece on (r, c),
// per spec.md §6's valid_moves_for.
func ValidMovesFor(r, c int, s *position.GameState) []Square {
	squares := rules.ValidMovesFor(s, r, c)
	out := make([]Square, len(squares))
	for i, sq := range squares {
		out[i] = Square{Row: sq.Row, Col: sq.Col}
	}
	return out
}

// HasLegalMoves reports whether color has any legal response in s, per
// spec.md §6's has_legal_moves (including the spell-escape logic of §4.3).
func HasLegalMoves(color position.Color, s *position.GameState) bool {
	return rules.HasLegalMoves(s, color)
}

// Replay folds a compact action log onto a fresh InitialState, per spec.md
// §4.6 / §6.
func Replay(actions []string) (*position.GameState, error) {
	return replay.Replay(actions)
}

// BuildCompactLog reassembles the compact action log from s.MoveLog, the
// exact inverse of Replay.
func BuildCompactLog(s *position.GameState) string {
	return replay.BuildCompactLog(s)
}
