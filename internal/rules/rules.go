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

// Package rules implements spec.md §4.3: per-piece move legality, castling,
// en passant, the simulated-move king-safety check, and has_legal_moves
// including its spell-escape logic. It never mutates a GameState in place -
// every check is a pure function of the position it is handed.
package rules

import (
	"github.com/op/go-logging"

	"github.com/wjkiely/spell-chess/internal/attacks"
	myLogging "github.com/wjkiely/spell-chess/internal/logging"
	"github.com/wjkiely/spell-chess/internal/position"
)

var log *logging.Logger

func init() {
	log = myLogging.GetLog()
}

// MoveKind classifies a move for the turn executor's mutation step. It is
// only meaningful for moves already known to be legal (ClassifyMove does
// not re-validate).
type MoveKind int

const (
	Normal MoveKind = iota
	CastleKingside
	CastleQueenside
	EnPassantCapture
	DoublePawnPush
)

// IsValidMove reports whether moving the piece on (fromR, fromC) to
// (toR, toC) is legal for s.CurrentPlayer in s, per spec.md §4.3 steps 1-5.
func IsValidMove(s *position.GameState, fromR, fromC, toR, toC int) bool {
	if !position.InBounds(fromR, fromC) || !position.InBounds(toR, toC) {
		return false
	}
	if fromR == toR && fromC == toC {
		return false
	}
	p := s.Board.At(fromR, fromC)
	if p == nil || p.Color != s.CurrentPlayer {
		return false
	}
	if attacks.IsFrozen(&s.Board, fromR, fromC, s.ActiveSpells, s.PlyCount) {
		return false
	}
	dest := s.Board.At(toR, toC)
	if dest != nil && dest.Color == p.Color {
		return false
	}

	switch p.Type {
	case position.Pawn:
		if !pawnGeometryOK(s, p, fromR, fromC, toR, toC, dest) {
			return false
		}
	case position.Knight:
		dr, dc := abs(toR-fromR), abs(toC-fromC)
		if !((dr == 1 && dc == 2) || (dr == 2 && dc == 1)) {
			return false
		}
	case position.Bishop:
		if abs(toR-fromR) != abs(toC-fromC) {
			return false
		}
		if !attacks.PathClear(fromR, fromC, toR, toC, &s.Board) {
			return false
		}
	case position.Rook:
		if fromR != toR && fromC != toC {
			return false
		}
		if !attacks.PathClear(fromR, fromC, toR, toC, &s.Board) {
			return false
		}
	case position.Queen:
		straight := fromR == toR || fromC == toC
		diagonal := abs(toR-fromR) == abs(toC-fromC)
		if !straight && !diagonal {
			return false
		}
		if !attacks.PathClear(fromR, fromC, toR, toC, &s.Board) {
			return false
		}
	case position.King:
		dr, dc := abs(toR-fromR), abs(toC-fromC)
		if dr <= 1 && dc <= 1 {
			// ordinary king step, falls through to king-safety check below
		} else if toR == fromR && abs(toC-fromC) == 2 {
			if !canCastle(s, p, fromR, fromC, toC) {
				return false
			}
		} else {
			return false
		}
	}

	return kingSafeAfter(s, fromR, fromC, toR, toC)
}

func pawnGeometryOK(s *position.GameState, p *position.Piece, fromR, fromC, toR, toC int, dest *position.Piece) bool {
	dir := -1
	homeRank := 6
	if p.Color == position.Black {
		dir = 1
		homeRank = 1
	}
	dr := toR - fromR
	dc := toC - fromC

	// single push
	if dc == 0 && dr == dir && dest == nil {
		return true
	}
	// double push from home rank
	if dc == 0 && dr == 2*dir && fromR == homeRank && dest == nil {
		midR := fromR + dir
		mid := s.Board.At(midR, fromC)
		if mid != nil && !mid.IsJumpable {
			return false
		}
		return s.Board.At(toR, toC) == nil
	}
	// diagonal capture
	if abs(dc) == 1 && dr == dir {
		if dest != nil {
			return true
		}
		// en passant
		if s.EnPassant != nil && s.EnPassant.Row == toR && s.EnPassant.Col == toC {
			return true
		}
	}
	return false
}

func canCastle(s *position.GameState, king *position.Piece, fromR, fromC, toC int) bool {
	if king.HasMoved {
		return false
	}
	color := king.Color
	kingside := toC > fromC
	if kingside && !s.CastlingRights.Kingside(color) {
		return false
	}
	if !kingside && !s.CastlingRights.Queenside(color) {
		return false
	}
	rookCol := 7
	if !kingside {
		rookCol = 0
	}
	rook := s.Board.At(fromR, rookCol)
	if rook == nil || rook.Type != position.Rook || rook.Color != color || rook.HasMoved {
		return false
	}
	if !kingside {
		// b-file square must be empty (not checked for attack).
		if s.Board.At(fromR, 1) != nil {
			return false
		}
	}
	if attacks.IsInCheck(&s.Board, color, s.ActiveSpells, s.PlyCount) {
		return false
	}
	transitC := fromC + sign(toC-fromC)
	if attacks.IsAttacked(&s.Board, fromR, transitC, color.Opponent(), s.ActiveSpells, s.PlyCount) {
		return false
	}
	if attacks.IsAttacked(&s.Board, fromR, toC, color.Opponent(), s.ActiveSpells, s.PlyCount) {
		return false
	}
	return true
}

// ClassifyMove returns the MoveKind of a move already known to be legal.
func ClassifyMove(s *position.GameState, fromR, fromC, toR, toC int) MoveKind {
	p := s.Board.At(fromR, fromC)
	if p == nil {
		return Normal
	}
	if p.Type == position.King && fromR == toR && abs(toC-fromC) == 2 {
		if toC > fromC {
			return CastleKingside
		}
		return CastleQueenside
	}
	if p.Type == position.Pawn {
		if abs(toR-fromR) == 2 {
			return DoublePawnPush
		}
		if fromC != toC && s.Board.At(toR, toC) == nil {
			return EnPassantCapture
		}
	}
	return Normal
}

// kingSafeAfter simulates the move on a scratch board (removing an
// en-passant-captured pawn where relevant) and reports whether the mover's
// king is safe afterward. Capturing the opponent's king is always allowed
// (spec.md §9 "Open question - king capture"): if the destination square
// holds the opposing king, the move needs no further safety check, because
// after it that king no longer exists to be "in check".
func kingSafeAfter(s *position.GameState, fromR, fromC, toR, toC int) bool {
	p := s.Board.At(fromR, fromC)
	dest := s.Board.At(toR, toC)
	if dest != nil && dest.Type == position.King {
		return true
	}

	scratch := s.Board.Clone()
	moving := scratch.At(fromR, fromC)
	scratch.Clear(fromR, fromC)

	if p.Type == position.Pawn && fromC != toC && scratch.At(toR, toC) == nil {
		// en passant: the captured pawn sits beside fromR on toC.
		scratch.Clear(fromR, toC)
	}
	scratch.Set(toR, toC, moving)

	return !attacks.IsInCheck(&scratch, p.Color, s.ActiveSpells, s.PlyCount)
}

// ValidMovesFor enumerates every legal destination for the piece on (r, c).
func ValidMovesFor(s *position.GameState, r, c int) []attacks.Square {
	var out []attacks.Square
	p := s.Board.At(r, c)
	if p == nil {
		return out
	}
	for tr := 0; tr < 8; tr++ {
		for tc := 0; tc < 8; tc++ {
			if IsValidMove(s, r, c, tr, tc) {
				out = append(out, attacks.Square{Row: tr, Col: tc})
			}
		}
	}
	return out
}

// HasLegalMoves determines whether color has any legal response in s, per
// spec.md §4.3 steps 1-5.
func HasLegalMoves(s *position.GameState, color position.Color) bool {
	if HasStandardMove(s, color) {
		return true
	}
	inCheck := attacks.IsInCheck(&s.Board, color, s.ActiveSpells, s.PlyCount)
	if !inCheck {
		return false // stalemate: spells alone cannot create a move
	}
	spells := s.Spells[color]
	canJump := spells.CanCast(position.SpellJump, s.GameTurnNumber)
	canFreeze := spells.CanCast(position.SpellFreeze, s.GameTurnNumber)
	if !canJump && !canFreeze {
		return false // checkmate
	}
	if canFreeze {
		// Design decision (spec.md §4.3 step 4 / §9): freeze is treated as
		// always providing a possible escape, matching the source engine's
		// longstanding behavior rather than searching for a freeze target
		// that actually neutralizes the checking piece.
		log.Noticef("%s has no standard move but %d freeze charge(s) remain, treating as escapable", color, spells.FreezeLeft)
		return true
	}
	// Only jump is available.
	kr, kc, ok := s.Board.FindKing(color)
	if !ok {
		return false
	}
	attackers := attacks.GetAttackers(&s.Board, kr, kc, color.Opponent(), s.ActiveSpells, s.PlyCount)
	if len(attackers) >= 2 {
		return false // jump can make at most one own piece jumpable; can't parry a double check
	}
	if len(attackers) == 0 {
		return false
	}
	escapes := jumpCanEscapeCheck(s, color, attackers[0])
	log.Debugf("%s has no standard move, jump escape against attacker at (%d,%d): %v", color, attackers[0].Row, attackers[0].Col, escapes)
	return escapes
}

// HasStandardMove reports whether color has any legal move using the
// standard chess move rules alone, ignoring the spell-escape shortcuts
// HasLegalMoves applies on top. Mate/stalemate detection must use this, not
// HasLegalMoves, since a side holding an unused freeze or jump charge is
// never "stuck" by HasLegalMoves' own contract.
func HasStandardMove(s *position.GameState, color position.Color) bool {
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			p := s.Board.At(r, c)
			if p == nil || p.Color != color {
				continue
			}
			if len(ValidMovesFor(s, r, c)) > 0 {
				return true
			}
		}
	}
	return false
}

// jumpCanEscapeCheck searches whether casting Jump on some own piece P would
// let some own piece legally move to the single attacker's square - i.e.
// capture it - afterward (spec.md §4.3 step 5). It never mutates s; it
// builds scratch states with a hypothetical jumpable piece and hypothetical
// current-player-to-move set to color, so the normal validator can be
// reused unchanged.
func jumpCanEscapeCheck(s *position.GameState, color position.Color, attacker attacks.Square) bool {
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			p := s.Board.At(r, c)
			if p == nil || p.Color != color || p.IsJumpable {
				continue
			}
			scratch := s.Clone()
			scratch.Board.At(r, c).IsJumpable = true
			scratch.CurrentPlayer = color
			for fr := 0; fr < 8; fr++ {
				for fc := 0; fc < 8; fc++ {
					mp := scratch.Board.At(fr, fc)
					if mp == nil || mp.Color != color {
						continue
					}
					if IsValidMove(scratch, fr, fc, attacker.Row, attacker.Col) {
						return true
					}
				}
			}
		}
	}
	return false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	if n > 0 {
		return 1
	}
	if n < 0 {
		return -1
	}
	return 0
}
