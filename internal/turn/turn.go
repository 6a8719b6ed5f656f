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

// Package turn implements spec.md §4.5: apply_move, apply_promotion,
// apply_resign and the shared _finalize algorithm (notation assembly, game
// end detection, en-passant refresh, snapshotting and repetition counting).
// Every exported function returns a new GameState; the input is cloned
// before any mutation and is never observed to change.
package turn

import (
	"fmt"
	"strings"

	"github.com/op/go-logging"

	"github.com/wjkiely/spell-chess/internal/attacks"
	"github.com/wjkiely/spell-chess/internal/coords"
	"github.com/wjkiely/spell-chess/internal/engineerr"
	myLogging "github.com/wjkiely/spell-chess/internal/logging"
	"github.com/wjkiely/spell-chess/internal/position"
	"github.com/wjkiely/spell-chess/internal/rules"
	"github.com/wjkiely/spell-chess/internal/spells"
)

var log *logging.Logger

func init() {
	log = myLogging.GetLog()
}

// MoveOutcome is the result of ApplyMove: either Done (State, with
// AwaitingPromotion false) or AwaitingPromotion (State, true), per spec.md
// §6's `Result<MoveOutcome>`.
type MoveOutcome struct {
	State             *position.GameState
	AwaitingPromotion bool
}

// ApplyMove validates and applies the move (fromR,fromC)->(toR,toC) for
// s.CurrentPlayer, per spec.md §4.5. spellNotation is the notation returned
// by a prior ApplyJump/ApplyFreeze call this half-move, or "" if none was
// cast. promo is the chosen promotion letter ('Q','R','B','N') if the
// caller already knows it, or 0 to let a last-rank arrival pause at
// AwaitingPromotion.
func ApplyMove(s *position.GameState, fromR, fromC, toR, toC int, spellNotation string, promo byte) (MoveOutcome, error) {
	if s.IsGameOver {
		return MoveOutcome{}, engineerr.New(engineerr.GameOver, "the game has already ended")
	}
	if !position.InBounds(fromR, fromC) || !position.InBounds(toR, toC) {
		return MoveOutcome{}, engineerr.New(engineerr.InvalidAction, "(%d,%d)-(%d,%d) is off the board", fromR, fromC, toR, toC)
	}
	if !rules.IsValidMove(s, fromR, fromC, toR, toC) {
		return MoveOutcome{}, engineerr.New(engineerr.IllegalMove, "%s-%s is not a legal move", coords.Algebraic(fromR, fromC), coords.Algebraic(toR, toC))
	}

	kind := rules.ClassifyMove(s, fromR, fromC, toR, toC)
	notation := buildMoveNotation(s, fromR, fromC, toR, toC, kind == rules.EnPassantCapture)

	scratch := s.Clone()
	origin := scratch.Board.At(fromR, fromC)
	originType, originColor := origin.Type, origin.Color

	switch kind {
	case rules.CastleKingside, rules.CastleQueenside:
		performCastle(scratch, fromR, fromC, toR, toC, kind)
		if kind == rules.CastleKingside {
			notation = "O-O"
		} else {
			notation = "O-O-O"
		}
	case rules.EnPassantCapture:
		scratch.Board.Clear(fromR, toC) // the captured pawn sits beside the mover's start square
		movePiece(&scratch.Board, fromR, fromC, toR, toC)
		scratch.Board.At(toR, toC).HasMoved = true
	default:
		movePiece(&scratch.Board, fromR, fromC, toR, toC)
		scratch.Board.At(toR, toC).HasMoved = true
	}
	updateCastlingRights(scratch, originColor, originType, fromR, fromC)

	mover := scratch.Board.At(toR, toC)
	if mover.Type == position.Pawn && (toR == 0 || toR == 7) {
		if promo == 0 {
			scratch.AwaitingPromo = &position.AwaitingPromotion{
				Row: toR, Col: toC, Color: mover.Color,
				FromRow: fromR, FromCol: fromC,
				OriginalMoveNotation: notation,
				MovingPieceID:        mover.ID,
			}
			log.Debugf("%s pawn reaches the last rank at (%d,%d), awaiting promotion", mover.Color, toR, toC)
			return MoveOutcome{State: scratch, AwaitingPromotion: true}, nil
		}
		pt, ok := position.PieceTypeFromLetter(promo)
		if !ok {
			return MoveOutcome{}, engineerr.New(engineerr.InvalidAction, "invalid promotion piece %q", string(promo))
		}
		mover.Type = pt
		notation += "=" + string(promo)
	}

	result := finalize(scratch, notation, fromR, fromC, toR, toC, spellNotation, promo, kind == rules.DoublePawnPush)
	return MoveOutcome{State: result}, nil
}

// ApplyPromotion completes a pending promotion left by ApplyMove, setting
// the piece type and calling finalize.
func ApplyPromotion(s *position.GameState, promo byte, spellNotation string) (*position.GameState, error) {
	if s.IsGameOver {
		return nil, engineerr.New(engineerr.GameOver, "the game has already ended")
	}
	if s.AwaitingPromo == nil {
		return nil, engineerr.New(engineerr.PromotionUnexpected, "no promotion is pending")
	}
	pt, ok := position.PieceTypeFromLetter(promo)
	if !ok {
		return nil, engineerr.New(engineerr.InvalidAction, "invalid promotion piece %q", string(promo))
	}

	scratch := s.Clone()
	ap := scratch.AwaitingPromo
	scratch.AwaitingPromo = nil
	r, c, ok := scratch.Board.FindByID(ap.MovingPieceID)
	if !ok {
		return nil, engineerr.New(engineerr.PromotionUnexpected, "the promoting piece is no longer on the board")
	}
	scratch.Board.At(r, c).Type = pt

	notation := ap.OriginalMoveNotation + "=" + string(promo)
	result := finalize(scratch, notation, ap.FromRow, ap.FromCol, r, c, spellNotation, promo, false)
	return result, nil
}

// ApplyResign marks the game over with s.CurrentPlayer as the resigning
// side, per spec.md §4.5. It does not change CurrentPlayer.
func ApplyResign(s *position.GameState) (*position.GameState, error) {
	if s.IsGameOver {
		return nil, engineerr.New(engineerr.GameOver, "the game has already ended")
	}
	scratch := s.Clone()
	winner := scratch.CurrentPlayer.Opponent()
	scratch.IsGameOver = true
	scratch.GameEndMessage = fmt.Sprintf("%s resigned. %s wins.", capitalize(scratch.CurrentPlayer), capitalize(winner))
	scratch.MoveLog = append(scratch.MoveLog, position.MoveLogEntry{
		Turn:           scratch.GameTurnNumber,
		Player:         scratch.CurrentPlayer,
		Notation:       coords.ResignToken,
		Actions:        []string{coords.ResignToken},
		PlySnapshotIdx: len(scratch.History),
	})
	scratch.History = append(scratch.History, scratch.Snapshot())
	log.Infof("%s resigns, %s wins", scratch.CurrentPlayer, winner)
	return scratch, nil
}

// finalize implements spec.md §4.5's _finalize algorithm on an already
// board-mutated scratch state: compact action assembly, ply/turn
// bookkeeping, game-end detection, en-passant refresh, move-log and
// snapshot append, and repetition counting.
func finalize(s *position.GameState, moveNotation string, fromR, fromC, toR, toC int, spellNotation string, promo byte, isDoublePush bool) *position.GameState {
	moverColor := s.CurrentPlayer
	mover := s.Board.At(toR, toC)
	actions := compactActions(spellNotation, fromR, fromC, toR, toC, promo)

	s.PlyCount++
	spells.UpdateActiveSpells(s)

	opponent := moverColor.Opponent()
	suffix := ""
	gameOver := false

	if _, _, ok := s.Board.FindKing(opponent); !ok {
		gameOver = true
		s.IsGameOver = true
		s.GameEndMessage = fmt.Sprintf("%s wins by king capture!", capitalize(moverColor))
		suffix = "#"
	} else if attacks.IsInCheck(&s.Board, opponent, s.ActiveSpells, s.PlyCount) {
		// Checkmate is judged on standard moves alone: an unused freeze or
		// jump charge is not itself an escape, so rules.HasLegalMoves' own
		// spell-escape shortcut must not leak into mate detection here.
		if !rules.HasStandardMove(s, opponent) {
			gameOver = true
			s.IsGameOver = true
			s.GameEndMessage = fmt.Sprintf("%s wins by checkmate!", capitalize(moverColor))
			suffix = "#"
		} else {
			suffix = "+"
		}
	} else if !rules.HasStandardMove(s, opponent) {
		gameOver = true
		s.IsGameOver = true
		s.GameEndMessage = "Draw by stalemate."
	}

	if mover != nil && mover.Type == position.Pawn && isDoublePush {
		s.EnPassant = &position.EnPassantTarget{Row: (fromR + toR) / 2, Col: fromC}
	} else {
		s.EnPassant = nil
	}

	full := moveNotation + suffix
	if spellNotation != "" {
		full = spellNotation + " " + full
	}
	s.MoveLog = append(s.MoveLog, position.MoveLogEntry{
		Turn:           s.GameTurnNumber,
		Player:         moverColor,
		Notation:       full,
		Actions:        actions,
		PlySnapshotIdx: len(s.History),
	})

	if !gameOver {
		if moverColor == position.Black {
			s.GameTurnNumber++
		}
		s.CurrentPlayer = opponent
	}

	snap := s.Snapshot()
	s.History = append(s.History, snap)

	sig := position.Signature(&snap)
	s.RepetitionCount[sig]++
	if s.RepetitionCount[sig] >= 3 {
		s.IsGameOver = true
		s.GameEndMessage = "Draw by threefold repetition."
	}

	log.Debugf("finalized ply %d: %s", s.PlyCount, full)
	return s
}

func compactActions(spellNotation string, fromR, fromC, toR, toC int, promo byte) []string {
	var actions []string
	if spellNotation != "" {
		actions = append(actions, compactSpellToken(spellNotation))
	}
	actions = append(actions, coords.MoveToken(fromR, fromC, toR, toC, promo))
	return actions
}

// compactSpellToken rewrites a spell's human notation ("jump@e3") into its
// compact first-letter form ("j@e3"), per spec.md §4.5 step 1.
func compactSpellToken(spellNotation string) string {
	idx := strings.IndexByte(spellNotation, '@')
	if idx <= 0 {
		return spellNotation
	}
	return string(spellNotation[0]) + spellNotation[idx:]
}

func movePiece(b *position.Board, fromR, fromC, toR, toC int) {
	p := b.At(fromR, fromC)
	b.Clear(fromR, fromC)
	b.Set(toR, toC, p)
}

func performCastle(s *position.GameState, fromR, fromC, toR, toC int, kind rules.MoveKind) {
	movePiece(&s.Board, fromR, fromC, toR, toC)
	s.Board.At(toR, toC).HasMoved = true

	rookFromC, rookToC := 7, toC-1
	if kind == rules.CastleQueenside {
		rookFromC, rookToC = 0, toC+1
	}
	movePiece(&s.Board, fromR, rookFromC, fromR, rookToC)
	s.Board.At(fromR, rookToC).HasMoved = true
}

func updateCastlingRights(s *position.GameState, color position.Color, pieceType position.PieceType, fromR, fromC int) {
	switch pieceType {
	case position.King:
		s.CastlingRights.ClearColor(color)
	case position.Rook:
		homeRow := 7
		if color == position.Black {
			homeRow = 0
		}
		if fromR != homeRow {
			return
		}
		if fromC == 0 {
			s.CastlingRights.ClearQueenside(color)
		} else if fromC == 7 {
			s.CastlingRights.ClearKingside(color)
		}
	}
}

func capitalize(c position.Color) string {
	s := c.String()
	return strings.ToUpper(s[:1]) + s[1:]
}
