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

package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wjkiely/spell-chess/internal/attacks"
	"github.com/wjkiely/spell-chess/internal/position"
)

func TestPawnDoublePushBlockedByNonJumpablePiece(t *testing.T) {
	s := position.NewInitialState()
	blocker := &position.Piece{Type: position.Knight, Color: position.Black, ID: s.NewPieceID()}
	s.Board.Set(5, 4, blocker) // e3
	assert.False(t, IsValidMove(s, 6, 4, 4, 4))
}

func TestPawnDoublePushAllowedThroughJumpablePiece(t *testing.T) {
	s := position.NewInitialState()
	blocker := &position.Piece{Type: position.Knight, Color: position.Black, ID: s.NewPieceID(), IsJumpable: true}
	s.Board.Set(5, 4, blocker) // e3
	assert.True(t, IsValidMove(s, 6, 4, 4, 4))
}

func TestKnightIgnoresPathClearance(t *testing.T) {
	s := position.NewInitialState()
	assert.True(t, IsValidMove(s, 7, 1, 5, 2)) // Nb1-c3
}

func TestCannotCaptureOwnPiece(t *testing.T) {
	s := position.NewInitialState()
	assert.False(t, IsValidMove(s, 7, 0, 6, 0)) // Ra1 onto own pawn a2
}

func TestMoveRejectedWhenLeavesKingInCheck(t *testing.T) {
	s := position.NewInitialState()
	// clear the board to a minimal check scenario: white king e1, black
	// rook e8, white bishop pinned on e-file must not step off it.
	var empty position.Board
	s.Board = empty
	king := &position.Piece{Type: position.King, Color: position.White, ID: s.NewPieceID()}
	bishop := &position.Piece{Type: position.Bishop, Color: position.White, ID: s.NewPieceID()}
	rook := &position.Piece{Type: position.Rook, Color: position.Black, ID: s.NewPieceID()}
	s.Board.Set(7, 4, king)
	s.Board.Set(5, 4, bishop)
	s.Board.Set(0, 4, rook)
	s.CurrentPlayer = position.White
	assert.False(t, IsValidMove(s, 5, 4, 4, 3)) // bishop e3-d4 steps off the pin
}

func TestCastlingKingsideRequirements(t *testing.T) {
	s := position.NewInitialState()
	s.Board.Clear(6, 5) // f2 empty so bishop could have moved
	s.Board.Clear(6, 6) // g2
	s.Board.Clear(7, 5) // Bf1 moved off
	s.Board.Clear(7, 6) // Ng1 moved off
	assert.True(t, IsValidMove(s, 7, 4, 7, 6))
}

func TestCastlingBlockedWhileInCheck(t *testing.T) {
	s := position.NewInitialState()
	s.Board.Clear(6, 5)
	s.Board.Clear(6, 6)
	s.Board.Clear(7, 5)
	s.Board.Clear(7, 6)
	checker := &position.Piece{Type: position.Rook, Color: position.Black, ID: s.NewPieceID()}
	s.Board.Set(0, 4, checker)
	s.Board.Clear(1, 4) // remove blocking black pawn on e-file
	s.Board.Clear(6, 4) // remove blocking white pawn on e-file
	assert.False(t, IsValidMove(s, 7, 4, 7, 6))
}

func TestHasLegalMovesStalemateIsFalse(t *testing.T) {
	var b position.Board
	s := &position.GameState{Board: b, CurrentPlayer: position.White, GameTurnNumber: 1}
	wk := &position.Piece{Type: position.King, Color: position.White, ID: 1}
	bq := &position.Piece{Type: position.Queen, Color: position.Black, ID: 2}
	bk := &position.Piece{Type: position.King, Color: position.Black, ID: 3}
	s.Board.Set(7, 0, wk) // a1
	s.Board.Set(5, 1, bq) // b3
	s.Board.Set(5, 2, bk) // c3
	assert.False(t, attacks.IsInCheck(&s.Board, position.White, nil, 0))
	assert.False(t, HasLegalMoves(s, position.White))
}

func TestHasLegalMovesCheckmateWithoutSpellsIsFalse(t *testing.T) {
	var b position.Board
	s := &position.GameState{Board: b, CurrentPlayer: position.White, GameTurnNumber: 1}
	wk := &position.Piece{Type: position.King, Color: position.White, ID: 1}
	br1 := &position.Piece{Type: position.Rook, Color: position.Black, ID: 2}
	br2 := &position.Piece{Type: position.Rook, Color: position.Black, ID: 3}
	s.Board.Set(7, 0, wk)  // a1
	s.Board.Set(0, 1, br1) // b8 covers the b-file
	s.Board.Set(0, 0, br2) // a8 checks along a-file
	assert.True(t, attacks.IsInCheck(&s.Board, position.White, nil, 0))
	assert.False(t, HasLegalMoves(s, position.White))
}

func TestHasLegalMovesCheckWithFreezeAvailableIsTrue(t *testing.T) {
	var b position.Board
	s := &position.GameState{Board: b, CurrentPlayer: position.White, GameTurnNumber: 1}
	s.Spells[position.White] = position.NewSpellState()
	wk := &position.Piece{Type: position.King, Color: position.White, ID: 1}
	br1 := &position.Piece{Type: position.Rook, Color: position.Black, ID: 2}
	br2 := &position.Piece{Type: position.Rook, Color: position.Black, ID: 3}
	s.Board.Set(7, 0, wk)
	s.Board.Set(0, 1, br1)
	s.Board.Set(0, 0, br2)
	assert.True(t, HasLegalMoves(s, position.White))
}

func TestHasLegalMovesJumpEscapeCheck(t *testing.T) {
	// White king h1 is checked by a black rook on h8 along the clear h-file.
	// Two black knights pin down every adjacent king square, a white pawn on
	// e8 has no moves of its own, and a white rook on a8 cannot reach h8
	// because that pawn blocks rank 8. Jumping the pawn makes it transparent,
	// letting the rook slide past it to capture the checking rook - the only
	// escape from check.
	var b position.Board
	s := &position.GameState{Board: b, CurrentPlayer: position.White, GameTurnNumber: 1}
	s.Spells[position.White] = position.SpellState{JumpLeft: 2, JumpLastUsedTurn: -100}
	wk := &position.Piece{Type: position.King, Color: position.White, ID: 1}
	checker := &position.Piece{Type: position.Rook, Color: position.Black, ID: 2}
	knightA := &position.Piece{Type: position.Knight, Color: position.Black, ID: 3}
	knightB := &position.Piece{Type: position.Knight, Color: position.Black, ID: 4}
	friendlyRook := &position.Piece{Type: position.Rook, Color: position.White, ID: 5}
	blockerPawn := &position.Piece{Type: position.Pawn, Color: position.White, ID: 6}
	s.Board.Set(7, 7, wk)           // h1
	s.Board.Set(0, 7, checker)      // h8
	s.Board.Set(5, 5, knightA)      // f3, covers g1 and h2
	s.Board.Set(4, 5, knightB)      // f4, covers g2
	s.Board.Set(0, 0, friendlyRook) // a8
	s.Board.Set(0, 4, blockerPawn)  // e8, blocks rank 8 and has no moves itself

	assert.True(t, attacks.IsInCheck(&s.Board, position.White, nil, 0))
	assert.False(t, HasStandardMove(s, position.White))
	assert.True(t, HasLegalMoves(s, position.White))
}
