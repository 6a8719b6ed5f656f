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

package attacks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wjkiely/spell-chess/internal/position"
)

func TestPathClearBlockedFile(t *testing.T) {
	s := position.NewInitialState()
	// e2 to e4 pawn square is irrelevant here; test the rook file a1-a8,
	// which is blocked by pawns and back rank pieces at both ends.
	assert.False(t, PathClear(7, 0, 0, 0, &s.Board))
}

func TestPathClearTransparentWhenJumpable(t *testing.T) {
	s := position.NewInitialState()
	// block e3 with a friendly knight, then mark it jumpable.
	blocker := &position.Piece{Type: position.Knight, Color: position.White, ID: s.NewPieceID()}
	s.Board.Set(5, 4, blocker) // e3
	assert.False(t, PathClear(6, 4, 4, 4, &s.Board))
	blocker.IsJumpable = true
	assert.True(t, PathClear(6, 4, 4, 4, &s.Board))
}

func TestIsAttackedPawnDiagonal(t *testing.T) {
	s := position.NewInitialState()
	// white pawns on rank 2 attack rank 3 diagonals.
	assert.True(t, IsAttacked(&s.Board, 5, 3, position.White, nil, 0))
	// a lone pawn on e2 does not attack e3.
	var b position.Board
	b.Set(6, 4, &position.Piece{Type: position.Pawn, Color: position.White})
	assert.False(t, IsAttacked(&b, 5, 4, position.White, nil, 0)) // straight ahead is not an attack
}

func TestIsInCheckFalseWithoutKing(t *testing.T) {
	var b position.Board
	assert.False(t, IsInCheck(&b, position.White, nil, 0))
}

func TestFreezeBlocksAttackExceptKing(t *testing.T) {
	s := position.NewInitialState()
	knightID := s.Board.At(0, 1).ID
	spells := []position.ActiveSpell{{
		Kind: position.SpellFreeze, TargetRow: 0, TargetCol: 1, ExpiresAtPly: 5,
	}}
	assert.True(t, IsFrozen(&s.Board, 0, 1, spells, 0))
	_ = knightID
	kr, kc, _ := s.Board.FindKing(position.Black)
	spells[0].TargetRow, spells[0].TargetCol = kr, kc
	assert.False(t, IsFrozen(&s.Board, kr, kc, spells, 0), "kings are never frozen")
}

func TestGetAttackersCountsAll(t *testing.T) {
	s := position.NewInitialState()
	attackers := GetAttackers(&s.Board, 5, 3, position.White, nil, 0)
	assert.Len(t, attackers, 2) // both adjacent pawns attack d3/f3-style squares
}
