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

package spells

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wjkiely/spell-chess/internal/engineerr"
	"github.com/wjkiely/spell-chess/internal/position"
)

func TestApplyJumpMarksPieceAndDecrementsCharge(t *testing.T) {
	s := position.NewInitialState()
	before := s.Spells[position.White].JumpLeft

	tok, err := ApplyJump(s, 6, 4) // e2 pawn
	require.NoError(t, err)
	assert.Equal(t, "jump@e2", tok)
	assert.True(t, s.Board.At(6, 4).IsJumpable)
	assert.Equal(t, before-1, s.Spells[position.White].JumpLeft)
	require.Len(t, s.ActiveSpells, 1)
	assert.Equal(t, s.PlyCount+2, s.ActiveSpells[0].ExpiresAtPly)
}

func TestApplyJumpOnEmptySquareIsInvalid(t *testing.T) {
	s := position.NewInitialState()
	_, err := ApplyJump(s, 4, 4)
	require.Error(t, err)
	assert.True(t, engineerr.Is(err, engineerr.SpellTargetInvalid))
}

func TestApplyJumpWithoutChargesIsUnavailable(t *testing.T) {
	s := position.NewInitialState()
	sp := s.Spells[position.White]
	sp.JumpLeft = 0
	s.Spells[position.White] = sp
	_, err := ApplyJump(s, 6, 4)
	require.Error(t, err)
	assert.True(t, engineerr.Is(err, engineerr.SpellUnavailable))
}

func TestApplyFreezeCatchesZoneOccupants(t *testing.T) {
	s := position.NewInitialState()
	tok, err := ApplyFreeze(s, 1, 1) // b7, 3x3 zone catches several black pieces
	require.NoError(t, err)
	assert.Equal(t, "freeze@b7", tok)
	require.Len(t, s.ActiveSpells, 1)
	assert.NotEmpty(t, s.ActiveSpells[0].OccupantIDs)
}

func TestApplyFreezeRespectsCooldown(t *testing.T) {
	s := position.NewInitialState()
	_, err := ApplyFreeze(s, 1, 1)
	require.NoError(t, err)
	s.GameTurnNumber++
	_, err = ApplyFreeze(s, 1, 2)
	require.Error(t, err)
	assert.True(t, engineerr.Is(err, engineerr.SpellUnavailable))
}

func TestUpdateActiveSpellsPrunesExpiredJumpAndClearsFlag(t *testing.T) {
	s := position.NewInitialState()
	_, err := ApplyJump(s, 6, 4)
	require.NoError(t, err)

	s.PlyCount = s.ActiveSpells[0].ExpiresAtPly
	UpdateActiveSpells(s)

	assert.Empty(t, s.ActiveSpells)
	assert.False(t, s.Board.At(6, 4).IsJumpable)
}

func TestUpdateActiveSpellsKeepsUnexpiredSpells(t *testing.T) {
	s := position.NewInitialState()
	_, err := ApplyFreeze(s, 1, 1)
	require.NoError(t, err)

	UpdateActiveSpells(s)
	assert.Len(t, s.ActiveSpells, 1)
}
