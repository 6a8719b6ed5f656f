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

package replay

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wjkiely/spell-chess/internal/coords"
	"github.com/wjkiely/spell-chess/internal/position"
	"github.com/wjkiely/spell-chess/internal/rules"
	"github.com/wjkiely/spell-chess/internal/spells"
	"github.com/wjkiely/spell-chess/internal/turn"
)

func TestScenarioScholarsMate(t *testing.T) {
	s, err := Replay([]string{
		"e2-e4", "e7-e5", "f1-c4", "b8-c6", "d1-h5", "g8-f6", "h5-f7",
	})
	require.NoError(t, err)
	assert.True(t, s.IsGameOver)
	assert.Equal(t, "White wins by checkmate!", s.GameEndMessage)
	last := s.MoveLog[len(s.MoveLog)-1]
	assert.True(t, strings.HasSuffix(last.Notation, "#"))
}

func TestScenarioCastlingKingside(t *testing.T) {
	s, err := Replay([]string{
		"e2-e4", "e7-e5", "g1-f3", "g8-f6", "f1-c4", "f8-c5", "e1-g1",
	})
	require.NoError(t, err)

	wk := s.Board.At(7, 6) // g1
	require.NotNil(t, wk)
	assert.Equal(t, position.King, wk.Type)
	assert.Equal(t, position.White, wk.Color)

	wr := s.Board.At(7, 5) // f1
	require.NotNil(t, wr)
	assert.Equal(t, position.Rook, wr.Type)
	assert.Equal(t, position.White, wr.Color)

	assert.False(t, s.CastlingRights.Kingside(position.White))
	assert.False(t, s.CastlingRights.Queenside(position.White))

	last := s.MoveLog[len(s.MoveLog)-1]
	assert.Equal(t, "O-O", last.Notation)
}

func TestScenarioFreezeBlocksKnight(t *testing.T) {
	s, err := Replay([]string{"g1-f3", "b8-c6"})
	require.NoError(t, err)
	require.Equal(t, position.White, s.CurrentPlayer)

	notation, err := spells.ApplyFreeze(s, 2, 2) // c6
	require.NoError(t, err)
	assert.Equal(t, "freeze@c6", notation)

	out, err := applyMoveToken(s, "f3-g5", notation)
	require.NoError(t, err)
	s = out

	require.Equal(t, position.Black, s.CurrentPlayer)
	knight := s.Board.At(2, 2)
	require.NotNil(t, knight)
	assert.Equal(t, position.Knight, knight.Type)
	assert.Empty(t, rules.ValidMovesFor(s, 2, 2))
	assert.True(t, rules.HasLegalMoves(s, position.Black))
}

func TestScenarioJumpEnablesDoublePushThenExpires(t *testing.T) {
	var b position.Board
	s := &position.GameState{
		Board:           b,
		CurrentPlayer:   position.White,
		GameTurnNumber:  1,
		Spells:          [2]position.SpellState{position.NewSpellState(), position.NewSpellState()},
		CastlingRights:  position.CastlingRights{},
		RepetitionCount: map[string]int{},
	}
	wk := &position.Piece{Type: position.King, Color: position.White, ID: 1}
	bk := &position.Piece{Type: position.King, Color: position.Black, ID: 2}
	pawn := &position.Piece{Type: position.Pawn, Color: position.White, ID: 3}
	blocker := &position.Piece{Type: position.Pawn, Color: position.White, ID: 4}
	s.Board.Set(7, 0, wk)  // a1
	s.Board.Set(0, 7, bk)  // h8
	s.Board.Set(6, 4, pawn)   // e2
	s.Board.Set(5, 4, blocker) // e3, blocks the double push

	require.False(t, rules.IsValidMove(s, 6, 4, 4, 4))

	notation, err := spells.ApplyJump(s, 5, 4)
	require.NoError(t, err)
	assert.Equal(t, "jump@e3", notation)

	s, err = applyMoveToken(s, "e2-e4", notation)
	require.NoError(t, err)
	require.NotNil(t, s.Board.At(4, 4))
	assert.Equal(t, position.Pawn, s.Board.At(4, 4).Type)

	s, err = applyMoveToken(s, "h8-h7", "")
	require.NoError(t, err)

	// Two plies after the cast the jump has expired (ExpiresAtPly ==
	// plyCountAtCast+2, and UpdateActiveSpells already pruned it during the
	// second finalize). The blocker is no longer jumpable, so an equivalent
	// double push through it is rejected again.
	require.Empty(t, s.ActiveSpells)
	assert.False(t, s.Board.At(5, 4).IsJumpable)
	s.Board.Set(6, 4, &position.Piece{Type: position.Pawn, Color: position.White, ID: 5})
	assert.False(t, rules.IsValidMove(s, 6, 4, 4, 4))
}

// applyMoveToken is a small replay-less helper that mirrors the move
// dispatch inside Replay, for scenarios built on hand-assembled positions
// rather than a full compact log.
func applyMoveToken(s *position.GameState, tok, spellNotation string) (*position.GameState, error) {
	parsed, ok := coords.ParseMoveToken(tok)
	if !ok {
		panic("bad move token in test: " + tok)
	}
	out, err := turn.ApplyMove(s, parsed.FromRow, parsed.FromCol, parsed.ToRow, parsed.ToCol, spellNotation, parsed.Promo)
	if err != nil {
		return nil, err
	}
	if out.AwaitingPromotion {
		panic("unexpected awaiting promotion in test: " + tok)
	}
	return out.State, nil
}

func TestScenarioThreefoldRepetition(t *testing.T) {
	s, err := Replay([]string{
		"g1-f3", "g8-f6", "f3-g1", "f6-g8",
		"g1-f3", "g8-f6", "f3-g1", "f6-g8",
	})
	require.NoError(t, err)
	assert.True(t, s.IsGameOver)
	assert.Equal(t, "Draw by threefold repetition.", s.GameEndMessage)
}

func TestScenarioResign(t *testing.T) {
	s, err := Replay([]string{"R"})
	require.NoError(t, err)
	assert.True(t, s.IsGameOver)
	assert.Equal(t, "White resigned. Black wins.", s.GameEndMessage)
	require.Len(t, s.MoveLog, 1)
	assert.Equal(t, []string{"R"}, s.MoveLog[0].Actions)
}

func TestReplayTruncatesSilentlyAfterGameOver(t *testing.T) {
	s, err := Replay([]string{
		"e2-e4", "e7-e5", "f1-c4", "b8-c6", "d1-h5", "g8-f6", "h5-f7",
		"a7-a6",
	})
	require.NoError(t, err)
	assert.True(t, s.IsGameOver)
	assert.Equal(t, "White wins by checkmate!", s.GameEndMessage)
}

func TestReplayRejectsMalformedToken(t *testing.T) {
	_, err := Replay([]string{"e2-e4", "not-a-token!!"})
	require.Error(t, err)
}

func TestBuildCompactLogRoundTripsThroughReplay(t *testing.T) {
	actions := []string{"e2-e4", "e7-e5", "g1-f3"}
	s, err := Replay(actions)
	require.NoError(t, err)

	log := BuildCompactLog(s)
	assert.Equal(t, "e2-e4,e7-e5,g1-f3", log)

	again, err := Replay(strings.Split(log, ","))
	require.NoError(t, err)
	assert.Equal(t, s.CurrentPlayer, again.CurrentPlayer)
	assert.Equal(t, s.Board.String(), again.Board.String())
}
