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

// MoveLogEntry records one finalized half-move: its human notation, the
// compact tokens that produced it, and where its post-state landed in
// History.
type MoveLogEntry struct {
	Turn           int
	Player         Color
	Notation       string
	Actions        []string
	PlySnapshotIdx int
}

// AwaitingPromotion is present on a GameState iff a pawn reached its last
// rank without the caller supplying a promotion choice; ApplyPromotion
// completes the pending move.
type AwaitingPromotion struct {
	Row                  int
	Col                  int
	Color                Color
	FromRow              int
	FromCol              int
	OriginalMoveNotation string
	MovingPieceID        int
}

// GameState is the full aggregate described in spec.md §3. It is produced
// by NewInitialState and subsequently only by the turn package's finalize
// step; every operation returns a new value rather than mutating its
// receiver in place.
type GameState struct {
	Board           Board
	CurrentPlayer   Color
	GameTurnNumber  int
	PlyCount        int
	Spells          [2]SpellState // indexed by Color
	ActiveSpells    []ActiveSpell
	MoveLog         []MoveLogEntry
	EnPassant       *EnPassantTarget
	CastlingRights  CastlingRights
	IsGameOver      bool
	GameEndMessage  string
	AwaitingPromo   *AwaitingPromotion
	History         []GameSnapshot
	RepetitionCount map[string]int

	// nextPieceID is the monotonic counter used to mint stable piece ids.
	// It is per-state (not a shared global) so two independent replays of
	// the same log assign identical ids deterministically; see
	// spec.md §5 and §8 "Log fidelity".
	nextPieceID int
}

// NewPieceID returns the next unused piece id and advances the counter.
// Exported so hand-built positions (e.g. in tests) can mint fresh ids. A
// promoted piece keeps its original id (see turn.ApplyPromotion), so inside
// the engine only NewInitialState calls it.
func (s *GameState) NewPieceID() int {
	id := s.nextPieceID
	s.nextPieceID++
	return id
}

// NewInitialState builds the standard starting position: full charges for
// both players, all castling rights set, no en-passant target, ply 0, turn
// 1, white to move, and a single history entry (the starting snapshot).
func NewInitialState() *GameState {
	s := &GameState{
		CurrentPlayer:   White,
		GameTurnNumber:  1,
		PlyCount:        0,
		Spells:          [2]SpellState{NewSpellState(), NewSpellState()},
		CastlingRights:  NewCastlingRights(),
		RepetitionCount: map[string]int{},
	}
	placeBackRank(s, 7, White)
	placePawns(s, 6, White)
	placePawns(s, 1, Black)
	placeBackRank(s, 0, Black)
	s.History = []GameSnapshot{s.Snapshot()}
	sig := Signature(&s.History[0])
	s.RepetitionCount[sig] = 1
	return s
}

var backRankOrder = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

func placeBackRank(s *GameState, row int, color Color) {
	for c, pt := range backRankOrder {
		p := &Piece{Type: pt, Color: color, ID: s.NewPieceID()}
		s.Board.Set(row, c, p)
	}
}

func placePawns(s *GameState, row int, color Color) {
	for c := 0; c < 8; c++ {
		p := &Piece{Type: Pawn, Color: color, ID: s.NewPieceID()}
		s.Board.Set(row, c, p)
	}
}
