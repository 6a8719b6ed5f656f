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

// GameSnapshot is a deep copy of everything in GameState except History and
// RepetitionCount (spec.md §3). It is what History stores, one per ply plus
// the initial position, and what a position Signature is computed from.
type GameSnapshot struct {
	Board          Board
	CurrentPlayer  Color
	GameTurnNumber int
	PlyCount       int
	Spells         [2]SpellState
	ActiveSpells   []ActiveSpell
	MoveLog        []MoveLogEntry
	EnPassant      *EnPassantTarget
	CastlingRights CastlingRights
	IsGameOver     bool
	GameEndMessage string
	AwaitingPromo  *AwaitingPromotion
}

// Snapshot deep-copies s into a GameSnapshot.
func (s *GameState) Snapshot() GameSnapshot {
	snap := GameSnapshot{
		Board:          s.Board.Clone(),
		CurrentPlayer:  s.CurrentPlayer,
		GameTurnNumber: s.GameTurnNumber,
		PlyCount:       s.PlyCount,
		Spells:         s.Spells,
		CastlingRights: s.CastlingRights,
		IsGameOver:     s.IsGameOver,
		GameEndMessage: s.GameEndMessage,
	}
	if s.EnPassant != nil {
		ep := *s.EnPassant
		snap.EnPassant = &ep
	}
	if s.AwaitingPromo != nil {
		ap := *s.AwaitingPromo
		snap.AwaitingPromo = &ap
	}
	if len(s.ActiveSpells) > 0 {
		snap.ActiveSpells = make([]ActiveSpell, len(s.ActiveSpells))
		for i, as := range s.ActiveSpells {
			snap.ActiveSpells[i] = as.Clone()
		}
	}
	if len(s.MoveLog) > 0 {
		snap.MoveLog = make([]MoveLogEntry, len(s.MoveLog))
		for i, e := range s.MoveLog {
			cp := e
			cp.Actions = append([]string(nil), e.Actions...)
			snap.MoveLog[i] = cp
		}
	}
	return snap
}

// Clone returns a deep copy of s, including History and RepetitionCount, so
// callers (and the turn package's scratch-mutation step) never observe
// in-place mutation of a state they were handed.
func (s *GameState) Clone() *GameState {
	out := &GameState{
		Board:           s.Board.Clone(),
		CurrentPlayer:   s.CurrentPlayer,
		GameTurnNumber:  s.GameTurnNumber,
		PlyCount:        s.PlyCount,
		Spells:          s.Spells,
		CastlingRights:  s.CastlingRights,
		IsGameOver:      s.IsGameOver,
		GameEndMessage:  s.GameEndMessage,
		RepetitionCount: make(map[string]int, len(s.RepetitionCount)),
		nextPieceID:     s.nextPieceID,
	}
	if s.EnPassant != nil {
		ep := *s.EnPassant
		out.EnPassant = &ep
	}
	if s.AwaitingPromo != nil {
		ap := *s.AwaitingPromo
		out.AwaitingPromo = &ap
	}
	if len(s.ActiveSpells) > 0 {
		out.ActiveSpells = make([]ActiveSpell, len(s.ActiveSpells))
		for i, as := range s.ActiveSpells {
			out.ActiveSpells[i] = as.Clone()
		}
	}
	if len(s.MoveLog) > 0 {
		out.MoveLog = make([]MoveLogEntry, len(s.MoveLog))
		for i, e := range s.MoveLog {
			cp := e
			cp.Actions = append([]string(nil), e.Actions...)
			out.MoveLog[i] = cp
		}
	}
	if len(s.History) > 0 {
		out.History = make([]GameSnapshot, len(s.History))
		copy(out.History, s.History)
	}
	for k, v := range s.RepetitionCount {
		out.RepetitionCount[k] = v
	}
	return out
}

// FromSnapshot rebuilds a standalone GameState from a GameSnapshot, used by
// history navigation collaborators. History and RepetitionCount are left
// empty, consistent with GameSnapshot's definition of excluding them; a
// caller that needs those can replay from the action log instead.
func FromSnapshot(snap GameSnapshot, nextPieceID int) *GameState {
	s := &GameState{
		Board:           snap.Board.Clone(),
		CurrentPlayer:   snap.CurrentPlayer,
		GameTurnNumber:  snap.GameTurnNumber,
		PlyCount:        snap.PlyCount,
		Spells:          snap.Spells,
		CastlingRights:  snap.CastlingRights,
		IsGameOver:      snap.IsGameOver,
		GameEndMessage:  snap.GameEndMessage,
		RepetitionCount: map[string]int{},
		nextPieceID:     nextPieceID,
	}
	if snap.EnPassant != nil {
		ep := *snap.EnPassant
		s.EnPassant = &ep
	}
	if snap.AwaitingPromo != nil {
		ap := *snap.AwaitingPromo
		s.AwaitingPromo = &ap
	}
	if len(snap.ActiveSpells) > 0 {
		s.ActiveSpells = make([]ActiveSpell, len(snap.ActiveSpells))
		for i, as := range snap.ActiveSpells {
			s.ActiveSpells[i] = as.Clone()
		}
	}
	if len(snap.MoveLog) > 0 {
		s.MoveLog = make([]MoveLogEntry, len(snap.MoveLog))
		for i, e := range snap.MoveLog {
			cp := e
			cp.Actions = append([]string(nil), e.Actions...)
			s.MoveLog[i] = cp
		}
	}
	return s
}
