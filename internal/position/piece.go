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

// Package position implements the data model for a Spell Chess position: the
// board, pieces, spell state and the GameState aggregate, plus snapshotting
// and the repetition signature. It holds no movement or attack logic - see
// the attacks and rules packages for that.
package position

// Color identifies the side to move or the owner of a piece.
type Color int

const (
	// White moves first.
	White Color = iota
	// Black moves second.
	Black
)

// Opponent returns the other color.
func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceType is one of the six chess piece kinds.
type PieceType int

const (
	King PieceType = iota
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

// Letter returns the uppercase English piece letter used in notation and
// compact promotion tokens ("" for pawn, which SAN omits).
func (pt PieceType) Letter() string {
	switch pt {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	default:
		return ""
	}
}

func (pt PieceType) String() string {
	switch pt {
	case King:
		return "king"
	case Queen:
		return "queen"
	case Rook:
		return "rook"
	case Bishop:
		return "bishop"
	case Knight:
		return "knight"
	case Pawn:
		return "pawn"
	default:
		return "none"
	}
}

// PieceTypeFromLetter parses an uppercase piece letter ("Q", "R", "B", "N")
// into a PieceType used for promotion. The king and pawn are never valid
// promotion targets and are not accepted here.
func PieceTypeFromLetter(l byte) (PieceType, bool) {
	switch l {
	case 'Q':
		return Queen, true
	case 'R':
		return Rook, true
	case 'B':
		return Bishop, true
	case 'N':
		return Knight, true
	default:
		return 0, false
	}
}

// Piece is one chess piece. Id is stable across mutations: it is how an
// ActiveSpell (Jump) and caller-visible diagnostics refer to a piece that
// may move, be captured, or be promoted in place.
type Piece struct {
	Type       PieceType
	Color      Color
	ID         int
	HasMoved   bool
	IsJumpable bool
	// IsFrozen is reserved storage; the active-freeze predicate for a piece
	// is always computed on demand from the position's ActiveSpells (see
	// the attacks package), never read from this field.
	IsFrozen bool
}

// Clone returns a deep copy (Piece has no pointer fields, but Clone keeps
// the call sites symmetrical with Board.Clone / GameState.Clone).
func (p Piece) Clone() Piece {
	return p
}
