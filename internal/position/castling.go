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

// CastlingRights tracks whether each of the four castling moves is still
// available. A right is cleared permanently once the relevant king or rook
// has moved; it is never set back. Capturing a rook does not clear a right.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// NewCastlingRights returns the standard starting rights: all four set.
func NewCastlingRights() CastlingRights {
	return CastlingRights{true, true, true, true}
}

// Kingside returns the kingside right for color.
func (cr CastlingRights) Kingside(color Color) bool {
	if color == White {
		return cr.WhiteKingside
	}
	return cr.BlackKingside
}

// Queenside returns the queenside right for color.
func (cr CastlingRights) Queenside(color Color) bool {
	if color == White {
		return cr.WhiteQueenside
	}
	return cr.BlackQueenside
}

// ClearColor clears both rights for color (a king move).
func (cr *CastlingRights) ClearColor(color Color) {
	if color == White {
		cr.WhiteKingside = false
		cr.WhiteQueenside = false
	} else {
		cr.BlackKingside = false
		cr.BlackQueenside = false
	}
}

// ClearKingside clears the kingside right for color (rook moved).
func (cr *CastlingRights) ClearKingside(color Color) {
	if color == White {
		cr.WhiteKingside = false
	} else {
		cr.BlackKingside = false
	}
}

// ClearQueenside clears the queenside right for color.
func (cr *CastlingRights) ClearQueenside(color Color) {
	if color == White {
		cr.WhiteQueenside = false
	} else {
		cr.BlackQueenside = false
	}
}

// String is the canonical serialization used by the repetition signature:
// "KQkq" style, '-' if none remain.
func (cr CastlingRights) String() string {
	s := ""
	if cr.WhiteKingside {
		s += "K"
	}
	if cr.WhiteQueenside {
		s += "Q"
	}
	if cr.BlackKingside {
		s += "k"
	}
	if cr.BlackQueenside {
		s += "q"
	}
	if s == "" {
		return "-"
	}
	return s
}

// EnPassantTarget is the square a pawn that just double-pushed "passed
// over", or nil if no en-passant capture is currently available.
type EnPassantTarget struct {
	Row int
	Col int
}
