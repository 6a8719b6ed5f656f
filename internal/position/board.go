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

import "fmt"

// Board is an 8x8 grid of squares. Row 0 is rank 8 (the black back rank)
// and column 0 is file 'a'; a nil entry is an empty square.
type Board [8][8]*Piece

// InBounds reports whether (r, c) addresses a square on the board.
func InBounds(r, c int) bool {
	return r >= 0 && r < 8 && c >= 0 && c < 8
}

// At returns the piece on (r, c), or nil if empty or out of bounds.
func (b *Board) At(r, c int) *Piece {
	if !InBounds(r, c) {
		return nil
	}
	return b[r][c]
}

// Set places p on (r, c), overwriting whatever was there.
func (b *Board) Set(r, c int, p *Piece) {
	b[r][c] = p
}

// Clear empties (r, c).
func (b *Board) Clear(r, c int) {
	b[r][c] = nil
}

// FindKing returns the square of color's king, or ok=false if no king of
// that color is on the board (the prior move captured it).
func (b *Board) FindKing(color Color) (r, c int, ok bool) {
	for r = 0; r < 8; r++ {
		for c = 0; c < 8; c++ {
			if p := b[r][c]; p != nil && p.Type == King && p.Color == color {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// FindByID scans the board for the piece with the given stable id.
func (b *Board) FindByID(id int) (r, c int, ok bool) {
	for r = 0; r < 8; r++ {
		for c = 0; c < 8; c++ {
			if p := b[r][c]; p != nil && p.ID == id {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// Clone returns a deep copy: every occupied square gets its own *Piece so
// mutating the clone never touches the original (callers must never
// observe in-place mutation of a returned GameState).
func (b Board) Clone() Board {
	var out Board
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			if b[r][c] != nil {
				cp := b[r][c].Clone()
				out[r][c] = &cp
			}
		}
	}
	return out
}

// String renders the board as 8 ranks of 8 two-character cells, rank 8
// first, uppercase letters for white, lowercase for black, '.' for empty
// squares. The second character of a cell is '*' for a jumpable piece and a
// space otherwise.
func (b *Board) String() string {
	s := ""
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			p := b[r][c]
			if p == nil {
				s += ". "
				continue
			}
			letter := pieceLetter(p.Type)
			if p.Color == Black {
				letter = toLower(letter)
			}
			if p.IsJumpable {
				s += letter + "*"
			} else {
				s += letter + " "
			}
		}
		s += fmt.Sprintln()
	}
	return s
}

func pieceLetter(pt PieceType) string {
	if pt == Pawn {
		return "P"
	}
	return pt.Letter()
}

func toLower(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}
