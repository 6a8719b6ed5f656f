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

package turn

import (
	"strings"

	"github.com/wjkiely/spell-chess/internal/coords"
	"github.com/wjkiely/spell-chess/internal/position"
	"github.com/wjkiely/spell-chess/internal/rules"
)

// buildMoveNotation computes the SAN-like human notation for a move from
// the pre-move position s (spec.md §4.5 step 2). Castling is rewritten by
// the caller once the rook relocation is known; this function handles the
// ordinary piece-letter, disambiguation, capture and destination parts.
func buildMoveNotation(s *position.GameState, fromR, fromC, toR, toC int, isEnPassant bool) string {
	p := s.Board.At(fromR, fromC)
	dest := s.Board.At(toR, toC)
	isCapture := dest != nil || isEnPassant

	var sb strings.Builder
	if p.Type != position.Pawn {
		sb.WriteString(p.Type.Letter())
		sb.WriteString(disambiguate(s, p, fromR, fromC, toR, toC))
	}
	if isCapture {
		if p.Type == position.Pawn {
			sb.WriteByte(fileByte(fromC))
		}
		sb.WriteByte('x')
	}
	sb.WriteString(coords.Algebraic(toR, toC))
	return sb.String()
}

// disambiguate returns the SAN disambiguation suffix for a piece move: empty
// if no other piece of the same type and color can legally reach (toR, toC);
// otherwise the origin file, rank, or full square, whichever is the minimal
// distinguishing suffix. Grounded on the standard SAN disambiguation
// algorithm (try file, then rank, then both).
func disambiguate(s *position.GameState, p *position.Piece, fromR, fromC, toR, toC int) string {
	sameFile, sameRank, any := false, false, false
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			if r == fromR && c == fromC {
				continue
			}
			q := s.Board.At(r, c)
			if q == nil || q.Type != p.Type || q.Color != p.Color {
				continue
			}
			if !rules.IsValidMove(s, r, c, toR, toC) {
				continue
			}
			any = true
			if c == fromC {
				sameFile = true
			}
			if r == fromR {
				sameRank = true
			}
		}
	}
	if !any {
		return ""
	}
	if !sameFile {
		return string(fileByte(fromC))
	}
	if !sameRank {
		return string(rankByte(fromR))
	}
	return coords.Algebraic(fromR, fromC)
}

func fileByte(c int) byte {
	return 'a' + byte(c)
}

func rankByte(r int) byte {
	return '8' - byte(r)
}
