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

// Package coords implements the coordinate and compact-token primitives of
// spec.md §4.1: algebraic <-> (row, col) conversion, and the compact action
// grammar (spec.md §6) shared by the turn executor, the spell engine and
// the replay driver.
package coords

import (
	"fmt"
	"strings"
)

// Algebraic converts a (row, col) pair - row 0 = rank 8, col 0 = file 'a' -
// into a square string like "a1".."h8". It panics on out-of-range input,
// mirroring the square types used across the retrieved chess examples: the
// caller is expected to bounds-check first (position.InBounds).
func Algebraic(r, c int) string {
	if r < 0 || r > 7 || c < 0 || c > 7 {
		panic(fmt.Sprintf("coords: square out of range: (%d,%d)", r, c))
	}
	file := byte('a' + c)
	rank := byte('8' - r)
	return string([]byte{file, rank})
}

// ParseAlgebraic parses a square string like "e4" into (row, col). ok is
// false for anything that isn't exactly a file letter a-h followed by a
// rank digit 1-8.
func ParseAlgebraic(s string) (r, c int, ok bool) {
	if len(s) != 2 {
		return 0, 0, false
	}
	file := s[0]
	rank := s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return 0, 0, false
	}
	c = int(file - 'a')
	r = int('8' - rank)
	return r, c, true
}

// SpellToken builds a compact spell-cast token, e.g. "j@e3" or "f@c6".
func SpellToken(kindLetter byte, r, c int) string {
	return fmt.Sprintf("%c@%s", kindLetter, Algebraic(r, c))
}

// MoveToken builds a compact move token, e.g. "e2-e4" or "e7-e8=Q".
func MoveToken(fromR, fromC, toR, toC int, promo byte) string {
	tok := Algebraic(fromR, fromC) + "-" + Algebraic(toR, toC)
	if promo != 0 {
		tok += "=" + string([]byte{promo})
	}
	return tok
}

// ResignToken is the compact token for a resignation.
const ResignToken = "R"

// ParsedSpell is the decomposed form of a spell compact token.
type ParsedSpell struct {
	KindLetter byte // 'j' or 'f'
	Row, Col   int
}

// ParsedMove is the decomposed form of a move compact token.
type ParsedMove struct {
	FromRow, FromCol int
	ToRow, ToCol     int
	Promo            byte // 0 if absent
}

// ParseSpellToken parses a token containing '@'. It accepts both the short
// prefixes ("j@"/"f@") and the longer human-notation prefixes
// ("jump@"/"freeze@") per spec.md §4.1, case-insensitively.
func ParseSpellToken(tok string) (ParsedSpell, bool) {
	idx := strings.IndexByte(tok, '@')
	if idx < 0 {
		return ParsedSpell{}, false
	}
	prefix := strings.ToLower(tok[:idx])
	sq := tok[idx+1:]
	var kind byte
	switch prefix {
	case "j", "jump":
		kind = 'j'
	case "f", "freeze":
		kind = 'f'
	default:
		return ParsedSpell{}, false
	}
	r, c, ok := ParseAlgebraic(sq)
	if !ok {
		return ParsedSpell{}, false
	}
	return ParsedSpell{KindLetter: kind, Row: r, Col: c}, true
}

// ParseMoveToken parses a token containing '-': "<from>-<to>[=<P>]".
func ParseMoveToken(tok string) (ParsedMove, bool) {
	parts := strings.SplitN(tok, "-", 2)
	if len(parts) != 2 {
		return ParsedMove{}, false
	}
	fromR, fromC, ok := ParseAlgebraic(parts[0])
	if !ok {
		return ParsedMove{}, false
	}
	rest := parts[1]
	var promo byte
	if eq := strings.IndexByte(rest, '='); eq >= 0 {
		promoStr := strings.ToUpper(rest[eq+1:])
		if len(promoStr) != 1 || strings.IndexByte("QRBN", promoStr[0]) < 0 {
			return ParsedMove{}, false
		}
		promo = promoStr[0]
		rest = rest[:eq]
	}
	toR, toC, ok := ParseAlgebraic(rest)
	if !ok {
		return ParsedMove{}, false
	}
	return ParsedMove{FromRow: fromR, FromCol: fromC, ToRow: toR, ToCol: toC, Promo: promo}, true
}

// IsResignToken reports whether tok is the (case-insensitive) resign token.
func IsResignToken(tok string) bool {
	return strings.EqualFold(tok, ResignToken)
}
