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

package coords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlgebraicRoundTrip(t *testing.T) {
	cases := []struct {
		r, c int
		sq   string
	}{
		{0, 0, "a8"},
		{7, 0, "a1"},
		{0, 7, "h8"},
		{7, 7, "h1"},
		{4, 4, "e4"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.sq, Algebraic(tc.r, tc.c))
		r, c, ok := ParseAlgebraic(tc.sq)
		assert.True(t, ok)
		assert.Equal(t, tc.r, r)
		assert.Equal(t, tc.c, c)
	}
}

func TestParseAlgebraicInvalid(t *testing.T) {
	for _, s := range []string{"", "a", "i1", "a9", "a0", "abc"} {
		_, _, ok := ParseAlgebraic(s)
		assert.False(t, ok, s)
	}
}

func TestParseSpellToken(t *testing.T) {
	for _, tok := range []string{"j@e3", "jump@e3"} {
		p, ok := ParseSpellToken(tok)
		assert.True(t, ok)
		assert.Equal(t, byte('j'), p.KindLetter)
		assert.Equal(t, 5, p.Row)
		assert.Equal(t, 4, p.Col)
	}
	p, ok := ParseSpellToken("freeze@c6")
	assert.True(t, ok)
	assert.Equal(t, byte('f'), p.KindLetter)

	_, ok = ParseSpellToken("x@e3")
	assert.False(t, ok)
	_, ok = ParseSpellToken("j@z9")
	assert.False(t, ok)
}

func TestParseMoveToken(t *testing.T) {
	m, ok := ParseMoveToken("e2-e4")
	assert.True(t, ok)
	assert.Equal(t, ParsedMove{FromRow: 6, FromCol: 4, ToRow: 4, ToCol: 4}, m)

	m, ok = ParseMoveToken("e7-e8=Q")
	assert.True(t, ok)
	assert.Equal(t, byte('Q'), m.Promo)

	_, ok = ParseMoveToken("e7-e8=X")
	assert.False(t, ok)
	_, ok = ParseMoveToken("notamove")
	assert.False(t, ok)
}

func TestIsResignToken(t *testing.T) {
	assert.True(t, IsResignToken("R"))
	assert.True(t, IsResignToken("r"))
	assert.False(t, IsResignToken("Resign"))
}
