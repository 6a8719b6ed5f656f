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

// Package engineerr defines the value-returned error kinds the engine can
// produce. The engine never panics on a caller-reachable path and never
// partially mutates its input: on error the caller's State is untouched.
package engineerr

import "fmt"

// Kind classifies an engine error for collaborator-side status mapping
// (the first five map to 4xx).
type Kind int

const (
	// InvalidAction is a malformed compact token or an unreachable square.
	InvalidAction Kind = iota
	// IllegalMove is a move rejected by geometry, blockage, or king safety.
	IllegalMove
	// SpellUnavailable is a cast attempted with no charges or on cooldown.
	SpellUnavailable
	// SpellTargetInvalid is a jump cast targeting an empty square.
	SpellTargetInvalid
	// PromotionRequired is a pawn reaching the last rank with no promotion choice.
	PromotionRequired
	// PromotionUnexpected is a promotion choice supplied with no pending promotion.
	PromotionUnexpected
	// GameOver is any action attempted after the game has already ended.
	GameOver
)

func (k Kind) String() string {
	switch k {
	case InvalidAction:
		return "InvalidAction"
	case IllegalMove:
		return "IllegalMove"
	case SpellUnavailable:
		return "SpellUnavailable"
	case SpellTargetInvalid:
		return "SpellTargetInvalid"
	case PromotionRequired:
		return "PromotionRequired"
	case PromotionUnexpected:
		return "PromotionUnexpected"
	case GameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Error is the engine's single error type: a Kind plus a human message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// New builds an *Error with a formatted message.
func New(kind Kind, format string, a ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, a...)}
}

// Is reports whether err is an *Error of the given Kind, so callers can
// write `errors.Is`-style checks (`engineerr.Is(err, engineerr.IllegalMove)`).
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}
