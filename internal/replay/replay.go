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

// Package replay implements spec.md §4.6: the replay driver that folds a
// compact action log into a GameState from scratch, plus the inverse
// build_compact_log operation. It is the sole place that turns the
// persisted log - the system's one source of truth - back into a live
// position.
package replay

import (
	"context"
	"strings"

	"github.com/op/go-logging"
	"golang.org/x/sync/errgroup"

	"github.com/wjkiely/spell-chess/internal/coords"
	"github.com/wjkiely/spell-chess/internal/engineerr"
	myLogging "github.com/wjkiely/spell-chess/internal/logging"
	"github.com/wjkiely/spell-chess/internal/position"
	"github.com/wjkiely/spell-chess/internal/spells"
	"github.com/wjkiely/spell-chess/internal/turn"
)

var log *logging.Logger

func init() {
	log = myLogging.GetLog()
}

// Replay folds actions onto a fresh initial_state(), per spec.md §4.6. It
// stops silently once the game ends, even if tokens remain (truncation
// protection); any parse or validation failure names the offending token.
func Replay(actions []string) (*position.GameState, error) {
	s := position.NewInitialState()
	pending := ""

	for _, tok := range actions {
		if s.IsGameOver {
			break
		}

		switch {
		case coords.IsResignToken(tok):
			next, err := turn.ApplyResign(s)
			if err != nil {
				return nil, annotate(tok, err)
			}
			s = next

		case strings.ContainsRune(tok, '@'):
			parsed, ok := coords.ParseSpellToken(tok)
			if !ok {
				return nil, engineerr.New(engineerr.InvalidAction, "token %q: malformed spell cast", tok)
			}
			if pending != "" {
				return nil, engineerr.New(engineerr.InvalidAction, "token %q: a spell was already cast this half-move", tok)
			}
			var notation string
			var err error
			if parsed.KindLetter == 'j' {
				notation, err = spells.ApplyJump(s, parsed.Row, parsed.Col)
			} else {
				notation, err = spells.ApplyFreeze(s, parsed.Row, parsed.Col)
			}
			if err != nil {
				return nil, annotate(tok, err)
			}
			pending = notation

		case strings.ContainsRune(tok, '-'):
			parsed, ok := coords.ParseMoveToken(tok)
			if !ok {
				return nil, engineerr.New(engineerr.InvalidAction, "token %q: malformed move", tok)
			}
			outcome, err := turn.ApplyMove(s, parsed.FromRow, parsed.FromCol, parsed.ToRow, parsed.ToCol, pending, parsed.Promo)
			if err != nil {
				return nil, annotate(tok, err)
			}
			if outcome.AwaitingPromotion {
				return nil, engineerr.New(engineerr.PromotionRequired, "token %q: pawn reaches the last rank without a promotion piece", tok)
			}
			s = outcome.State
			pending = ""

		default:
			return nil, engineerr.New(engineerr.InvalidAction, "token %q: not a spell, move, or resignation", tok)
		}
	}

	return s, nil
}

func annotate(tok string, err error) error {
	if e, ok := err.(*engineerr.Error); ok {
		return engineerr.New(e.Kind, "token %q: %s", tok, e.Message)
	}
	return err
}

// BuildCompactLog reassembles the compact action log from s.MoveLog, per
// spec.md §6 - the exact inverse of Replay, and the engine's
// build_compact_log operation.
func BuildCompactLog(s *position.GameState) string {
	var parts []string
	for _, entry := range s.MoveLog {
		parts = append(parts, entry.Actions...)
	}
	return strings.Join(parts, ",")
}

// ReplayMany replays a batch of independent action logs concurrently. Each
// log starts from its own fresh initial_state() and touches no shared
// mutable state, so the batch parallelizes safely. Every log is replayed to
// the end even if another fails; the first error is returned and no results.
func ReplayMany(ctx context.Context, logs [][]string) ([]*position.GameState, error) {
	results := make([]*position.GameState, len(logs))
	g, _ := errgroup.WithContext(ctx)
	for i, actions := range logs {
		i, actions := i, actions
		g.Go(func() error {
			s, err := Replay(actions)
			if err != nil {
				return err
			}
			results[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Errorf("ReplayMany: batch of %d logs failed: %v", len(logs), err)
		return nil, err
	}
	return results, nil
}
