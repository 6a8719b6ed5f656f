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

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/wjkiely/spell-chess/internal/config"
	"github.com/wjkiely/spell-chess/internal/engine"
	"github.com/wjkiely/spell-chess/internal/logging"
)

var out = message.NewPrinter(language.German)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLog := flag.String("log", "", "path to a file containing a compact action log\n(comma or newline separated tokens); reads stdin if omitted")
	bench := flag.Int("bench", 0, "replay the log N times and report throughput instead of printing the result")
	doProfile := flag.Bool("profile", false, "CPU-profile the replay, writing a pprof file to the working directory")
	flag.Parse()

	config.ConfFile = *configFile
	config.Setup()
	logging.GetLog()

	if *doProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	actions, err := readActions(*logLog)
	if err != nil {
		fmt.Fprintln(os.Stderr, "spellchess:", err)
		os.Exit(1)
	}

	if *bench > 0 {
		runBench(actions, *bench)
		return
	}

	s, err := engine.Replay(actions)
	if err != nil {
		fmt.Fprintln(os.Stderr, "spellchess: replay failed:", err)
		os.Exit(1)
	}

	for _, entry := range s.MoveLog {
		out.Printf("%d. %s %s\n", entry.Turn, entry.Player, entry.Notation)
	}
	out.Println(s.Board.String())
	if s.IsGameOver {
		out.Println(s.GameEndMessage)
	}
}

func runBench(actions []string, n int) {
	start := time.Now()
	for i := 0; i < n; i++ {
		if _, err := engine.Replay(actions); err != nil {
			fmt.Fprintln(os.Stderr, "spellchess: replay failed on iteration", i, ":", err)
			os.Exit(1)
		}
	}
	elapsed := time.Since(start)
	perSec := uint64(float64(n) / elapsed.Seconds())
	out.Printf("%d replays of a %d-token log in %s (%d replays/s)\n", n, len(actions), elapsed, perSec)
}

// readActions reads a compact action log from path, or stdin if path is
// empty, splitting on commas and newlines and trimming whitespace.
func readActions(path string) ([]string, error) {
	var r io.Reader
	if path == "" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var raw strings.Builder
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		raw.WriteString(scanner.Text())
		raw.WriteByte(',')
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	var actions []string
	for _, tok := range strings.Split(raw.String(), ",") {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			actions = append(actions, tok)
		}
	}
	return actions, nil
}
