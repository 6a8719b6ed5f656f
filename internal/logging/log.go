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

// Package logging is a helper for the "github.com/op/go-logging" package
// to reduce the lines of code within each engine package to one line.
// The engine itself is side-effect free; these loggers are purely
// observational and never influence control flow.
package logging

import (
	"log"
	"os"

	"github.com/op/go-logging"

	"github.com/wjkiely/spell-chess/internal/config"
)

var (
	standardLog *logging.Logger
	testLog     *logging.Logger

	standardFormat = logging.MustStringFormatter(`%{time:15:04:05.000} %{shortpkg:-10.10s}:%{shortfile:-16.16s} %{level:-7.7s}:  %{message}`)
)

func init() {
	standardLog = logging.MustGetLogger("engine")
	testLog = logging.MustGetLogger("test")
}

// GetLog returns an instance of a standard Logger preconfigured with an
// os.Stdout backend and a "normal" logging format (time - file - level).
func GetLog() *logging.Logger {
	backend1 := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	backend1Formatter := logging.NewBackendFormatter(backend1, standardFormat)
	standardBackend := logging.AddModuleLevel(backend1Formatter)
	standardBackend.SetLevel(logging.Level(config.Settings.Log.Level), "")
	standardLog.SetBackend(standardBackend)
	return standardLog
}

// GetTestLog returns an instance of a Logger preconfigured for use from
// within _test.go files.
func GetTestLog() *logging.Logger {
	backend1 := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	backend1Formatter := logging.NewBackendFormatter(backend1, standardFormat)
	testBackend := logging.AddModuleLevel(backend1Formatter)
	testBackend.SetLevel(logging.Level(config.Settings.Log.TestLevel), "")
	testLog.SetBackend(testBackend)
	return testLog
}
