//
// chesskernel - bitboard chess engine kernel
//
// MIT License
//
// Copyright (c) 2020 chesskernel contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package logging is a thin helper over "github.com/op/go-logging" that
// preconfigures a backend and format once so the rest of the module can
// fetch a ready logger in one call: a standard logger and a dedicated
// UCI-traffic logger. There is no separate search trace logger (search
// carries no debug-trace output) and no dedicated test logger (tests
// use testify's t.Log* instead).
package logging

import (
	golog "log"
	"os"

	"github.com/op/go-logging"

	"github.com/chesskernel/chesskernel/internal/config"
)

var (
	standardLog *logging.Logger
	uciLog      *logging.Logger

	standardFormat = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`,
	)
	uciFormat = logging.MustStringFormatter(`%{time:15:04:05.000} UCI %{message}`)
)

func init() {
	standardLog = logging.MustGetLogger("standard")
	uciLog = logging.MustGetLogger("uci")
}

// GetLog returns the module's standard logger, configured to write to
// stdout at config.Settings.Log.Level.
func GetLog() *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", golog.Lmsgprefix)
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, standardFormat))
	leveled.SetLevel(parseLevel(config.Settings.Log.Level), "")
	standardLog.SetBackend(leveled)
	return standardLog
}

// GetUciLog returns a logger dedicated to protocol traffic - every
// line read from or written to the adapter's stdin/stdout.
func GetUciLog() *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", golog.Lmsgprefix)
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, uciFormat))
	leveled.SetLevel(logging.DEBUG, "")
	uciLog.SetBackend(leveled)
	return uciLog
}

func parseLevel(level string) logging.Level {
	l, err := logging.LogLevel(level)
	if err != nil {
		return logging.INFO
	}
	return l
}
