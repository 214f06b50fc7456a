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

// Package uci contains the Handler data structure and functionality to
// handle the text-protocol communication between a front-end and the
// engine core: a six-command adapter surface -
// identify/is-ready/new-game/position/go/quit - with no setoption,
// ponderhit, registration, or UCI info streaming beyond the PV line
// the go command already requires.
package uci

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/op/go-logging"

	"github.com/chesskernel/chesskernel/internal/config"
	"github.com/chesskernel/chesskernel/internal/evaluator"
	myLogging "github.com/chesskernel/chesskernel/internal/logging"
	"github.com/chesskernel/chesskernel/internal/movegen"
	"github.com/chesskernel/chesskernel/internal/position"
	"github.com/chesskernel/chesskernel/internal/search"
	. "github.com/chesskernel/chesskernel/internal/types"
)

// EngineName is the identity token returned by the identify command.
const EngineName = "chesskernel"

// DefaultDepth is the iterative-deepening depth used by "go" when no
// "depth N" argument is given and config.Settings.Search.TargetDepth
// is not positive.
const DefaultDepth = 6

var log = myLogging.GetLog()

// Handler reads command lines and drives a Search over a Position,
// responding on its output stream. Create one with NewHandler().
type Handler struct {
	InIo   *bufio.Scanner
	OutIo  *bufio.Writer
	pos    *position.Position
	search *search.Search
	uciLog *logging.Logger
}

// NewHandler creates a new Handler wired to stdin/stdout and a fresh
// starting position.
func NewHandler(eval evaluator.Evaluator) *Handler {
	return &Handler{
		InIo:   bufio.NewScanner(os.Stdin),
		OutIo:  bufio.NewWriter(os.Stdout),
		pos:    position.NewPosition(),
		search: search.NewSearch(eval),
		uciLog: myLogging.GetUciLog(),
	}
}

// Loop reads command lines from InIo until "quit" is received or input
// is exhausted.
func (h *Handler) Loop() {
	for h.InIo.Scan() {
		if h.handle(h.InIo.Text()) {
			return
		}
	}
}

// Command runs a single command line and returns everything it wrote
// to its output stream. Useful for tests and embedding.
func (h *Handler) Command(cmd string) string {
	tmp := h.OutIo
	buf := new(bytes.Buffer)
	h.OutIo = bufio.NewWriter(buf)
	h.handle(cmd)
	_ = h.OutIo.Flush()
	h.OutIo = tmp
	return buf.String()
}

var regexWhiteSpace = regexp.MustCompile(`\s+`)

// handle dispatches a single command line, returning true iff the loop
// should terminate (the "quit" command was received).
func (h *Handler) handle(cmd string) bool {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return false
	}
	h.uciLog.Infof("<< %s", cmd)

	tokens := regexWhiteSpace.Split(cmd, -1)
	switch tokens[0] {
	case "quit":
		return true
	case "identify":
		h.identifyCommand()
	case "is-ready":
		h.isReadyCommand()
	case "new-game":
		h.newGameCommand()
	case "position":
		h.positionCommand(tokens)
	case "go":
		h.goCommand(tokens)
	default:
		log.Warningf("unknown command: %s", cmd)
		h.send(fmt.Sprintf("info string unknown command %s", tokens[0]))
	}
	return false
}

func (h *Handler) identifyCommand() {
	h.send("id name " + EngineName)
	h.send("identifyok")
}

func (h *Handler) isReadyCommand() {
	h.send("readyok")
}

func (h *Handler) newGameCommand() {
	h.pos = position.NewPosition()
}

// positionCommand loads "startpos" or a FEN string, then applies any
// trailing "moves m1 m2 ..." in long algebraic form. A move that
// doesn't match a currently legal move is reported and the rest of
// the command is abandoned.
func (h *Handler) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		h.reportMalformed("position", tokens)
		return
	}

	fen := position.StartFen
	i := 1
	switch tokens[1] {
	case "startpos":
		i = 2
	case "fen":
		var fenb strings.Builder
		i = 2
		for i < len(tokens) && tokens[i] != "moves" {
			fenb.WriteString(tokens[i])
			fenb.WriteString(" ")
			i++
		}
		if strings.TrimSpace(fenb.String()) == "" {
			h.reportMalformed("position", tokens)
			return
		}
		fen = strings.TrimSpace(fenb.String())
	default:
		h.reportMalformed("position", tokens)
		return
	}

	p, err := position.NewPositionFen(fen)
	if err != nil {
		h.send(fmt.Sprintf("info string malformed position: %s", err))
		log.Warningf("malformed position %q: %v", fen, err)
		return
	}
	h.pos = p

	if i < len(tokens) && tokens[i] == "moves" {
		i++
		for ; i < len(tokens); i++ {
			m := h.findMove(tokens[i])
			if m == MoveNone || !h.pos.DoMove(m, position.MakeAll) {
				h.send(fmt.Sprintf("info string malformed move: %s", tokens[i]))
				log.Warningf("malformed move %q for position %s", tokens[i], h.pos.Fen())
				return
			}
		}
	}
}

// findMove matches uciMove against the currently pseudo-legal moves,
// returning MoveNone if none matches - this is the only move text a
// caller can give us, so there is no separate algebraic parser.
func (h *Handler) findMove(uciMove string) Move {
	for _, m := range movegen.GenerateAll(h.pos) {
		if m.String() == uciMove {
			return m
		}
	}
	return MoveNone
}

// goCommand runs a search to the requested (or default) depth and
// reports the best move in long algebraic form.
func (h *Handler) goCommand(tokens []string) {
	depth := config.Settings.Search.TargetDepth
	if depth < 1 {
		depth = DefaultDepth
	}
	for i := 1; i < len(tokens)-1; i++ {
		if tokens[i] == "depth" {
			d, err := strconv.Atoi(tokens[i+1])
			if err != nil {
				h.reportMalformed("go", tokens)
				return
			}
			depth = d
		}
	}

	result := h.search.Run(h.pos, search.Limits{TargetDepth: depth})
	h.send(fmt.Sprintf("info depth %d score %s nodes %d pv %s",
		result.Depth, result.Score.String(), result.Nodes, pvString(result.PV)))
	h.send("bestmove " + result.BestMove.String())
}

func pvString(pv []Move) string {
	parts := make([]string, len(pv))
	for i, m := range pv {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

func (h *Handler) reportMalformed(command string, tokens []string) {
	msg := fmt.Sprintf("malformed %s command: %s", command, strings.Join(tokens, " "))
	h.send("info string " + msg)
	log.Warning(msg)
}

func (h *Handler) send(s string) {
	h.uciLog.Infof(">> %s", s)
	_, _ = h.OutIo.WriteString(s + "\n")
	_ = h.OutIo.Flush()
}
