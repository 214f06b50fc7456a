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

// Package kernelerrors defines the engine's sentinel error kinds. Only
// the kinds that are reported as Go errors live here - MalformedPosition
// and MalformedMove from parsing, and InitialisationFailure from
// attack-table setup. An illegal move is represented as a plain boolean
// return (position.Position.DoMove), not an error, since it is recovered
// locally by the caller rather than propagated.
package kernelerrors

import (
	"errors"
	"fmt"
)

// Sentinel error kinds, tested against with errors.Is.
var (
	ErrMalformedPosition     = errors.New("malformed position")
	ErrMalformedMove         = errors.New("malformed move")
	ErrInitialisationFailure = errors.New("initialisation failure")
)

// KernelError wraps a sentinel kind with a descriptive message, the way
// fmt.Errorf("...: %w", ...) does, but keeps the two separate so callers
// can both errors.Is() the kind and print the detail.
type KernelError struct {
	Kind Kind
	msg  string
}

// Kind identifies which of the sentinel error kinds a KernelError wraps.
type Kind int

// The recognised error kinds.
const (
	KindMalformedPosition Kind = iota
	KindMalformedMove
	KindInitialisationFailure
)

func (e *KernelError) Error() string { return e.msg }

func (e *KernelError) Unwrap() error {
	switch e.Kind {
	case KindMalformedPosition:
		return ErrMalformedPosition
	case KindMalformedMove:
		return ErrMalformedMove
	case KindInitialisationFailure:
		return ErrInitialisationFailure
	default:
		return nil
	}
}

// MalformedPositionf builds a MalformedPosition KernelError.
func MalformedPositionf(format string, args ...interface{}) error {
	return &KernelError{Kind: KindMalformedPosition, msg: "malformed position: " + fmt.Sprintf(format, args...)}
}

// MalformedMovef builds a MalformedMove KernelError.
func MalformedMovef(format string, args ...interface{}) error {
	return &KernelError{Kind: KindMalformedMove, msg: "malformed move: " + fmt.Sprintf(format, args...)}
}

// InitialisationFailuref builds an InitialisationFailure KernelError.
func InitialisationFailuref(format string, args ...interface{}) error {
	return &KernelError{Kind: KindInitialisationFailure, msg: "initialisation failure: " + fmt.Sprintf(format, args...)}
}
