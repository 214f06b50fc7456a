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

package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chesskernel/chesskernel/internal/kernelerrors"
	. "github.com/chesskernel/chesskernel/internal/types"
)

var pieceFenLabels = map[rune]Piece{
	'P': WhitePawn, 'N': WhiteKnight, 'B': WhiteBishop, 'R': WhiteRook, 'Q': WhiteQueen, 'K': WhiteKing,
	'p': BlackPawn, 'n': BlackKnight, 'b': BlackBishop, 'r': BlackRook, 'q': BlackQueen, 'k': BlackKing,
}

// SetFen parses fen (six whitespace-separated fields: piece placement,
// side to move, castling rights, en-passant target, half-move clock,
// full-move number) and overwrites p with the result.
// On any malformed field, p is left unchanged and a MalformedPosition
// error is returned.
func (p *Position) SetFen(fen string) error {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return kernelerrors.MalformedPositionf("fen %q: need at least 4 fields, got %d", fen, len(fields))
	}

	var next Position
	if err := next.setBoard(fields[0]); err != nil {
		return err
	}
	if err := next.setSideToMove(fields[1]); err != nil {
		return err
	}
	if err := next.setCastling(fields[2]); err != nil {
		return err
	}
	if err := next.setEnPassant(fields[3]); err != nil {
		return err
	}
	next.halfMoveClock = 0
	next.fullMoveNumber = 1
	if len(fields) > 4 {
		hm, err := strconv.Atoi(fields[4])
		if err != nil || hm < 0 {
			return kernelerrors.MalformedPositionf("fen %q: bad half-move clock %q", fen, fields[4])
		}
		next.halfMoveClock = hm
	}
	if len(fields) > 5 {
		fm, err := strconv.Atoi(fields[5])
		if err != nil || fm < 1 {
			return kernelerrors.MalformedPositionf("fen %q: bad full-move number %q", fen, fields[5])
		}
		next.fullMoveNumber = fm
	}

	next.computeZobristKey()
	*p = next
	return nil
}

func (p *Position) setBoard(placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return kernelerrors.MalformedPositionf("piece placement %q: need 8 ranks, got %d", placement, len(ranks))
	}

	p.pieces = [PieceLength]Bitboard{}
	p.occupied = [ColorLength]Bitboard{}
	for sq := range p.board {
		p.board[sq] = PieceNone
	}

	for i, rankStr := range ranks {
		r := Rank(i)
		f := FileA
		for _, ch := range rankStr {
			switch {
			case ch >= '1' && ch <= '8':
				f += File(ch - '0')
			default:
				pc, ok := pieceFenLabels[ch]
				if !ok {
					return kernelerrors.MalformedPositionf("piece placement %q: bad character %q", placement, ch)
				}
				if f >= FileLength {
					return kernelerrors.MalformedPositionf("piece placement %q: rank %d overflows", placement, i+1)
				}
				p.putPiece(pc, NewSquare(f, r))
				f++
			}
		}
		if f != FileLength {
			return kernelerrors.MalformedPositionf("piece placement %q: rank %d has wrong length", placement, i+1)
		}
	}
	return nil
}

func (p *Position) setSideToMove(field string) error {
	switch field {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
	default:
		return kernelerrors.MalformedPositionf("side to move %q: must be \"w\" or \"b\"", field)
	}
	return nil
}

func (p *Position) setCastling(field string) error {
	p.castling = CastlingNone
	if field == "-" {
		return nil
	}
	for _, ch := range field {
		switch ch {
		case 'K':
			p.castling |= CastlingWhiteKingSide
		case 'Q':
			p.castling |= CastlingWhiteQueenSide
		case 'k':
			p.castling |= CastlingBlackKingSide
		case 'q':
			p.castling |= CastlingBlackQueenSide
		default:
			return kernelerrors.MalformedPositionf("castling field %q: bad character %q", field, ch)
		}
	}
	return nil
}

func (p *Position) setEnPassant(field string) error {
	if field == "-" {
		p.epSquare = SqNone
		return nil
	}
	if len(field) != 2 {
		return kernelerrors.MalformedPositionf("en-passant field %q: must be a square or \"-\"", field)
	}
	f := field[0]
	r := field[1]
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return kernelerrors.MalformedPositionf("en-passant field %q: not a valid square", field)
	}
	p.epSquare = NewSquare(File(f-'a'), Rank('8'-r))
	return nil
}

func (p *Position) computeZobristKey() {
	var key uint64
	for sq := SqA8; sq < SqLength; sq++ {
		if pc := p.board[sq]; pc != PieceNone {
			key ^= zobristPiece[pc][sq]
		}
	}
	if p.sideToMove == Black {
		key ^= zobristSideToMove
	}
	key ^= zobristCastling[p.castling]
	if p.epSquare != SqNone {
		key ^= zobristEnPassant[p.epSquare.FileOf()]
	}
	p.ZobristKey = key
}

// Fen renders p back into Forsyth-Edwards notation.
func (p *Position) Fen() string {
	var sb strings.Builder
	for r := Rank8; r < RankLength; r++ {
		empty := 0
		for f := FileA; f < FileLength; f++ {
			pc := p.board[NewSquare(f, r)]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r != Rank1 {
			sb.WriteString("/")
		}
	}

	sb.WriteString(" ")
	sb.WriteString(p.sideToMove.String())

	sb.WriteString(" ")
	sb.WriteString(p.castling.String())

	sb.WriteString(" ")
	if p.epSquare == SqNone {
		sb.WriteString("-")
	} else {
		sb.WriteString(p.epSquare.String())
	}

	fmt.Fprintf(&sb, " %d %d", p.halfMoveClock, p.fullMoveNumber)
	return sb.String()
}
