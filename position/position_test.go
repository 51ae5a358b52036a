/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/forkedge/types"
)

func TestPositionCreation(t *testing.T) {
	p := New()
	assert.Equal(t, SqA1.ToSquare()|SqH1.ToSquare()|SqA8.ToSquare()|SqH8.ToSquare(), p.Pieces(White, Rook)|p.Pieces(Black, Rook))
	assert.Equal(t, SqB1.ToSquare()|SqG1.ToSquare()|SqB8.ToSquare()|SqG8.ToSquare(), p.Pieces(White, Knight)|p.Pieces(Black, Knight))
	assert.Equal(t, SqC1.ToSquare()|SqF1.ToSquare()|SqC8.ToSquare()|SqF8.ToSquare(), p.Pieces(White, Bishop)|p.Pieces(Black, Bishop))
	assert.Equal(t, SqD1.ToSquare()|SqD8.ToSquare(), p.Pieces(White, Queen)|p.Pieces(Black, Queen))
	assert.Equal(t, SqE1.ToSquare()|SqE8.ToSquare(), p.Pieces(White, King)|p.Pieces(Black, King))
	assert.Equal(t, Rank2Bb|Rank7Bb, p.Pieces(White, Pawn)|p.Pieces(Black, Pawn))
	assert.Equal(t, White, p.SideToMove())
	assert.Equal(t, CastlingAny, p.CastlingRights())
	assert.Equal(t, SqNone, p.EnPassantSquare())
	assert.Equal(t, 0, p.HalfMoveClock())
	assert.Equal(t, 1, p.FullMoveNumber())
	assert.Equal(t, StartFen, p.ToFEN())

	fen := "r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/6R1/pbp2PPP/1R4K1 b kq e3 0 14"
	p2, err := FromFEN(fen)
	assert.NoError(t, err)
	assert.Equal(t, Black, p2.SideToMove())
	assert.Equal(t, CastlingBlack, p2.CastlingRights())
	assert.Equal(t, SqE3, p2.EnPassantSquare())
	assert.Equal(t, 0, p2.HalfMoveClock())
	assert.Equal(t, 14, p2.FullMoveNumber())
	assert.Equal(t, fen, p2.ToFEN())
}

func TestFromFenInvalid(t *testing.T) {
	cases := []string{
		"8/8/8/8/8/8/8/8 w - - 0 1",                                // no kings
		"kkkkkkkk/8/8/8/8/8/8/KKKKKKKK w - - 0 1",                  // two kings per side
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1", // bad side to move
	}
	for _, fen := range cases {
		_, err := FromFEN(fen)
		assert.Error(t, err)
	}
}

func TestFromFenSideNotToMoveInCheck(t *testing.T) {
	// White king on e1 attacked by a black rook on a1 along an open first
	// rank, and it is White to move: the side NOT to move (Black) is not in
	// check here, so this must parse; flipping side to move must fail.
	ok := "4k3/8/8/8/8/8/8/r3K3 w - - 0 1"
	_, err := FromFEN(ok)
	assert.NoError(t, err)

	bad := "4k3/8/8/8/8/8/8/r3K3 b - - 0 1"
	_, err = FromFEN(bad)
	assert.Error(t, err)
}

func TestMakeUnmakeMoveRoundTrip(t *testing.T) {
	cases := []struct {
		fen  string
		move Move
	}{
		{StartFen, NewMove(SqB1, SqC3, PtNone, Quiet)},
		{StartFen, NewMove(SqE2, SqE4, PtNone, DoublePush)},
		{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", NewMove(SqD5, SqE6, PtNone, Capture)},
		{"r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/6R1/pbp2PPP/1R4K1 b kq e3 0 14", NewMove(SqG6, SqH4, PtNone, Quiet)},
	}
	for _, c := range cases {
		p, err := FromFEN(c.fen)
		assert.NoError(t, err)
		before := *p
		undo := p.MakeMove(c.move)
		p.UnmakeMove(c.move, undo)
		assert.Equal(t, before, *p, "position must round trip bit exactly for %s on %s", c.move, c.fen)
	}
}

func TestMakeMoveEnPassant(t *testing.T) {
	p, err := FromFEN("rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3")
	assert.NoError(t, err)
	before := *p
	m := NewMove(SqE5, SqF6, PtNone, EnPassant)
	undo := p.MakeMove(m)
	assert.Equal(t, PieceNone, p.PieceAt(SqF5))
	assert.Equal(t, WhitePawn, p.PieceAt(SqF6))
	p.UnmakeMove(m, undo)
	assert.Equal(t, before, *p)
}

func TestMakeMoveCastling(t *testing.T) {
	p, err := FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	before := *p
	m := NewMove(SqE1, SqG1, PtNone, Castle)
	undo := p.MakeMove(m)
	assert.Equal(t, WhiteKing, p.PieceAt(SqG1))
	assert.Equal(t, WhiteRook, p.PieceAt(SqF1))
	assert.Equal(t, PieceNone, p.PieceAt(SqE1))
	assert.Equal(t, PieceNone, p.PieceAt(SqH1))
	assert.False(t, p.CastlingRights().Has(CastlingWhiteOO))
	p.UnmakeMove(m, undo)
	assert.Equal(t, before, *p)
}

func TestInCheck(t *testing.T) {
	p, err := FromFEN("4k3/8/8/8/8/8/8/r3K3 w - - 0 1")
	assert.NoError(t, err)
	assert.True(t, p.InCheck(White))
	assert.False(t, p.InCheck(Black))
}
