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

package types

// Piece is a colored piece: color in bit 3, piece type in bits 0-2.
type Piece int8

//noinspection GoVarAndConstTypeMayBeOmitted
const (
	PieceNone   Piece = 0
	WhiteKing   Piece = 1
	WhitePawn   Piece = 2
	WhiteKnight Piece = 3
	WhiteBishop Piece = 4
	WhiteRook   Piece = 5
	WhiteQueen  Piece = 6
	BlackKing   Piece = 9
	BlackPawn   Piece = 10
	BlackKnight Piece = 11
	BlackBishop Piece = 12
	BlackRook   Piece = 13
	BlackQueen  Piece = 14
	PieceLength Piece = 16
)

var pieceToString = string("-KPNBRQ--kpnbrq-")

// String returns a single-character representation of the piece (FEN
// letters: upper case White, lower case Black).
func (p Piece) String() string {
	return string(pieceToString[p])
}

// MakePiece creates the piece of the given color and piece type.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece((int(c) << 3) + int(pt))
}

// ColorOf returns the color of the piece.
func (p Piece) ColorOf() Color {
	return Color(p >> 3)
}

// TypeOf returns the piece type of the piece.
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 7)
}

// ValueOf returns the material value of the piece's type.
func (p Piece) ValueOf() int {
	return pieceTypeValue[p.TypeOf()]
}

// array of material values indexed by piece type, centipawn scale
var pieceTypeValue = [PtLength]int{0, 2000, 100, 320, 330, 500, 900}

// ValueOf returns the material value of the piece type.
func (pt PieceType) ValueOf() int {
	return pieceTypeValue[pt]
}
