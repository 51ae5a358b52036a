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

import "strings"

// MoveType tags the semantics of a move beyond its from/to squares. This is
// the logical 7-value categorization; the physical encoding below packs it
// together with the promotion piece into a 4-bit flags nibble so a whole
// move still fits in 16 bits.
type MoveType uint8

//noinspection GoUnusedConst
const (
	Quiet MoveType = iota
	DoublePush
	Capture
	EnPassant
	Castle
	Promotion
	PromotionCapture
)

// Move is a compact move encoding: from (6 bits), to (6 bits), a 4-bit
// flags nibble. The flags nibble folds the move type and, for promotions,
// the promotion piece together so the whole move fits in 16 bits.
//
//  bits  0- 5: from square
//  bits  6-11: to square
//  bits 12-15: flags (see moveFlag* constants)
type Move uint16

const (
	moveFromShift = 0
	moveToShift   = 6
	moveFlagShift = 12

	moveFromMask = 0x3F
	moveToMask   = 0x3F
	moveFlagMask = 0xF
)

// moveFlag is the packed 4-bit tag distinguishing the 13 move shapes the
// engine needs (quiet/double-push/capture/en-passant/castle plus the four
// promotion piece types, themselves split into non-capturing and capturing).
type moveFlag uint8

const (
	flagQuiet moveFlag = iota
	flagDoublePush
	flagCapture
	flagEnPassant
	flagCastle
	flagPromoKnight
	flagPromoBishop
	flagPromoRook
	flagPromoQueen
	flagPromoCaptureKnight
	flagPromoCaptureBishop
	flagPromoCaptureRook
	flagPromoCaptureQueen
)

// MoveNone is the sentinel "no move" / PV terminator (from == to == A1).
const MoveNone Move = 0

// promoFlags and promoCaptureFlags index by PieceType (Knight..Queen) to
// find the flag encoding a promotion to that piece.
var promoFlags = map[PieceType]moveFlag{
	Knight: flagPromoKnight,
	Bishop: flagPromoBishop,
	Rook:   flagPromoRook,
	Queen:  flagPromoQueen,
}

var promoCaptureFlags = map[PieceType]moveFlag{
	Knight: flagPromoCaptureKnight,
	Bishop: flagPromoCaptureBishop,
	Rook:   flagPromoCaptureRook,
	Queen:  flagPromoCaptureQueen,
}

var flagToPromoType = map[moveFlag]PieceType{
	flagPromoKnight:        Knight,
	flagPromoBishop:        Bishop,
	flagPromoRook:          Rook,
	flagPromoQueen:         Queen,
	flagPromoCaptureKnight: Knight,
	flagPromoCaptureBishop: Bishop,
	flagPromoCaptureRook:   Rook,
	flagPromoCaptureQueen:  Queen,
}

func flagOf(promo PieceType, mt MoveType) moveFlag {
	switch mt {
	case Quiet:
		return flagQuiet
	case DoublePush:
		return flagDoublePush
	case Capture:
		return flagCapture
	case EnPassant:
		return flagEnPassant
	case Castle:
		return flagCastle
	case Promotion:
		return promoFlags[promo]
	case PromotionCapture:
		return promoCaptureFlags[promo]
	default:
		return flagQuiet
	}
}

// NewMove encodes a move from its components.
func NewMove(from, to Square, promo PieceType, mt MoveType) Move {
	return Move(from)<<moveFromShift |
		Move(to)<<moveToShift |
		Move(flagOf(promo, mt))<<moveFlagShift
}

// From returns the origin square.
func (m Move) From() Square {
	return Square((m >> moveFromShift) & moveFromMask)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> moveToShift) & moveToMask)
}

func (m Move) flag() moveFlag {
	return moveFlag((m >> moveFlagShift) & moveFlagMask)
}

// PromotionType returns the promotion piece type, valid only when Type is
// Promotion or PromotionCapture.
func (m Move) PromotionType() PieceType {
	if pt, ok := flagToPromoType[m.flag()]; ok {
		return pt
	}
	return PtNone
}

// Type returns the move's logical MoveType tag.
func (m Move) Type() MoveType {
	switch m.flag() {
	case flagQuiet:
		return Quiet
	case flagDoublePush:
		return DoublePush
	case flagCapture:
		return Capture
	case flagEnPassant:
		return EnPassant
	case flagCastle:
		return Castle
	case flagPromoKnight, flagPromoBishop, flagPromoRook, flagPromoQueen:
		return Promotion
	default:
		return PromotionCapture
	}
}

// IsCapture reports whether the move captures a piece (including en passant).
func (m Move) IsCapture() bool {
	t := m.Type()
	return t == Capture || t == EnPassant || t == PromotionCapture
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	t := m.Type()
	return t == Promotion || t == PromotionCapture
}

// IsValid reports whether m is a non-sentinel move (from != to).
func (m Move) IsValid() bool {
	return m.From() != m.To()
}

// String renders the move in <from><to>[promotion] form, e.g. "e2e4",
// "e7e8q".
func (m Move) String() string {
	if !m.IsValid() {
		return "-"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += strings.ToLower(m.PromotionType().Char())
	}
	return s
}
