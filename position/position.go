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

// Package position holds the mutable board representation: per-(color,
// piece) bitboards, side to move, castling rights, en-passant target,
// move counters, and a Zobrist hash kept consistent across MakeMove and
// UnmakeMove. A Position is a plain value type (no pointers or slices
// inside), so a parallel search task can clone one for its own exclusive
// use with a simple assignment.
package position

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	. "github.com/frankkopp/forkedge/types"
)

// ErrInvalidFen is returned by FromFEN when the string is malformed, the
// piece counts are impossible, or the side not to move is in check.
var ErrInvalidFen = errors.New("invalid fen")

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position is the mutable chess board state described by §3 of the core
// specification.
type Position struct {
	pieces           [2][PtLength]Bitboard
	board            [SqLength]Piece
	occupancyByColor [2]Bitboard
	occupancyAll     Bitboard
	kingSquare       [2]Square

	sideToMove     Color
	castlingRights CastlingRights
	epSquare       Square
	halfMoveClock  int
	fullMoveNumber int

	zobristKey Key
}

// Undo captures everything MakeMove needs to undo to restore a Position
// bit-exactly: the captured piece (if any, at its own square since en
// passant captures off the to-square), and the prior castling rights,
// en-passant target, halfmove clock, and Zobrist key.
type Undo struct {
	capturedPiece  Piece
	capturedSquare Square
	castlingRights CastlingRights
	epSquare       Square
	halfMoveClock  int
	zobristKey     Key
}

// New returns the standard starting position.
func New() *Position {
	p, err := FromFEN(StartFen)
	if err != nil {
		panic(fmt.Sprintf("start fen failed to parse: %s", err))
	}
	return p
}

// FromFEN parses the six space-separated FEN fields into a Position.
func FromFEN(fen string) (*Position, error) {
	fen = strings.TrimSpace(fen)
	fields := strings.Split(fen, " ")
	if len(fields) == 0 || fields[0] == "" {
		return nil, fmt.Errorf("%w: empty fen", ErrInvalidFen)
	}

	if match, _ := regexp.MatchString(`^[0-8pPnNbBrRqQkK/]+$`, fields[0]); !match {
		return nil, fmt.Errorf("%w: invalid piece placement characters", ErrInvalidFen)
	}

	p := &Position{epSquare: SqNone, fullMoveNumber: 1}

	rank := Rank8
	file := FileA
	for _, c := range fields[0] {
		switch {
		case c >= '1' && c <= '8':
			file += File(c - '0')
		case c == '/':
			if file != 8 {
				return nil, fmt.Errorf("%w: rank does not sum to 8 files", ErrInvalidFen)
			}
			rank--
			file = FileA
		default:
			if file > FileH {
				return nil, fmt.Errorf("%w: rank overflows 8 files", ErrInvalidFen)
			}
			pc := pieceFromChar(c)
			if pc == PieceNone {
				return nil, fmt.Errorf("%w: invalid piece character %q", ErrInvalidFen, string(c))
			}
			p.putPiece(pc, SquareOf(file, rank))
			file++
		}
	}
	if rank != Rank1 || file != 8 {
		return nil, fmt.Errorf("%w: piece placement does not cover all 64 squares", ErrInvalidFen)
	}
	if PopCount(p.occupancyByColor[White]|p.occupancyByColor[Black]) == 0 {
		return nil, fmt.Errorf("%w: empty board", ErrInvalidFen)
	}
	if PopCount(p.pieces[White][King]) != 1 || PopCount(p.pieces[Black][King]) != 1 {
		return nil, fmt.Errorf("%w: must have exactly one king per side", ErrInvalidFen)
	}

	p.sideToMove = White
	if len(fields) >= 2 {
		switch fields[1] {
		case "w":
			p.sideToMove = White
		case "b":
			p.sideToMove = Black
			p.zobristKey ^= zobristBase.sideToMove
		default:
			return nil, fmt.Errorf("%w: invalid side to move %q", ErrInvalidFen, fields[1])
		}
	}

	if len(fields) >= 3 {
		if match, _ := regexp.MatchString(`^(K?Q?k?q?|-)$`, fields[2]); !match {
			return nil, fmt.Errorf("%w: invalid castling rights %q", ErrInvalidFen, fields[2])
		}
		if fields[2] != "-" {
			for _, c := range fields[2] {
				switch c {
				case 'K':
					p.castlingRights.Add(CastlingWhiteOO)
				case 'Q':
					p.castlingRights.Add(CastlingWhiteOOO)
				case 'k':
					p.castlingRights.Add(CastlingBlackOO)
				case 'q':
					p.castlingRights.Add(CastlingBlackOOO)
				}
			}
		}
		p.zobristKey ^= zobristBase.castling[p.castlingRights]
	}

	if len(fields) >= 4 {
		if match, _ := regexp.MatchString(`^([a-h][1-8]|-)$`, fields[3]); !match {
			return nil, fmt.Errorf("%w: invalid en passant square %q", ErrInvalidFen, fields[3])
		}
		if fields[3] != "-" {
			p.epSquare = MakeSquare(fields[3])
			p.zobristKey ^= zobristBase.enPassantFile[p.epSquare.FileOf()]
		}
	}

	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: invalid halfmove clock %q", ErrInvalidFen, fields[4])
		}
		p.halfMoveClock = n
	}

	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%w: invalid fullmove number %q", ErrInvalidFen, fields[5])
		}
		p.fullMoveNumber = n
	}

	if p.InCheck(p.sideToMove.Flip()) {
		return nil, fmt.Errorf("%w: side not to move is in check", ErrInvalidFen)
	}

	return p, nil
}

// ToFEN serializes the current state back to the six FEN fields.
func (p *Position) ToFEN() string {
	var b strings.Builder
	for r := Rank8; ; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.board[SquareOf(f, r)]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteString(pc.String())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if r == Rank1 {
			break
		}
		b.WriteString("/")
	}
	b.WriteString(" ")
	b.WriteString(p.sideToMove.String())
	b.WriteString(" ")
	b.WriteString(p.castlingRights.String())
	b.WriteString(" ")
	b.WriteString(p.epSquare.String())
	b.WriteString(" ")
	b.WriteString(strconv.Itoa(p.halfMoveClock))
	b.WriteString(" ")
	b.WriteString(strconv.Itoa(p.fullMoveNumber))
	return b.String()
}

// SideToMove returns the color to move.
func (p *Position) SideToMove() Color { return p.sideToMove }

// Occupancy returns every square occupied by a piece of the given color.
func (p *Position) Occupancy(c Color) Bitboard { return p.occupancyByColor[c] }

// OccupancyAll returns every occupied square on the board.
func (p *Position) OccupancyAll() Bitboard { return p.occupancyAll }

// PieceAt returns the piece on sq, or PieceNone if empty.
func (p *Position) PieceAt(sq Square) Piece { return p.board[sq] }

// Pieces returns the bitboard of pieces of the given color and type.
func (p *Position) Pieces(c Color, pt PieceType) Bitboard { return p.pieces[c][pt] }

// CastlingRights returns the current castling rights mask.
func (p *Position) CastlingRights() CastlingRights { return p.castlingRights }

// EnPassantSquare returns the current en-passant target, or SqNone.
func (p *Position) EnPassantSquare() Square { return p.epSquare }

// HalfMoveClock returns the current 50-move-rule counter.
func (p *Position) HalfMoveClock() int { return p.halfMoveClock }

// FullMoveNumber returns the current full move number.
func (p *Position) FullMoveNumber() int { return p.fullMoveNumber }

// ZobristKey returns the position's current Zobrist hash.
func (p *Position) ZobristKey() Key { return p.zobristKey }

// KingSquare returns the square of c's king.
func (p *Position) KingSquare(c Color) Square { return p.kingSquare[c] }

// InCheck reports whether c's king is currently attacked.
func (p *Position) InCheck(c Color) bool {
	return p.IsSquareAttacked(p.kingSquare[c], c.Flip())
}

// IsSquareAttacked reports whether any piece of color by attacks sq.
func (p *Position) IsSquareAttacked(sq Square, by Color) bool {
	return p.IsSquareAttackedWithOccupancy(sq, by, p.occupancyAll)
}

// IsSquareAttackedWithOccupancy is IsSquareAttacked against a caller-supplied
// occupancy instead of the position's own, so a king move's destination can
// be tested with the king itself removed from the board (it cannot block an
// attack on a square behind where it was standing).
func (p *Position) IsSquareAttackedWithOccupancy(sq Square, by Color, occ Bitboard) bool {
	if PawnAttacks[by.Flip()][sq]&p.pieces[by][Pawn] != 0 {
		return true
	}
	if KnightAttacks[sq]&p.pieces[by][Knight] != 0 {
		return true
	}
	if KingAttacks[sq]&p.pieces[by][King] != 0 {
		return true
	}
	diagonal := p.pieces[by][Bishop] | p.pieces[by][Queen]
	if diagonal != 0 && BishopAttacks(sq, occ)&diagonal != 0 {
		return true
	}
	orthogonal := p.pieces[by][Rook] | p.pieces[by][Queen]
	if orthogonal != 0 && RookAttacks(sq, occ)&orthogonal != 0 {
		return true
	}
	return false
}

// String renders the FEN followed by an 8x8 ASCII board.
func (p *Position) String() string {
	var b strings.Builder
	b.WriteString(p.ToFEN())
	b.WriteString("\n")
	b.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			b.WriteString("| ")
			b.WriteString(p.board[SquareOf(f, r)].String())
			b.WriteString(" ")
		}
		b.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
		if r == Rank1 {
			break
		}
	}
	return b.String()
}

func pieceFromChar(c rune) Piece {
	switch c {
	case 'K':
		return WhiteKing
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'k':
		return BlackKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	default:
		return PieceNone
	}
}

func (p *Position) movePiece(from, to Square) {
	p.putPiece(p.removePiece(from), to)
}

func (p *Position) putPiece(piece Piece, sq Square) {
	color := piece.ColorOf()
	pt := piece.TypeOf()
	p.board[sq] = piece
	if pt == King {
		p.kingSquare[color] = sq
	}
	p.pieces[color][pt] = Set(p.pieces[color][pt], sq)
	p.occupancyByColor[color] = Set(p.occupancyByColor[color], sq)
	p.occupancyAll = Set(p.occupancyAll, sq)
	p.zobristKey ^= zobristBase.pieces[piece][sq]
}

func (p *Position) removePiece(sq Square) Piece {
	piece := p.board[sq]
	color := piece.ColorOf()
	pt := piece.TypeOf()
	p.board[sq] = PieceNone
	p.pieces[color][pt] = Clear(p.pieces[color][pt], sq)
	p.occupancyByColor[color] = Clear(p.occupancyByColor[color], sq)
	p.occupancyAll = Clear(p.occupancyAll, sq)
	p.zobristKey ^= zobristBase.pieces[piece][sq]
	return piece
}

// invalidateCastlingRights clears whatever rights a king or rook move off
// (or capture on) a home square removes, keyed by from/to like the
// retrieved engine's own invalidateCastlingRights.
func (p *Position) invalidateCastlingRights(from, to Square) {
	if p.castlingRights == CastlingNone {
		return
	}
	clear := func(sq Square, cr CastlingRights) {
		if (from == sq || to == sq) && p.castlingRights&cr != 0 {
			p.zobristKey ^= zobristBase.castling[p.castlingRights]
			p.castlingRights.Remove(cr)
			p.zobristKey ^= zobristBase.castling[p.castlingRights]
		}
	}
	if p.castlingRights&CastlingWhite != 0 {
		if from == SqE1 || to == SqE1 {
			clear(SqE1, CastlingWhite)
		}
		clear(SqH1, CastlingWhiteOO)
		clear(SqA1, CastlingWhiteOOO)
	}
	if p.castlingRights&CastlingBlack != 0 {
		if from == SqE8 || to == SqE8 {
			clear(SqE8, CastlingBlack)
		}
		clear(SqH8, CastlingBlackOO)
		clear(SqA8, CastlingBlackOOO)
	}
}

func (p *Position) clearEnPassant() {
	if p.epSquare != SqNone {
		p.zobristKey ^= zobristBase.enPassantFile[p.epSquare.FileOf()]
		p.epSquare = SqNone
	}
}

// MakeMove applies m, assumed legal (callers must filter through the move
// generator), and returns an Undo to later restore the prior state.
func (p *Position) MakeMove(m Move) Undo {
	from := m.From()
	to := m.To()
	moving := p.board[from]
	color := moving.ColorOf()

	undo := Undo{
		capturedPiece:  PieceNone,
		castlingRights: p.castlingRights,
		epSquare:       p.epSquare,
		halfMoveClock:  p.halfMoveClock,
		zobristKey:     p.zobristKey,
	}

	p.clearEnPassant()

	switch m.Type() {
	case Quiet, DoublePush:
		p.movePiece(from, to)
		if moving.TypeOf() == Pawn {
			p.halfMoveClock = 0
			if m.Type() == DoublePush {
				p.epSquare = to.To(Direction(color.Flip().MoveDirection()) * North)
				p.zobristKey ^= zobristBase.enPassantFile[p.epSquare.FileOf()]
			}
		} else {
			p.halfMoveClock++
		}
	case Capture:
		undo.capturedPiece = p.board[to]
		undo.capturedSquare = to
		p.removePiece(to)
		p.movePiece(from, to)
		p.halfMoveClock = 0
	case EnPassant:
		capSq := SquareOf(to.FileOf(), from.RankOf())
		undo.capturedPiece = p.board[capSq]
		undo.capturedSquare = capSq
		p.removePiece(capSq)
		p.movePiece(from, to)
		p.halfMoveClock = 0
	case Castle:
		p.movePiece(from, to)
		switch to {
		case SqG1:
			p.movePiece(SqH1, SqF1)
		case SqC1:
			p.movePiece(SqA1, SqD1)
		case SqG8:
			p.movePiece(SqH8, SqF8)
		case SqC8:
			p.movePiece(SqA8, SqD8)
		}
		p.halfMoveClock++
	case Promotion:
		p.removePiece(from)
		p.putPiece(MakePiece(color, m.PromotionType()), to)
		p.halfMoveClock = 0
	case PromotionCapture:
		undo.capturedPiece = p.board[to]
		undo.capturedSquare = to
		p.removePiece(to)
		p.removePiece(from)
		p.putPiece(MakePiece(color, m.PromotionType()), to)
		p.halfMoveClock = 0
	}

	p.invalidateCastlingRights(from, to)

	if color == Black {
		p.fullMoveNumber++
	}
	p.sideToMove = p.sideToMove.Flip()
	p.zobristKey ^= zobristBase.sideToMove

	return undo
}

// UnmakeMove restores the state captured by undo, reversing m bit-exactly.
func (p *Position) UnmakeMove(m Move, undo Undo) {
	p.sideToMove = p.sideToMove.Flip()
	color := p.sideToMove
	if color == Black {
		p.fullMoveNumber--
	}

	from := m.From()
	to := m.To()

	switch m.Type() {
	case Quiet, DoublePush:
		p.movePiece(to, from)
	case Capture:
		p.movePiece(to, from)
		if undo.capturedPiece != PieceNone {
			p.putPiece(undo.capturedPiece, undo.capturedSquare)
		}
	case EnPassant:
		p.movePiece(to, from)
		p.putPiece(undo.capturedPiece, undo.capturedSquare)
	case Castle:
		p.movePiece(to, from)
		switch to {
		case SqG1:
			p.movePiece(SqF1, SqH1)
		case SqC1:
			p.movePiece(SqD1, SqA1)
		case SqG8:
			p.movePiece(SqF8, SqH8)
		case SqC8:
			p.movePiece(SqD8, SqA8)
		}
	case Promotion:
		p.removePiece(to)
		p.putPiece(MakePiece(color, Pawn), from)
		if undo.capturedPiece != PieceNone {
			p.putPiece(undo.capturedPiece, undo.capturedSquare)
		}
	case PromotionCapture:
		p.removePiece(to)
		p.putPiece(MakePiece(color, Pawn), from)
		p.putPiece(undo.capturedPiece, undo.capturedSquare)
	}

	p.castlingRights = undo.castlingRights
	p.epSquare = undo.epSquare
	p.halfMoveClock = undo.halfMoveClock
	p.zobristKey = undo.zobristKey
}
