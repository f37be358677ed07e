/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
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

// This file holds the precomputed attack/mask tables that sit on top of the
// base bitboard machinery in bitboard.go: non-sliding (king/knight/pawn)
// attacks, the magic bitboard tables for sliding pieces, rays and the
// squares strictly between two squares, file/rank neighbourhood masks,
// passed pawn masks, castling masks and square colors.

// pseudoAttacks holds the attacks of non-pawn pieces on an empty board,
// indexed by piece type and origin square. King and Knight entries are
// computed here; Bishop, Rook and Queen entries are filled in by
// initMagicBitboards.
var pseudoAttacks [PtLength][SqLength]Bitboard

// pawnAttacks holds the capture squares of a pawn of the given color on the
// given square.
var pawnAttacks [ColorLength][SqLength]Bitboard

// GetPseudoAttacks returns the precomputed attacks of a non-pawn piece type
// from sq on an empty board.
func GetPseudoAttacks(pt PieceType, sq Square) Bitboard {
	return pseudoAttacks[pt][sq]
}

// GetPawnAttacks returns the capture squares of a color c pawn standing on sq.
func GetPawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// knightStep returns the square reached from sq by the given file/rank
// delta, or SqNone if that leaves the board.
func knightStep(sq Square, df int, dr int) Square {
	f := int(sq.FileOf()) + df
	r := int(sq.RankOf()) + dr
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return SqNone
	}
	return SquareOf(File(f), Rank(r))
}

var knightDeltas = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingDirections = [8]Direction{
	North, South, East, West, Northeast, Northwest, Southeast, Southwest,
}

// nonSlidingAttacksPreCompute fills pseudoAttacks[King], pseudoAttacks[Knight]
// and pawnAttacks for both colors.
func nonSlidingAttacksPreCompute() {
	for sq := SqA8; sq <= SqH1; sq++ {
		for _, d := range kingDirections {
			if to := sq.To(d); to.IsValid() {
				pseudoAttacks[King][sq] |= sqBb[to]
			}
		}
		for _, delta := range knightDeltas {
			if to := knightStep(sq, delta[0], delta[1]); to.IsValid() {
				pseudoAttacks[Knight][sq] |= sqBb[to]
			}
		}
		if to := sq.To(Northeast); to.IsValid() {
			pawnAttacks[White][sq] |= sqBb[to]
		}
		if to := sq.To(Northwest); to.IsValid() {
			pawnAttacks[White][sq] |= sqBb[to]
		}
		if to := sq.To(Southeast); to.IsValid() {
			pawnAttacks[Black][sq] |= sqBb[to]
		}
		if to := sq.To(Southwest); to.IsValid() {
			pawnAttacks[Black][sq] |= sqBb[to]
		}
	}
}

// ////////////////////////////////////////////////////////////////////////
// magic bitboards (sliding pieces)

var rookMagics [SqLength]Magic
var bishopMagics [SqLength]Magic
var rookTable []Bitboard
var bishopTable []Bitboard

// initMagicBitboards allocates the rook/bishop attack tables (sized as in
// Stockfish) and fills them in via initMagics (see magic.go).
func initMagicBitboards() {
	rookDirections := [4]Direction{North, East, South, West}
	bishopDirections := [4]Direction{Northeast, Southeast, Southwest, Northwest}

	rookTable = make([]Bitboard, 0x19000)
	bishopTable = make([]Bitboard, 0x1480)

	initMagics(&rookTable, &rookMagics, &rookDirections)
	initMagics(&bishopTable, &bishopMagics, &bishopDirections)

	for sq := SqA8; sq <= SqH1; sq++ {
		pseudoAttacks[Rook][sq] = AttacksBb(Rook, sq, BbZero)
		pseudoAttacks[Bishop][sq] = AttacksBb(Bishop, sq, BbZero)
		pseudoAttacks[Queen][sq] = pseudoAttacks[Rook][sq] | pseudoAttacks[Bishop][sq]
	}
}

// ////////////////////////////////////////////////////////////////////////
// file/rank neighbourhood masks

var filesWestMask [SqLength]Bitboard
var filesEastMask [SqLength]Bitboard
var fileWestMask [SqLength]Bitboard
var fileEastMask [SqLength]Bitboard
var ranksNorthMask [SqLength]Bitboard
var ranksSouthMask [SqLength]Bitboard
var neighbourFilesMask [SqLength]Bitboard

// FilesWestMask returns a Bb of all files west of sq's file.
func (sq Square) FilesWestMask() Bitboard { return filesWestMask[sq] }

// FilesEastMask returns a Bb of all files east of sq's file.
func (sq Square) FilesEastMask() Bitboard { return filesEastMask[sq] }

// FileWestMask returns a Bb of the single file west of sq's file (empty if
// sq is on file A).
func (sq Square) FileWestMask() Bitboard { return fileWestMask[sq] }

// FileEastMask returns a Bb of the single file east of sq's file (empty if
// sq is on file H).
func (sq Square) FileEastMask() Bitboard { return fileEastMask[sq] }

// RanksNorthMask returns a Bb of all ranks above (toward rank 8) sq's rank.
func (sq Square) RanksNorthMask() Bitboard { return ranksNorthMask[sq] }

// RanksSouthMask returns a Bb of all ranks below (toward rank 1) sq's rank.
func (sq Square) RanksSouthMask() Bitboard { return ranksSouthMask[sq] }

// NeighbourFilesMask returns a Bb of the file(s) directly adjacent to sq's
// file.
func (sq Square) NeighbourFilesMask() Bitboard { return neighbourFilesMask[sq] }

func neighbourMasksPreCompute() {
	for sq := SqA8; sq <= SqH1; sq++ {
		f := sq.FileOf()
		r := sq.RankOf()
		for i := FileA; i <= FileH; i++ {
			if i < f {
				filesWestMask[sq] |= i.Bb()
			}
			if i > f {
				filesEastMask[sq] |= i.Bb()
			}
		}
		for i := Rank1; i <= Rank8; i++ {
			if i > r {
				ranksNorthMask[sq] |= i.Bb()
			}
			if i < r {
				ranksSouthMask[sq] |= i.Bb()
			}
		}
		if f > FileA {
			fileWestMask[sq] = (f - 1).Bb()
		}
		if f < FileH {
			fileEastMask[sq] = (f + 1).Bb()
		}
		neighbourFilesMask[sq] = fileWestMask[sq] | fileEastMask[sq]
	}
}

// ////////////////////////////////////////////////////////////////////////
// rays and intermediate squares

var rays [8][SqLength]Bitboard
var intermediate [SqLength][SqLength]Bitboard

// Ray returns the ray of squares from sq in direction o (exclusive of sq),
// up to and including the board edge.
func (sq Square) Ray(o Orientation) Bitboard {
	return rays[o][sq]
}

// Intermediate returns the squares strictly between sq and to, or BbZero if
// the two squares are not aligned on a rank, file or diagonal.
func (sq Square) Intermediate(to Square) Bitboard {
	return intermediate[sq][to]
}

func raysPreCompute() {
	for sq := SqA8; sq <= SqH1; sq++ {
		rookAttacks := AttacksBb(Rook, sq, BbZero)
		bishopAttacks := AttacksBb(Bishop, sq, BbZero)
		rays[N][sq] = rookAttacks & ranksNorthMask[sq]
		rays[S][sq] = rookAttacks & ranksSouthMask[sq]
		rays[E][sq] = rookAttacks & filesEastMask[sq]
		rays[W][sq] = rookAttacks & filesWestMask[sq]
		rays[NE][sq] = bishopAttacks & filesEastMask[sq] & ranksNorthMask[sq]
		rays[NW][sq] = bishopAttacks & filesWestMask[sq] & ranksNorthMask[sq]
		rays[SE][sq] = bishopAttacks & filesEastMask[sq] & ranksSouthMask[sq]
		rays[SW][sq] = bishopAttacks & filesWestMask[sq] & ranksSouthMask[sq]
	}
}

func intermediatePreCompute() {
	for from := SqA8; from <= SqH1; from++ {
		for to := SqA8; to <= SqH1; to++ {
			toBb := sqBb[to]
			for o := 0; o < 8; o++ {
				if rays[Orientation(o)][from]&toBb != BbZero {
					intermediate[from][to] |= rays[Orientation(o)][from] &^ rays[Orientation(o)][to] &^ toBb
				}
			}
		}
	}
}

// ////////////////////////////////////////////////////////////////////////
// passed pawn masks

var passedPawnMask [ColorLength][SqLength]Bitboard

// PassedPawnMask returns the squares on sq's file and neighbour files ahead
// of sq (in c's direction of travel) that an opposing pawn could occupy to
// stop a c pawn on sq from passing.
func (sq Square) PassedPawnMask(c Color) Bitboard {
	return passedPawnMask[c][sq]
}

func maskPassedPawnsPreCompute() {
	for sq := SqA8; sq <= SqH1; sq++ {
		f := sq.FileOf()
		passedPawnMask[White][sq] |= rays[N][sq]
		if f < FileH {
			passedPawnMask[White][sq] |= rays[N][sq.To(East)]
		}
		if f > FileA {
			passedPawnMask[White][sq] |= rays[N][sq.To(West)]
		}
		passedPawnMask[Black][sq] |= rays[S][sq]
		if f < FileH {
			passedPawnMask[Black][sq] |= rays[S][sq.To(East)]
		}
		if f > FileA {
			passedPawnMask[Black][sq] |= rays[S][sq.To(West)]
		}
	}
}

// ////////////////////////////////////////////////////////////////////////
// center distance

var centerDistance [SqLength]int

// CenterDistance returns the Chebyshev distance from sq to the nearest of
// the four center squares (d4, e4, d5, e5).
func (sq Square) CenterDistance() int {
	return centerDistance[sq]
}

func centerDistancePreCompute() {
	for sq := SqA8; sq <= SqH1; sq++ {
		var target Square
		switch {
		case sq.RankOf() >= Rank5 && sq.FileOf() <= FileD:
			target = SqD5
		case sq.RankOf() >= Rank5:
			target = SqE5
		case sq.FileOf() <= FileD:
			target = SqD4
		default:
			target = SqE4
		}
		centerDistance[sq] = squareDistance[sq][target]
	}
}

// ////////////////////////////////////////////////////////////////////////
// castling masks

var kingSideCastleMask [ColorLength]Bitboard
var queenSideCastleMask [ColorLength]Bitboard
var castlingRightsMask [SqLength]CastlingRights

// KingSideCastleMask returns the squares (excluding the king's own square)
// that must be empty for c to castle king side.
func KingSideCastleMask(c Color) Bitboard {
	return kingSideCastleMask[c]
}

// QueenSideCastMask returns the squares (excluding the king's own square)
// that must be empty for c to castle queen side.
func QueenSideCastMask(c Color) Bitboard {
	return queenSideCastleMask[c]
}

// GetCastlingRights returns the castling rights that are revoked when a
// piece moves off of (or a capture lands on) sq - e.g. the king or a rook
// leaving its home square.
func GetCastlingRights(sq Square) CastlingRights {
	return castlingRightsMask[sq]
}

func castleMasksPreCompute() {
	kingSideCastleMask[White] = sqBb[SqF1] | sqBb[SqG1] | sqBb[SqH1]
	kingSideCastleMask[Black] = sqBb[SqF8] | sqBb[SqG8] | sqBb[SqH8]
	queenSideCastleMask[White] = sqBb[SqD1] | sqBb[SqC1] | sqBb[SqB1] | sqBb[SqA1]
	queenSideCastleMask[Black] = sqBb[SqD8] | sqBb[SqC8] | sqBb[SqB8] | sqBb[SqA8]

	castlingRightsMask[SqE1] = CastlingWhite
	castlingRightsMask[SqA1] = CastlingWhiteOOO
	castlingRightsMask[SqH1] = CastlingWhiteOO
	castlingRightsMask[SqE8] = CastlingBlack
	castlingRightsMask[SqA8] = CastlingBlackOOO
	castlingRightsMask[SqH8] = CastlingBlackOO
}

// ////////////////////////////////////////////////////////////////////////
// square colors

var squaresBb [ColorLength]Bitboard

// SquaresBb returns all squares of the given "color" (light/dark), e.g. to
// find same-colored-bishop draws.
func SquaresBb(c Color) Bitboard {
	return squaresBb[c]
}

func squareColorsPreCompute() {
	for sq := SqA8; sq <= SqH1; sq++ {
		if (int(sq.FileOf())+int(sq.RankOf()))%2 == 0 {
			squaresBb[Black] |= sqBb[sq]
		} else {
			squaresBb[White] |= sqBb[sq]
		}
	}
}

// initLeaperTables computes every precomputed table that depends on the
// base square/file/rank bitboards but not on the magic sliding-attack
// tables: non-sliding piece attacks, file/rank neighbourhood masks, castling
// masks and square colors. initMagicBitboards (which rays/intermediate/
// passed-pawn masks depend on) runs separately, see types.go's init().
func initLeaperTables() {
	nonSlidingAttacksPreCompute()
	neighbourMasksPreCompute()
	castleMasksPreCompute()
	squareColorsPreCompute()
}
