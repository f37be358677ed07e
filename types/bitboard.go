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

import (
	"fmt"
	"log"
	"math/bits"
	"strings"

	"github.com/bkendall/corvid/assert"
	"github.com/bkendall/corvid/util"
)

// Bitboard holds one bit per square on the board.
//
// Square 0 (A8) is the most significant bit (bit 63) and square 63 (H1) is
// the least significant bit (bit 0): bit index = 63 - square. This is the
// mirror image of the classic LSB=A1 layout on both axes, so file A here
// occupies the bit positions a classic engine would call file H, and vice
// versa - see FileA_Bb/FileH_Bb below.
type Bitboard uint64

// Bitboard returns the precomputed single-bit Bitboard for sq. Call
// init (package init) before use; falls back to a runtime calculation with a
// warning if the tables were somehow not initialized yet.
func (sq Square) Bitboard() Bitboard {
	if assert.DEBUG && !initialized {
		log.Printf("Warning: Bitboards not initialized. Using runtime calculation.\n")
		return sq.bitboard_()
	}
	return sqBb[sq]
}

// Bb is a short alias for Bitboard.
func (sq Square) Bb() Bitboard {
	return sq.Bitboard()
}

// PushSquare sets the bit for s in b.
func PushSquare(b Bitboard, s Square) Bitboard {
	return b | s.Bitboard()
}

// PushSquare sets the bit for s in *b.
func (b *Bitboard) PushSquare(s Square) {
	*b |= s.Bitboard()
}

// PopSquare clears the bit for s in b.
func PopSquare(b Bitboard, s Square) Bitboard {
	return b &^ s.Bitboard()
}

// PopSquare clears the bit for s in *b.
func (b *Bitboard) PopSquare(s Square) {
	*b &^= s.Bitboard()
}

// Shift moves every set bit of b by one square in direction d, discarding
// bits that would fall off the edge of the board. d is a square-index delta
// (see Direction); the corresponding bit-index shift is its negation since
// bit index = 63 - square, which is why North (d<0) shifts left and South
// (d>0) shifts right.
func (b Bitboard) Shift(d Direction) Bitboard {
	switch d {
	case North:
		return (Rank8Mask & b) << 8
	case South:
		return (Rank1Mask & b) >> 8
	case East:
		return (FileHMask & b) >> 1
	case West:
		return (FileAMask & b) << 1
	case Northeast:
		return (FileHMask & Rank8Mask & b) << 7
	case Northwest:
		return (FileAMask & Rank8Mask & b) << 9
	case Southeast:
		return (FileHMask & Rank1Mask & b) >> 9
	case Southwest:
		return (FileAMask & Rank1Mask & b) >> 7
	}
	return b
}

// Lsb returns the least significant set bit as a Square (SqH1 side of the
// board). Returns SqNone if b is empty.
func (b Bitboard) Lsb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(63 - bits.TrailingZeros64(uint64(b)))
}

// Msb returns the most significant set bit as a Square (SqA8 side of the
// board). Returns SqNone if b is empty.
func (b Bitboard) Msb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(bits.LeadingZeros64(uint64(b)))
}

// PopLsb returns the Lsb square and clears it from *b.
func (b *Bitboard) PopLsb() Square {
	if *b == BbZero {
		return SqNone
	}
	lsb := b.Lsb()
	*b &= *b - 1
	return lsb
}

// PopCount returns the number of set bits in b.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Has reports whether b has the bit for s set.
func (b Bitboard) Has(s Square) bool {
	return b&s.Bitboard() != 0
}

// NextSubset enumerates the subsets of a mask bitboard one at a time using
// the "Carry-Rippler" trick: starting from BbZero, repeatedly feeding the
// previous result back in yields every subset of mask exactly once before
// returning to BbZero. Used by the magic bitboard table builder to walk
// every occupancy of a sliding piece's relevant-occupancy mask.
func (b Bitboard) NextSubset(mask Bitboard) Bitboard {
	return (b - mask) & mask
}

// Str returns the raw 64 character bit string (MSB first).
func (b Bitboard) Str() string {
	return fmt.Sprintf("%-0.64b", uint64(b))
}

// StrBoard renders b as an 8x8 board of 'X'/' '.
func (b Bitboard) StrBoard() string {
	var os strings.Builder
	os.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			if (b & SquareOf(f, r).Bitboard()) > 0 {
				os.WriteString("| X ")
			} else {
				os.WriteString("|   ")
			}
		}
		os.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
		if r == Rank1 {
			break
		}
	}
	return os.String()
}

// StrGrp returns the 64 bits grouped in bytes, MSB (SqA8) to LSB (SqH1).
func (b Bitboard) StrGrp() string {
	var os strings.Builder
	for i := 63; i >= 0; i-- {
		if (b & (BbOne << i)) != 0 {
			os.WriteString("1")
		} else {
			os.WriteString("0")
		}
		if i > 0 && i%8 == 0 {
			os.WriteString(".")
		}
	}
	os.WriteString(fmt.Sprintf(" (%d)", uint64(b)))
	return os.String()
}

// FileDistance returns the absolute distance in files between f1 and f2.
func FileDistance(f1 File, f2 File) int {
	return util.Abs(int(f2) - int(f1))
}

// RankDistance returns the absolute distance in ranks between r1 and r2.
func RankDistance(r1 Rank, r2 Rank) int {
	return util.Abs(int(r2) - int(r1))
}

// SquareDistance returns Chebyshev distance (max of file/rank distance)
// between two squares.
func SquareDistance(s1 Square, s2 Square) int {
	return squareDistance[s1][s2]
}

// various constant bitboards for convenience
//noinspection ALL
const (
	BbZero Bitboard = Bitboard(0)
	BbAll  Bitboard = ^BbZero
	BbOne  Bitboard = Bitboard(1)

	// FileH_Bb occupies bit 0 of every byte (file H is the LSB-side file
	// under the MSB=A8 convention); FileA_Bb is the mirror image.
	FileH_Bb Bitboard = 0x0101010101010101
	FileG_Bb Bitboard = FileH_Bb << 1
	FileF_Bb Bitboard = FileH_Bb << 2
	FileE_Bb Bitboard = FileH_Bb << 3
	FileD_Bb Bitboard = FileH_Bb << 4
	FileC_Bb Bitboard = FileH_Bb << 5
	FileB_Bb Bitboard = FileH_Bb << 6
	FileA_Bb Bitboard = FileH_Bb << 7

	Rank1_Bb Bitboard = 0xFF
	Rank2_Bb Bitboard = Rank1_Bb << (8 * 1)
	Rank3_Bb Bitboard = Rank1_Bb << (8 * 2)
	Rank4_Bb Bitboard = Rank1_Bb << (8 * 3)
	Rank5_Bb Bitboard = Rank1_Bb << (8 * 4)
	Rank6_Bb Bitboard = Rank1_Bb << (8 * 5)
	Rank7_Bb Bitboard = Rank1_Bb << (8 * 6)
	Rank8_Bb Bitboard = Rank1_Bb << (8 * 7)

	FileAMask Bitboard = ^FileA_Bb
	FileHMask Bitboard = ^FileH_Bb
	Rank1Mask Bitboard = ^Rank1_Bb
	Rank8Mask Bitboard = ^Rank8_Bb
)

// ////////////////////
// Pre compute helpers

// bitboard_ computes the single-bit Bitboard for sq without going through
// the precomputed table; used while building that table.
func (sq Square) bitboard_() Bitboard {
	return BbOne << (63 - uint(sq))
}

var sqBb [SqLength]Bitboard

// sqToFileBb maps a square to the Bitboard of its whole file.
var sqToFileBb [SqLength]Bitboard

// sqToRankBb maps a square to the Bitboard of its whole rank.
var sqToRankBb [SqLength]Bitboard

// fileBb/rankBb map a File/Rank directly to its Bitboard, independent of any
// particular square - used by the magic bitboard builder and the mask
// pre-computations below.
var fileBb [FileLength]Bitboard
var rankBb [RankLength]Bitboard

// Bb returns the Bitboard of all squares on file f.
func (f File) Bb() Bitboard {
	return fileBb[f]
}

// Bb returns the Bitboard of all squares on rank r.
func (r Rank) Bb() Bitboard {
	return rankBb[r]
}

// squareDistance holds the precomputed Chebyshev distance between any two
// squares.
var squareDistance [SqLength][SqLength]int

// initBb precomputes the square/file/rank bitboard tables and the square
// distance table. Sliding-piece attack tables are computed separately by
// initMagicBitboards (see magic.go).
func initBb() {
	for f := FileA; f <= FileH; f++ {
		fileBb[f] = FileH_Bb << uint(7-f)
	}
	for r := Rank1; r <= Rank8; r++ {
		rankBb[r] = Rank1_Bb << (8 * uint(r))
	}
	for sq := SqA8; sq < SqNone; sq++ {
		sqBb[sq] = sq.bitboard_()
		sqToFileBb[sq] = sq.FileOf().Bb()
		sqToRankBb[sq] = sq.RankOf().Bb()
	}
	for sq1 := SqA8; sq1 <= SqH1; sq1++ {
		for sq2 := SqA8; sq2 <= SqH1; sq2++ {
			if sq1 != sq2 {
				squareDistance[sq1][sq2] =
					util.Max(FileDistance(sq1.FileOf(), sq2.FileOf()), RankDistance(sq1.RankOf(), sq2.RankOf()))
			}
		}
	}
}
