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
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitboardPopCount(t *testing.T) {
	tests := []struct {
		value    Bitboard
		expected int
	}{
		{BbZero, 0},
		{BbAll, 64},
		{BbOne, 1},
		{Bitboard(128), 1},
		{Bitboard(7), 3},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, bits.OnesCount64(uint64(test.value)))
	}
}

func TestBitboardStr(t *testing.T) {
	tests := []struct {
		value    Bitboard
		expected string
	}{
		{BbZero, "0000000000000000000000000000000000000000000000000000000000000000"},
		{BbAll, "1111111111111111111111111111111111111111111111111111111111111111"},
		{BbOne, "0000000000000000000000000000000000000000000000000000000000000001"},
		{FileA_Bb, "1000000010000000100000001000000010000000100000001000000010000000"},
		{FileH_Bb, "0000000100000001000000010000000100000001000000010000000100000001"},
		{Rank1_Bb, "0000000000000000000000000000000000000000000000000000000011111111"},
		{Rank8_Bb, "1111111100000000000000000000000000000000000000000000000000000000"},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, test.value.Str())
	}
}

func TestBitboardPushPop(t *testing.T) {
	assert.Equal(t, SqA8.Bitboard(), PushSquare(BbZero, SqA8))
	assert.Equal(t, SqH1.Bitboard(), PushSquare(BbZero, SqH1))
	assert.Equal(t, BbZero, PopSquare(PushSquare(BbZero, SqE4), SqE4))
	assert.Equal(t, BbZero, PopSquare(BbZero, SqA8))
}

func TestBitboardLsbMsb(t *testing.T) {
	tests := []struct {
		bitboard Bitboard
		lsb      Square
		msb      Square
	}{
		{BbZero, SqNone, SqNone},
		{SqA8.Bitboard(), SqA8, SqA8},
		{SqH1.Bitboard(), SqH1, SqH1},
		{SqE5.Bitboard(), SqE5, SqE5},
		{FileB_Bb, SqB1, SqB8},
		{Rank3_Bb, SqH3, SqA3},
	}
	for _, test := range tests {
		assert.Equal(t, test.lsb, test.bitboard.Lsb())
		assert.Equal(t, test.msb, test.bitboard.Msb())
	}
}

func TestBitboardPopLsb(t *testing.T) {
	b := SqA8.Bitboard()
	assert.Equal(t, SqA8, b.PopLsb())
	assert.Equal(t, BbZero, b)

	b = Rank3_Bb
	count := 0
	for sq := b.PopLsb(); sq != SqNone; sq = b.PopLsb() {
		count++
	}
	assert.Equal(t, 8, count)
}

func TestBitboardShift(t *testing.T) {
	tests := []struct {
		pre   Bitboard
		shift Direction
		post  Bitboard
	}{
		{SqE4.Bitboard(), North, SqE5.Bitboard()},
		{SqE4.Bitboard(), South, SqE3.Bitboard()},
		{SqE4.Bitboard(), East, SqF4.Bitboard()},
		{SqE4.Bitboard(), West, SqD4.Bitboard()},
		{SqE4.Bitboard(), Northeast, SqF5.Bitboard()},
		{SqE4.Bitboard(), Northwest, SqD5.Bitboard()},
		{SqE4.Bitboard(), Southeast, SqF3.Bitboard()},
		{SqE4.Bitboard(), Southwest, SqD3.Bitboard()},

		// edge of board: off-board shifts vanish
		{SqA4.Bitboard(), West, BbZero},
		{SqH4.Bitboard(), East, BbZero},
		{SqA1.Bitboard(), South, BbZero},
		{SqA1.Bitboard(), Southwest, BbZero},
		{SqH8.Bitboard(), North, BbZero},
		{SqH8.Bitboard(), Northeast, BbZero},
		{SqA1.Bitboard(), North, SqA2.Bitboard()},
		{SqH8.Bitboard(), South, SqH7.Bitboard()},
	}
	for _, test := range tests {
		assert.Equal(t, test.post, test.pre.Shift(test.shift))
	}
}

func TestFileRankDistance(t *testing.T) {
	assert.Equal(t, 0, FileDistance(FileA, FileA))
	assert.Equal(t, 7, FileDistance(FileA, FileH))
	assert.Equal(t, 3, FileDistance(FileC, FileF))
	assert.Equal(t, 7, RankDistance(Rank1, Rank8))
}

func TestSquareDistance(t *testing.T) {
	tests := []struct {
		s1, s2 Square
		dist   int
	}{
		{SqA1, SqA1, 0},
		{SqA1, SqA2, 1},
		{SqA1, SqB1, 1},
		{SqA1, SqB2, 1},
		{SqA1, SqH8, 7},
		{SqA8, SqH1, 7},
		{SqD4, SqA1, 3},
		{SqE5, SqD4, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.dist, SquareDistance(tt.s1, tt.s2))
	}
}

func TestPseudoAttacks(t *testing.T) {
	tests := []struct {
		name  string
		piece PieceType
		from  Square
		want  Bitboard
	}{
		{"King E1", King, SqE1, sqBb[SqD1] | sqBb[SqD2] | sqBb[SqE2] | sqBb[SqF2] | sqBb[SqF1]},
		{"King E8", King, SqE8, sqBb[SqD8] | sqBb[SqD7] | sqBb[SqE7] | sqBb[SqF7] | sqBb[SqF8]},
		{"Knight E5", Knight, SqE5, sqBb[SqD7] | sqBb[SqF7] | sqBb[SqG6] | sqBb[SqG4] | sqBb[SqF3] | sqBb[SqD3] | sqBb[SqC4] | sqBb[SqC6]},
		{"Rook E5 empty board", Rook, SqE5, PopSquare(Rank5_Bb|FileE_Bb, SqE5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Bitboard
			if tt.piece == Rook {
				got = AttacksBb(Rook, tt.from, BbZero)
			} else {
				got = GetPseudoAttacks(tt.piece, tt.from)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPawnAttacks(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		from  Square
		want  Bitboard
	}{
		{"White E2", White, SqE2, sqBb[SqD3] | sqBb[SqF3]},
		{"Black E7", Black, SqE7, sqBb[SqD6] | sqBb[SqF6]},
		{"White A4", White, SqA4, sqBb[SqB5]},
		{"Black H5", Black, SqH5, sqBb[SqG4]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetPawnAttacks(tt.color, tt.from))
		})
	}
}

func TestSquareMasks(t *testing.T) {
	assert.Equal(t, FileA_Bb|FileB_Bb|FileC_Bb|FileD_Bb, SqE4.FilesWestMask())
	assert.Equal(t, FileF_Bb|FileG_Bb|FileH_Bb, SqE4.FilesEastMask())
	assert.Equal(t, FileD_Bb, SqE4.FileWestMask())
	assert.Equal(t, FileF_Bb, SqE4.FileEastMask())
	assert.Equal(t, BbZero, SqA4.FilesWestMask())
	assert.Equal(t, BbZero, SqH4.FilesEastMask())
	assert.Equal(t, Rank5_Bb|Rank6_Bb|Rank7_Bb|Rank8_Bb, SqH4.RanksNorthMask())
	assert.Equal(t, Rank1_Bb|Rank2_Bb|Rank3_Bb, SqH4.RanksSouthMask())
	assert.Equal(t, FileD_Bb|FileF_Bb, SqE4.NeighbourFilesMask())
}

func TestSquareRay(t *testing.T) {
	assert.Equal(t, Rank1_Bb&^sqBb[SqA1], SqA1.Ray(E))
	assert.Equal(t, FileA_Bb&^sqBb[SqA1], SqA1.Ray(N))
}

func TestSquareIntermediate(t *testing.T) {
	assert.Equal(t, sqBb[SqB1], SqA1.Intermediate(SqC1))
	assert.Equal(t, sqBb[SqH3], SqH4.Intermediate(SqH2))
	assert.Equal(t, BbZero, SqB2.Intermediate(SqD5))
}

func TestCastlingMasks(t *testing.T) {
	assert.Equal(t, sqBb[SqF1]|sqBb[SqG1]|sqBb[SqH1], KingSideCastleMask(White))
	assert.Equal(t, sqBb[SqD8]|sqBb[SqC8]|sqBb[SqB8]|sqBb[SqA8], QueenSideCastMask(Black))
	assert.Equal(t, CastlingWhite, GetCastlingRights(SqE1))
	assert.Equal(t, CastlingBlackOO, GetCastlingRights(SqH8))
}
