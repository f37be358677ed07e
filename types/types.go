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

// Package types contains the board-independent value types shared by the rest
// of the engine: squares, pieces, colors, bitboards, the precomputed
// direction/magic tables and the packed move representation.
//
// Square 0 is A8 (the most significant bit of a Bitboard) and square 63 is H1
// (the least significant bit). Direction deltas (North=-8, East=+1, South=+8,
// West=-1) are defined relative to that convention; see bitboard.go.
package types

import (
	"github.com/bkendall/corvid/logging"
)

var log = logging.GetLog()

var initialized = false

// init computes all precomputed tables exactly once, leaves-first: bitboard
// helper tables, then direction/leaper tables, then magic tables.
func init() {
	if initialized {
		return
	}
	setupTables()
}

func setupTables() {
	log.Debug("Initializing precomputed tables")
	initBb()
	initLeaperTables()
	initMagicBitboards()
	raysPreCompute()
	intermediatePreCompute()
	maskPassedPawnsPreCompute()
	centerDistancePreCompute()
	initPosValues()
	initialized = true
}

// RegenerateTables forces all precomputed tables, including the magic
// bitboard attack tables, to be rebuilt from scratch. Normally this work
// happens exactly once via init(); this is the escape hatch the UCI
// "generate" driver command uses to regenerate the magics at runtime.
func RegenerateTables() {
	initialized = false
	setupTables()
}

const (
	// SqLength number of squares on a board
	SqLength int = 64

	// MaxDepth max search depth
	MaxDepth = 128

	// MaxMoves max number of moves for a game
	MaxMoves = 512

	// KB = 1.024 bytes
	KB uint64 = 1024

	// MB = KB * KB
	MB uint64 = KB * KB

	// GB = KB * MB
	GB uint64 = KB * MB

	// GamePhaseMax maximum game phase value. Game phase is used to
	// determine if we are in the beginning or end phase of a chess game
	// Game phase is calculated be the number of officers on the board
	// with this maximum
	GamePhaseMax = 24
)
