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

// Package position represents data structures and functions for a chess board
// and its position.
// It uses an 8x8 piece board and bitboards, a stack for undo moves, zobrist
// keys for transposition tables, and incrementally maintained material and
// positional value counters.
//
// Create a new instance with NewPosition() to get the standard starting
// position or NewPositionFen(fen) for an arbitrary position.
package position

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/bkendall/corvid/assert"
	"github.com/bkendall/corvid/logging"
	. "github.com/bkendall/corvid/types"
)

var log = logging.GetLog()

var initialized = false

func init() {
	if !initialized {
		initZobrist()
		initialized = true
	}
}

const (
	// StartFen is a string with the fen position for a standard chess game
	StartFen string = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
)

// Key is used for zobrist keys in chess positions.
// Zobrist keys need all 64 bits for distribution.
type Key uint64

// Position represents the chess board and its position.
// It uses an 8x8 piece board and bitboards, a stack for undo moves, zobrist
// keys for transposition tables, and material and positional value counters.
//
// Create with NewPosition() or NewPositionFen(fen).
type Position struct {

	// The zobrist key to use as a hash key in transposition tables.
	// Updated incrementally every time one of the state variables changes.
	zobristKey Key

	// Board State
	// unique chess position (exception is 3-fold repetition
	// which is also not represented in a FEN string)
	board           [SqLength]Piece
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
	nextPlayer      Color

	// Extended Board State
	// not necessary for a unique position
	kingSquare         [ColorLength]Square
	nextHalfMoveNumber int
	piecesBb           [ColorLength][PtLength]Bitboard
	occupiedBb         [ColorLength]Bitboard

	// history information for undo and repetition detection
	historyCounter int
	history        [maxHistory]historyState

	// Calculated by doMove/undoMove - always up to date
	material        [ColorLength]Value
	materialNonPawn [ColorLength]Value
	psqMidValue     [ColorLength]Value
	psqEndValue     [ColorLength]Value
	gamePhase       int

	// caches a hasCheck flag for the current position. Reset to flagTBD
	// every time a move is made or unmade.
	hasCheckFlag int
}

type historyState struct {
	zobristKey      Key
	move            Move
	fromPiece       Piece
	capturedPiece   Piece
	castlingRights  CastlingRights
	enpassantSquare Square
	halfMoveClock   int
	hasCheckFlag    int
}

const maxHistory int = MaxMoves

// state flag for cached values
const (
	flagTBD   int = 0
	flagFalse int = 1
	flagTrue  int = 2
)

// //////////////////////////////////////////////////////
// Public
// //////////////////////////////////////////////////////

// NewPosition creates a new position in the standard chess start position.
func NewPosition() *Position {
	return NewPositionFen(StartFen)
}

// NewPositionFen creates a new position based on the given fen string.
// If the fen is invalid the error is logged and the standard start
// position is returned instead.
func NewPositionFen(fen string) *Position {
	p := &Position{}
	if e := p.setupBoard(fen); e != nil {
		log.Errorf("fen for position setup not valid, using start position instead: %s", e)
		p = &Position{}
		if e2 := p.setupBoard(StartFen); e2 != nil {
			panic(fmt.Sprintf("start position fen is invalid: %s", e2))
		}
	}
	return p
}

// DoMove commits a move to the board. For performance there is no check that
// this move is legal on the current position - the caller (usually a move
// generator) is expected to only hand in pseudo legal moves; use
// IsLegalMove/WasLegalMove to check legality.
func (p *Position) DoMove(m Move) {
	fromSq := m.From()
	fromPc := p.board[fromSq]
	myColor := fromPc.ColorOf()
	toSq := m.To()
	targetPc := p.board[toSq]

	if assert.DEBUG {
		assert.Assert(m.IsValid(), "Position DoMove: Invalid move %s", m.String())
		assert.Assert(fromPc != PieceNone, "Position DoMove: No piece on %s for move %s", fromSq.String(), m.Str())
		assert.Assert(myColor == p.nextPlayer, "Position DoMove: Piece to move does not belong to next player %s", fromPc.String())
		assert.Assert(targetPc.TypeOf() != King, "Position DoMove: King cannot be captured yet target piece is %s", targetPc.String())
	}

	// Save state of board for undo - reuses the existing history slot.
	tmpHistoryCounter := p.historyCounter
	p.history[tmpHistoryCounter].zobristKey = p.zobristKey
	p.history[tmpHistoryCounter].move = m
	p.history[tmpHistoryCounter].fromPiece = fromPc
	p.history[tmpHistoryCounter].capturedPiece = targetPc
	p.history[tmpHistoryCounter].castlingRights = p.castlingRights
	p.history[tmpHistoryCounter].enpassantSquare = p.enPassantSquare
	p.history[tmpHistoryCounter].halfMoveClock = p.halfMoveClock
	p.history[tmpHistoryCounter].hasCheckFlag = p.hasCheckFlag
	p.historyCounter++

	switch m.MoveType() {
	case Normal:
		p.doNormalMove(fromSq, toSq, targetPc, fromPc, myColor)
	case Promotion:
		p.doPromotionMove(m, fromPc, myColor, toSq, targetPc, fromSq)
	case EnPassant:
		p.doEnPassantMove(toSq, myColor, fromPc, fromSq)
	case Castling:
		p.doCastlingMove(fromPc, myColor, toSq, fromSq)
	}

	p.hasCheckFlag = flagTBD
	p.nextHalfMoveNumber++
	p.nextPlayer = p.nextPlayer.Flip()
	p.zobristKey ^= zobristBase.nextPlayer
}

// UndoMove resets the position to the state before the last move was made.
func (p *Position) UndoMove() {
	if assert.DEBUG {
		assert.Assert(p.historyCounter > 0, "Position UndoMove: Cannot undo initial position")
	}

	p.historyCounter--
	p.nextHalfMoveNumber--
	p.nextPlayer = p.nextPlayer.Flip()
	tmpHistoryCounter := p.historyCounter
	move := p.history[p.historyCounter].move

	switch move.MoveType() {
	case Normal:
		p.movePiece(move.To(), move.From())
		if p.history[p.historyCounter].capturedPiece != PieceNone {
			p.putPiece(p.history[p.historyCounter].capturedPiece, move.To())
		}
	case Promotion:
		p.removePiece(move.To())
		p.putPiece(MakePiece(p.nextPlayer, Pawn), move.From())
		if p.history[p.historyCounter].capturedPiece != PieceNone {
			p.putPiece(p.history[p.historyCounter].capturedPiece, move.To())
		}
	case EnPassant:
		// zobrist key and en passant square are restored via history below
		p.movePiece(move.To(), move.From())
		p.putPiece(MakePiece(p.nextPlayer.Flip(), Pawn), move.To().To(p.nextPlayer.Flip().MoveDirection()))
	case Castling:
		// castling rights are restored via history below
		p.movePiece(move.To(), move.From()) // King
		switch move.To() {
		case SqG1:
			p.movePiece(SqF1, SqH1) // Rook
		case SqC1:
			p.movePiece(SqD1, SqA1) // Rook
		case SqG8:
			p.movePiece(SqF8, SqH8) // Rook
		case SqC8:
			p.movePiece(SqD8, SqA8) // Rook
		default:
			panic("Invalid castle move!")
		}
	}

	p.castlingRights = p.history[tmpHistoryCounter].castlingRights
	p.enPassantSquare = p.history[tmpHistoryCounter].enpassantSquare
	p.halfMoveClock = p.history[tmpHistoryCounter].halfMoveClock
	p.hasCheckFlag = p.history[tmpHistoryCounter].hasCheckFlag
	p.zobristKey = p.history[tmpHistoryCounter].zobristKey
}

// DoNullMove is used for Null Move Pruning. The position is unchanged apart
// from flipping the next player; the prior state is pushed to history so
// UndoNullMove can restore it.
func (p *Position) DoNullMove() {
	tmpHistoryCounter := p.historyCounter
	p.history[tmpHistoryCounter].zobristKey = p.zobristKey
	p.history[tmpHistoryCounter].move = MoveNone
	p.history[tmpHistoryCounter].fromPiece = PieceNone
	p.history[tmpHistoryCounter].capturedPiece = PieceNone
	p.history[tmpHistoryCounter].castlingRights = p.castlingRights
	p.history[tmpHistoryCounter].enpassantSquare = p.enPassantSquare
	p.history[tmpHistoryCounter].halfMoveClock = p.halfMoveClock
	p.history[tmpHistoryCounter].hasCheckFlag = p.hasCheckFlag
	p.historyCounter++

	p.hasCheckFlag = flagTBD
	p.clearEnPassant()
	p.nextHalfMoveNumber++
	p.nextPlayer = p.nextPlayer.Flip()
	p.zobristKey ^= zobristBase.nextPlayer
}

// UndoNullMove restores the state from before the matching DoNullMove call.
func (p *Position) UndoNullMove() {
	p.historyCounter--
	p.nextHalfMoveNumber--
	p.nextPlayer = p.nextPlayer.Flip()
	tmpHistoryCounter := p.historyCounter
	p.castlingRights = p.history[tmpHistoryCounter].castlingRights
	p.enPassantSquare = p.history[tmpHistoryCounter].enpassantSquare
	p.halfMoveClock = p.history[tmpHistoryCounter].halfMoveClock
	p.hasCheckFlag = p.history[tmpHistoryCounter].hasCheckFlag
	p.zobristKey = p.history[tmpHistoryCounter].zobristKey
}

// IsAttacked checks if the given square is attacked by a piece of the
// given color.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	// non sliding
	if (GetPawnAttacks(by.Flip(), sq)&p.piecesBb[by][Pawn] != 0) ||
		(GetPseudoAttacks(Knight, sq)&p.piecesBb[by][Knight] != 0) ||
		(GetPseudoAttacks(King, sq)&p.piecesBb[by][King] != 0) {
		return true
	}

	// sliding - reverse attack from sq: if a rook/bishop/queen of "by" would
	// be attacked by a slider sitting on sq, the slider on the real square
	// attacks sq too.
	occ := p.OccupiedAll()
	if AttacksBb(Bishop, sq, occ)&p.piecesBb[by][Bishop] > 0 ||
		AttacksBb(Rook, sq, occ)&p.piecesBb[by][Rook] > 0 ||
		AttacksBb(Queen, sq, occ)&p.piecesBb[by][Queen] > 0 {
		return true
	}

	// en passant
	if p.enPassantSquare != SqNone {
		switch by {
		case White: // white is attacker, black pawn is the target
			if p.board[p.enPassantSquare.To(South)] == BlackPawn &&
				p.enPassantSquare.To(South) == sq {
				if p.board[sq.To(West)] == WhitePawn {
					return true
				}
				return p.board[sq.To(East)] == WhitePawn
			}
		case Black: // black is attacker, white pawn is the target
			if p.board[p.enPassantSquare.To(North)] == WhitePawn &&
				p.enPassantSquare.To(North) == sq {
				if p.board[sq.To(West)] == BlackPawn {
					return true
				}
				return p.board[sq.To(East)] == BlackPawn
			}
		}
	}
	return false
}

// IsLegalMove tests whether a move is legal on the current position:
// the king must not be left in check, and castling must not cross or
// start on an attacked square.
func (p *Position) IsLegalMove(move Move) bool {
	if move.MoveType() == Castling {
		if p.IsAttacked(move.From(), p.nextPlayer.Flip()) {
			return false
		}
		switch move.To() {
		case SqG1:
			if p.IsAttacked(SqF1, p.nextPlayer.Flip()) {
				return false
			}
		case SqC1:
			if p.IsAttacked(SqD1, p.nextPlayer.Flip()) {
				return false
			}
		case SqG8:
			if p.IsAttacked(SqF8, p.nextPlayer.Flip()) {
				return false
			}
		case SqC8:
			if p.IsAttacked(SqD8, p.nextPlayer.Flip()) {
				return false
			}
		}
	}
	p.DoMove(move)
	legal := !p.IsAttacked(p.kingSquare[p.nextPlayer.Flip()], p.nextPlayer)
	p.UndoMove()
	return legal
}

// WasLegalMove tests if the last move played was legal: the mover's king
// must not now be in check, and a castling move must not have crossed or
// started on an attacked square.
func (p *Position) WasLegalMove() bool {
	if p.IsAttacked(p.kingSquare[p.nextPlayer.Flip()], p.nextPlayer) {
		return false
	}
	if p.historyCounter > 0 {
		move := p.history[p.historyCounter-1].move
		if move.MoveType() == Castling {
			if p.IsAttacked(move.From(), p.nextPlayer) {
				return false
			}
			switch move.To() {
			case SqG1:
				if p.IsAttacked(SqF1, p.nextPlayer) {
					return false
				}
			case SqC1:
				if p.IsAttacked(SqD1, p.nextPlayer) {
					return false
				}
			case SqG8:
				if p.IsAttacked(SqF8, p.nextPlayer) {
					return false
				}
			case SqC8:
				if p.IsAttacked(SqD8, p.nextPlayer) {
					return false
				}
			}
		}
	}
	return true
}

// HasCheck returns true if the next player's king is attacked. Cached per
// position so repeated calls without an intervening move are cheap.
func (p *Position) HasCheck() bool {
	if p.hasCheckFlag != flagTBD {
		return p.hasCheckFlag == flagTrue
	}
	check := p.IsAttacked(p.kingSquare[p.nextPlayer], p.nextPlayer.Flip())
	if check {
		p.hasCheckFlag = flagTrue
	} else {
		p.hasCheckFlag = flagFalse
	}
	return check
}

// IsCapturingMove determines if a move on this position captures a piece,
// including en passant.
func (p *Position) IsCapturingMove(move Move) bool {
	return p.occupiedBb[p.nextPlayer.Flip()].Has(move.To()) || move.MoveType() == EnPassant
}

// CheckRepetitions returns true if the current position has occurred reps
// times before in the game's history. To detect a 3-fold repetition check
// CheckRepetitions(2) (the current occurrence plus 2 prior ones).
func (p *Position) CheckRepetitions(reps int) bool {
	counter := 0
	i := p.historyCounter - 2
	lastHalfMove := p.halfMoveClock
	for i >= 0 {
		// once the half move clock resets (irreversible move) no earlier
		// position can repeat the current one
		if p.history[i].halfMoveClock >= lastHalfMove {
			break
		}
		lastHalfMove = p.history[i].halfMoveClock
		if p.zobristKey == p.history[i].zobristKey {
			counter++
		}
		if counter >= reps {
			return true
		}
		i -= 2
	}
	return false
}

// HasInsufficientMaterial returns true if neither side has enough material
// to force a mate (this does not exclude a position where a helpmate is
// possible only if the opponent actively assists).
func (p *Position) HasInsufficientMaterial() bool {
	// bare kings
	if p.material[White]+p.material[Black] == 0 {
		return true
	}

	if p.piecesBb[White][Pawn].PopCount() == 0 && p.piecesBb[Black][Pawn].PopCount() == 0 {
		// king and a minor against a bare king on both sides
		if p.materialNonPawn[White] < 400 && p.materialNonPawn[Black] < 400 {
			return true
		}
		// weaker side has a minor piece against two knights
		if (p.piecesBb[White][Knight].PopCount() == 2 && p.materialNonPawn[White] == 2*Value(Knight.ValueOf()) && p.materialNonPawn[Black] <= Value(Bishop.ValueOf())) ||
			(p.piecesBb[Black][Knight].PopCount() == 2 && p.materialNonPawn[Black] == 2*Value(Knight.ValueOf()) && p.materialNonPawn[White] <= Value(Bishop.ValueOf())) {
			return true
		}
		// two bishops draw against a lone bishop
		if (p.piecesBb[White][Bishop].PopCount() == 2 && p.materialNonPawn[White] == 2*Value(Bishop.ValueOf()) && p.piecesBb[Black][Bishop].PopCount() == 1 && p.materialNonPawn[Black] == Value(Bishop.ValueOf())) ||
			(p.piecesBb[Black][Bishop].PopCount() == 2 && p.materialNonPawn[Black] == 2*Value(Bishop.ValueOf()) && p.piecesBb[White][Bishop].PopCount() == 1 && p.materialNonPawn[White] == Value(Bishop.ValueOf())) {
			return true
		}
		// a bishop pair alone can force mate
		if (p.piecesBb[White][Bishop].PopCount() == 2 && p.materialNonPawn[White] == 2*Value(Bishop.ValueOf())) || (p.piecesBb[Black][Bishop].PopCount() == 2 && p.materialNonPawn[Black] == 2*Value(Bishop.ValueOf())) {
			return false
		}
		// two minors against one draw, except when the stronger side has the bishop pair
		if (p.materialNonPawn[White] <= 2*Value(Bishop.ValueOf()) && p.materialNonPawn[Black] <= Value(Bishop.ValueOf())) ||
			(p.materialNonPawn[White] <= Value(Bishop.ValueOf()) && p.materialNonPawn[Black] <= 2*Value(Bishop.ValueOf())) {
			return true
		}
	}
	return false
}

// GivesCheck determines if the given move would give check to the opponent
// of p.NextPlayer().
func (p *Position) GivesCheck(move Move) bool {
	us := p.nextPlayer
	them := us.Flip()
	kingSq := p.kingSquare[them]

	fromSq := move.From()
	toSq := move.To()
	fromPt := p.board[fromSq].TypeOf()
	epTargetSq := SqNone
	moveType := move.MoveType()

	switch moveType {
	case Promotion:
		fromPt = move.PromotionType()
	case Castling:
		// king can't give check and castling can't reveal one; only the
		// rook's destination matters for a direct check
		fromPt = Rook
		switch toSq {
		case SqG1:
			toSq = SqF1
		case SqC1:
			toSq = SqD1
		case SqG8:
			toSq = SqF8
		case SqC8:
			toSq = SqD8
		}
	case EnPassant:
		epTargetSq = toSq.To(them.MoveDirection())
	}

	boardAfterMove := p.OccupiedAll()
	boardAfterMove.PopSquare(fromSq)
	boardAfterMove.PushSquare(toSq)
	if moveType == EnPassant {
		boardAfterMove.PopSquare(epTargetSq)
	}

	// direct check
	switch fromPt {
	case Pawn:
		if GetPawnAttacks(us, toSq).Has(kingSq) {
			return true
		}
	case King:
		// can't give check
	default:
		if AttacksBb(fromPt, toSq, boardAfterMove).Has(kingSq) {
			return true
		}
	}

	// revealed check - only sliders can be revealed; knight/pawn attacks
	// can't, except en passant which can uncover a file/diagonal
	switch {
	case AttacksBb(Bishop, kingSq, boardAfterMove)&p.piecesBb[us][Bishop] > 0:
		return true
	case AttacksBb(Rook, kingSq, boardAfterMove)&p.piecesBb[us][Rook] > 0:
		return true
	case AttacksBb(Queen, kingSq, boardAfterMove)&p.piecesBb[us][Queen] > 0:
		return true
	}

	return false
}

// String returns a string describing the position: fen, board matrix, game
// phase and material/positional values.
func (p *Position) String() string {
	var os strings.Builder
	os.WriteString(p.StringFen())
	os.WriteString("\n")
	os.WriteString(p.StringBoard())
	os.WriteString("\n")
	os.WriteString(fmt.Sprintf("Next Player    : %s\n", p.nextPlayer.String()))
	os.WriteString(fmt.Sprintf("Game Phase     : %d\n", p.gamePhase))
	os.WriteString(fmt.Sprintf("Material White : %d\n", p.material[White]))
	os.WriteString(fmt.Sprintf("Material Black : %d\n", p.material[Black]))
	os.WriteString(fmt.Sprintf("Pos value White: %d/%d\n", p.psqMidValue[White], p.psqEndValue[White]))
	os.WriteString(fmt.Sprintf("Pos value Black: %d/%d\n", p.psqMidValue[Black], p.psqEndValue[Black]))
	return os.String()
}

// StringFen returns a string with the FEN of the current position.
func (p *Position) StringFen() string {
	return p.fen()
}

// StringBoard returns a visual matrix of the board and pieces.
func (p *Position) StringBoard() string {
	var os strings.Builder
	os.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank1; r <= Rank8; r++ {
		for f := FileA; f <= FileH; f++ {
			os.WriteString("| ")
			os.WriteString(p.board[SquareOf(f, Rank8-r)].String())
			os.WriteString(" ")
		}
		os.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
	}
	return os.String()
}

// //////////////////////////////////////////////////////////
// Private
// //////////////////////////////////////////////////////////

func (p *Position) doNormalMove(fromSq Square, toSq Square, targetPc Piece, fromPc Piece, myColor Color) {
	if p.castlingRights != CastlingNone {
		cr := GetCastlingRights(fromSq) | GetCastlingRights(toSq)
		if cr != CastlingNone {
			p.zobristKey ^= zobristBase.castlingRights[p.castlingRights] // out
			p.castlingRights.Remove(cr)
			p.zobristKey ^= zobristBase.castlingRights[p.castlingRights] // in
		}
	}
	p.clearEnPassant()
	if targetPc != PieceNone { // capture
		p.removePiece(toSq)
		p.halfMoveClock = 0
	} else if fromPc.TypeOf() == Pawn {
		p.halfMoveClock = 0
		if SquareDistance(fromSq, toSq) == 2 { // double push - set en passant
			p.enPassantSquare = toSq.To(myColor.Flip().MoveDirection())
			p.zobristKey ^= zobristBase.enPassantFile[p.enPassantSquare.FileOf()] // in
		}
	} else {
		p.halfMoveClock++
	}
	p.movePiece(fromSq, toSq)
}

func (p *Position) doCastlingMove(fromPc Piece, myColor Color, toSq Square, fromSq Square) {
	if assert.DEBUG {
		assert.Assert(fromPc == MakePiece(myColor, King), "Position DoMove: Move type castling but from piece not king")
	}
	switch toSq {
	case SqG1:
		p.movePiece(fromSq, toSq) // King
		p.movePiece(SqH1, SqF1)   // Rook
		p.zobristKey ^= zobristBase.castlingRights[p.castlingRights]
		p.castlingRights.Remove(CastlingWhite)
		p.zobristKey ^= zobristBase.castlingRights[p.castlingRights]
	case SqC1:
		p.movePiece(fromSq, toSq) // King
		p.movePiece(SqA1, SqD1)   // Rook
		p.zobristKey ^= zobristBase.castlingRights[p.castlingRights]
		p.castlingRights.Remove(CastlingWhite)
		p.zobristKey ^= zobristBase.castlingRights[p.castlingRights]
	case SqG8:
		p.movePiece(fromSq, toSq) // King
		p.movePiece(SqH8, SqF8)   // Rook
		p.zobristKey ^= zobristBase.castlingRights[p.castlingRights]
		p.castlingRights.Remove(CastlingBlack)
		p.zobristKey ^= zobristBase.castlingRights[p.castlingRights]
	case SqC8:
		p.movePiece(fromSq, toSq) // King
		p.movePiece(SqA8, SqD8)   // Rook
		p.zobristKey ^= zobristBase.castlingRights[p.castlingRights]
		p.castlingRights.Remove(CastlingBlack)
		p.zobristKey ^= zobristBase.castlingRights[p.castlingRights]
	default:
		panic("Invalid castle move!")
	}
	p.clearEnPassant()
	p.halfMoveClock++
}

func (p *Position) doEnPassantMove(toSq Square, myColor Color, fromPc Piece, fromSq Square) {
	capSq := toSq.To(myColor.Flip().MoveDirection())
	if assert.DEBUG {
		assert.Assert(fromPc == MakePiece(myColor, Pawn), "Position DoMove: Move type en passant but from piece not pawn")
		assert.Assert(p.enPassantSquare != SqNone, "Position DoMove: EnPassant move type without en passant")
		assert.Assert(p.board[capSq] == MakePiece(myColor.Flip(), Pawn), "Position DoMove: Captured en passant piece invalid")
	}
	p.removePiece(capSq)
	p.movePiece(fromSq, toSq)
	p.clearEnPassant()
	p.halfMoveClock = 0
}

func (p *Position) doPromotionMove(m Move, fromPc Piece, myColor Color, toSq Square, targetPc Piece, fromSq Square) {
	if assert.DEBUG {
		assert.Assert(fromPc == MakePiece(myColor, Pawn), "Position DoMove: Move type promotion but From piece not Pawn")
		assert.Assert(myColor.PromotionRankBb().Has(toSq), "Position DoMove: Promotion move but wrong Rank")
	}
	if targetPc != PieceNone {
		p.removePiece(toSq)
	}
	if p.castlingRights != CastlingNone {
		cr := GetCastlingRights(fromSq) | GetCastlingRights(toSq)
		if cr != CastlingNone {
			p.zobristKey ^= zobristBase.castlingRights[p.castlingRights]
			p.castlingRights.Remove(cr)
			p.zobristKey ^= zobristBase.castlingRights[p.castlingRights]
		}
	}
	p.removePiece(fromSq)
	p.putPiece(MakePiece(myColor, m.PromotionType()), toSq)
	p.clearEnPassant()
	p.halfMoveClock = 0
}

func (p *Position) movePiece(fromSq Square, toSq Square) {
	p.putPiece(p.removePiece(fromSq), toSq)
}

func (p *Position) putPiece(piece Piece, square Square) {
	color := piece.ColorOf()
	pieceType := piece.TypeOf()

	if assert.DEBUG {
		assert.Assert(p.board[square] == PieceNone, "tried to put piece on an occupied square: %s", square.String())
		assert.Assert(!p.piecesBb[color][pieceType].Has(square), "tried to set bit on pieceBb which is already set: %s", square.String())
		assert.Assert(!p.occupiedBb[color].Has(square), "tried to set bit on occupiedBb which is already set: %s", square.String())
	}

	p.board[square] = piece
	if pieceType == King {
		p.kingSquare[color] = square
	}
	p.piecesBb[color][pieceType].PushSquare(square)
	p.occupiedBb[color].PushSquare(square)
	p.zobristKey ^= zobristBase.pieces[piece][square]

	p.gamePhase += pieceType.GamePhaseValue()
	if p.gamePhase > GamePhaseMax {
		p.gamePhase = GamePhaseMax
	}
	p.material[color] += Value(pieceType.ValueOf())
	if pieceType > Pawn {
		p.materialNonPawn[color] += Value(pieceType.ValueOf())
	}
	p.psqMidValue[color] += PosMidValue(piece, square)
	p.psqEndValue[color] += PosEndValue(piece, square)
}

func (p *Position) removePiece(square Square) Piece {
	removed := p.board[square]
	color := removed.ColorOf()
	pieceType := removed.TypeOf()

	if assert.DEBUG {
		assert.Assert(p.board[square] != PieceNone, "tried to remove piece from an empty square: %s", square.String())
		assert.Assert(p.piecesBb[color][pieceType].Has(square), "tried to clear bit from pieceBb which is not set: %s", square.String())
		assert.Assert(p.occupiedBb[color].Has(square), "tried to clear bit from occupiedBb which is not set: %s", square.String())
	}

	p.board[square] = PieceNone
	p.piecesBb[color][pieceType].PopSquare(square)
	p.occupiedBb[color].PopSquare(square)
	p.zobristKey ^= zobristBase.pieces[removed][square]

	p.gamePhase -= pieceType.GamePhaseValue()
	if p.gamePhase < 0 {
		p.gamePhase = 0
	}
	p.material[color] -= Value(pieceType.ValueOf())
	if pieceType > Pawn {
		p.materialNonPawn[color] -= Value(pieceType.ValueOf())
	}
	p.psqMidValue[color] -= PosMidValue(removed, square)
	p.psqEndValue[color] -= PosEndValue(removed, square)
	return removed
}

func (p *Position) clearEnPassant() {
	if p.enPassantSquare != SqNone {
		p.zobristKey ^= zobristBase.enPassantFile[p.enPassantSquare.FileOf()] // out
		p.enPassantSquare = SqNone
	}
}

func (p *Position) fen() string {
	var fen strings.Builder
	for r := Rank1; r <= Rank8; r++ {
		emptySquares := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.board[SquareOf(f, Rank8-r)]
			if pc == PieceNone {
				emptySquares++
			} else {
				if emptySquares > 0 {
					fen.WriteString(strconv.Itoa(emptySquares))
					emptySquares = 0
				}
				fen.WriteString(pc.String())
			}
		}
		if emptySquares > 0 {
			fen.WriteString(strconv.Itoa(emptySquares))
		}
		if r < Rank8 {
			fen.WriteString("/")
		}
	}
	fen.WriteString(" ")
	fen.WriteString(p.nextPlayer.String())
	fen.WriteString(" ")
	fen.WriteString(p.castlingRights.String())
	fen.WriteString(" ")
	fen.WriteString(p.enPassantSquare.String())
	fen.WriteString(" ")
	fen.WriteString(strconv.Itoa(p.halfMoveClock))
	fen.WriteString(" ")
	fen.WriteString(strconv.Itoa((p.nextHalfMoveNumber + 1) / 2))

	return fen.String()
}

// regex for first part of fen (position of pieces)
var regexFenPos = regexp.MustCompile("^[0-8pPnNbBrRqQkK/]+$")

// regex for next player color in fen
var regexWorB = regexp.MustCompile("^[wb]$")

// regex for castling rights in fen
var regexCastlingRights = regexp.MustCompile("^(K?Q?k?q?|-)$")

// regex for en passant square in fen
var regexEnPassant = regexp.MustCompile("^([a-h][1-8]|-)$")

// setupBoard sets up a board based on a fen. This is the only way to get
// a valid Position instance; struct fields start at their zero value and
// are filled in here.
func (p *Position) setupBoard(fen string) error {
	fen = strings.TrimSpace(fen)
	fenParts := strings.Split(fen, " ")

	if len(fenParts) == 0 || fenParts[0] == "" {
		return fmt.Errorf("fen must not be empty")
	}

	if !regexFenPos.MatchString(fenParts[0]) {
		return fmt.Errorf("fen position contains invalid characters")
	}

	// the fen board field starts at a8 and runs rank by rank down to h1;
	// that matches this engine's own rank-major, top-to-bottom square
	// numbering exactly, so a "/" needs no square movement at all.
	currentSquare := SqA8

	for _, c := range fenParts[0] {
		if number, e := strconv.Atoi(string(c)); e == nil { // empty squares
			currentSquare = Square(int(currentSquare) + number*int(East))
		} else if c == '/' { // rank separator - already on next rank's file A
			continue
		} else {
			piece := PieceFromChar(string(c))
			if piece == PieceNone {
				return fmt.Errorf("invalid piece character: %s", string(c))
			}
			p.putPiece(piece, currentSquare)
			currentSquare++
		}
	}
	if currentSquare != SqNone { // after h1++ we should have walked off the board
		return fmt.Errorf("fen position did not cover exactly 64 squares")
	}

	p.nextHalfMoveNumber = 1
	p.enPassantSquare = SqNone

	// everything below is optional - defaults apply if omitted

	if len(fenParts) >= 2 {
		if !regexWorB.MatchString(fenParts[1]) {
			return fmt.Errorf("fen next player contains invalid characters")
		}
		switch fenParts[1] {
		case "w":
			p.nextPlayer = White
		case "b":
			p.nextPlayer = Black
			p.zobristKey ^= zobristBase.nextPlayer
			p.nextHalfMoveNumber++
		}
	}

	if len(fenParts) >= 3 {
		if !regexCastlingRights.MatchString(fenParts[2]) {
			return fmt.Errorf("fen castling rights contains invalid characters")
		}
		if fenParts[2] != "-" {
			for _, c := range fenParts[2] {
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
		p.zobristKey ^= zobristBase.castlingRights[p.castlingRights]
	}

	if len(fenParts) >= 4 {
		if !regexEnPassant.MatchString(fenParts[3]) {
			return fmt.Errorf("fen en passant square contains invalid characters")
		}
		if fenParts[3] != "-" {
			p.enPassantSquare = MakeSquare(fenParts[3])
			p.zobristKey ^= zobristBase.enPassantFile[p.enPassantSquare.FileOf()]
		}
	}

	if len(fenParts) >= 5 {
		number, e := strconv.Atoi(fenParts[4])
		if e != nil {
			return e
		}
		p.halfMoveClock = number
	}

	if len(fenParts) >= 6 {
		moveNumber, e := strconv.Atoi(fenParts[5])
		if e != nil {
			return e
		}
		if moveNumber == 0 {
			moveNumber = 1
		}
		p.nextHalfMoveNumber = 2*moveNumber - (1 - int(p.nextPlayer))
	}

	return nil
}

// //////////////////////////////////////////////////////
// Getter and Setter functions
// //////////////////////////////////////////////////////

// ZobristKey returns the current zobrist key for this position.
func (p *Position) ZobristKey() Key {
	return p.zobristKey
}

// NextPlayer returns the color to move.
func (p *Position) NextPlayer() Color {
	return p.nextPlayer
}

// GetPiece returns the piece on the given square, or PieceNone if empty.
func (p *Position) GetPiece(sq Square) Piece {
	return p.board[sq]
}

// PiecesBb returns the Bitboard for the given piece type of the given color.
func (p *Position) PiecesBb(c Color, pt PieceType) Bitboard {
	return p.piecesBb[c][pt]
}

// OccupiedAll returns a Bitboard of all pieces currently on the board.
func (p *Position) OccupiedAll() Bitboard {
	return p.occupiedBb[White] | p.occupiedBb[Black]
}

// OccupiedBb returns a Bitboard of all pieces of color c.
func (p *Position) OccupiedBb(c Color) Bitboard {
	return p.occupiedBb[c]
}

// GamePhase returns the current game phase value of the position. 24 at
// the start of the game (also the max), 0 when no officers remain.
func (p *Position) GamePhase() int {
	return p.gamePhase
}

// GamePhaseFactor returns a value between 0 and 1 reflecting the ratio
// between the actual game phase and the maximum game phase.
func (p *Position) GamePhaseFactor() float64 {
	return float64(p.gamePhase) / GamePhaseMax
}

// GetEnPassantSquare returns the en passant target square, or SqNone.
func (p *Position) GetEnPassantSquare() Square {
	return p.enPassantSquare
}

// CastlingRights returns the position's current castling rights.
func (p *Position) CastlingRights() CastlingRights {
	return p.castlingRights
}

// KingSquare returns the current square of the king of color c.
func (p *Position) KingSquare(c Color) Square {
	return p.kingSquare[c]
}

// HalfMoveClock returns the position's half move clock.
func (p *Position) HalfMoveClock() int {
	return p.halfMoveClock
}

// Material returns the material value for the given color.
func (p *Position) Material(c Color) Value {
	return p.material[c]
}

// MaterialNonPawn returns the non-pawn material value for the given color.
func (p *Position) MaterialNonPawn(c Color) Value {
	return p.materialNonPawn[c]
}

// PsqMidValue returns the positional value for the given color in early
// game phases. Best combined with a game phase factor.
func (p *Position) PsqMidValue(c Color) Value {
	return p.psqMidValue[c]
}

// PsqEndValue returns the positional value for the given color in later
// game phases. Best combined with a game phase factor.
func (p *Position) PsqEndValue(c Color) Value {
	return p.psqEndValue[c]
}

// LastMove returns the last move made on the position, or MoveNone if the
// position has no history.
func (p *Position) LastMove() Move {
	if p.historyCounter <= 0 {
		return MoveNone
	}
	return p.history[p.historyCounter-1].move
}

// LastCapturedPiece returns the piece captured by the last move, or
// PieceNone if the last move did not capture or there is no history.
func (p *Position) LastCapturedPiece() Piece {
	if p.historyCounter <= 0 {
		return PieceNone
	}
	return p.history[p.historyCounter-1].capturedPiece
}

// WasCapturingMove returns true if the last move made was a capture.
func (p *Position) WasCapturingMove() bool {
	return p.LastCapturedPiece() != PieceNone
}
