// Package game implements chess game state management: move history,
// repetition and fifty/seventy-five move draw detection, insufficient
// material, and checkmate/stalemate/result classification. Operations that
// can fail (MakeMove, MakeMoveSAN, ClaimDraw) return a *GameError instead of
// mutating the game, rather than trusting the caller the way the teacher's
// PushMove does.
//
// Grounded on the teacher engine's game.go and repetition.go (the
// Zobrist-keyed repetition map, IsInsufficientMaterial's material-count
// enumeration, and the PushMove flow that clears repetitions on an
// irreversible move) and the teacher's modular game/game.go (the
// move-stack/undo structure). Debug-level tracing is wired through
// github.com/op/go-logging, the logging library used elsewhere in the
// example corpus for this kind of engine-internals tracing.
package game

import (
	"github.com/op/go-logging"

	"github.com/tmttn/chess-sub000/movegen"
	"github.com/tmttn/chess-sub000/piece"
	"github.com/tmttn/chess-sub000/position"
	"github.com/tmttn/chess-sub000/san"
)

var log = logging.MustGetLogger("game")

// GameErrorKind tags a GameError so callers can switch on the failure
// instead of matching Error()'s text, mirroring position.FenError's
// approach to the FEN boundary.
type GameErrorKind int

const (
	// IllegalMove: the move passed to MakeMove is not in the current
	// legal-move list.
	IllegalMove GameErrorKind = iota
	// GameAlreadyOver: a move or draw claim was attempted after the game
	// already reached a terminal result.
	GameAlreadyOver
	// CannotClaimDraw: ClaimDraw was called but no claimable condition
	// (threefold repetition or the fifty-move rule) currently holds.
	CannotClaimDraw
)

// GameError reports why a Game operation failed. The game is left unchanged
// whenever one is returned.
type GameError struct {
	Kind   GameErrorKind
	Reason string
}

func (e *GameError) Error() string { return e.Reason }

// Result classifies how a game has ended, or ResultOngoing if it hasn't.
type Result int

const (
	ResultOngoing Result = iota
	ResultWhiteWins
	ResultBlackWins
	ResultDraw
)

// Termination names the specific rule that produced a Result.
type Termination int

const (
	TerminationNone Termination = iota
	TerminationCheckmate
	TerminationStalemate
	TerminationThreefoldRepetition
	TerminationFivefoldRepetition
	TerminationFiftyMoveRule
	TerminationSeventyFiveMoveRule
	TerminationInsufficientMaterial
)

// CompletedMove records one played move alongside the SAN rendering and the
// Zobrist hash of the position *before* the move was applied, so a consumer
// walking the history can detect repetitions without replaying every move.
type CompletedMove struct {
	Move      piece.Move
	SAN       string
	PriorHash uint64
}

// Game tracks a single chess game's position, legal moves, and history.
type Game struct {
	Position    position.Position
	LegalMoves  piece.MoveList
	MoveStack   []CompletedMove
	repetitions map[uint64]int
	Result      Result
	Termination Termination
}

// NewGame returns a game initialized at the standard starting position.
func NewGame() *Game {
	pos, err := position.ParseFEN(position.StartFEN)
	if err != nil {
		panic("game: start FEN failed to parse: " + err.Error())
	}
	return newGameFromPosition(pos)
}

// NewGameFromFEN returns a game initialized from an arbitrary FEN string.
func NewGameFromFEN(fen string) (*Game, error) {
	pos, err := position.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return newGameFromPosition(pos), nil
}

func newGameFromPosition(pos position.Position) *Game {
	g := &Game{
		Position:    pos,
		repetitions: make(map[uint64]int, 1),
	}
	g.LegalMoves = movegen.Legal(g.Position)
	g.repetitions[g.Position.Hash] = 1
	g.refreshResult()
	return g
}

// MakeMove applies m and returns its SAN rendering. It returns a GameError
// without touching g.Position/g.LegalMoves if the game has already ended
// (GameAlreadyOver) or m is not one of g.LegalMoves (IllegalMove). Not safe
// for concurrent use.
func (g *Game) MakeMove(m piece.Move) (string, error) {
	if g.Result != ResultOngoing {
		return "", &GameError{Kind: GameAlreadyOver, Reason: "game: game already over"}
	}
	if !g.IsMoveLegal(m) {
		return "", &GameError{Kind: IllegalMove, Reason: "game: move not in current legal-move list"}
	}

	priorHash := g.Position.Hash

	_, moved := g.Position.PieceAt(m.From())
	_, captured := g.Position.PieceAt(m.To())
	isCapture := captured != piece.None || m.Kind() == piece.EnPassant
	irreversible := isCapture || m.Kind() == piece.Castle || m.Kind() == piece.Promotion || moved == piece.Pawn

	next := g.Position
	next.MakeMove(m)
	nextLegal := movegen.Legal(next)
	check := movegen.InCheck(&next)
	checkmate := check && nextLegal.Len == 0

	sanStr := san.Encode(m, &g.Position, g.LegalMoves, check, checkmate)

	g.Position = next
	g.LegalMoves = nextLegal

	// Clear repetitions after an irreversible move: positions before it can
	// never recur. See https://www.chessprogramming.org/Irreversible_Moves
	if irreversible {
		clear(g.repetitions)
	}
	g.repetitions[g.Position.Hash]++

	g.MoveStack = append(g.MoveStack, CompletedMove{Move: m, SAN: sanStr, PriorHash: priorHash})
	log.Debugf("pushed %s (%s), halfmove clock %d", sanStr, g.Position.String(), g.Position.HalfmoveClock)

	g.refreshResult()
	return sanStr, nil
}

// MakeMoveSAN parses move against the current legal moves and applies it.
func (g *Game) MakeMoveSAN(move string) (string, error) {
	m, err := san.Decode(move, &g.Position)
	if err != nil {
		return "", err
	}
	return g.MakeMove(m)
}

// IsMoveLegal reports whether m is among the position's currently legal
// moves.
func (g *Game) IsMoveLegal(m piece.Move) bool {
	for _, lm := range g.LegalMoves.Slice() {
		if lm == m {
			return true
		}
	}
	return false
}

// IsCheckmate reports whether the side to move has no legal moves and is in
// check.
func (g *Game) IsCheckmate() bool {
	return movegen.InCheck(&g.Position) && g.LegalMoves.Len == 0
}

// IsStalemate reports whether the side to move has no legal moves and is
// not in check.
func (g *Game) IsStalemate() bool {
	return !movegen.InCheck(&g.Position) && g.LegalMoves.Len == 0
}

// IsThreefoldRepetition reports whether any position has recurred three
// times (by Zobrist key).
func (g *Game) IsThreefoldRepetition() bool {
	for _, n := range g.repetitions {
		if n >= 3 {
			return true
		}
	}
	return false
}

// IsFivefoldRepetition reports whether any position has recurred five
// times, the mandatory (non-claimable) draw threshold.
func (g *Game) IsFivefoldRepetition() bool {
	for _, n := range g.repetitions {
		if n >= 5 {
			return true
		}
	}
	return false
}

// CanClaimFiftyMoveDraw reports whether the halfmove clock has reached 100
// (50 full moves without a pawn move or capture).
func (g *Game) CanClaimFiftyMoveDraw() bool { return g.Position.HalfmoveClock >= 100 }

// IsSeventyFiveMoveRule reports whether the halfmove clock has reached 150,
// the mandatory (non-claimable) draw threshold.
func (g *Game) IsSeventyFiveMoveRule() bool { return g.Position.HalfmoveClock >= 150 }

// IsInsufficientMaterial reports whether neither side has enough material
// to deliver checkmate under any sequence of legal moves:
//   - bare king vs. bare king
//   - king and a single minor piece vs. bare king
//   - king and bishop vs. king and bishop, both bishops on the same color
//   - king and knight vs. king and knight
func (g *Game) IsInsufficientMaterial() bool {
	dark := uint64(0xAA55AA55AA55AA55)
	material := g.calculateMaterial()

	if material == 0 {
		return true
	}
	if material == 3 && g.Position.PieceBB(piece.White, piece.Pawn) == 0 &&
		g.Position.PieceBB(piece.Black, piece.Pawn) == 0 {
		return true
	}
	if material == 6 {
		wb := g.Position.PieceBB(piece.White, piece.Bishop)
		bb := g.Position.PieceBB(piece.Black, piece.Bishop)
		sameBishops := wb != 0 && bb != 0 &&
			((wb&dark != 0 && bb&dark != 0) || (wb&dark == 0 && bb&dark == 0))
		knights := g.Position.PieceBB(piece.White, piece.Knight) != 0 &&
			g.Position.PieceBB(piece.Black, piece.Knight) != 0
		return sameBishops || knights
	}
	return false
}

// calculateMaterial sums a fixed per-piece weight (knight/bishop=3, rook=5,
// queen=9) across both sides, used only to classify insufficient-material
// cases, not for evaluation.
func (g *Game) calculateMaterial() int {
	weights := map[piece.Piece]int{
		piece.Knight: 3, piece.Bishop: 3, piece.Rook: 5, piece.Queen: 9,
	}
	total := 0
	for pc, w := range weights {
		for _, c := range [2]piece.Color{piece.White, piece.Black} {
			total += countBits(g.Position.PieceBB(c, pc)) * w
		}
	}
	return total
}

func countBits(bb uint64) int {
	n := 0
	for bb != 0 {
		bb &= bb - 1
		n++
	}
	return n
}

// refreshResult recomputes Result/Termination from the current position.
func (g *Game) refreshResult() {
	switch {
	case g.IsCheckmate():
		g.Termination = TerminationCheckmate
		if g.Position.Side == piece.White {
			g.Result = ResultBlackWins
		} else {
			g.Result = ResultWhiteWins
		}
	case g.IsStalemate():
		g.Result, g.Termination = ResultDraw, TerminationStalemate
	case g.IsFivefoldRepetition():
		g.Result, g.Termination = ResultDraw, TerminationFivefoldRepetition
	case g.IsSeventyFiveMoveRule():
		g.Result, g.Termination = ResultDraw, TerminationSeventyFiveMoveRule
	case g.IsInsufficientMaterial():
		g.Result, g.Termination = ResultDraw, TerminationInsufficientMaterial
	default:
		g.Result, g.Termination = ResultOngoing, TerminationNone
	}
}

// CanClaimDraw reports whether the side to move may claim a draw under the
// threefold-repetition or fifty-move rules (as opposed to the mandatory
// fivefold/seventy-five-move thresholds, which refreshResult already
// applies automatically).
func (g *Game) CanClaimDraw() bool {
	return g.IsThreefoldRepetition() || g.CanClaimFiftyMoveDraw()
}

// ClaimDraw records a draw claimed under the threefold-repetition or
// fifty-move rule. Returns a GameError (GameAlreadyOver or CannotClaimDraw)
// if the game has already ended or neither condition currently holds.
func (g *Game) ClaimDraw() error {
	if g.Result != ResultOngoing {
		return &GameError{Kind: GameAlreadyOver, Reason: "game: game already over"}
	}
	switch {
	case g.IsThreefoldRepetition():
		g.Result, g.Termination = ResultDraw, TerminationThreefoldRepetition
	case g.CanClaimFiftyMoveDraw():
		g.Result, g.Termination = ResultDraw, TerminationFiftyMoveRule
	default:
		return &GameError{Kind: CannotClaimDraw, Reason: "game: no claimable draw condition is met"}
	}
	return nil
}

// String renders Result the way a PGN tag pair would: "1-0", "0-1",
// "1/2-1/2", or "*" while the game is undecided.
func (r Result) String() string {
	switch r {
	case ResultWhiteWins:
		return "1-0"
	case ResultBlackWins:
		return "0-1"
	case ResultDraw:
		return "1/2-1/2"
	default:
		return "*"
	}
}
