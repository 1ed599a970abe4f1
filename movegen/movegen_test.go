package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmttn/chess-sub000/piece"
	"github.com/tmttn/chess-sub000/position"
)

func startPos(t *testing.T) position.Position {
	t.Helper()
	p, err := position.ParseFEN(position.StartFEN)
	require.NoError(t, err)
	return p
}

func TestLegalStartingPositionHasTwentyMoves(t *testing.T) {
	p := startPos(t)
	legal := Legal(p)
	assert.Equal(t, 20, legal.Len)
}

func TestInCheckFalseAtStart(t *testing.T) {
	p := startPos(t)
	assert.False(t, InCheck(&p))
}

func TestAttackedDetectsPawnAttack(t *testing.T) {
	// White pawn on e4 attacks d5 and f5.
	p, err := position.ParseFEN("4k3/8/8/8/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, Attacked(&p, piece.White, piece.D5))
	assert.True(t, Attacked(&p, piece.White, piece.F5))
	assert.False(t, Attacked(&p, piece.White, piece.D3))
}

func TestScholarsMateLeavesBlackCheckmated(t *testing.T) {
	p := startPos(t)
	moves := []piece.Move{
		piece.NewMove(piece.E2, piece.E4, piece.Quiet),
		piece.NewMove(piece.E7, piece.E5, piece.Quiet),
		piece.NewMove(piece.F1, piece.C4, piece.Quiet),
		piece.NewMove(piece.B8, piece.C6, piece.Quiet),
		piece.NewMove(piece.D1, piece.H5, piece.Quiet),
		piece.NewMove(piece.G8, piece.F6, piece.Quiet),
		piece.NewMove(piece.H5, piece.F7, piece.Quiet),
	}
	for _, m := range moves {
		p.MakeMove(m)
	}
	assert.True(t, InCheck(&p))
	assert.Equal(t, 0, Legal(p).Len)
}

func TestStalemateHasNoLegalMovesAndNoCheck(t *testing.T) {
	p, err := position.ParseFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	assert.False(t, InCheck(&p))
	assert.Equal(t, 0, Legal(p).Len)
}

func TestCastlingMovesAppearWhenRightsAndPathClear(t *testing.T) {
	p, err := position.ParseFEN("r3k2r/pppqbppp/2np1n2/4p3/4P3/2NP1N2/PPPQBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	legal := Legal(p)

	hasKingSide, hasQueenSide := false, false
	for _, m := range legal.Slice() {
		if m.Kind() == piece.Castle && m.From() == piece.E1 {
			if m.To() == piece.G1 {
				hasKingSide = true
			}
			if m.To() == piece.C1 {
				hasQueenSide = true
			}
		}
	}
	assert.True(t, hasKingSide)
	assert.True(t, hasQueenSide)
}

func TestCastlingBlockedWhilePassThroughAttacked(t *testing.T) {
	// Black rook on f8 attacks down the open f-file onto f1, the square the
	// white king must pass through to castle kingside.
	p, err := position.ParseFEN("4kr2/8/8/8/8/8/8/4K2R w K - 0 1")
	require.NoError(t, err)
	legal := Legal(p)
	for _, m := range legal.Slice() {
		assert.Falsef(t, m.Kind() == piece.Castle, "castling should not be legal while f1 is attacked")
	}
}
