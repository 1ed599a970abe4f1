package zobrist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmttn/chess-sub000/piece"
	"github.com/tmttn/chess-sub000/position"
)

func TestHashIsDeterministicAcrossCalls(t *testing.T) {
	p, err := position.ParseFEN(position.StartFEN)
	require.NoError(t, err)

	a := Hash(&p)
	b := Hash(&p)
	assert.Equal(t, a, b)
}

func TestHashDiffersAfterAMove(t *testing.T) {
	p, err := position.ParseFEN(position.StartFEN)
	require.NoError(t, err)
	before := Hash(&p)

	p.MakeMove(piece.NewMove(piece.E2, piece.E4, piece.Quiet))
	after := Hash(&p)

	assert.NotEqual(t, before, after)
}

func TestHashMatchesAfterReturningToSamePosition(t *testing.T) {
	p, err := position.ParseFEN(position.StartFEN)
	require.NoError(t, err)
	start := Hash(&p)

	p.MakeMove(piece.NewMove(piece.G1, piece.F3, piece.Quiet))
	p.MakeMove(piece.NewMove(piece.G8, piece.F6, piece.Quiet))
	p.MakeMove(piece.NewMove(piece.F3, piece.G1, piece.Quiet))
	p.MakeMove(piece.NewMove(piece.F6, piece.G8, piece.Quiet))

	assert.Equal(t, start, Hash(&p), "returning to the start position must hash identically")
}

func TestHashIgnoresUnreachableEnPassantTarget(t *testing.T) {
	// e2e4 with no black pawn adjacent to e4 must not set an ep target, so
	// the resulting hash must equal a position parsed directly without one.
	withoutEP, err := position.ParseFEN("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1")
	require.NoError(t, err)

	fromMove, err := position.ParseFEN(position.StartFEN)
	require.NoError(t, err)
	fromMove.MakeMove(piece.NewMove(piece.E2, piece.E4, piece.Quiet))

	assert.Equal(t, Hash(&withoutEP), Hash(&fromMove))
}

// TestIncrementalHashMatchesFromScratch plays a sequence exercising an
// en-passant capture, a promotion with capture, castling and a quiet rook
// move, and asserts p.Hash (maintained incrementally by MakeMove) never
// drifts from Hash(&p) (recomputed from scratch) at any step.
func TestIncrementalHashMatchesFromScratch(t *testing.T) {
	p, err := position.ParseFEN("r3k2r/pPp2p1p/8/3Pp3/8/8/1p3PPP/R3K2R w KQkq e6 0 1")
	require.NoError(t, err)
	assert.Equal(t, Hash(&p), p.Hash, "freshly parsed position")

	moves := []piece.Move{
		piece.NewMove(piece.D5, piece.E6, piece.EnPassant),
		piece.NewPromotion(piece.B2, piece.A1, piece.PromoQueen),
		piece.NewMove(piece.E1, piece.G1, piece.Castle),
		piece.NewMove(piece.A8, piece.B8, piece.Quiet),
	}
	for _, m := range moves {
		p.MakeMove(m)
		assert.Equal(t, Hash(&p), p.Hash, "after move %v", m)
	}
}

func TestIncrementalHashMatchesFromScratchAfterCopy(t *testing.T) {
	p, err := position.ParseFEN(position.StartFEN)
	require.NoError(t, err)

	next := p
	next.MakeMove(piece.NewMove(piece.E2, piece.E4, piece.Quiet))

	assert.Equal(t, Hash(&next), next.Hash)
	assert.Equal(t, Hash(&p), p.Hash, "copy-make must not mutate the source position's hash")
}
