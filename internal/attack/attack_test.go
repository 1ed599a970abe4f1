package attack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKnightAttacksFromCorner(t *testing.T) {
	// a1 (sq 0) knight attacks exactly b3 (17) and c2 (10).
	want := uint64(1)<<17 | uint64(1)<<10
	assert.Equal(t, want, Knight[0])
}

func TestKingAttacksFromCorner(t *testing.T) {
	// a1 (sq 0) king attacks a2(8), b1(1), b2(9).
	want := uint64(1)<<8 | uint64(1)<<1 | uint64(1)<<9
	assert.Equal(t, want, King[0])
}

func TestPawnAttacksWhiteVsBlack(t *testing.T) {
	// White pawn on e4 (28) attacks d5(35) and f5(37).
	want := uint64(1)<<35 | uint64(1)<<37
	assert.Equal(t, want, Pawn[0][28])

	// Black pawn on e4 (28) attacks d3(19) and f3(21).
	want = uint64(1)<<19 | uint64(1)<<21
	assert.Equal(t, want, Pawn[1][28])
}

func TestRookAttacksEmptyBoardFromA1(t *testing.T) {
	got := RookAttacks(0, 0)
	// Every square on the a-file (except a1) or rank 1 (except a1).
	var want uint64
	for i := 1; i < 8; i++ {
		want |= uint64(1) << uint(i*8) // a-file
		want |= uint64(1) << uint(i)   // rank 1
	}
	assert.Equal(t, want, got)
}

func TestBishopAttacksBlockedByOccupancy(t *testing.T) {
	// Bishop on a1 (0), blocker on c3 (18): ray should stop at c3, not
	// continue to d4/e5/etc.
	occ := uint64(1) << 18
	got := BishopAttacks(0, occ)
	want := uint64(1)<<9 | uint64(1)<<18 // b2, c3
	assert.Equal(t, want, got)
}

func TestQueenAttacksIsUnion(t *testing.T) {
	sq, occ := 27, uint64(0) // d4, empty board
	assert.Equal(t, BishopAttacks(sq, occ)|RookAttacks(sq, occ), QueenAttacks(sq, occ))
}
