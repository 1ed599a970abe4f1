package piece

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorOpposite(t *testing.T) {
	assert.Equal(t, Black, White.Opposite())
	assert.Equal(t, White, Black.Opposite())
}

func TestSquareFileRank(t *testing.T) {
	assert.Equal(t, 0, A1.File())
	assert.Equal(t, 0, A1.Rank())
	assert.Equal(t, 7, H8.File())
	assert.Equal(t, 7, H8.Rank())
	assert.Equal(t, 4, E4.File())
	assert.Equal(t, 3, E4.Rank())
}

func TestSquareString(t *testing.T) {
	assert.Equal(t, "a1", A1.String())
	assert.Equal(t, "e4", E4.String())
	assert.Equal(t, "h8", H8.String())
}

func TestParseSquare(t *testing.T) {
	sq, ok := ParseSquare("e4")
	require.True(t, ok)
	assert.Equal(t, E4, sq)

	_, ok = ParseSquare("z9")
	assert.False(t, ok)

	_, ok = ParseSquare("e")
	assert.False(t, ok)
}

func TestCastlingRightsHas(t *testing.T) {
	r := WhiteKingSide | BlackQueenSide
	assert.True(t, r.Has(WhiteKingSide))
	assert.True(t, r.Has(BlackQueenSide))
	assert.False(t, r.Has(WhiteQueenSide))
	assert.False(t, r.Has(BlackKingSide))
}

func TestMoveEncoding(t *testing.T) {
	m := NewMove(E2, E4, Quiet)
	assert.Equal(t, E2, m.From())
	assert.Equal(t, E4, m.To())
	assert.Equal(t, Quiet, m.Kind())

	promo := NewPromotion(E7, E8, PromoQueen)
	assert.Equal(t, E7, promo.From())
	assert.Equal(t, E8, promo.To())
	assert.Equal(t, Promotion, promo.Kind())
	assert.Equal(t, PromoQueen, promo.Promo())
	assert.Equal(t, Queen, promo.Promo().Piece())
}

func TestMoveListPush(t *testing.T) {
	var l MoveList
	l.Push(NewMove(A1, A2, Quiet))
	l.Push(NewMove(B1, B2, Quiet))
	assert.Equal(t, 2, l.Len)
	assert.Len(t, l.Slice(), 2)
}
