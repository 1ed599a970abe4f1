package uci

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmttn/chess-sub000/piece"
	"github.com/tmttn/chess-sub000/position"
)

func TestEncodeQuietMove(t *testing.T) {
	m := piece.NewMove(piece.E2, piece.E4, piece.Quiet)
	assert.Equal(t, "e2e4", Encode(m))
}

func TestEncodeCastling(t *testing.T) {
	m := piece.NewMove(piece.E1, piece.G1, piece.Castle)
	assert.Equal(t, "e1g1", Encode(m))
}

func TestEncodePromotion(t *testing.T) {
	m := piece.NewPromotion(piece.E7, piece.E8, piece.PromoQueen)
	assert.Equal(t, "e7e8q", Encode(m))
}

func TestParseRoundTrip(t *testing.T) {
	p, err := position.ParseFEN(position.StartFEN)
	require.NoError(t, err)

	m, err := Parse("e2e4", &p)
	require.NoError(t, err)
	assert.Equal(t, "e2e4", Encode(m))
}

func TestParseRejectsIllegalMove(t *testing.T) {
	p, err := position.ParseFEN(position.StartFEN)
	require.NoError(t, err)

	_, err = Parse("e2e5", &p)
	assert.Error(t, err)
}

func TestParseMalformedString(t *testing.T) {
	p, err := position.ParseFEN(position.StartFEN)
	require.NoError(t, err)

	_, err = Parse("e2", &p)
	assert.Error(t, err)
}
