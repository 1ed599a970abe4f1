package bitops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPopCount(t *testing.T) {
	assert.Equal(t, 0, PopCount(0))
	assert.Equal(t, 1, PopCount(1))
	assert.Equal(t, 64, PopCount(^uint64(0)))
	assert.Equal(t, 8, PopCount(Rank1))
}

func TestLSBAndPopLSB(t *testing.T) {
	bb := uint64(0b1010_1000)
	assert.Equal(t, 3, LSB(bb))

	sq := PopLSB(&bb)
	assert.Equal(t, 3, sq)
	assert.Equal(t, uint64(0b1010_0000), bb)
}

func TestDirectionalShiftsRespectFileBoundaries(t *testing.T) {
	aFile := uint64(1) << 0 // a1
	assert.Equal(t, uint64(0), West(aFile))
	assert.Equal(t, uint64(0), SouthWest(aFile))
	assert.Equal(t, uint64(0), NorthWest(aFile))

	hFile := uint64(1) << 7 // h1
	assert.Equal(t, uint64(0), East(hFile))
	assert.Equal(t, uint64(0), SouthEast(hFile))
	assert.Equal(t, uint64(0), NorthEast(hFile))
}

func TestNorthSouthRoundTrip(t *testing.T) {
	e4 := uint64(1) << 28
	assert.Equal(t, e4, South(North(e4)))
}
