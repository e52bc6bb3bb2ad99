package point

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionRoundTrips(t *testing.T) {
	for _, d := range Directions {
		assert.Equal(t, d, d.Invert().Invert(), "double invert of %v", d)
		assert.Equal(t, d, d.RotateCW().RotateCW().RotateCW().RotateCW(), "four rotations of %v", d)
		assert.Equal(t, d, d.RotateCW().RotateCCW(), "cw then ccw of %v", d)
		assert.Equal(t, d, d.RotateCCW().RotateCW(), "ccw then cw of %v", d)
	}
}

func TestDirectionInvert(t *testing.T) {
	tests := []struct {
		in, want Direction
	}{
		{North, South},
		{East, West},
		{South, North},
		{West, East},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.in.Invert(), "%v.Invert()", tt.in)
	}
}

func TestDirectionRotateCW(t *testing.T) {
	assert.Equal(t, East, North.RotateCW())
	assert.Equal(t, South, East.RotateCW())
	assert.Equal(t, West, South.RotateCW())
	assert.Equal(t, North, West.RotateCW())
}

func TestTryApply(t *testing.T) {
	tests := []struct {
		name string
		dir  Direction
		from Point
		want Point
		ok   bool
	}{
		{"north from top edge", North, Pt(3, 0), Pt(3, 0), false},
		{"west from left edge", West, Pt(0, 4), Pt(0, 4), false},
		{"north", North, Pt(3, 2), Pt(3, 1), true},
		{"east is unbounded", East, Pt(99, 0), Pt(100, 0), true},
		{"south is unbounded", South, Pt(0, 99), Pt(0, 100), true},
		{"west", West, Pt(1, 1), Pt(0, 1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.dir.TryApply(tt.from)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDirectionOf(t *testing.T) {
	for _, d := range Directions {
		got, ok := DirectionOf(d.Delta())
		assert.True(t, ok)
		assert.Equal(t, d, got)
	}
	_, ok := DirectionOf(Pt(1, 1))
	assert.False(t, ok)
}

func TestRandomDirectionIsDeterministicPerSeed(t *testing.T) {
	rng1 := rand.New(rand.NewSource(7))
	rng2 := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		assert.Equal(t, RandomDirection(rng1), RandomDirection(rng2))
	}
}

func TestAdjacent(t *testing.T) {
	origin := Pt(5, 5)
	assert.True(t, origin.Adjacent(Pt(6, 5)))
	assert.True(t, origin.Adjacent(Pt(5, 4)))
	assert.False(t, origin.Adjacent(Pt(6, 6)), "diagonal")
	assert.False(t, origin.Adjacent(Pt(5, 5)), "same tile")
	assert.False(t, origin.Adjacent(Pt(8, 7)), "3 xor 2 is 1 but not adjacent")
}

func TestIndexRoundTrip(t *testing.T) {
	p := Pt(3, 4)
	assert.Equal(t, 43, p.Index(10))
	assert.Equal(t, p, FromIndex(43, 10))
	assert.True(t, p.In(4, 5))
	assert.False(t, p.In(3, 5))
	assert.False(t, Pt(-1, 0).In(4, 5))
}
