package generation

import (
	"math/rand"
	"testing"

	"github.com/dbisdorf/battlemap-gen/geometry"
	"github.com/stretchr/testify/require"
)

func TestObstructionsCounting(t *testing.T) {
	o := NewObstructions(5, 5)
	require.Equal(t, 25, o.UnobstructedCount())

	// Obstruct the first two rows.
	for y := 0; y < 2; y++ {
		for x := 0; x < 5; x++ {
			o.Obstruct(x, y, true)
		}
	}
	require.Equal(t, 15, o.UnobstructedCount())

	// Obstructing an already-obstructed cell must not move the count.
	o.Obstruct(0, 0, true)
	require.Equal(t, 15, o.UnobstructedCount())

	// Clearing a cell restores it.
	o.Obstruct(0, 0, false)
	require.Equal(t, 16, o.UnobstructedCount())
	o.Obstruct(0, 0, false)
	require.Equal(t, 16, o.UnobstructedCount())
}

func TestObstructionsCountInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	o := NewObstructions(8, 8)
	for i := 0; i < 500; i++ {
		o.Obstruct(rng.Intn(8), rng.Intn(8), rng.Intn(2) == 0)
		free := 0
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				if !o.IsObstructed(x, y) {
					free++
				}
			}
		}
		require.Equal(t, free, o.UnobstructedCount())
	}
}

func TestObstructionsQueries(t *testing.T) {
	o := NewObstructions(10, 10)
	o.Obstruct(4, 6, true)

	require.True(t, o.IsObstructed(4, 6))
	require.False(t, o.IsObstructed(4, 5))
	// Repeated reads of an unmodified cell agree.
	require.True(t, o.IsObstructed(4, 6))

	require.True(t, o.ObstructedRectangle(geometry.Rectangle{X1: 3, Y1: 5, X2: 5, Y2: 7}))
	require.False(t, o.ObstructedRectangle(geometry.Rectangle{X1: 0, Y1: 0, X2: 3, Y2: 5}))
}

func TestObstructionsOutOfRange(t *testing.T) {
	o := NewObstructions(4, 4)
	o.Obstruct(-1, 0, true)
	o.Obstruct(0, 99, true)
	require.Equal(t, 16, o.UnobstructedCount())
	require.True(t, o.IsObstructed(-1, 0), "cells beyond the grid count as occupied")
}

func TestFindClearTile(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	o := NewObstructions(6, 6)
	// Leave a single clear cell.
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			if x != 2 || y != 3 {
				o.Obstruct(x, y, true)
			}
		}
	}
	point, err := o.FindClearTile(rng)
	require.NoError(t, err)
	require.Equal(t, geometry.NewPoint(2, 3), point)
}

func TestFindClearTileExhausted(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	o := NewObstructions(3, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			o.Obstruct(x, y, true)
		}
	}
	_, err := o.FindClearTile(rng)
	require.ErrorIs(t, err, ErrPlacementFailed)
}

func TestFindClearRectangle(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	o := NewObstructions(64, 64)
	for i := 0; i < 5; i++ {
		rect, err := o.FindClearRectangle(3, 8, rng)
		require.NoError(t, err)
		require.GreaterOrEqual(t, rect.X1, 0)
		require.GreaterOrEqual(t, rect.Y1, 0)
		require.Less(t, rect.X2, 64)
		require.Less(t, rect.Y2, 64)
		require.GreaterOrEqual(t, rect.Width(), 7)
		require.GreaterOrEqual(t, rect.Height(), 7)
		require.False(t, o.ObstructedRectangle(rect), "returned rectangle must be clear")

		// Claim it, as the composer would, before searching again.
		for x := rect.X1; x <= rect.X2; x++ {
			for y := rect.Y1; y <= rect.Y2; y++ {
				o.Obstruct(x, y, true)
			}
		}
	}
}

func TestFindClearRectangleInfeasible(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	o := NewObstructions(8, 8)
	_, err := o.FindClearRectangle(3, 16, rng)
	require.ErrorIs(t, err, ErrInfeasible)
}

func TestFindClearRectangleExhausted(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	o := NewObstructions(20, 20)
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			o.Obstruct(x, y, true)
		}
	}
	_, err := o.FindClearRectangle(3, 16, rng)
	require.ErrorIs(t, err, ErrPlacementFailed)
}
