package slotgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ANGELZzz6/Hako-sub000/internal/model"
)

func TestVoxelize(t *testing.T) {
	t.Parallel()

	t.Run("fills x then y then z", func(t *testing.T) {
		t.Parallel()

		grid := Voxelize([]model.PackedProduct{
			{ProductID: "p1", CalculatedSlots: 4, Quantity: 1},
		})

		require.Len(t, grid.Voxels, 4)
		assert.Equal(t, Voxel{X: 0, Y: 0, Z: 0, ProductID: "p1"}, grid.Voxels[0])
		assert.Equal(t, Voxel{X: 2, Y: 0, Z: 0, ProductID: "p1"}, grid.Voxels[2])
		assert.Equal(t, Voxel{X: 0, Y: 1, Z: 0, ProductID: "p1"}, grid.Voxels[3])
		assert.Zero(t, grid.Overflow)
	})

	t.Run("units occupy contiguous runs", func(t *testing.T) {
		t.Parallel()

		grid := Voxelize([]model.PackedProduct{
			{ProductID: "p1", CalculatedSlots: 8, Quantity: 2},
			{ProductID: "p2", CalculatedSlots: 1, Quantity: 1},
		})

		require.Equal(t, 17, grid.Filled)
		assert.Equal(t, 0, grid.Voxels[7].Unit)
		assert.Equal(t, 1, grid.Voxels[8].Unit)
		assert.Equal(t, "p2", grid.Voxels[16].ProductID)
		assert.Equal(t, Voxel{X: 1, Y: 2, Z: 1, ProductID: "p2"}, grid.Voxels[16])
	})

	t.Run("oversize pack reports overflow", func(t *testing.T) {
		t.Parallel()

		grid := Voxelize([]model.PackedProduct{
			{ProductID: "p1", CalculatedSlots: 64, Quantity: 1},
		})

		assert.Equal(t, 27, grid.Filled)
		assert.Equal(t, 37, grid.Overflow)
		assert.Equal(t, 2, grid.Voxels[26].Z)
	})
}
