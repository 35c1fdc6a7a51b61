package slotgrid

import "github.com/ANGELZzz6/Hako-sub000/internal/model"

const gridSide = 3

type Voxel struct {
	X, Y, Z   int
	ProductID string
	ItemID    string
	Unit      int
}

// VoxelGrid is a visual layout of a pack, not a geometric placement.
type VoxelGrid struct {
	Voxels   []Voxel
	Filled   int
	Overflow int
}

// Voxelize lays each unit of each product out as a run of contiguous unit
// cubes, filling x first, then y, then z.
func Voxelize(products []model.PackedProduct) VoxelGrid {
	var grid VoxelGrid

	idx := 0
	for _, pp := range products {
		for unit := range pp.Quantity {
			for range pp.CalculatedSlots {
				if idx >= model.LockerSlots {
					grid.Overflow++
					continue
				}

				grid.Voxels = append(grid.Voxels, Voxel{
					X:         idx % gridSide,
					Y:         (idx / gridSide) % gridSide,
					Z:         idx / (gridSide * gridSide),
					ProductID: pp.ProductID,
					ItemID:    pp.ItemID,
					Unit:      unit,
				})
				idx++
			}
		}
	}
	grid.Filled = len(grid.Voxels)

	return grid
}
