package slotgrid

import (
	"math"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ANGELZzz6/Hako-sub000/internal/model"
)

func cube(side float64) model.Dimensions {
	return model.Dimensions{Length: side, Width: side, Height: side, Weight: 1}
}

func TestCalculateSlots(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		dims model.Dimensions
		want int
	}{
		{name: "40 cube fills the grid", dims: cube(40), want: 27},
		{name: "16 cube takes two per axis", dims: cube(16), want: 8},
		{name: "15 cube is a single slot", dims: cube(15), want: 1},
		{name: "flat box", dims: model.Dimensions{Length: 45, Width: 30, Height: 1}, want: 6},
		{name: "oversize unit", dims: cube(60), want: 64},
		{name: "invalid dimensions cost one slot", dims: model.Dimensions{Length: 10}, want: 1},
		{name: "astronomic sides saturate per axis", dims: cube(1e300), want: 28 * 28 * 28},
		{name: "one astronomic side stays oversize", dims: model.Dimensions{Length: 1e300, Width: 10, Height: 10}, want: 28},
		{name: "infinite side is invalid", dims: model.Dimensions{Length: math.Inf(1), Width: 10, Height: 10}, want: 1},
		{name: "NaN side is invalid", dims: model.Dimensions{Length: math.NaN(), Width: 10, Height: 10}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, CalculateSlots(tt.dims))
		})
	}
}

func TestSplitProductsIntoLockers(t *testing.T) {
	t.Parallel()

	// 10 slots: 1x2x5 cells.
	tenSlots := model.Dimensions{Length: 15, Width: 30, Height: 75}

	type testCase struct {
		name   string
		items  []Item
		assert func(t *testing.T, packs []Pack)
	}

	tests := []testCase{
		{
			name: "four ten-slot items split two and two in input order",
			items: []Item{
				{ItemID: "a", ProductID: "p1", Dimensions: tenSlots, Quantity: 1},
				{ItemID: "b", ProductID: "p2", Dimensions: tenSlots, Quantity: 1},
				{ItemID: "c", ProductID: "p3", Dimensions: tenSlots, Quantity: 1},
				{ItemID: "d", ProductID: "p4", Dimensions: tenSlots, Quantity: 1},
			},
			assert: func(t *testing.T, packs []Pack) {
				require.Len(t, packs, 2)
				assert.Equal(t, 20, packs[0].TotalUsedSlots)
				assert.Equal(t, 20, packs[1].TotalUsedSlots)
				assert.Equal(t, "a", packs[0].Products[0].ItemID)
				assert.Equal(t, "b", packs[0].Products[1].ItemID)
				assert.Equal(t, "c", packs[1].Products[0].ItemID)
				assert.Equal(t, "d", packs[1].Products[1].ItemID)
			},
		},
		{
			name: "quantity is split across lockers by whole units",
			items: []Item{
				{ItemID: "a", ProductID: "p1", Dimensions: cube(16), Quantity: 5},
			},
			assert: func(t *testing.T, packs []Pack) {
				require.Len(t, packs, 2)
				assert.Equal(t, 3, packs[0].Products[0].Quantity)
				assert.Equal(t, 24, packs[0].TotalUsedSlots)
				assert.Equal(t, 2, packs[1].Products[0].Quantity)
				assert.Equal(t, 16, packs[1].TotalUsedSlots)
			},
		},
		{
			name: "oversize unit gets a dedicated flagged locker",
			items: []Item{
				{ItemID: "small", ProductID: "p1", Dimensions: cube(15), Quantity: 2},
				{ItemID: "huge", ProductID: "p2", Dimensions: cube(60), Quantity: 1},
				{ItemID: "tail", ProductID: "p3", Dimensions: cube(15), Quantity: 1},
			},
			assert: func(t *testing.T, packs []Pack) {
				require.Len(t, packs, 3)
				assert.False(t, packs[0].Oversize)
				assert.Equal(t, 2, packs[0].TotalUsedSlots)

				assert.True(t, packs[1].Oversize)
				assert.Equal(t, 64, packs[1].TotalUsedSlots)
				require.Len(t, packs[1].Products, 1)
				assert.Equal(t, "huge", packs[1].Products[0].ItemID)

				assert.False(t, packs[2].Oversize)
				assert.Equal(t, "tail", packs[2].Products[0].ItemID)
			},
		},
		{
			name: "astronomic unit is packed alone instead of dividing by zero",
			items: []Item{
				{ItemID: "planet", ProductID: "p1", Dimensions: cube(1e300), Quantity: 2},
			},
			assert: func(t *testing.T, packs []Pack) {
				require.Len(t, packs, 2)
				for _, p := range packs {
					assert.True(t, p.Oversize)
					assert.Greater(t, p.TotalUsedSlots, model.LockerSlots)
					assert.Equal(t, math.MaxFloat64, p.Products[0].Volume)
				}
			},
		},
		{
			name: "zero quantity lines are skipped",
			items: []Item{
				{ItemID: "a", ProductID: "p1", Dimensions: cube(15), Quantity: 0},
			},
			assert: func(t *testing.T, packs []Pack) {
				assert.Empty(t, packs)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.assert(t, SplitProductsIntoLockers(tt.items))
		})
	}
}

func TestSplitNeverOverfillsALocker(t *testing.T) {
	t.Parallel()

	faker := gofakeit.New(42)

	for range 50 {
		items := make([]Item, faker.Number(1, 12))
		for i := range items {
			items[i] = Item{
				ItemID:    faker.UUID(),
				ProductID: faker.UUID(),
				Dimensions: model.Dimensions{
					Length: faker.Float64Range(1, 70),
					Width:  faker.Float64Range(1, 70),
					Height: faker.Float64Range(1, 70),
				},
				Quantity: faker.Number(1, 4),
			}
		}

		report := NewPacker(PolicyDedicated).Split(items)

		placed := 0
		for _, p := range report.Packs {
			assert.Equal(t, TotalSlots(p.Products), p.TotalUsedSlots)
			if p.TotalUsedSlots > model.LockerSlots {
				require.True(t, p.Oversize)
				require.Equal(t, 1, p.Units())
			} else {
				assert.False(t, p.Oversize)
			}
			placed += p.Units()
		}

		want := 0
		for _, it := range items {
			want += it.Quantity
		}
		assert.Equal(t, want, placed)
	}
}

func TestSplitRejectPolicy(t *testing.T) {
	t.Parallel()

	report := NewPacker(PolicyReject).Split([]Item{
		{ItemID: "huge", ProductID: "p1", Dimensions: cube(60), Quantity: 2},
		{ItemID: "ok", ProductID: "p2", Dimensions: cube(30), Quantity: 1, Unresolved: true},
	})

	require.Len(t, report.Packs, 1)
	assert.Equal(t, 8, report.Packs[0].TotalUsedSlots)
	require.Len(t, report.Rejected, 1)
	assert.Equal(t, "huge", report.Rejected[0].ItemID)
	assert.Empty(t, report.Oversized)
	require.Len(t, report.Unresolved, 1)
	assert.True(t, report.Degraded())
}

func TestReportEfficiency(t *testing.T) {
	t.Parallel()

	report := NewPacker("").Split([]Item{
		{ItemID: "a", ProductID: "p1", Dimensions: cube(40), Quantity: 1},
		{ItemID: "b", ProductID: "p2", Dimensions: cube(60), Quantity: 1},
	})

	require.Len(t, report.Packs, 2)
	assert.InDelta(t, 100.0, report.Packs[0].Efficiency(), 1e-9)
	assert.InDelta(t, 100.0, report.Efficiency(), 1e-9)
	assert.Equal(t, 27+64, report.UsedSlots())
}

func TestLockerFits(t *testing.T) {
	t.Parallel()

	var f model.Fitter = NewLocker(19)

	assert.True(t, f.Fits(cube(16)))
	assert.False(t, f.Fits(model.Dimensions{Length: 45, Width: 45, Height: 15}))

	l := NewLocker(0)
	require.True(t, l.Take(cube(30)))
	require.True(t, l.Take(cube(30)))
	assert.Equal(t, 16, l.Used())
	assert.Equal(t, 11, l.Free())
}
