package dimension

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ANGELZzz6/Hako-sub000/internal/model"
)

func d(l, w, h, wt float64) *model.Dimensions {
	return &model.Dimensions{Length: l, Width: w, Height: h, Weight: wt}
}

func sizedProduct() *model.Product {
	return &model.Product{
		ID:         "prod-1",
		Dimensions: d(20, 20, 20, 500),
		Variants: []model.VariantAttribute{
			{
				Name: "color",
				Options: []model.VariantOption{
					{Value: "red", Dimensions: d(1, 1, 1, 1)},
				},
			},
			{
				Name:              "size",
				DefinesDimensions: true,
				Options: []model.VariantOption{
					{ID: "opt-s", Value: "S", Label: "Small", Dimensions: d(10, 10, 10, 100)},
					{ID: "opt-l", Value: "L", Label: "Large", Dimensions: d(40, 30, 30, 900)},
					{ID: "opt-xl", Value: "XL", Label: "Extra large"},
				},
			},
		},
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		item       model.AppointmentItem
		want       model.Dimensions
		wantSource Source
	}{
		{
			name: "pre-resolved dimensions win",
			item: model.AppointmentItem{
				Dimensions:         d(1, 2, 3, 4),
				ComputedDimensions: d(5, 5, 5, 5),
				Product:            sizedProduct(),
			},
			want:       *d(1, 2, 3, 4),
			wantSource: SourceItem,
		},
		{
			name: "partial pre-resolved dimensions are skipped",
			item: model.AppointmentItem{
				Dimensions:         d(1, 0, 3, 4),
				ComputedDimensions: d(5, 5, 5, 5),
			},
			want:       *d(5, 5, 5, 5),
			wantSource: SourceComputed,
		},
		{
			name: "inventory unit before snapshot",
			item: model.AppointmentItem{
				Unit:     &model.InventoryUnit{Dimensions: d(7, 7, 7, 0)},
				Snapshot: &model.ProductSnapshot{Dimensions: d(8, 8, 8, 0)},
			},
			want:       *d(7, 7, 7, 0),
			wantSource: SourceUnit,
		},
		{
			name: "snapshot before variant",
			item: model.AppointmentItem{
				Snapshot: &model.ProductSnapshot{Dimensions: d(8, 8, 8, 0)},
				Product:  sizedProduct(),
				Variants: map[string]string{"size": "L"},
			},
			want:       *d(8, 8, 8, 0),
			wantSource: SourceSnapshot,
		},
		{
			name: "variant matched by label case-insensitively",
			item: model.AppointmentItem{
				Product:  sizedProduct(),
				Variants: map[string]string{"Size": "large"},
			},
			want:       *d(40, 30, 30, 900),
			wantSource: SourceVariant,
		},
		{
			name: "variant matched by option id",
			item: model.AppointmentItem{
				Product:  sizedProduct(),
				Variants: map[string]string{"size": "OPT-S"},
			},
			want:       *d(10, 10, 10, 100),
			wantSource: SourceVariant,
		},
		{
			name: "attribute not defining dimensions is ignored",
			item: model.AppointmentItem{
				Product:  sizedProduct(),
				Variants: map[string]string{"color": "red"},
			},
			want:       *d(20, 20, 20, 500),
			wantSource: SourceProduct,
		},
		{
			name: "variant option without dimensions falls through to product",
			item: model.AppointmentItem{
				Product:  sizedProduct(),
				Variants: map[string]string{"size": "XL"},
			},
			want:       *d(20, 20, 20, 500),
			wantSource: SourceProduct,
		},
		{
			name: "variant selection taken from the unit",
			item: model.AppointmentItem{
				Unit: &model.InventoryUnit{
					Variants: map[string]string{"size": "s"},
					Product:  sizedProduct(),
				},
			},
			want:       *d(10, 10, 10, 100),
			wantSource: SourceVariant,
		},
		{
			name: "unit product dimensions",
			item: model.AppointmentItem{
				Unit: &model.InventoryUnit{Product: &model.Product{Dimensions: d(11, 12, 13, 0)}},
			},
			want:       *d(11, 12, 13, 0),
			wantSource: SourceUnitProduct,
		},
		{
			name: "original product dimensions",
			item: model.AppointmentItem{
				Product:         &model.Product{},
				OriginalProduct: &model.Product{Dimensions: d(21, 22, 23, 0)},
			},
			want:       *d(21, 22, 23, 0),
			wantSource: SourceOriginalProduct,
		},
		{
			name:       "fallback when nothing is known",
			item:       model.AppointmentItem{Product: &model.Product{Dimensions: d(-1, 10, 10, 0)}},
			want:       Fallback,
			wantSource: SourceFallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Resolve(tt.item)
			assert.Equal(t, tt.want, got.Dimensions)
			assert.Equal(t, tt.wantSource, got.Source)
			assert.Equal(t, tt.wantSource == SourceFallback, got.Degraded())
		})
	}
}
