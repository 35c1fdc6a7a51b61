package repository

import (
	"github.com/samber/lo"

	"github.com/ANGELZzz6/Hako-sub000/internal/model"
)

func ProductToModel(e *ProductEntity) *model.Product {
	if e == nil {
		return nil
	}

	return &model.Product{
		ID:         e.ID,
		Name:       e.Name,
		Dimensions: DimensionsToModel(e.Dimensions),
		Variants: lo.Map(e.Variants, func(a VariantAttributeEntity, _ int) model.VariantAttribute {
			return model.VariantAttribute{
				Name:              a.Name,
				DefinesDimensions: a.DefinesDimensions,
				Options: lo.Map(a.Options, func(o VariantOptionEntity, _ int) model.VariantOption {
					return model.VariantOption{
						ID:         o.ID,
						Value:      o.Value,
						Label:      o.Label,
						Dimensions: DimensionsToModel(o.Dimensions),
					}
				}),
			}
		}),
	}
}

func ProductFromModel(p *model.Product) *ProductEntity {
	if p == nil {
		return nil
	}

	return &ProductEntity{
		ID:         p.ID,
		Name:       p.Name,
		Dimensions: DimensionsFromModel(p.Dimensions),
		Variants: lo.Map(p.Variants, func(a model.VariantAttribute, _ int) VariantAttributeEntity {
			return VariantAttributeEntity{
				Name:              a.Name,
				DefinesDimensions: a.DefinesDimensions,
				Options: lo.Map(a.Options, func(o model.VariantOption, _ int) VariantOptionEntity {
					return VariantOptionEntity{
						ID:         o.ID,
						Value:      o.Value,
						Label:      o.Label,
						Dimensions: DimensionsFromModel(o.Dimensions),
					}
				}),
			}
		}),
	}
}

func UnitToModel(e *UnitEntity) *model.InventoryUnit {
	if e == nil {
		return nil
	}

	return &model.InventoryUnit{
		ID:         e.ID,
		ProductID:  e.ProductID,
		Dimensions: DimensionsToModel(e.Dimensions),
		Variants:   VariantsToModel(e.Variants),
	}
}

func DimensionsToModel(e *DimensionsEntity) *model.Dimensions {
	if e == nil {
		return nil
	}
	return &model.Dimensions{Length: e.Length, Width: e.Width, Height: e.Height, Weight: e.Weight}
}

func DimensionsFromModel(d *model.Dimensions) *DimensionsEntity {
	if d == nil {
		return nil
	}
	return &DimensionsEntity{Length: d.Length, Width: d.Width, Height: d.Height, Weight: d.Weight}
}
