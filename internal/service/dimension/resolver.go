// Package dimension resolves the physical size of a purchased line item
// from the first valid source in a fixed priority order.
package dimension

import (
	"strings"

	"github.com/ANGELZzz6/Hako-sub000/internal/model"
)

type Source string

const (
	SourceItem            Source = "item"
	SourceComputed        Source = "computed"
	SourceUnit            Source = "unit"
	SourceSnapshot        Source = "snapshot"
	SourceVariant         Source = "variant"
	SourceProduct         Source = "product"
	SourceUnitProduct     Source = "unit_product"
	SourceOriginalProduct Source = "original_product"
	SourceFallback        Source = "fallback"
)

// Fallback is used when no source carries valid dimensions.
var Fallback = model.Dimensions{Length: 15, Width: 15, Height: 15, Weight: 0}

type Resolution struct {
	Dimensions model.Dimensions
	Source     Source
}

func (r Resolution) Degraded() bool { return r.Source == SourceFallback }

// Resolve never fails; it degrades to Fallback.
func Resolve(item model.AppointmentItem) Resolution {
	if model.ValidPtr(item.Dimensions) {
		return Resolution{*item.Dimensions, SourceItem}
	}
	if model.ValidPtr(item.ComputedDimensions) {
		return Resolution{*item.ComputedDimensions, SourceComputed}
	}
	if item.Unit != nil && model.ValidPtr(item.Unit.Dimensions) {
		return Resolution{*item.Unit.Dimensions, SourceUnit}
	}
	if item.Snapshot != nil && model.ValidPtr(item.Snapshot.Dimensions) {
		return Resolution{*item.Snapshot.Dimensions, SourceSnapshot}
	}
	if d, ok := variantDimensions(item); ok {
		return Resolution{d, SourceVariant}
	}
	if item.Product != nil && model.ValidPtr(item.Product.Dimensions) {
		return Resolution{*item.Product.Dimensions, SourceProduct}
	}
	if item.Unit != nil && item.Unit.Product != nil && model.ValidPtr(item.Unit.Product.Dimensions) {
		return Resolution{*item.Unit.Product.Dimensions, SourceUnitProduct}
	}
	if item.OriginalProduct != nil && model.ValidPtr(item.OriginalProduct.Dimensions) {
		return Resolution{*item.OriginalProduct.Dimensions, SourceOriginalProduct}
	}

	return Resolution{Fallback, SourceFallback}
}

func variantDimensions(item model.AppointmentItem) (model.Dimensions, bool) {
	product := catalogProduct(item)
	if product == nil {
		return model.Dimensions{}, false
	}

	selected := item.Variants
	if len(selected) == 0 && item.Unit != nil {
		selected = item.Unit.Variants
	}
	if len(selected) == 0 {
		return model.Dimensions{}, false
	}

	for _, attr := range product.Variants {
		if !attr.DefinesDimensions {
			continue
		}

		value, ok := lookup(selected, attr.Name)
		if !ok {
			continue
		}

		for _, opt := range attr.Options {
			if matches(opt, value) && model.ValidPtr(opt.Dimensions) {
				return *opt.Dimensions, true
			}
		}
	}

	return model.Dimensions{}, false
}

func catalogProduct(item model.AppointmentItem) *model.Product {
	switch {
	case item.Product != nil:
		return item.Product
	case item.Unit != nil && item.Unit.Product != nil:
		return item.Unit.Product
	default:
		return item.OriginalProduct
	}
}

func lookup(selected map[string]string, name string) (string, bool) {
	if v, ok := selected[name]; ok {
		return v, true
	}
	for k, v := range selected {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return "", false
}

func matches(opt model.VariantOption, value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}

	return strings.EqualFold(opt.Value, value) ||
		strings.EqualFold(opt.Label, value) ||
		strings.EqualFold(opt.ID, value)
}
