package repository

type ProductEntity struct {
	ID         string                   `bson:"_id"`
	Name       string                   `bson:"name"`
	Dimensions *DimensionsEntity        `bson:"dimensions,omitempty"`
	Variants   []VariantAttributeEntity `bson:"variants,omitempty"`
}

type VariantAttributeEntity struct {
	Name              string                `bson:"name"`
	DefinesDimensions bool                  `bson:"defines_dimensions"`
	Options           []VariantOptionEntity `bson:"options"`
}

type VariantOptionEntity struct {
	ID         string            `bson:"id,omitempty"`
	Value      string            `bson:"value"`
	Label      string            `bson:"label,omitempty"`
	Dimensions *DimensionsEntity `bson:"dimensions,omitempty"`
}

type UnitEntity struct {
	ID         string            `bson:"_id"`
	ProductID  string            `bson:"product_id"`
	Dimensions *DimensionsEntity `bson:"dimensions,omitempty"`
	// Variants is kept in its stored shape, usually an ordered document.
	Variants any `bson:"variants,omitempty"`
}

type DimensionsEntity struct {
	Length float64 `bson:"length"`
	Width  float64 `bson:"width"`
	Height float64 `bson:"height"`
	Weight float64 `bson:"weight"`
}
