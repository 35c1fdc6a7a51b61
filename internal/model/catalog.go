package model

type VariantOption struct {
	ID         string
	Value      string
	Label      string
	Dimensions *Dimensions
}

type VariantAttribute struct {
	Name              string
	DefinesDimensions bool
	Options           []VariantOption
}

type Product struct {
	ID         string
	Name       string
	Dimensions *Dimensions
	Variants   []VariantAttribute
}

// InventoryUnit is an individually tracked physical unit of a product.
type InventoryUnit struct {
	ID         string
	ProductID  string
	Dimensions *Dimensions
	Variants   map[string]string
	Product    *Product
}

// ProductSnapshot is the product as it looked at purchase time.
type ProductSnapshot struct {
	ProductID  string
	Name       string
	Dimensions *Dimensions
}
