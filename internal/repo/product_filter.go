package repo

// ProductFilter narrows the product list. Nil bounds are ignored.
type ProductFilter struct {
	Name     string
	MinPrice *float64
	MaxPrice *float64
	MinQty   *int
	MaxQty   *int
	LowStock bool
	Offset   *int
	Limit    *int
}
