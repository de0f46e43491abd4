package model

import "fmt"

// ProductTable is the fixed universe P of products, name-indexed.
// Names are arbitrary strings and are preserved verbatim: the source
// prototype mixed "Product_3" and "product_3" in the same forecast
// (_examples/original_source/src/lab_demo/config.py, SALES_FORECAST)
// and we do not case-fold or otherwise normalize to paper over that.
type ProductTable struct {
	names []string
	index map[string]ProductID
}

// NewProductTable builds a table from an ordered, duplicate-free list
// of product names. Order is preserved and becomes each product's
// ProductID, so table construction is the one place product identity
// is assigned.
func NewProductTable(names []string) (*ProductTable, error) {
	t := &ProductTable{
		names: make([]string, len(names)),
		index: make(map[string]ProductID, len(names)),
	}
	copy(t.names, names)
	for i, n := range names {
		if _, dup := t.index[n]; dup {
			return nil, fmt.Errorf("product table: duplicate product name %q", n)
		}
		t.index[n] = ProductID(i)
	}
	return t, nil
}

// Len returns |P|.
func (t *ProductTable) Len() int { return len(t.names) }

// Name returns the stable name for a ProductID.
func (t *ProductTable) Name(id ProductID) string { return t.names[id] }

// ID looks up a product by name.
func (t *ProductTable) ID(name string) (ProductID, bool) {
	id, ok := t.index[name]
	return id, ok
}

// All returns every ProductID in table order.
func (t *ProductTable) All() []ProductID {
	out := make([]ProductID, len(t.names))
	for i := range t.names {
		out[i] = ProductID(i)
	}
	return out
}
