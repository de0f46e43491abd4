package model

// ProductID indexes into a ProductTable. It is never reused to mean
// anything else, unlike the source system's overloaded string-or-zero
// column (spec.md §9, "Dynamic product keys").
type ProductID int

// Assignment is what a machine is doing during one hour: either
// producing a specific product, or Idle. It is a tagged variant, not a
// sentinel ProductID value, so a caller cannot accidentally treat IDLE
// as product index 0.
type Assignment struct {
	product ProductID
	idle    bool
}

// Idle is the distinguished non-product assignment.
func Idle() Assignment { return Assignment{idle: true} }

// Producing builds an assignment of the given product.
func Producing(id ProductID) Assignment { return Assignment{product: id} }

// IsIdle reports whether this assignment is IDLE.
func (a Assignment) IsIdle() bool { return a.idle }

// Product returns the assigned product id. ok is false for IDLE.
func (a Assignment) Product() (id ProductID, ok bool) {
	if a.idle {
		return 0, false
	}
	return a.product, true
}
