package model

import "fmt"

// ShiftMask is a weekly 7x24 grid of values in [0,1], row-major by
// weekday (0=Monday), flattened to 168 hourly slots.
type ShiftMask [HoursPerWeek]float64

// Machine is identified by a stable integer id. ShiftMask and
// IdealRunRate come from the machine-stats / shift-pattern
// configuration (spec.md §6); Products is the assigned subset P_m.
type Machine struct {
	ID           int
	IdealRunRate float64
	Mask         ShiftMask
	products     map[ProductID]struct{}
	productOrder []ProductID // assignment order, kept for deterministic move sampling
}

// NewMachine constructs a machine with no products assigned yet; use
// Fleet.AddMachine to register it (duplicate-id checked) and
// Fleet.AssignProduct to populate P_m (duplicate-assignment checked).
func NewMachine(id int, idealRunRate float64, mask ShiftMask) *Machine {
	return &Machine{
		ID:           id,
		IdealRunRate: idealRunRate,
		Mask:         mask,
		products:     make(map[ProductID]struct{}),
	}
}

// Produces reports whether p is in P_m.
func (m *Machine) Produces(p ProductID) bool {
	_, ok := m.products[p]
	return ok
}

// Products returns P_m in assignment order. The order is config-file
// order, not arbitrary map order: the move generator indexes into this
// slice by a sampled integer, and spec.md §8 invariant 5 requires that
// sampling to be reproducible under a fixed seed, which a map iteration
// order cannot guarantee.
func (m *Machine) Products() []ProductID {
	out := make([]ProductID, len(m.productOrder))
	copy(out, m.productOrder)
	return out
}

// Fleet is a registry of machines. It replaces the source prototype's
// package-level `seen_machine_ids` set (original_source/machine.py)
// with an instance-owned registry, per the "no process-global state"
// redesign note in spec.md §9.
type Fleet struct {
	byID map[int]*Machine
	ids  []int // insertion order, for deterministic iteration
}

// NewFleet creates an empty machine registry.
func NewFleet() *Fleet {
	return &Fleet{byID: make(map[int]*Machine)}
}

// AddMachine registers a machine. Returns ErrDuplicateMachineID if the
// id was already registered.
func (f *Fleet) AddMachine(m *Machine) error {
	if _, dup := f.byID[m.ID]; dup {
		return fmt.Errorf("%w: %d", ErrDuplicateMachineID, m.ID)
	}
	f.byID[m.ID] = m
	f.ids = append(f.ids, m.ID)
	return nil
}

// AssignProduct adds product p to machine id's producible set. Returns
// ErrDuplicateProductAssignment if p is already assigned to that
// machine (original_source/machine.py: add_product).
func (f *Fleet) AssignProduct(machineID int, p ProductID) error {
	m, ok := f.byID[machineID]
	if !ok {
		return fmt.Errorf("fleet: unknown machine id %d", machineID)
	}
	if m.Produces(p) {
		return fmt.Errorf("%w: machine %d, product %d", ErrDuplicateProductAssignment, machineID, p)
	}
	m.products[p] = struct{}{}
	m.productOrder = append(m.productOrder, p)
	return nil
}

// Machines returns every registered machine, in registration order.
func (f *Fleet) Machines() []*Machine {
	out := make([]*Machine, len(f.ids))
	for i, id := range f.ids {
		out[i] = f.byID[id]
	}
	return out
}

// Get looks up a machine by id.
func (f *Fleet) Get(id int) (*Machine, bool) {
	m, ok := f.byID[id]
	return m, ok
}

// Len returns the number of registered machines.
func (f *Fleet) Len() int { return len(f.ids) }

// Validate ensures every registered machine has at least one
// producible product (spec.md §7: empty_product_set). Called before
// handing the fleet to the solver.
func (f *Fleet) Validate() error {
	for _, id := range f.ids {
		if len(f.byID[id].products) == 0 {
			return fmt.Errorf("%w: machine %d", ErrEmptyProductSet, id)
		}
	}
	return nil
}
