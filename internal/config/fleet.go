package config

import (
	"sort"

	"prodsched/internal/model"
)

// BuildFleet wires a validated Config into a model.Fleet: one
// model.Machine per configured machine id, with its shift mask
// resolved by name and its producible products assigned against the
// given product table. Machines are registered in ascending id order
// — c.Machines is a map, and Go randomizes map-iteration order, which
// would otherwise make Fleet.Machines()'s order (and therefore every
// RNG-indexed sample MoveGenerator/InitialSolutionBuilder draw from
// it) vary across runs of the same config file.
func (c *Config) BuildFleet(products *model.ProductTable) (*model.Fleet, error) {
	fleet := model.NewFleet()

	ids := make([]int, 0, len(c.Machines))
	for id := range c.Machines {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		me := c.Machines[id]
		stats, ok := c.MachineStats[id]
		if !ok {
			continue // already rejected by Validate; defensive here
		}
		mask, err := BuildShiftMask(me.ShiftPattern, c.ShiftPatterns)
		if err != nil {
			return nil, err
		}
		m := model.NewMachine(id, stats.IdealRunRate, mask)
		if err := fleet.AddMachine(m); err != nil {
			return nil, err
		}
		for _, name := range me.Products {
			pid, ok := products.ID(name)
			if !ok {
				continue // product not in this run's forecast; nothing to assign
			}
			if err := fleet.AssignProduct(id, pid); err != nil {
				return nil, err
			}
		}
	}
	if err := fleet.Validate(); err != nil {
		return nil, err
	}
	return fleet, nil
}
