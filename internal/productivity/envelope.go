// Package productivity implements the ProductivityBuilder (spec.md
// §4.2): tile a machine's weekly shift mask across the horizon and
// scale by its ideal run rate.
package productivity

import (
	"sync"

	"prodsched/internal/model"
)

// Envelope is E[m]: the maximum units machine m can produce each hour,
// length model.EnvelopeLength. Zero exactly at idle hours.
type Envelope []float64

// Build computes E[m] for a single machine.
func Build(m *model.Machine) Envelope {
	env := make(Envelope, model.EnvelopeLength)
	for t := range env {
		env[t] = m.Mask[t%model.HoursPerWeek] * m.IdealRunRate
	}
	return env
}

// BuildAll computes E[m] for every machine in the fleet, keyed by
// machine id. Envelope construction is independent per machine
// (spec.md §5: "parallelized... across machines... optional"), so this
// fans out one goroutine per machine; each writes only its own slot
// and results are assembled after every goroutine finishes, so the
// outcome is identical to the sequential version regardless of
// scheduling order.
func BuildAll(fleet *model.Fleet) map[int]Envelope {
	machines := fleet.Machines()
	envelopes := make([]Envelope, len(machines))

	var wg sync.WaitGroup
	wg.Add(len(machines))
	for i, m := range machines {
		go func(i int, m *model.Machine) {
			defer wg.Done()
			envelopes[i] = Build(m)
		}(i, m)
	}
	wg.Wait()

	out := make(map[int]Envelope, len(machines))
	for i, m := range machines {
		out[m.ID] = envelopes[i]
	}
	return out
}
