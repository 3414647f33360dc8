package report

import (
	"context"

	"codeberg.org/mutker/hwreport/internal/field"
)

type memoryReport struct {
	Memory     virtualMemory `json:"memory"`
	SwapMemory swapMemory    `json:"swap_memory"`
}

type virtualMemory struct {
	Total     field.OrNull[uint64] `json:"total"`
	Available field.OrNull[uint64] `json:"available"`
	Used      field.OrNull[uint64] `json:"used"`
	Free      field.OrNull[uint64] `json:"free"`
	Active    field.OrNull[uint64] `json:"active"`
	Inactive  field.OrNull[uint64] `json:"inactive"`
	Buffers   field.OrNull[uint64] `json:"buffers"`
	Cached    field.OrNull[uint64] `json:"cached"`
	Shared    field.OrNull[uint64] `json:"shared"`
	Slab      field.OrNull[uint64] `json:"slab"`
}

type swapMemory struct {
	Total field.OrNull[uint64] `json:"total"`
	Used  field.OrNull[uint64] `json:"used"`
	Free  field.OrNull[uint64] `json:"free"`
	Sin   field.OrNull[uint64] `json:"sin"`
	Sout  field.OrNull[uint64] `json:"sout"`
}

// Memory reports virtual memory and swap. Fields the platform does not
// expose render as null; a failed swap read nulls the whole swap section.
func (r *Reporter) Memory(ctx context.Context) (any, error) {
	vm, err := r.providers.Memory.Virtual(ctx)
	if err != nil {
		return nil, err
	}

	report := memoryReport{
		Memory: virtualMemory{
			Total:     field.Present(vm.Total),
			Available: field.Present(vm.Available),
			Used:      field.Present(vm.Used),
			Free:      field.Present(vm.Free),
			Active:    field.FromPtr(vm.Active),
			Inactive:  field.FromPtr(vm.Inactive),
			Buffers:   field.FromPtr(vm.Buffers),
			Cached:    field.FromPtr(vm.Cached),
			Shared:    field.FromPtr(vm.Shared),
			Slab:      field.FromPtr(vm.Slab),
		},
	}

	swap, err := r.providers.Memory.Swap(ctx)
	if err != nil {
		r.log.Debug().Err(err).Msg("Swap unavailable")
		return report, nil
	}

	report.SwapMemory = swapMemory{
		Total: field.Present(swap.Total),
		Used:  field.Present(swap.Used),
		Free:  field.Present(swap.Free),
		Sin:   field.Present(swap.Sin),
		Sout:  field.Present(swap.Sout),
	}

	return report, nil
}
