// Package memory reads virtual memory and swap usage.
package memory

import (
	"context"
	"runtime"

	"codeberg.org/mutker/hwreport/internal/errors"
	"github.com/shirou/gopsutil/v4/mem"
)

// Virtual is physical memory usage in bytes. Optional fields are nil when
// the platform does not expose them.
type Virtual struct {
	Total     uint64
	Available uint64
	Used      uint64
	Free      uint64
	Active    *uint64
	Inactive  *uint64
	Buffers   *uint64
	Cached    *uint64
	Shared    *uint64
	Slab      *uint64
}

// Swap is swap usage in bytes. Sin and Sout are cumulative bytes swapped in
// and out since boot.
type Swap struct {
	Total uint64
	Used  uint64
	Free  uint64
	Sin   uint64
	Sout  uint64
}

type optionalField int

const (
	fieldActive optionalField = iota
	fieldInactive
	fieldBuffers
	fieldCached
	fieldShared
	fieldSlab
)

// platformFields lists the optional fields each kernel reports.
var platformFields = map[string][]optionalField{
	"linux":   {fieldActive, fieldInactive, fieldBuffers, fieldCached, fieldShared, fieldSlab},
	"darwin":  {fieldActive, fieldInactive},
	"freebsd": {fieldActive, fieldInactive, fieldBuffers, fieldCached},
	"openbsd": {fieldActive, fieldInactive, fieldBuffers, fieldCached},
}

type source interface {
	virtual(ctx context.Context) (*mem.VirtualMemoryStat, error)
	swap(ctx context.Context) (*mem.SwapMemoryStat, error)
}

type gopsutilSource struct{}

func (gopsutilSource) virtual(ctx context.Context) (*mem.VirtualMemoryStat, error) {
	return mem.VirtualMemoryWithContext(ctx)
}

func (gopsutilSource) swap(ctx context.Context) (*mem.SwapMemoryStat, error) {
	return mem.SwapMemoryWithContext(ctx)
}

// Provider is the host memory provider.
type Provider struct {
	src  source
	goos string
}

func New() *Provider {
	return &Provider{src: gopsutilSource{}, goos: runtime.GOOS}
}

// Virtual returns physical memory usage.
func (p *Provider) Virtual(ctx context.Context) (Virtual, error) {
	vm, err := p.src.virtual(ctx)
	if err != nil {
		return Virtual{}, errors.New().Wrap(errors.ErrProviderFailed, err)
	}

	v := Virtual{
		Total:     vm.Total,
		Available: vm.Available,
		Used:      vm.Used,
		Free:      vm.Free,
	}

	for _, f := range platformFields[p.goos] {
		switch f {
		case fieldActive:
			v.Active = ptr(vm.Active)
		case fieldInactive:
			v.Inactive = ptr(vm.Inactive)
		case fieldBuffers:
			v.Buffers = ptr(vm.Buffers)
		case fieldCached:
			v.Cached = ptr(vm.Cached)
		case fieldShared:
			v.Shared = ptr(vm.Shared)
		case fieldSlab:
			v.Slab = ptr(vm.Slab)
		}
	}

	return v, nil
}

// Swap returns swap usage.
func (p *Provider) Swap(ctx context.Context) (Swap, error) {
	sm, err := p.src.swap(ctx)
	if err != nil {
		return Swap{}, errors.New().Wrap(errors.ErrProviderFailed, err)
	}

	return Swap{
		Total: sm.Total,
		Used:  sm.Used,
		Free:  sm.Free,
		Sin:   sm.Sin,
		Sout:  sm.Sout,
	}, nil
}

func ptr(v uint64) *uint64 {
	return &v
}
