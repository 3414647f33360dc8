package report

import (
	"context"

	"codeberg.org/mutker/hwreport/internal/field"
)

type processorReport struct {
	Brand                  field.OrUnknown[string] `json:"brand"`
	HzAdvertised           field.OrUnknown[int64]  `json:"hz_advertised"`
	HzActual               field.OrUnknown[int64]  `json:"hz_actual"`
	Arch                   field.OrUnknown[string] `json:"arch"`
	Bits                   field.OrUnknown[int]    `json:"bits"`
	Count                  field.OrUnknown[int]    `json:"count"`
	VendorID               field.OrUnknown[string] `json:"vendor_id"`
	L1DataCacheSize        field.OrUnknown[int]    `json:"l1_data_cache_size"`
	L1InstructionCacheSize field.OrUnknown[int]    `json:"l1_instruction_cache_size"`
	L2CacheSize            field.OrUnknown[int]    `json:"l2_cache_size"`
	L3CacheSize            field.OrUnknown[int]    `json:"l3_cache_size"`
	Flags                  []string                `json:"flags"`
}

// Processor reports processor identity. Every field the provider cannot
// supply renders as "Unknown"; flags fall back to an empty list.
func (r *Reporter) Processor(ctx context.Context) (any, error) {
	id := r.providers.CPU.Identity(ctx)

	flags := id.Flags
	if flags == nil {
		flags = []string{}
	}

	return processorReport{
		Brand:                  field.KnownIf(id.Brand, id.Brand != ""),
		HzAdvertised:           field.KnownIf(id.HzAdvertised, id.HzAdvertised > 0),
		HzActual:               field.KnownIf(id.HzActual, id.HzActual > 0),
		Arch:                   field.KnownIf(id.Arch, id.Arch != ""),
		Bits:                   field.KnownIf(id.Bits, id.Bits > 0),
		Count:                  field.KnownIf(id.Count, id.Count > 0),
		VendorID:               field.KnownIf(id.VendorID, id.VendorID != ""),
		L1DataCacheSize:        field.KnownIf(id.L1DataCacheSize, id.L1DataCacheSize > 0),
		L1InstructionCacheSize: field.KnownIf(id.L1InstructionCacheSize, id.L1InstructionCacheSize > 0),
		L2CacheSize:            field.KnownIf(id.L2CacheSize, id.L2CacheSize > 0),
		L3CacheSize:            field.KnownIf(id.L3CacheSize, id.L3CacheSize > 0),
		Flags:                  flags,
	}, nil
}
