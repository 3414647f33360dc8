package cpu

import (
	"runtime"
	"sort"
	"strings"

	"github.com/klauspost/cpuid/v2"
)

type statsReader interface {
	read() (Stats, error)
}

type frequencyReader interface {
	read() ([]Frequency, error)
}

type identityReader interface {
	read() Identity
}

type cpuidIdentity struct{}

func (cpuidIdentity) read() Identity {
	info := cpuid.CPU

	id := Identity{
		Brand:                  strings.TrimSpace(info.BrandName),
		HzAdvertised:           info.Hz,
		Arch:                   archName(runtime.GOARCH),
		Bits:                   archBits(runtime.GOARCH),
		Count:                  info.LogicalCores,
		VendorID:               info.VendorString,
		L1DataCacheSize:        info.Cache.L1D,
		L1InstructionCacheSize: info.Cache.L1I,
		L2CacheSize:            info.Cache.L2,
		L3CacheSize:            info.Cache.L3,
		Flags:                  normalizeFlags(info.FeatureSet()),
	}
	if id.Count <= 0 {
		id.Count = runtime.NumCPU()
	}

	return id
}

var archNames = map[string]string{
	"amd64":    "X86_64",
	"386":      "X86_32",
	"arm64":    "ARM_8",
	"arm":      "ARM_7",
	"ppc64":    "PPC_64",
	"ppc64le":  "PPC_64",
	"riscv64":  "RISCV_64",
	"s390x":    "S390X",
	"mips64":   "MIPS_64",
	"mips64le": "MIPS_64",
	"loong64":  "LOONG_64",
}

func archName(goarch string) string {
	return archNames[goarch]
}

func archBits(goarch string) int {
	switch goarch {
	case "386", "arm", "mips", "mipsle", "wasm":
		return 32
	case "":
		return 0
	default:
		if _, ok := archNames[goarch]; ok {
			return 64
		}
		return 0
	}
}

// normalizeFlags lowercases, deduplicates and sorts feature names.
func normalizeFlags(features []string) []string {
	seen := make(map[string]struct{}, len(features))
	flags := make([]string, 0, len(features))

	for _, f := range features {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" {
			continue
		}
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		flags = append(flags, f)
	}
	sort.Strings(flags)

	return flags
}
