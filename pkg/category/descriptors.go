package category

import (
	"github.com/sysvitals/eventscope/pkg/event"
)

// descriptors is the static category table, in collection order.
var descriptors = []Descriptor{
	{
		Name:       SystemErrors,
		Strategy:   StrategyPaginated,
		LogName:    "System",
		Severities: []event.Severity{event.SeverityCritical, event.SeverityError},
		Headers:    EventHeaders,
		Normalize:  normalizeGeneric,
	},
	{
		Name:       ApplicationErrors,
		Strategy:   StrategyPaginated,
		LogName:    "Application",
		Severities: []event.Severity{event.SeverityCritical, event.SeverityError},
		Headers:    EventHeaders,
		Normalize:  normalizeGeneric,
	},
	{
		Name:      KernelPowerEvents,
		Strategy:  StrategyPaginated,
		LogName:   "System",
		EventIDs:  []uint32{41, 6008},
		Headers:   EventHeaders,
		Normalize: normalizeKernelPower,
	},
	{
		Name:      BugCheckEvents,
		Strategy:  StrategyPaginated,
		LogName:   "System",
		EventIDs:  []uint32{1001},
		Headers:   BugCheckHeaders,
		Normalize: normalizeBugCheck,
	},
	{
		Name:      HardwareErrors,
		Strategy:  StrategyFixedIDs,
		LogName:   "System",
		EventIDs:  []uint32{7, 11, 18, 19, 46, 47, 51},
		Headers:   EventHeaders,
		Normalize: normalizeHardware,
	},
	{
		Name:      ReliabilityRecords,
		Strategy:  StrategyFixedIDs,
		LogName:   "System",
		EventIDs:  []uint32{19, 20, 1000, 1001, 1002, 6008},
		Headers:   EventHeaders,
		Normalize: normalizeReliability,
	},
	{
		Name:     Minidumps,
		Strategy: StrategyFilesystem,
		Headers:  MinidumpHeaders,
	},
}

// All returns the category descriptors in collection order.
func All() []Descriptor {
	out := make([]Descriptor, len(descriptors))
	copy(out, descriptors)
	return out
}

// Names returns the category names in collection order.
func Names() []string {
	names := make([]string, len(descriptors))
	for i, d := range descriptors {
		names[i] = d.Name
	}
	return names
}

// Get returns the descriptor for the named category.
func Get(name string) (Descriptor, bool) {
	for _, d := range descriptors {
		if d.Name == name {
			return d, true
		}
	}
	return Descriptor{}, false
}
