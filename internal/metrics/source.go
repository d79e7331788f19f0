// Package metrics is the boundary to the host OS system-introspection
// interfaces. It exposes the four queries the snapshot needs and nothing else.
package metrics

import "time"

// MemoryStat holds virtual-memory statistics in bytes.
type MemoryStat struct {
	Total       uint64
	Available   uint64
	Used        uint64
	UsedPercent float64
}

// DiskUsageStat holds usage statistics for a single mounted filesystem.
type DiskUsageStat struct {
	Total       uint64
	Used        uint64
	Free        uint64
	UsedPercent float64
}

// DiskIOStat holds system-wide cumulative IO byte counters since boot.
type DiskIOStat struct {
	ReadBytes  uint64
	WriteBytes uint64
}

// Source supplies host metrics. CPUPercent blocks for the given sampling
// window; the other queries return immediately.
type Source interface {
	CPUPercent(window time.Duration) (float64, error)
	VirtualMemory() (MemoryStat, error)
	DiskUsage(path string) (DiskUsageStat, error)
	DiskIOCounters() (DiskIOStat, error)
}
