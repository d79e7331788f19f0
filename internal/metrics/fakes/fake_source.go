// Package fakes provides a canned metrics source for tests.
package fakes

import (
	"time"

	"healthsnap/internal/metrics"
)

// FakeSource returns preset values and records how it was called.
type FakeSource struct {
	CPUPercentValue  float64
	CPUPercentErr    error
	CPUPercentWindow time.Duration
	CPUPercentCalls  int

	VirtualMemoryValue metrics.MemoryStat
	VirtualMemoryErr   error
	VirtualMemoryCalls int

	DiskUsageValue metrics.DiskUsageStat
	DiskUsageErr   error
	DiskUsagePath  string
	DiskUsageCalls int

	DiskIOCountersValue metrics.DiskIOStat
	DiskIOCountersErr   error
	DiskIOCountersCalls int
}

func (f *FakeSource) CPUPercent(window time.Duration) (float64, error) {
	f.CPUPercentCalls++
	f.CPUPercentWindow = window
	if f.CPUPercentErr != nil {
		return 0, f.CPUPercentErr
	}
	return f.CPUPercentValue, nil
}

func (f *FakeSource) VirtualMemory() (metrics.MemoryStat, error) {
	f.VirtualMemoryCalls++
	if f.VirtualMemoryErr != nil {
		return metrics.MemoryStat{}, f.VirtualMemoryErr
	}
	return f.VirtualMemoryValue, nil
}

func (f *FakeSource) DiskUsage(path string) (metrics.DiskUsageStat, error) {
	f.DiskUsageCalls++
	f.DiskUsagePath = path
	if f.DiskUsageErr != nil {
		return metrics.DiskUsageStat{}, f.DiskUsageErr
	}
	return f.DiskUsageValue, nil
}

func (f *FakeSource) DiskIOCounters() (metrics.DiskIOStat, error) {
	f.DiskIOCountersCalls++
	if f.DiskIOCountersErr != nil {
		return metrics.DiskIOStat{}, f.DiskIOCountersErr
	}
	return f.DiskIOCountersValue, nil
}
