package metrics

import (
	"errors"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
)

// SystemSource reads metrics from the running host via gopsutil.
type SystemSource struct{}

func NewSystemSource() *SystemSource {
	return &SystemSource{}
}

func (s *SystemSource) CPUPercent(window time.Duration) (float64, error) {
	percents, err := cpu.Percent(window, false)
	if err != nil {
		return 0, err
	}
	if len(percents) == 0 {
		return 0, errors.New("no cpu utilization reported")
	}
	return percents[0], nil
}

func (s *SystemSource) VirtualMemory() (MemoryStat, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return MemoryStat{}, err
	}
	return MemoryStat{
		Total:       vm.Total,
		Available:   vm.Available,
		Used:        vm.Used,
		UsedPercent: vm.UsedPercent,
	}, nil
}

func (s *SystemSource) DiskUsage(path string) (DiskUsageStat, error) {
	du, err := disk.Usage(path)
	if err != nil {
		return DiskUsageStat{}, err
	}
	return DiskUsageStat{
		Total:       du.Total,
		Used:        du.Used,
		Free:        du.Free,
		UsedPercent: du.UsedPercent,
	}, nil
}

// DiskIOCounters sums per-device counters into one system-wide pair.
func (s *SystemSource) DiskIOCounters() (DiskIOStat, error) {
	counters, err := disk.IOCounters()
	if err != nil {
		return DiskIOStat{}, err
	}
	if len(counters) == 0 {
		return DiskIOStat{}, errors.New("no disk devices reported io counters")
	}
	return sumIOCounters(counters), nil
}

func sumIOCounters(counters map[string]disk.IOCountersStat) DiskIOStat {
	var total DiskIOStat
	for _, c := range counters {
		total.ReadBytes += c.ReadBytes
		total.WriteBytes += c.WriteBytes
	}
	return total
}
