package health

import (
	"errors"
	"os"
	"time"

	"go.uber.org/zap"

	"healthsnap/internal/metrics"
)

// Collector produces a Record from a metrics source. The CPU query blocks for
// the sampling window; everything else is instantaneous. The first failing
// query aborts the collection, there is no partial record.
type Collector struct {
	source   metrics.Source
	rootPath string
	window   time.Duration
	log      *zap.Logger
}

func NewCollector(source metrics.Source, rootPath string, window time.Duration, log *zap.Logger) *Collector {
	if rootPath == "" {
		rootPath = "/"
	}
	if window <= 0 {
		window = time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Collector{
		source:   source,
		rootPath: rootPath,
		window:   window,
		log:      log,
	}
}

func (c *Collector) Collect() (Record, error) {
	c.log.Debug("sampling cpu utilization", zap.Duration("window", c.window))
	started := time.Now()
	cpuPct, err := c.source.CPUPercent(c.window)
	if err != nil {
		return Record{}, &MetricsUnavailableError{Category: CategoryCPU, Err: err}
	}
	c.log.Debug("cpu sample done",
		zap.Float64("percent", cpuPct),
		zap.Duration("elapsed", time.Since(started)))

	vm, err := c.source.VirtualMemory()
	if err != nil {
		return Record{}, &MetricsUnavailableError{Category: CategoryMemory, Err: err}
	}

	du, err := c.source.DiskUsage(c.rootPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Record{}, &FilesystemNotFoundError{Path: c.rootPath, Err: err}
		}
		return Record{}, &MetricsUnavailableError{Category: CategoryDisk, Err: err}
	}

	io, err := c.source.DiskIOCounters()
	if err != nil {
		return Record{}, &MetricsUnavailableError{Category: CategoryDiskIO, Err: err}
	}

	return Record{
		Status:          StatusHealthy,
		CPUUsage:        cpuPct,
		MemoryTotal:     vm.Total,
		MemoryAvailable: vm.Available,
		MemoryUsed:      vm.Used,
		MemoryPercent:   vm.UsedPercent,
		DiskTotal:       du.Total,
		DiskUsed:        du.Used,
		DiskFree:        du.Free,
		DiskPercent:     du.UsedPercent,
		DiskReadBytes:   io.ReadBytes,
		DiskWriteBytes:  io.WriteBytes,
	}, nil
}
