package health

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"healthsnap/internal/metrics"
	"healthsnap/internal/metrics/fakes"
)

func buildSource() *fakes.FakeSource {
	return &fakes.FakeSource{
		CPUPercentValue: 12.5,
		VirtualMemoryValue: metrics.MemoryStat{
			Total:       16000000000,
			Available:   8000000000,
			Used:        8000000000,
			UsedPercent: 50.0,
		},
		DiskUsageValue: metrics.DiskUsageStat{
			Total:       500000000000,
			Used:        250000000000,
			Free:        250000000000,
			UsedPercent: 50.0,
		},
		DiskIOCountersValue: metrics.DiskIOStat{
			ReadBytes:  1000,
			WriteBytes: 2000,
		},
	}
}

func TestCollectAssemblesRecord(t *testing.T) {
	source := buildSource()
	collector := NewCollector(source, "/", time.Second, zap.NewNop())

	rec, err := collector.Collect()
	require.NoError(t, err)

	expected := Record{
		Status:          StatusHealthy,
		CPUUsage:        12.5,
		MemoryTotal:     16000000000,
		MemoryAvailable: 8000000000,
		MemoryUsed:      8000000000,
		MemoryPercent:   50.0,
		DiskTotal:       500000000000,
		DiskUsed:        250000000000,
		DiskFree:        250000000000,
		DiskPercent:     50.0,
		DiskReadBytes:   1000,
		DiskWriteBytes:  2000,
	}
	assert.Equal(t, expected, rec)
}

func TestCollectStatusIsAlwaysHealthy(t *testing.T) {
	source := buildSource()
	source.CPUPercentValue = 99.9
	source.VirtualMemoryValue.UsedPercent = 98.7
	source.DiskUsageValue.UsedPercent = 100.0

	collector := NewCollector(source, "/", time.Second, zap.NewNop())
	rec, err := collector.Collect()
	require.NoError(t, err)
	assert.Equal(t, StatusHealthy, rec.Status)
}

func TestCollectPassesWindowAndPathThrough(t *testing.T) {
	source := buildSource()
	collector := NewCollector(source, "/var/data", 250*time.Millisecond, zap.NewNop())

	_, err := collector.Collect()
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, source.CPUPercentWindow)
	assert.Equal(t, "/var/data", source.DiskUsagePath)
	assert.Equal(t, 1, source.CPUPercentCalls)
	assert.Equal(t, 1, source.VirtualMemoryCalls)
	assert.Equal(t, 1, source.DiskUsageCalls)
	assert.Equal(t, 1, source.DiskIOCountersCalls)
}

func TestNewCollectorDefaults(t *testing.T) {
	source := buildSource()
	collector := NewCollector(source, "", 0, nil)

	_, err := collector.Collect()
	require.NoError(t, err)

	assert.Equal(t, time.Second, source.CPUPercentWindow)
	assert.Equal(t, "/", source.DiskUsagePath)
}

func TestCollectCPUFailure(t *testing.T) {
	source := buildSource()
	source.CPUPercentErr = errors.New("perf interface denied")

	collector := NewCollector(source, "/", time.Second, zap.NewNop())
	rec, err := collector.Collect()

	var unavailable *MetricsUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, CategoryCPU, unavailable.Category)
	assert.Equal(t, Record{}, rec)

	// the first failure aborts, nothing else is queried
	assert.Equal(t, 0, source.VirtualMemoryCalls)
	assert.Equal(t, 0, source.DiskUsageCalls)
	assert.Equal(t, 0, source.DiskIOCountersCalls)
}

func TestCollectMemoryFailure(t *testing.T) {
	source := buildSource()
	source.VirtualMemoryErr = errors.New("sysinfo not permitted")

	collector := NewCollector(source, "/", time.Second, zap.NewNop())
	rec, err := collector.Collect()

	var unavailable *MetricsUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, CategoryMemory, unavailable.Category)
	assert.Equal(t, Record{}, rec)
	assert.Equal(t, 0, source.DiskIOCountersCalls)
}

func TestCollectDiskUsageMissingRoot(t *testing.T) {
	source := buildSource()
	source.DiskUsageErr = os.ErrNotExist

	collector := NewCollector(source, "/mnt/gone", time.Second, zap.NewNop())
	_, err := collector.Collect()

	var notFound *FilesystemNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "/mnt/gone", notFound.Path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCollectDiskUsageDenied(t *testing.T) {
	source := buildSource()
	source.DiskUsageErr = errors.New("statfs not permitted")

	collector := NewCollector(source, "/", time.Second, zap.NewNop())
	_, err := collector.Collect()

	var unavailable *MetricsUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, CategoryDisk, unavailable.Category)
}

func TestCollectIOCountersFailure(t *testing.T) {
	source := buildSource()
	source.DiskIOCountersErr = errors.New("diskstats unreadable")

	collector := NewCollector(source, "/", time.Second, zap.NewNop())
	_, err := collector.Collect()

	var unavailable *MetricsUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, CategoryDiskIO, unavailable.Category)
}

func TestErrorMessagesNameTheCategory(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		err  error
		want string
	}{
		{&MetricsUnavailableError{Category: CategoryCPU, Err: cause}, "cpu metrics unavailable: boom"},
		{&MetricsUnavailableError{Category: CategoryMemory, Err: cause}, "memory metrics unavailable: boom"},
		{&MetricsUnavailableError{Category: CategoryDiskIO, Err: cause}, "disk io metrics unavailable: boom"},
		{&FilesystemNotFoundError{Path: "/", Err: cause}, "filesystem not found at /: boom"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.Error())
		assert.ErrorIs(t, tt.err, cause)
	}
}
