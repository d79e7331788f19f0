// Package health assembles one-shot host health snapshots.
package health

// StatusHealthy is the only status the snapshot ever carries; no health
// evaluation is performed.
const StatusHealthy = "healthy"

// Record is the flat snapshot of system metrics produced by one collection
// cycle. Field order is the serialization order.
type Record struct {
	Status          string  `json:"status"`
	CPUUsage        float64 `json:"cpu_usage"`
	MemoryTotal     uint64  `json:"memory_total"`
	MemoryAvailable uint64  `json:"memory_available"`
	MemoryUsed      uint64  `json:"memory_used"`
	MemoryPercent   float64 `json:"memory_percent"`
	DiskTotal       uint64  `json:"disk_total"`
	DiskUsed        uint64  `json:"disk_used"`
	DiskFree        uint64  `json:"disk_free"`
	DiskPercent     float64 `json:"disk_percent"`
	DiskReadBytes   uint64  `json:"disk_read_bytes"`
	DiskWriteBytes  uint64  `json:"disk_write_bytes"`
}
