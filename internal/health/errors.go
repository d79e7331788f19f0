package health

import "fmt"

// Category names the metric group an OS query belongs to. It is what failure
// diagnostics report.
type Category string

const (
	CategoryCPU    Category = "cpu"
	CategoryMemory Category = "memory"
	CategoryDisk   Category = "disk"
	CategoryDiskIO Category = "disk io"
)

// MetricsUnavailableError reports that the host OS denied or could not supply
// one category of metrics.
type MetricsUnavailableError struct {
	Category Category
	Err      error
}

func (e *MetricsUnavailableError) Error() string {
	return fmt.Sprintf("%s metrics unavailable: %v", e.Category, e.Err)
}

func (e *MetricsUnavailableError) Unwrap() error { return e.Err }

// FilesystemNotFoundError reports that the disk-usage target path does not
// exist or is not a mounted filesystem.
type FilesystemNotFoundError struct {
	Path string
	Err  error
}

func (e *FilesystemNotFoundError) Error() string {
	return fmt.Sprintf("filesystem not found at %s: %v", e.Path, e.Err)
}

func (e *FilesystemNotFoundError) Unwrap() error { return e.Err }
