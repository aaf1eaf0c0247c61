package observability

import (
	"log/slog"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/shirou/gopsutil/process"
)

// ProcessStats describes the server process as seen by the OS and the Go runtime.
type ProcessStats struct {
	PID        int32     `json:"pid"`
	Status     string    `json:"status"`
	CPUPercent float64   `json:"cpu_percent"`
	RSSBytes   uint64    `json:"rss_bytes"`
	Goroutines int       `json:"goroutines"`
	AllocMemMb uint64    `json:"alloc_mem_mb"`
	NumGC      uint32    `json:"num_gc"`
	SampledAt  time.Time `json:"sampled_at"`
}

// MonitoringManager keeps the latest process sample for the stats endpoint.
type MonitoringManager struct {
	log     *slog.Logger
	mu      sync.RWMutex
	proc    *process.Process
	latest  ProcessStats
	metrics *Metrics
}

func NewMonitoringManager(log *slog.Logger, metrics *Metrics) (*MonitoringManager, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, err
	}
	return &MonitoringManager{log: log, proc: p, metrics: metrics}, nil
}

// Sample reads CPU, memory and status of the current process and stores the result.
func (mm *MonitoringManager) Sample() (ProcessStats, error) {
	memInfo, err := mm.proc.MemoryInfo()
	if err != nil {
		return ProcessStats{}, err
	}
	cpuPercent, err := mm.proc.CPUPercent()
	if err != nil {
		return ProcessStats{}, err
	}
	status, err := mm.proc.Status()
	if err != nil {
		return ProcessStats{}, err
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	stats := ProcessStats{
		PID:        mm.proc.Pid,
		Status:     status,
		CPUPercent: cpuPercent,
		RSSBytes:   memInfo.RSS,
		Goroutines: runtime.NumGoroutine(),
		AllocMemMb: m.Alloc / 1024 / 1024,
		NumGC:      m.NumGC,
		SampledAt:  time.Now().UTC(),
	}

	mm.mu.Lock()
	mm.latest = stats
	mm.mu.Unlock()

	mm.metrics.Process(stats)
	mm.log.Debug("Process stats sampled",
		"cpu", stats.CPUPercent,
		"rss", stats.RSSBytes,
		"goroutines", stats.Goroutines,
	)
	return stats, nil
}

func (mm *MonitoringManager) GetLatest() ProcessStats {
	mm.mu.RLock()
	defer mm.mu.RUnlock()
	return mm.latest
}
