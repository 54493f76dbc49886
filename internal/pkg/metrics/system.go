package metrics

import (
	"context"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

const (
	defaultSystemInterval = 5 * time.Second
	cpuSampleWindow       = time.Second
)

var (
	SystemCPUUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "system_cpu_usage_percent",
			Help: "CPU usage percentage",
		},
	)

	SystemMemoryUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "system_memory_usage_bytes",
			Help: "System memory usage in bytes",
		},
	)

	ApplicationMemoryUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "application_memory_usage_bytes",
			Help: "Application memory usage in bytes (Go heap allocation)",
		},
	)
)

// SystemCollector снимает метрики хоста; запускается как фоновая задача pkg/background.
type SystemCollector struct {
	interval time.Duration
}

func NewSystemCollector(interval time.Duration) *SystemCollector {
	if interval <= 0 {
		interval = defaultSystemInterval
	}
	return &SystemCollector{interval: interval}
}

func (s *SystemCollector) TTL() time.Duration {
	return s.interval
}

func (s *SystemCollector) Info() string {
	return "system metrics"
}

// Do не возвращает ошибок gopsutil: недоступная метрика хоста не должна ронять прогрев воркера.
func (s *SystemCollector) Do(ctx context.Context) error {
	cpuPercent, err := cpu.PercentWithContext(ctx, cpuSampleWindow, false)
	if err == nil && len(cpuPercent) > 0 {
		SystemCPUUsage.Set(cpuPercent[0])
	}

	vmStat, err := mem.VirtualMemoryWithContext(ctx)
	if err == nil {
		SystemMemoryUsage.Set(float64(vmStat.Used))
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	ApplicationMemoryUsage.Set(float64(m.Alloc))

	return nil
}
