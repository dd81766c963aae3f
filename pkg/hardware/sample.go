package hardware

import (
	"math"
	"time"
)

// Fallback readings used when a probe cannot read a metric.
const (
	DefaultCPUClockMHz = 3000.0
	DefaultGPUClockMHz = 1500.0
)

// Sample is a snapshot of the PC hardware telemetry.
// It is captured once per sampling interval and replaced wholesale.
type Sample struct {
	CPUClockMHz float64 `json:"cpu_clock_mhz"`
	CPUUsagePct float64 `json:"cpu_usage_pct"` // 0-100
	CPUTempC    float64 `json:"cpu_temp_c"`    // 0 when no sensor was found
	GPUClockMHz float64 `json:"gpu_clock_mhz"`
	GPUUsagePct float64 `json:"gpu_usage_pct"` // 0-100
	GPUTempC    float64 `json:"gpu_temp_c"`

	RAMUsedBytes       uint64 `json:"ram_used_bytes"`
	RAMTotalBytes      uint64 `json:"ram_total_bytes"`
	DiskAvailableBytes uint64 `json:"disk_available_bytes"`

	// SensorOK is false when neither a CPU nor a GPU temperature could be read.
	SensorOK bool `json:"sensor_ok"`

	CPUName    string    `json:"cpu_name,omitempty"`
	GPUName    string    `json:"gpu_name,omitempty"`
	CPUCores   int       `json:"cpu_cores,omitempty"`
	CapturedAt time.Time `json:"captured_at"`
}

// RAMAvailableBytes returns total minus used memory, never underflowing.
func (s Sample) RAMAvailableBytes() uint64 {
	if s.RAMUsedBytes > s.RAMTotalBytes {
		return 0
	}
	return s.RAMTotalBytes - s.RAMUsedBytes
}

// TotalTempC is the combined CPU and GPU temperature used by the overheat rule.
func (s Sample) TotalTempC() float64 {
	return s.CPUTempC + s.GPUTempC
}

// Sanitize returns a copy with unusable readings replaced by safe values:
// negative or non-finite readings become 0, usage is clamped to [0,100]
// and used memory never exceeds total memory.
func (s Sample) Sanitize() Sample {
	s.CPUClockMHz = nonNegative(s.CPUClockMHz)
	s.CPUTempC = nonNegative(s.CPUTempC)
	s.GPUClockMHz = nonNegative(s.GPUClockMHz)
	s.GPUTempC = nonNegative(s.GPUTempC)
	s.CPUUsagePct = clampPct(s.CPUUsagePct)
	s.GPUUsagePct = clampPct(s.GPUUsagePct)
	if s.RAMUsedBytes > s.RAMTotalBytes {
		s.RAMUsedBytes = s.RAMTotalBytes
	}
	return s
}

func nonNegative(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

func clampPct(v float64) float64 {
	v = nonNegative(v)
	if v > 100 {
		return 100
	}
	return v
}
