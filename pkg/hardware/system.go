package hardware

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/sensors"
)

// gpuUsageEstimate scales CPU usage when the GPU does not report utilization.
const gpuUsageEstimate = 1.1

// cpuSensorKeys are the sensor key fragments counted as CPU temperature.
var cpuSensorKeys = []string{"cpu", "core", "package", "tctl"}

// SystemProbe samples the local machine. CPU, memory, disk and temperature
// sensors are read through gopsutil, the GPU through nvidia-smi.
// It remembers the last good clock readings and is not safe for concurrent use.
type SystemProbe struct {
	gpu *NvidiaSMI

	lastCPUClock float64
	lastGPUClock float64
	cpuName      string
	cpuCores     int
}

// NewSystemProbe creates a probe. nvidiaSMIPath may be empty to use the
// binary found on PATH.
func NewSystemProbe(nvidiaSMIPath string) *SystemProbe {
	return &SystemProbe{
		gpu:          NewNvidiaSMI(nvidiaSMIPath),
		lastCPUClock: DefaultCPUClockMHz,
		lastGPUClock: DefaultGPUClockMHz,
	}
}

// Sample reads every metric once. Unreadable metrics fall back to defaults.
func (p *SystemProbe) Sample(ctx context.Context) Sample {
	s := Sample{CapturedAt: time.Now()}

	p.readCPU(ctx, &s)
	p.readMemory(ctx, &s)
	s.DiskAvailableBytes = diskAvailable(ctx)

	temps, err := sensors.TemperaturesWithContext(ctx)
	if err != nil && len(temps) == 0 {
		log.Debug().Err(err).Msg("temperature sensors unavailable")
	}
	cpuTemp, foundCPUTemp := CPUTemperature(temps)
	s.CPUTempC = cpuTemp

	p.readGPU(ctx, &s)

	s.SensorOK = foundCPUTemp || s.GPUTempC != 0
	return s.Sanitize()
}

func (p *SystemProbe) readCPU(ctx context.Context, s *Sample) {
	if usage, err := cpu.PercentWithContext(ctx, 0, false); err == nil && len(usage) > 0 {
		s.CPUUsagePct = usage[0]
	} else if err != nil {
		log.Debug().Err(err).Msg("cpu usage unavailable")
	}

	// cpu.Info reports the current frequency on Linux and the nominal one elsewhere.
	if infos, err := cpu.InfoWithContext(ctx); err == nil && len(infos) > 0 {
		p.cpuName = infos[0].ModelName
		if infos[0].Mhz > 0 {
			p.lastCPUClock = infos[0].Mhz
		}
	}
	if p.cpuCores == 0 {
		if cores, err := cpu.CountsWithContext(ctx, true); err == nil {
			p.cpuCores = cores
		}
	}
	s.CPUClockMHz = p.lastCPUClock
	s.CPUName = p.cpuName
	s.CPUCores = p.cpuCores
}

func (p *SystemProbe) readMemory(ctx context.Context, s *Sample) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("memory stats unavailable")
		return
	}
	s.RAMUsedBytes = vm.Used
	s.RAMTotalBytes = vm.Total
}

func (p *SystemProbe) readGPU(ctx context.Context, s *Sample) {
	s.GPUClockMHz = p.lastGPUClock
	s.GPUUsagePct = s.CPUUsagePct * gpuUsageEstimate

	reading, err := p.gpu.Query(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("gpu query failed")
		return
	}
	s.GPUName = reading.Name
	if reading.TempC >= 0 {
		s.GPUTempC = reading.TempC
	}
	if reading.ClockMHz > 0 {
		p.lastGPUClock = reading.ClockMHz
		s.GPUClockMHz = reading.ClockMHz
	}
	if reading.UsagePct >= 0 {
		s.GPUUsagePct = reading.UsagePct
	}
}

// CPUTemperature averages the positive readings of sensors whose key looks
// like a CPU sensor. The bool reports whether any such reading was found.
func CPUTemperature(temps []sensors.TemperatureStat) (float64, bool) {
	var sum float64
	var count int
	for _, t := range temps {
		if t.Temperature <= 0 || !isCPUSensor(t.SensorKey) {
			continue
		}
		sum += t.Temperature
		count++
	}
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}

func isCPUSensor(key string) bool {
	key = strings.ToLower(key)
	for _, frag := range cpuSensorKeys {
		if strings.Contains(key, frag) {
			return true
		}
	}
	return false
}

// diskAvailable sums the free space of all physical partitions, counting
// each device once.
func diskAvailable(ctx context.Context) uint64 {
	parts, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		log.Debug().Err(err).Msg("disk partitions unavailable")
		return 0
	}
	seen := make(map[string]bool, len(parts))
	var total uint64
	for _, part := range parts {
		if seen[part.Device] {
			continue
		}
		seen[part.Device] = true
		usage, err := disk.UsageWithContext(ctx, part.Mountpoint)
		if err != nil {
			continue
		}
		total += usage.Free
	}
	return total
}
