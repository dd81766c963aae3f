package hardware

import (
	"math"
	"testing"

	"github.com/shirou/gopsutil/v4/sensors"
	"github.com/stretchr/testify/assert"
)

func TestSample_RAMAvailable(t *testing.T) {
	assert.Equal(t, uint64(6), Sample{RAMUsedBytes: 10, RAMTotalBytes: 16}.RAMAvailableBytes())
	assert.Equal(t, uint64(0), Sample{RAMUsedBytes: 20, RAMTotalBytes: 16}.RAMAvailableBytes())
}

func TestSample_Sanitize(t *testing.T) {
	s := Sample{
		CPUClockMHz:   math.NaN(),
		CPUUsagePct:   -3,
		GPUUsagePct:   250,
		GPUTempC:      math.Inf(1),
		RAMUsedBytes:  32,
		RAMTotalBytes: 16,
	}.Sanitize()

	assert.Equal(t, 0.0, s.CPUClockMHz)
	assert.Equal(t, 0.0, s.CPUUsagePct)
	assert.Equal(t, 100.0, s.GPUUsagePct)
	assert.Equal(t, 0.0, s.GPUTempC)
	assert.Equal(t, uint64(16), s.RAMUsedBytes)
}

func TestSample_TotalTemp(t *testing.T) {
	assert.Equal(t, 105.0, Sample{CPUTempC: 60, GPUTempC: 45}.TotalTempC())
}

func TestCPUTemperature(t *testing.T) {
	temps := []sensors.TemperatureStat{
		{SensorKey: "coretemp_package_id_0", Temperature: 60},
		{SensorKey: "coretemp_core_0", Temperature: 50},
		{SensorKey: "nvme_composite", Temperature: 40},
		{SensorKey: "k10temp_tctl", Temperature: 0},
	}
	got, ok := CPUTemperature(temps)
	assert.True(t, ok)
	assert.Equal(t, 55.0, got)

	got, ok = CPUTemperature([]sensors.TemperatureStat{{SensorKey: "acpitz", Temperature: 30}})
	assert.False(t, ok)
	assert.Equal(t, 0.0, got)
}
