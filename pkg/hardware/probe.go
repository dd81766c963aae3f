package hardware

import (
	"context"
	"time"
)

// Probe produces hardware samples. Implementations never fail: a metric that
// cannot be read is substituted with a default and reflected in SensorOK.
type Probe interface {
	Sample(ctx context.Context) Sample
}

// StaticProbe always returns the same sample. It backs tests and runs on
// machines where real sensors should not be touched.
type StaticProbe struct {
	Fixed Sample
}

// NewStaticProbe creates a probe returning the given sample.
func NewStaticProbe(s Sample) *StaticProbe {
	return &StaticProbe{Fixed: s}
}

// Sample returns the fixed sample stamped with the current time.
func (p *StaticProbe) Sample(ctx context.Context) Sample {
	s := p.Fixed.Sanitize()
	s.CapturedAt = time.Now()
	return s
}

// ReferenceSample is a plausible mid-range desktop reading.
func ReferenceSample() Sample {
	return Sample{
		CPUClockMHz:        3600,
		CPUUsagePct:        25,
		CPUTempC:           55,
		GPUClockMHz:        1800,
		GPUUsagePct:        30,
		GPUTempC:           50,
		RAMUsedBytes:       8 << 30,
		RAMTotalBytes:      16 << 30,
		DiskAvailableBytes: 200 << 30,
		SensorOK:           true,
		CPUName:            "Reference CPU",
		GPUName:            "Reference GPU",
		CPUCores:           8,
	}
}
