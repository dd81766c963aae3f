package hardware

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultInterval is how often the game re-reads the hardware.
const DefaultInterval = time.Second

// Sampler rate-limits a Probe. Between samples the last reading is reused,
// so the simulation can tick much faster than the sensors are polled.
type Sampler struct {
	probe    Probe
	interval time.Duration
	timeout  time.Duration

	elapsed time.Duration
	current Sample
	fresh   bool
}

// NewSampler creates a sampler polling probe every interval. Each probe call
// is bounded by timeout; a zero timeout means no bound.
func NewSampler(probe Probe, interval, timeout time.Duration) *Sampler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Sampler{
		probe:    probe,
		interval: interval,
		timeout:  timeout,
	}
}

// Measure forces a fresh sample and restarts the interval.
func (s *Sampler) Measure() Sample {
	ctx := context.Background()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	s.current = s.probe.Sample(ctx).Sanitize()
	s.elapsed = 0
	s.fresh = true

	if !s.current.SensorOK {
		log.Warn().Msg("temperature sensors not detected, using 0C")
	}
	log.Debug().
		Float64("cpuMHz", s.current.CPUClockMHz).
		Float64("cpuUsage", s.current.CPUUsagePct).
		Float64("cpuTemp", s.current.CPUTempC).
		Float64("gpuMHz", s.current.GPUClockMHz).
		Float64("gpuTemp", s.current.GPUTempC).
		Uint64("ramUsed", s.current.RAMUsedBytes).
		Msg("hardware sampled")
	return s.current
}

// Advance moves the sampler clock by dt seconds and re-samples when the
// interval has passed. It reports whether a new sample was taken.
func (s *Sampler) Advance(dt float64) bool {
	if !s.fresh {
		s.Measure()
		return true
	}
	s.elapsed += time.Duration(dt * float64(time.Second))
	if s.elapsed < s.interval {
		return false
	}
	leftover := s.elapsed % s.interval
	s.Measure()
	s.elapsed = leftover
	return true
}

// Current returns the last sample, measuring first if none was taken yet.
func (s *Sampler) Current() Sample {
	if !s.fresh {
		return s.Measure()
	}
	return s.current
}

// Interval returns the polling interval.
func (s *Sampler) Interval() time.Duration {
	return s.interval
}
