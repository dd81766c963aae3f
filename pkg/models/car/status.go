package car

import (
	"math"

	"github.com/golangdaddy/overclock/pkg/hardware"
)

// Impact factors translate raw readings (MHz, bytes, Celsius) into the
// fractional boosts used by the performance formulas.
const (
	CPUImpactFactor  = 0.000001
	GPUImpactFactor  = 0.00001
	RAMImpactFactor  = 0.000000001
	TempImpactFactor = 0.001
	SSDImpactFactor  = 0.0000000001
)

// Gameplay scaling. These keep the car playable and are not physically derived.
const (
	AccelScale    = 50.0
	HandlingScale = 2.0
	BrakingScale  = 3000.0
	ConstVal      = 1.0
)

// Gear range of the sequential gearbox.
const (
	MinGear = 1
	MaxGear = 6
)

// Status holds the car attributes derived from the hardware each tick.
type Status struct {
	MaxSpeed        float64 `json:"max_speed"` // km/h
	FuelCapacity    float64 `json:"fuel_capacity"`
	Weight          float64 `json:"weight"` // kg, including fuel
	FuelConsumption float64 `json:"fuel_consumption"`
	Acceleration    float64 `json:"acceleration"`
	Braking         float64 `json:"braking"`
	Grip            float64 `json:"grip"`
	Handling        float64 `json:"handling"`
	Aerodynamics    float64 `json:"aerodynamics"`
	DRSAcceleration float64 `json:"drs_acceleration"`
	DRSMaxSpeed     float64 `json:"drs_max_speed"` // km/h
	GearFactor      float64 `json:"gear_factor"`
	IdealGear       int     `json:"ideal_gear"`
}

// Inputs carries the session values the performance model depends on.
type Inputs struct {
	FuelCapacity    float64 // fixed at measurement time
	CurrentFuel     float64
	CurrentSpeedKmh float64
	Gear            int
}

// FuelRatio returns current fuel over capacity clamped to [0,1].
func (in Inputs) FuelRatio() float64 {
	if in.FuelCapacity <= 0 {
		return 0
	}
	return clamp(in.CurrentFuel/in.FuelCapacity, 0, 1)
}

// FuelCapacity sizes the tank from used RAM and free disk space. It is
// evaluated once when the car is measured and stays fixed for the run.
func FuelCapacity(s hardware.Sample, p Profile) float64 {
	return p.BaseFuelCapacity *
		(1 +
			p.RAMImpact*RAMImpactFactor*float64(s.RAMUsedBytes) +
			p.SSDImpact*SSDImpactFactor*float64(s.DiskAvailableBytes)) *
		ConstVal
}

// Compute derives the car status from a hardware sample. It is a pure
// function of its arguments. The profile must have passed Validate.
func Compute(s hardware.Sample, p Profile, in Inputs) Status {
	cpuUsage := s.CPUUsagePct / 100
	gpuUsage := s.GPUUsagePct / 100
	gpuBoost := 1 + p.GPUImpact*GPUImpactFactor*s.GPUClockMHz*(1+gpuUsage)

	var st Status
	st.FuelCapacity = in.FuelCapacity

	st.MaxSpeed = p.BaseMaxSpeed *
		(1 + p.CPUImpact*CPUImpactFactor*s.CPUClockMHz*(1+cpuUsage)) *
		ConstVal

	st.Weight = p.BaseWeight * (1 + in.FuelRatio()) * ConstVal

	st.FuelConsumption = p.BaseFuelConsumption *
		(1 + p.TempImpact*TempImpactFactor*(s.CPUTempC+s.GPUTempC)*
			p.GPUImpact*GPUImpactFactor*s.GPUClockMHz) *
		ConstVal

	st.Grip = p.BaseGrip *
		(1 + p.RAMImpact*RAMImpactFactor*float64(s.RAMAvailableBytes())) *
		ConstVal

	st.Handling = p.BaseHandling * st.Grip / st.Weight * ConstVal * HandlingScale

	st.Aerodynamics = p.BaseAerodynamics * gpuBoost * ConstVal

	st.IdealGear = IdealGear(in.CurrentSpeedKmh, st.MaxSpeed)
	st.GearFactor = GearFactor(in.Gear, st.IdealGear)

	st.Acceleration = p.BaseAcceleration *
		(gpuBoost * st.GearFactor / st.Weight) *
		ConstVal * AccelScale

	st.Braking = p.BaseBraking * st.Grip / st.Weight * ConstVal * BrakingScale

	st.DRSAcceleration = st.Acceleration + st.Aerodynamics*ConstVal
	st.DRSMaxSpeed = st.MaxSpeed + st.Aerodynamics*ConstVal

	return st
}

// IdealGear picks the gear matching the current share of top speed.
func IdealGear(speedKmh, maxSpeedKmh float64) int {
	var ratio float64
	if maxSpeedKmh > 0 {
		ratio = speedKmh / maxSpeedKmh
	}
	return int(clamp(math.Ceil(ratio*MaxGear), MinGear, MaxGear))
}

// GearFactor doubles acceleration when the gear is within one step of ideal.
func GearFactor(gear, ideal int) float64 {
	d := gear - ideal
	if d >= -1 && d <= 1 {
		return 2.0
	}
	return 1.0
}

// SpeedCap returns the top speed allowed in the given gear, in km/h.
// Each gear unlocks a sixth of the (DRS-extended when enabled) top speed.
func SpeedCap(st Status, gear int, drs bool) float64 {
	top := st.MaxSpeed
	if drs {
		top = st.DRSMaxSpeed
	}
	ratio := float64(ClampGear(gear)) / MaxGear
	return math.Min(top*ratio, top)
}

// ClampGear limits g to the gearbox range.
func ClampGear(g int) int {
	if g < MinGear {
		return MinGear
	}
	if g > MaxGear {
		return MaxGear
	}
	return g
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
