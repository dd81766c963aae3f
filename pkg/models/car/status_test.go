package car

import (
	"testing"

	"github.com/golangdaddy/overclock/pkg/hardware"
	"github.com/stretchr/testify/assert"
)

func idleSample() hardware.Sample {
	return hardware.Sample{
		CPUClockMHz:        3000,
		GPUClockMHz:        1500,
		CPUTempC:           50,
		GPUTempC:           40,
		RAMUsedBytes:       4 << 30,
		RAMTotalBytes:      16 << 30,
		DiskAvailableBytes: 100 << 30,
		SensorOK:           true,
	}
}

func TestCompute_MaxSpeedScenario(t *testing.T) {
	p := DefaultProfile()
	s := hardware.Sample{CPUClockMHz: 3000, CPUUsagePct: 0}

	st := Compute(s, p, Inputs{FuelCapacity: 60, CurrentFuel: 60, Gear: 1})

	assert.InDelta(t, 318.0, st.MaxSpeed, 1e-9)
}

func TestCompute_MaxSpeedGrowsWithUsage(t *testing.T) {
	p := DefaultProfile()
	idle := Compute(hardware.Sample{CPUClockMHz: 3000}, p, Inputs{Gear: 1})
	busy := Compute(hardware.Sample{CPUClockMHz: 3000, CPUUsagePct: 100}, p, Inputs{Gear: 1})

	// 300 * (1 + 20e-6 * 3000 * 2)
	assert.InDelta(t, 336.0, busy.MaxSpeed, 1e-9)
	assert.Greater(t, busy.MaxSpeed, idle.MaxSpeed)
}

func TestCompute_WeightMonotonicInFuel(t *testing.T) {
	p := DefaultProfile()
	s := idleSample()

	prev := 0.0
	for fuel := 0.0; fuel <= 60; fuel += 5 {
		st := Compute(s, p, Inputs{FuelCapacity: 60, CurrentFuel: fuel, Gear: 1})
		assert.GreaterOrEqual(t, st.Weight, prev, "fuel %v", fuel)
		assert.InDelta(t, p.BaseWeight*(1+fuel/60), st.Weight, 1e-9)
		prev = st.Weight
	}
}

func TestCompute_FuelRatioClamped(t *testing.T) {
	p := DefaultProfile()
	s := idleSample()

	over := Compute(s, p, Inputs{FuelCapacity: 60, CurrentFuel: 90, Gear: 1})
	under := Compute(s, p, Inputs{FuelCapacity: 60, CurrentFuel: -3, Gear: 1})
	noTank := Compute(s, p, Inputs{FuelCapacity: 0, CurrentFuel: 10, Gear: 1})

	assert.Equal(t, 2*p.BaseWeight, over.Weight)
	assert.Equal(t, p.BaseWeight, under.Weight)
	assert.Equal(t, p.BaseWeight, noTank.Weight)
}

func TestCompute_HandlingAndBrakingInverseToWeight(t *testing.T) {
	p := DefaultProfile()
	s := idleSample()

	light := Compute(s, p, Inputs{FuelCapacity: 60, CurrentFuel: 0, Gear: 1})
	heavy := Compute(s, p, Inputs{FuelCapacity: 60, CurrentFuel: 60, Gear: 1})

	assert.Equal(t, light.Grip, heavy.Grip)
	assert.InDelta(t, light.Handling*light.Weight, heavy.Handling*heavy.Weight, 1e-9)
	assert.InDelta(t, light.Braking*light.Weight, heavy.Braking*heavy.Weight, 1e-6)
	assert.InDelta(t, 2.0, light.Handling/heavy.Handling, 1e-9)
}

func TestCompute_Formulas(t *testing.T) {
	p := DefaultProfile()
	s := hardware.Sample{
		CPUClockMHz:   4000,
		CPUUsagePct:   50,
		CPUTempC:      60,
		GPUClockMHz:   2000,
		GPUUsagePct:   50,
		GPUTempC:      40,
		RAMUsedBytes:  2_000_000_000,
		RAMTotalBytes: 10_000_000_000,
	}
	st := Compute(s, p, Inputs{FuelCapacity: 60, CurrentFuel: 30, Gear: 1})

	gpuBoost := 1 + 20*0.00001*2000*1.5 // 1.6
	assert.InDelta(t, 1500.0, st.Weight, 1e-9)
	assert.InDelta(t, 0.5*(1+20*0.001*100*20*0.00001*2000), st.FuelConsumption, 1e-9)
	assert.InDelta(t, 2*(1+20*1e-9*8e9), st.Grip, 1e-9)
	assert.InDelta(t, 2*st.Grip/1500*2, st.Handling, 1e-12)
	assert.InDelta(t, gpuBoost, st.Aerodynamics, 1e-9)
	assert.InDelta(t, 50*(gpuBoost*2/1500)*50, st.Acceleration, 1e-9)
	assert.InDelta(t, 50*st.Grip/1500*3000, st.Braking, 1e-9)
	assert.InDelta(t, st.Acceleration+st.Aerodynamics, st.DRSAcceleration, 1e-12)
	assert.InDelta(t, st.MaxSpeed+st.Aerodynamics, st.DRSMaxSpeed, 1e-12)
	assert.Equal(t, 60.0, st.FuelCapacity)
}

func TestCompute_Deterministic(t *testing.T) {
	p := Presets()[2]
	s := idleSample()
	in := Inputs{FuelCapacity: 70, CurrentFuel: 41, CurrentSpeedKmh: 120, Gear: 3}

	assert.Equal(t, Compute(s, p, in), Compute(s, p, in))
}

func TestFuelCapacity(t *testing.T) {
	p := DefaultProfile()
	s := hardware.Sample{RAMUsedBytes: 5_000_000, DiskAvailableBytes: 100_000_000}

	// 60 * (1 + 20e-9*5e6 + 20e-10*1e8) = 60 * 1.3
	assert.InDelta(t, 78.0, FuelCapacity(s, p), 1e-9)
	assert.Equal(t, p.BaseFuelCapacity, FuelCapacity(hardware.Sample{}, p))
}

func TestIdealGear(t *testing.T) {
	assert.Equal(t, 1, IdealGear(0, 300))
	assert.Equal(t, 1, IdealGear(50, 300))
	assert.Equal(t, 2, IdealGear(51, 300))
	assert.Equal(t, 3, IdealGear(150, 300))
	assert.Equal(t, 6, IdealGear(300, 300))
	assert.Equal(t, 6, IdealGear(500, 300))
	assert.Equal(t, 1, IdealGear(100, 0))
}

func TestGearFactor(t *testing.T) {
	assert.Equal(t, 2.0, GearFactor(1, 1))
	assert.Equal(t, 2.0, GearFactor(2, 1))
	assert.Equal(t, 2.0, GearFactor(3, 4))
	assert.Equal(t, 1.0, GearFactor(4, 1))
	assert.Equal(t, 1.0, GearFactor(1, 6))
}

func TestCompute_GearFactorAppliedToAcceleration(t *testing.T) {
	p := DefaultProfile()
	s := idleSample()

	matched := Compute(s, p, Inputs{FuelCapacity: 60, CurrentFuel: 60, Gear: 1})
	wrong := Compute(s, p, Inputs{FuelCapacity: 60, CurrentFuel: 60, Gear: 5})

	assert.Equal(t, 2.0, matched.GearFactor)
	assert.Equal(t, 1.0, wrong.GearFactor)
	assert.InDelta(t, 2.0, matched.Acceleration/wrong.Acceleration, 1e-12)
}

func TestSpeedCap(t *testing.T) {
	st := Status{MaxSpeed: 300, DRSMaxSpeed: 312}

	assert.InDelta(t, 50.0, SpeedCap(st, 1, false), 1e-9)
	assert.InDelta(t, 300.0, SpeedCap(st, 6, false), 1e-9)
	assert.InDelta(t, 156.0, SpeedCap(st, 3, true), 1e-9)
	assert.InDelta(t, 300.0, SpeedCap(st, 9, false), 1e-9)
}

func TestClampGear(t *testing.T) {
	assert.Equal(t, 1, ClampGear(0))
	assert.Equal(t, 4, ClampGear(4))
	assert.Equal(t, 6, ClampGear(7))
}
