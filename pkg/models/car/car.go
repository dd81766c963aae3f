package car

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidProfile is wrapped by every profile validation failure.
var ErrInvalidProfile = errors.New("invalid car profile")

// Profile holds the base design values of a car. The impact weights set
// how strongly each hardware metric moves the car's stats; they do not need
// to sum to any particular total.
type Profile struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`

	CPUImpact  float64 `json:"cpu_impact" yaml:"cpu_impact"`
	GPUImpact  float64 `json:"gpu_impact" yaml:"gpu_impact"`
	RAMImpact  float64 `json:"ram_impact" yaml:"ram_impact"`
	TempImpact float64 `json:"temp_impact" yaml:"temp_impact"`
	SSDImpact  float64 `json:"ssd_impact" yaml:"ssd_impact"`

	BaseMaxSpeed        float64 `json:"base_max_speed" yaml:"base_max_speed"` // km/h
	BaseWeight          float64 `json:"base_weight" yaml:"base_weight"`       // kg
	BaseFuelConsumption float64 `json:"base_fuel_consumption" yaml:"base_fuel_consumption"`
	BaseHandling        float64 `json:"base_handling" yaml:"base_handling"`
	BaseAcceleration    float64 `json:"base_acceleration" yaml:"base_acceleration"`
	BaseBraking         float64 `json:"base_braking" yaml:"base_braking"`
	BaseGrip            float64 `json:"base_grip" yaml:"base_grip"`
	BaseAerodynamics    float64 `json:"base_aerodynamics" yaml:"base_aerodynamics"`
	BaseFuelCapacity    float64 `json:"base_fuel_capacity" yaml:"base_fuel_capacity"`
}

// DefaultProfile returns the balanced car with the stock base values.
func DefaultProfile() Profile {
	return Profile{
		ID:                  "balanced",
		Name:                "Balanced",
		CPUImpact:           20,
		GPUImpact:           20,
		RAMImpact:           20,
		TempImpact:          20,
		SSDImpact:           20,
		BaseMaxSpeed:        300,
		BaseWeight:          1000,
		BaseFuelConsumption: 0.5,
		BaseHandling:        2,
		BaseAcceleration:    50,
		BaseBraking:         50,
		BaseGrip:            2,
		BaseAerodynamics:    1,
		BaseFuelCapacity:    60,
	}
}

// Validate rejects profiles that would make the performance model divide by
// zero or produce NaN: every base value must be finite and positive and every
// impact finite and non-negative.
func (p Profile) Validate() error {
	bases := []struct {
		name string
		v    float64
	}{
		{"base_max_speed", p.BaseMaxSpeed},
		{"base_weight", p.BaseWeight},
		{"base_fuel_consumption", p.BaseFuelConsumption},
		{"base_handling", p.BaseHandling},
		{"base_acceleration", p.BaseAcceleration},
		{"base_braking", p.BaseBraking},
		{"base_grip", p.BaseGrip},
		{"base_aerodynamics", p.BaseAerodynamics},
		{"base_fuel_capacity", p.BaseFuelCapacity},
	}
	for _, b := range bases {
		if !finite(b.v) || b.v <= 0 {
			return fmt.Errorf("%w %q: %s must be > 0, got %v", ErrInvalidProfile, p.ID, b.name, b.v)
		}
	}

	impacts := []struct {
		name string
		v    float64
	}{
		{"cpu_impact", p.CPUImpact},
		{"gpu_impact", p.GPUImpact},
		{"ram_impact", p.RAMImpact},
		{"temp_impact", p.TempImpact},
		{"ssd_impact", p.SSDImpact},
	}
	for _, i := range impacts {
		if !finite(i.v) || i.v < 0 {
			return fmt.Errorf("%w %q: %s must be >= 0, got %v", ErrInvalidProfile, p.ID, i.name, i.v)
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
