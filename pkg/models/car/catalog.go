package car

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Catalog is the ordered list of cars offered at car selection.
type Catalog struct {
	profiles []Profile
}

// Presets returns the stock cars: balanced, CPU-tuned and GPU-tuned.
func Presets() []Profile {
	balanced := DefaultProfile()

	cpu := DefaultProfile()
	cpu.ID, cpu.Name = "cpu", "CPU Tuned"
	cpu.CPUImpact, cpu.GPUImpact, cpu.RAMImpact, cpu.TempImpact, cpu.SSDImpact = 50, 10, 10, 15, 15

	gpu := DefaultProfile()
	gpu.ID, gpu.Name = "gpu", "GPU Tuned"
	gpu.CPUImpact, gpu.GPUImpact, gpu.RAMImpact, gpu.TempImpact, gpu.SSDImpact = 10, 50, 10, 15, 15

	return []Profile{balanced, cpu, gpu}
}

// NewCatalog validates every profile and rejects duplicate IDs.
func NewCatalog(profiles ...Profile) (*Catalog, error) {
	seen := make(map[string]bool, len(profiles))
	for _, p := range profiles {
		if p.ID == "" {
			return nil, fmt.Errorf("%w: missing id (name %q)", ErrInvalidProfile, p.Name)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidProfile, p.ID)
		}
		seen[p.ID] = true
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}
	return &Catalog{profiles: profiles}, nil
}

// catalogFile is the on-disk layout of a custom car list.
type catalogFile struct {
	Cars []Profile `yaml:"cars"`
}

// LoadCatalog returns the presets followed by the cars defined in the YAML
// file at path. An empty path yields the presets only.
func LoadCatalog(path string) (*Catalog, error) {
	profiles := Presets()
	if path == "" {
		return NewCatalog(profiles...)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read car catalog: %w", err)
	}

	var file catalogFile
	if err := yaml.UnmarshalStrict(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse car catalog %s: %w", path, err)
	}

	return NewCatalog(append(profiles, file.Cars...)...)
}

// Profiles returns the cars in selection order.
func (c *Catalog) Profiles() []Profile {
	out := make([]Profile, len(c.profiles))
	copy(out, c.profiles)
	return out
}

// Len returns the number of cars.
func (c *Catalog) Len() int {
	return len(c.profiles)
}

// At returns the car at index i, wrapping around in both directions.
func (c *Catalog) At(i int) Profile {
	n := len(c.profiles)
	return c.profiles[((i%n)+n)%n]
}

// Lookup finds a car by ID.
func (c *Catalog) Lookup(id string) (Profile, bool) {
	for _, p := range c.profiles {
		if p.ID == id {
			return p, true
		}
	}
	return Profile{}, false
}

// IndexOf returns the position of the car with the given ID, or -1.
func (c *Catalog) IndexOf(id string) int {
	for i, p := range c.profiles {
		if p.ID == id {
			return i
		}
	}
	return -1
}
