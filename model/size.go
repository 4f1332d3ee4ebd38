package model

import (
	"fmt"
	"strings"
)

// Size is one of the fixed instance classes produced by the generator.
type Size struct {
	Name          string
	D             int
	ServiceRadius float64
	PenaltyRadius float64
	MaxCities     int
}

var (
	Small  = Size{Name: "small", D: 30, ServiceRadius: 3, PenaltyRadius: 8, MaxCities: 50}
	Medium = Size{Name: "medium", D: 50, ServiceRadius: 3, PenaltyRadius: 10, MaxCities: 100}
	Large  = Size{Name: "large", D: 100, ServiceRadius: 3, PenaltyRadius: 14, MaxCities: 200}
)

// Sizes lists the presets in ascending order.
func Sizes() []Size { return []Size{Small, Medium, Large} }

// ParseSize maps "small", "medium" or "large" (case-insensitive) to a preset.
func ParseSize(name string) (Size, error) {
	for _, s := range Sizes() {
		if strings.EqualFold(strings.TrimSpace(name), s.Name) {
			return s, nil
		}
	}
	return Size{}, fmt.Errorf("unknown instance size %q", name)
}

// Instance builds an instance with the preset's grid and radii.
func (s Size) Instance(cities []Point) (*Instance, error) {
	return NewInstance(s.D, s.ServiceRadius, s.PenaltyRadius, cities)
}

// Fits reports whether inst uses the preset's constants and stays within its
// city bound.
func (s Size) Fits(inst *Instance) bool {
	return inst.D() == s.D &&
		inst.ServiceRadius() == s.ServiceRadius &&
		inst.PenaltyRadius() == s.PenaltyRadius &&
		inst.N() <= s.MaxCities
}
