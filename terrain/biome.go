package terrain

import (
	"fmt"
	"strings"
)

// Biome is a terrain generator. The zero value is Sand.
type Biome uint8

const (
	Sand Biome = iota
	Ice
	Canyon
	Crystal
	Grid
)

var biomeNames = [...]string{
	Sand:    "sand",
	Ice:     "ice",
	Canyon:  "canyon",
	Crystal: "crystal",
	Grid:    "grid",
}

// Biomes returns every known biome in declaration order.
func Biomes() []Biome {
	return []Biome{Sand, Ice, Canyon, Crystal, Grid}
}

// String ...
func (b Biome) String() string {
	if int(b) < len(biomeNames) {
		return biomeNames[b]
	}
	return fmt.Sprintf("biome(%d)", uint8(b))
}

// Height returns the elevation of the biome at (x, z).
func (b Biome) Height(x, z float64) float64 {
	return Height(x, z, b)
}

// MarshalText ...
func (b Biome) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText ...
func (b *Biome) UnmarshalText(text []byte) error {
	parsed, err := ParseBiome(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// ParseBiome resolves a biome by its name, case-insensitively.
func ParseBiome(name string) (Biome, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for b, n := range biomeNames {
		if n == name {
			return Biome(b), nil
		}
	}
	return Sand, fmt.Errorf("unknown biome %q", name)
}
