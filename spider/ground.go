package spider

import "github.com/oomph-ac/skitter/terrain"

// Ground reports the terrain height under a point of the horizontal plane. terrain.Biome
// implements it.
type Ground interface {
	Height(x, z float64) float64
}

// GroundFunc adapts a plain function to the Ground interface.
type GroundFunc func(x, z float64) float64

// Height ...
func (f GroundFunc) Height(x, z float64) float64 {
	return f(x, z)
}

// DefaultGround is used whenever no ground has been supplied.
var DefaultGround Ground = terrain.Sand

func groundOrDefault(g Ground) Ground {
	if g == nil {
		return DefaultGround
	}
	return g
}
