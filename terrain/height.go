package terrain

import "math"

// CrystalBlockSize is the edge length of the quantized blocks of the crystal biome.
const CrystalBlockSize = 15.0

// Height returns the terrain elevation at (x, z) for the given biome. It is pure: the same
// inputs always produce the same height.
func Height(x, z float64, b Biome) float64 {
	switch b {
	case Ice:
		return iceHeight(x, z)
	case Canyon:
		return canyonHeight(x, z)
	case Crystal:
		return crystalHeight(x, z)
	default:
		return duneHeight(x, z)
	}
}

// duneHeight is a domain-warped sine stack. The warp bends the dune crests like wind would.
func duneHeight(x, z float64) float64 {
	warpX := x + math.Sin(z*0.035)*12.0
	warpZ := z + math.Sin(x*0.040)*8.0

	base := math.Sin(warpX*0.04 + warpZ*0.01)
	y := math.Pow(base*0.5+0.5, 2.5) * 5.0
	y += math.Sin(warpX*0.13+warpZ*0.11) * 1.2
	y += math.Sin(x*0.37-z*0.23) * 0.35

	dist := math.Sqrt(x*x + z*z)
	y += math.Sin(dist*0.05) * 2.0
	return y
}

// iceHeight combines broad glacial swells with sharp pressure ridges.
func iceHeight(x, z float64) float64 {
	warpX := x + math.Sin(z*0.025)*25.0
	warpZ := z + math.Sin(x*0.025)*20.0

	y := math.Sin(warpX*0.03+warpZ*0.02) * 5.0

	rX := x*0.12 + z*0.08
	rZ := z*0.12 - x*0.08
	ridge1 := math.Pow(math.Abs(math.Sin(rX)), 4.0)
	ridge2 := math.Pow(math.Abs(math.Sin(rZ)), 4.0)
	y += (ridge1 + ridge2) * 2.5

	y += math.Sin(x*0.4) * math.Cos(z*0.4) * 0.4
	return y
}

// canyonHeight produces terraced mesas: cubing the base wave flattens the tops and steepens
// the walls.
func canyonHeight(x, z float64) float64 {
	warpX := x + math.Sin(z*0.012)*30.0
	warpZ := z + math.Cos(x*0.015)*30.0

	const scale = 0.012
	base := math.Sin(warpX*scale) * math.Cos(warpZ*scale)
	y := base * base * base * 22.0

	y += math.Sin(y*1.5) * 1.2
	y += math.Sin(x*0.3) * math.Cos(z*0.24) * 0.8
	return y
}

// crystalHeight is a stepped field: every block gets one of four tiers plus a
// gentle global swell.
func crystalHeight(x, z float64) float64 {
	return CrystalTier(x, z) + math.Sin(x*0.02+z*0.02)*2.0
}

// CrystalTier returns the quantized tier height of the crystal block containing (x, z),
// without the global swell.
func CrystalTier(x, z float64) float64 {
	val := blockHash(math.Floor(x/CrystalBlockSize), math.Floor(z/CrystalBlockSize))
	switch {
	case val > 0.85:
		return 8.0
	case val > 0.6:
		return 4.0
	case val > 0.4:
		return -2.0
	default:
		return 0
	}
}

// blockHash maps a block coordinate to a pseudo-random value in [0, 1).
func blockHash(qx, qz float64) float64 {
	h := math.Sin(qx*12.9898+qz*78.233) * 43758.5453
	return h - math.Floor(h)
}
