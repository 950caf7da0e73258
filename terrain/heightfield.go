package terrain

import (
	"sync"

	"github.com/oomph-ac/skitter/worker"
)

const (
	// DefaultFieldSize is the edge length of the sampled terrain square, centred on the origin.
	DefaultFieldSize = 480.0
	// DefaultFieldSegments is the number of grid cells along each edge.
	DefaultFieldSegments = 128
)

// Heightfield is a square grid of terrain heights. Heights are stored row-major with
// (Segments+1)² samples; sample (i, j) lies at x = i*Step()-Size/2, z = j*Step()-Size/2.
type Heightfield struct {
	Biome    Biome     `json:"biome"`
	Size     float64   `json:"size"`
	Segments int       `json:"segments"`
	Heights  []float64 `json:"heights"`
}

// Step returns the distance between two neighbouring samples.
func (h *Heightfield) Step() float64 {
	return h.Size / float64(h.Segments)
}

// At returns the sample at grid coordinate (i, j) together with its world X/Z.
func (h *Heightfield) At(i, j int) (x, y, z float64) {
	half := h.Size / 2
	x = float64(i)*h.Step() - half
	z = float64(j)*h.Step() - half
	return x, h.Heights[i*(h.Segments+1)+j], z
}

// Sample evaluates the biome over a size×size square split into segments cells per edge.
// Rows are computed in parallel on the worker pool.
func Sample(b Biome, size float64, segments int) *Heightfield {
	if segments < 1 {
		segments = 1
	}
	h := &Heightfield{
		Biome:    b,
		Size:     size,
		Segments: segments,
		Heights:  make([]float64, (segments+1)*(segments+1)),
	}

	half, step := size/2, h.Step()
	var wg sync.WaitGroup
	for i := 0; i <= segments; i++ {
		wg.Add(1)
		worker.Submit(func() {
			defer wg.Done()
			x := float64(i)*step - half
			row := h.Heights[i*(segments+1) : (i+1)*(segments+1)]
			for j := range row {
				row[j] = Height(x, float64(j)*step-half, b)
			}
		})
	}
	wg.Wait()
	return h
}
