package relieff

import (
	"math"

	"github.com/cdipaolo/relieff/dataset"
)

// small is the tolerance used for float equality when deciding whether
// a numeric attribute's observed range is degenerate (min == max).
const small = 1e-6

// bounds holds the observed minimum and maximum of a numeric attribute.
// initialized is false for a bound that has never seen a value; it
// mirrors the source's DBL_MAX sentinel.
type bounds struct {
	min, max    float64
	initialized bool
}

func newBounds() bounds {
	return bounds{}
}

func (b *bounds) observe(x float64) {
	if !b.initialized {
		b.min, b.max = x, x
		b.initialized = true
		return
	}
	if x < b.min {
		b.min = x
	} else if x > b.max {
		b.max = x
	}
}

// normalize maps x into [0,1] given b; returns 0 when the bound is
// uninitialized or the observed range is degenerate, else the usual
// min-max scaling.
func (b bounds) normalize(x float64) float64 {
	if !b.initialized || math.Abs(b.max-b.min) < small {
		return 0
	}
	return (x - b.min) / (b.max - b.min)
}

// difference computes the per-attribute difference between two cell
// values under attr's type and cfg.Difference for nominal attributes.
// It mirrors goml's base.DistanceMeasure shape (a pure function over raw
// values) generalized to mixed numeric/nominal cells.
func (e *Evaluator) difference(attrIndex int, a, b dataset.Cell) float64 {
	attr := &e.dataset.Attributes[attrIndex]
	switch attr.Type {
	case dataset.Numeric:
		bnd := e.bounds[attrIndex]
		return math.Abs(bnd.normalize(a.Float) - bnd.normalize(b.Float))
	default: // nominal
		if e.cfg.Difference == Genotype {
			if a.Index == b.Index {
				return 0
			}
			return 1
		}
		return math.Abs(float64(a.Index - b.Index))
	}
}

// instanceDistance sums per-attribute differences over every attribute
// except the class attribute and any attribute currently excluded by
// the iterative (G) variant. This is a Manhattan sum: no squaring, no
// root, matching goml's base.ManhattanDistance in spirit.
func (e *Evaluator) instanceDistance(i, j int) float64 {
	var sum float64
	instI := &e.dataset.Instances[i]
	instJ := &e.dataset.Instances[j]
	for a := 0; a < len(e.dataset.Attributes); a++ {
		if a == e.dataset.ClassIndex || e.excluded[a] {
			continue
		}
		sum += e.difference(a, instI.Cells[a], instJ.Cells[a])
	}
	return sum
}
