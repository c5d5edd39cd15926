package relieff

import "github.com/cdipaolo/relieff/indexsort"

// updateWeights applies the Relief-F weight update for reference
// instance ref using w's populated neighbor table: hits (same-class
// neighbors) push weight down, misses (other-class neighbors) push it
// up, proportionally weighted by class prior when there are more than
// two classes. It accumulates into w.weights (the worker's private
// accumulator); no class-attribute slot is ever touched.
func (e *Evaluator) updateWeights(w *worker, ref int) {
	numClasses := e.dataset.NumClasses()
	cl := e.dataset.ClassOf(ref)
	refInst := &e.dataset.Instances[ref]

	// rankOrder[c] holds, for class c, the positions (into table.entry)
	// visited in ascending-distance order. Only built when distance
	// weighting is enabled, since equal weighting doesn't care about
	// rank.
	var rankOrder [][]int
	var z []float64 // normalizer Z_c per class

	if e.cfg.WeightByDistance {
		rankOrder = make([][]int, numClasses)
		z = make([]float64, numClasses)
		for c := 0; c < numClasses; c++ {
			s := w.table.size(c)
			if s == 0 {
				continue
			}
			dists := make([]float64, s)
			for j := 0; j < s; j++ {
				dists[j] = w.table.entry(c, j).dist
			}
			rankOrder[c] = indexsort.Ascending(dists)
			var sum float64
			for j := 0; j < s; j++ {
				sum += e.rankWeight[j]
			}
			z[c] = sum
		}
	}

	wNorm := 1.0
	if numClasses > 2 {
		wNorm = 1.0 - e.classProbs[cl]
	}

	numAttrs := len(e.dataset.Attributes)

	// hits: neighbors of class cl
	sc := w.table.size(cl)
	for j := 0; j < sc; j++ {
		pos := j
		if e.cfg.WeightByDistance {
			pos = rankOrder[cl][j]
		}
		nb := &e.dataset.Instances[w.table.entry(cl, pos).idx]

		for a := 0; a < numAttrs; a++ {
			if a == e.dataset.ClassIndex {
				continue
			}
			delta := e.difference(a, refInst.Cells[a], nb.Cells[a])
			if e.cfg.WeightByDistance {
				delta *= e.rankWeight[j] / z[cl]
			} else if sc > 0 {
				delta /= float64(sc)
			}
			w.weights[a] -= delta
		}
	}

	// misses: neighbors of every class k != cl
	for k := 0; k < numClasses; k++ {
		if k == cl {
			continue
		}
		sk := w.table.size(k)
		for j := 0; j < sk; j++ {
			pos := j
			if e.cfg.WeightByDistance {
				pos = rankOrder[k][j]
			}
			nb := &e.dataset.Instances[w.table.entry(k, pos).idx]

			for a := 0; a < numAttrs; a++ {
				if a == e.dataset.ClassIndex {
					continue
				}
				delta := e.difference(a, refInst.Cells[a], nb.Cells[a])
				if e.cfg.WeightByDistance {
					delta *= e.rankWeight[j] / z[k]
				} else if sk > 0 {
					delta /= float64(sk)
				}
				if numClasses > 2 {
					delta *= e.classProbs[k] / wNorm
				}
				w.weights[a] += delta
			}
		}
	}
}
