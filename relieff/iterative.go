package relieff

import "github.com/cdipaolo/relieff/indexsort"

// excludeTopRanked implements the per-reference ranked exclusion step of
// the iterative (G) variant: sort attributes by the just-synchronized
// shared weight vector descending, then mark the highest-ranked
// attribute that is neither the class attribute nor already excluded as
// newly excluded. Exactly one non-class attribute is newly excluded per
// call while any remain; once all are excluded the call is a no-op.
func (e *Evaluator) excludeTopRanked(shared []float64) {
	rank := indexsort.Descending(shared)

	for _, a := range rank {
		if a == e.dataset.ClassIndex || e.excluded[a] {
			continue
		}
		e.excluded[a] = true
		e.numExcluded++
		return
	}
}
