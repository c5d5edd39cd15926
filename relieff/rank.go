package relieff

import "github.com/cdipaolo/relieff/indexsort"

// Rank is one (attribute, weight) entry of a ranked evaluation result.
type Rank struct {
	AttributeIndex int
	AttributeName  string
	Weight         float64
}

// Weight returns the final weight of attribute i. It fails with
// BadIndex if i is outside [0, NumAttributes). The class attribute's
// slot is never updated by Build; its returned value is indeterminate
// and callers should not rely on it.
func (e *Evaluator) Weight(i int) (float64, error) {
	if i < 0 || i >= len(e.weights) {
		return 0, badIndex("attribute index out of range")
	}
	return e.weights[i], nil
}

// NumAttributes returns the number of attributes in the built dataset.
func (e *Evaluator) NumAttributes() int {
	return len(e.dataset.Attributes)
}

// Rank returns the attributes (excluding the class attribute) sorted by
// final weight descending.
func (e *Evaluator) Rank() []Rank {
	attrs := e.dataset.Attributes
	values := make([]float64, len(attrs))
	copy(values, e.weights)
	// Push the class attribute to the back deterministically so it never
	// survives into the pruned/retained list, regardless of its
	// indeterminate weight value.
	values[e.dataset.ClassIndex] = negInf

	order := indexsort.Descending(values)

	out := make([]Rank, 0, len(attrs)-1)
	for _, a := range order {
		if a == e.dataset.ClassIndex {
			continue
		}
		out = append(out, Rank{AttributeIndex: a, AttributeName: attrs[a].Name, Weight: e.weights[a]})
	}
	return out
}

// negInf is used to force the class attribute to the tail of a
// descending sort without special-casing the sort itself.
const negInf = -1e308

// Retained returns the indices of the attributes to keep after pruning
// `prune` entries from the tail of Rank()'s ordering. It fails with
// PruneOverflow if prune >= the number of non-class attributes.
func (e *Evaluator) Retained(prune int) ([]int, error) {
	ranked := e.Rank()
	if prune < 0 {
		prune = 0
	}
	if prune >= len(ranked) {
		return nil, pruneOverflow("prune count must be less than the number of non-class attributes")
	}
	keep := len(ranked) - prune
	out := make([]int, keep)
	for i := 0; i < keep; i++ {
		out[i] = ranked[i].AttributeIndex
	}
	return out, nil
}
