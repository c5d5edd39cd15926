// Package indexsort gives a slice of float64 values an index
// permutation ordered by value, ascending or descending, without
// reordering the input itself. It is built on gonum.org/v1/gonum/floats
// rather than a hand-rolled comparison sort.
package indexsort

import "gonum.org/v1/gonum/floats"

// Descending fills and returns a permutation of 0..len(x)-1 such that
// x[index[0]] >= x[index[1]] >= ... >= x[index[n-1]]. Ties keep their
// original relative order. x is not modified.
func Descending(x []float64) []int {
	n := len(x)
	tmp := make([]float64, n)
	inds := make([]int, n)
	for i := range inds {
		inds[i] = i
		tmp[i] = -x[i]
	}

	// floats.ArgsortStable sorts the negated values ascending in place and
	// permutes inds to match, keeping equal values in input order, so
	// x[inds[0]] is the largest value.
	floats.ArgsortStable(tmp, inds)
	return inds
}

// Ascending fills and returns a permutation of 0..len(x)-1 such that
// x[index[0]] <= x[index[1]] <= ... <= x[index[n-1]]. x is not modified.
func Ascending(x []float64) []int {
	n := len(x)
	tmp := make([]float64, n)
	copy(tmp, x)
	inds := make([]int, n)
	for i := range inds {
		inds[i] = i
	}
	floats.Argsort(tmp, inds)
	return inds
}
