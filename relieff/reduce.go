package relieff

import "sync"

// reduceBarrier is a combining barrier: every participant calls
// allReduceSum with its own vector, and all of them unblock together
// holding the elementwise sum. It is the goroutine-native equivalent of
// an MPI_Allreduce, used once per reference by the iterative (G)
// variant.
//
// Workers never see partial results: a caller either observes the
// fully-summed vector from its own generation or blocks until it is
// ready, matching an all-or-nothing collective's semantics.
type reduceBarrier struct {
	mu      sync.Mutex
	cond    *sync.Cond
	n       int
	arrived int
	sum     []float64
	shared  []float64
	gen     int
}

func newReduceBarrier(n, width int) *reduceBarrier {
	b := &reduceBarrier{
		n:      n,
		sum:    make([]float64, width),
		shared: make([]float64, width),
	}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// allReduceSum folds local into the barrier's running sum, then blocks
// until every one of the n participants has arrived for this
// generation. The return value is a private copy of the summed vector,
// safe for the caller to mutate.
//
// If onReduced is non-nil, it is invoked exactly once per generation by
// whichever goroutine happens to be the last to arrive, while every
// other participant is still blocked on the barrier. This is the only
// place the iterative (G) variant's shared exclusion state is safe to
// mutate without an extra lock: the caller is guaranteed unique access
// until it returns, and every participant is guaranteed to observe the
// mutation (each reads onReduced's effects only after waking up).
func (b *reduceBarrier) allReduceSum(local []float64, onReduced func(shared []float64)) []float64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	myGen := b.gen
	for i, v := range local {
		b.sum[i] += v
	}
	b.arrived++

	if b.arrived == b.n {
		copy(b.shared, b.sum)
		for i := range b.sum {
			b.sum[i] = 0
		}
		if onReduced != nil {
			onReduced(b.shared)
		}
		b.arrived = 0
		b.gen++
		b.cond.Broadcast()
	} else {
		for b.gen == myGen {
			b.cond.Wait()
		}
	}

	out := make([]float64, len(b.shared))
	copy(out, b.shared)
	return out
}
