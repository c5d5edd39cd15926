package relieff

// Version selects the reduction/ranking strategy of the evaluator
// driver.
type Version int

const (
	// VersionP performs a single final reduction (batch).
	VersionP Version = iota
	// VersionG reduces and re-ranks after every reference instance,
	// excluding the current top-ranked attribute from future distances.
	VersionG
)

// Difference selects how nominal attributes contribute to instance
// distance.
type Difference int

const (
	// Genotype treats nominal cells as 0/1 inequality.
	Genotype Difference = iota
	// AlleleSharing treats nominal cell indices as ordinal positions and
	// takes their absolute difference.
	AlleleSharing
)

// SampleAll is the sentinel SampleSize value meaning "use every
// instance as a reference exactly once".
const SampleAll = -1

// Config holds the tunables recognized by the evaluator. The zero value
// is not valid; use DefaultConfig to obtain sane defaults and override
// individual fields.
type Config struct {
	// SampleSize is the number of reference instances to process, or
	// SampleAll to use every instance. 0 means "process zero
	// references", distinct from SampleAll.
	SampleSize int

	// K is the number of neighbors retained per class. Must be > 0.
	K int

	// Sigma is the rank-decay parameter for distance weighting. Must be > 0.
	Sigma int

	// WeightByDistance enables rank-weighted neighbor averaging.
	WeightByDistance bool

	// Seed seeds the per-worker sampler when SampleSize != full dataset.
	Seed int64

	// ClockSeed, when true, reseeds the sampler from wall-clock time
	// instead of Seed.
	ClockSeed bool

	// Version selects batch (P) vs iterative (G) reduction.
	Version Version

	// Difference selects the nominal difference metric.
	Difference Difference

	// Workers is the number of parallel workers (goroutines) cooperating
	// on the build. 0 means "use 1" (single worker, the default for
	// library callers that don't opt into concurrency).
	Workers int
}

// DefaultConfig returns sane defaults for every tunable: the full
// dataset as references, K=10, sigma=2, distance weighting enabled,
// batch (P) reduction, genotype nominal differencing, one worker.
func DefaultConfig() Config {
	return Config{
		SampleSize:       SampleAll,
		K:                10,
		Sigma:            2,
		WeightByDistance: true,
		Seed:             1,
		Version:          VersionP,
		Difference:       Genotype,
		Workers:          1,
	}
}

// Validate checks the tunables for internal consistency, returning a
// BadArguments error naming the offending option on failure.
func (c Config) Validate() error {
	if c.K <= 0 {
		return badArguments("k", "must be strictly positive")
	}
	if c.Sigma <= 0 {
		return badArguments("sigma", "must be strictly positive")
	}
	if c.Workers < 0 {
		return badArguments("workers", "must be non-negative")
	}
	return nil
}
