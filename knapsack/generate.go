package knapsack

import "math/rand"

// GenConfig describes a family of random instances.
//
//   - Items        : number of items (≥ 1).
//   - MaxValue     : values are drawn from [1, MaxValue].
//   - MaxWeight    : weights are drawn from [1, MaxWeight].
//   - CapacityRatio: capacity = ⌊ratio · Σweights⌋; 0 means 0.5.
//   - Correlated   : value = weight + MaxValue/10 (strongly correlated, hard for bounding).
//   - Seed         : 0 selects the package default seed.
type GenConfig struct {
	Items         int
	MaxValue      int64
	MaxWeight     int64
	CapacityRatio float64
	Correlated    bool
	Seed          int64
}

// Generate returns one deterministic random instance for cfg.
//
// Errors: ErrNoItems when cfg.Items < 1; ErrBadOptions when MaxValue or MaxWeight < 1.
func Generate(cfg GenConfig) (Problem, error) {
	if err := validateGenConfig(cfg); err != nil {
		return Problem{}, err
	}

	return generate(cfg, instanceRNG(cfg.Seed, 0)), nil
}

// GenerateBatch returns k independent instances; instance i is the same for
// any k > i, and instance 0 is the one Generate returns.
func GenerateBatch(cfg GenConfig, k int) ([]Problem, error) {
	if err := validateGenConfig(cfg); err != nil {
		return nil, err
	}
	out := make([]Problem, k)
	var i int
	for i = 0; i < k; i++ {
		out[i] = generate(cfg, instanceRNG(cfg.Seed, uint64(i)))
	}

	return out, nil
}

// defaultGenSeed replaces a zero GenConfig.Seed.
const defaultGenSeed int64 = 1

// instanceRNG returns the generator of instance k under seed. Each instance
// gets its own source seeded through the SplitMix64 finalizer, so streams
// of neighbouring k are uncorrelated.
func instanceRNG(seed int64, k uint64) *rand.Rand {
	if seed == 0 {
		seed = defaultGenSeed
	}
	z := uint64(seed) + (k+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	z ^= z >> 31

	return rand.New(rand.NewSource(int64(z)))
}

func validateGenConfig(cfg GenConfig) error {
	if cfg.Items < 1 {
		return ErrNoItems
	}
	if cfg.MaxValue < 1 || cfg.MaxWeight < 1 || cfg.CapacityRatio < 0 {
		return ErrBadOptions
	}

	return nil
}

func generate(cfg GenConfig, rng *rand.Rand) Problem {
	ratio := cfg.CapacityRatio
	if ratio == 0 {
		ratio = 0.5
	}

	var (
		items = make([]Pair, cfg.Items)
		total int64
		i     int
	)
	for i = range items {
		w := 1 + rng.Int63n(cfg.MaxWeight)
		v := 1 + rng.Int63n(cfg.MaxValue)
		if cfg.Correlated {
			v = w + cfg.MaxValue/10
		}
		items[i] = Pair{Value: v, Weight: w}
		total += w
	}

	return Problem{
		Capacity: int64(ratio * float64(total)),
		Items:    items,
	}
}
