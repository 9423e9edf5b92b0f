package testutil

import (
	"context"
	"math"
	"math/rand"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/colstore"
	"github.com/hupe1980/colstore/model"
	"github.com/hupe1980/colstore/schema"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Name returns a random string of minLen..maxLen runes drawn from the
// alphabet size runes starting at base.
func (r *RNG) Name(base rune, alphabet, minLen, maxLen int) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.nameLocked(base, alphabet, minLen, maxLen)
}

func (r *RNG) nameLocked(base rune, alphabet, minLen, maxLen int) string {
	n := minLen + r.rand.Intn(maxLen-minLen+1)
	var sb strings.Builder
	sb.Grow(n * 3)
	for range n {
		sb.WriteRune(base + rune(r.rand.Intn(alphabet)))
	}
	return sb.String()
}

// Zipf returns a Zipfian-distributed value in [0, n).
// Uses Zipf's law: P(k) ∝ 1/k^s where s is the skew parameter.
// s=1.0 gives standard Zipf, s=1.5 gives heavy-tail (80/20 rule).
func (r *RNG) Zipf(n int, s float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.zipfLocked(n, s)
}

// zipfLocked is the internal implementation (caller must hold lock).
func (r *RNG) zipfLocked(n int, s float64) int {
	if n <= 1 {
		return 0
	}

	var hns float64
	for i := 1; i <= n; i++ {
		hns += 1.0 / math.Pow(float64(i), s)
	}

	u := r.rand.Float64() * hns
	var cumulative float64
	for k := 1; k <= n; k++ {
		cumulative += 1.0 / math.Pow(float64(k), s)
		if u <= cumulative {
			return k - 1 // 0-indexed
		}
	}

	return n - 1
}

// ZipfBuckets generates n bucket assignments with Zipfian distribution.
// Returns slice where ~20% of buckets contain ~80% of values (when s=1.5).
func (r *RNG) ZipfBuckets(n, bucketCount int, s float64) []int32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	buckets := make([]int32, n)
	for i := range n {
		buckets[i] = int32(r.zipfLocked(bucketCount, s))
	}

	return buckets
}

// SparseNulls returns n flags, each true with probability nullRate.
func (r *RNG) SparseNulls(n int, nullRate float64) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	nulls := make([]bool, n)
	for i := range nulls {
		nulls[i] = r.rand.Float64() < nullRate
	}
	return nulls
}

// TableConfig sizes the generated product catalog.
type TableConfig struct {
	// Products is the number of shohin rows.
	Products int
	// Categories is the number of kubun rows; products reference
	// categories 1..Categories.
	Categories int
	// PriceSteps is the number of distinct prices; prices are multiples of 10
	// in [0, 10*PriceSteps).
	PriceSteps int
	// NullRate is the probability that a product's category is null.
	NullRate float64
}

// DefaultTableConfig matches the catalog used by the package benchmarks.
func DefaultTableConfig() TableConfig {
	return TableConfig{
		Products:   100000,
		Categories: 10000,
		PriceSteps: 990,
	}
}

// ShohinAttributes is the product table layout.
func ShohinAttributes() []schema.Attribute {
	return []schema.Attribute{
		schema.Integer("shohin_id"),
		schema.Text("shohin_name"),
		schema.Integer("kubun_id"),
		schema.Integer("price"),
	}
}

// KubunAttributes is the category table layout.
func KubunAttributes() []schema.Attribute {
	return []schema.Attribute{
		schema.Integer("kubun_id"),
		schema.Text("kubun_name"),
	}
}

// Tables builds a random product table and category table concurrently.
// Each table gets its own generator derived from seed, so the result only
// depends on seed and cfg.
func Tables(ctx context.Context, seed int64, cfg TableConfig, opts ...colstore.Option) (*colstore.Table, *colstore.Table, error) {
	shohin := colstore.NewTable("shohin", ShohinAttributes(), opts...)
	kubun := colstore.NewTable("kubun", KubunAttributes(), opts...)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rng := NewRNG(seed)
		nulls := rng.SparseNulls(cfg.Products, cfg.NullRate)
		for i := range cfg.Products {
			if i%4096 == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
			}
			category := model.Null()
			if !nulls[i] {
				category = model.Int(int32(rng.Intn(cfg.Categories) + 1))
			}
			err := shohin.Insert(
				model.Int(int32(i+1)),
				model.Text(rng.Name('あ', 82, 3, 7)),
				category,
				model.Int(int32(rng.Intn(cfg.PriceSteps)*10)),
			)
			if err != nil {
				return err
			}
		}
		return nil
	})

	g.Go(func() error {
		rng := NewRNG(seed + 1)
		for i := range cfg.Categories {
			if i%4096 == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
			}
			if err := kubun.InsertValues(i+1, rng.Name('ア', 82, 3, 7)); err != nil {
				return err
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return shohin, kubun, nil
}
