package recordgen

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"sync"

	"github.com/brianvoe/gofakeit/v6"
)

// MaxRandomSeed bounds seeds handed out by RandomSeed.
const MaxRandomSeed = 10000

// ResolveEffectiveSeed combines a caller seed and page number into the seed of
// that page's random stream: parse(userSeed) + page. Seeds that are not
// base-10 integers, or whose sum with page overflows int64, are rejected.
//
// The page is not checked for contiguity with previous requests.
func ResolveEffectiveSeed(userSeed string, page int) (int64, error) {
	s := strings.TrimSpace(userSeed)
	if s == "" {
		return 0, fmt.Errorf("%w: seed is required", ErrInvalidSeed)
	}

	seed, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidSeed, userSeed)
	}

	p := int64(page)
	if (p > 0 && seed > math.MaxInt64-p) || (p < 0 && seed < math.MinInt64-p) {
		return 0, fmt.Errorf("%w: seed %d overflows with page %d", ErrInvalidSeed, seed, page)
	}

	return seed + p, nil
}

// NewStream returns the random stream for one page. Every formatter, identifier
// and mutation draw of the page comes from it.
func NewStream(effectiveSeed int64) *gofakeit.Faker {
	return gofakeit.NewCustom(rand.NewSource(effectiveSeed).(rand.Source64))
}

// SeedSource hands out fresh, non-reproducible seeds. Safe for concurrent use.
type SeedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeedSource creates a seed source initialised from seed.
func NewSeedSource(seed int64) *SeedSource {
	return &SeedSource{rng: rand.New(rand.NewSource(seed))}
}

// RandomSeed returns a seed in [0, MaxRandomSeed).
func (s *SeedSource) RandomSeed() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Int63n(MaxRandomSeed)
}
