package letters

import (
	"math/rand"
	"time"
)

// Letters that make brutal starting requirements. Games never open on these.
const hardLetters = "QXZJ"

// Picker selects random starting letters for new games
type Picker struct {
	random *rand.Rand
	pool   []rune
}

// Config for the letter picker
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new letter picker
func New(cfg *Config) *Picker {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)

	pool := make([]rune, 0, 26)
	for r := 'A'; r <= 'Z'; r++ {
		hard := false
		for _, h := range hardLetters {
			if r == h {
				hard = true
				break
			}
		}
		if !hard {
			pool = append(pool, r)
		}
	}

	return &Picker{
		random: rand.New(source),
		pool:   pool,
	}
}

// Pick returns a random starting letter from the easy pool, upper-case.
func (p *Picker) Pick() string {
	return string(p.pool[p.random.Intn(len(p.pool))])
}
