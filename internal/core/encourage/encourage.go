package encourage

import (
	"math/rand"
	"sync"
	"time"
)

// Encouragements are shown at the start of every rest phase.
var Encouragements = []string{
	"Nice squeeze! Let everything soften now.",
	"Breathe out slowly and relax.",
	"You're doing great, keep going.",
	"Relaxing is half of the exercise.",
	"Shoulders down, jaw loose, breathe.",
	"One more rep closer to a stronger you.",
	"Small daily effort, big long-term results.",
	"Let go completely before the next squeeze.",
}

// Benefits are shown once a session is finished.
var Benefits = []string{
	"Regular pelvic floor training supports bladder control.",
	"A strong pelvic floor helps stabilise your core and lower back.",
	"Training improves blood flow to the pelvic region.",
	"Consistent practice can help with recovery after childbirth.",
	"Pelvic floor strength supports good posture.",
	"Daily practice builds body awareness and control.",
}

// Selector picks lines uniformly at random from fixed pools.
type Selector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a selector seeded from the clock.
func New() *Selector {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed creates a selector with a deterministic sequence.
func NewWithSeed(seed int64) *Selector {
	return &Selector{rng: rand.New(rand.NewSource(seed))}
}

// PickEncouragement returns a random encouragement line.
func (selector *Selector) PickEncouragement() string {
	return selector.pick(Encouragements)
}

// PickBenefit returns a random benefit line.
func (selector *Selector) PickBenefit() string {
	return selector.pick(Benefits)
}

func (selector *Selector) pick(pool []string) string {
	selector.mu.Lock()
	defer selector.mu.Unlock()
	return pool[selector.rng.Intn(len(pool))]
}
