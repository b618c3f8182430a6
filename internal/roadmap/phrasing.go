package roadmap

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// TaskTemplates are the phrasings generic weeks draw their task descriptions from.
var TaskTemplates = []string{
	"Learn fundamentals of %s",
	"Practice %s through exercises",
	"Work on %s projects",
	"Review and reinforce %s concepts",
	"Apply %s in real-world scenarios",
}

const (
	minTasksPerWeek = 2
	maxTasksPerWeek = 3
)

// Phraser produces the task descriptions of one generic week. Implementations decide
// both the count (2 or 3) and the wording; that is the only run-to-run variance a plan has.
type Phraser interface {
	Phrase(skill string) []string
}

// RandomPhraser picks 2-3 distinct templates with its own source of randomness.
type RandomPhraser struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomPhraser seeds the phraser; seed 0 uses the current time.
func NewRandomPhraser(seed int64) *RandomPhraser {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomPhraser{rng: rand.New(rand.NewSource(seed))}
}

func (p *RandomPhraser) Phrase(skill string) []string {
	p.mu.Lock()
	n := minTasksPerWeek + p.rng.Intn(maxTasksPerWeek-minTasksPerWeek+1)
	order := p.rng.Perm(len(TaskTemplates))
	p.mu.Unlock()

	out := make([]string, 0, n)
	for _, idx := range order[:n] {
		out = append(out, fmt.Sprintf(TaskTemplates[idx], skill))
	}
	return out
}

// FixedPhraser always returns the first Count templates.
type FixedPhraser struct {
	Count int
}

func (p FixedPhraser) Phrase(skill string) []string {
	n := p.Count
	if n < minTasksPerWeek || n > maxTasksPerWeek {
		n = minTasksPerWeek
	}
	out := make([]string, 0, n)
	for _, tpl := range TaskTemplates[:n] {
		out = append(out, fmt.Sprintf(tpl, skill))
	}
	return out
}
