package memory

import (
	"context"
	"sync"
	"time"

	"github.com/MikeRez0/ordermodule/internal/core/utils"
)

// NumberGenerator counts per template in memory.
type NumberGenerator struct {
	mu        sync.Mutex
	sequences map[string]int64
	now       func() time.Time
}

func NewNumberGenerator() *NumberGenerator {
	return &NumberGenerator{
		sequences: make(map[string]int64),
		now:       time.Now,
	}
}

func (g *NumberGenerator) GenerateNumber(_ context.Context, template string) (string, error) {
	g.mu.Lock()
	g.sequences[template]++
	seq := g.sequences[template]
	g.mu.Unlock()

	return utils.FormatNumberTemplate(template, g.now(), seq)
}
