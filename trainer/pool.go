package trainer

import (
	"math/rand/v2"

	"github.com/bawdo/sqldrill/exercise"
)

// Pool hands out exercises uniformly at random without repeats. When a full
// pass through the record set completes, the pool refills and reshuffles, so
// selection never dead-ends; repeats only become possible across passes.
type Pool struct {
	rng       *rand.Rand
	records   []exercise.Record
	remaining []exercise.Record
}

// NewPool creates a pool over records. The rand source is injected so tests
// can seed it; records must be non-empty.
func NewPool(records []exercise.Record, rng *rand.Rand) *Pool {
	p := &Pool{rng: rng, records: records}
	p.refill()
	return p
}

func (p *Pool) refill() {
	p.remaining = make([]exercise.Record, len(p.records))
	copy(p.remaining, p.records)
	p.rng.Shuffle(len(p.remaining), func(i, j int) {
		p.remaining[i], p.remaining[j] = p.remaining[j], p.remaining[i]
	})
}

// Next pops one not-yet-shown record. Taking the last record triggers the
// refill for the following round.
func (p *Pool) Next() exercise.Record {
	rec := p.remaining[len(p.remaining)-1]
	p.remaining = p.remaining[:len(p.remaining)-1]
	if len(p.remaining) == 0 {
		p.refill()
	}
	return rec
}

// Remaining reports how many records are left in the current pass.
func (p *Pool) Remaining() int { return len(p.remaining) }

// Size reports the full record count.
func (p *Pool) Size() int { return len(p.records) }
