package usecase

import "time"

// idGenerator hands out strictly increasing ids that track the wall clock in
// milliseconds. Two calls within one millisecond still get distinct ids.
type idGenerator struct {
	now  func() time.Time
	last int64
}

func newIDGenerator(now func() time.Time) *idGenerator {
	return &idGenerator{now: now}
}

func (g *idGenerator) next() int64 {
	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

// observe makes sure future ids stay above id.
func (g *idGenerator) observe(id int64) {
	if id > g.last {
		g.last = id
	}
}
