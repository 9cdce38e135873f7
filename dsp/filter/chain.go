package filter

import "math"

// Chain is an ordered serial composition of filters. Each stage's output is
// the next stage's input. An empty chain is the identity.
type Chain struct {
	stages []Filter
}

// NewChain creates a chain from the given stages in order.
func NewChain(stages ...Filter) *Chain {
	c := &Chain{stages: make([]Filter, 0, len(stages))}
	for _, s := range stages {
		if s != nil {
			c.stages = append(c.stages, s)
		}
	}
	return c
}

// Append adds a stage to the end of the chain.
func (c *Chain) Append(f Filter) {
	if f != nil {
		c.stages = append(c.stages, f)
	}
}

// ProcessSample runs x through every stage in order.
// A missing sample skips all stages.
func (c *Chain) ProcessSample(x float64) float64 {
	if math.IsNaN(x) {
		return x
	}
	for _, s := range c.stages {
		x = s.ProcessSample(x)
	}
	return x
}

// Reset resets every stage.
func (c *Chain) Reset() {
	for _, s := range c.stages {
		s.Reset()
	}
}

// Len returns the number of stages.
func (c *Chain) Len() int { return len(c.stages) }

// Stage returns the i-th stage.
func (c *Chain) Stage(i int) Filter { return c.stages[i] }
