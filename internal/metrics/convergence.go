package metrics

import "github.com/san-kum/hancock/internal/dynamo"

// Convergence is the fraction of start values that reached a cycle within
// the iteration bound.
type Convergence struct {
	name      string
	converged int
	samples   int
}

func NewConvergence() *Convergence {
	return &Convergence{
		name: "convergence_rate",
	}
}

func (c *Convergence) Name() string {
	return c.name
}

func (c *Convergence) Observe(o dynamo.Orbit, converged bool) {
	c.samples++
	if converged {
		c.converged++
	}
}

func (c *Convergence) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return float64(c.converged) / float64(c.samples)
}

func (c *Convergence) Reset() {
	c.converged = 0
	c.samples = 0
}
