package metrics

import "github.com/san-kum/hancock/internal/dynamo"

// MeanTransient averages the number of values produced before an orbit
// enters its cycle. Orbits that never converged are ignored.
type MeanTransient struct {
	name    string
	sum     int
	samples int
}

func NewMeanTransient() *MeanTransient {
	return &MeanTransient{
		name: "mean_transient",
	}
}

func (m *MeanTransient) Name() string {
	return m.name
}

func (m *MeanTransient) Observe(o dynamo.Orbit, converged bool) {
	if !converged {
		return
	}
	m.sum += o.Transient
	m.samples++
}

func (m *MeanTransient) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return float64(m.sum) / float64(m.samples)
}

func (m *MeanTransient) Reset() {
	m.sum = 0
	m.samples = 0
}
