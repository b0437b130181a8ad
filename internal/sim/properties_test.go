package sim_test

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/pendulum/internal/dynamo"
	"github.com/san-kum/pendulum/internal/physics"
	"github.com/san-kum/pendulum/internal/sim"
)

func deg(d float64) float64 { return d * math.Pi / 180 }

func run(p physics.Params) *sim.Trajectory {
	tr, err := sim.New(sim.DefaultConfig(), nil).Run(context.Background(), p)
	Expect(err).NotTo(HaveOccurred())
	return tr
}

// halfSwingPeaks returns |theta| at each sampled turning point.
func halfSwingPeaks(tr *sim.Trajectory) []float64 {
	s := tr.Samples
	var peaks []float64
	if len(s) > 1 && math.Abs(s[0].Theta) > math.Abs(s[1].Theta) {
		peaks = append(peaks, math.Abs(s[0].Theta))
	}
	for i := 1; i < len(s)-1; i++ {
		prev, cur, next := math.Abs(s[i-1].Theta), math.Abs(s[i].Theta), math.Abs(s[i+1].Theta)
		if cur >= prev && cur > next {
			peaks = append(peaks, cur)
		}
	}
	return peaks
}

// zeroCrossings returns linearly interpolated times where theta changes sign.
func zeroCrossings(tr *sim.Trajectory) []float64 {
	s := tr.Samples
	var ts []float64
	for i := 1; i < len(s); i++ {
		a, b := s[i-1], s[i]
		if a.Theta == 0 || a.Theta*b.Theta >= 0 {
			continue
		}
		frac := a.Theta / (a.Theta - b.Theta)
		ts = append(ts, a.T+frac*(b.T-a.T))
	}
	return ts
}

var _ = Describe("pendulum trajectory", func() {
	Context("at rest in the stable equilibrium", func() {
		It("stays at theta = 0 and omega = 0", func() {
			p := physics.DefaultParams()
			p.Theta0, p.Omega0 = 0, 0

			tr := run(p)
			for _, s := range tr.Samples {
				Expect(s.Theta).To(BeNumerically("~", 0, 1e-12))
				Expect(s.Omega).To(BeNumerically("~", 0, 1e-12))
			}
		})
	})

	Context("without damping or drag at small amplitude", func() {
		It("oscillates with the small-angle period", func() {
			p := physics.Params{G: 9.81, L: 1.0, M: 1.0, Theta0: deg(5)}
			tr := run(p)

			crossings := zeroCrossings(tr)
			Expect(len(crossings)).To(BeNumerically(">=", 4))

			halfPeriod := (crossings[len(crossings)-1] - crossings[0]) / float64(len(crossings)-1)
			expected := physics.NewPendulum(p).SmallAnglePeriod()
			Expect(2 * halfPeriod).To(BeNumerically("~", expected, 0.03*expected))
		})
	})

	DescribeTable("damped motion never gains amplitude",
		func(p physics.Params) {
			peaks := halfSwingPeaks(run(p))
			Expect(len(peaks)).To(BeNumerically(">=", 2))
			for i := 1; i < len(peaks); i++ {
				Expect(peaks[i]).To(BeNumerically("<=", peaks[i-1]*(1+1e-3)))
			}
		},
		Entry("viscous only", physics.Params{G: 9.81, L: 1, M: 1, B: 0.5, Theta0: 1.0}),
		Entry("drag only", physics.Params{G: 9.81, L: 1, M: 1, Cd: 1, Rho: 1.225, A: 0.5, Theta0: 1.0}),
		Entry("both", physics.Params{G: 9.81, L: 2, M: 3, B: 0.4, Cd: 0.8, Rho: 1.2, A: 0.2, Theta0: -1.2}),
	)

	DescribeTable("kinematic invariants hold for every sample",
		func(p physics.Params) {
			tr := run(p)
			Expect(tr.Derived).To(HaveLen(tr.Len()))
			for i, d := range tr.Derived {
				Expect(d.Velocity).To(BeNumerically(">=", 0))
				Expect(d.Velocity).To(BeNumerically("~", math.Abs(tr.Samples[i].Omega)*p.L, 1e-12))
				Expect(d.X*d.X + d.Y*d.Y).To(BeNumerically("~", p.L*p.L, 1e-9*p.L*p.L))
			}
		},
		Entry("defaults", physics.DefaultParams()),
		Entry("spinning", physics.Params{G: 9.81, L: 1, M: 1, B: 0.05, Theta0: 0.1, Omega0: 8}),
		Entry("negative push", physics.Params{G: 3.7, L: 0.5, M: 2, Cd: 0.5, Rho: 1, A: 0.1, Theta0: deg(30), Omega0: -4}),
	)

	Context("with the default form values", func() {
		var tr *sim.Trajectory

		BeforeEach(func() {
			tr = run(physics.DefaultParams())
		})

		It("produces 200 samples over [0, 10)", func() {
			Expect(tr.Len()).To(Equal(200))
			Expect(tr.Samples[0].T).To(Equal(0.0))
			Expect(tr.Samples[199].T).To(BeNumerically("~", 9.95, 1e-9))
		})

		It("starts from the converted initial angle", func() {
			Expect(tr.Samples[0].Theta).To(BeNumerically("~", -1.396, 1e-3))
		})

		It("has strictly decreasing half-swing peaks", func() {
			peaks := halfSwingPeaks(tr)
			Expect(len(peaks)).To(BeNumerically(">=", 3))
			for i := 1; i < len(peaks); i++ {
				Expect(peaks[i]).To(BeNumerically("<", peaks[i-1]))
			}
		})

		It("ends with a smaller amplitude than it started", func() {
			last := tr.Samples[tr.Len()-1]
			Expect(math.Abs(last.Theta)).To(BeNumerically("<", math.Abs(tr.Samples[0].Theta)))
		})
	})

	DescribeTable("degenerate parameters fail the run",
		func(mutate func(*physics.Params)) {
			p := physics.DefaultParams()
			mutate(&p)

			tr, err := sim.New(sim.DefaultConfig(), nil).Run(context.Background(), p)
			Expect(err).To(MatchError(dynamo.ErrInvalidState))
			Expect(tr).To(BeNil())
		},
		Entry("zero length", func(p *physics.Params) { p.L = 0 }),
		Entry("zero mass", func(p *physics.Params) { p.M = 0 }),
		Entry("zero length at rest", func(p *physics.Params) { p.L, p.Theta0 = 0, 0 }),
	)
})
