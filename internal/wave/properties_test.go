package wave_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/tsunami/internal/wave"
)

func sumSquares(row []float64) float64 {
	s := 0.0
	for _, v := range row[1 : len(row)-1] {
		s += v * v
	}
	return s
}

var _ = Describe("Run", func() {
	var p wave.Params

	BeforeEach(func() {
		p = wave.DefaultParams()
	})

	Context("with the control panel defaults", func() {
		It("returns a timesteps x grid_size field", func() {
			f, err := wave.Run(p)
			Expect(err).NotTo(HaveOccurred())
			Expect(f.Timesteps()).To(Equal(100))
			Expect(f.GridSize()).To(Equal(100))
			Expect(f.Finite()).To(BeTrue())
		})

		It("seeds a unit pulse at icenter", func() {
			f, err := wave.Run(p)
			Expect(err).NotTo(HaveOccurred())
			row := f.Row(0)
			Expect(row[24]).To(Equal(1.0))
			Expect(sumSquares(row)).To(Equal(1.0))
		})

		It("is reproducible bit for bit", func() {
			a, err := wave.Run(p)
			Expect(err).NotTo(HaveOccurred())
			b, err := wave.Run(p)
			Expect(err).NotTo(HaveOccurred())
			Expect(a.Rows()).To(Equal(b.Rows()))
			Expect(a.Checksum()).To(Equal(b.Checksum()))
		})
	})

	DescribeTable("boundary points stay at zero",
		func(icenter, grid, steps int, courant, decay float64) {
			p = wave.Params{ICenter: icenter, GridSize: grid, Timesteps: steps, Dt: courant, Dx: 1, C: 1, Decay: decay}
			f, err := wave.Run(p)
			Expect(err).NotTo(HaveOccurred())
			for t := 0; t < f.Timesteps(); t++ {
				Expect(f.At(t, 0)).To(BeZero())
				Expect(f.At(t, grid-1)).To(BeZero())
			}
		},
		Entry("near left edge", 2, 30, 120, 1.0, 0.0),
		Entry("centered", 15, 30, 120, 0.7, 0.02),
		Entry("near right edge", 29, 30, 120, 1.0, 0.3),
		Entry("minimal grid", 2, 3, 10, 1.0, 0.0),
	)

	DescribeTable("rejects invalid parameters",
		func(mutate func(*wave.Params), target error) {
			mutate(&p)
			f, err := wave.Run(p)
			Expect(f).To(BeNil())
			Expect(err).To(MatchError(target))
		},
		Entry("grid_size = 2", func(p *wave.Params) { p.GridSize, p.ICenter = 2, 1 }, wave.ErrInvalidParameter),
		Entry("icenter = 0", func(p *wave.Params) { p.ICenter = 0 }, wave.ErrInvalidParameter),
		Entry("icenter = grid_size + 1", func(p *wave.Params) { p.ICenter = p.GridSize + 1 }, wave.ErrInvalidParameter),
		Entry("dt = 0", func(p *wave.Params) { p.Dt = 0 }, wave.ErrInvalidParameter),
		Entry("courant above one", func(p *wave.Params) { p.C = 2 }, wave.ErrCourantViolation),
		Entry("dx shrunk below c*dt", func(p *wave.Params) { p.Dx = 0.5 }, wave.ErrCourantViolation),
	)

	Describe("damping", func() {
		It("attenuates the interior energy over time", func() {
			p = wave.Params{ICenter: 20, GridSize: 60, Timesteps: 500, Dt: 1, Dx: 1, C: 1, Decay: 0.02}
			f, err := wave.Run(p)
			Expect(err).NotTo(HaveOccurred())
			early := sumSquares(f.Row(20))
			final := sumSquares(f.Row(f.Timesteps() - 1))
			Expect(final).To(BeNumerically("<", early))
		})

		It("reduces to undamped leapfrog when decay is zero", func() {
			p = wave.Params{ICenter: 30, GridSize: 60, Timesteps: 15, Dt: 1, Dx: 1, C: 1, Decay: 0}
			f, err := wave.Run(p)
			Expect(err).NotTo(HaveOccurred())
			Expect(sumSquares(f.Row(14))).To(BeNumerically("~", 0.5, 1e-12))
		})
	})

	It("stays finite at the courant limit", func() {
		p = wave.Params{ICenter: 5, GridSize: 10, Timesteps: 5, Dt: 1, Dx: 1, C: 1, Decay: 0}
		f, err := wave.Run(p)
		Expect(err).NotTo(HaveOccurred())
		for _, row := range f.Rows() {
			for _, v := range row {
				Expect(math.IsNaN(v) || math.IsInf(v, 0)).To(BeFalse())
			}
		}
	})
})
