package roc

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/roclab/internal/system"
)

var _ = Describe("Classify", func() {
	Context("with no poles", func() {
		It("is stable and valid regardless of the declared assumption", func() {
			for _, declared := range []system.Stability{system.Stable, system.Unstable} {
				m := system.New(system.Laplace).WithDeclaredStability(declared)
				v, err := Classify(m)
				Expect(err).NotTo(HaveOccurred())
				Expect(v.Stable).To(BeTrue())
				Expect(v.Valid).To(BeTrue())
				Expect(v.HasBoundary()).To(BeFalse())
			}
		})
	})

	Context("with a single real Laplace pole", func() {
		DescribeTable("causal stability follows the sign of the pole",
			func(re float64, wantStable bool) {
				m := system.New(system.Laplace)
				m, err := m.AddPole(system.ComplexPoint{Re: re})
				Expect(err).NotTo(HaveOccurred())

				v, err := Classify(m)
				Expect(err).NotTo(HaveOccurred())
				Expect(v.Stable).To(Equal(wantStable))
				Expect(v.Boundary).To(Equal(re))
			},
			Entry("left half-plane pole", -0.5, true),
			Entry("deep left pole", -7.0, true),
			Entry("pole at the origin", 0.0, false),
			Entry("right half-plane pole", 1.0, false),
		)
	})

	Context("with anti-causal Z poles at moduli 0.3 and 0.7", func() {
		It("takes the minimum modulus and is unstable", func() {
			m := system.New(system.ZTransform).WithCausality(system.AntiCausal)
			m, _ = m.AddPole(system.ComplexPoint{Re: 0.3})
			m, _ = m.AddPole(system.ComplexPoint{Re: 0.7})

			v, err := Classify(m)
			Expect(err).NotTo(HaveOccurred())
			Expect(v.Boundary).To(Equal(0.3))
			Expect(v.Stable).To(BeFalse())
		})
	})

	Context("consistency checks", func() {
		It("flags a declared-stable causal system with a right half-plane pole", func() {
			m := system.New(system.Laplace).WithDeclaredStability(system.Stable)
			m, _ = m.AddPole(system.ComplexPoint{Re: 1})

			v, err := Classify(m)
			Expect(err).NotTo(HaveOccurred())
			Expect(v.Valid).To(BeFalse())
			Expect(v.Explanation).To(ContainSubstring("1.00"))
		})

		It("accepts a declared-stable anti-causal Z system with poles outside the unit circle", func() {
			m := system.New(system.ZTransform).
				WithCausality(system.AntiCausal).
				WithDeclaredStability(system.Stable)
			m, _ = m.AddPole(system.ComplexPoint{Re: 1.5})
			m, _ = m.AddPole(system.ComplexPoint{Re: 2.0})

			v, err := Classify(m)
			Expect(err).NotTo(HaveOccurred())
			Expect(v.Stable).To(BeTrue())
			Expect(v.Valid).To(BeTrue())
			Expect(v.Boundary).To(Equal(1.5))
		})
	})
})

var _ = Describe("DeriveRegion", func() {
	It("maps a causal Laplace model with maxRe=-2 to a right half-plane", func() {
		m := system.New(system.Laplace)
		m, _ = m.AddPole(system.ComplexPoint{Re: -2})

		out, err := Analyze(m)
		Expect(err).NotTo(HaveOccurred())
		Expect(out.Region.Kind).To(Equal(HalfPlaneRight))
		Expect(out.Region.Boundary).To(Equal(-2.0))
	})

	It("maps a causal Z model with maxMag=0.5 to a disk exterior", func() {
		m := system.New(system.ZTransform)
		m, _ = m.AddPole(system.ComplexPoint{Re: 0.5})

		out, err := Analyze(m)
		Expect(err).NotTo(HaveOccurred())
		Expect(out.Region.Kind).To(Equal(DiskExterior))
		Expect(out.Region.Radius).To(Equal(0.5))
	})
})
