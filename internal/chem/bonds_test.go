package chem_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/atomica/internal/atomic"
	"github.com/san-kum/atomica/internal/chem"
	"github.com/san-kum/atomica/internal/logging"
)

func mustAtom(z, a int) *atomic.Atom {
	atom, err := atomic.NewAtom(z, a, mgl64.Vec3{})
	Expect(err).NotTo(HaveOccurred())
	return atom
}

var _ = Describe("Calculator", func() {
	var calc *chem.Calculator

	BeforeEach(func() {
		calc = chem.NewCalculator(logging.Nop{})
	})

	Describe("DetermineType", func() {
		It("classifies H-H as a single bond", func() {
			Expect(calc.DetermineType(mustAtom(1, 1), mustAtom(1, 1))).To(Equal(atomic.Single))
		})

		It("classifies O-H as a single bond in either argument order", func() {
			h := mustAtom(1, 1)
			o := mustAtom(8, 16)
			Expect(calc.DetermineType(o, h)).To(Equal(atomic.Single))
			Expect(calc.DetermineType(h, o)).To(Equal(atomic.Single))
		})

		It("classifies O-O as a double bond", func() {
			Expect(calc.DetermineType(mustAtom(8, 16), mustAtom(8, 16))).To(Equal(atomic.Double))
		})

		It("classifies N-N as a triple bond", func() {
			Expect(calc.DetermineType(mustAtom(7, 14), mustAtom(7, 14))).To(Equal(atomic.Triple))
		})

		It("falls back to a single bond for any other pair", func() {
			Expect(calc.DetermineType(mustAtom(6, 12), mustAtom(17, 35))).To(Equal(atomic.Single))
			Expect(calc.DetermineType(mustAtom(26, 56), mustAtom(26, 56))).To(Equal(atomic.Single))
		})
	})

	Describe("Energy", func() {
		It("returns the exact tabulated values", func() {
			table := map[atomic.BondType]float64{
				atomic.Single:   4.5,
				atomic.Double:   8.0,
				atomic.Triple:   10.0,
				atomic.Ionic:    5.0,
				atomic.Metallic: 2.0,
				atomic.Hydrogen: 0.2,
			}
			for typ, want := range table {
				e, err := calc.Energy(typ)
				Expect(err).NotTo(HaveOccurred())
				Expect(e).To(Equal(want))
			}
		})

		It("returns zero and an error for an unmapped type", func() {
			e, err := calc.Energy(atomic.BondType(99))
			Expect(err).To(MatchError(chem.ErrUnknownBondType))
			Expect(e).To(BeZero())
		})
	})

	Describe("Bind", func() {
		It("builds a bond carrying the classified type and its energy", func() {
			o := mustAtom(8, 16)
			h := mustAtom(1, 1)
			b := calc.Bind(o, h)
			Expect(b.Atom1()).To(BeIdenticalTo(o))
			Expect(b.Atom2()).To(BeIdenticalTo(h))
			Expect(b.Type()).To(Equal(atomic.Single))
			Expect(b.Energy()).To(Equal(4.5))
		})
	})
})
