package analysis_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/hancock/internal/analysis"
)

var _ = Describe("Label", func() {
	DescribeTable("encodes first-appearance indices",
		func(idx int, want string) {
			got, err := analysis.Label(idx)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		},
		Entry("first", 0, "a"),
		Entry("last single letter", 25, "z"),
		Entry("first pair", 26, "aa"),
		Entry("second pair", 27, "ab"),
		Entry("end of a-row", 51, "az"),
		Entry("start of b-row", 52, "ba"),
		Entry("last label", analysis.MaxLabels-1, "zz"),
	)

	It("rejects indices outside the label space", func() {
		_, err := analysis.Label(-1)
		Expect(err).To(MatchError(analysis.ErrLabelSpace))
		_, err = analysis.Label(analysis.MaxLabels)
		Expect(err).To(MatchError(analysis.ErrLabelSpace))
	})

	It("never produces the same label twice", func() {
		seen := map[string]bool{}
		for i := 0; i < analysis.MaxLabels; i++ {
			l, err := analysis.Label(i)
			Expect(err).NotTo(HaveOccurred())
			Expect(seen).NotTo(HaveKey(l))
			Expect(l).NotTo(Equal(analysis.Other))
			seen[l] = true
		}
	})
})

var _ = Describe("SortLabels", func() {
	It("deduplicates and puts other last", func() {
		got := analysis.SortLabels([]string{"b", "other", "aa", "a", "b", "other"})
		Expect(got).To(Equal([]string{"a", "aa", "b", "other"}))
	})

	It("handles a run with only other", func() {
		Expect(analysis.SortLabels([]string{"other", "other"})).To(Equal([]string{"other"}))
	})

	It("returns an empty slice for no labels", func() {
		Expect(analysis.SortLabels(nil)).To(BeEmpty())
	})
})
