package analysis_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/hancock/internal/analysis"
	"github.com/san-kum/hancock/internal/dynamo"
)

var _ = Describe("Table", func() {
	var table *analysis.Table

	BeforeEach(func() {
		table = analysis.NewTable()
	})

	It("assigns labels in insertion order", func() {
		l, added, err := table.Assign(dynamo.Cycle{1})
		Expect(err).NotTo(HaveOccurred())
		Expect(added).To(BeTrue())
		Expect(l).To(Equal("a"))

		l, added, err = table.Assign(dynamo.Cycle{169, 256})
		Expect(err).NotTo(HaveOccurred())
		Expect(added).To(BeTrue())
		Expect(l).To(Equal("b"))

		Expect(table.Labels()).To(Equal([]string{"a", "b"}))
		Expect(table.Len()).To(Equal(2))
	})

	It("recognises rotations of a known cycle", func() {
		_, _, err := table.Assign(dynamo.Cycle{1, 2, 3})
		Expect(err).NotTo(HaveOccurred())

		l, added, err := table.Assign(dynamo.Cycle{3, 1, 2})
		Expect(err).NotTo(HaveOccurred())
		Expect(added).To(BeFalse())
		Expect(l).To(Equal("a"))

		l, ok := table.LabelOf(dynamo.Cycle{2, 3, 1})
		Expect(ok).To(BeTrue())
		Expect(l).To(Equal("a"))
	})

	It("stores the canonical rotation", func() {
		_, _, err := table.Assign(dynamo.Cycle{256, 169})
		Expect(err).NotTo(HaveOccurred())

		c, ok := table.CycleOf("a")
		Expect(ok).To(BeTrue())
		Expect(c).To(Equal(dynamo.Cycle{169, 256}))
	})

	It("hands out copies of stored cycles", func() {
		_, _, _ = table.Assign(dynamo.Cycle{4, 5})
		c, _ := table.CycleOf("a")
		c[0] = 99
		again, _ := table.CycleOf("a")
		Expect(again).To(Equal(dynamo.Cycle{4, 5}))
	})

	It("rejects empty cycles", func() {
		_, _, err := table.Assign(dynamo.Cycle{})
		Expect(err).To(MatchError(dynamo.ErrEmptyCycle))
		Expect(table.Len()).To(BeZero())
	})

	It("fails once the label space is exhausted", func() {
		for i := 0; i < analysis.MaxLabels; i++ {
			_, _, err := table.Assign(dynamo.Cycle{dynamo.Value(i)})
			Expect(err).NotTo(HaveOccurred())
		}
		_, _, err := table.Assign(dynamo.Cycle{dynamo.Value(analysis.MaxLabels)})
		Expect(err).To(MatchError(analysis.ErrLabelSpace))
		Expect(table.Len()).To(Equal(analysis.MaxLabels))
	})

	It("reports unknown entries", func() {
		_, ok := table.CycleOf("q")
		Expect(ok).To(BeFalse())
		_, ok = table.LabelOf(dynamo.Cycle{7})
		Expect(ok).To(BeFalse())
		_, ok = table.LabelOf(nil)
		Expect(ok).To(BeFalse())
	})
})
