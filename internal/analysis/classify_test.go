package analysis_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/hancock/internal/analysis"
	"github.com/san-kum/hancock/internal/dynamo"
	"github.com/san-kum/hancock/internal/metrics"
)

var _ = Describe("Classify", func() {
	ctx := context.Background()

	classify := func(p analysis.Params, opts ...analysis.Option) *analysis.Classification {
		cls, err := analysis.Classify(ctx, p, opts...)
		Expect(err).NotTo(HaveOccurred())
		return cls
	}

	Context("base 10", func() {
		var cls *analysis.Classification

		BeforeEach(func() {
			cls = classify(analysis.Params{N: 10, Base: 10, MaxIter: 100})
		})

		It("labels cycles by first appearance", func() {
			Expect(cls.Labels).To(Equal([]string{"a", "b", "c", "b", "b", "c", "b", "a", "c", "a"}))
		})

		It("records the fixed point of 1", func() {
			c, ok := cls.Table.CycleOf("a")
			Expect(ok).To(BeTrue())
			Expect(c).To(Equal(dynamo.Cycle{1}))
		})

		It("builds the pattern key", func() {
			key := cls.Key()
			Expect(key).To(HaveLen(3))
			Expect(key[0].Text).To(Equal("1"))
			Expect(key[1].Text).To(Equal("1.6.9, 2.5.6"))
			Expect(key[2].Text).To(Equal("8.1"))
		})

		It("counts basin sizes", func() {
			Expect(cls.Counts()).To(Equal(map[string]int{"a": 3, "b": 4, "c": 3}))
		})

		It("answers per-integer lookups", func() {
			l, ok := cls.LabelFor(3)
			Expect(ok).To(BeTrue())
			Expect(l).To(Equal("c"))
			_, ok = cls.LabelFor(0)
			Expect(ok).To(BeFalse())
			_, ok = cls.LabelFor(11)
			Expect(ok).To(BeFalse())
		})
	})

	It("groups the binary cluster under one label", func() {
		cls := classify(analysis.Params{N: 3, Base: 2, MaxIter: 100})
		Expect(cls.Labels).To(Equal([]string{"a", "a", "a"}))
		Expect(cls.Table.Len()).To(Equal(1))
		c, _ := cls.Table.CycleOf("a")
		Expect(c).To(Equal(dynamo.Cycle{1}))
	})

	It("labels everything other when no iteration is allowed", func() {
		cls := classify(analysis.Params{N: 50, Base: 10, MaxIter: 0})
		for _, l := range cls.Labels {
			Expect(l).To(Equal(analysis.Other))
		}
		Expect(cls.Table.Len()).To(BeZero())
		Expect(cls.Key()).To(BeEmpty())
		Expect(cls.UniqueLabels()).To(Equal([]string{analysis.Other}))
	})

	It("is deterministic", func() {
		p := analysis.Params{N: 500, Base: 7, MaxIter: 100}
		a := classify(p)
		b := classify(p)
		Expect(a.Labels).To(Equal(b.Labels))
		Expect(a.Table.Labels()).To(Equal(b.Table.Labels()))
		for _, l := range a.Table.Labels() {
			ca, _ := a.Table.CycleOf(l)
			cb, _ := b.Table.CycleOf(l)
			Expect(ca).To(Equal(cb))
		}
	})

	It("does not depend on the worker count", func() {
		p := analysis.Params{N: 3000, Base: 10, MaxIter: 100}
		serial := classify(p)
		for _, k := range []int{2, 3, 8} {
			parallel := classify(p, analysis.WithWorkers(k))
			Expect(parallel.Labels).To(Equal(serial.Labels), "workers=%d", k)
			Expect(parallel.Table.Labels()).To(Equal(serial.Table.Labels()))
		}
	})

	It("allocates new labels strictly in sequence", func() {
		cls := classify(analysis.Params{N: 2000, Base: 16, MaxIter: 100})
		next := 0
		seen := map[string]bool{}
		for _, l := range cls.Labels {
			if l == analysis.Other || seen[l] {
				continue
			}
			want, err := analysis.Label(next)
			Expect(err).NotTo(HaveOccurred())
			Expect(l).To(Equal(want))
			seen[l] = true
			next++
		}
		Expect(next).To(Equal(cls.Table.Len()))
	})

	It("stores canonical cycles only", func() {
		cls := classify(analysis.Params{N: 1000, Base: 12, MaxIter: 100})
		for _, l := range cls.Table.Labels() {
			c, _ := cls.Table.CycleOf(l)
			Expect(c.IsCanonical()).To(BeTrue(), "label %s cycle %v", l, c)
		}
	})

	It("handles an empty range", func() {
		cls := classify(analysis.Params{N: 0, Base: 10, MaxIter: 100})
		Expect(cls.Labels).To(BeEmpty())
		Expect(cls.Table.Len()).To(BeZero())
	})

	It("reports metrics", func() {
		cls := classify(analysis.Params{N: 10, Base: 10, MaxIter: 100},
			analysis.WithMetrics(metrics.Defaults()...))
		Expect(cls.Metrics).To(HaveKeyWithValue("convergence_rate", 1.0))
		Expect(cls.Metrics).To(HaveKeyWithValue("distinct_cycles", 3.0))
		Expect(cls.Metrics).To(HaveKeyWithValue("max_cycle_length", 2.0))
	})

	It("logs each new cycle", func() {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		classify(analysis.Params{N: 10, Base: 10, MaxIter: 100}, analysis.WithLogger(logger))
		Expect(strings.Count(buf.String(), "new cycle")).To(Equal(3))
	})

	Describe("invalid parameters", func() {
		DescribeTable("are rejected before any work",
			func(p analysis.Params, want error) {
				_, err := analysis.Classify(ctx, p)
				Expect(err).To(MatchError(want))
			},
			Entry("base 1", analysis.Params{N: 10, Base: 1, MaxIter: 10}, dynamo.ErrBaseTooSmall),
			Entry("base 0", analysis.Params{N: 10, Base: 0, MaxIter: 10}, dynamo.ErrBaseTooSmall),
			Entry("huge base", analysis.Params{N: 10, Base: dynamo.MaxBase + 1, MaxIter: 10}, dynamo.ErrBaseTooLarge),
			Entry("negative n", analysis.Params{N: -1, Base: 10, MaxIter: 10}, dynamo.ErrParameterBounds),
			Entry("negative bound", analysis.Params{N: 10, Base: 10, MaxIter: -1}, dynamo.ErrParameterBounds),
		)
	})

	It("stops when the context is canceled", func() {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := analysis.Classify(cctx, analysis.Params{N: 5000, Base: 10, MaxIter: 100}, analysis.WithWorkers(4))
		Expect(err).To(MatchError(context.Canceled))
	})
})

var _ = Describe("Restore", func() {
	It("round-trips a classification", func() {
		orig, err := analysis.Classify(context.Background(), analysis.Params{N: 100, Base: 10, MaxIter: 100})
		Expect(err).NotTo(HaveOccurred())

		cycles := map[string]dynamo.Cycle{}
		for _, l := range orig.Table.Labels() {
			cycles[l], _ = orig.Table.CycleOf(l)
		}

		restored, err := analysis.Restore(orig.Params, orig.Labels, orig.Table.Labels(), cycles)
		Expect(err).NotTo(HaveOccurred())
		Expect(restored.Labels).To(Equal(orig.Labels))
		Expect(restored.Key()).To(Equal(orig.Key()))
	})

	It("rejects labels missing from the table", func() {
		_, err := analysis.Restore(analysis.Params{N: 2, Base: 10}, []string{"a", "b"}, []string{"a"},
			map[string]dynamo.Cycle{"a": {1}})
		Expect(err).To(MatchError(analysis.ErrUnknownLabel))
	})

	It("rejects an order that skips labels", func() {
		_, err := analysis.Restore(analysis.Params{N: 1, Base: 10}, []string{"b"}, []string{"b"},
			map[string]dynamo.Cycle{"b": {1}})
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("FormatCycle", func() {
	It("renders base-b digit groups", func() {
		m, err := dynamo.NewMap(10)
		Expect(err).NotTo(HaveOccurred())
		Expect(analysis.FormatCycle(m, dynamo.Cycle{81, 100})).To(Equal("8.1, 1.0.0"))
		Expect(analysis.FormatValue(m, 0)).To(Equal("0"))

		bin, _ := dynamo.NewMap(2)
		Expect(analysis.FormatCycle(bin, dynamo.Cycle{1})).To(Equal("1"))
		Expect(analysis.FormatValue(bin, 6)).To(Equal("1.1.0"))
	})
})
