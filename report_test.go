package fibloop_test

import (
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cloudfoundry/fibloop"
)

type fakeProber struct {
	usages []fibloop.Usage
	errs   []error
	calls  int
}

func (f *fakeProber) GetUsage() (fibloop.Usage, error) {
	i := f.calls
	f.calls++
	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	if err != nil {
		return fibloop.Usage{}, err
	}
	return f.usages[i], nil
}

func (f *fakeProber) CollectUsage(time.Duration) (<-chan fibloop.Usage, chan<- struct{}) {
	return nil, nil
}

var _ = Describe("Measure", func() {
	var loop fibloop.Loop

	BeforeEach(func() {
		loop = fibloop.DefaultLoop()
		loop.Iterations = 1000
	})

	It("reports the usage spent by the run", func() {
		prober := &fakeProber{usages: []fibloop.Usage{
			{User: time.Second, Sys: 100 * time.Millisecond, MaxResident: 10},
			{User: 3 * time.Second, Sys: 200 * time.Millisecond, MaxResident: 42},
		}}

		report, err := fibloop.Measure(prober, loop)
		Expect(err).NotTo(HaveOccurred())
		Expect(prober.calls).To(Equal(2))

		Expect(report.Loop).To(Equal(loop))
		Expect(report.Result).To(Equal(loop.Run()))
		Expect(report.Elapsed).To(BeNumerically(">", 0))
		Expect(report.Usage).To(Equal(fibloop.Usage{
			User:        2 * time.Second,
			Sys:         100 * time.Millisecond,
			MaxResident: 42,
		}))
	})

	It("fails when the first snapshot fails", func() {
		boom := errors.New("boom")
		prober := &fakeProber{errs: []error{boom}}

		_, err := fibloop.Measure(prober, loop)
		Expect(err).To(MatchError(boom))
		Expect(prober.calls).To(Equal(1))
	})

	It("fails when the second snapshot fails", func() {
		prober := &fakeProber{
			usages: []fibloop.Usage{{}},
			errs:   []error{nil, fibloop.ErrNotImplemented},
		}

		_, err := fibloop.Measure(prober, loop)
		Expect(err).To(MatchError(fibloop.ErrNotImplemented))
		Expect(err.Error()).To(ContainSubstring("after run"))
	})

	It("measures against the real process", func() {
		report, err := fibloop.Measure(&fibloop.ConcreteProber{}, fibloop.DefaultLoop())
		Expect(err).NotTo(HaveOccurred())
		Expect(report.Result.String()).To(MatchRegexp(`^\d+$`))
		Expect(report.Usage.User).To(BeNumerically(">=", 0))
	})
})

var _ = Describe("Report", func() {
	It("derives per-iteration time and rate from the wall clock", func() {
		report := fibloop.Report{
			Loop:    fibloop.Loop{Iterations: 1000},
			Elapsed: 2 * time.Millisecond,
		}
		Expect(report.PerIteration()).To(Equal(2 * time.Microsecond))
		Expect(report.Rate()).To(BeNumerically("~", 500000, 1e-6))
	})

	It("reports zero for an empty run", func() {
		var report fibloop.Report
		Expect(report.PerIteration()).To(BeZero())
		Expect(report.Rate()).To(BeZero())
	})
})
