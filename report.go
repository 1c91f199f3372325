package fibloop

import (
	"fmt"
	"time"
)

type Report struct {
	Loop    Loop
	Result  Result
	Elapsed time.Duration
	Usage   Usage
}

// Measure runs l between two usage snapshots taken through p. Usage holds
// the CPU time spent by the whole process over the run, so other
// goroutines doing work at the same time inflate it.
func Measure(p Prober, l Loop) (Report, error) {
	before, err := p.GetUsage()
	if err != nil {
		return Report{}, fmt.Errorf("usage before run: %w", err)
	}

	start := time.Now()
	result := l.Run()
	elapsed := time.Since(start)

	after, err := p.GetUsage()
	if err != nil {
		return Report{}, fmt.Errorf("usage after run: %w", err)
	}

	return Report{
		Loop:    l,
		Result:  result,
		Elapsed: elapsed,
		Usage:   after.Delta(before),
	}, nil
}

func (r Report) PerIteration() time.Duration {
	if r.Loop.Iterations <= 0 {
		return 0
	}
	return r.Elapsed / time.Duration(r.Loop.Iterations)
}

// Rate is iterations per second of wall time.
func (r Report) Rate() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Loop.Iterations) / r.Elapsed.Seconds()
}
