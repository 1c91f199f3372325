package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/cloudfoundry/fibloop"
)

var (
	iterations = flag.Int("iters", fibloop.DefaultIterations, "how many times to fold fib(n) into the accumulator")
	start      = flag.Int64("start", fibloop.DefaultStart, "initial accumulator value")
	index      = flag.Int("n", fibloop.DefaultIndex, "Fibonacci index computed each iteration")
	integer    = flag.Bool("int", false, "accumulate in int64 with truncating division")
	verbose    = flag.Bool("v", false, "log a timing and resource report to stderr")
	sample     = flag.Duration("sample", 0, "log CPU usage deltas at this interval while running; implies -v")
)

func main() {
	flag.Parse()
	if *sample > 0 {
		*verbose = true
	}

	console := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	}
	log := zerolog.New(console).
		With().Timestamp().Logger().
		Level(zerolog.Disabled)
	if *verbose {
		log = log.Level(zerolog.InfoLevel)
	}

	loop := fibloop.Loop{
		Iterations: *iterations,
		Start:      *start,
		Index:      *index,
		Numeric:    fibloop.Float,
	}
	if *integer {
		loop.Numeric = fibloop.Integer
	}

	if !*verbose {
		fmt.Println(loop.Run())
		return
	}

	prober := &fibloop.ConcreteProber{}

	quit := make(chan struct{})
	done := make(chan struct{})
	if *sample > 0 {
		samples, stop := prober.CollectUsage(*sample)
		go func() {
			defer close(done)
			for {
				select {
				case u := <-samples:
					log.Info().Dur("user", u.User).Dur("sys", u.Sys).Msg("sample")
				case <-quit:
					stop <- struct{}{}
					return
				}
			}
		}()
	} else {
		close(done)
	}

	report, err := fibloop.Measure(prober, loop)
	close(quit)
	<-done

	if err != nil {
		log.Warn().Err(err).Msg("resource usage unavailable, running unmeasured")
		fmt.Println(loop.Run())
		return
	}

	log.Info().
		Int("iterations", loop.Iterations).
		Int("n", loop.Index).
		Stringer("numeric", loop.Numeric).
		Str("elapsed", fibloop.FormatDuration(report.Elapsed)).
		Str("per_iteration", fibloop.FormatDuration(report.PerIteration())).
		Str("rate", fibloop.FormatRate(report.Rate())).
		Str("cpu", fibloop.FormatPercent(report.Usage.CPUPercent(report.Elapsed))).
		Str("max_resident", fibloop.FormatSize(report.Usage.MaxResident)).
		Msg("run complete")

	fmt.Println(report.Result)
}
