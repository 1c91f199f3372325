package fibloop

import (
	"strconv"
)

const (
	DefaultIterations = 1000000
	DefaultStart      = 2
	DefaultIndex      = 90
)

type Numeric byte

const (
	// Float accumulates in float64 and halves with true division.
	Float Numeric = iota
	// Integer accumulates in int64 and halves with truncating division.
	Integer
)

func (n Numeric) String() string {
	switch n {
	case Float:
		return "float"
	case Integer:
		return "int"
	}
	return "unknown"
}

// Loop describes one benchmark run: Iterations repetitions of
// x = fib(Index) - x/2, starting from x = Start.
type Loop struct {
	Iterations int
	Start      int64
	Index      int
	Numeric    Numeric
}

func DefaultLoop() Loop {
	return Loop{
		Iterations: DefaultIterations,
		Start:      DefaultStart,
		Index:      DefaultIndex,
		Numeric:    Float,
	}
}

type Result struct {
	Numeric Numeric
	Float   float64
	Int     int64
}

// String renders the result the way the driver prints it: plain decimal
// digits with no exponent.
func (r Result) String() string {
	if r.Numeric == Integer {
		return strconv.FormatInt(r.Int, 10)
	}
	return FormatValue(r.Float)
}

func (l Loop) Run() Result {
	if l.Numeric == Integer {
		return Result{Numeric: Integer, Int: runInt(l.Iterations, l.Index, l.Start)}
	}
	return Result{Numeric: Float, Float: runFloat(l.Iterations, l.Index, float64(l.Start))}
}

func runFloat(iters, index int, x float64) float64 {
	for i := 0; i < iters; i++ {
		x = Fib(index) - x/2
	}
	return x
}

func runInt(iters, index int, x int64) int64 {
	for i := 0; i < iters; i++ {
		x = FibInt(index) - x/2
	}
	return x
}
