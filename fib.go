package fibloop

// Fib returns the n-th Fibonacci number computed in double precision,
// with Fib(0) = 0 and Fib(1) = 1. Past Fib(78) the sum no longer fits the
// 53-bit mantissa and each step rounds, which is the behaviour the driver
// loop depends on.
//
// Negative n is unspecified: the loop body never runs and the seed sum
// is returned.
func Fib(n int) float64 {
	var fibnMinus2, fibnMinus1 float64 = 0, 1
	fibn := fibnMinus1 + fibnMinus2
	if n == 0 {
		return fibnMinus2
	} else if n == 1 {
		return fibnMinus1
	}

	for i := 2; i <= n; i++ {
		fibn = fibnMinus1 + fibnMinus2
		fibnMinus2 = fibnMinus1
		fibnMinus1 = fibn
	}

	return fibn
}

// FibInt is Fib over int64. It is exact up to FibInt(92) and wraps
// silently past that.
func FibInt(n int) int64 {
	var fibnMinus2, fibnMinus1 int64 = 0, 1
	fibn := fibnMinus1 + fibnMinus2
	if n == 0 {
		return fibnMinus2
	} else if n == 1 {
		return fibnMinus1
	}

	for i := 2; i <= n; i++ {
		fibn = fibnMinus1 + fibnMinus2
		fibnMinus2 = fibnMinus1
		fibnMinus1 = fibn
	}

	return fibn
}
