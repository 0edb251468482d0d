package demo

import (
	"math/rand"
	"time"
)

type (
	Supplier[T any]    func() T
	Consumer[T any]    func(T)
	Predicate[T any]   func(T) bool
	Function[T, R any] func(T) R
)

// Generate calls s n times and collects the results.
func Generate[T any](n int, s Supplier[T]) []T {
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, s())
	}
	return out
}

// ForEachIf hands every item matching p to c.
func ForEachIf[T any](items []T, p Predicate[T], c Consumer[T]) {
	for _, item := range items {
		if p(item) {
			c(item)
		}
	}
}

// Map applies f to every item.
func Map[T, R any](items []T, f Function[T, R]) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, f(item))
	}
	return out
}

// RandomIntSupplier draws uniformly from [lo, hi]. A zero seed uses the clock.
// hi-lo must be below math.MaxInt; FunctionalSample.Validate enforces that.
func RandomIntSupplier(lo, hi int, seed int64) Supplier[int] {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	return func() int { return rng.Intn(hi-lo+1) + lo }
}

// IsEven is the predicate used by the demo.
func IsEven(i int) bool { return i%2 == 0 }

// FloorToTens drops the ones digit.
func FloorToTens(i int) int { return i / 10 * 10 }

// FunctionalResult holds the three lists the functional demo prints.
type FunctionalResult struct {
	Numbers []int
	Evens   []int
	Floored []int
}

// RunFunctional draws count numbers, picks out the even ones and floors
// every number to its tens.
func RunFunctional(count int, supplier Supplier[int]) FunctionalResult {
	numbers := Generate(count, supplier)

	evens := make([]int, 0, len(numbers))
	ForEachIf(numbers, IsEven, func(i int) { evens = append(evens, i) })

	return FunctionalResult{
		Numbers: numbers,
		Evens:   evens,
		Floored: Map(numbers, FloorToTens),
	}
}
