// Package scan implements inclusive and exclusive prefix scans over any
// associative operator, run block-parallel under a parallel.Policy.
//
// The input is cut into fixed-size blocks. Each block is reduced in
// parallel, the block totals are folded in block order into per-block
// carries, and each block is then re-folded from its carry in parallel.
// Block boundaries depend only on the input length and the block size, so
// the result does not depend on the policy or the number of workers. For an
// exactly associative operator it is bit-identical to a sequential
// left-fold.
package scan

import "github.com/chazu/isomarch/pkg/parallel"

// DefaultBlockSize is the block length used when Scanner.BlockSize is zero.
const DefaultBlockSize = 1 << 14

// Op is an associative binary operator with its identity element. Combine
// need not be commutative; operands are always combined in index order.
type Op[T any] struct {
	Identity T
	Combine  func(a, b T) T
}

// Number is the set of types Add, Min and Max are defined for.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Add returns the addition operator with identity 0.
func Add[T Number]() Op[T] {
	return Op[T]{Combine: func(a, b T) T { return a + b }}
}

// Max returns the maximum operator with the given identity, which should be
// no greater than any input.
func Max[T Number](identity T) Op[T] {
	return Op[T]{Identity: identity, Combine: func(a, b T) T { return max(a, b) }}
}

// Min returns the minimum operator with the given identity, which should be
// no less than any input.
func Min[T Number](identity T) Op[T] {
	return Op[T]{Identity: identity, Combine: func(a, b T) T { return min(a, b) }}
}

// Scanner runs scans of one operator under one policy.
type Scanner[T any] struct {
	Policy    parallel.Policy
	Op        Op[T]
	BlockSize int
}

// New returns a Scanner with the default block size.
func New[T any](p parallel.Policy, op Op[T]) *Scanner[T] {
	return &Scanner[T]{Policy: p, Op: op}
}

func (s *Scanner[T]) policy() parallel.Policy {
	if s.Policy == nil {
		return parallel.Sequential
	}
	return s.Policy
}

func (s *Scanner[T]) blockSize() int {
	if s.BlockSize <= 0 {
		return DefaultBlockSize
	}
	return s.BlockSize
}

// Inclusive returns out with out[i] = in[0] op ... op in[i], and the total
// reduction of in. The total of an empty input is the identity.
func (s *Scanner[T]) Inclusive(in []T) ([]T, T) {
	out := make([]T, len(in))
	total := s.InclusiveInto(out, in)
	return out, total
}

// Exclusive returns out with out[0] = identity and out[i] = in[0] op ... op
// in[i-1], and the total reduction of in.
func (s *Scanner[T]) Exclusive(in []T) ([]T, T) {
	out := make([]T, len(in))
	total := s.ExclusiveInto(out, in)
	return out, total
}

// InclusiveInto writes the inclusive scan of in to dst and returns the
// total. dst must be at least len(in) long and may alias in.
func (s *Scanner[T]) InclusiveInto(dst, in []T) T {
	return s.run(dst, in, false)
}

// ExclusiveInto writes the exclusive scan of in to dst and returns the
// total. dst must be at least len(in) long and may alias in.
func (s *Scanner[T]) ExclusiveInto(dst, in []T) T {
	return s.run(dst, in, true)
}

func (s *Scanner[T]) run(dst, in []T, exclusive bool) T {
	n := len(in)
	if len(dst) < n {
		panic("scan: destination shorter than input")
	}
	op := s.Op
	if n == 0 {
		return op.Identity
	}
	bs := s.blockSize()
	nb := (n + bs - 1) / bs
	p := s.policy()

	// Pass 1: reduce each block. A single block skips straight to pass 2.
	carries := make([]T, nb)
	if nb > 1 {
		p.For(nb, 1, func(lo, hi int) {
			for b := lo; b < hi; b++ {
				start, end := b*bs, min((b+1)*bs, n)
				acc := in[start]
				for i := start + 1; i < end; i++ {
					acc = op.Combine(acc, in[i])
				}
				carries[b] = acc
			}
		})
	}

	// Combine block totals in index order. carries[b] becomes the reduction
	// of every element before block b.
	acc := op.Identity
	for b := 0; b < nb; b++ {
		blockTotal := carries[b]
		carries[b] = acc
		if b < nb-1 {
			acc = op.Combine(acc, blockTotal)
		}
	}

	// Pass 2: re-fold each block from its carry. The last block's fold
	// produces the grand total.
	var total T
	p.For(nb, 1, func(lo, hi int) {
		for b := lo; b < hi; b++ {
			start, end := b*bs, min((b+1)*bs, n)
			acc := carries[b]
			for i := start; i < end; i++ {
				v := in[i]
				if exclusive {
					dst[i] = acc
					acc = op.Combine(acc, v)
				} else {
					acc = op.Combine(acc, v)
					dst[i] = acc
				}
			}
			if b == nb-1 {
				total = acc
			}
		}
	})
	return total
}

// ExclusiveSum is a convenience for an exclusive add scan.
func ExclusiveSum[T Number](p parallel.Policy, in []T) ([]T, T) {
	return New(p, Add[T]()).Exclusive(in)
}

// InclusiveSum is a convenience for an inclusive add scan.
func InclusiveSum[T Number](p parallel.Policy, in []T) ([]T, T) {
	return New(p, Add[T]()).Inclusive(in)
}
