package scan_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/chazu/isomarch/pkg/parallel"
	"github.com/chazu/isomarch/pkg/scan"
)

// leftFold is the sequential reference: out[i] = op(out[i-1], in[i]).
func leftFold[T any](in []T, op scan.Op[T]) ([]T, T) {
	out := make([]T, len(in))
	acc := op.Identity
	for i, v := range in {
		acc = op.Combine(acc, v)
		out[i] = acc
	}
	return out, acc
}

var policies = map[string]parallel.Policy{
	"sequential": parallel.Sequential,
	"pool":       parallel.NewPool(8),
}

var blockSizes = []int{1, 3, 7, 64, 0}

func randomInts(rng *rand.Rand, n int) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = rng.Int63n(2000) - 1000
	}
	return out
}

func TestExampleFromCommandLine(t *testing.T) {
	in := []int{1, 2, 3, 4, 5}
	s := scan.New(parallel.NewPool(4), scan.Add[int]())
	s.BlockSize = 2

	inc, incTotal := s.Inclusive(in)
	exc, excTotal := s.Exclusive(in)

	wantInc := []int{1, 3, 6, 10, 15}
	wantExc := []int{0, 1, 3, 6, 10}
	for i := range in {
		if inc[i] != wantInc[i] {
			t.Errorf("inclusive[%d] = %d, want %d", i, inc[i], wantInc[i])
		}
		if exc[i] != wantExc[i] {
			t.Errorf("exclusive[%d] = %d, want %d", i, exc[i], wantExc[i])
		}
	}
	if incTotal != 15 || excTotal != 15 {
		t.Errorf("totals = %d, %d, want 15, 15", incTotal, excTotal)
	}
}

func TestEmptyInput(t *testing.T) {
	s := scan.New(parallel.Default(), scan.Max[int](math.MinInt))
	out, total := s.Inclusive(nil)
	if len(out) != 0 {
		t.Errorf("expected empty output, got %v", out)
	}
	if total != math.MinInt {
		t.Errorf("total = %d, want identity", total)
	}
	out, total = s.Exclusive([]int{})
	if len(out) != 0 || total != math.MinInt {
		t.Errorf("Exclusive(empty) = %v, %d", out, total)
	}
}

func TestInclusiveMatchesLeftFold(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, n := range []int{1, 2, 5, 63, 64, 65, 1000} {
		in := randomInts(rng, n)
		want, wantTotal := leftFold(in, scan.Add[int64]())
		for pname, p := range policies {
			for _, bs := range blockSizes {
				s := &scan.Scanner[int64]{Policy: p, Op: scan.Add[int64](), BlockSize: bs}
				got, total := s.Inclusive(in)
				if total != wantTotal {
					t.Fatalf("%s n=%d bs=%d: total = %d, want %d", pname, n, bs, total, wantTotal)
				}
				for i := range want {
					if got[i] != want[i] {
						t.Fatalf("%s n=%d bs=%d: out[%d] = %d, want %d", pname, n, bs, i, got[i], want[i])
					}
				}
			}
		}
	}
}

func TestExclusiveRelatesToInclusive(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	ops := map[string]scan.Op[int64]{
		"add": scan.Add[int64](),
		"max": scan.Max[int64](math.MinInt64),
		"min": scan.Min[int64](math.MaxInt64),
	}
	for oname, op := range ops {
		for pname, p := range policies {
			t.Run(oname+"/"+pname, func(t *testing.T) {
				in := randomInts(rng, 517)
				s := &scan.Scanner[int64]{Policy: p, Op: op, BlockSize: 16}
				inc, incTotal := s.Inclusive(in)
				exc, excTotal := s.Exclusive(in)
				if exc[0] != op.Identity {
					t.Errorf("exclusive[0] = %d, want identity %d", exc[0], op.Identity)
				}
				for i := 1; i < len(in); i++ {
					if exc[i] != inc[i-1] {
						t.Fatalf("exclusive[%d] = %d, inclusive[%d] = %d", i, exc[i], i-1, inc[i-1])
					}
				}
				if incTotal != excTotal {
					t.Errorf("totals disagree: inclusive %d, exclusive %d", incTotal, excTotal)
				}
			})
		}
	}
}

// affine is x -> A*x + B over wrapping uint64 arithmetic. Composition is
// associative but not commutative.
type affine struct{ A, B uint64 }

func composeOp() scan.Op[affine] {
	return scan.Op[affine]{
		Identity: affine{A: 1},
		// Apply f first, then g.
		Combine: func(f, g affine) affine {
			return affine{A: g.A * f.A, B: g.A*f.B + g.B}
		},
	}
}

func TestNonCommutativeOperator(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	in := make([]affine, 300)
	for i := range in {
		in[i] = affine{A: rng.Uint64() | 1, B: rng.Uint64()}
	}
	op := composeOp()
	want, wantTotal := leftFold(in, op)
	for pname, p := range policies {
		for _, bs := range blockSizes {
			s := &scan.Scanner[affine]{Policy: p, Op: op, BlockSize: bs}
			got, total := s.Inclusive(in)
			if total != wantTotal {
				t.Fatalf("%s bs=%d: total mismatch", pname, bs)
			}
			for i := range want {
				if got[i] != want[i] {
					t.Fatalf("%s bs=%d: out[%d] mismatch", pname, bs, i)
				}
			}
		}
	}
}

func TestStringConcatenation(t *testing.T) {
	op := scan.Op[string]{Combine: func(a, b string) string { return a + b }}
	in := []string{"m", "a", "r", "c", "h", "i", "n", "g"}
	s := &scan.Scanner[string]{Policy: parallel.NewPool(3), Op: op, BlockSize: 3}
	exc, total := s.Exclusive(in)
	want := []string{"", "m", "ma", "mar", "marc", "march", "marchi", "marchin"}
	for i := range want {
		if exc[i] != want[i] {
			t.Errorf("exclusive[%d] = %q, want %q", i, exc[i], want[i])
		}
	}
	if total != "marching" {
		t.Errorf("total = %q, want %q", total, "marching")
	}
}

// Integral-valued floats add exactly, so any block layout must agree with
// the left-fold bit for bit.
func TestFloatMatchesLeftFold(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	in := make([]float32, 4097)
	for i := range in {
		in[i] = float32(rng.Intn(512) - 256)
	}
	want, wantTotal := leftFold(in, scan.Add[float32]())
	for pname, p := range policies {
		for _, bs := range blockSizes {
			s := &scan.Scanner[float32]{Policy: p, Op: scan.Add[float32](), BlockSize: bs}
			got, total := s.Inclusive(in)
			if math.Float32bits(total) != math.Float32bits(wantTotal) {
				t.Fatalf("%s bs=%d: total %v, want %v", pname, bs, total, wantTotal)
			}
			for i := range want {
				if math.Float32bits(got[i]) != math.Float32bits(want[i]) {
					t.Fatalf("%s bs=%d: out[%d] = %v, want %v", pname, bs, i, got[i], want[i])
				}
			}
		}
	}
}

// For rounding-sensitive inputs the result must still not depend on the
// policy: the same block layout is folded either way.
func TestFloatPolicyIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	in := make([]float64, 10000)
	for i := range in {
		in[i] = rng.NormFloat64() * math.Pow(10, float64(rng.Intn(12)-6))
	}
	for _, bs := range blockSizes {
		seq := &scan.Scanner[float64]{Policy: parallel.Sequential, Op: scan.Add[float64](), BlockSize: bs}
		par := &scan.Scanner[float64]{Policy: parallel.NewPool(16), Op: scan.Add[float64](), BlockSize: bs}
		a, at := seq.Exclusive(in)
		b, bt := par.Exclusive(in)
		if math.Float64bits(at) != math.Float64bits(bt) {
			t.Fatalf("bs=%d: totals differ: %v vs %v", bs, at, bt)
		}
		for i := range a {
			if math.Float64bits(a[i]) != math.Float64bits(b[i]) {
				t.Fatalf("bs=%d: out[%d] differs: %v vs %v", bs, i, a[i], b[i])
			}
		}
	}
}

func TestInPlace(t *testing.T) {
	buf := []uint32{1, 0, 1, 1, 0, 0, 1}
	total := (&scan.Scanner[uint32]{Policy: parallel.NewPool(2), Op: scan.Add[uint32](), BlockSize: 2}).ExclusiveInto(buf, buf)
	want := []uint32{0, 1, 1, 2, 3, 3, 3}
	for i := range want {
		if buf[i] != want[i] {
			t.Errorf("buf[%d] = %d, want %d", i, buf[i], want[i])
		}
	}
	if total != 4 {
		t.Errorf("total = %d, want 4", total)
	}
}

func TestSumHelpers(t *testing.T) {
	in := []uint32{3, 1, 4, 1, 5}
	exc, total := scan.ExclusiveSum(parallel.Default(), in)
	if total != 14 || exc[4] != 9 {
		t.Errorf("ExclusiveSum = %v, %d", exc, total)
	}
	inc, total := scan.InclusiveSum(parallel.Default(), in)
	if total != 14 || inc[0] != 3 {
		t.Errorf("InclusiveSum = %v, %d", inc, total)
	}
}

func TestShortDestinationPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for short destination")
		}
	}()
	scan.New(parallel.Sequential, scan.Add[int]()).InclusiveInto(make([]int, 1), []int{1, 2})
}
