package monoid

import "cmp"

// Integer is a constraint for integer types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is a constraint for floating point types.
type Float interface {
	~float32 | ~float64
}

// Number is a constraint for numeric types.
type Number interface {
	Integer | Float
}

// Sum adds two numbers.
//
// For floating point numbers addition is associative only up to rounding.
func Sum[N Number](left, right N) N {
	return left + right
}

// Product multiplies two numbers.
func Product[N Number](left, right N) N {
	return left * right
}

// Min returns the smaller of two values.
func Min[O cmp.Ordered](left, right O) O {
	return min(left, right)
}

// Max returns the larger of two values.
func Max[O cmp.Ordered](left, right O) O {
	return max(left, right)
}

// GCD returns the non-negative greatest common divisor of two integers.
// GCD(0, x) is |x|.
func GCD[I Integer](left, right I) I {
	for right != 0 {
		left, right = right, left%right
	}
	if left < 0 {
		return -left
	}
	return left
}

// Concat concatenates two strings.
func Concat(left, right string) string {
	return left + right
}

// First keeps the left operand. Folding a range with First yields its
// leftmost element.
func First[V any](left, _ V) V {
	return left
}

// Last keeps the right operand. Folding a range with Last yields its
// rightmost element.
func Last[V any](_, right V) V {
	return right
}

// Affine is the map x ↦ Scale·x + Shift.
type Affine[N Number] struct {
	Scale, Shift N
}

// Identity returns the affine identity map.
func Identity[N Number]() Affine[N] {
	return Affine[N]{Scale: 1}
}

// Apply evaluates f at x.
func (f Affine[N]) Apply(x N) N {
	return f.Scale*x + f.Shift
}

// Compose returns the map which applies first, then second:
//
//	Compose(f, g).Apply(x) == g.Apply(f.Apply(x))
//
// Folding a range of affine maps with Compose thus yields the map which
// applies the range's elements in index order.
func Compose[N Number](first, second Affine[N]) Affine[N] {
	return Affine[N]{
		Scale: second.Scale * first.Scale,
		Shift: second.Scale*first.Shift + second.Shift,
	}
}
