package functools

import (
	"fmt"
	"math"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Number is the constraint accepted by [Sum].
type Number interface {
	constraints.Integer | constraints.Float
}

// number is a dynamically typed numeric value. Integers are kept as int
// until a float joins the computation.
type number struct {
	i       int
	f       float64
	isFloat bool
}

// toNumber reports whether v is an integer or float of any width.
// Booleans are not numbers.
func toNumber(v any) (number, bool) {
	switch n := v.(type) {
	case int:
		return number{i: n}, true
	case int8:
		return number{i: int(n)}, true
	case int16:
		return number{i: int(n)}, true
	case int32:
		return number{i: int(n)}, true
	case int64:
		if n > math.MaxInt || n < math.MinInt {
			return number{f: float64(n), isFloat: true}, true
		}
		return number{i: int(n)}, true
	case uint:
		return fromUint(uint64(n)), true
	case uint8:
		return number{i: int(n)}, true
	case uint16:
		return number{i: int(n)}, true
	case uint32:
		return fromUint(uint64(n)), true
	case uint64:
		return fromUint(n), true
	case float32:
		return number{f: float64(n), isFloat: true}, true
	case float64:
		return number{f: n, isFloat: true}, true
	default:
		return number{}, false
	}
}

func fromUint(u uint64) number {
	if u > math.MaxInt {
		return number{f: float64(u), isFloat: true}
	}
	return number{i: int(u)}
}

func isNumeric(v any) bool {
	_, ok := toNumber(v)
	return ok
}

func (n number) float() float64 {
	if n.isFloat {
		return n.f
	}
	return float64(n.i)
}

// value returns the Go value: int or float64.
func (n number) value() any {
	if n.isFloat {
		return n.f
	}
	return n.i
}

func (n number) add(m number) (number, error) {
	if n.isFloat || m.isFloat {
		return number{f: n.float() + m.float(), isFloat: true}, nil
	}
	sum := n.i + m.i
	// Overflow iff both operands share a sign that the sum does not.
	if (n.i >= 0) == (m.i >= 0) && (sum >= 0) != (n.i >= 0) {
		return number{}, fmt.Errorf("%w: %d + %d", ErrOverflow, n.i, m.i)
	}
	return number{i: sum}, nil
}

func (n number) mul(m number) (number, error) {
	if n.isFloat || m.isFloat {
		return number{f: n.float() * m.float(), isFloat: true}, nil
	}
	if n.i == 0 || m.i == 0 {
		return number{}, nil
	}
	hi, lo := bits.Mul64(uint64(abs(n.i)), uint64(abs(m.i)))
	neg := (n.i < 0) != (m.i < 0)
	limit := uint64(math.MaxInt)
	if neg {
		limit++
	}
	if hi != 0 || lo > limit {
		return number{}, fmt.Errorf("%w: %d * %d", ErrOverflow, n.i, m.i)
	}
	return number{i: n.i * m.i}, nil
}

// pow raises n to m. A non-negative integer exponent on an integer base
// stays integral; everything else goes through math.Pow.
func (n number) pow(m number) (number, error) {
	if n.isFloat || m.isFloat || m.i < 0 {
		return number{f: math.Pow(n.float(), m.float()), isFloat: true}, nil
	}
	result, base := number{i: 1}, n
	for e := m.i; e > 0; e >>= 1 {
		var err error
		if e&1 == 1 {
			if result, err = result.mul(base); err != nil {
				return number{}, err
			}
		}
		if e > 1 {
			if base, err = base.mul(base); err != nil {
				return number{}, err
			}
		}
	}
	return result, nil
}

func (n number) neg() (number, error) {
	if n.isFloat {
		return number{f: -n.f, isFloat: true}, nil
	}
	if n.i == math.MinInt {
		return number{}, fmt.Errorf("%w: -(%d)", ErrOverflow, n.i)
	}
	return number{i: -n.i}, nil
}

func (n number) isZero() bool {
	if n.isFloat {
		return n.f == 0
	}
	return n.i == 0
}

// compare returns -1, 0 or +1.
func (n number) compare(m number) int {
	if !n.isFloat && !m.isFloat {
		switch {
		case n.i < m.i:
			return -1
		case n.i > m.i:
			return 1
		}
		return 0
	}
	a, b := n.float(), m.float()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
