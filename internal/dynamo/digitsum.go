package dynamo

// Map is the digit-sum-square step for a fixed base.
type Map struct {
	base Value
}

// NewMap validates base and returns the map for it.
func NewMap(base int) (Map, error) {
	if base < 2 {
		return Map{}, &BaseError{Base: base, Wrapped: ErrBaseTooSmall}
	}
	if base > MaxBase {
		return Map{}, &BaseError{Base: base, Wrapped: ErrBaseTooLarge}
	}
	return Map{base: Value(base)}, nil
}

// Base returns the radix of the map.
func (m Map) Base() int {
	return int(m.base)
}

// DigitSum returns the sum of the base-b digits of x. Zero sums to zero.
func (m Map) DigitSum(x Value) Value {
	var s Value
	for x > 0 {
		s += x % m.base
		x /= m.base
	}
	return s
}

// Apply computes one iteration step: the digit sum of x, squared.
func (m Map) Apply(x Value) Value {
	s := m.DigitSum(x)
	return s * s
}

// Digits returns the base-b digits of x, most significant first.
func (m Map) Digits(x Value) []Value {
	if x == 0 {
		return []Value{0}
	}
	digits := make([]Value, 0, 8)
	for x > 0 {
		digits = append(digits, x%m.base)
		x /= m.base
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return digits
}
